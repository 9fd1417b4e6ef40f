package ui

import (
	"reflect"
	"strings"
	"sync"
)

// A Stack renders a list of child renderers below each other.
//
// All methods are safe for concurrent access.
type Stack struct {
	mu    sync.Mutex
	nodes []Renderer
	buf   strings.Builder
}

// Render renders all children in order, one below the other. Children that
// render an empty string take up no rows.
//
// Calling Render() on a nil stack returns an empty string.
func (s *Stack) Render(f Frame) string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Reset()
	for _, c := range s.nodes {
		out := c.Render(f)
		if out == "" {
			continue
		}
		if s.buf.Len() > 0 {
			s.buf.WriteByte('\n')
		}
		s.buf.WriteString(out)
	}
	return s.buf.String()
}

// Len returns the number of children in the stack.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.nodes)
}

// Push adds nodes to the end of the stack.
func (s *Stack) Push(nodes ...Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = append(s.nodes, nodes...)
}

// Remove removes a node from the stack.
// No-op if the child does not exist. Nodes of uncomparable types, such as
// RenderFunc, never match and cannot be removed.
func (s *Stack) Remove(node Renderer) {
	if node == nil || !reflect.TypeOf(node).Comparable() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.nodes {
		if n == node {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return
		}
	}
}
