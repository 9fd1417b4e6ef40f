package ui

import (
	"fmt"
	"sync"
	"testing"
)

func TestStack_nil(t *testing.T) {
	var s *Stack
	got := s.Render(Frame{}) // Does not panic
	if got != "" {
		t.Errorf("(*Stack)(nil).Render() returned %q, want \"\"", got)
	}
}

func TestStack_Render(t *testing.T) {
	s := &Stack{}

	s.Push(RenderFunc(func(f Frame) string {
		return fmt.Sprintf("<%d:%d>", f.Number, f.Width)
	}))

	got := s.Render(Frame{Number: 123, Width: 80})
	want := "<123:80>"
	if got != want {
		t.Errorf("Rendered output does not match; got %q, want %q", got, want)
	}
}

func TestStack_skipEmpty(t *testing.T) {
	s := &Stack{}
	s.Push(testNode(""), testNode("A"), testNode(""), testNode("B"), testNode(""))

	got := s.Render(Frame{})
	want := "A\nB"
	if got != want {
		t.Errorf("Rendered output does not match; got %q, want %q", got, want)
	}
}

func TestStack_Remove(t *testing.T) {
	s := &Stack{}

	head := testNode("HEAD")
	tail := testNode("TAIL")
	s.Push(head, testNode("A"), testNode("B"), tail)
	s.Remove(head)
	s.Remove(testNode("missing"))

	got := s.Render(Frame{})
	want := "A\nB\nTAIL"
	if got != want {
		t.Errorf("Rendered output does not match; got %q, want %q", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestStack_Remove_func(t *testing.T) {
	s := &Stack{}
	fn := RenderFunc(func(f Frame) string { return "fn" })
	s.Push(fn, testNode("A"))

	s.Remove(RenderFunc(func(f Frame) string { return "other" })) // Does not panic
	s.Remove(testNode("A"))
	s.Remove(nil)

	got := s.Render(Frame{})
	want := "fn"
	if got != want {
		t.Errorf("Rendered output does not match; got %q, want %q", got, want)
	}
}

func TestStack_concurrent(t *testing.T) {
	s := &Stack{}

	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Push(testNode("x"))
		}()
		go func() {
			defer wg.Done()
			_ = s.Render(Frame{})
		}()
	}
	wg.Wait()

	if s.Len() != 1000 {
		t.Errorf("Len() does not match; got %d, want %d", s.Len(), 1000)
	}
}

type testNode string

func (n testNode) Render(f Frame) string { return string(n) }
