package cli

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/ghodss/yaml"
)

// TaskState is the state of a task shown on a Board.
type TaskState string

// Task states.
const (
	Pending TaskState = "pending"
	Running TaskState = "running"
	Done    TaskState = "done"
	Failed  TaskState = "failed"
)

var taskStates = []string{string(Pending), string(Running), string(Done), string(Failed)}

// A Task is a single row on a Board.
type Task struct {
	Name    string    `json:"name"`
	Command string    `json:"command"`
	State   TaskState `json:"state,omitempty"`
}

type taskFile struct {
	Tasks []Task `json:"tasks"`
}

// LoadTasks reads a YAML task list:
//
//	tasks:
//	  - name: fmt
//	    command: cargo fmt
//	    state: running
//
// Tasks without a state are running.
func LoadTasks(r io.Reader) ([]Task, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var f taskFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	for i := range f.Tasks {
		t := &f.Tasks[i]
		if t.Name == "" {
			return nil, fmt.Errorf("task %d: name not set", i+1)
		}
		if t.State == "" {
			t.State = Running
		}
		if err := checkState(t.State); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.Name, err)
		}
	}
	return f.Tasks, nil
}

func checkState(state TaskState) error {
	for _, s := range taskStates {
		if string(state) == s {
			return nil
		}
	}
	if s, ok := suggest(taskStates, string(state)); ok {
		return fmt.Errorf("unknown state %q, did you mean %q?", state, s)
	}
	return fmt.Errorf("unknown state %q, must be one of %s", state, strings.Join(taskStates, ", "))
}

func suggest(options []string, want string) (string, bool) {
	best, bestDist := "", 3 // threshold determined experimentally
	for _, o := range options {
		if dist := levenshtein.Distance(want, o, nil); dist < bestDist {
			best, bestDist = o, dist
		}
	}
	return best, best != ""
}

// DefaultTasks returns the tasks shown when no task file is given. The last
// command is long enough to wrap in an 80 column terminal.
func DefaultTasks() []Task {
	return []Task{
		{Name: "fmt", Command: "cargo fmt", State: Running},
		{Name: "clippy", Command: "cargo clippy", State: Running},
		{Name: "node modules", Command: "npm install", State: Running},
		{Name: "analyse", Command: "long string " + strings.Repeat(" ", 80), State: Running},
	}
}
