package cli

import (
	"github.com/func/overwrite/ui"
)

const nameWidth = 16

// A Board renders one row per task: the name in a fixed width column, the
// command and a marker for the task state. Running tasks show a spinner.
type Board struct {
	Tasks []Task
}

// Render renders all tasks.
func (b *Board) Render(f ui.Frame) string {
	var rows ui.Stack
	for _, t := range b.Tasks {
		rows.Push(taskRow(t))
	}
	return rows.Render(f)
}

// taskRow renders a single task on a Board.
type taskRow Task

func (r taskRow) Render(f ui.Frame) string {
	t := Task(r)
	return taskPrefix(t) + marker(t.State, f)
}

// taskPrefix returns the row up to the marker.
func taskPrefix(t Task) string {
	if t.Command == "" {
		return ui.Fit(t.Name, nameWidth, ">")
	}
	return ui.Fit(t.Name, nameWidth, ">") + t.Command + " "
}

func marker(state TaskState, f ui.Frame) string {
	switch state {
	case Running:
		return Spinner(f)
	case Done:
		return "✓"
	case Failed:
		return "✗"
	default:
		return "·"
	}
}
