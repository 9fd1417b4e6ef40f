package cli

import (
	"testing"

	"github.com/func/overwrite/ui"
	"github.com/google/go-cmp/cmp"
)

func TestBoard_Render(t *testing.T) {
	b := &Board{Tasks: []Task{
		{Name: "fmt", Command: "cargo fmt", State: Running},
		{Name: "clippy", Command: "cargo clippy", State: Done},
		{Name: "node modules", Command: "npm install", State: Failed},
		{Name: "a very long task name", State: Pending},
	}}

	got := b.Render(ui.Frame{Number: 9, Width: 80})
	want := "fmt             cargo fmt ⠟\n" +
		"clippy          cargo clippy ✓\n" +
		"node modules    npm install ✗\n" +
		"a very long tas>·"
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Diff (-got +want)\n%s", diff)
	}
}

func TestDefaultTasks_wrap(t *testing.T) {
	b := &Board{Tasks: DefaultTasks()}
	out := b.Render(ui.Frame{Width: 80})

	var body ui.Body
	if err := body.Overwrite(out, discard{}, 80); err != nil {
		t.Fatal(err)
	}
	// Three short rows and one wrapping onto a second row.
	if got := body.Height(80); got != 5 {
		t.Errorf("Height() = %d, want 5", got)
	}
}

func TestSpinner(t *testing.T) {
	for n := 0; n < 20; n++ {
		got := Spinner(ui.Frame{Number: n})
		want := spinnerFrames[n%8]
		if got != want {
			t.Errorf("Spinner(%d) = %q, want %q", n, got, want)
		}
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
