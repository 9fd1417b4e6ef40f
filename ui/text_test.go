package ui_test

import (
	"fmt"
	"testing"

	"github.com/func/overwrite/ui"
	"github.com/mattn/go-runewidth"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name string
		str  string
		cols int
		tail string
		want string
	}{
		{
			name: "Empty",
			str:  "",
			cols: 4,
			want: "    ",
		},
		{
			name: "Pad",
			str:  "fmt",
			cols: 6,
			want: "fmt   ",
		},
		{
			name: "Exact",
			str:  "clippy",
			cols: 6,
			want: "clippy",
		},
		{
			name: "Cut",
			str:  "node modules",
			cols: 8,
			tail: ">",
			want: "node mo>",
		},
		{
			name: "Wide",
			str:  "✅ ok",
			cols: 6,
			want: "✅ ok ",
		},
		{
			name: "ZeroCols",
			str:  "foo",
			cols: 0,
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ui.Fit(tc.str, tc.cols, tc.tail)
			if got != tc.want {
				t.Errorf("Fit() = %q, want %q", got, tc.want)
			}
			if tc.cols > 0 {
				if w := runewidth.StringWidth(got); w != tc.cols {
					t.Errorf("Fit() returned %d cells, want %d", w, tc.cols)
				}
			}
		})
	}
}

func ExampleCols() {
	cols := ui.Cols("foo", "", "baz")
	fmt.Println(cols)
	// Output: foo baz
}
