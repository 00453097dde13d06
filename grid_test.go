package boxdraw

import "testing"

func TestNewGridDimensions(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantRows    int
		wantColumns int
	}{
		{name: "single line", text: "---", wantRows: 1, wantColumns: 3},
		{name: "two lines ragged", text: "ab\nabcd", wantRows: 2, wantColumns: 4},
		{name: "trailing newline", text: "a\n", wantRows: 2, wantColumns: 1},
		{name: "empty", text: "", wantRows: 1, wantColumns: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.text)
			if got := g.Rows(); got != tt.wantRows {
				t.Errorf("Rows() = %d, want %d", got, tt.wantRows)
			}
			if got := g.Columns(); got != tt.wantColumns {
				t.Errorf("Columns() = %d, want %d", got, tt.wantColumns)
			}
		})
	}
}

func TestGridGetCovers(t *testing.T) {
	g := NewGrid("a-b")

	cell, ok := g.Get(NewLoc(1, 0))
	if !ok || cell.String != "-" {
		t.Fatalf("Get(1,0) = %+v, %v; want \"-\", true", cell, ok)
	}

	if _, ok := g.Get(NewLoc(3, 0)); ok {
		t.Errorf("Get(3,0) should miss past row end")
	}
	if _, ok := g.Get(NewLoc(0, 5)); ok {
		t.Errorf("Get(0,5) should miss past last row")
	}
	if _, ok := g.Get(NewLoc(-1, 0)); ok {
		t.Errorf("Get(-1,0) should miss negative column")
	}
}

func TestNewGridFoldsCombiningMarks(t *testing.T) {
	// "e" + combining acute accent (U+0301) folds into one cell.
	g := NewGrid("éx")

	if got := g.RowWidth(0); got != 2 {
		t.Fatalf("RowWidth(0) = %d, want 2", got)
	}
	cell, ok := g.Get(NewLoc(0, 0))
	if !ok || cell.String != "é" {
		t.Fatalf("Get(0,0) = %+v, %v; want folded combining mark", cell, ok)
	}
	cell, ok = g.Get(NewLoc(1, 0))
	if !ok || cell.String != "x" {
		t.Fatalf("Get(1,0) = %+v, %v; want \"x\"", cell, ok)
	}
}

func TestNewGridDropsLeadingCombiningMark(t *testing.T) {
	g := NewGrid("́x")
	if got := g.RowWidth(0); got != 1 {
		t.Fatalf("RowWidth(0) = %d, want 1 (leading combiner dropped)", got)
	}
}

func TestIsChar(t *testing.T) {
	g := NewGrid("-|")
	if !g.IsChar(NewLoc(0, 0), isHorizontal) {
		t.Errorf("IsChar(0,0, isHorizontal) = false, want true")
	}
	if g.IsChar(NewLoc(5, 0), isHorizontal) {
		t.Errorf("IsChar out of range should be false, not panic or true")
	}
}
