package boxdraw

import "testing"

func TestClassifyPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(string) bool
		yes  []string
		no   []string
	}{
		{name: "isVertical", pred: isVertical, yes: []string{"|"}, no: []string{"-", "", "I"}},
		{name: "isHorizontal", pred: isHorizontal, yes: []string{"-"}, no: []string{"_", "="}},
		{name: "isLowHorizontal", pred: isLowHorizontal, yes: []string{"_"}, no: []string{"-"}},
		{name: "isSlantRight", pred: isSlantRight, yes: []string{"/"}, no: []string{`\`}},
		{name: "isSlantLeft", pred: isSlantLeft, yes: []string{`\`}, no: []string{"/"}},
		{name: "isRound", pred: isRound, yes: []string{".", "'", "`", ","}, no: []string{"-", "o"}},
		{name: "isLowRound", pred: isLowRound, yes: []string{".", ","}, no: []string{"'", "`"}},
		{name: "isO lowercase only", pred: isO, yes: []string{"o"}, no: []string{"O", "0"}},
		{name: "isMarker", pred: isMarker, yes: []string{"o", "*"}, no: []string{"O", "+"}},
		{name: "isArrowDown both cases", pred: isArrowDown, yes: []string{"v", "V"}, no: []string{"^"}},
		{name: "isAlphanumeric", pred: isAlphanumeric, yes: []string{"a", "9", "Z"}, no: []string{" ", "-", ""}},
		{name: "isSpace", pred: isSpace, yes: []string{" "}, no: []string{"", "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.yes {
				if !tt.pred(s) {
					t.Errorf("%s(%q) = false, want true", tt.name, s)
				}
			}
			for _, s := range tt.no {
				if tt.pred(s) {
					t.Errorf("%s(%q) = true, want false", tt.name, s)
				}
			}
		})
	}
}
