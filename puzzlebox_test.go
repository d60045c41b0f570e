package puzzlebox

import "testing"

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Overlaps ---

func TestOverlaps(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"touching right edge", Rect{110, 10, 50, 50}, true},
		{"touching bottom edge", Rect{10, 110, 50, 50}, true},
		{"touching corner", Rect{110, 110, 5, 5}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
		{"disjoint below", Rect{10, 111, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.other); got != tt.expect {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", base, tt.other, got, tt.expect)
			}
			if got := Overlaps(tt.other, base); got != tt.expect {
				t.Errorf("Overlaps(%v, %v) = %v, want %v (symmetry)", tt.other, base, got, tt.expect)
			}
		})
	}
}

func TestParseScrollPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ScrollPolicy
		wantErr bool
	}{
		{"", ScrollForceDrop, false},
		{"force-drop", ScrollForceDrop, false},
		{"Compensate", ScrollCompensate, false},
		{"sideways", ScrollForceDrop, true},
	}
	for _, tt := range tests {
		got, err := ParseScrollPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseScrollPolicy(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseScrollPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseContentKind(t *testing.T) {
	tests := []struct {
		in   string
		want ContentKind
	}{
		{"", ContentText},
		{"text", ContentText},
		{"image", ContentImage},
		{"html", ContentMarkup},
		{"markup", ContentMarkup},
		{"none", ContentNone},
	}
	for _, tt := range tests {
		got, err := ParseContentKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseContentKind(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseContentKind("video"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
