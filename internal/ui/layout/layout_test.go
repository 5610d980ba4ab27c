package layout

import "testing"

func TestTooSmall(t *testing.T) {
	if !TooSmall(MinWidth-1, 24) {
		t.Error("expected TooSmall below minimum width")
	}
	if !TooSmall(80, MinHeight-1) {
		t.Error("expected TooSmall below minimum height")
	}
	if TooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should not be too small")
	}
}

func TestSplitVerticalSumsToHeight(t *testing.T) {
	areas := Split(80, 23, Vertical, 3)
	if len(areas) != 3 {
		t.Fatalf("expected 3 areas, got %d", len(areas))
	}
	sum := 0
	for _, a := range areas {
		if a.Width != 80 {
			t.Errorf("expected full width 80, got %d", a.Width)
		}
		sum += a.Height
	}
	if sum != 23 {
		t.Errorf("heights sum to %d, want 23", sum)
	}
	if areas[0].Height != 8 || areas[1].Height != 8 || areas[2].Height != 7 {
		t.Errorf("expected 8/8/7 split, got %d/%d/%d", areas[0].Height, areas[1].Height, areas[2].Height)
	}
}

func TestSplitHorizontalSumsToWidth(t *testing.T) {
	areas := Split(100, 30, Horizontal, 2)
	if len(areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(areas))
	}
	if areas[0].Width+areas[1].Width != 100 {
		t.Errorf("widths sum to %d, want 100", areas[0].Width+areas[1].Width)
	}
	for _, a := range areas {
		if a.Height != 30 {
			t.Errorf("expected full height 30, got %d", a.Height)
		}
	}
}

func TestSplitSingleTakesEverything(t *testing.T) {
	areas := Split(120, 39, Vertical, 1)
	if len(areas) != 1 || areas[0] != (Area{Width: 120, Height: 39}) {
		t.Errorf("expected one full area, got %+v", areas)
	}
}

func TestSplitZeroIsPlaceholder(t *testing.T) {
	areas := Split(120, 39, Horizontal, 0)
	if len(areas) != 1 || areas[0] != (Area{Width: 120, Height: 39}) {
		t.Errorf("expected one full placeholder area, got %+v", areas)
	}
}

func TestParseOrientation(t *testing.T) {
	for in, want := range map[string]Orientation{
		"vertical": Vertical, "V": Vertical, " Horizontal ": Horizontal, "h": Horizontal,
	} {
		got, err := ParseOrientation(in)
		if err != nil {
			t.Errorf("ParseOrientation(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseOrientation(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseOrientation("diagonal"); err == nil {
		t.Error("expected error for unknown orientation")
	}
}

func TestFlip(t *testing.T) {
	if Vertical.Flip() != Horizontal || Horizontal.Flip() != Vertical {
		t.Error("Flip should toggle orientation")
	}
}
