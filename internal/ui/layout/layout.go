package layout

import (
	"fmt"
	"strings"
)

// Orientation is the direction panels are stacked in.
type Orientation int

const (
	// Vertical stacks panels top to bottom.
	Vertical Orientation = iota
	// Horizontal places panels side by side.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ParseOrientation accepts "vertical"/"v" and "horizontal"/"h", any case.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown orientation %q (valid: vertical, horizontal)", s)
}

// Area is the size in cells of one panel, borders included.
type Area struct {
	Width  int
	Height int
}

const (
	MinWidth  = 20
	MinHeight = 6
)

// TooSmall reports whether the terminal cannot hold a bordered panel plus the
// status bar.
func TooSmall(termWidth, termHeight int) bool {
	return termWidth < MinWidth || termHeight < MinHeight
}

// Split divides a width x height region equally among n panels along the
// orientation. Leftover cells go to the leading panels so the areas always
// sum to the region exactly. n <= 0 yields one area covering the region.
func Split(width, height int, o Orientation, n int) []Area {
	if n <= 0 {
		return []Area{{Width: width, Height: height}}
	}

	total := height
	if o == Horizontal {
		total = width
	}
	base, extra := total/n, total%n

	areas := make([]Area, n)
	for i := range areas {
		size := base
		if i < extra {
			size++
		}
		if o == Horizontal {
			areas[i] = Area{Width: size, Height: height}
		} else {
			areas[i] = Area{Width: width, Height: size}
		}
	}
	return areas
}
