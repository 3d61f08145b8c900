// Package geometry holds the axis, anchor attribute, and rectangle types shared
// by constraint derivation and constraint verification.
package geometry

// Rect represents a solved frame. X and Y are the top-left corner;
// Width and Height are dimensions. All values share one coordinate space.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the trailing edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Value returns the coordinate or extent the attribute denotes on this frame.
func (r Rect) Value(attr Attribute) float64 {
	switch attr {
	case Leading:
		return r.X
	case Trailing:
		return r.Right()
	case Top:
		return r.Y
	case Bottom:
		return r.Bottom()
	case Width:
		return r.Width
	case Height:
		return r.Height
	case CenterX:
		return r.X + r.Width/2
	case CenterY:
		return r.Y + r.Height/2
	default:
		return 0
	}
}
