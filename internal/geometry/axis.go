package geometry

// Axis identifies one of the two layout axes.
type Axis uint8

const (
	Horizontal Axis = iota // Leading to trailing
	Vertical               // Top to bottom
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Size returns the extent attribute of the axis (width or height).
func (a Axis) Size() Attribute {
	if a == Horizontal {
		return Width
	}
	return Height
}

// Leading returns the attribute of the edge where the axis starts.
func (a Axis) Leading() Attribute {
	if a == Horizontal {
		return Leading
	}
	return Top
}

// Trailing returns the attribute of the edge where the axis ends.
func (a Axis) Trailing() Attribute {
	if a == Horizontal {
		return Trailing
	}
	return Bottom
}

// Center returns the attribute of the axis midpoint.
func (a Axis) Center() Attribute {
	if a == Horizontal {
		return CenterX
	}
	return CenterY
}

// Attribute names a symbolic anchor on an element: an edge, an extent, or a center.
type Attribute uint8

const (
	Leading Attribute = iota
	Trailing
	Top
	Bottom
	Width
	Height
	CenterX
	CenterY
)

var attributeNames = [...]string{
	Leading:  "leading",
	Trailing: "trailing",
	Top:      "top",
	Bottom:   "bottom",
	Width:    "width",
	Height:   "height",
	CenterX:  "centerX",
	CenterY:  "centerY",
}

// String returns the attribute name as it appears in rendered constraints.
func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return "unknown"
}
