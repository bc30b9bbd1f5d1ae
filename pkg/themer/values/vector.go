package values

import "fmt"

// Vec2 is used for sizes and margins.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3D vector, e.g. a text shadow offset.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Insets defines spacing on all four sides of an element.
type Insets struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// UniformInsets creates Insets with the same value on all sides.
func UniformInsets(value float32) Insets {
	return Insets{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}
