// Package shape provides simple geometric value objects.
package shape

// Rectangle is an axis aligned rectangle defined by its sides.
type Rectangle struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns product of width and height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
