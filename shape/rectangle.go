package shape

// Rectangle is an axis-aligned rectangle value. Fields are exported and
// tagged so the value round-trips through JSON with lowercase keys.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle returns a Rectangle with the given dimensions. Values are
// taken as-is; no range validation is performed.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns width × height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
