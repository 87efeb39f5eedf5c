package alpenglow

// Point is a 2D coordinate in path/user space. RenderPath subpaths are
// built from slices of Point; Matrix transforms and the arrange package's
// Vector2 both convert to and from it at the package boundary.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
