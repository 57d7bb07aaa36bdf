package geometry

// Intersects reports whether a and b share at least one grid point.
// Touching edges count as an intersection.
func Intersects(a, b Rectangle) bool {
	if a.x2 < b.x1 || b.x2 < a.x1 {
		return false
	}
	return a.y2 >= b.y1 && b.y2 >= a.y1
}

// Intersection returns the overlapping rectangle and true, or the zero value
// and false when a and b are disjoint. It agrees with Intersects.
func Intersection(a, b Rectangle) (Rectangle, bool) {
	left := max(a.x1, b.x1)
	right := min(a.x2, b.x2)
	bottom := max(a.y1, b.y1)
	top := min(a.y2, b.y2)

	if left <= right && bottom <= top {
		return Rectangle{x1: left, y1: bottom, x2: right, y2: top}, true
	}
	return Rectangle{}, false
}

// IntersectionArea returns the number of cells shared by a and b, or 0.
func IntersectionArea(a, b Rectangle) int64 {
	if r, ok := Intersection(a, b); ok {
		return r.Area()
	}
	return 0
}
