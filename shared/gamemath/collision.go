package gamemath

// CircleCircle reports whether two circles overlap. Circles that exactly touch
// do not collide.
func CircleCircle(ax, ay, ar, bx, by, br float64) bool {
	dx := bx - ax
	dy := by - ay
	sum := ar + br
	return dx*dx+dy*dy < sum*sum
}

// NearestOnRect clamps (px, py) onto the axis-aligned rectangle centered at
// (rx, ry) with the given half extents.
func NearestOnRect(px, py, rx, ry, halfW, halfH float64) (float64, float64) {
	return Clamp(px, rx-halfW, rx+halfW), Clamp(py, ry-halfH, ry+halfH)
}

// CircleRect reports whether a circle overlaps an axis-aligned rectangle given
// by its center and half extents.
func CircleRect(cx, cy, r, rx, ry, halfW, halfH float64) bool {
	nx, ny := NearestOnRect(cx, cy, rx, ry, halfW, halfH)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy < r*r
}

// SeparateCircleRect returns the circle center moved out of the rectangle so
// the two just touch. Centers inside the rectangle leave through the nearest face.
func SeparateCircleRect(cx, cy, r, rx, ry, halfW, halfH float64) (float64, float64) {
	nx, ny := NearestOnRect(cx, cy, rx, ry, halfW, halfH)
	dx := cx - nx
	dy := cy - ny
	if dx != 0 || dy != 0 {
		dist := Length(dx, dy)
		return nx + dx/dist*r, ny + dy/dist*r
	}

	left := cx - (rx - halfW)
	right := (rx + halfW) - cx
	top := cy - (ry - halfH)
	bottom := (ry + halfH) - cy
	switch min(left, right, top, bottom) {
	case left:
		return rx - halfW - r, cy
	case right:
		return rx + halfW + r, cy
	case top:
		return cx, ry - halfH - r
	default:
		return cx, ry + halfH + r
	}
}

// SpansOverlap reports whether the open intervals (aLeft, aRight) and
// (bLeft, bRight) intersect. Touching edges do not overlap.
func SpansOverlap(aLeft, aRight, bLeft, bRight float64) bool {
	return aRight > bLeft && aLeft < bRight
}
