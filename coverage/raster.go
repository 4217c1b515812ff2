package coverage

// edgeFunction returns the signed area parallelogram value of point c against
// the directed edge a->b. Zero means c is on the edge's line.
func edgeFunction(a, b, c projectedVertex) int {
	return (c.x-a.x)*(b.y-a.y) - (c.y-a.y)*(b.x-a.x)
}

// rasterizeTriangle marks every mask cell inside (or on the boundary of) the
// triangle p0 p1 p2 as covered. A cell is inside iff its three edge values
// share a sign, which handles both windings without a separate orientation
// step; degenerate zero-area triangles mark nothing observable. Marking is a
// logical OR, so the final mask is independent of triangle order.
func rasterizeTriangle(m *Mask, p0, p1, p2 projectedVertex) {
	minX := min3(p0.x, p1.x, p2.x)
	minY := min3(p0.y, p1.y, p2.y)
	maxX := max3(p0.x, p1.x, p2.x)
	maxY := max3(p0.y, p1.y, p2.y)

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > m.width-1 {
		maxX = m.width - 1
	}
	if maxY > m.height-1 {
		maxY = m.height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := projectedVertex{x: x, y: y}
			e0 := edgeFunction(p0, p1, c)
			e1 := edgeFunction(p1, p2, c)
			e2 := edgeFunction(p2, p0, c)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				m.mark(x, y)
			}
		}
	}
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
