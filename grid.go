package main

// intPoint represents an integer coordinate on the map grid.
type intPoint struct {
	x int
	y int
}

// perimeterTargets lists the edge cells of a width x height grid. The
// visibility fallback casts a line toward each of them.
func perimeterTargets(width, height int) []intPoint {
	if width <= 0 || height <= 0 {
		return nil
	}
	points := make([]intPoint, 0, 2*(width+height))
	for x := 0; x < width; x++ {
		points = append(points, intPoint{x: x, y: 0})
		if height > 1 {
			points = append(points, intPoint{x: x, y: height - 1})
		}
	}
	for y := 1; y < height-1; y++ {
		points = append(points, intPoint{x: 0, y: y})
		if width > 1 {
			points = append(points, intPoint{x: width - 1, y: y})
		}
	}
	return points
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
