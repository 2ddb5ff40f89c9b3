package targeting

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PolygonCache memoizes unit-circle polygons by side count. Entries are built
// on first request and never change or get evicted; callers must not modify
// the returned slices. Not safe for concurrent first use of a side count.
type PolygonCache struct {
	entries map[int][]rl.Vector2
}

func NewPolygonCache() *PolygonCache {
	return &PolygonCache{entries: make(map[int][]rl.Vector2)}
}

// Get returns sides points evenly spaced on the unit circle starting at angle 0.
// Fewer than 3 sides has no area and yields the single point (0, 0).
func (c *PolygonCache) Get(sides int) []rl.Vector2 {
	if sides < 3 {
		sides = 1
	}
	if points, ok := c.entries[sides]; ok {
		return points
	}

	points := make([]rl.Vector2, sides)
	if sides > 1 {
		step := 2 * math.Pi / float64(sides)
		for k := range points {
			angle := float64(k) * step
			points[k] = rl.Vector2{X: float32(math.Cos(angle)), Y: float32(math.Sin(angle))}
		}
	}
	c.entries[sides] = points
	return points
}
