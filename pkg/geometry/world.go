package geometry

import (
	"github.com/JulianGoede/rtracer/pkg/core"
	"github.com/JulianGoede/rtracer/pkg/material"
)

// World is an ordered collection of shapes tested linearly for the nearest
// intersection. Insertion order does not affect which surface is nearest,
// only how exact ties are broken.
type World struct {
	shapes []Shape
}

// NewWorld creates a world containing the given shapes
func NewWorld(shapes ...Shape) *World {
	return &World{shapes: shapes}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...Shape) {
	w.shapes = append(w.shapes, shapes...)
}

// Count returns the number of shapes in the world
func (w *World) Count() int {
	return len(w.shapes)
}

// Hit finds the nearest intersection along the ray within [tMin, tMax].
// The upper search bound shrinks to the best t seen so far, and the best
// hit is replaced only on a strictly smaller t, so two surfaces at the
// exact same distance resolve to the one added first.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			if closest != nil && hit.T >= closest.T {
				continue
			}
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}
