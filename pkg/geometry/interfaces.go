package geometry

import (
	"github.com/JulianGoede/rtracer/pkg/core"
	"github.com/JulianGoede/rtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit tests the ray against the shape over the closed interval
	// [tMin, tMax] and reports the nearest intersection, if any
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
