package geometry

import (
	"fmt"

	"github.com/JulianGoede/rtracer/pkg/core"
	"github.com/JulianGoede/rtracer/pkg/material"
)

// MovingSphere is a sphere whose center travels linearly from Center0 at
// Time0 to Center1 at Time1. Rays carry the shutter time at which they were
// generated, so each ray sees the sphere where it was at that instant.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a sphere animated over the given shutter interval
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) (*MovingSphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if mat == nil {
		return nil, ErrNilMaterial
	}
	if time1 < time0 {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidShutter, time0, time1)
	}
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}, nil
}

// CenterAt returns the interpolated center position at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time0 == s.Time1 {
		return s.Center0
	}
	progress := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(progress))
}

// Hit tests if a ray intersects the sphere at the ray's shutter time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(ray, s.CenterAt(ray.Time), s.Radius, s.Material, tMin, tMax)
}
