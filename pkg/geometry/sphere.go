package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/JulianGoede/rtracer/pkg/core"
	"github.com/JulianGoede/rtracer/pkg/material"
)

// Construction contract violations reported by the shape constructors
var (
	ErrInvalidRadius  = errors.New("sphere radius must be positive")
	ErrNilMaterial    = errors.New("shape material must not be nil")
	ErrInvalidShutter = errors.New("shutter interval end must not precede its start")
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if mat == nil {
		return nil, ErrNilMaterial
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(ray, s.Center, s.Radius, s.Material, tMin, tMax)
}

// hitSphere solves |O + tD - C|² = r² for t and accepts the nearest root
// within [tMin, tMax]
func hitSphere(ray core.Ray, center core.Vec3, radius float64, mat material.Material, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			// Both intersections are outside valid range
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	// Outward normal points from center to hit point; SetFaceNormal flips
	// it when the ray arrives from inside
	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
