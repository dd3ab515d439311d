package renderer

import (
	"math"
	"math/rand"

	"github.com/JulianGoede/rtracer/pkg/core"
	"github.com/JulianGoede/rtracer/pkg/material"
)

// shadowAcneEpsilon is the minimum hit distance for scattered rays.
// Intersections closer than this are floating point noise from the
// surface the ray just left.
const shadowAcneEpsilon = 1e-3

// Hittable is the geometry surface the integrator traces against
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// Integrator computes the radiance arriving along camera rays
type Integrator struct {
	world       Hittable
	topColor    core.Vec3
	bottomColor core.Vec3
}

// NewIntegrator creates an integrator over the given world, with the sky
// blending from bottomColor at the horizon's nadir to topColor at its zenith
func NewIntegrator(world Hittable, topColor, bottomColor core.Vec3) *Integrator {
	return &Integrator{
		world:       world,
		topColor:    topColor,
		bottomColor: bottomColor,
	}
}

// RayColor returns the color seen along the ray, following scattered
// rays through at most depth bounces. Rays that run out of bounces or
// get absorbed contribute black.
func (in *Integrator) RayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	hit, isHit := in.world.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return in.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.NewVec3(0, 0, 0)
	}

	return scatter.Attenuation.MultiplyVec(in.RayColor(scatter.Scattered, depth-1, random))
}

// backgroundGradient blends the sky colors by the ray's vertical direction
func (in *Integrator) backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return in.bottomColor.Lerp(in.topColor, t)
}
