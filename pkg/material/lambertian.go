package material

import (
	"math/rand"

	"github.com/JulianGoede/rtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	// Offset the normal by a random unit vector to approximate a
	// cosine-weighted hemisphere distribution
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// Degenerate case: the random vector cancelled the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered := core.NewTimedRay(hit.Point, scatterDirection, rayIn.Time)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}
