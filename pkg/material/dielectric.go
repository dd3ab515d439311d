package material

import (
	"math"
	"math/rand"

	"github.com/JulianGoede/rtracer/pkg/core"
)

// Refractive indices of common media, relative to vacuum
const (
	RefractiveIndexVacuum      = 1.0
	RefractiveIndexWater       = 1.333 // at 20°C
	RefractiveIndexWindowGlass = 1.52
	RefractiveIndexDiamond     = 2.417
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.52 for window glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Determine if we're entering or exiting the material
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // Ray is entering the material (from air to glass)
	} else {
		refractionRatio = d.RefractiveIndex // Ray is exiting the material (from glass to air)
	}

	unitDirection := rayIn.Direction.Normalize()

	// Calculate the cosine of the angle between ray and normal
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)

	// Refraction is impossible under total internal reflection, and
	// unlikely at grazing angles per Schlick's reflectance
	var direction core.Vec3
	refracted, canRefract := core.Refract(unitDirection, hit.Normal, refractionRatio)
	if !canRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = refracted
	}

	scattered := core.NewTimedRay(hit.Point, direction, rayIn.Time)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
