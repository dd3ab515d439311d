package scene

import (
	"math/rand"

	"github.com/JulianGoede/rtracer/pkg/core"
	"github.com/JulianGoede/rtracer/pkg/geometry"
	"github.com/JulianGoede/rtracer/pkg/material"
	"github.com/JulianGoede/rtracer/pkg/renderer"
)

// NewRandomSpheres creates a field of small randomly placed spheres
// around three large feature balls: glass, diffuse and brushed metal.
// The camera shutter stays open over [0, 1], motion-blurring the grid
// spheres that drift upward.
func NewRandomSpheres(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	info, err := Lookup("random-spheres")
	if err != nil {
		return nil, err
	}
	if aspectRatio <= 0 {
		aspectRatio = info.NativeAspect
	}

	ground, err := geometry.NewSphere(
		core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	)
	if err != nil {
		return nil, err
	}
	world := geometry.NewWorld(ground)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the area around the large metal ball clear
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			small, err := newGridSphere(chooseMat, center, random)
			if err != nil {
				return nil, err
			}
			world.Add(small)
		}
	}

	glassBall, err := geometry.NewSphere(
		core.NewVec3(0, 1, 0), 1,
		material.NewDielectric(material.RefractiveIndexWindowGlass),
	)
	if err != nil {
		return nil, err
	}
	diffuseBall, err := geometry.NewSphere(
		core.NewVec3(-4, 1, 0), 1,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)),
	)
	if err != nil {
		return nil, err
	}
	metalBall, err := geometry.NewSphere(
		core.NewVec3(4, 1, 0), 1,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.5),
	)
	if err != nil {
		return nil, err
	}
	world.Add(glassBall, diffuseBall, metalBall)

	return &Scene{
		Info:  info,
		World: world,
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          45.0,
			AspectRatio:   aspectRatio,
			Aperture:      0.1,
			FocusDistance: 10.0,
			Time0:         0.0,
			Time1:         1.0,
		},
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}, nil
}

// newGridSphere picks a material for one grid sphere: mostly diffuse,
// some brushed metal, a few glass. A quarter of the diffuse balls drift
// upward while the shutter is open.
func newGridSphere(chooseMat float64, center core.Vec3, random *rand.Rand) (geometry.Shape, error) {
	const radius = 0.2

	switch {
	case chooseMat < 0.8:
		mat := material.NewLambertian(core.RandomVec3(random, 0, 1))
		if chooseMat < 0.2 {
			lift := core.NewVec3(0, core.RandomRange(random, 0, 0.5), 0)
			return geometry.NewMovingSphere(center, center.Add(lift), 0, 1, radius, mat)
		}
		return geometry.NewSphere(center, radius, mat)
	case chooseMat < 0.95:
		albedo := core.RandomVec3(random, 0.5, 1)
		fuzz := core.RandomRange(random, 0.5, 1)
		return geometry.NewSphere(center, radius, material.NewMetal(albedo, fuzz))
	default:
		return geometry.NewSphere(center, radius, material.NewDielectric(material.RefractiveIndexWindowGlass))
	}
}
