package scene

import (
	"math/rand"

	"github.com/JulianGoede/rtracer/pkg/core"
	"github.com/JulianGoede/rtracer/pkg/geometry"
	"github.com/JulianGoede/rtracer/pkg/material"
	"github.com/JulianGoede/rtracer/pkg/renderer"
)

// NewDefaultScene creates the default scene: a diffuse ball flanked by a
// glass ball and a polished gold ball, resting on a large yellow ground
// sphere under a blue-to-white sky
func NewDefaultScene(aspectRatio float64, _ *rand.Rand) (*Scene, error) {
	info, err := Lookup("default")
	if err != nil {
		return nil, err
	}
	if aspectRatio <= 0 {
		aspectRatio = info.NativeAspect
	}

	ground, err := geometry.NewSphere(
		core.NewVec3(0, -100.5, -1), 100,
		material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)),
	)
	if err != nil {
		return nil, err
	}
	centerBall, err := geometry.NewSphere(
		core.NewVec3(0, 0, -1), 0.5,
		material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)),
	)
	if err != nil {
		return nil, err
	}
	leftBall, err := geometry.NewSphere(
		core.NewVec3(-1, 0, -1), 0.5,
		material.NewDielectric(material.RefractiveIndexWindowGlass),
	)
	if err != nil {
		return nil, err
	}
	rightBall, err := geometry.NewSphere(
		core.NewVec3(1, 0, -1), 0.5,
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0),
	)
	if err != nil {
		return nil, err
	}

	lookFrom := core.NewVec3(-2, 2, 1)
	lookAt := core.NewVec3(0, 0, -1)

	return &Scene{
		Info:  info,
		World: geometry.NewWorld(centerBall, ground, leftBall, rightBall),
		CameraConfig: renderer.CameraConfig{
			LookFrom:      lookFrom,
			LookAt:        lookAt,
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20.0,
			AspectRatio:   aspectRatio,
			Aperture:      0.5,
			FocusDistance: lookFrom.Subtract(lookAt).Length(),
		},
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}, nil
}
