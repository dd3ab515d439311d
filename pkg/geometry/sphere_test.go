package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/JulianGoede/rtracer/pkg/core"
	"github.com/JulianGoede/rtracer/pkg/material"
)

func testMaterial() material.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func mustSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	sphere, err := NewSphere(center, radius, testMaterial())
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return sphere
}

func TestNewSphere_Validation(t *testing.T) {
	tests := []struct {
		name        string
		radius      float64
		mat         material.Material
		expectedErr error
	}{
		{name: "zero radius", radius: 0, mat: testMaterial(), expectedErr: ErrInvalidRadius},
		{name: "negative radius", radius: -0.5, mat: testMaterial(), expectedErr: ErrInvalidRadius},
		{name: "nil material", radius: 1, mat: nil, expectedErr: ErrNilMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere, err := NewSphere(core.NewVec3(0, 0, 0), tt.radius, tt.mat)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("Expected error %v, got %v", tt.expectedErr, err)
			}
			if sphere != nil {
				t.Errorf("Expected nil sphere on construction error, got %v", sphere)
			}
		})
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	// A ray that never crosses the sphere misses for every interval
	intervals := []struct{ tMin, tMax float64 }{
		{0.001, 1000.0},
		{0, math.Inf(1)},
		{-10, 10},
	}
	for _, interval := range intervals {
		if hit, isHit := sphere.Hit(ray, interval.tMin, interval.tMax); isHit {
			t.Errorf("Expected miss over [%v, %v], but got hit at t=%f", interval.tMin, interval.tMax, hit.T)
		}
	}
}

func TestSphere_Hit_HeadOn(t *testing.T) {
	// A ray aimed at the center from distance d hits the near surface at
	// t = d - r with the normal reversed against the ray
	sphere := mustSphere(t, core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected head-on hit, got miss")
	}

	if math.Abs(hit.T-4.0) > 1e-12 {
		t.Errorf("Expected t = d - r = 4, got %v", hit.T)
	}

	expectedNormal := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(expectedNormal).Length() > 1e-12 {
		t.Errorf("Expected normal %v opposing the ray, got %v", expectedNormal, hit.Normal)
	}

	if !hit.FrontFace {
		t.Error("Expected front face hit from outside the sphere")
	}

	if hit.Point.Subtract(core.NewVec3(0, 0, -4)).Length() > 1e-12 {
		t.Errorf("Expected hit point (0,0,-4), got %v", hit.Point)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_IntervalSelectsRoot(t *testing.T) {
	// Sphere surfaces at t=4 and t=6 along this ray
	sphere := mustSphere(t, core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{name: "both roots valid takes nearer", tMin: 0.001, tMax: 100, expectHit: true, expectedT: 4},
		{name: "near root excluded takes farther", tMin: 4.5, tMax: 100, expectHit: true, expectedT: 6},
		{name: "both roots below interval", tMin: 6.5, tMax: 100, expectHit: false},
		{name: "both roots above interval", tMin: 0.001, tMax: 3.5, expectHit: false},
		{name: "interval between roots", tMin: 4.5, tMax: 5.5, expectHit: false},
		{name: "far root exactly at bound", tMin: 4.5, tMax: 6, expectHit: true, expectedT: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if tt.expectHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_UnnormalizedDirection(t *testing.T) {
	// The quadratic handles non-unit directions; t scales inversely with
	// the direction length
	sphere := mustSphere(t, core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, got miss")
	}

	if math.Abs(hit.T-2.0) > 1e-12 {
		t.Errorf("Expected t=2 for doubled direction, got %v", hit.T)
	}

	if math.Abs(hit.Normal.Length()-1.0) > 1e-12 {
		t.Errorf("Normal should stay unit length, got %v", hit.Normal.Length())
	}
}
