package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/JulianGoede/rtracer/pkg/core"
)

func TestNewMovingSphere_Validation(t *testing.T) {
	center0 := core.NewVec3(0, 0, 0)
	center1 := core.NewVec3(1, 0, 0)

	tests := []struct {
		name         string
		radius       float64
		time0, time1 float64
		nilMaterial  bool
		expectedErr  error
	}{
		{name: "negative radius", radius: -1, time0: 0, time1: 1, expectedErr: ErrInvalidRadius},
		{name: "nil material", radius: 1, time0: 0, time1: 1, nilMaterial: true, expectedErr: ErrNilMaterial},
		{name: "reversed shutter", radius: 1, time0: 1, time1: 0, expectedErr: ErrInvalidShutter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mat := testMaterial()
			if tt.nilMaterial {
				mat = nil
			}
			sphere, err := NewMovingSphere(center0, center1, tt.time0, tt.time1, tt.radius, mat)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("Expected error %v, got %v", tt.expectedErr, err)
			}
			if sphere != nil {
				t.Errorf("Expected nil sphere on construction error, got %v", sphere)
			}
		})
	}
}

func TestMovingSphere_CenterAt(t *testing.T) {
	sphere, err := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 4, 6),
		0.0, 1.0, 0.5, testMaterial(),
	)
	if err != nil {
		t.Fatalf("NewMovingSphere: %v", err)
	}

	tests := []struct {
		name     string
		time     float64
		expected core.Vec3
	}{
		{name: "shutter open", time: 0.0, expected: core.NewVec3(0, 0, 0)},
		{name: "midpoint", time: 0.5, expected: core.NewVec3(1, 2, 3)},
		{name: "shutter close", time: 1.0, expected: core.NewVec3(2, 4, 6)},
		{name: "extrapolates past close", time: 1.5, expected: core.NewVec3(3, 6, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := sphere.CenterAt(tt.time)
			if center.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected center %v at time %v, got %v", tt.expected, tt.time, center)
			}
		})
	}
}

func TestMovingSphere_CenterAt_DegenerateInterval(t *testing.T) {
	// With a zero-length shutter the sphere stays at its start position
	sphere, err := NewMovingSphere(
		core.NewVec3(1, 2, 3), core.NewVec3(9, 9, 9),
		0.5, 0.5, 1.0, testMaterial(),
	)
	if err != nil {
		t.Fatalf("NewMovingSphere: %v", err)
	}

	for _, time := range []float64{0.0, 0.5, 1.0} {
		center := sphere.CenterAt(time)
		if center.Subtract(core.NewVec3(1, 2, 3)).Length() > 1e-12 {
			t.Errorf("Expected static center (1,2,3) at time %v, got %v", time, center)
		}
	}
}

func TestMovingSphere_Hit_FollowsRayTime(t *testing.T) {
	// Sphere sweeps from x=0 to x=4 over the shutter; a ray down the z
	// axis only hits while the sphere sits near x=0
	sphere, err := NewMovingSphere(
		core.NewVec3(0, 0, -5), core.NewVec3(4, 0, -5),
		0.0, 1.0, 1.0, testMaterial(),
	)
	if err != nil {
		t.Fatalf("NewMovingSphere: %v", err)
	}

	origin := core.NewVec3(0, 0, 0)
	direction := core.NewVec3(0, 0, -1)

	earlyRay := core.NewTimedRay(origin, direction, 0.0)
	hit, isHit := sphere.Hit(earlyRay, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit at shutter open, got miss")
	}
	if math.Abs(hit.T-4.0) > 1e-12 {
		t.Errorf("Expected t=4 at shutter open, got %v", hit.T)
	}

	lateRay := core.NewTimedRay(origin, direction, 1.0)
	if hit, isHit := sphere.Hit(lateRay, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss at shutter close, but hit at t=%v", hit.T)
	}

	// At t=0.25 the center sits at x=1, exactly one radius off axis, so
	// the ray grazes the surface
	grazeRay := core.NewTimedRay(origin, direction, 0.25)
	if _, isHit := sphere.Hit(grazeRay, 0.001, math.Inf(1)); !isHit {
		t.Error("Expected grazing hit with center one radius off axis")
	}
}
