package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/JulianGoede/rtracer/pkg/core"
)

// CameraConfig describes camera placement, lens geometry and shutter timing
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera faces
	Up            core.Vec3 // World up, tilts the film plane
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Viewport width over height
	Aperture      float64   // Lens diameter; 0 disables defocus blur
	FocusDistance float64   // Distance to the plane of perfect focus
	Time0         float64   // Shutter open time
	Time1         float64   // Shutter close time
}

// Camera generates primary rays through a thin lens onto the focus plane
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera builds a camera from the given configuration.
// The viewport is sized so that rays through its corners converge
// exactly on the focus plane.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAspect, config.AspectRatio)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFov, config.VFov)
	}
	if config.Aperture < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidAperture, config.Aperture)
	}
	if config.FocusDistance <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFocusDistance, config.FocusDistance)
	}
	if config.Time1 < config.Time0 {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidShutter, config.Time0, config.Time1)
	}

	view := config.LookFrom.Subtract(config.LookAt)
	if view.NearZero() {
		return nil, ErrDegenerateView
	}
	w := view.Normalize()
	uRaw := config.Up.Cross(w)
	if uRaw.NearZero() {
		return nil, ErrDegenerateUp
	}

	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	u := uRaw.Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * config.FocusDistance)
	vertical := v.Multiply(viewportHeight * config.FocusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1,
// with (0, 0) at the lower left corner of the viewport. With a nonzero
// aperture the ray origin jitters across the lens disk, and the ray time
// is drawn from the shutter interval.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0
	if c.time1 > c.time0 {
		time = core.RandomRange(random, c.time0, c.time1)
	}

	return core.NewTimedRay(origin, direction, time)
}
