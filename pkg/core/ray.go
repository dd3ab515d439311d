package core

// Ray represents a ray with an origin, a direction and the shutter time at
// which it was generated. Rays are immutable once constructed.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a new ray at shutter time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewTimedRay creates a new ray stamped with a shutter time
func NewTimedRay(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
