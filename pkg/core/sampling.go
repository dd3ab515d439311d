package core

import "math/rand"

// RandomRange returns a random float64 in [minVal, maxVal)
func RandomRange(random *rand.Rand, minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*random.Float64()
}

// RandomVec3 returns a vector with each component drawn from [minVal, maxVal)
func RandomVec3(random *rand.Rand, minVal, maxVal float64) Vec3 {
	return Vec3{
		X: RandomRange(random, minVal, maxVal),
		Y: RandomRange(random, minVal, maxVal),
		Z: RandomRange(random, minVal, maxVal),
	}
}

// RandomInUnitSphere generates a random point inside the unit sphere by
// rejection sampling: draw from the bounding cube until the point falls
// inside. The loop terminates with probability 1, after ~2 draws on average.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3(random, -1, 1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit
// sphere by normalizing a rejection-sampled interior point
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInHemisphere generates a random point in the unit hemisphere
// oriented around the given normal
func RandomInHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	inUnitSphere := RandomInUnitSphere(random)
	if inUnitSphere.Dot(normal) > 0.0 {
		return inUnitSphere
	}
	return inUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		// Accept if inside unit disk
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}
