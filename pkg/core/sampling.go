package core

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a PCG stream with the given seed
func NewSeededSampler(seed uint64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewPCG(seed, seed^pcgStreamSalt)))
}

// NewPixelSampler creates the sampler for one (pixel, sample) pair. The stream only
// depends on its arguments, so a render is reproducible whatever order the pixels
// are traced in.
func NewPixelSampler(seed uint64, px, py, sample int) *RandomSampler {
	hi, lo := PixelSeed(seed, px, py, sample)
	return NewRandomSampler(rand.New(rand.NewPCG(hi, lo)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

const pcgStreamSalt = 0x9e3779b97f4a7c15

// PixelSeed derives the two PCG seed words for a (pixel, sample) pair from the render seed
func PixelSeed(seed uint64, px, py, sample int) (uint64, uint64) {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(px))
	binary.LittleEndian.PutUint64(buf[16:], uint64(py))
	binary.LittleEndian.PutUint64(buf[24:], uint64(sample))
	hi := xxhash.Sum64(buf[:])

	binary.LittleEndian.PutUint64(buf[0:], seed^pcgStreamSalt)
	lo := xxhash.Sum64(buf[:])
	return hi, lo
}

// SampleSquare maps a sample in [0,1)² to [-1,1)²
func SampleSquare(sample Vec2) Vec2 {
	return NewVec2(2*sample.X-1, 2*sample.Y-1)
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal.
// The returned direction is unit length and strictly above the surface.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	// Generate point in unit disk using uniform random sampling
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	// Create local coordinate system around normal
	// Find a vector perpendicular to normal
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	// Create orthonormal basis
	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	// Transform to world space
	dir := tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(zCoord)).Normalize()
	if dir.Dot(normal) <= 0 {
		return normal
	}
	return dir
}
