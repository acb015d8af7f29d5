// Package lehmer implements the Park–Miller multiplicative congruential
// generator with 256 independently seeded streams.
package lehmer

import (
	"crypto/rand"
	"encoding/binary"
)

const (
	modulus    = 2147483647 // 2^31 - 1
	multiplier = 48271
	jump       = 22925 // plants stream j from stream j-1

	// Streams is the number of independent streams a Generator holds.
	Streams = 256

	// DefaultSeed is used when Reseed is given zero.
	DefaultSeed = 123456789
)

// Generator is a multi-stream Lehmer generator. It is not safe for
// concurrent use.
type Generator struct {
	seeds  [Streams]int64
	warm   [Streams]bool
	stream int
}

// New returns a Generator planted from seed. See Reseed for how seed is read.
func New(seed int64) *Generator {
	g := &Generator{}
	g.Reseed(seed)
	return g
}

// Reseed plants every stream from seed and makes stream 0 active. Each
// stream discards its first value when it is first selected, stream 0
// included. A negative seed draws the seed from system entropy, zero means
// DefaultSeed, and anything else is reduced modulo 2^31-1.
func (g *Generator) Reseed(seed int64) {
	switch {
	case seed < 0:
		seed = entropySeed()
	case seed == 0:
		seed = DefaultSeed
	default:
		seed %= modulus
		if seed == 0 {
			seed = DefaultSeed
		}
	}

	g.seeds[0] = seed
	for j := 1; j < Streams; j++ {
		g.seeds[j] = g.seeds[j-1] * jump % modulus
	}

	g.warm = [Streams]bool{}
	g.Select(0)
}

// Select makes stream (mod Streams) the active stream and returns the
// previously active one.
func (g *Generator) Select(stream int) int {
	prev := g.stream
	g.stream = ((stream % Streams) + Streams) % Streams

	// The first value after planting is discarded.
	if !g.warm[g.stream] {
		g.warm[g.stream] = true
		g.next()
	}

	return prev
}

// Float64 advances the active stream and returns a value in (0,1).
func (g *Generator) Float64() float64 {
	return float64(g.next()) / modulus
}

func (g *Generator) next() int64 {
	x := g.seeds[g.stream] * multiplier % modulus
	g.seeds[g.stream] = x
	return x
}

func entropySeed() int64 {
	var b [8]byte
	rand.Read(b[:])

	return int64(binary.LittleEndian.Uint64(b[:])%(modulus-1)) + 1
}
