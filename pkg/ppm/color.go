package ppm

import (
	"fmt"
	"math"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// quantizeScale maps 1.0 to 255 after truncation
const quantizeScale = 255.999

// QuantizePolicy decides how channels outside [0, 1] become bytes
type QuantizePolicy int

const (
	// Clamp limits each channel to [0, 1] before scaling. NaN becomes 0.
	Clamp QuantizePolicy = iota
	// Wrap scales without clamping and keeps the low 8 bits of the floored value.
	// Non-finite channels become 0.
	Wrap
)

// ParseQuantizePolicy parses "clamp" or "wrap"
func ParseQuantizePolicy(s string) (QuantizePolicy, error) {
	switch s {
	case "clamp":
		return Clamp, nil
	case "wrap":
		return Wrap, nil
	default:
		return Clamp, fmt.Errorf("unknown quantize policy %q (want clamp or wrap)", s)
	}
}

func (p QuantizePolicy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("QuantizePolicy(%d)", int(p))
	}
}

// Quantize converts a linear color into a pixel using floor(255.999 * c) per channel
func (p QuantizePolicy) Quantize(c core.Color) Pixel {
	return Pixel{R: p.channel(c.X), G: p.channel(c.Y), B: p.channel(c.Z)}
}

func (p QuantizePolicy) channel(c float64) uint8 {
	if p == Wrap {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return 0
		}
		v := math.Floor(quantizeScale * c)
		return uint8(int64(math.Mod(v, 256)))
	}

	if math.IsNaN(c) {
		return 0
	}
	c = max(0, min(1, c))
	return uint8(quantizeScale * c)
}

// WriteColor quantizes a color with the Clamp policy
func WriteColor(c core.Color) Pixel {
	return Clamp.Quantize(c)
}
