package render

import (
	"image/color"

	"planetgen/internal/core"
	"planetgen/internal/world"
)

// finalScale maps a clamped channel onto a byte. Full brightness is 254.
const finalScale = 254

const (
	linkBleach    = 0.3
	shadeBase     = 0.25
	shadeVariance = 0.4
)

// bleach moves every channel toward white by amount.
func bleach(p world.FloatPixel, amount float64) world.FloatPixel {
	return world.FloatPixel{
		p[0] + (1-p[0])*amount,
		p[1] + (1-p[1])*amount,
		p[2] + (1-p[2])*amount,
	}
}

// shade darkens every channel by amount.
func shade(p world.FloatPixel, amount float64) world.FloatPixel {
	return world.FloatPixel{
		p[0] * (1 - amount),
		p[1] * (1 - amount),
		p[2] * (1 - amount),
	}
}

// finalize clamps each channel to [0, 1] and converts it to an opaque RGBA.
func finalize(p world.FloatPixel) color.RGBA {
	return color.RGBA{
		R: uint8(core.Clamp01(p[0]) * finalScale),
		G: uint8(core.Clamp01(p[1]) * finalScale),
		B: uint8(core.Clamp01(p[2]) * finalScale),
		A: 255,
	}
}

// grey converts v in [0, 1] into an opaque grey.
func grey(v float64) color.RGBA {
	return finalize(world.FloatPixel{v, v, v})
}

// zoneRingColor is the debug marker of the k-th zone. Channels wrap.
func zoneRingColor(k int) color.RGBA {
	i := uint8(k)
	return color.RGBA{R: 255, G: i*21 + 200, B: i * 31, A: 255}
}

// putRGBA writes c into the interleaved buffer at pixel index i.
func putRGBA(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
