package world

import (
	"fmt"
	"math"

	"planetgen/internal/core"
)

const (
	// AzimuthShift is the step used for finite-difference slopes.
	AzimuthShift = 0.006
	// SlopeAmplifier makes slopes saturate quickly: small height deltas read
	// as flat, larger ones snap toward ±1.
	SlopeAmplifier = 30.0

	heightExponent  = 1.55
	latitudeFalloff = 0.7

	tempNoiseShare   = 0.15
	tempAltitudeDrop = 0.85
	polarCooling     = 0.3
)

// SampleData is the derived surface data at one point.
type SampleData struct {
	Height float64
	XSlope float64
	YSlope float64
	Slope  float64
	Temp   float64
}

// Equirectangular maps x in [0,1) (longitude) and y in [0,1] (latitude) onto
// a flattened sphere so 3D noise wraps around seamlessly and meets at the poles.
func Equirectangular(pt core.Point) core.Point3 {
	r := math.Pow(1-math.Abs(pt.Y*2-1), latitudeFalloff)
	l := pt.X * math.Pi * 2
	return core.Point3{
		X: math.Sin(l) * r,
		Y: math.Cos(l) * r,
		Z: pt.Y * math.Pi,
	}
}

// PoleDistance returns min(y, 1-y). y must lie in [0, 1].
func PoleDistance(y float64) float64 {
	if !(y >= 0 && y <= 1) {
		panic(fmt.Sprintf("world: latitude %v outside [0, 1]", y))
	}
	if y < 0.5 {
		return y
	}
	return 1 - y
}

// HeightAt returns the surface height in [0, 1]. Underwater terrain stays
// smooth; the higher land rises above the water, the more fine detail shows.
func (w *World) HeightAt(pt core.Point) float64 {
	eq := Equirectangular(pt)
	rough := math.Pow(w.baseHeight.Sample3D(eq)*0.5+0.5, heightExponent)
	if rough <= w.waterLevel {
		return rough
	}
	fine := w.complexHeight.Sample3D(eq)*0.5 + 0.5
	fineness := rough - w.waterLevel
	return fineness*fine + (1-fineness)*rough
}

// TempAt returns the temperature at pt for a surface at the given height.
func (w *World) TempAt(pt core.Point, height float64) float64 {
	n := w.temp.Sample3D(Equirectangular(pt))*0.5 + 0.5
	return n*tempNoiseShare +
		(1-height)*tempAltitudeDrop -
		core.Sigmoid(w.size/(PoleDistance(pt.Y)+0.01), 1)*polarCooling
}

// SampleAt computes height, slopes and temperature at pt.
func (w *World) SampleAt(pt core.Point) SampleData {
	height := w.HeightAt(pt)
	east := w.HeightAt(core.Point{X: math.Mod(pt.X+AzimuthShift, 1), Y: pt.Y})
	xSlope := core.Sigmoid((height-east)*0.5, SlopeAmplifier)

	var dy float64
	if pt.Y < 1-AzimuthShift {
		dy = height - w.HeightAt(core.Point{X: pt.X, Y: pt.Y + AzimuthShift})
	} else {
		dy = w.HeightAt(core.Point{X: pt.X, Y: pt.Y - AzimuthShift}) - height
	}
	ySlope := core.Sigmoid(dy*0.5, SlopeAmplifier)

	return SampleData{
		Height: height,
		XSlope: xSlope,
		YSlope: ySlope,
		Slope:  (math.Abs(xSlope) + math.Abs(ySlope)) * 0.5,
		Temp:   w.TempAt(pt, height),
	}
}

// MaterialAt classifies a point. The checks run in a fixed priority order and
// the vegetation test folds temperature, slope and height into one distance.
func (w *World) MaterialAt(_ core.Point, d SampleData) Material {
	vegDist := math.Abs((math.Abs(d.Temp-0.3)+0.01)*(d.Slope*20+d.Height) - w.snowBelowTemp)
	switch {
	case d.Height < w.waterLevel:
		if d.Temp+0.02 < w.snowBelowTemp {
			return Ice
		}
		return Water
	case d.Temp < w.snowBelowTemp:
		return Snow
	case d.Slope > 0.12:
		return DarkRock
	case vegDist < 0.08*w.waterLevel && d.Temp < 0.3 && d.Slope > 0.01:
		return Trees
	case vegDist < 0.12*w.waterLevel:
		return Grass
	default:
		return Rock
	}
}

// Classify samples pt and returns its data and material.
func (w *World) Classify(pt core.Point) (SampleData, Material) {
	d := w.SampleAt(pt)
	return d, w.MaterialAt(pt, d)
}
