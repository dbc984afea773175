package core

import "math"

// Sigmoid squashes x into (-1, 1). It is odd, passes through the origin and
// the amplifier controls how quickly it saturates.
func Sigmoid(x, amp float64) float64 {
	return 2/(1+math.Exp(-x*amp)) - 1
}

// Logistic squashes x into (0, 1) with Logistic(0, amp) == 0.5.
func Logistic(x, amp float64) float64 {
	return 1 / (1 + math.Exp(-x*amp))
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
