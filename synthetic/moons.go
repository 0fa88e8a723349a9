// Package synthetic generates small labelled point clouds for exercising
// classifiers without downloading a dataset.
package synthetic

import (
	"errors"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Point is a 2-D sample.
type Point struct {
	X, Y float64
}

// Moons generates n points on two interleaving half circles.
//
// Even indices belong to moon 0 at (sin a, cos a), odd indices to moon 1 at
// (sin(1+a), cos(1-a)), where a = π·i/(n/2). Both coordinates get independent
// uniform noise in [-noise, noise). A nil src uses the global generator; a
// fixed src makes the output reproducible. noise == 0 yields exact points.
func Moons(n int, noise float64, src rand.Source) ([]Point, []int, error) {
	if n < 0 {
		return nil, nil, errors.New("moons: negative sample count")
	}
	if noise < 0 || math.IsNaN(noise) {
		return nil, nil, errors.New("moons: noise must be non-negative")
	}

	jitter := distuv.Uniform{Min: -noise, Max: noise, Src: src}

	points := make([]Point, n)
	labels := make([]int, n)
	half := float64(n) / 2
	for i := range n {
		angle := math.Pi * float64(i) / half
		dx, dy := jitter.Rand(), jitter.Rand()

		if i%2 == 0 {
			points[i] = Point{X: math.Sin(angle) + dx, Y: math.Cos(angle) + dy}
			labels[i] = 0
		} else {
			points[i] = Point{X: math.Sin(1+angle) + dx, Y: math.Cos(1-angle) + dy}
			labels[i] = 1
		}
	}

	return points, labels, nil
}
