// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seed point samplers over the unit square for
// Voronoi diagram construction.

package utils

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// Distribution names a parametric seed distribution over the unit square.
type Distribution string

const (
	Uniform     Distribution = "uniform"
	Linear      Distribution = "linear"
	Quadratic   Distribution = "quadratic"
	Gaussian    Distribution = "gaussian"
	Exponential Distribution = "exponential"
)

// Distributions lists every supported distribution.
func Distributions() []Distribution {
	return []Distribution{Uniform, Linear, Quadratic, Gaussian, Exponential}
}

// Sample draws cnt points in [0,1]² from the given distribution.
// The seed parameter ensures reproducibility. Non-uniform distributions are
// folded around the square's center so density decays from (0.5, 0.5)
// outwards.
func Sample(d Distribution, cnt int, seed int64) ([]r2.Point, error) {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))

	switch d {
	case Uniform:
		pts := make([]r2.Point, cnt)
		for i := range pts {
			pts[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
		}
		return pts, nil
	case Linear:
		return folded(cnt, random, func() float64 { return 1 - power(random, 2) }), nil
	case Quadratic:
		return folded(cnt, random, func() float64 { return 1 - power(random, 3) }), nil
	case Exponential:
		return sampleExponential(cnt, random), nil
	case Gaussian:
		return sampleGaussian(cnt, random), nil
	}
	return nil, fmt.Errorf("utils: unknown distribution %q", d)
}

// power draws from the power distribution with density a·x^(a-1) on [0,1].
func power(random *rand.Rand, a float64) float64 {
	return math.Pow(random.Float64(), 1/a)
}

func randomSign(random *rand.Rand) float64 {
	if random.Float64() > 0.5 {
		return 1
	}
	return -1
}

// folded maps per-axis draws from [0,1] into [0,1]² by halving, applying a
// random sign and recentering on (0.5, 0.5).
func folded(cnt int, random *rand.Rand, draw func() float64) []r2.Point {
	pts := make([]r2.Point, cnt)
	for i := range pts {
		pts[i] = r2.Point{
			X: draw()/2*randomSign(random) + 0.5,
			Y: draw()/2*randomSign(random) + 0.5,
		}
	}
	return pts
}

func sampleExponential(cnt int, random *rand.Rand) []r2.Point {
	xs := make([]float64, cnt)
	ys := make([]float64, cnt)
	var maxX, maxY float64
	for i := range xs {
		xs[i] = random.ExpFloat64()
		ys[i] = random.ExpFloat64()
		maxX = math.Max(maxX, xs[i])
		maxY = math.Max(maxY, ys[i])
	}
	pts := make([]r2.Point, cnt)
	for i := range pts {
		x, y := xs[i], ys[i]
		if maxX > 0 {
			x /= 2 * maxX
		}
		if maxY > 0 {
			y /= 2 * maxY
		}
		pts[i] = r2.Point{
			X: x*randomSign(random) + 0.5,
			Y: y*randomSign(random) + 0.5,
		}
	}
	return pts
}

func sampleGaussian(cnt int, random *rand.Rand) []r2.Point {
	xs := make([]float64, cnt)
	ys := make([]float64, cnt)
	for i := range xs {
		xs[i] = random.NormFloat64()
		ys[i] = random.NormFloat64()
	}
	normalize(xs)
	normalize(ys)
	pts := make([]r2.Point, cnt)
	for i := range pts {
		pts[i] = r2.Point{X: xs[i], Y: ys[i]}
	}
	return pts
}

// normalize shifts vs to be non-negative and rescales into [0,1].
func normalize(vs []float64) {
	if len(vs) == 0 {
		return
	}
	min := vs[0]
	for _, v := range vs {
		min = math.Min(min, v)
	}
	var max float64
	for i := range vs {
		if min < 0 {
			vs[i] -= min
		}
		max = math.Max(max, vs[i])
	}
	if max == 0 {
		return
	}
	for i := range vs {
		vs[i] /= max
	}
}
