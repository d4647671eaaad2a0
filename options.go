// Copyright (c) 2026 tokudaek
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoiareas

import (
	"errors"

	"go.uber.org/zap"
)

const defaultEps = 1e-12

var (
	errNonPositiveEps = errors.New("voronoiareas: eps must be positive")
	errNegativeSnap   = errors.New("voronoiareas: snap tolerance must be non-negative")
	errNilLogger      = errors.New("voronoiareas: logger must be non-nil")
)

// Options configures the bounded Voronoi pipeline.
type Options struct {
	// Eps is forwarded to the tessellation's convex hull computation.
	Eps float64
	// Snap quantizes boundary coordinates before graph deduplication.
	// Zero keeps exact float equality.
	Snap float64
	// Logger receives stage level progress. Defaults to a nop logger.
	Logger *zap.Logger
}

type Option func(*Options) error

func defaultOptions() Options {
	return Options{
		Eps:    defaultEps,
		Snap:   0,
		Logger: zap.NewNop(),
	}
}

func applyOptions(setters []Option) (Options, error) {
	opts := defaultOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

// WithEps overrides the epsilon used by the geometric primitives.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return errNonPositiveEps
		}
		o.Eps = eps
		return nil
	}
}

// WithSnap sets the coordinate quantization tolerance used when
// deduplicating boundary graph vertices. The default of 0 keys vertices on
// exact float equality, so geometrically coincident vertices with any drift
// become distinct nodes.
func WithSnap(tol float64) Option {
	return func(o *Options) error {
		if tol < 0 {
			return errNegativeSnap
		}
		o.Snap = tol
		return nil
	}
}

// WithLogger routes pipeline progress to the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) error {
		if l == nil {
			return errNilLogger
		}
		o.Logger = l
		return nil
	}
}
