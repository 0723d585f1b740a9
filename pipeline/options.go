// SPDX-License-Identifier: MIT

package pipeline

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/tollgrid/core"
	"github.com/katalvlaran/tollgrid/matrix"
	"github.com/katalvlaran/tollgrid/toll"
)

const (
	// DefaultMaxOrder disables the capacity guard.
	DefaultMaxOrder = 0

	// DefaultRequireConnected accepts residual unreachable pairs.
	DefaultRequireConnected = false
)

const (
	panicMaxOrderNegative = "pipeline: WithMaxOrder: n must be >= 0"
	panicLoggerNil        = "pipeline: WithLogger: logger is nil"
	panicBadCoefficients  = "pipeline: WithCoefficients: "
	panicBadSchedule      = "pipeline: WithSchedule: "
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved pipeline configuration.
type Options struct {
	logger           *slog.Logger
	coefficients     toll.Rates
	schedule         toll.Schedule
	graphOpts        []core.Option
	matrixOpts       []matrix.Option
	maxOrder         int
	requireConnected bool
}

// WithLogger routes stage logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithCoefficients replaces toll.DefaultCoefficients.
// Panics when any coefficient is negative, NaN or Inf.
func WithCoefficients(c toll.Rates) Option {
	if err := toll.ValidateCoefficients(c); err != nil {
		panic(panicBadCoefficients + err.Error())
	}

	return func(o *Options) { o.coefficients = c }
}

// WithSchedule replaces toll.DefaultSchedule. Panics when s fails Validate.
func WithSchedule(s toll.Schedule) Option {
	if err := s.Validate(); err != nil {
		panic(panicBadSchedule + err.Error())
	}

	return func(o *Options) { o.schedule = s }
}

// WithMergePolicy selects how duplicate pairs are merged by the graph builder.
func WithMergePolicy(p core.MergePolicy) Option {
	opt := core.WithMergePolicy(p)

	return func(o *Options) { o.graphOpts = append(o.graphOpts, opt) }
}

// WithTriangleCheck verifies the triangle inequality after the closure.
func WithTriangleCheck() Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, matrix.WithTriangleCheck()) }
}

// WithMaxOrder refuses graphs with more than n locations before the O(n³)
// closure starts. Zero means unlimited.
func WithMaxOrder(n int) Option {
	if n < 0 {
		panic(panicMaxOrderNegative)
	}

	return func(o *Options) { o.maxOrder = n }
}

// WithRequireConnected turns residual unreachable pairs into ErrDisconnected.
func WithRequireConnected() Option {
	return func(o *Options) { o.requireConnected = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		coefficients:     toll.DefaultCoefficients,
		schedule:         toll.DefaultSchedule(),
		maxOrder:         DefaultMaxOrder,
		requireConnected: DefaultRequireConnected,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
