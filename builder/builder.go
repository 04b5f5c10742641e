// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlath-aoc/core"
	"github.com/katalvlaran/lvlath-aoc/dijkstra"
)

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor was passed.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Fixture is a generated graph together with its edge weights.
type Fixture struct {
	Graph   *core.DiGraph[int]
	Weights dijkstra.Weights[int, int64]
}

// Constructor adds nodes and edges to the fixture under construction.
type Constructor func(s *sink, cfg builderConfig) error

// builderConfig is the resolved, immutable option set.
type builderConfig struct {
	rng       *rand.Rand
	weightFn  func(*rand.Rand) int64
	symmetric bool
}

// BuilderOption customizes a build.
type BuilderOption func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithWeightFn overrides the per-edge weight generator. It receives the
// (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithSymmetric adds the reverse of every generated edge, with its own weight.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}

// BuildGraph resolves bopts and applies cons in order.
// Constructor errors are wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	cfg := builderConfig{weightFn: func(*rand.Rand) int64 { return 1 }}
	for _, opt := range bopts {
		opt(&cfg)
	}

	s := &sink{seen: make(map[int]struct{}), weights: make(dijkstra.Weights[int, int64])}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return &Fixture{Graph: core.New(s.nodes, s.edges), Weights: s.weights}, nil
}

// sink accumulates nodes and edges in first-seen order.
type sink struct {
	nodes   []int
	seen    map[int]struct{}
	edges   []core.Edge[int]
	weights dijkstra.Weights[int, int64]
}

func (s *sink) node(v int) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.nodes = append(s.nodes, v)
}

// edge adds u→v (and v→u when symmetric). A pair keeps its first weight.
func (s *sink) edge(u, v int, cfg builderConfig) {
	s.add(core.Edge[int]{From: u, To: v}, cfg)
	if cfg.symmetric {
		s.add(core.Edge[int]{From: v, To: u}, cfg)
	}
}

func (s *sink) add(e core.Edge[int], cfg builderConfig) {
	w := cfg.weightFn(cfg.rng)
	if _, dup := s.weights[e]; dup {
		return
	}
	s.weights[e] = w
	s.edges = append(s.edges, e)
}
