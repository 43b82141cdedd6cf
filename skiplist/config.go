package skiplist

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/metailurini/ordered/rng"
)

const (
	// DefaultMaxLevel is the default maximum height of the list.
	DefaultMaxLevel = 32

	// DefaultP is the default probability of promoting a node one level up.
	DefaultP = 1.0 / 2.0
)

// Config holds configuration for the SkipList.
type Config struct {
	// maxLevel is maximum height of the skip list
	maxLevel int

	// p is probability for skip list level promotion
	p float64

	// source draws the coin flips for level promotion
	source rng.Source

	logger *logrus.Logger
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		maxLevel: DefaultMaxLevel,
		p:        DefaultP,
	}
}

// WithMaxLevel sets the maximum height of the skip list.
func WithMaxLevel(maxLevel int) func(*Config) {
	return func(c *Config) { c.maxLevel = maxLevel }
}

// WithProbability sets the probability for skip list level promotion.
func WithProbability(p float64) func(*Config) {
	return func(c *Config) { c.p = p }
}

// WithSource sets the random source used for level promotion. By default
// every list gets its own clock-seeded rng.RNG.
func WithSource(source rng.Source) func(*Config) {
	return func(c *Config) { c.source = source }
}

// WithLogger routes structural trace entries to logger. They are emitted at
// Debug level only.
func WithLogger(logger *logrus.Logger) func(*Config) {
	return func(c *Config) { c.logger = logger }
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.WarnLevel)
	return l
}
