package btree

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Config holds the optional settings of a Tree.
type Config struct {
	// logger receives a Debug entry for every structural case taken.
	logger *logrus.Logger

	// freeListSize bounds the number of released nodes kept for reuse.
	freeListSize int
}

// NewConfig creates a Config with default values.
func NewConfig() Config {
	return Config{
		logger:       discardLogger(),
		freeListSize: DefaultFreeListSize,
	}
}

// WithLogger routes structural trace entries to logger. They are emitted at
// Debug level only.
func WithLogger(logger *logrus.Logger) func(*Config) {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFreeListSize sets how many released nodes are kept for reuse. Zero
// disables recycling.
func WithFreeListSize(size int) func(*Config) {
	return func(c *Config) {
		if size >= 0 {
			c.freeListSize = size
		}
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.WarnLevel)
	return l
}
