package assets

import "time"

// Config holds retry tuning for diagram generation. Badge generation is a
// single attempt; only the per-module diagram calls retry.
type Config struct {
	// MaxAttempts is the total number of tries per diagram, including the
	// first.
	MaxAttempts int

	// InitialWait is the backoff before the first retry.
	InitialWait time.Duration

	// Multiplier grows the wait exponentially per attempt.
	Multiplier float64

	// MaxWait caps a single backoff wait.
	MaxWait time.Duration
}

// DefaultConfig returns retry tuning matched to the image API's rate limits.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		InitialWait: 2 * time.Second,
		Multiplier:  2.0,
		MaxWait:     30 * time.Second,
	}
}
