package world

import (
	"io"
	"log/slog"
	"strconv"
)

// Primitive fully determines a World.
type Primitive struct {
	Seed           uint64
	DistanceToStar float64 // [0, 1]
	StarEnergy     float64 // roughly [0, 1]
}

// Config controls World construction.
type Config struct {
	Primitive Primitive

	// Logger receives debug records about generation. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Primitive: Primitive{
			Seed:           0,
			DistanceToStar: 0.5,
			StarEnergy:     0.5,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Primitive.Seed = parsed
		}
	}
	if v, ok := cfg["distance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Primitive.DistanceToStar = parsed
		}
	}
	if v, ok := cfg["energy"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Primitive.StarEnergy = parsed
		}
	}
	return c
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
