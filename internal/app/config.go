package app

import (
	"flag"
	"runtime"
	"strconv"
	"strings"

	"planetgen/internal/render"
	"planetgen/internal/world"
)

// Config represents the command-line parameters shared by the commands.
type Config struct {
	Seed     uint64
	Distance float64
	Energy   float64
	Height   int
	Layer    string
	Workers  int
	Out      string
	Verbose  bool

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := world.DefaultConfig().Primitive
	return &Config{
		Seed:     def.Seed,
		Distance: def.DistanceToStar,
		Energy:   def.StarEnergy,
		Height:   512,
		Layer:    render.DefaultLayer,
		Workers:  runtime.NumCPU(),
		Out:      "world.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.Float64Var(&c.Distance, "distance", c.Distance, "distance to star in [0,1]")
	fs.Float64Var(&c.Energy, "energy", c.Energy, "star energy")
	fs.IntVar(&c.Height, "height", c.Height, "raster height in pixels (width is twice this)")
	fs.StringVar(&c.Layer, "layer", c.Layer, "layer to render: "+strings.Join(render.Layers(), ", "))
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel render workers")
	fs.StringVar(&c.Out, "out", c.Out, "output image path (.png, .bmp, .tif)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
	fs.Var(&c.Overrides, "set", "world override in key=value form (repeatable)")
}

// WorldConfig merges the flags and the -set overrides into a world config.
// Overrides win over flags; malformed values keep the defaults.
func (c *Config) WorldConfig() world.Config {
	values := map[string]string{
		"seed":     strconv.FormatUint(c.Seed, 10),
		"distance": strconv.FormatFloat(c.Distance, 'g', -1, 64),
		"energy":   strconv.FormatFloat(c.Energy, 'g', -1, 64),
	}
	for k, v := range c.Overrides.Map() {
		values[k] = v
	}
	return world.FromMap(values)
}

// KVList is a repeatable key=value flag.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries on the first '='. Entries without one are skipped.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}
