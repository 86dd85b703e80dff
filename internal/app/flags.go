package app

import (
	"flag"
	"strconv"
	"strings"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Theme     string
	Scale     int
	TPS       int
	Seed      int64
	Verbose   bool
	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Theme: "court", Scale: 1, TPS: 60, Seed: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Theme, "theme", c.Theme, "skin to draw with (court, grid)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for serve directions and particles")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log serves, hits and points")
	fs.Var(&c.Overrides, "set", "match parameter override in key=value form (repeatable)")
}

// Params returns the overrides as a map with the seed flag applied. A
// seed given through -set wins over -seed.
func (c *Config) Params() map[string]string {
	params := c.Overrides.Map()
	if _, ok := params["seed"]; !ok {
		params["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return params
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs. Entries without '=' are skipped and later
// keys replace earlier ones.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(parts[1])
	}
	return out
}
