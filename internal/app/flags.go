package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	Remote   string
	Options  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "wildfire", Scale: 8, TPS: 4, Seed: 0, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second (1-20)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels, 0 to hide")
	fs.StringVar(&c.Remote, "remote", c.Remote, "base URL of a forest-server to step the field remotely")
	fs.Var(&c.Options, "set", "sim option in key=value form (repeatable)")
}

// SimOptions returns the options passed to the sim factory.
func (c *Config) SimOptions() map[string]string {
	opts := c.Options.Map()
	if c.Remote != "" {
		opts["remote"] = c.Remote
	}
	return opts
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set implements flag.Value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map parses the collected pairs. Entries without '=' are ignored and later
// keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}
