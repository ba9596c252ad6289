package wildfire

import (
	"strconv"
	"time"
)

// MaxSize bounds the field edge length accepted from configuration.
const MaxSize = 256

// Config controls the wildfire field and how it is advanced.
type Config struct {
	Size   int
	Grass  int
	Trees  int
	Flames int

	Seed int64

	// ReseedPropagation restarts the propagation stream every tick instead
	// of threading one stream through the run.
	ReseedPropagation bool

	// Remote, when set, is the base URL of a forest-server that generates
	// and advances the field.
	Remote        string
	RemoteTimeout time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:          60,
		Grass:         900,
		Trees:         700,
		Flames:        8,
		Seed:          0,
		RemoteTimeout: 2 * time.Second,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxSize {
			c.Size = parsed
		}
	}
	if v, ok := cfg["grass"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Grass = parsed
		}
	}
	if v, ok := cfg["trees"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Trees = parsed
		}
	}
	if v, ok := cfg["flames"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Flames = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["reseed_propagation"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ReseedPropagation = parsed
		}
	}
	if v, ok := cfg["remote"]; ok {
		c.Remote = v
	}
	if v, ok := cfg["remote_timeout"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.RemoteTimeout = parsed
		}
	}
	c.fitCapacity()
	return c
}

// fitCapacity trims the seeding counts so they fit the field, flames first,
// then trees, then grass.
func (c *Config) fitCapacity() {
	room := c.Size * c.Size
	c.Grass = min(c.Grass, room)
	c.Trees = min(c.Trees, room-c.Grass)
	c.Flames = min(c.Flames, room-c.Grass-c.Trees)
}
