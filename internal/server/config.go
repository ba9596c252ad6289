package server

import (
	"flag"
	"os"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr         string
	MaxSize      int
	MaxBodyBytes int64
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Addr:         "127.0.0.1:3030",
		MaxSize:      512,
		MaxBodyBytes: 32 << 20,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address (overrides SERVER_ADDR)")
	fs.IntVar(&c.MaxSize, "max-size", c.MaxSize, "largest field side accepted")
	fs.Int64Var(&c.MaxBodyBytes, "max-body", c.MaxBodyBytes, "request body limit in bytes")
}

// FromEnv applies environment overrides. Call it before flag parsing so
// explicit flags win.
func (c *Config) FromEnv() {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		c.Addr = addr
	}
}
