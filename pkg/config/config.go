// Package config loads daemon configuration from the environment.
package config

import (
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	prefix      = "emailaddr"
	tableFormat = `The emailaddr daemon is configured via the environment. The following
environment variables can be used:

KEY	DEFAULT	REQUIRED	DESCRIPTION
{{range .}}{{usage_key .}}	{{usage_default .}}	{{usage_required .}}	{{usage_description .}}
{{end}}`
)

var (
	// Version of this build, set by main.
	Version = ""

	// BuildDate for this build, set by main.
	BuildDate = ""
)

// Root wraps all other configurations.
type Root struct {
	LogLevel string `required:"true" default:"info" desc:"debug, info, warn, or error"`
	Web      Web
	Storage  Storage
}

// Web contains the HTTP server configuration.
type Web struct {
	Addr         string        `required:"true" default:"0.0.0.0:9000" desc:"HTTP server host:port"`
	ReadTimeout  time.Duration `required:"true" default:"30s" desc:"HTTP read timeout"`
	WriteTimeout time.Duration `required:"true" default:"30s" desc:"HTTP write timeout"`
}

// Storage contains the address store configuration.
type Storage struct {
	Capacity int `required:"true" default:"100000" desc:"Maximum stored addresses, 0 for unlimited"`
}

// Process loads and parses configuration from the environment.
func Process() (*Root, error) {
	c := &Root{}
	err := envconfig.Process(prefix, c)
	return c, err
}

// Usage prints out the envconfig usage to Stderr.
func Usage() {
	tabs := tabwriter.NewWriter(os.Stderr, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(prefix, &Root{}, tabs, tableFormat); err != nil {
		log.Fatalf("Unable to parse env config: %v", err)
	}
	if err := tabs.Flush(); err != nil {
		log.Fatalf("Failed to flush usage table: %v", err)
	}
}
