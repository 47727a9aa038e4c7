package main

import (
	"github.com/BurntSushi/toml"
)

// Config holds the parameters for one demo interaction evaluation run.
type Config struct {
	// Spatiality selects the interaction's dimensionality: "", "x", "y",
	// "z", "xy", "xz", "yz", or "xyz".
	Spatiality  string
	Reciprocal  bool
	MaxDistance float64
	ReceiverSex string // any, F, M
	ExerterSex  string // any, F, M

	IFKind   string // fixed, linear, exponential, normal
	IFParamA float64
	IFParamB float64

	PeriodicX, PeriodicY, PeriodicZ bool

	// Subpopulation parameters.
	SubpopSize int
	DomainSize float64 // unit: same units as positions
	Seed       int64

	// Immediate selects eager (true) or lazy (false) matrix fill.
	Immediate bool

	// ExportHDF5 and ExportSnapshot are output paths; empty disables
	// that export.
	ExportHDF5    string
	ExportSnapshot string
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Spatiality:  "xy",
	Reciprocal:  true,
	MaxDistance: 5,
	ReceiverSex: "any",
	ExerterSex:  "any",
	IFKind:      "exponential",
	IFParamA:    1,
	IFParamB:    1,
	SubpopSize:  200,
	DomainSize:  50,
	Seed:        1,
	Immediate:   true,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	conf := *DefaultConf
	_, err := toml.DecodeFile(path, &conf)
	return &conf, err
}
