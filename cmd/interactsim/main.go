// Command interactsim evaluates one spatial interaction type over a
// randomly scattered demo subpopulation and reports summary statistics.
//
// Usage
//
//	interactsim [config_file]
//
// The argument is optional and is the path to a TOML config file. If
// no config file is specified, the built-in default parameters are
// used.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	interaction "github.com/jgallowa07/SLiM"
	"github.com/jgallowa07/SLiM/diagnostics"
)

const usage = `Usage: interactsim [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, the built-in default parameters are used.
`

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = DefaultConf
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	it, subpop, err := setup(conf)
	if err != nil {
		Fatal(err)
	}

	if err := it.Evaluate([]interaction.Subpopulation{subpop}, conf.Immediate); err != nil {
		Fatal(err)
	}

	if err := report(it, subpop); err != nil {
		Fatal(err)
	}

	if conf.ExportHDF5 != "" || conf.ExportSnapshot != "" {
		runID := uuid.NewString()
		if conf.ExportHDF5 != "" {
			if err := exportHDF5(it, subpop, conf.ExportHDF5, runID); err != nil {
				Fatal(err)
			}
		}
		if conf.ExportSnapshot != "" {
			if err := exportSnapshot(it, subpop, conf.ExportSnapshot, runID); err != nil {
				Fatal(err)
			}
		}
	}
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// setup builds the InteractionType and demo subpopulation described by
// conf.
func setup(conf *Config) (*interaction.InteractionType, *demoSubpop, error) {
	receiverSex, err := parseSex(conf.ReceiverSex)
	if err != nil {
		return nil, nil, err
	}
	exerterSex, err := parseSex(conf.ExerterSex)
	if err != nil {
		return nil, nil, err
	}
	ifKind, err := parseIFKind(conf.IFKind)
	if err != nil {
		return nil, nil, err
	}

	it, err := interaction.NewInteractionType(interaction.Config{
		Spatiality:  conf.Spatiality,
		Reciprocal:  conf.Reciprocal,
		MaxDistance: conf.MaxDistance,
		ReceiverSex: receiverSex,
		ExerterSex:  exerterSex,
		IFKind:      ifKind,
		IFParamA:    conf.IFParamA,
		IFParamB:    conf.IFParamB,
		PeriodicX:   conf.PeriodicX,
		PeriodicY:   conf.PeriodicY,
		PeriodicZ:   conf.PeriodicZ,
	})
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(conf.Seed))
	subpop := newDemoSubpop(1, conf, rng)
	return it, subpop, nil
}

func parseSex(s string) (interaction.Sex, error) {
	switch s {
	case "", "any":
		return interaction.SexAny, nil
	case "F", "f":
		return interaction.SexFemale, nil
	case "M", "m":
		return interaction.SexMale, nil
	default:
		return 0, fmt.Errorf("bad sex %q", s)
	}
}

func parseIFKind(s string) (interaction.IFKind, error) {
	switch s {
	case "fixed":
		return interaction.IFFixed, nil
	case "linear":
		return interaction.IFLinear, nil
	case "exponential":
		return interaction.IFExponential, nil
	case "normal":
		return interaction.IFNormal, nil
	default:
		return 0, fmt.Errorf("bad interaction function kind %q", s)
	}
}

// report prints a handful of summary statistics for individual 0: for a
// spatial interaction, its total neighbor strength and how many of its
// (up to 5) nearest neighbors were found; for spatiality 0, the strength
// individual 1 exerts on it.
func report(it *interaction.InteractionType, subpop *demoSubpop) error {
	fmt.Printf("subpopulation %d: %d individuals\n", subpop.ID(), subpop.Size())

	if it.Spatiality() == 0 {
		s, err := it.Strength(subpop, 0, 1)
		if err != nil {
			return err
		}
		fmt.Printf("strength(0 <- 1) = %v\n", s)
		return nil
	}

	total, err := it.TotalOfNeighborStrengths(subpop, 0)
	if err != nil {
		return err
	}
	fmt.Printf("total neighbor strength of individual 0 = %v\n", total)

	neighbors, err := it.NearestNeighbors(subpop, 0, 5)
	if err != nil {
		return err
	}
	fmt.Printf("nearest neighbors of individual 0: %d found\n", len(neighbors))
	return nil
}
