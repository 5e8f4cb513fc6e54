package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/arw/graphs"
	"github.com/katalvlaran/arw/rational"
)

// graphSpec is the YAML description of a computation target: either a
// named family or an explicit adjacency list, optionally with numeric
// sleep probabilities (exact rationals as strings, e.g. "1/3").
//
//	name: 4-clique
//	# or:
//	name: my-graph
//	adjacency: [[1, 2], [0, 2], [0, 1]]
//	sleep: ["1/3", "1/2"]
type graphSpec struct {
	Name      string   `yaml:"name"`
	Adjacency [][]int  `yaml:"adjacency,omitempty"`
	Sleep     []string `yaml:"sleep,omitempty"`
}

var errNoGraph = errors.New("arw: no graph given; use --graph or --spec")

// loadSpec parses a YAML graph spec file.
func loadSpec(path string) (*graphSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec graphSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("%s: spec needs a name", path)
	}

	return &spec, nil
}

// resolveGraph turns the --graph / --spec flag pair into a named
// adjacency list plus optional numeric sleep probabilities.
func resolveGraph(name, specPath string) (*graphSpec, error) {
	switch {
	case specPath != "":
		spec, err := loadSpec(specPath)
		if err != nil {
			return nil, err
		}
		if spec.Adjacency == nil {
			if spec.Adjacency, err = graphs.ByName(spec.Name); err != nil {
				return nil, err
			}
		}

		return spec, nil
	case name != "":
		adj, err := graphs.ByName(name)
		if err != nil {
			return nil, err
		}

		return &graphSpec{Name: name, Adjacency: adj}, nil
	default:
		return nil, errNoGraph
	}
}

// sleepProbs builds the sleep-probability vector: the field's symbolic
// parameters by default, exact rational constants when the spec lists
// them.
func (s *graphSpec) sleepProbs(f *rational.Field) ([]rational.Expr, error) {
	n := len(s.Adjacency) - 1
	out := make([]rational.Expr, n)
	if len(s.Sleep) == 0 {
		for i := range out {
			out[i] = f.Param(i)
		}

		return out, nil
	}
	if len(s.Sleep) != n {
		return nil, fmt.Errorf("arw: %d sleep values for %d non-sink vertices", len(s.Sleep), n)
	}
	for i, raw := range s.Sleep {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(raw))
		if !ok {
			return nil, fmt.Errorf("arw: bad sleep probability %q", raw)
		}
		out[i] = f.FromRat(r)
	}

	return out, nil
}
