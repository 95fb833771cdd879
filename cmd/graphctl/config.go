package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vexedge/graphcore/components"
	"github.com/vexedge/graphcore/deltastep"
	"github.com/vexedge/graphcore/louvain"
)

// AlgorithmConfig is the YAML descriptor file graphctl accepts via --config.
// It is decoded into plain fields and validated with struct tags before
// being translated into the matching *Descriptor, the same two-step shape
// the host pack's ali01-mnemosyne config package (decode) and its
// vault.go (struct-tag validation) use independently.
type AlgorithmConfig struct {
	Louvain *LouvainConfig `yaml:"louvain,omitempty"`
	SSSP    *SSSPConfig    `yaml:"shortest_paths,omitempty"`
	CC      *CCConfig      `yaml:"connected_components,omitempty"`
}

// LouvainConfig mirrors louvain.Descriptor's tunables.
type LouvainConfig struct {
	Resolution    float64 `yaml:"resolution" validate:"gte=0"`
	Epsilon       float64 `yaml:"epsilon" validate:"gte=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=0"`
}

// SSSPConfig mirrors deltastep.Descriptor's tunables.
type SSSPConfig struct {
	Source           int32   `yaml:"source" validate:"gte=0"`
	Delta            float64 `yaml:"delta" validate:"gt=0"`
	WithDistances    bool    `yaml:"with_distances"`
	WithPredecessors bool    `yaml:"with_predecessors"`
}

// CCConfig mirrors components.Descriptor's tunables.
type CCConfig struct {
	SampleFanout int `yaml:"sample_fanout" validate:"gte=0"`
}

var validate = validator.New()

// loadConfig reads and validates a YAML descriptor file; an empty path is
// not an error. Sections absent from the config fall back to
// louvain.Default(), components.Default(), and, for shortest paths, Delta 1
// with both outputs requested (see ssspDescriptor).
func loadConfig(path string) (*AlgorithmConfig, error) {
	if path == "" {
		return &AlgorithmConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AlgorithmConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Louvain != nil {
		if err := validate.Struct(cfg.Louvain); err != nil {
			return nil, err
		}
	}
	if cfg.SSSP != nil {
		if err := validate.Struct(cfg.SSSP); err != nil {
			return nil, err
		}
	}
	if cfg.CC != nil {
		if err := validate.Struct(cfg.CC); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func (c *AlgorithmConfig) louvainDescriptor() louvain.Descriptor {
	d := louvain.Default()
	if c.Louvain != nil {
		d.Resolution = c.Louvain.Resolution
		d.Epsilon = c.Louvain.Epsilon
		d.MaxIterations = c.Louvain.MaxIterations
	}

	return d
}

func (c *AlgorithmConfig) ssspDescriptor() deltastep.Descriptor {
	d := deltastep.Descriptor{Delta: 1, Outputs: deltastep.Distances | deltastep.Predecessors}
	if c.SSSP != nil {
		d.Source = c.SSSP.Source
		d.Delta = c.SSSP.Delta
		var outputs deltastep.Outputs
		if c.SSSP.WithDistances {
			outputs |= deltastep.Distances
		}
		if c.SSSP.WithPredecessors {
			outputs |= deltastep.Predecessors
		}
		if outputs != 0 {
			d.Outputs = outputs
		}
	}

	return d
}

func (c *AlgorithmConfig) ccDescriptor() components.Descriptor {
	d := components.Default()
	if c.CC != nil {
		d.SampleFanout = c.CC.SampleFanout
	}

	return d
}
