// Package casefile reads YAML case files for the flife command. A case holds
// one spectral statistics bundle, the materials to evaluate and the
// estimation methods to apply.
package casefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-fatigue/fatigue"
	"github.com/cwbudde/algo-fatigue/stats/spectral"
	"gopkg.in/yaml.v3"
)

var errNoMaterials = errors.New("case must list at least one material")

// Case is a decoded and resolved case file.
type Case struct {
	Stats     spectral.Stats
	Materials []fatigue.Material
	Methods   []fatigue.Method
}

type rawCase struct {
	Spectrum  rawSpectrum   `yaml:"spectrum"`
	Materials []rawMaterial `yaml:"materials"`
	// Methods defaults to [alpha075].
	Methods []string `yaml:"methods"`
}

type rawSpectrum struct {
	M0       float64 `yaml:"m0"`
	M075     float64 `yaml:"m075"`
	M150     float64 `yaml:"m150"`
	Nu       float64 `yaml:"nu"`
	Alpha2   float64 `yaml:"alpha2"`
	PeakRate float64 `yaml:"peak_rate"`
}

type rawMaterial struct {
	Name string  `yaml:"name"`
	C    float64 `yaml:"c"`
	K    float64 `yaml:"k"`
}

// Load reads and parses the case file at path.
func Load(path string) (Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Case{}, fmt.Errorf("read case file %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Case{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a case from YAML. Unknown keys are rejected. Numeric values
// are not range-checked here; the estimators report invalid inputs per pair.
func Parse(data []byte) (Case, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw rawCase
	if err := dec.Decode(&raw); err != nil {
		return Case{}, fmt.Errorf("parse case: %w", err)
	}
	if len(raw.Materials) == 0 {
		return Case{}, errNoMaterials
	}

	c := Case{
		Stats: spectral.Stats{
			M0:       raw.Spectrum.M0,
			M075:     raw.Spectrum.M075,
			M150:     raw.Spectrum.M150,
			Nu:       raw.Spectrum.Nu,
			Alpha2:   raw.Spectrum.Alpha2,
			PeakRate: raw.Spectrum.PeakRate,
		},
		Materials: make([]fatigue.Material, len(raw.Materials)),
	}
	for i, m := range raw.Materials {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			name = fmt.Sprintf("material-%d", i+1)
		}
		c.Materials[i] = fatigue.Material{Name: name, C: m.C, K: m.K}
	}

	if len(raw.Methods) == 0 {
		c.Methods = []fatigue.Method{fatigue.MethodAlpha075}
		return c, nil
	}
	for _, name := range raw.Methods {
		m, err := fatigue.ParseMethod(name)
		if err != nil {
			return Case{}, err
		}
		c.Methods = append(c.Methods, m)
	}
	return c, nil
}
