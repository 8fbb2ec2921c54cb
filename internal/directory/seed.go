package directory

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Departments []Department `yaml:"departments"`
}

// DefaultSeed returns the built-in department roster.
func DefaultSeed() ([]Department, error) {
	return parseSeed(defaultSeed)
}

// LoadSeed reads a directory roster from a YAML file. A missing file falls
// back to the built-in roster.
func LoadSeed(path string) ([]Department, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSeed()
	}
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(data)
}

func parseSeed(data []byte) ([]Department, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i := range f.Departments {
		if f.Departments[i].Members == nil {
			f.Departments[i].Members = []Employee{}
		}
	}
	return f.Departments, nil
}
