package scales

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads extra scale families from a YAML document of the form
//
//	- name: Hirajoshi
//	  steps: [2, 1, 4, 1, 4]
//	  modes: [Hirajoshi, "", "", "", ""]
func Load(r io.Reader) ([]ScaleObj, error) {
	var catalog []ScaleObj
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("scales: decoding catalog: %w", err)
	}
	for _, s := range catalog {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

func LoadFile(path string) ([]ScaleObj, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scales: opening catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Catalog returns the built-in families followed by the ones in path, if any.
func Catalog(path string) ([]ScaleObj, error) {
	catalog := All()
	if path == "" {
		return catalog, nil
	}
	extra, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return append(catalog, extra...), nil
}
