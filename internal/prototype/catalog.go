package prototype

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/narvanalabs/creational/pkg/logger"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// catalogEntry is one prototype in a YAML catalog.
type catalogEntry struct {
	Name       string `yaml:"name"`
	Kind       Kind   `yaml:"kind"`
	Model      string `yaml:"model"`
	Color      string `yaml:"color"`
	Doors      int    `yaml:"doors"`
	HasCarrier bool   `yaml:"has_carrier"`
}

type catalogFile struct {
	Prototypes []catalogEntry `yaml:"prototypes"`
}

// LoadCatalog reads a YAML catalog and registers every entry.
// An entry with an unknown kind fails with *CloneUnsupportedError.
func LoadCatalog(r io.Reader, log *logger.Logger) (*Registry, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	reg := NewRegistry(log)
	for _, e := range file.Prototypes {
		if !e.Kind.Valid() {
			return nil, fmt.Errorf("catalog entry %q (kinds: %v): %w", e.Name, Kinds(), &CloneUnsupportedError{Type: string(e.Kind)})
		}
		if err := reg.Register(e.Name, kindTable[e.Kind].build(e)); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
	}
	return reg, nil
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string, log *logger.Logger) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f, log)
}

// DefaultCatalog returns a registry holding the embedded prototypes:
// a red four-door "sedan" car and a blue "mountain-bike" with a carrier.
func DefaultCatalog(log *logger.Logger) (*Registry, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalog), log)
}
