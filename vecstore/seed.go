package vecstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Seed is the YAML layout accepted by LoadYAML:
//
//	documents:
//	  - id: a
//	    vector: [0, 0, 1]
type Seed struct {
	Documents []Document `yaml:"documents"`
}

// LoadYAML decodes a Seed from r and stores its documents. It returns the
// stored IDs.
func LoadYAML(ctx context.Context, store Store, r io.Reader) ([]string, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("vecstore: decode seed: %w", err)
	}
	return store.Put(ctx, seed.Documents)
}
