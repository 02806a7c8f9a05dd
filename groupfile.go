package srp

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// groupFile is the on-disk format for custom group definitions:
//
//	groups:
//	  - name: corp.2048
//	    prime: "AC6BDB41..."        # hex modulus
//	    generator: 2
//	    multiplier: 3
//	    salt_length: 32            # optional, bytes
//	    derivation: pbkdf2         # optional: sha256 (default) or pbkdf2
//	    iterations: 600000         # pbkdf2 only
type groupFile struct {
	Groups []groupDefinition `yaml:"groups"`
}

type groupDefinition struct {
	Name       string `yaml:"name"`
	Prime      string `yaml:"prime"`
	Generator  uint64 `yaml:"generator"`
	Multiplier uint64 `yaml:"multiplier"`
	SaltLength int    `yaml:"salt_length"`
	Derivation string `yaml:"derivation"`
	Iterations int    `yaml:"iterations"`
}

// LoadGroups reads custom group definitions from a YAML file. Deployments
// that cannot use a built-in group distribute such a file to both client and
// server; the parameters must end up byte-identical on both sides.
func LoadGroups(path string) ([]*Group, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read group file: %w", err)
	}

	var file groupFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse group file: %w", err)
	}
	if len(file.Groups) == 0 {
		return nil, fmt.Errorf("group file %s defines no groups", path)
	}

	groups := make([]*Group, 0, len(file.Groups))
	for _, def := range file.Groups {
		group, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", def.Name, err)
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// build validates a definition and turns it into a Group.
func (d *groupDefinition) build() (*Group, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrMalformedGroup)
	}
	if d.Prime == "" {
		return nil, fmt.Errorf("%w: prime is required", ErrMalformedGroup)
	}

	derive, err := d.derivation()
	if err != nil {
		return nil, err
	}

	return NewGroup(d.Name, d.Prime, d.Generator, d.Multiplier, d.SaltLength, derive)
}

// derivation resolves the derivation name to a KeyDerivation.
func (d *groupDefinition) derivation() (KeyDerivation, error) {
	switch d.Derivation {
	case "", "sha256":
		return nil, nil // SHA256Derivation, the default
	case "pbkdf2":
		if d.Iterations < 1 {
			return nil, fmt.Errorf("%w: pbkdf2 requires iterations >= 1", ErrMalformedGroup)
		}
		return PBKDF2Derivation(d.Iterations), nil
	default:
		return nil, fmt.Errorf("%w: unknown derivation %q", ErrMalformedGroup, d.Derivation)
	}
}
