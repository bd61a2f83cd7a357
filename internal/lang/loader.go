package lang

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"pdef-example-generator/internal/diagnostic"
)

// LoadFile reads, parses and links a YAML package file.
//
// The returned error covers I/O and YAML syntax problems. Schema problems are
// reported through the diagnostics; the package is nil when they contain errors.
func LoadFile(path string) (*Package, *diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read package file %s", path)
	}

	pf, err := Parse(data)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "in %s", path)
	}

	pkg, diags := Link(pf)

	return pkg, diags, nil
}

// Parse parses YAML data into a PackageFile. Unknown keys are rejected.
func Parse(data []byte) (*PackageFile, error) {
	var pf PackageFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty package file")
		}

		return nil, errors.Wrap(err, "failed to parse package YAML")
	}

	applyDefaults(&pf)

	return &pf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(pf *PackageFile) {
	for i := range pf.Modules {
		m := &pf.Modules[i]
		if m.Namespace == "" {
			m.Namespace = m.Name
		}

		for j := range m.Definitions {
			d := &m.Definitions[j]
			if d.Namespace == "" {
				d.Namespace = m.Namespace
			}

			for k := range d.Methods {
				if d.Methods[k].Result == "" {
					d.Methods[k].Result = "void"
				}
			}
		}
	}
}

// Marshal serializes a PackageFile to YAML.
func Marshal(pf *PackageFile) ([]byte, error) {
	return yaml.Marshal(pf)
}
