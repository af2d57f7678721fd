// Package problem reads the YAML documents accepted by the pathfill command
// and turns them into graphs.
//
// Two document kinds exist. A ProbDoc describes a max-probability query in
// the parallel-slice form (edges plus succ_prob). An ImageDoc describes a
// flood-fill request, either as explicit vertices and edges or as a grid of
// colors. Structural checks run through go-playground/validator; every edge
// fault is collected so a user sees all of them at once.
package problem

import (
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument wraps every structural or semantic fault of a document.
var ErrInvalidDocument = errors.New("problem: invalid document")

var validate = validator.New()

// decode strictly decodes one YAML document from r into out and validates it.
func decode(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.Wrap(ErrInvalidDocument, "empty document")
		}

		return errors.Wrapf(ErrInvalidDocument, "yaml: %v", err)
	}
	if err := validate.Struct(out); err != nil {
		return errors.Wrapf(ErrInvalidDocument, "%v", err)
	}

	return nil
}

// readFile opens path and hands it to read.
func readFile[T any](path string, read func(io.Reader) (*T, error)) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	doc, err := read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return doc, nil
}
