package graphio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// ReadJSON decodes a graph document from r and validates it.
//
// ReadJSON returns an INVALID_FORMAT error when the JSON is malformed and an
// INVALID_DOCUMENT error when the document violates reference constraints
// (empty or duplicate node ids, edges naming unknown nodes). The returned
// document is independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph document")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ImportJSON reads and validates a graph document from a file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
