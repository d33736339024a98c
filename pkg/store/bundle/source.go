package bundle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/sales"
)

// Source loads an input bundle from somewhere
type Source interface {
	Load(ctx context.Context) (*domain.Bundle, error)
}

// Decode reads a single JSON bundle. Malformed JSON, values of the wrong type
// (e.g. an object where a list is expected) and trailing data after the
// bundle are reported as invalid input.
func Decode(r io.Reader) (*domain.Bundle, error) {
	var payload api.Bundle
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		switch {
		case errors.As(err, &typeErr):
			return nil, &sales.InvalidInputError{
				Reason: fmt.Sprintf("field %q must be %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value),
			}
		case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return nil, &sales.InvalidInputError{Reason: fmt.Sprintf("malformed bundle: %v", err)}
		default:
			return nil, fmt.Errorf("decode bundle: %w", err)
		}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &sales.InvalidInputError{Reason: "unexpected data after the bundle"}
	}
	return adapters.MapBundleApiToDomain(payload), nil
}

// ReaderSource decodes a bundle from a stream such as stdin or a request body
type ReaderSource struct {
	reader io.Reader
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{reader: r}
}

func (s *ReaderSource) Load(_ context.Context) (*domain.Bundle, error) {
	return Decode(s.reader)
}

// Static is a Source over an already decoded bundle
type Static struct {
	Bundle *domain.Bundle
}

func (s Static) Load(_ context.Context) (*domain.Bundle, error) {
	return s.Bundle, nil
}
