package metro

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidNetwork indicates a network file that failed validation.
var ErrInvalidNetwork = errors.New("metro: invalid network")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates a YAML network file.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("metro: open %s: %w", path, err)
	}
	defer f.Close()

	n, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

// Decode parses a YAML network and validates its shape. Unknown fields are
// rejected. Graph invariants (loops, weights) are checked again by Graph.
func Decode(r io.Reader) (*Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var n Network
	if err := dec.Decode(&n); err != nil {
		return nil, fmt.Errorf("metro: decode: %w", err)
	}
	if err := validate.Struct(&n); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidNetwork, describe(verrs))
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}

	return &n, nil
}

// Encode writes n as YAML.
func Encode(w io.Writer, n *Network) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("metro: encode: %w", err)
	}

	return enc.Close()
}

// describe renders validator errors as "Field(tag); Field(tag)".
func describe(verrs validator.ValidationErrors) string {
	out := ""
	for i, fe := range verrs {
		if i > 0 {
			out += "; "
		}
		out += fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}

	return out
}
