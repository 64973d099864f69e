package geometry

import (
	"encoding/json"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Tolerance describes how far apart two floats may be and still compare equal.
// Two values are equal when their difference is within Absolute, or within
// Relative times the larger magnitude. The zero Tolerance is exact comparison.
type Tolerance struct {
	Absolute float64 `json:"absolute" yaml:"absolute"`
	Relative float64 `json:"relative" yaml:"relative"`
}

// Exact compares floats with ==.
var Exact = Tolerance{}

// Equal reports whether a and b are equal within t. An infinity only equals
// itself.
func (t Tolerance) Equal(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	if diff <= t.Absolute {
		return true
	}
	return diff <= t.Relative*math.Max(math.Abs(a), math.Abs(b))
}

// Validate rejects negative or NaN bounds.
func (t Tolerance) Validate() error {
	if !(t.Absolute >= 0) {
		return newError("tolerance", ErrInvalidTolerance).WithContext("absolute", t.Absolute)
	}
	if !(t.Relative >= 0) {
		return newError("tolerance", ErrInvalidTolerance).WithContext("relative", t.Relative)
	}
	return nil
}

// LoadToleranceJSON loads a tolerance from a JSON reader.
func LoadToleranceJSON(r io.Reader) (Tolerance, error) {
	var t Tolerance
	dec := json.NewDecoder(r)
	if err := dec.Decode(&t); err != nil {
		return Tolerance{}, err
	}
	if err := t.Validate(); err != nil {
		return Tolerance{}, err
	}
	return t, nil
}

// LoadToleranceYAML loads a tolerance from a YAML reader.
func LoadToleranceYAML(r io.Reader) (Tolerance, error) {
	var t Tolerance
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&t); err != nil {
		return Tolerance{}, err
	}
	if err := t.Validate(); err != nil {
		return Tolerance{}, err
	}
	return t, nil
}
