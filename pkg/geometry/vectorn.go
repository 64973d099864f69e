package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// VectorN is a vector with a fixed number of dimensions chosen at
// construction. A VectorN never shares its storage with the caller; every
// operation returns a fresh vector.
type VectorN struct {
	axis []float64
}

// NewVectorN returns the zero vector with n dimensions.
func NewVectorN(n int) (VectorN, error) { return NewVectorNFill(n, 0) }

// NewVectorNFill returns an n-dimensional vector with every component set to value.
func NewVectorNFill(n int, value float64) (VectorN, error) {
	if n < 1 {
		return VectorN{}, newError("vectorN", ErrNoDimensions).WithContext("dimensions", n)
	}
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = value
	}
	return VectorN{axis: axis}, nil
}

// VectorNOf returns a vector with the given components.
func VectorNOf(values ...float64) (VectorN, error) {
	if len(values) < 1 {
		return VectorN{}, newError("vectorN", ErrNoDimensions).WithContext("dimensions", 0)
	}
	axis := make([]float64, len(values))
	copy(axis, values)
	return VectorN{axis: axis}, nil
}

// Len returns the number of dimensions.
func (v VectorN) Len() int { return len(v.axis) }

// Axis returns a copy of the components.
func (v VectorN) Axis() []float64 {
	out := make([]float64, len(v.axis))
	copy(out, v.axis)
	return out
}

// At returns component i.
func (v VectorN) At(i int) (float64, error) {
	if i < 0 || i >= len(v.axis) {
		return 0, v.indexError("vectorN at", i)
	}
	return v.axis[i], nil
}

// With returns a copy of v with component i set to value.
func (v VectorN) With(i int, value float64) (VectorN, error) {
	if i < 0 || i >= len(v.axis) {
		return VectorN{}, v.indexError("vectorN with", i)
	}
	out := v.clone()
	out.axis[i] = value
	return out, nil
}

func (v VectorN) Length() float64 {
	var total float64
	for _, a := range v.axis {
		total += a * a
	}
	return math.Sqrt(total)
}

// IsNormalized reports whether v has length exactly 1.
func (v VectorN) IsNormalized() bool { return v.Length() == 1 }

func (v VectorN) Add(o VectorN) (VectorN, error) {
	if err := v.sameDimensions("vectorN add", o); err != nil {
		return VectorN{}, err
	}
	out := v.clone()
	for i := range out.axis {
		out.axis[i] += o.axis[i]
	}
	return out, nil
}

func (v VectorN) Sub(o VectorN) (VectorN, error) {
	if err := v.sameDimensions("vectorN sub", o); err != nil {
		return VectorN{}, err
	}
	out := v.clone()
	for i := range out.axis {
		out.axis[i] -= o.axis[i]
	}
	return out, nil
}

func (v VectorN) Mul(k float64) VectorN {
	out := v.clone()
	for i := range out.axis {
		out.axis[i] *= k
	}
	return out
}

// Div scales v by 1/k.
func (v VectorN) Div(k float64) (VectorN, error) {
	if k == 0 {
		return VectorN{}, newError("vectorN div", ErrDivideByZero)
	}
	out := v.clone()
	for i := range out.axis {
		out.axis[i] /= k
	}
	return out, nil
}

func (v VectorN) Neg() VectorN { return v.Mul(-1) }

// Dot returns the dot product of v and o.
func (v VectorN) Dot(o VectorN) (float64, error) {
	if err := v.sameDimensions("vectorN dot", o); err != nil {
		return 0, err
	}
	var out float64
	for i := range v.axis {
		out += v.axis[i] * o.axis[i]
	}
	return out, nil
}

// DistanceTo returns the Euclidean distance between v and o.
func (v VectorN) DistanceTo(o VectorN) (float64, error) {
	d, err := o.Sub(v)
	if err != nil {
		return 0, err
	}
	return d.Length(), nil
}

// Compare orders vectors by length: -1 if v is shorter than o, +1 if
// longer, 0 if equal.
func (v VectorN) Compare(o VectorN) (int, error) {
	if err := v.sameDimensions("vectorN compare", o); err != nil {
		return 0, err
	}
	a, b := v.Length(), o.Length()
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// Normalize returns v scaled to unit length. A zero vector is returned unchanged.
func (v VectorN) Normalize() VectorN {
	length := v.Length()
	if length == 0 {
		return v.clone()
	}
	out := v.clone()
	for i := range out.axis {
		out.axis[i] /= length
	}
	return out
}

// CreateVectorToTarget returns the direction from v to target, normalized
// unless it already has unit length.
func (v VectorN) CreateVectorToTarget(target VectorN) (VectorN, error) {
	out, err := target.Sub(v)
	if err != nil {
		return VectorN{}, err
	}
	if !out.IsNormalized() {
		out = out.Normalize()
	}
	return out, nil
}

// InterpolateN returns v1*(1-t) + v2*t for t in [0, 1].
func InterpolateN(v1, v2 VectorN, t float64) (VectorN, error) {
	if err := v1.sameDimensions("vectorN interpolate", v2); err != nil {
		return VectorN{}, err
	}
	if !(t >= 0 && t <= 1) {
		return VectorN{}, newError("vectorN interpolate", ErrOutOfRange).WithContext("t", t)
	}
	out := v1.clone()
	for i := range out.axis {
		out.axis[i] = Lerp(v1.axis[i], v2.axis[i], t)
	}
	return out, nil
}

// Equal reports whether v and o have the same dimensions and components.
func (v VectorN) Equal(o VectorN) bool {
	if len(v.axis) != len(o.axis) {
		return false
	}
	for i := range v.axis {
		if v.axis[i] != o.axis[i] {
			return false
		}
	}
	return true
}

func (v VectorN) Hash() uint64 {
	d := xxhash.New()
	writeLen(d, len(v.axis))
	writeFloats(d, v.axis...)
	return d.Sum64()
}

func (v VectorN) String() string {
	parts := make([]string, len(v.axis))
	for i, a := range v.axis {
		parts[i] = fmt.Sprintf("%g", a)
	}
	return "VectorN(" + strings.Join(parts, ", ") + ")"
}

func (v VectorN) clone() VectorN {
	return VectorN{axis: v.Axis()}
}

func (v VectorN) sameDimensions(op string, o VectorN) error {
	if len(v.axis) != len(o.axis) {
		return newError(op, ErrDimensionMismatch).
			WithContext("left", len(v.axis)).
			WithContext("right", len(o.axis))
	}
	return nil
}

func (v VectorN) indexError(op string, i int) error {
	return newError(op, ErrIndexOutOfRange).
		WithContext("index", i).
		WithContext("len", len(v.axis))
}
