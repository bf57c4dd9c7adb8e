package roadgraph

import (
	"math"

	"github.com/pkg/errors"
)

// DecimalEncodedValue stores non-negative decimal as fixed-point integer: raw = round(value / factor).
//
// Rounding is to nearest with ties away from zero
type DecimalEncodedValue struct {
	EncodedValueDescriptor
	factor float64
}

// RegisterDecimal reserves bits for decimal value with precision step factor
func (em *EncodingManager) RegisterDecimal(name string, bits int, factor float64, storeTwoDirections bool) (DecimalEncodedValue, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return DecimalEncodedValue{}, errors.Wrapf(ErrInvalidArgument, "factor of '%s' must be positive finite, got %f", name, factor)
	}
	descriptor, err := em.Register(name, bits, storeTwoDirections)
	if err != nil {
		return DecimalEncodedValue{}, err
	}
	return DecimalEncodedValue{EncodedValueDescriptor: descriptor, factor: factor}, nil
}

func (ev DecimalEncodedValue) Factor() float64 {
	return ev.factor
}

func (ev DecimalEncodedValue) SmallestNonZeroValue() float64 {
	return ev.factor
}

func (ev DecimalEncodedValue) MaxStorableValue() float64 {
	return float64(ev.mask) * ev.factor
}

// Get returns value in direction of given state
func (ev DecimalEncodedValue) Get(state EdgeState) float64 {
	return float64(ev.getRaw(state, false)) * ev.factor
}

// GetReverse returns value in direction opposite to given state
func (ev DecimalEncodedValue) GetReverse(state EdgeState) float64 {
	return float64(ev.getRaw(state, true)) * ev.factor
}

func (ev DecimalEncodedValue) Set(state EdgeState, value float64) error {
	return ev.set(state, false, value)
}

func (ev DecimalEncodedValue) SetReverse(state EdgeState, value float64) error {
	return ev.set(state, true, value)
}

func (ev DecimalEncodedValue) set(state EdgeState, reverse bool, value float64) error {
	if err := ev.checkWritable(state); err != nil {
		return err
	}
	raw, err := ev.quantize(value)
	if err != nil {
		return err
	}
	ev.setRaw(state, reverse, raw)
	return nil
}

// quantize converts value to its raw representation.
// Non-zero value which would be stored as zero is rejected with ErrInvalidState
func (ev DecimalEncodedValue) quantize(value float64) (uint32, error) {
	if value < 0 || math.IsNaN(value) {
		return 0, errors.Wrapf(ErrInvalidArgument, "value of '%s' must be non-negative, got %f", ev.name, value)
	}
	raw := math.Round(value / ev.factor)
	if raw > float64(ev.mask) {
		return 0, errors.Wrapf(ErrInvalidArgument, "value %f of '%s' exceeds maximum storable %f", value, ev.name, ev.MaxStorableValue())
	}
	if raw == 0 && value != 0 {
		return 0, errors.Wrapf(ErrInvalidState, "value %f of '%s' can't be represented with precision %f", value, ev.name, ev.factor)
	}
	return uint32(raw), nil
}
