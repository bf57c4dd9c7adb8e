package roadgraph

import (
	"math"

	"github.com/pkg/errors"
)

// SetSpeed writes speed into the forward slot, the backward slot or both of them and sets access flag to exactly (forward, backward).
//
// Everything is validated before the first write, so failed call leaves the edge untouched
func SetSpeed(speed float64, forward, backward bool, accessEnc BooleanEncodedValue, speedEnc DecimalEncodedValue, state EdgeState) error {
	if speed < 0 || math.IsNaN(speed) {
		return errors.Wrapf(ErrInvalidArgument, "speed must be non-negative, got %f", speed)
	}
	if err := accessEnc.checkWritable(state); err != nil {
		return err
	}
	if err := speedEnc.checkWritable(state); err != nil {
		return err
	}
	if !forward && !backward {
		if speed != 0 {
			return errors.Wrapf(ErrInvalidState, "speed %f for edge %d is stored in neither direction", speed, state.edge)
		}
		return accessEnc.SetDirections(state, false, true, true)
	}
	if speed < speedEnc.SmallestNonZeroValue()/2 {
		return errors.Wrapf(ErrInvalidState, "speed %f of accessible edge %d is below precision %f of '%s'", speed, state.edge, speedEnc.factor, speedEnc.name)
	}
	if _, err := speedEnc.quantize(speed); err != nil {
		return err
	}
	if forward {
		if err := speedEnc.Set(state, speed); err != nil {
			return err
		}
	}
	if backward {
		if err := speedEnc.SetReverse(state, speed); err != nil {
			return err
		}
	}
	if !accessEnc.IsStoreTwoDirections() {
		return accessEnc.Set(state, true)
	}
	if err := accessEnc.Set(state, forward); err != nil {
		return err
	}
	return accessEnc.SetReverse(state, backward)
}
