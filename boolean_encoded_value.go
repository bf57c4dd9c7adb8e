package roadgraph

// BooleanEncodedValue is a single bit flag, e.g. access permission
type BooleanEncodedValue struct {
	EncodedValueDescriptor
}

// RegisterBoolean reserves one bit (two bits if storeTwoDirections) for a flag
func (em *EncodingManager) RegisterBoolean(name string, storeTwoDirections bool) (BooleanEncodedValue, error) {
	descriptor, err := em.Register(name, 1, storeTwoDirections)
	if err != nil {
		return BooleanEncodedValue{}, err
	}
	return BooleanEncodedValue{descriptor}, nil
}

// Get returns flag in direction of given state
func (ev BooleanEncodedValue) Get(state EdgeState) bool {
	return ev.getRaw(state, false) == 1
}

// GetReverse returns flag in direction opposite to given state
func (ev BooleanEncodedValue) GetReverse(state EdgeState) bool {
	return ev.getRaw(state, true) == 1
}

func (ev BooleanEncodedValue) Set(state EdgeState, value bool) error {
	return ev.SetDirections(state, value, true, false)
}

func (ev BooleanEncodedValue) SetReverse(state EdgeState, value bool) error {
	return ev.SetDirections(state, value, false, true)
}

// SetDirections writes value into forward slot, backward slot, both or none of them. Untouched slots keep their values.
// For single direction value both slots are the same bit
func (ev BooleanEncodedValue) SetDirections(state EdgeState, value, forward, backward bool) error {
	if err := ev.checkWritable(state); err != nil {
		return err
	}
	raw := uint32(0)
	if value {
		raw = 1
	}
	if forward {
		ev.setRaw(state, false, raw)
	}
	if backward {
		ev.setRaw(state, true, raw)
	}
	return nil
}
