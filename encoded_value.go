package roadgraph

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	DEFAULT_PAYLOAD_BYTES = 8
	bitsPerInt            = 32
)

// EncodingManager assigns disjoint bit ranges of per-edge payload to named encoded values.
//
// It is open for registration until a Graph is created from it, then it is sealed and immutable
type EncodingManager struct {
	payloadBytes int
	nextBit      int
	values       []EncodedValueDescriptor
	byName       map[string]int
	sealed       bool
}

// NewEncodingManager returns manager open for registration
func NewEncodingManager(options ...func(*EncodingManager)) *EncodingManager {
	em := &EncodingManager{
		payloadBytes: DEFAULT_PAYLOAD_BYTES,
		values:       make([]EncodedValueDescriptor, 0),
		byName:       make(map[string]int),
	}
	for _, option := range options {
		option(em)
	}
	return em
}

// WithPayloadBytes sets per-edge payload width. It is rounded up to whole 32-bit words
func WithPayloadBytes(n int) func(*EncodingManager) {
	return func(em *EncodingManager) {
		if n < 0 {
			n = 0
		}
		em.payloadBytes = n
	}
}

func (em *EncodingManager) String() string {
	names := make([]string, len(em.values))
	for i := range em.values {
		names[i] = em.values[i].String()
	}
	return fmt.Sprintf("EncodingManager (bits used: %d of %d, sealed: %t) [%s]", em.nextBit, em.capacityBits(), em.sealed, strings.Join(names, ", "))
}

// IntsPerEdge returns number of 32-bit words reserved for every edge
func (em *EncodingManager) IntsPerEdge() int {
	return (em.payloadBytes + 3) / 4
}

func (em *EncodingManager) capacityBits() int {
	return em.IntsPerEdge() * bitsPerInt
}

func (em *EncodingManager) IsSealed() bool {
	return em.sealed
}

func (em *EncodingManager) seal() {
	em.sealed = true
}

// Descriptor returns registered encoded value by its name
func (em *EncodingManager) Descriptor(name string) (EncodedValueDescriptor, bool) {
	idx, ok := em.byName[name]
	if !ok {
		return EncodedValueDescriptor{}, false
	}
	return em.values[idx], true
}

// Descriptors returns every registered encoded value in registration order
func (em *EncodingManager) Descriptors() []EncodedValueDescriptor {
	result := make([]EncodedValueDescriptor, len(em.values))
	copy(result, em.values)
	return result
}

// Register reserves next free bit range for encoded value. Values storing both directions get two ranges.
// A range never crosses 32-bit word boundary
func (em *EncodingManager) Register(name string, bits int, storeTwoDirections bool) (EncodedValueDescriptor, error) {
	if em.sealed {
		return EncodedValueDescriptor{}, errors.Wrapf(ErrInvalidState, "can't register '%s': encoding manager is sealed", name)
	}
	if name == "" {
		return EncodedValueDescriptor{}, errors.Wrap(ErrInvalidArgument, "encoded value name must not be empty")
	}
	if _, ok := em.byName[name]; ok {
		return EncodedValueDescriptor{}, errors.Wrapf(ErrInvalidArgument, "encoded value '%s' is already registered", name)
	}
	if bits < 1 || bits > bitsPerInt {
		return EncodedValueDescriptor{}, errors.Wrapf(ErrInvalidArgument, "bits of '%s' must be in [1, %d], got %d", name, bitsPerInt, bits)
	}

	cursor := em.nextBit
	fwd := allocateSlot(&cursor, bits)
	bwd := fwd
	if storeTwoDirections {
		bwd = allocateSlot(&cursor, bits)
	}
	if cursor > em.capacityBits() {
		return EncodedValueDescriptor{}, errors.Wrapf(ErrInvalidArgument, "too few bytes reserved for '%s': needs %d bits, but payload has %d bits", name, cursor, em.capacityBits())
	}
	em.nextBit = cursor

	descriptor := EncodedValueDescriptor{
		owner:              em,
		name:               name,
		bits:               bits,
		storeTwoDirections: storeTwoDirections,
		mask:               uint32((uint64(1) << uint(bits)) - 1),
		fwd:                fwd,
		bwd:                bwd,
	}
	em.byName[name] = len(em.values)
	em.values = append(em.values, descriptor)
	return descriptor, nil
}

// allocateSlot reserves bits starting from cursor, moves to the next word if bits do not fit in current one
func allocateSlot(cursor *int, bits int) bitSlot {
	if (*cursor%bitsPerInt)+bits > bitsPerInt {
		*cursor = (*cursor/bitsPerInt + 1) * bitsPerInt
	}
	slot := bitSlot{word: *cursor / bitsPerInt, shift: uint(*cursor % bitsPerInt)}
	*cursor += bits
	return slot
}

type bitSlot struct {
	word  int
	shift uint
}

// EncodedValueDescriptor is bit range metadata of registered encoded value
type EncodedValueDescriptor struct {
	owner              *EncodingManager
	name               string
	bits               int
	storeTwoDirections bool
	mask               uint32
	fwd                bitSlot
	bwd                bitSlot
}

func (d EncodedValueDescriptor) String() string {
	return fmt.Sprintf("%s|bits=%d|both=%t", d.name, d.bits, d.storeTwoDirections)
}

func (d EncodedValueDescriptor) Name() string {
	return d.name
}

func (d EncodedValueDescriptor) Bits() int {
	return d.bits
}

func (d EncodedValueDescriptor) IsStoreTwoDirections() bool {
	return d.storeTwoDirections
}

func (d EncodedValueDescriptor) slot(reverse bool) bitSlot {
	if reverse && d.storeTwoDirections {
		return d.bwd
	}
	return d.fwd
}

// getRaw reads raw bits. Parameter reverse is relative to the state orientation
func (d EncodedValueDescriptor) getRaw(state EdgeState, reverse bool) uint32 {
	slot := d.slot(state.reverse != reverse)
	return (state.graph.flag(state.edge, slot.word) >> slot.shift) & d.mask
}

func (d EncodedValueDescriptor) setRaw(state EdgeState, reverse bool, value uint32) {
	slot := d.slot(state.reverse != reverse)
	word := state.graph.flag(state.edge, slot.word)
	word &^= d.mask << slot.shift
	word |= (value & d.mask) << slot.shift
	state.graph.setFlag(state.edge, slot.word, word)
}

// checkWritable verifies that payload of the state could be written with this descriptor
func (d EncodedValueDescriptor) checkWritable(state EdgeState) error {
	if state.graph == nil {
		return errors.Wrapf(ErrInvalidArgument, "can't write '%s' to empty edge state", d.name)
	}
	if d.owner == nil || d.owner != state.graph.encoding {
		return errors.Wrapf(ErrInvalidState, "encoded value '%s' is not registered in encoding manager of the graph", d.name)
	}
	return state.graph.checkWritable()
}
