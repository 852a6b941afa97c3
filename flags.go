package chatlayout

// Bits is the set of integer types a Flags value can wrap. Enum types used
// as flags declare their members as powers of two.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Flags gives an enum type the algebra of a bit set. The zero value is the
// empty set. Flags is a value type and is safe to copy.
//
// All operations are total over the underlying integer: bits outside the
// enum's declared members are carried through unchanged.
type Flags[E Bits] struct {
	value E
}

// NewFlags returns the union of members. With no members it returns the
// empty set.
func NewFlags[E Bits](members ...E) Flags[E] {
	var f Flags[E]
	for _, m := range members {
		f.value |= m
	}
	return f
}

// Value returns the wrapped integer.
func (f Flags[E]) Value() E { return f.value }

// IsEmpty reports whether no bit is set.
func (f Flags[E]) IsEmpty() bool { return f.value == 0 }

// Not returns the complement of f.
func (f Flags[E]) Not() Flags[E] { return Flags[E]{value: ^f.value} }

// Union returns f | mask.
func (f Flags[E]) Union(mask E) Flags[E] { return Flags[E]{value: f.value | mask} }

// Intersect returns f & mask.
func (f Flags[E]) Intersect(mask E) Flags[E] { return Flags[E]{value: f.value & mask} }

// Toggle returns the symmetric difference f ^ mask.
func (f Flags[E]) Toggle(mask E) Flags[E] { return Flags[E]{value: f.value ^ mask} }

// UnionWith is the in-place form of Union.
func (f *Flags[E]) UnionWith(mask E) { f.value |= mask }

// IntersectWith is the in-place form of Intersect.
func (f *Flags[E]) IntersectWith(mask E) { f.value &= mask }

// ToggleWith is the in-place form of Toggle.
func (f *Flags[E]) ToggleWith(mask E) { f.value ^= mask }

// Set adds member to the set.
func (f *Flags[E]) Set(member E) { f.value |= member }

// Unset removes member from the set.
func (f *Flags[E]) Unset(member E) { f.value &^= member }

// SetTo sets member when on is true and unsets it otherwise.
func (f *Flags[E]) SetTo(member E, on bool) {
	if on {
		f.Set(member)
		return
	}
	f.Unset(member)
}

// Has reports whether every bit of mask is present. For a multi-bit mask
// this is stricter than Intersects.
func (f Flags[E]) Has(mask E) bool { return f.value&mask == mask }

// Intersects reports whether f and mask share at least one bit.
func (f Flags[E]) Intersects(mask E) bool { return f.value&mask != 0 }
