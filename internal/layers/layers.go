// Package layers models the 32 render layer slots of a scene and the bitmask
// used to select subsets of them for a capture pass.
package layers

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotCount is the number of layer slots a scene carries.
const SlotCount = 32

// Mask is a bitset over the 32 layer slots. Bit i selects slot i.
type Mask uint32

// All selects every layer slot.
const All Mask = 0xFFFFFFFF

// Has reports whether slot i is selected. Out-of-range slots are never
// selected.
func (m Mask) Has(i int) bool {
	if i < 0 || i >= SlotCount {
		return false
	}
	return m&(1<<uint(i)) != 0
}

// With returns the mask with slot i added.
func (m Mask) With(i int) Mask {
	if i < 0 || i >= SlotCount {
		return m
	}
	return m | (1 << uint(i))
}

// String returns the hex representation of the mask.
func (m Mask) String() string {
	return fmt.Sprintf("0x%08X", uint32(m))
}

// ParseMask parses a mask from its string form. Accepted inputs are "all",
// a decimal number, or a 0x-prefixed hex number.
func ParseMask(s string) (Mask, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		return All, nil
	}
	base := 10
	if strings.HasPrefix(s, "0x") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid layer mask %q: %w", s, err)
	}
	return Mask(v), nil
}

// MaskForNames builds a mask selecting the named layers in table. Unknown
// names are reported back rather than silently dropped.
func MaskForNames(names []string, table [SlotCount]string) (Mask, error) {
	var m Mask
	for _, name := range names {
		found := false
		for i, n := range table {
			if n == name {
				m = m.With(i)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown layer %q", name)
		}
	}
	return m, nil
}

// Layer is one named layer slot.
type Layer struct {
	Index int
	Name  string
}

// Enumerate maps a mask over the slot table to the ordered sequence of named
// layers the mask selects. Slots without a name are skipped, so the result
// can be shorter than the mask's population count. Order follows slot index.
func Enumerate(m Mask, table [SlotCount]string) []Layer {
	out := make([]Layer, 0, SlotCount)
	for i := 0; i < SlotCount; i++ {
		if !m.Has(i) {
			continue
		}
		if table[i] == "" {
			continue
		}
		out = append(out, Layer{Index: i, Name: table[i]})
	}
	return out
}
