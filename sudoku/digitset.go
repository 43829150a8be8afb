package sudoku

import "math/bits"

// DigitSet is a set of digits 1-9 packed into bits 1-9 of a uint16.
type DigitSet uint16

// allDigits has every digit 1-9 set.
const allDigits DigitSet = 0x3FE

func (s DigitSet) Has(d int) bool {
	return s&(1<<uint(d)) != 0
}

func (s DigitSet) Remove(d int) DigitSet {
	return s &^ (1 << uint(d))
}

func (s DigitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Sole returns the single member of a one-element set, 0 otherwise.
func (s DigitSet) Sole() int {
	if s.Len() != 1 {
		return 0
	}
	return bits.TrailingZeros16(uint16(s))
}

// Digits lists the members in ascending order.
func (s DigitSet) Digits() []int {
	ds := make([]int, 0, s.Len())
	for d := 1; d <= 9; d++ {
		if s.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}
