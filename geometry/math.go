// Package geometry provides the integer math used to map grid cells onto pixels.
package geometry

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SpanSlot splits a pixel span of length total into count equal slots and
// returns the offset and length of the slot at index. Integer division
// leaves total%count remainder pixels; those are absorbed into the final
// slot so the slots always tile the whole span. Out-of-range arguments
// yield an empty slot.
func SpanSlot(total, count, index int) (offset, length int) {
	if total <= 0 || count <= 0 || index < 0 || index >= count {
		return 0, 0
	}
	size := total / count
	offset = index * size
	if index == count-1 {
		return offset, total - offset
	}
	return offset, size
}
