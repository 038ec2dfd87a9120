package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCharges renders a charge vector in the bracketed, aligned
// style of the reference output:
//
//	[ 1  1  1 -4 -4  5]
//
// Entries are right-aligned to the widest entry and separated by a
// single space.
func FormatCharges(charges []int64) string {
	width := 0
	for _, c := range charges {
		if w := len(strconv.FormatInt(c, 10)); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, c := range charges {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%*d", width, c)
	}
	b.WriteByte(']')
	return b.String()
}
