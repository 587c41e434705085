/*
Package seqfmt formats sequences in list notation.
*/
package seqfmt

import (
	"fmt"
	"iter"
	"strings"
)

// Format renders seq as [v1, v2, ...] with each value formatted by %v.
func Format[V any](seq iter.Seq[V]) string {
	var b strings.Builder

	b.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')

	return b.String()
}
