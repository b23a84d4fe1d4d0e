// dump.go - raw hex/ASCII block rendering
package indexshow

import (
	"fmt"
	"io"
	"strings"
)

const dumpStep = 32 // hex columns per row

// WriteHexDump renders c as the index file's dump table: a column-index
// header, a separator, then rows of 32 hex byte values paired with 16
// two-byte ASCII groups. Bytes outside [0x20, 0x7E] render as '.'.
//
// The hex and ASCII sections of a row share one done flag, evaluated hex
// first then ASCII, and the loop only exits after finishing the row that
// set it. A buffer whose length is a multiple of 32 (including length 0)
// therefore gets one trailing row holding only the margin spaces. Output
// must stay byte-identical with the historical dump, trailing row
// included.
func WriteHexDump(w io.Writer, c []byte) {
	fmt.Fprint(w, "    ")
	for i := 0; i < dumpStep; i++ {
		fmt.Fprintf(w, "%2d ", i)
	}
	fmt.Fprint(w, "  ")
	for i := 0; i < dumpStep/2; i++ {
		fmt.Fprintf(w, "%-2d ", i*2)
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "    ")
	fmt.Fprint(w, strings.Repeat("---", dumpStep))
	fmt.Fprint(w, "  ")
	fmt.Fprint(w, strings.Repeat("---", dumpStep/2))
	fmt.Fprintln(w)

	for lineNo := 0; ; lineNo++ {
		fmt.Fprint(w, "    ")
		done := false
		for i := 0; i < dumpStep; i++ {
			inx := lineNo*dumpStep + i
			if inx == len(c) {
				done = true
				break
			}
			fmt.Fprintf(w, "%02x ", c[inx])
		}
		fmt.Fprint(w, "  ")
		for i := 0; i < dumpStep/2; i++ {
			inx := lineNo*dumpStep + i*2
			if inx+1 >= len(c) {
				done = true
				break
			}
			fmt.Fprintf(w, "%c%c ", printable(c[inx]), printable(c[inx+1]))
		}
		fmt.Fprintln(w)
		if done {
			break
		}
	}
}

func printable(b byte) byte {
	if b >= 0x20 && b <= 0x7e {
		return b
	}
	return '.'
}
