// SPDX-License-Identifier: MIT

package linalg

import (
	"bufio"
	"io"
	"strings"
)

// Fprint writes m to w, one line per row, e.g. "[1, 0]\n[0, 1]\n".
// Intended for debugging; the layout is not a compatibility contract.
// The only error returned is the one reported by w.
func Fprint(w io.Writer, m Matrix, opts ...PrintOption) error {
	o := gatherPrintOptions(opts...)
	bw := bufio.NewWriter(w)
	for _, row := range m {
		bw.WriteString(o.open)
		for j, x := range row {
			if j > 0 {
				bw.WriteString(o.sep)
			}
			bw.WriteString(o.format(x))
		}
		bw.WriteString(o.close)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String renders m with the default print options.
func (m Matrix) String() string {
	var b strings.Builder
	_ = Fprint(&b, m) // strings.Builder never fails

	return b.String()
}
