// Package report formats indexed values for display.
package report

import (
	"bufio"
	"fmt"
	"io"
)

// WriteLines writes one line per element in increasing index order:
//
//	<name>[<i>] = <value>
func WriteLines[T any](w io.Writer, name string, values []T) error {
	bw := bufio.NewWriter(w)
	for i, v := range values {
		if _, err := fmt.Fprintf(bw, "%s[%d] = %v\n", name, i, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
