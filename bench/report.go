package bench

import (
	"fmt"
	"io"
	"strings"
)

var _ io.WriterTo = (*Report)(nil)

// WriteTo prints, for naive then block, the elapsed time to 4 decimals and
// the top-left fragment of the product:
//
//	<blank>
//	naive multiplication time: 0.0123 s
//	<blank>
//	naive multiplication result (top-left 5x5 fragment):
//	[31.1, 30.2, ...]
//	...
//
// When the run was verified, a final line reports max |naive - block|.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, res := range []Result{r.Naive, r.Block} {
		writeResult(&b, res, r.precision)
	}
	if r.Verified {
		fmt.Fprintf(&b, "\nmax |naive - block| = %.3e\n", r.MaxAbsDiff)
	}
	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

func writeResult(b *strings.Builder, res Result, prec int) {
	fmt.Fprintf(b, "\n%s multiplication time: %.4f s\n", res.Label, res.Elapsed)
	if res.Corner == nil {
		return
	}
	rows, cols := res.Corner.Shape()
	fmt.Fprintf(b, "\n%s multiplication result (top-left %dx%d fragment):\n", res.Label, rows, cols)
	b.WriteString(res.Corner.Format(prec))
}
