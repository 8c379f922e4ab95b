package trace

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/cwbudde/algo-vmask/mask"
)

const (
	ansiActive = "\x1b[1;32m"
	ansiReset  = "\x1b[0m"
)

// Printer is a Tracer that renders each strip as a text block:
//
//	strip 0: offset=0 vl=4 vlmax=4 sew=32 lmul=1
//	  v0    1010
//	  va    0 1 2 3
//	  vb    0 2 4 6
//	  vc    0 0 8 0
//
// When Color is set, active lanes of vc are highlighted with ANSI escapes.
// When Hex is set, lanes are shown as zero-padded two's complement hex of
// SEW bits.
type Printer struct {
	w   io.Writer
	n   int
	err error

	Color bool
	Hex   bool
}

// NewPrinter returns a Printer writing to w. Color is enabled when w is a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{w: w}
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		p.Color = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return p
}

// Strip writes s. After the first write error further strips are dropped;
// the error is available from Err.
func (p *Printer) Strip(s Strip) {
	if p.err != nil {
		return
	}

	active := s.Active()
	var sb strings.Builder
	fmt.Fprintf(&sb, "strip %d: offset=%d vl=%d vlmax=%d sew=%d lmul=%d\n", p.n, s.Offset, s.VL, s.VLMax, s.SEW, s.LMUL)
	fmt.Fprintf(&sb, "  v0    %s\n", s.Mask)
	fmt.Fprintf(&sb, "  va    %s\n", p.lanes(s.A, mask.Mask{}))
	fmt.Fprintf(&sb, "  vb    %s\n", p.lanes(s.B, mask.Mask{}))
	fmt.Fprintf(&sb, "  vc    %s\n", p.lanes(s.C, active))
	p.n++

	_, p.err = io.WriteString(p.w, sb.String())
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) lanes(v []int32, highlight mask.Mask) string {
	parts := make([]string, len(v))
	for i, x := range v {
		var s string
		if p.Hex {
			s = fmt.Sprintf("0x%08x", uint32(x))
		} else {
			s = fmt.Sprint(x)
		}
		if p.Color && highlight.Get(i) {
			s = ansiActive + s + ansiReset
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}
