package trace

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vmask/mask"
)

func sampleStrip() Strip {
	return Strip{
		Offset: 8,
		VL:     2,
		VLMax:  4,
		SEW:    32,
		LMUL:   1,
		Mask:   mask.EvenIndices(4),
		A:      []int32{8, 9},
		B:      []int32{16, 18},
		C:      []int32{128, 0},
	}
}

func TestStripActive(t *testing.T) {
	if got := sampleStrip().Active().String(); got != "1000" {
		t.Fatalf("Active() = %s, want 1000", got)
	}
}

func TestRecorderCopies(t *testing.T) {
	rec := &Recorder{}
	s := sampleStrip()
	rec.Strip(s)
	s.C[0] = -1

	strips := rec.Strips()
	if len(strips) != 1 {
		t.Fatalf("got %d strips, want 1", len(strips))
	}
	if strips[0].C[0] != 128 {
		t.Fatalf("recorded C[0] = %d, want 128 (recorder must copy)", strips[0].C[0])
	}

	rec.Reset()
	if len(rec.Strips()) != 0 {
		t.Fatal("Reset did not clear strips")
	}
}

func TestRecorderCopiesMask(t *testing.T) {
	rec := &Recorder{}
	s := sampleStrip()
	rec.Strip(s)

	rec.Strips()[0].Mask.Set(1, true)
	if got := s.Mask.String(); got != "1010" {
		t.Fatalf("source mask = %s after mutating the recorded one, want 1010", got)
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	if p.Color {
		t.Fatal("Color must be off for non-terminal writers")
	}

	p.Strip(sampleStrip())
	p.Strip(sampleStrip())

	want := "strip 0: offset=8 vl=2 vlmax=4 sew=32 lmul=1\n" +
		"  v0    1010\n" +
		"  va    8 9\n" +
		"  vb    16 18\n" +
		"  vc    128 0\n"
	out := buf.String()
	if !strings.HasPrefix(out, want) {
		t.Fatalf("output =\n%s\nwant prefix\n%s", out, want)
	}
	if !strings.Contains(out, "strip 1: offset=8") {
		t.Fatal("second strip not numbered 1")
	}
	if p.Err() != nil {
		t.Fatalf("Err() = %v", p.Err())
	}
}

func TestPrinterColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Color = true
	p.Strip(sampleStrip())

	if !strings.Contains(buf.String(), "  vc    "+ansiActive+"128"+ansiReset+" 0\n") {
		t.Fatalf("active lane not highlighted:\n%q", buf.String())
	}
}

func TestPrinterHex(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Hex = true

	s := sampleStrip()
	s.C = []int32{128, -1}
	p.Strip(s)

	out := buf.String()
	if !strings.Contains(out, "  va    0x00000008 0x00000009\n") {
		t.Fatalf("va not in hex:\n%s", out)
	}
	if !strings.Contains(out, "  vc    0x00000080 0xffffffff\n") {
		t.Fatalf("negative lane not shown as two's complement:\n%s", out)
	}
}

type failWriter struct{ calls int }

func (w *failWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("broken pipe")
}

func TestPrinterStopsAfterError(t *testing.T) {
	w := &failWriter{}
	p := NewPrinter(w)
	p.Strip(sampleStrip())
	p.Strip(sampleStrip())

	if p.Err() == nil {
		t.Fatal("expected write error")
	}
	if w.calls != 1 {
		t.Fatalf("writer called %d times, want 1", w.calls)
	}
}
