package report

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, "c", []int32{0, 0, 8, -3}); err != nil {
		t.Fatalf("WriteLines error: %v", err)
	}

	want := "c[0] = 0\nc[1] = 0\nc[2] = 8\nc[3] = -3\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestWriteLinesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines[int32](&buf, "c", nil); err != nil {
		t.Fatalf("WriteLines error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output = %q, want empty", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteLinesError(t *testing.T) {
	if err := WriteLines(failWriter{}, "c", []int32{1, 2, 3}); err == nil {
		t.Fatal("expected write error")
	}
}
