package content

import (
	"bytes"
	"testing"
)

func TestConcatStreamsSingleSeparator(t *testing.T) {
	out, err := ConcatStreams([][]byte{[]byte("q 1 0 0 1 0 0 cm"), []byte("BT /F1 12 Tf ET")})
	if err != nil {
		t.Fatalf("ConcatStreams: %v", err)
	}
	want := "q 1 0 0 1 0 0 cm BT /F1 12 Tf ET "
	if !bytes.Equal(out, []byte(want)) {
		t.Errorf("ConcatStreams = %q, want %q", out, want)
	}
}

func TestConcatStreamsEmpty(t *testing.T) {
	out, err := ConcatStreams(nil)
	if err != nil || out != nil {
		t.Errorf("ConcatStreams(nil) = %v, %v, want nil, nil", out, err)
	}
}

func TestRectangleContains(t *testing.T) {
	outer := Rectangle{Llx: 0, Lly: 0, Urx: 100, Ury: 100}
	inner := Rectangle{Llx: 10, Lly: 10, Urx: 50, Ury: 50}
	if !outer.Contains(inner) {
		t.Errorf("outer.Contains(inner) = false, want true")
	}
	if inner.Contains(outer) {
		t.Errorf("inner.Contains(outer) = true, want false")
	}
}
