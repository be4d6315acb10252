package parser

import (
	"bytes"
	"testing"

	"github.com/benkirche/pdfcs/objects"
)

func TestReadInlineStreamNoFilterUsesGeometryBound(t *testing.T) {
	// 4x4 1-bit mask, no ColorSpace: OrigSize = ceil(4/8)*4 = 4 bytes.
	// The raw payload below is longer than that bound, plus trailing
	// garbage before EI that a forward scan to EI would have included.
	p := New([]byte("/W 4 /H 4 /BPC 1 ID \x01\x02\x03\x04\x05\x06 EI"))
	img, err := p.ReadInlineStream(false)
	if err != nil {
		t.Fatalf("ReadInlineStream: %v", err)
	}
	if len(img.Content) != 4 {
		t.Fatalf("len(Content) = %d, want 4 (geometry bound)", len(img.Content))
	}
	if !bytes.Equal(img.Content, []byte{1, 2, 3, 4}) {
		t.Fatalf("Content = %v, want [1 2 3 4]", img.Content)
	}
	if n, ok := img.Dict["Length"].(objects.Number); !ok || int(n) != 4 {
		t.Fatalf("Dict[Length] = %#v, want Number(4)", img.Dict["Length"])
	}
}

func TestReadInlineStreamNoFilterTruncatedByRemaining(t *testing.T) {
	// geometry bound (100 bytes) exceeds what's left in the buffer, so
	// the payload runs to the end of the buffer, " EI" included.
	p := New([]byte("/W 800 /H 1 /BPC 1 ID \x01\x02\x03 EI"))
	img, err := p.ReadInlineStream(false)
	if err != nil {
		t.Fatalf("ReadInlineStream: %v", err)
	}
	if !bytes.Equal(img.Content, []byte("\x01\x02\x03 EI")) {
		t.Fatalf("Content = %q, want %q", img.Content, "\x01\x02\x03 EI")
	}
}

func TestReadInlineStreamOverflowedGeometry(t *testing.T) {
	p := New([]byte("/W 2000000000 /H 2000000000 /BPC 8 /CS /RGB ID xx EI"))
	_, err := p.ReadInlineStream(false)
	if err != ErrOverflowedGeometry {
		t.Fatalf("err = %v, want ErrOverflowedGeometry", err)
	}
}

func TestReadInlineStreamColorSpaceDefaultsToThreeComponents(t *testing.T) {
	// 2x1, 8 bpc, ColorSpace present -> nComponents defaults to 3:
	// OrigSize = ceil(2*8*3/8)*1 = 6 bytes.
	p := New([]byte("/W 2 /H 1 /BPC 8 /CS /DeviceRGB ID \x01\x02\x03\x04\x05\x06\x07 EI"))
	img, err := p.ReadInlineStream(false)
	if err != nil {
		t.Fatalf("ReadInlineStream: %v", err)
	}
	if len(img.Content) != 6 {
		t.Fatalf("len(Content) = %d, want 6", len(img.Content))
	}
}
