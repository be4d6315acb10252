package filters

import (
	"bytes"
	"testing"

	"github.com/benkirche/pdfcs/objects"
)

func TestCanonicalName(t *testing.T) {
	if got := CanonicalName("Fl"); got != Flate {
		t.Errorf("CanonicalName(Fl) = %q, want %q", got, Flate)
	}
	if got := CanonicalName("FlateDecode"); got != "FlateDecode" {
		t.Errorf("CanonicalName(FlateDecode) = %q, want unchanged", got)
	}
}

func TestRunLengthRoundTrip(t *testing.T) {
	// 2 literal bytes "ab", then a 3x repeat of 'z', then EOD.
	encoded := []byte{1, 'a', 'b', byte(257 - 3), 'z', 128}
	consumed, decoded, err := Dispatch(RunLength, nil, encoded, true)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if consumed != len(encoded) {
		t.Errorf("consumed = %d, want %d", consumed, len(encoded))
	}
	if !bytes.Equal(decoded, []byte("abzzz")) {
		t.Errorf("decoded = %q, want %q", decoded, "abzzz")
	}
}

func TestAscii85SkipFindsTerminator(t *testing.T) {
	prefix := "87cURD_*#4DfTZ)+T~>"
	data := append([]byte(prefix), []byte("trailing garbage")...)
	n, err := (ascii85Codec{}).Skip(data)
	if err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if n != len(prefix) {
		t.Errorf("consumed = %d, want %d", n, len(prefix))
	}
}

func TestAsciiHexDecode(t *testing.T) {
	consumed, decoded, err := Dispatch(ASCIIHex, nil, []byte("48656c6c6f>ignored"), true)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if consumed != len("48656c6c6f>") {
		t.Errorf("consumed = %d, want %d", consumed, len("48656c6c6f>"))
	}
	if string(decoded) != "Hello" {
		t.Errorf("decoded = %q, want %q", decoded, "Hello")
	}
}

func TestUnsupportedFilter(t *testing.T) {
	_, _, err := Dispatch(objects.Name("BogusDecode"), nil, nil, false)
	if err != ErrUnsupportedFilter {
		t.Errorf("err = %v, want ErrUnsupportedFilter", err)
	}
}

func TestPNGPredictorSub(t *testing.T) {
	// one row, filter type 1 (Sub), 1 byte per pixel: [1, 0x01, 0x01]
	// decodes to [0x01, 0x02] (each byte adds the previous).
	data := []byte{1, 0x01, 0x01}
	parms := objects.Dict{"Predictor": objects.Number(12), "Colors": objects.Number(1), "BitsPerComponent": objects.Number(8), "Columns": objects.Number(2)}
	out := applyPredictor(data, parms)
	if !bytes.Equal(out, []byte{0x01, 0x02}) {
		t.Errorf("applyPredictor = %v, want [1 2]", out)
	}
}
