package parser

import (
	"bytes"
	"testing"

	"github.com/benkirche/pdfcs/objects"
)

func TestNextTokenClassification(t *testing.T) {
	p := New([]byte("12 /Name true false null (lit) <48656c6c6f> [1 2] << /K 1 >> foo"))

	wantKinds := []TokenKind{
		TokNumber, TokName, TokOther, TokOther, TokOther,
		TokOther, TokOther, TokOther, TokOther, TokKeyword, TokEndOfData,
	}
	for i, want := range wantKinds {
		tok := p.NextToken()
		if tok.Kind != want {
			t.Fatalf("token %d: Kind = %v, want %v (word %q)", i, tok.Kind, want, tok.Word)
		}
	}
}

func TestReadObjectNumberAndName(t *testing.T) {
	p := New([]byte("3.14 /A#20B"))
	n, ok := p.ReadObject(true, false).(objects.Number)
	if !ok || n != 3.14 {
		t.Fatalf("ReadObject() = %#v, want Number(3.14)", n)
	}
	name, ok := p.ReadObject(true, false).(objects.Name)
	if !ok || name != "A B" {
		t.Fatalf("ReadObject() = %#v, want Name(\"A B\")", name)
	}
}

func TestReadObjectArrayAndDict(t *testing.T) {
	p := New([]byte("[1 2 /X] << /A 1 /B (s) /C null >>"))
	arr, ok := p.ReadObject(true, false).(objects.Array)
	if !ok || len(arr) != 3 {
		t.Fatalf("ReadObject() array = %#v", arr)
	}
	dict, ok := p.ReadObject(true, false).(objects.Dict)
	if !ok {
		t.Fatalf("ReadObject() = %#v, want Dict", dict)
	}
	if _, present := dict["C"]; present {
		t.Fatalf("Dict entry with null value should be omitted, got %#v", dict)
	}
	if s, ok := dict["B"].(objects.String); !ok || string(s) != "s" {
		t.Fatalf("Dict[B] = %#v, want String(\"s\")", dict["B"])
	}
}

func TestWordLengthCap(t *testing.T) {
	long := bytes.Repeat([]byte{'a'}, MaxWordLen+50)
	p := New(long)
	tok := p.NextToken()
	if len(tok.Word) != MaxWordLen {
		t.Fatalf("len(Word) = %d, want %d", len(tok.Word), MaxWordLen)
	}
	if p.Pos() != len(long) {
		t.Fatalf("Pos() = %d, want %d (every input byte must be consumed)", p.Pos(), len(long))
	}
}

func TestStringLengthCap(t *testing.T) {
	inner := bytes.Repeat([]byte{'x'}, MaxStringLen+100)
	buf := append([]byte{'('}, inner...)
	buf = append(buf, ')')
	p := New(buf)
	s := p.ReadObject(true, false).(objects.String)
	if len(s) != MaxStringLen {
		t.Fatalf("len(String) = %d, want %d", len(s), MaxStringLen)
	}
}

func TestSkipPathObjectMatchAndRestore(t *testing.T) {
	p := New([]byte("10 20 m 1 2 3 Tj"))
	op, ok := p.SkipPathObject()
	if !ok || op != "m" {
		t.Fatalf("SkipPathObject() = %q, %v, want \"m\", true", op, ok)
	}

	start := p.Pos()
	_, ok = p.SkipPathObject()
	if ok {
		t.Fatalf("SkipPathObject() matched on a non-path operator run")
	}
	if p.Pos() != start {
		t.Fatalf("Pos() = %d after failed match, want %d (full restore)", p.Pos(), start)
	}
}

func TestHexStringOddDigit(t *testing.T) {
	p := New([]byte("<48656C6C6F2"))
	s := p.ReadObject(true, false).(objects.String)
	if string(s) != "Hello " {
		t.Fatalf("ReadHexString() = %q, want %q", s, "Hello ")
	}
}
