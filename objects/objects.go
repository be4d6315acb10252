// Package objects defines the PDF object tree produced by the content
// stream parser: numbers, names, strings, booleans, null, arrays and
// dictionaries. Composite objects exclusively own their children -
// releasing a composite releases the subtree. There are no cycles by
// construction, so plain Go composition (slices and maps) is enough;
// no reference counting is needed.
//
// The shape follows the teacher's model package (ObjInt, ObjName,
// ObjStringLiteral, ObjBool, ObjNull, ObjArray, ObjDict in
// model/types.go), trimmed to what a content-stream object tree needs -
// no PDF-writer `Write` method, no indirect references (those require
// indirect objects are not valid inside a content stream).
package objects

import "fmt"

// Object is any value produced by ReadObject: Number, Name, String,
// Boolean, Null, Array or Dict.
type Object interface {
	fmt.Stringer
	isObject()
}

// Number is a PDF numeric object (integer or real; content streams do
// not distinguish the two at the object-tree level).
type Number float64

func (Number) isObject()        {}
func (n Number) String() string { return fmt.Sprintf("%g", float64(n)) }

// Name is a PDF name object, decoded: any #XX escape has already been
// resolved to the raw byte 0xXX.
type Name string

func (Name) isObject()        {}
func (n Name) String() string { return "/" + string(n) }

// String is a PDF string object, from either literal ( ... ) or hex
// < ... > surface syntax. Capped at 32767 bytes by the reader.
type String []byte

func (String) isObject()        {}
func (s String) String() string { return fmt.Sprintf("(%s)", []byte(s)) }

// Boolean is a PDF boolean object.
type Boolean bool

func (Boolean) isObject()        {}
func (b Boolean) String() string { return fmt.Sprintf("%v", bool(b)) }

// Null is the PDF null object.
type Null struct{}

func (Null) isObject()      {}
func (Null) String() string { return "null" }

// Array is an ordered sequence of objects.
type Array []Object

func (Array) isObject() {}
func (a Array) String() string {
	s := "["
	for i, o := range a {
		if i > 0 {
			s += " "
		}
		s += o.String()
	}
	return s + "]"
}

// Dict maps a name to an object. Assignment is last-write-wins, which
// is simply Go map-assignment semantics.
type Dict map[Name]Object

func (Dict) isObject() {}
func (d Dict) String() string {
	s := "<<"
	for k, v := range d {
		s += " " + string(k) + " " + v.String()
	}
	return s + " >>"
}

// Keyword is an operator/keyword token's spelling (e.g. "re", "Do",
// "BI"). It is not part of the Object tree - it is what the scanner
// returns for the Keyword token kind - but is declared here so parser
// and content packages share one type for it.
type Keyword string

// Stream pairs an inline image's dictionary with its (possibly still
// filter-encoded) raw payload. The returned Stream exclusively owns
// both; there is nothing else referencing the payload buffer.
type Stream struct {
	Dict    Dict
	Content []byte
}
