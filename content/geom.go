// Package content implements the incremental page-content driver:
// ContentDriver, PageObjectSink, and the StreamContentParser interface
// a caller implements to receive operators and inline images. It is a
// genuinely new component - the teacher's own ParseContent
// (parser/content.go) parses a whole buffer to completion in one call -
// built in the teacher's idiom (small exported state struct, sentinel
// errors, github.com/pdfcpu/pdfcpu/pkg/log tracing) and grounded on its
// ParseContent/ParseContentElement loop for how a buffer is fed
// token-by-token to a content interpreter and how BI is special-cased
// ahead of the generic operator path.
package content

// Rectangle is an axis-aligned page-space rectangle, following the
// teacher's model.Rectangle (model/types.go: Llx, Lly, Urx, Ury).
type Rectangle struct {
	Llx, Lly, Urx, Ury float64
}

// Width returns Urx - Llx.
func (r Rectangle) Width() float64 { return r.Urx - r.Llx }

// Height returns Ury - Lly.
func (r Rectangle) Height() float64 { return r.Ury - r.Lly }

// Contains reports whether r fully contains other; shared edges count
// as contained.
func (r Rectangle) Contains(other Rectangle) bool {
	return r.Llx <= other.Llx && r.Lly <= other.Lly && r.Urx >= other.Urx && r.Ury >= other.Ury
}

// Matrix is a PDF 2-D affine transform [a b c d e f], following the
// teacher's model.Matrix (model/functions.go).
type Matrix [6]float64

// Identity is the no-op transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Apply transforms the point (x, y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Multiply composes m and n as m followed by n (n ∘ m).
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}
