package content

import (
	"errors"
	"math"

	"github.com/benkirche/pdfcs/objects"
	"github.com/benkirche/pdfcs/parser"
	"github.com/pdfcpu/pdfcpu/pkg/log"
)

// Stage names the three phases ContentDriver.Continue cycles through
// per call: fetching/positioning on the concatenated buffer, parsing
// one operator's worth of tokens, and (only right after a "W"/"W*"
// clip operator) offering the clip's bounding box to the sink.
type Stage uint8

const (
	StageGetContent Stage = iota
	StageParse
	StageCheckClip
)

// Status reports what happened in one Continue call.
type Status uint8

const (
	StatusReady Status = iota
	StatusToBeContinued
	StatusDone
)

// Pauser is the cooperative-suspension collaborator: NeedPauseNow is
// consulted exactly once per outer iteration of ContentDriver.Continue,
// and a true result suspends the driver with StatusToBeContinued
// before any further content is processed that iteration.
type Pauser interface {
	NeedPauseNow() bool
}

// ContentDriverOptions configures the pause collaborator and whether
// inline image payloads are decoded (vs. left in their encoded form)
// as they are delivered to the sink.
type ContentDriverOptions struct {
	// Pauser, when non-nil, is asked once per outer iteration whether
	// the driver should suspend. A nil Pauser never pauses: Continue
	// runs to completion (StatusDone) in one call.
	Pauser              Pauser
	DecodeInlineImages bool
}

// StreamContentParser is the opaque operator-level collaborator: the
// content-stream core hands it operators and assembled inline images,
// but never interprets operator keywords itself - mapping e.g. "cm" or
// "Do" to graphics-state mutations is entirely the sink's concern.
type StreamContentParser interface {
	HandleOperator(op objects.Keyword, operands []objects.Object) error
	HandleInlineImage(img objects.Stream) error
}

// PageObjectSink additionally receives clip-path notifications, so it
// can simplify a run of clips down to the tightest enclosing one.
type PageObjectSink interface {
	StreamContentParser
	CheckClip(path Rectangle) (keep bool)
}

var errNoContent = errors.New("content: no content streams given")

// ContentDriver is a pausable, incremental state machine over a page's
// (possibly multi-part) content stream: GetContent positions the
// parser on the concatenated buffer, Parse reads and dispatches one
// operator at a time, and CheckClip runs right after each "W"/"W*"
// operator, offering a PageObjectSink the bounding box of the path
// built up to that point.
type ContentDriver struct {
	opts ContentDriverOptions
	p    *parser.Parser
	sink StreamContentParser

	stage Stage
	done  bool

	operands    []objects.Object
	pendingClip bool
	clipEvenOdd bool
	curBBox     Rectangle
	haveBBox    bool
}

// NewContentDriver concatenates streams (per ConcatStreams) and
// prepares a driver over the result, ready for repeated Continue calls.
func NewContentDriver(streams [][]byte, sink StreamContentParser, opts ContentDriverOptions) (*ContentDriver, error) {
	if len(streams) == 0 {
		return nil, errNoContent
	}
	data, err := ConcatStreams(streams)
	if err != nil {
		return nil, err
	}
	return &ContentDriver{
		opts:  opts,
		p:     parser.New(data),
		sink:  sink,
		stage: StageGetContent,
	}, nil
}

// Continue advances the state machine. It returns StatusDone once the
// whole buffer has been consumed, or StatusToBeContinued when the
// Pauser asked to suspend (call Continue again to resume). StatusReady
// is returned only together with the error the sink's
// HandleInlineImage returned.
func (d *ContentDriver) Continue() (Status, error) {
	if d.done {
		return StatusDone, nil
	}

	for {
		if d.opts.Pauser != nil && d.opts.Pauser.NeedPauseNow() {
			return StatusToBeContinued, nil
		}
		switch d.stage {
		case StageGetContent:
			d.stage = StageParse

		case StageParse:
			more, err := d.parseOne()
			if err != nil {
				return StatusReady, err
			}
			if !more {
				d.done = true
				return StatusDone, nil
			}
			if d.pendingClip {
				d.stage = StageCheckClip
			}
			continue

		case StageCheckClip:
			d.runCheckClip()
			d.stage = StageParse
			continue
		}
	}
}

// parseOne reads tokens up to and including the next operator keyword
// (or BI inline image), dispatches it, and reports whether the stream
// has more content after it.
func (d *ContentDriver) parseOne() (more bool, err error) {
	for {
		tok := d.p.NextToken()
		switch tok.Kind {
		case parser.TokEndOfData:
			return false, nil
		case parser.TokOther:
			d.operands = append(d.operands, d.p.LastObject())
			continue
		case parser.TokNumber:
			d.operands = append(d.operands, parser.ParseNumber(tok.Word))
			continue
		case parser.TokName:
			d.operands = append(d.operands, parser.DecodeName(tok.Word))
			continue
		case parser.TokKeyword:
			op := objects.Keyword(tok.Word)
			if op == "BI" {
				img, err := d.p.ReadInlineStream(d.opts.DecodeInlineImages)
				if err != nil {
					log.Parse.Printf("content: inline image: %v\n", err)
				}
				d.operands = d.operands[:0]
				if err := d.sink.HandleInlineImage(img); err != nil {
					return false, err
				}
				return true, nil
			}
			ops := d.operands
			d.operands = nil
			d.dispatch(op, ops)
			return true, nil
		}
	}
}

func (d *ContentDriver) dispatch(op objects.Keyword, operands []objects.Object) {
	d.trackPath(op, operands)
	switch op {
	case "W":
		d.pendingClip, d.clipEvenOdd = true, false
	case "W*":
		d.pendingClip, d.clipEvenOdd = true, true
	}
	if err := d.sink.HandleOperator(op, operands); err != nil {
		log.Parse.Printf("content: operator %q: %v\n", op, err)
	}
}

// trackPath maintains a running bounding box of the current path so a
// pending clip has a Rectangle to offer PageObjectSink.CheckClip. Only
// the operators that contribute simple, axis-aligned geometry (moveto,
// lineto, and the rectangle operator) are tracked; curves extend the
// box by their endpoint only, which is a conservative approximation.
func (d *ContentDriver) trackPath(op objects.Keyword, operands []objects.Object) {
	nums := make([]float64, 0, len(operands))
	for _, o := range operands {
		if n, ok := o.(objects.Number); ok {
			nums = append(nums, float64(n))
		}
	}
	switch op {
	case "m", "l":
		if len(nums) >= 2 {
			d.extendBBox(nums[0], nums[1])
		}
	case "c":
		if len(nums) >= 6 {
			d.extendBBox(nums[4], nums[5])
		}
	case "v", "y":
		if len(nums) >= 4 {
			d.extendBBox(nums[2], nums[3])
		}
	case "re":
		if len(nums) >= 4 {
			x, y, w, h := nums[0], nums[1], nums[2], nums[3]
			d.extendBBox(x, y)
			d.extendBBox(x+w, y+h)
		}
	case "n", "f", "F", "f*", "S", "s", "B", "B*", "b", "b*":
		// path-painting operator: the path ends here, so the next
		// path starts a fresh box.
		d.haveBBox = false
		d.curBBox = Rectangle{}
	}
}

func (d *ContentDriver) extendBBox(x, y float64) {
	if !d.haveBBox {
		d.curBBox = Rectangle{Llx: x, Lly: y, Urx: x, Ury: y}
		d.haveBBox = true
		return
	}
	d.curBBox.Llx = math.Min(d.curBBox.Llx, x)
	d.curBBox.Lly = math.Min(d.curBBox.Lly, y)
	d.curBBox.Urx = math.Max(d.curBBox.Urx, x)
	d.curBBox.Ury = math.Max(d.curBBox.Ury, y)
}

func (d *ContentDriver) runCheckClip() {
	d.pendingClip = false
	if sink, ok := d.sink.(PageObjectSink); ok && d.haveBBox {
		sink.CheckClip(d.curBBox)
	}
	d.haveBBox = false
	d.curBBox = Rectangle{}
}
