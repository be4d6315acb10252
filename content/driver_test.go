package content

import (
	"testing"

	"github.com/benkirche/pdfcs/objects"
)

type fakeSink struct {
	ops    []objects.Keyword
	images int
	clips  []Rectangle
}

func (f *fakeSink) HandleOperator(op objects.Keyword, operands []objects.Object) error {
	f.ops = append(f.ops, op)
	return nil
}

func (f *fakeSink) HandleInlineImage(img objects.Stream) error {
	f.images++
	return nil
}

func (f *fakeSink) CheckClip(path Rectangle) bool {
	f.clips = append(f.clips, path)
	return true
}

func TestContentDriverRunsToCompletion(t *testing.T) {
	sink := &fakeSink{}
	stream := []byte("q 1 0 0 1 0 0 cm 0 0 100 100 re W n Q")
	d, err := NewContentDriver([][]byte{stream}, sink, ContentDriverOptions{})
	if err != nil {
		t.Fatalf("NewContentDriver: %v", err)
	}
	status, err := d.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if status != StatusDone {
		t.Fatalf("status = %v, want StatusDone", status)
	}
	wantOps := []objects.Keyword{"q", "cm", "re", "W", "n", "Q"}
	if len(sink.ops) != len(wantOps) {
		t.Fatalf("ops = %v, want %v", sink.ops, wantOps)
	}
	for i, op := range wantOps {
		if sink.ops[i] != op {
			t.Errorf("ops[%d] = %q, want %q", i, sink.ops[i], op)
		}
	}
	if len(sink.clips) != 1 {
		t.Fatalf("clips recorded = %d, want 1", len(sink.clips))
	}
	want := Rectangle{Llx: 0, Lly: 0, Urx: 100, Ury: 100}
	if sink.clips[0] != want {
		t.Errorf("clip = %+v, want %+v", sink.clips[0], want)
	}
}

// fakePauser reports pause-now on its pauseAt'th call only, so a test
// can arrange to suspend after a known number of outer iterations and
// later let the driver run to completion.
type fakePauser struct {
	calls   int
	pauseAt int
}

func (f *fakePauser) NeedPauseNow() bool {
	f.calls++
	return f.calls == f.pauseAt
}

func TestContentDriverPause(t *testing.T) {
	sink := &fakeSink{}
	stream := []byte("q Q q Q q Q")
	pauser := &fakePauser{pauseAt: 4}
	d, err := NewContentDriver([][]byte{stream}, sink, ContentDriverOptions{Pauser: pauser})
	if err != nil {
		t.Fatalf("NewContentDriver: %v", err)
	}
	status, err := d.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if status != StatusToBeContinued {
		t.Fatalf("status = %v, want StatusToBeContinued", status)
	}
	if len(sink.ops) != 2 {
		t.Fatalf("ops after first slice = %d, want 2", len(sink.ops))
	}

	pauser.pauseAt = 0 // never pause again
	status, err = d.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if status != StatusDone {
		t.Fatalf("status = %v, want StatusDone", status)
	}
	if len(sink.ops) != 6 {
		t.Fatalf("ops = %d, want 6", len(sink.ops))
	}
}
