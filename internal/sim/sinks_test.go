package sim

import "github.com/vovakirdan/starfighter/internal/core"

type spriteEvent struct {
	op     string
	handle Handle
	kind   SpriteKind
	pos    core.Point
	frame  int
}

// recordingPresenter logs every call and tracks live handles.
type recordingPresenter struct {
	next   Handle
	live   map[Handle]SpriteKind
	events []spriteEvent
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{live: make(map[Handle]SpriteKind)}
}

func (p *recordingPresenter) Acquire(kind SpriteKind, pos core.Point) Handle {
	p.next++
	p.live[p.next] = kind
	p.events = append(p.events, spriteEvent{op: "acquire", handle: p.next, kind: kind, pos: pos})
	return p.next
}

func (p *recordingPresenter) Reposition(h Handle, pos core.Point) {
	p.events = append(p.events, spriteEvent{op: "reposition", handle: h, pos: pos})
}

func (p *recordingPresenter) SetFrame(h Handle, frame int) {
	p.events = append(p.events, spriteEvent{op: "frame", handle: h, frame: frame})
}

func (p *recordingPresenter) Release(h Handle) {
	delete(p.live, h)
	p.events = append(p.events, spriteEvent{op: "release", handle: h})
}

func (p *recordingPresenter) count(op string) int {
	n := 0
	for _, e := range p.events {
		if e.op == op {
			n++
		}
	}
	return n
}

type recordingAudio struct {
	played []Effect
}

func (a *recordingAudio) Play(e Effect) {
	a.played = append(a.played, e)
}

type recordingScroller struct {
	calls int
	total core.Point
}

func (s *recordingScroller) Scroll(d core.Point) {
	s.calls++
	s.total = s.total.Add(d)
}
