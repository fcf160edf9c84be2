// Package session implements the bounded-interval editing state machine for
// trimming a clip. A session is driven by discrete events from a single
// goroutine (the TUI update loop): bound adjustments, the player reporting
// the source duration, preview timers firing, and cut submission completing.
package session

import (
	"context"
	"errors"
	"time"
)

const (
	// DefaultMinGap is the minimum interval width during interactive editing.
	DefaultMinGap = 1.0
	// MinCutLength is the shortest interval the cutting service accepts.
	// Intervals at or below this are rejected before submission.
	MinCutLength = 0.5
	// ProvisionalEnd is the end bound seeded before the duration is known.
	ProvisionalEnd = 10.0
	// FallbackEnd is the default end bound seeded on duration resolution
	// when no end hint was supplied.
	FallbackEnd = 30.0
)

var (
	// ErrNotReady is returned for bound edits before the duration is known
	// or after the session has left the Ready state.
	ErrNotReady = errors.New("session: not ready")
	// ErrIntervalTooShort is returned when confirming an interval at or
	// below the service minimum.
	ErrIntervalTooShort = errors.New("session: interval too short to cut")
	// ErrSubmissionInFlight is returned when closing a session while a cut
	// submission is pending. The session must stay observable until the
	// submission resolves.
	ErrSubmissionInFlight = errors.New("session: cut submission in flight")
)

// State is the lifecycle state of a trim session.
type State int

const (
	// Unseeded means the source duration is not yet known.
	Unseeded State = iota
	// Ready means the interval is valid and editable.
	Ready
	// Submitting means a cut submission is in flight; edits and close are
	// rejected until it resolves.
	Submitting
	// Closed is terminal.
	Closed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unseeded:
		return "unseeded"
	case Ready:
		return "ready"
	case Submitting:
		return "submitting"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Bound identifies which end of the interval an edit targets.
type Bound int

const (
	// StartBound is the interval start.
	StartBound Bound = iota
	// EndBound is the interval end.
	EndBound
)

// Source describes the clip being trimmed. Read-only to the session.
type Source struct {
	// Locator is the playable resource URL.
	Locator string
	// Label is the clip title, passed through to the cut request.
	Label string
}

// CutRequest is the interval handed to the cutting service at confirmation.
type CutRequest struct {
	SourceLocator string
	Start         float64
	End           float64
	Label         string
}

// Player is the playback handle a session drives. Implemented by *mpv.Client.
type Player interface {
	Seek(seconds float64) error
	SetPaused(paused bool) error
}

// Cutter submits a cut request and returns the result locator.
// Implemented by *cutter.Client.
type Cutter interface {
	Cut(ctx context.Context, videoURL string, start, end float64, title string) (string, error)
}

// Session is the mutable editing state for one trim interaction.
// It is not safe for concurrent use; all events must arrive on one goroutine.
type Session struct {
	source   Source
	player   Player
	state    State
	duration float64
	start    float64
	end      float64
	minGap   float64
	endHint  float64
	playing  bool

	// boundsTouched is set on the first user edit; once set, a duration
	// report never re-seeds the end bound over the user's choice.
	boundsTouched bool

	// previewGen scopes the preview auto-stop: any edit, new preview, or
	// close bumps it, invalidating timers started under older generations.
	previewGen int
}

// Option configures a Session.
type Option func(*Session)

// WithMinGap overrides the minimum interval width.
func WithMinGap(gap float64) Option {
	return func(s *Session) {
		if gap > 0 {
			s.minGap = gap
		}
	}
}

// New creates a trim session for the given source. endHint, when positive,
// seeds the end bound once the duration resolves (typically a stored clip's
// end offset). The session starts Unseeded with provisional bounds.
func New(source Source, endHint float64, player Player, opts ...Option) *Session {
	s := &Session{
		source:  source,
		player:  player,
		state:   Unseeded,
		start:   0,
		end:     ProvisionalEnd,
		minGap:  DefaultMinGap,
		endHint: endHint,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Start returns the interval start in seconds.
func (s *Session) Start() float64 { return s.start }

// End returns the interval end in seconds.
func (s *Session) End() float64 { return s.end }

// Duration returns the resolved source duration, 0 while Unseeded.
func (s *Session) Duration() float64 { return s.duration }

// Gap returns the current interval width.
func (s *Session) Gap() float64 { return s.end - s.start }

// Playing reports whether a preview is running.
func (s *Session) Playing() bool { return s.playing }

// Source returns the source descriptor.
func (s *Session) Source() Source { return s.source }

// ResolveDuration transitions Unseeded → Ready once the player reports the
// total duration. The end bound is seeded from the end hint, or min(total, 30)
// without one. Duration is resolved exactly once; later calls are no-ops, so
// a re-fired player event can never clobber in-progress edits.
func (s *Session) ResolveDuration(total float64) {
	if s.state != Unseeded || total <= 0 {
		return
	}
	s.duration = total
	if !s.boundsTouched {
		end := FallbackEnd
		if s.endHint > 0 {
			end = s.endHint
		}
		if end > total {
			end = total
		}
		if end < s.minGap {
			end = s.minGap
		}
		s.end = end
	}
	s.state = Ready
}

// SetStart moves the interval start. The value is clamped into the source;
// pushing the start to within the minimum gap of the end drags the end
// forward so the gap is preserved. Any running preview stops and the player
// seeks to the new bound.
func (s *Session) SetStart(value float64) error {
	if s.state != Ready {
		return ErrNotReady
	}
	if value < 0 {
		value = 0
	}
	if max := s.duration - s.minGap; value > max {
		value = max
		if value < 0 {
			value = 0
		}
	}
	if value > s.end-s.minGap {
		end := value + s.minGap
		if end > s.duration {
			end = s.duration
		}
		s.end = end
	}
	s.start = value
	s.boundsTouched = true
	s.stopPreview()
	_ = s.player.Seek(value)
	return nil
}

// SetEnd moves the interval end, with clamps and gap-preserving drag
// symmetric to SetStart.
func (s *Session) SetEnd(value float64) error {
	if s.state != Ready {
		return ErrNotReady
	}
	if value > s.duration {
		value = s.duration
	}
	if value < s.minGap {
		value = s.minGap
	}
	if value < s.start+s.minGap {
		start := value - s.minGap
		if start < 0 {
			start = 0
		}
		s.start = start
	}
	s.end = value
	s.boundsTouched = true
	s.stopPreview()
	_ = s.player.Seek(value)
	return nil
}

// Step nudges a bound by delta seconds with the same clamps as direct edits.
func (s *Session) Step(bound Bound, delta float64) error {
	switch bound {
	case StartBound:
		return s.SetStart(s.start + delta)
	default:
		return s.SetEnd(s.end + delta)
	}
}

// PreviewCut seeks to the interval start and begins playback. It returns a
// generation token and the wall-clock delay after which the caller should
// invoke PreviewElapsed with that token. Starting a new preview or editing
// a bound supersedes any pending auto-stop.
func (s *Session) PreviewCut() (gen int, stopAfter time.Duration, err error) {
	if s.state != Ready {
		return 0, 0, ErrNotReady
	}
	s.previewGen++
	s.playing = true
	_ = s.player.Seek(s.start)
	_ = s.player.SetPaused(false)
	return s.previewGen, time.Duration((s.end - s.start) * float64(time.Second)), nil
}

// PreviewElapsed stops the preview started under gen. Stale generations
// (superseded by an edit, a newer preview, or close) are ignored.
func (s *Session) PreviewElapsed(gen int) {
	if gen != s.previewGen || !s.playing {
		return
	}
	s.playing = false
	_ = s.player.SetPaused(true)
}

// BeginConfirm validates the interval and transitions Ready → Submitting,
// returning the cut request to submit. The caller must invoke
// CompleteConfirm with the submission outcome.
func (s *Session) BeginConfirm() (CutRequest, error) {
	if s.state != Ready {
		return CutRequest{}, ErrNotReady
	}
	if s.end-s.start <= MinCutLength {
		return CutRequest{}, ErrIntervalTooShort
	}
	s.stopPreview()
	s.state = Submitting
	return CutRequest{
		SourceLocator: s.source.Locator,
		Start:         s.start,
		End:           s.end,
		Label:         s.source.Label,
	}, nil
}

// CompleteConfirm resolves a pending submission: Closed on success, back to
// Ready on failure with the interval preserved so the user can retry.
func (s *Session) CompleteConfirm(err error) {
	if s.state != Submitting {
		return
	}
	if err != nil {
		s.state = Ready
		return
	}
	s.state = Closed
}

// Confirm is a blocking convenience wrapping BeginConfirm, the cut call, and
// CompleteConfirm. It returns the normalized result locator on success.
func (s *Session) Confirm(ctx context.Context, cutter Cutter) (string, error) {
	req, err := s.BeginConfirm()
	if err != nil {
		return "", err
	}
	locator, err := cutter.Cut(ctx, req.SourceLocator, req.Start, req.End, req.Label)
	s.CompleteConfirm(err)
	if err != nil {
		return "", err
	}
	return locator, nil
}

// Close discards the session. Disallowed while Submitting so an in-flight
// submission is never orphaned.
func (s *Session) Close() error {
	if s.state == Submitting {
		return ErrSubmissionInFlight
	}
	s.stopPreview()
	s.state = Closed
	return nil
}

// stopPreview halts playback and invalidates any pending auto-stop timer.
func (s *Session) stopPreview() {
	s.previewGen++
	if s.playing {
		s.playing = false
		_ = s.player.SetPaused(true)
	}
}
