package scenario

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-drift/swiper/pkg/swiper"
)

// ErrExpectation is wrapped by every failed expect block.
var ErrExpectation = errors.New("expectation failed")

// StepResult is the observable state after one step.
type StepResult struct {
	Step      int
	Kind      StepKind
	Accepted  bool
	Index     int
	Offset    float64
	Scrolling bool
	// Scrolls counts ScrollTo calls made by the step.
	Scrolls int
	// Elapsed is the simulated time since the scenario started, counting one
	// settle animation per animated scroll.
	Elapsed time.Duration
	Err     error
}

// Result is the outcome of one scenario.
type Result struct {
	Scenario *Scenario
	Width    float64
	Steps    []StepResult
	Index    int
	Offset   float64
	// Elapsed is the simulated duration of the whole scenario.
	Elapsed time.Duration
	Err     error
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return r.Err == nil
}

// Runner replays scenarios against a Pager whose scroller applies offsets
// immediately, as if every animation completed at once. Each animated scroll
// advances a simulated clock by Duration.
type Runner struct {
	// Width is used for scenarios that do not set one.
	Width float64
	// Duration is the settle animation length. Defaults to
	// swiper.DefaultDuration.
	Duration time.Duration
	Logger   *slog.Logger
}

// NewRunner returns a runner with the given default width.
func NewRunner(width float64, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{Width: width, Duration: swiper.DefaultDuration, Logger: logger}
}

// recordingScroller is the pager's Scroller during a replay.
type recordingScroller struct {
	offset   float64
	calls    int
	duration time.Duration
	elapsed  time.Duration
}

func (r *recordingScroller) ScrollTo(offset float64, animated bool) {
	r.offset = offset
	r.calls++
	if animated {
		r.elapsed += r.duration
	}
}

// Run replays s. Steps stop at the first failed expectation; the error is
// also stored on the result.
func (r *Runner) Run(s *Scenario) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	width := s.Width
	if width == 0 {
		width = r.Width
	}
	if width <= 0 {
		return nil, fmt.Errorf("scenario %q: width is required", s.Name)
	}

	duration := r.Duration
	if duration <= 0 {
		duration = swiper.DefaultDuration
	}

	log := r.Logger.With("scenario", s.Name)
	scroller := &recordingScroller{offset: swiper.InitialOffset(s.Index, width), duration: duration}
	pager := swiper.NewPager(width, scroller)
	index := s.Index

	result := &Result{Scenario: s, Width: width}
	fail := func(err error) (*Result, error) {
		result.Index = index
		result.Offset = scroller.offset
		result.Elapsed = scroller.elapsed
		result.Err = err
		return result, err
	}

	log.Debug("start", "width", width, "length", s.Length, "index", index, "offset", scroller.offset)

	for i, step := range s.Steps {
		before := scroller.calls
		accepted := true

		switch step.Kind {
		case StepAdvance:
			accepted = pager.Advance(index, s.Length)
		case StepRetreat:
			accepted = pager.Retreat(index)
		case StepScroll:
			pager.BeginScroll()
			if step.Offset != nil {
				scroller.offset = *step.Offset
			}
		case StepSettle:
			offset := scroller.offset
			switch {
			case step.Stop != "":
				stop, err := swiper.ParseStop(step.Stop)
				if err != nil {
					return fail(err)
				}
				offset = stop.Offset(width)
			case step.Offset != nil:
				offset = *step.Offset
			}
			scroller.offset = offset
			var transition swiper.Transition
			transition, accepted = pager.Settle(offset, index, s.Length)
			if accepted {
				log.Debug("transition", "from", transition.From, "to", transition.To, "direction", transition.Direction)
				index = transition.To
			}
		case StepRecenter:
			pager.Recenter(index)
		default:
			return fail(fmt.Errorf("step %d: unknown kind %q", i+1, step.Kind))
		}

		sr := StepResult{
			Step:      i + 1,
			Kind:      step.Kind,
			Accepted:  accepted,
			Index:     index,
			Offset:    scroller.offset,
			Scrolling: pager.Scrolling(),
			Scrolls:   scroller.calls - before,
			Elapsed:   scroller.elapsed,
		}
		log.Debug("step", "n", sr.Step, "kind", sr.Kind, "accepted", sr.Accepted,
			"index", sr.Index, "offset", sr.Offset, "scrolling", sr.Scrolling)

		if step.Expect != nil {
			if err := check(*step.Expect, sr); err != nil {
				sr.Err = fmt.Errorf("step %d (%s): %w", sr.Step, sr.Kind, err)
				result.Steps = append(result.Steps, sr)
				return fail(sr.Err)
			}
		}
		result.Steps = append(result.Steps, sr)
	}

	result.Index = index
	result.Offset = scroller.offset
	result.Elapsed = scroller.elapsed
	if s.Expect != nil {
		final := StepResult{Accepted: true, Index: index, Offset: scroller.offset, Scrolling: pager.Scrolling()}
		if err := check(*s.Expect, final); err != nil {
			return fail(fmt.Errorf("final state: %w", err))
		}
	}
	log.Debug("done", "index", result.Index, "offset", result.Offset, "elapsed", result.Elapsed)
	return result, nil
}

func check(want Expect, got StepResult) error {
	if want.Index != nil && *want.Index != got.Index {
		return fmt.Errorf("%w: index = %d, want %d", ErrExpectation, got.Index, *want.Index)
	}
	if want.Offset != nil && *want.Offset != got.Offset {
		return fmt.Errorf("%w: offset = %v, want %v", ErrExpectation, got.Offset, *want.Offset)
	}
	if want.Scrolling != nil && *want.Scrolling != got.Scrolling {
		return fmt.Errorf("%w: scrolling = %v, want %v", ErrExpectation, got.Scrolling, *want.Scrolling)
	}
	if want.Accepted != nil && *want.Accepted != got.Accepted {
		return fmt.Errorf("%w: accepted = %v, want %v", ErrExpectation, got.Accepted, *want.Accepted)
	}
	return nil
}
