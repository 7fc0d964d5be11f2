package curvy

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// State is the animation state carried from one frame to the next.
type State struct {
	// Revealed is the number of samples currently drawn.
	Revealed int
	// Last is the timestamp of the previous tick.
	Last time.Duration
	// Delta is the time elapsed between the last two ticks.
	Delta time.Duration
	// Started is false until the first tick.
	Started bool
}

// Advance returns the state after one tick at time now.
// Revealed grows by one per tick until it reaches total.
func (s State) Advance(now time.Duration, total int) State {
	if s.Started {
		s.Delta = now - s.Last
	}
	s.Last = now
	s.Started = true
	if s.Revealed < total {
		s.Revealed++
	}
	return s
}

// Done reports whether all total samples have been revealed.
func (s State) Done(total int) bool {
	return s.Revealed >= total
}

// Animator redraws a Plot once per tick, revealing one more sample each time.
type Animator struct {
	Plot *Plot
	// Update is invoked on every tick with the time elapsed since the previous one.
	// It runs before the redraw and may be nil.
	Update func(dt time.Duration)
	// Status receives a short progress message per frame and may be nil.
	Status StatusFunc
}

// NewAnimator creates an Animator for the plot.
func NewAnimator(p *Plot) *Animator {
	return &Animator{Plot: p}
}

// Frame advances st to time now and redraws the scene on s.
// A panic raised while drawing is recovered and returned as an error,
// so the host can log it and keep ticking. The advanced state is returned
// in every case, except for an Animator without a Plot, which leaves st
// unchanged.
func (a *Animator) Frame(s Surface, st State, now time.Duration) (next State, err error) {
	next = st
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame %d: recovered from panic: %v", next.Revealed, r)
			Logger().Error("frame skipped", "revealed", next.Revealed, "err", err)
		}
	}()

	if a.Plot == nil {
		return st, errors.New("animator has no plot")
	}
	next = st.Advance(now, a.Plot.Len())

	if a.Update != nil {
		a.Update(next.Delta)
	}
	if err = a.Plot.Render(s, next.Revealed); err != nil {
		Logger().Error("frame failed", "revealed", next.Revealed, "err", err)
		return next, err
	}
	a.Status.Report(fmt.Sprintf("%d/%d samples", next.Revealed, a.Plot.Len()))
	Logger().Debug("frame", "revealed", next.Revealed, "dt", next.Delta)
	return next, nil
}
