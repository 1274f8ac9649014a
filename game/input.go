package game

import (
	"context"
	"errors"
	"time"
)

// Pull is one sample of the slingshot gesture. DX/DY is the drag from the
// slingshot rest position; Active is true while the drag is held.
type Pull struct {
	DX, DY float64
	Active bool
}

// PullSignal is implemented by input collaborators (mouse, touch, hand
// tracking). Sample may block until a frame is available; Released reports
// whether the drag ended since the previous sample.
type PullSignal interface {
	Sample(ctx context.Context) (Pull, error)
	Released() bool
}

// FrameClock is a monotonic time source used to gate the minimum aim duration.
type FrameClock interface {
	Now() time.Time
}

// SystemClock reads the process's monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// InputError means the input collaborator could not deliver a sample. The
// tick that hit it skips physics; it is never fatal.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return "input sample unavailable: " + e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }

// ErrNoLevels is returned by New when given an empty level list.
var ErrNoLevels = errors.New("no levels to play")

// sample asks the signal for this tick's pull. A nil signal yields an idle pull.
func sample(ctx context.Context, signal PullSignal) (Pull, bool, error) {
	if err := ctx.Err(); err != nil {
		return Pull{}, false, &InputError{Err: err}
	}
	if signal == nil {
		return Pull{}, false, nil
	}

	p, err := signal.Sample(ctx)
	if err != nil {
		var ie *InputError
		if errors.As(err, &ie) {
			return Pull{}, false, err
		}
		return Pull{}, false, &InputError{Err: err}
	}
	return p, signal.Released(), nil
}
