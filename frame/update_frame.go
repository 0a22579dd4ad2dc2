package frame

import "time"

// UpdateFrame carries the timing of one loop iteration to every system.
type UpdateFrame struct {
	// Timestamp is the monotonic time of this frame, measured from an
	// arbitrary origin chosen by the caller.
	Timestamp time.Duration
	// DeltaTime is the time since the previous frame, zero on the first.
	DeltaTime time.Duration
	Commands  *Commands

	halt bool
}

func newUpdateFrame(now, dt time.Duration) *UpdateFrame {
	return &UpdateFrame{
		Timestamp: now,
		DeltaTime: dt,
		Commands:  newCommands(),
	}
}

// Halt stops the loop after this frame. Remaining systems still run and
// deferred commands are still flushed.
func (f *UpdateFrame) Halt() {
	f.halt = true
}
