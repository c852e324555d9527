package tetris

import "sync"

// Input is the per-tick input snapshot. SoftDrop is level-triggered (held); every other field is a
// just-pressed event.
type Input struct {
	Left      bool
	Right     bool
	SoftDrop  bool
	HardDrop  bool
	RotateCW  bool
	RotateCCW bool
	Pause     bool
	Restart   bool
}

// Action names a single Input field.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
	ActionPause
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionHardDrop:
		return "hard-drop"
	case ActionRotateCW:
		return "rotate-cw"
	case ActionRotateCCW:
		return "rotate-ccw"
	case ActionPause:
		return "pause"
	case ActionRestart:
		return "restart"
	default:
		return "none"
	}
}

// With returns a copy of in with the field for a set.
func (in Input) With(a Action) Input {
	switch a {
	case ActionMoveLeft:
		in.Left = true
	case ActionMoveRight:
		in.Right = true
	case ActionSoftDrop:
		in.SoftDrop = true
	case ActionHardDrop:
		in.HardDrop = true
	case ActionRotateCW:
		in.RotateCW = true
	case ActionRotateCCW:
		in.RotateCCW = true
	case ActionPause:
		in.Pause = true
	case ActionRestart:
		in.Restart = true
	}
	return in
}

// Merge returns the union of in and other.
func (in Input) Merge(other Input) Input {
	return Input{
		Left:      in.Left || other.Left,
		Right:     in.Right || other.Right,
		SoftDrop:  in.SoftDrop || other.SoftDrop,
		HardDrop:  in.HardDrop || other.HardDrop,
		RotateCW:  in.RotateCW || other.RotateCW,
		RotateCCW: in.RotateCCW || other.RotateCCW,
		Pause:     in.Pause || other.Pause,
		Restart:   in.Restart || other.Restart,
	}
}

// Any reports whether any field is set.
func (in Input) Any() bool {
	return in != Input{}
}

// InputLatch accumulates actions delivered from an event goroutine until the tick goroutine takes
// them. Only the pending input is guarded; the game itself stays on the tick goroutine.
type InputLatch struct {
	mu      sync.Mutex
	pending Input
}

// Press records a. Repeated presses before the next Take collapse into one.
func (l *InputLatch) Press(a Action) {
	l.mu.Lock()
	l.pending = l.pending.With(a)
	l.mu.Unlock()
}

// Take returns everything pressed since the previous Take and resets the latch.
func (l *InputLatch) Take() Input {
	l.mu.Lock()
	in := l.pending
	l.pending = Input{}
	l.mu.Unlock()
	return in
}
