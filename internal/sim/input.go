package sim

import "math"

// AxisDeadzone is the magnitude below which an analog stick reads as
// centered.
const AxisDeadzone = 0.15

// Input carries one tick's worth of host input, already translated to
// world coordinates. The simulation never talks to a device directly;
// the host fills one of these per frame and hands it to Advance.
//
// All action fields are level-based (held this tick). Edge detection
// for jump buffering and semi-auto triggers happens inside the
// simulation so that hosts stay trivial.
type Input struct {
	Left    bool
	Right   bool
	Jump    bool
	Fire    bool // fires straight along the facing direction
	Confirm bool

	// Pointer aim. While PointerHeld is set, shots are aimed at the
	// pointer instead of straight ahead.
	PointerX    float64
	PointerY    float64
	PointerHeld bool

	// Axis is the horizontal stick position in [-1, 1]. Outside the
	// deadzone it overrides Left/Right.
	Axis float64
}

// MoveX resolves the horizontal movement intent to a value in [-1, 1].
func (in Input) MoveX() float64 {
	if math.Abs(in.Axis) > AxisDeadzone {
		return math.Max(-1, math.Min(1, in.Axis))
	}
	var x float64
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	return x
}

// Trigger reports whether any attack input is active this tick.
func (in Input) Trigger() bool {
	return in.Fire || in.PointerHeld
}

// Aimed reports whether an explicit aim target exists. Without one,
// attacks go straight along the facing direction.
func (in Input) Aimed() bool {
	return in.PointerHeld
}
