package particles

// Frame is the animation frame cursor handed to emitters: a frame index and
// the fixed time interval per frame.
type Frame struct {
	Index        int
	TimeInterval float64
}

func NewFrame(index int, timeInterval float64) Frame {
	return Frame{Index: index, TimeInterval: timeInterval}
}

func (f Frame) TimeInSeconds() float64 {
	return float64(f.Index) * f.TimeInterval
}

func (f *Frame) Advance() {
	f.Index++
}

func (f *Frame) AdvanceBy(delta int) {
	f.Index += delta
}
