package main

// Pointer gestures: while the primary button is held with a modifier, drag
// movement edits the transform fields of every Active entry. The edits write
// straight through the string-backed fields, so an unparsable field is left
// alone until the user fixes it by hand.

const (
	// accelGrowth compounds per sampled frame while the button stays down,
	// so a sustained drag speeds up exponentially with time held.
	accelGrowth = 1.03
	scaleStep   = 0.01  // fraction of the current scale per frame
	offsetStep  = 0.001 // fraction of the viewport span per frame
)

// FrameInput is one sampled batch of pointer and modifier state.
type FrameInput struct {
	PrimaryPressed bool // primary button went down this frame
	PrimaryDown    bool // primary button is held
	DX, DY         float64
	FDown          bool // scale modifier
	DDown          bool // y-offset modifier
	GDown          bool // x-offset modifier
}

// ApplyFrameInput advances the acceleration value and applies the recognized
// gestures to all Active entries. It reports whether the plot's native drag
// panning must be suppressed this frame so gestures don't fight with it.
func (s *Session) ApplyFrameInput(in FrameInput) bool {
	if in.PrimaryPressed {
		s.Acceleration = 1.0
	}
	if in.PrimaryDown && s.Acceleration != 0 {
		s.Acceleration *= accelGrowth
	}
	acc := s.Acceleration
	if acc == 0 {
		acc = 1.0
	}

	f := in.FDown && in.PrimaryDown
	d := in.DDown && in.PrimaryDown
	g := in.GDown && in.PrimaryDown

	// Scale along y: dragging down grows the scale.
	if f && !d && in.DY != 0 {
		for _, e := range s.Entries() {
			if !e.IsActive() {
				continue
			}
			if v, err := e.Scale.Parse(); err == nil {
				e.Scale.Set(v - sign(in.DY)*v*scaleStep*acc)
			}
		}
	}
	// Offset along y, relative to the viewport's y span.
	if d && !f && in.DY != 0 {
		span := s.PlotDims.YSpan()
		for _, e := range s.Entries() {
			if !e.IsActive() {
				continue
			}
			if v, err := e.Offset.Parse(); err == nil {
				e.Offset.Set(v - sign(in.DY)*span*offsetStep*acc)
			}
		}
	}
	// Offset along x, relative to the viewport's x span.
	if g && in.DX != 0 {
		span := s.PlotDims.XSpan()
		for _, e := range s.Entries() {
			if !e.IsActive() {
				continue
			}
			if v, err := e.XOffset.Parse(); err == nil {
				e.XOffset.Set(v + sign(in.DX)*span*offsetStep*acc)
			}
		}
	}
	return f || d || g
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
