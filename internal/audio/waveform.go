package audio

import "fmt"

// Waveform is an in-memory linear PCM signal. Samples are held as float64 in
// [-1.0, 1.0] while in flight and quantized back to 16-bit signed integers on
// encode. All channels must have the same sample count.
type Waveform struct {
	SampleRate int
	Channels   [][]float64
}

// NumSamples returns the per-channel sample count.
func (w *Waveform) NumSamples() int {
	if len(w.Channels) == 0 {
		return 0
	}
	return len(w.Channels[0])
}

// Validate checks the waveform invariants: positive sample rate, at least one
// channel, and equal-length channels.
func (w *Waveform) Validate() error {
	if w.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", w.SampleRate)
	}
	if len(w.Channels) == 0 {
		return fmt.Errorf("waveform has no channels")
	}
	n := len(w.Channels[0])
	for i, ch := range w.Channels {
		if len(ch) != n {
			return fmt.Errorf("channel %d has %d samples, expected %d", i, len(ch), n)
		}
	}
	return nil
}
