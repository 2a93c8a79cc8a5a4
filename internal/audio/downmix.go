package audio

import "fmt"

// Downmix reduces a waveform to a single channel. Mono input is returned
// unchanged. Stereo input produces a new buffer whose sample i is the
// arithmetic mean of the two channels at i; since both inputs are bounded in
// [-1.0, 1.0] the mean is always in range, so no clamping happens here. The
// input is never mutated.
//
// Channel counts other than 1 or 2 fail with ErrChannelCountUnsupported:
// averaging more channels equal-weight attenuates speech, and no policy for
// that case is defined.
func Downmix(w *Waveform) (*Waveform, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid waveform: %w", err)
	}

	switch len(w.Channels) {
	case 1:
		return w, nil
	case 2:
		left, right := w.Channels[0], w.Channels[1]
		mono := make([]float64, len(left))
		for i := range mono {
			mono[i] = (left[i] + right[i]) / 2
		}
		return &Waveform{
			SampleRate: w.SampleRate,
			Channels:   [][]float64{mono},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d channels", ErrChannelCountUnsupported, len(w.Channels))
	}
}
