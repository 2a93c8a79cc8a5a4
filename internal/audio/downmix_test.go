package audio

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestDownmixMonoIsIdentity(t *testing.T) {
	mono := &Waveform{
		SampleRate: 16000,
		Channels:   [][]float64{{0.1, -0.2, 0.3}},
	}

	out, err := Downmix(mono)
	if err != nil {
		t.Fatalf("Downmix failed: %v", err)
	}
	if out != mono {
		t.Error("Expected mono input to be returned unchanged")
	}

	// Byte-for-byte identical after a re-encode round trip.
	a, err := EncodeWAV(mono)
	if err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}
	b, err := EncodeWAV(out)
	if err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Re-encoded mono output differs from re-encoded input")
	}
}

func TestDownmixStereoAverages(t *testing.T) {
	left := []float64{0.5, -0.25, 1.0, 0.0}
	right := []float64{0.25, 0.75, -1.0, 0.0}
	stereo := &Waveform{
		SampleRate: 44100,
		Channels:   [][]float64{left, right},
	}

	out, err := Downmix(stereo)
	if err != nil {
		t.Fatalf("Downmix failed: %v", err)
	}

	if len(out.Channels) != 1 {
		t.Fatalf("Expected 1 channel, got %d", len(out.Channels))
	}
	if out.SampleRate != stereo.SampleRate {
		t.Errorf("Expected sample rate %d, got %d", stereo.SampleRate, out.SampleRate)
	}
	if out.NumSamples() != len(left) {
		t.Fatalf("Expected %d samples, got %d", len(left), out.NumSamples())
	}

	for i := range left {
		want := (left[i] + right[i]) / 2
		if math.Abs(out.Channels[0][i]-want) > 1e-12 {
			t.Errorf("Sample %d: got %f, want %f", i, out.Channels[0][i], want)
		}
	}
}

func TestDownmixOppositeChannelsCancel(t *testing.T) {
	stereo := &Waveform{
		SampleRate: 16000,
		Channels: [][]float64{
			{1.0, -1.0},
			{-1.0, 1.0},
		},
	}

	out, err := Downmix(stereo)
	if err != nil {
		t.Fatalf("Downmix failed: %v", err)
	}
	for i, s := range out.Channels[0] {
		if s != 0.0 {
			t.Errorf("Sample %d: got %f, want 0.0", i, s)
		}
	}
}

func TestDownmixDoesNotMutateInput(t *testing.T) {
	stereo := &Waveform{
		SampleRate: 16000,
		Channels: [][]float64{
			{0.5, 0.5},
			{-0.5, -0.5},
		},
	}

	if _, err := Downmix(stereo); err != nil {
		t.Fatalf("Downmix failed: %v", err)
	}
	if stereo.Channels[0][0] != 0.5 || stereo.Channels[1][0] != -0.5 {
		t.Error("Downmix mutated its input")
	}
	if len(stereo.Channels) != 2 {
		t.Error("Downmix changed the input channel count")
	}
}

func TestDownmixIsIdempotent(t *testing.T) {
	stereo := &Waveform{
		SampleRate: 16000,
		Channels: [][]float64{
			{0.4, -0.6, 0.8},
			{0.2, 0.6, -0.8},
		},
	}

	once, err := Downmix(stereo)
	if err != nil {
		t.Fatalf("First downmix failed: %v", err)
	}
	twice, err := Downmix(once)
	if err != nil {
		t.Fatalf("Second downmix failed: %v", err)
	}
	if twice != once {
		t.Error("Downmixing an already-mono buffer should be the identity")
	}
}

func TestDownmixRejectsUnsupportedChannelCounts(t *testing.T) {
	tests := []struct {
		name     string
		channels int
	}{
		{"three channels", 3},
		{"six channels", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wave := &Waveform{SampleRate: 16000, Channels: make([][]float64, tt.channels)}
			for i := range wave.Channels {
				wave.Channels[i] = []float64{0.1, 0.2}
			}

			_, err := Downmix(wave)
			if !errors.Is(err, ErrChannelCountUnsupported) {
				t.Errorf("Downmix() error = %v, want ErrChannelCountUnsupported", err)
			}
		})
	}
}
