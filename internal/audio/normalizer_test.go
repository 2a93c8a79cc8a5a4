package audio

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/voxlog/speechtotext/domain/repositories"
)

// fakeTranscoder records whether it was invoked and returns canned output.
type fakeTranscoder struct {
	called bool
	output []byte
	err    error
}

func (f *fakeTranscoder) Transcode(ctx context.Context, input []byte, target repositories.TargetSpec) ([]byte, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func TestSniffContainer(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Container
	}{
		{"wav", append([]byte("RIFF\x00\x00\x00\x00WAVE"), 0), ContainerWAV},
		{"ogg", []byte("OggS\x00\x02"), ContainerOGG},
		{"mp3 with id3 tag", []byte("ID3\x04\x00"), ContainerMP3},
		{"mp3 bare frame sync", []byte{0xFF, 0xFB, 0x90, 0x00}, ContainerMP3},
		{"unknown", []byte("GIF89a"), ContainerUnknown},
		{"empty", nil, ContainerUnknown},
		{"riff but not wave", []byte("RIFF\x00\x00\x00\x00AVI "), ContainerUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SniffContainer(tt.data); got != tt.want {
				t.Errorf("SniffContainer() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizePassesThroughMatchingWAV(t *testing.T) {
	input, err := EncodeWAV(&Waveform{
		SampleRate: Target.SampleRate,
		Channels:   [][]float64{{0.1, -0.2, 0.3}},
	})
	if err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}

	tc := &fakeTranscoder{}
	out, err := NewNormalizer(tc).Normalize(context.Background(), input)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Error("Matching WAV input should pass through byte-identical")
	}
	if tc.called {
		t.Error("Transcoder should not run for input already in the target spec")
	}
}

func TestNormalizeTranscodesMismatchedWAV(t *testing.T) {
	input, err := EncodeWAV(&Waveform{
		SampleRate: 44100,
		Channels:   [][]float64{{0.1, -0.2}},
	})
	if err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}

	want := []byte("transcoded")
	tc := &fakeTranscoder{output: want}
	out, err := NewNormalizer(tc).Normalize(context.Background(), input)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !tc.called {
		t.Error("Expected transcoder to run for a 44.1 kHz WAV")
	}
	if !bytes.Equal(out, want) {
		t.Errorf("Expected transcoder output, got %q", out)
	}
}

func TestNormalizeDelegatesCompressedInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"ogg", []byte("OggS\x00\x02somedata")},
		{"mp3", []byte("ID3\x04\x00somedata")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := &fakeTranscoder{output: []byte("pcm")}
			if _, err := NewNormalizer(tc).Normalize(context.Background(), tt.data); err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if !tc.called {
				t.Error("Expected transcoder to run for compressed input")
			}
		})
	}
}

func TestNormalizeRejectsUnknownContainer(t *testing.T) {
	tc := &fakeTranscoder{}
	_, err := NewNormalizer(tc).Normalize(context.Background(), []byte("definitely not audio"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Normalize() error = %v, want ErrUnsupportedFormat", err)
	}
	if tc.called {
		t.Error("Transcoder should not run for an unrecognized container")
	}
}

func TestNormalizeSurfacesTranscoderFailure(t *testing.T) {
	tc := &fakeTranscoder{err: ErrTranscodeFailure}
	_, err := NewNormalizer(tc).Normalize(context.Background(), []byte("OggS\x00\x02somedata"))
	if !errors.Is(err, ErrTranscodeFailure) {
		t.Errorf("Normalize() error = %v, want ErrTranscodeFailure", err)
	}
}
