package audio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/voxlog/speechtotext/domain/repositories"
)

// Container is the sniffed input container format.
type Container string

const (
	ContainerWAV     Container = "wav"
	ContainerOGG     Container = "ogg"
	ContainerMP3     Container = "mp3"
	ContainerUnknown Container = ""
)

// Target is the canonical format the recognition service requires.
var Target = repositories.TargetSpec{
	SampleRate: 16000,
	BitDepth:   16,
}

// Normalizer converts arbitrary supported uploads (WAV, OGG, MP3) into a WAV
// container holding 16-bit signed linear PCM at the target sample rate.
// Compressed codecs are delegated to the injected transcoder; WAV input
// already matching the target is passed through untouched.
type Normalizer struct {
	transcoder repositories.Transcoder
}

// NewNormalizer creates a format normalizer backed by the given transcoder.
func NewNormalizer(transcoder repositories.Transcoder) *Normalizer {
	return &Normalizer{transcoder: transcoder}
}

// Normalize returns the upload as target-spec WAV bytes. Unrecognized
// containers fail with ErrUnsupportedFormat; transcoder errors surface as
// ErrTranscodeFailure or ErrIOFailure.
func (n *Normalizer) Normalize(ctx context.Context, data []byte) ([]byte, error) {
	switch SniffContainer(data) {
	case ContainerWAV:
		if matchesTarget(data) {
			return data, nil
		}
	case ContainerOGG, ContainerMP3:
		// handled below
	default:
		return nil, fmt.Errorf("%w: unrecognized container header", ErrUnsupportedFormat)
	}
	return n.transcoder.Transcode(ctx, data, Target)
}

// SniffContainer inspects the leading bytes for a known container signature.
func SniffContainer(data []byte) Container {
	switch {
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return ContainerWAV
	case len(data) >= 4 && bytes.Equal(data[0:4], []byte("OggS")):
		return ContainerOGG
	case len(data) >= 3 && bytes.Equal(data[0:3], []byte("ID3")):
		return ContainerMP3
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// bare MPEG audio frame sync, no ID3 tag
		return ContainerMP3
	default:
		return ContainerUnknown
	}
}

// matchesTarget reports whether WAV input already carries linear PCM at the
// target bit depth and sample rate, in which case re-encoding is skipped.
func matchesTarget(data []byte) bool {
	format, _, err := parseWAV(data)
	if err != nil {
		return false
	}
	return format.AudioFormat == wavFormatPCM &&
		int(format.BitsPerSample) == Target.BitDepth &&
		int(format.SampleRate) == Target.SampleRate
}
