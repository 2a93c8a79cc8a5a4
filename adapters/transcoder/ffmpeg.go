package transcoder

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/voxlog/speechtotext/domain/repositories"
	"github.com/voxlog/speechtotext/internal/audio"
)

// FFmpeg is a process-based Transcoder that shells out to the ffmpeg binary.
// It requires file-based I/O, so every call stages its input in a temporary
// directory that is removed on all exit paths.
type FFmpeg struct {
	binary string
	logger *zap.Logger
}

// NewFFmpeg creates a transcoder around the given ffmpeg binary. An empty
// binary name falls back to "ffmpeg" on PATH.
func NewFFmpeg(binary string, logger *zap.Logger) *FFmpeg {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &FFmpeg{binary: binary, logger: logger}
}

// Transcode decodes the input and re-encodes it as a WAV container matching
// the target spec. The source channel count is preserved; channel policy
// belongs to the downmixer.
func (f *FFmpeg) Transcode(ctx context.Context, input []byte, target repositories.TargetSpec) ([]byte, error) {
	dir, err := os.MkdirTemp("", "transcode-")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp dir: %v", audio.ErrIOFailure, err)
	}
	defer os.RemoveAll(dir)

	inPath := filepath.Join(dir, "input")
	outPath := filepath.Join(dir, "output.wav")

	if err := os.WriteFile(inPath, input, 0o600); err != nil {
		return nil, fmt.Errorf("%w: write input: %v", audio.ErrIOFailure, err)
	}

	codec, err := pcmCodec(target.BitDepth)
	if err != nil {
		return nil, err
	}

	// ffmpeg -y -i input -acodec pcm_s16le -ar 16000 -f wav output.wav
	cmd := exec.CommandContext(ctx, f.binary,
		"-y", "-i", inPath,
		"-acodec", codec,
		"-ar", fmt.Sprint(target.SampleRate),
		"-f", "wav",
		outPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		f.logger.Warn("ffmpeg exited with error",
			zap.Error(err),
			zap.String("stderr", tail(stderr.String(), 512)))
		return nil, fmt.Errorf("%w: %v", audio.ErrTranscodeFailure, err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read output: %v", audio.ErrIOFailure, err)
	}
	return out, nil
}

// pcmCodec maps a bit depth to the ffmpeg codec name for little-endian
// signed PCM.
func pcmCodec(bitDepth int) (string, error) {
	switch bitDepth {
	case 16:
		return "pcm_s16le", nil
	case 24:
		return "pcm_s24le", nil
	default:
		return "", fmt.Errorf("%w: no pcm codec for %d-bit depth", audio.ErrTranscodeFailure, bitDepth)
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

var _ repositories.Transcoder = &FFmpeg{}
