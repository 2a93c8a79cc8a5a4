package repositories

import "context"

// TargetSpec is the output format a transcoder must produce: a WAV container
// holding signed linear PCM at the given bit depth and sample rate.
type TargetSpec struct {
	SampleRate int
	BitDepth   int
}

// Transcoder converts arbitrary compressed or container audio into a WAV
// container matching the target spec. Implementations may be library-based or
// shell out to an external process; callers bound slow invocations through
// the context.
type Transcoder interface {
	Transcode(ctx context.Context, input []byte, target TargetSpec) ([]byte, error)
}
