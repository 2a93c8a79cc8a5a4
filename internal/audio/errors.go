package audio

import "errors"

// Pipeline failures are surfaced as distinct conditions so the HTTP layer
// can map each to an appropriate response. All of them are terminal for the
// current request.
var (
	// ErrUnsupportedFormat means the input container/codec was not recognized.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrTranscodeFailure means the external transcoder rejected the input
	// or exited with an error.
	ErrTranscodeFailure = errors.New("transcode failure")

	// ErrIOFailure means audio bytes could not be read or written.
	ErrIOFailure = errors.New("audio i/o failure")

	// ErrChannelCountUnsupported means the waveform has a channel count the
	// downmixer defines no policy for (anything other than 1 or 2).
	ErrChannelCountUnsupported = errors.New("unsupported channel count")

	// ErrEncodeFailure means quantizing a waveform back to 16-bit PCM failed.
	ErrEncodeFailure = errors.New("pcm encode failure")
)
