package transcoder

import (
	"context"

	"github.com/voxlog/speechtotext/domain/repositories"
)

// Mock is a canned Transcoder for tests and local development.
type Mock struct {
	// Output is returned for every request.
	Output []byte
	// Err, when set, is returned instead.
	Err error

	// Calls records the inputs seen, in order.
	Calls [][]byte
}

func (m *Mock) Transcode(ctx context.Context, input []byte, target repositories.TargetSpec) ([]byte, error) {
	m.Calls = append(m.Calls, input)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Output, nil
}

var _ repositories.Transcoder = &Mock{}
