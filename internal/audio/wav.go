package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	wavFormatPCM  = 1
	wavBitDepth   = 16
	sampleScale   = 32768.0
	maxSampleInt  = 32767
	minSampleInt  = -32768
	wavHeaderSize = 44
)

// wavFormat is the decoded "fmt " chunk of a WAV container.
type wavFormat struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// DecodeWAV parses a WAV container holding 16-bit signed linear PCM and
// de-interleaves it into a Waveform. Containers with other codecs or bit
// depths fail with ErrUnsupportedFormat; truncated or malformed chunks fail
// with ErrIOFailure.
func DecodeWAV(data []byte) (*Waveform, error) {
	format, pcm, err := parseWAV(data)
	if err != nil {
		return nil, err
	}
	if format.AudioFormat != wavFormatPCM || format.BitsPerSample != wavBitDepth {
		return nil, fmt.Errorf("%w: want 16-bit PCM, got format %d with %d bits",
			ErrUnsupportedFormat, format.AudioFormat, format.BitsPerSample)
	}
	if format.NumChannels == 0 {
		return nil, fmt.Errorf("%w: zero channels declared", ErrIOFailure)
	}

	channels := int(format.NumChannels)
	frameSize := channels * 2
	frames := len(pcm) / frameSize

	wave := &Waveform{
		SampleRate: int(format.SampleRate),
		Channels:   make([][]float64, channels),
	}
	for c := range wave.Channels {
		wave.Channels[c] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			off := i*frameSize + c*2
			v := int16(binary.LittleEndian.Uint16(pcm[off : off+2]))
			wave.Channels[c][i] = float64(v) / sampleScale
		}
	}
	return wave, nil
}

// EncodeWAV quantizes a Waveform to 16-bit signed PCM, interleaves its
// channels, and wraps the result in a WAV container. Quantization rounds to
// the nearest representable value and clamps at the 16-bit bounds.
func EncodeWAV(w *Waveform) ([]byte, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailure, err)
	}

	channels := len(w.Channels)
	frames := w.NumSamples()
	byteRate := w.SampleRate * channels * wavBitDepth / 8
	blockAlign := channels * wavBitDepth / 8
	dataSize := frames * blockAlign

	var buf bytes.Buffer
	buf.Grow(wavHeaderSize + dataSize)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(wavFormatPCM))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(w.SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(wavBitDepth))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))

	frame := make([]byte, 2)
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			binary.LittleEndian.PutUint16(frame, uint16(quantize(w.Channels[c][i])))
			buf.Write(frame)
		}
	}
	return buf.Bytes(), nil
}

// quantize rounds a float sample to the nearest 16-bit integer, clamping the
// result in case floating-point rounding pushes it past the bounds.
func quantize(s float64) int16 {
	v := int(math.Round(s * sampleScale))
	if v > maxSampleInt {
		v = maxSampleInt
	}
	if v < minSampleInt {
		v = minSampleInt
	}
	return int16(v)
}

// parseWAV walks the RIFF chunk list and returns the fmt chunk and the raw
// data chunk payload.
func parseWAV(data []byte) (*wavFormat, []byte, error) {
	if len(data) < 12 || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return nil, nil, fmt.Errorf("%w: missing RIFF/WAVE header", ErrUnsupportedFormat)
	}

	var format *wavFormat
	var pcm []byte

	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if size < 0 || body+size > len(data) {
			return nil, nil, fmt.Errorf("%w: truncated %q chunk", ErrIOFailure, id)
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return nil, nil, fmt.Errorf("%w: short fmt chunk", ErrIOFailure)
			}
			format = &wavFormat{
				AudioFormat:   binary.LittleEndian.Uint16(data[body : body+2]),
				NumChannels:   binary.LittleEndian.Uint16(data[body+2 : body+4]),
				SampleRate:    binary.LittleEndian.Uint32(data[body+4 : body+8]),
				ByteRate:      binary.LittleEndian.Uint32(data[body+8 : body+12]),
				BlockAlign:    binary.LittleEndian.Uint16(data[body+12 : body+14]),
				BitsPerSample: binary.LittleEndian.Uint16(data[body+14 : body+16]),
			}
		case "data":
			pcm = data[body : body+size]
		}
		// Chunks are word-aligned; odd sizes carry a pad byte.
		pos = body + size + size%2
	}

	if format == nil {
		return nil, nil, fmt.Errorf("%w: no fmt chunk", ErrIOFailure)
	}
	if pcm == nil {
		return nil, nil, fmt.Errorf("%w: no data chunk", ErrIOFailure)
	}
	return format, pcm, nil
}
