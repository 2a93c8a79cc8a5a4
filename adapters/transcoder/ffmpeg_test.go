package transcoder

import (
	"testing"
)

func TestPCMCodec(t *testing.T) {
	tests := []struct {
		name     string
		bitDepth int
		want     string
		wantErr  bool
	}{
		{"16 bit", 16, "pcm_s16le", false},
		{"24 bit", 24, "pcm_s24le", false},
		{"unsupported depth", 12, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pcmCodec(tt.bitDepth)
			if (err != nil) != tt.wantErr {
				t.Fatalf("pcmCodec() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("pcmCodec() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTail(t *testing.T) {
	if got := tail("short", 512); got != "short" {
		t.Errorf("tail() = %q, want %q", got, "short")
	}
	if got := tail("abcdef", 3); got != "def" {
		t.Errorf("tail() = %q, want %q", got, "def")
	}
}
