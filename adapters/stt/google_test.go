package stt_test

import (
	"github.com/voxlog/speechtotext/adapters/stt"
	"github.com/voxlog/speechtotext/domain/repositories"
)

var _ repositories.SpeechToText = &stt.GoogleSpeechToText{}
