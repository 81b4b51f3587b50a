package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// loadLoopSamples decodes the WAV at path and returns stereo-averaged samples at sampleRate.
func loadLoopSamples(sampleRate int, path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading music %q: %w", path, err)
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading decoded %q: %w", path, err)
	}
	samples := decodeStereoI16ToFloat(decoded)
	if len(samples) == 0 {
		return nil, fmt.Errorf("wav %q has no audio data", path)
	}
	return samples, nil
}

// decodeStereoI16ToFloat folds little-endian 16-bit stereo frames to mono
// floats in [-1, 1).
func decodeStereoI16ToFloat(pcm []byte) []float32 {
	frameCount := len(pcm) / 4
	if frameCount == 0 {
		return nil
	}
	samples := make([]float32, frameCount)
	for i := 0; i < frameCount; i++ {
		offset := i * 4
		left := int16(binary.LittleEndian.Uint16(pcm[offset : offset+2]))
		right := int16(binary.LittleEndian.Uint16(pcm[offset+2 : offset+4]))
		samples[i] = (float32(left) + float32(right)) * (0.5 / 32768.0)
	}
	return samples
}

// musicLoop replays decoded samples forever.
type musicLoop struct {
	samples []float32
	pos     int
}

func newMusicLoop(samples []float32) *musicLoop {
	if len(samples) == 0 {
		return nil
	}
	return &musicLoop{samples: samples}
}

func (m *musicLoop) next() float32 {
	v := m.samples[m.pos]
	m.pos++
	if m.pos >= len(m.samples) {
		m.pos = 0
	}
	return v
}
