package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// extractAudio converts the downloaded media to 16kHz mono WAV, the input whisper.cpp expects
func (s *audioStrategy) extractAudio(ctx context.Context, mediaPath string) (string, error) {
	audioPath := filepath.Join(filepath.Dir(mediaPath), "audio.wav")

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := s.executor.Execute(ctx, s.ffmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return audioPath, nil
}

// transcribe runs whisper.cpp and returns the plain-text transcript
func (s *audioStrategy) transcribe(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	s.logger.Info(ctx, "Starting transcription with %d threads: %s", s.whisper.Threads, audioPath)

	// -otxt: plain text output, -l: force language (prevents hallucination)
	args := []string{
		"-m", s.whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", s.whisper.Language,
		"-t", strconv.Itoa(s.whisper.Threads),
		"--output-file", outputPrefix,
	}
	if s.whisper.Prompt != "" {
		args = append(args, "--prompt", s.whisper.Prompt)
	}

	if _, err := s.executor.Execute(ctx, s.whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	text := strings.Join(strings.Fields(string(data)), " ")
	if text == "" {
		return "", errors.New("transcript is empty")
	}

	s.logger.Info(ctx, "Transcription completed: %d words", len(strings.Fields(text)))
	return text, nil
}
