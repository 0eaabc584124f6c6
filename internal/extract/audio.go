package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/pkg/executor"
)

type audioStrategy struct {
	executor executor.Executor
	ytdlp    config.YTDLPConfig
	ffmpeg   config.FFmpegConfig
	whisper  config.WhisperConfig
	tempRoot string
	logger   logger.Logger
}

// NewAudio creates the strategy that downloads a video's audio and transcribes it locally.
func NewAudio(cfg *config.Config, exec executor.Executor, log logger.Logger) Strategy {
	return &audioStrategy{
		executor: exec,
		ytdlp:    cfg.YTDLP,
		ffmpeg:   cfg.FFmpeg,
		whisper:  cfg.Whisper,
		tempRoot: cfg.Paths.Temp,
		logger:   log,
	}
}

func (s *audioStrategy) Name() string { return NameAudio }

func (s *audioStrategy) Applies(in input.Spec) bool {
	return in.Kind() == input.KindYouTubeURL
}

func (s *audioStrategy) Extract(ctx context.Context, in input.Spec) (string, error) {
	const op = "extract.audio"

	if err := os.MkdirAll(s.tempRoot, 0755); err != nil {
		return "", failure.New(failure.DownloadFailed, op, err, "cannot prepare download directory")
	}
	workDir, err := os.MkdirTemp(s.tempRoot, "audio-*")
	if err != nil {
		return "", failure.New(failure.DownloadFailed, op, err, "cannot prepare download directory")
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			s.logger.Warn(ctx, "Failed to remove %s: %v", workDir, err)
		}
	}()

	mediaPath, err := s.download(ctx, workDir, in.URL())
	if err != nil {
		return "", failure.New(failure.DownloadFailed, op, err, "failed to download audio")
	}

	audioPath, err := s.extractAudio(ctx, mediaPath)
	if err != nil {
		return "", failure.New(failure.TranscriptionFailed, op, err, "failed to prepare audio")
	}

	text, err := s.transcribe(ctx, audioPath)
	if err != nil {
		return "", failure.New(failure.TranscriptionFailed, op, err, "failed to transcribe audio")
	}
	return text, nil
}

// download fetches the best audio stream into dir and returns the produced file.
func (s *audioStrategy) download(ctx context.Context, dir, url string) (string, error) {
	s.logger.Info(ctx, "Downloading audio: %s", url)

	args := []string{
		"--no-playlist",
		"--no-progress",
		"-f", s.ytdlp.Format,
		"-o", filepath.Join(dir, "media.%(ext)s"),
		url,
	}
	if _, err := s.executor.ExecuteInDir(ctx, dir, s.ytdlp.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "media.*"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", errors.New("yt-dlp produced no file")
	}
	return matches[0], nil
}
