package extract

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

// fakeExecutor imitates yt-dlp, ffmpeg and whisper-cli by writing the files they would produce.
type fakeExecutor struct {
	calls        []string
	failOn       string
	transcript   string
	skipDownload bool
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.run(name, args)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.run(name, args)
}

func (f *fakeExecutor) run(name string, args []string) (string, error) {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return "", errors.New(name + " exploded")
	}

	switch name {
	case "yt-dlp":
		if f.skipDownload {
			return "", nil
		}
		out := strings.Replace(argAfter(args, "-o"), "%(ext)s", "m4a", 1)
		return "", os.WriteFile(out, []byte("media"), 0644)
	case "ffmpeg":
		return "", os.WriteFile(args[len(args)-1], []byte("RIFF"), 0644)
	case "whisper-cli":
		return "", os.WriteFile(argAfter(args, "--output-file")+".txt", []byte(f.transcript), 0644)
	}
	return "", nil
}

func argAfter(args []string, flag string) string {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

func newAudioConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{Paths: config.PathsConfig{Temp: t.TempDir()}}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestAudioExtract(t *testing.T) {
	tests := []struct {
		name       string
		exec       *fakeExecutor
		want       string
		wantReason failure.Reason
		wantCalls  []string
	}{
		{
			name:      "success",
			exec:      &fakeExecutor{transcript: "  hello from\n whisper \n"},
			want:      "hello from whisper",
			wantCalls: []string{"yt-dlp", "ffmpeg", "whisper-cli"},
		},
		{
			name:       "download fails",
			exec:       &fakeExecutor{failOn: "yt-dlp"},
			wantReason: failure.DownloadFailed,
			wantCalls:  []string{"yt-dlp"},
		},
		{
			name:       "download produces nothing",
			exec:       &fakeExecutor{skipDownload: true},
			wantReason: failure.DownloadFailed,
			wantCalls:  []string{"yt-dlp"},
		},
		{
			name:       "conversion fails",
			exec:       &fakeExecutor{failOn: "ffmpeg"},
			wantReason: failure.TranscriptionFailed,
			wantCalls:  []string{"yt-dlp", "ffmpeg"},
		},
		{
			name:       "whisper fails",
			exec:       &fakeExecutor{failOn: "whisper-cli"},
			wantReason: failure.TranscriptionFailed,
			wantCalls:  []string{"yt-dlp", "ffmpeg", "whisper-cli"},
		},
		{
			name:       "blank transcript",
			exec:       &fakeExecutor{transcript: " \n\n"},
			wantReason: failure.TranscriptionFailed,
			wantCalls:  []string{"yt-dlp", "ffmpeg", "whisper-cli"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newAudioConfig(t)
			s := NewAudio(cfg, tt.exec, logger.Nop())

			got, err := s.Extract(context.Background(), input.YouTubeURL("https://youtu.be/abc"))
			if tt.wantReason != failure.Unknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.ReasonOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantCalls, tt.exec.calls)

			entries, err := os.ReadDir(cfg.Paths.Temp)
			require.NoError(t, err)
			assert.Empty(t, entries, "temporary files must be removed")
		})
	}
}

func TestAudioApplies(t *testing.T) {
	s := NewAudio(newAudioConfig(t), &fakeExecutor{}, logger.Nop())
	assert.True(t, s.Applies(input.YouTubeURL("https://youtu.be/abc")))
	assert.False(t, s.Applies(input.Text("text")))
	assert.Equal(t, NameAudio, s.Name())
}
