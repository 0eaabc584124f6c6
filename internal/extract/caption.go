package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/failure"
	"github.com/nguyentantai21042004/summary-flow/internal/input"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

const (
	playerResponseMarker = "ytInitialPlayerResponse = "
	userAgent            = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxWatchPageBytes    = 6 << 20
	maxTimedTextBytes    = 2 << 20
)

type captionStrategy struct {
	client  *http.Client
	baseURL string
	langs   []string
	logger  logger.Logger
}

// NewCaption creates the strategy that reads a video's published caption track.
func NewCaption(cfg config.CaptionsConfig, client *http.Client, log logger.Logger) Strategy {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &captionStrategy{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		langs:   cfg.Languages,
		logger:  log,
	}
}

func (s *captionStrategy) Name() string { return NameCaption }

func (s *captionStrategy) Applies(in input.Spec) bool {
	return in.Kind() == input.KindYouTubeURL
}

func (s *captionStrategy) Extract(ctx context.Context, in input.Spec) (string, error) {
	const op = "extract.caption"

	text, err := s.fetch(ctx, in.URL())
	if err != nil {
		return "", failure.New(failure.NoCaptionsAvailable, op, err, "no captions available")
	}
	return text, nil
}

func (s *captionStrategy) fetch(ctx context.Context, rawURL string) (string, error) {
	videoID, err := input.VideoID(rawURL)
	if err != nil {
		return "", err
	}

	s.logger.Debug(ctx, "Fetching caption tracks for video %s", videoID)

	tracks, err := s.listTracks(ctx, videoID)
	if err != nil {
		return "", err
	}

	track, ok := pickBestTrack(tracks, s.langs)
	if !ok {
		return "", errors.New("all caption tracks require a browser token")
	}

	s.logger.Debug(ctx, "Using %s caption track (%s) for %s", track.LanguageCode, trackKind(track), videoID)

	text, err := s.fetchTimedText(ctx, s.resolveTrackURL(track.BaseURL))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("caption track is empty")
	}
	return text, nil
}

func (s *captionStrategy) listTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	body, err := s.get(ctx, s.baseURL+"/watch?v="+videoID, maxWatchPageBytes)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	idx := strings.Index(string(body), playerResponseMarker)
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	raw := extractJSON(body[idx+len(playerResponseMarker):])
	if raw == nil {
		return nil, errors.New("malformed ytInitialPlayerResponse")
	}

	var resp playerResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	if resp.Captions == nil {
		if resp.PlayabilityStatus != nil && resp.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", resp.PlayabilityStatus.Reason)
		}
		return nil, errors.New("no captions in player response")
	}

	tracks := resp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, errors.New("no caption tracks")
	}
	return tracks, nil
}

func (s *captionStrategy) fetchTimedText(ctx context.Context, trackURL string) (string, error) {
	body, err := s.get(ctx, trackURL, maxTimedTextBytes)
	if err != nil {
		return "", fmt.Errorf("fetch timedtext: %w", err)
	}
	return parseTimedText(body)
}

// resolveTrackURL makes relative track URLs absolute against the configured base.
func (s *captionStrategy) resolveTrackURL(trackURL string) string {
	if strings.HasPrefix(trackURL, "/") {
		return s.baseURL + trackURL
	}
	return trackURL
}

func (s *captionStrategy) get(ctx context.Context, url string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}
