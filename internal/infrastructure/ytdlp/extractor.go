// Package ytdlp invokes the yt-dlp command-line tool to probe and
// stream-extract audio from video URLs.
package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yourusername/audio-drop-bot/internal/domain/bot/entities"
	boterrors "github.com/yourusername/audio-drop-bot/internal/domain/bot/errors"
)

// maxListedFormats bounds the format listing to keep display compact
const maxListedFormats = 10

// Extractor runs yt-dlp as a child process.
// Implements deps.AudioExtractor.
type Extractor struct {
	path       string
	proxy      string
	cookieFile string
	logger     zerolog.Logger
}

// NewExtractor creates a new yt-dlp backed extractor
func NewExtractor(path, proxy, cookieFile string, logger zerolog.Logger) *Extractor {
	if path == "" {
		path = "yt-dlp"
	}
	return &Extractor{
		path:       path,
		proxy:      proxy,
		cookieFile: cookieFile,
		logger:     logger,
	}
}

// ToolAvailable reports whether the yt-dlp binary can be resolved.
// Used by the health endpoint.
func (e *Extractor) ToolAvailable() bool {
	_, err := exec.LookPath(e.path)
	return err == nil
}

// metadata is the subset of yt-dlp's --dump-json output we consume
type metadata struct {
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
}

// IsAvailable reports whether a metadata probe for the URL succeeds.
// Any probe failure is converted to false by contract.
func (e *Extractor) IsAvailable(ctx context.Context, url string) bool {
	if _, err := e.GetMetadata(ctx, url); err != nil {
		e.logger.Debug().Err(err).Str("url", url).Msg("Availability probe failed")
		return false
	}
	return true
}

// GetMetadata fetches fresh title and duration for the URL
func (e *Extractor) GetMetadata(ctx context.Context, url string) (entities.VideoMetadata, error) {
	cmd := exec.CommandContext(ctx, e.path, e.metadataArgs(url)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			classified := e.classify(stderr.String())
			e.logger.Warn().
				Str("url", url).
				Str("category", string(classified.Category)).
				Str("stderr", truncate(stderr.String(), 500)).
				Msg("Metadata fetch failed")
			return entities.VideoMetadata{}, classified
		}
		return entities.VideoMetadata{}, fmt.Errorf("%w: %s", boterrors.ErrSpawnFailed, err)
	}

	var meta metadata
	if err := json.Unmarshal(stdout.Bytes(), &meta); err != nil {
		e.logger.Error().Err(err).Str("url", url).Msg("Unparseable metadata output")
		return entities.VideoMetadata{}, boterrors.ErrMetadataParse
	}

	title := meta.Title
	if title == "" {
		title = "Unknown"
	}

	return entities.VideoMetadata{
		Title:    title,
		Duration: int(meta.Duration),
	}, nil
}

// ExtractAudio fetches metadata, then spawns yt-dlp with stdout piped
// into the returned AudioFile. The payload flows directly from the
// child process to the consumer and is never buffered in memory.
// A failure after streaming has begun cannot fail the returned stream
// retroactively; the consumer sees it as a truncated read.
func (e *Extractor) ExtractAudio(ctx context.Context, url string, q entities.AudioQuality, c entities.AudioCodec) (*entities.AudioFile, error) {
	meta, err := e.GetMetadata(ctx, url)
	if err != nil {
		return nil, err
	}

	e.logger.Info().
		Str("url", url).
		Str("quality", string(q)).
		Str("codec", string(c)).
		Int("duration", meta.Duration).
		Msg("Starting audio extraction")

	cmd := exec.CommandContext(ctx, e.path, e.extractArgs(url, q, c)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", boterrors.ErrSpawnFailed, err)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s", boterrors.ErrSpawnFailed, err)
	}

	stream := &processStream{
		rc:     stdout,
		cmd:    cmd,
		stderr: &stderr,
		logger: e.logger.With().Str("url", url).Logger(),
	}

	return entities.NewAudioFile(stream, meta.Title, meta.Duration, c), nil
}

// ListFormats lists audio-only entries from the tool's format
// enumeration, truncated to keep downstream display compact
func (e *Extractor) ListFormats(ctx context.Context, url string) ([]entities.AudioFormat, error) {
	cmd := exec.CommandContext(ctx, e.path, e.formatListArgs(url)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, e.classify(stderr.String())
		}
		return nil, fmt.Errorf("%w: %s", boterrors.ErrSpawnFailed, err)
	}

	return parseFormats(stdout.String()), nil
}

// parseFormats extracts audio-only entries from the line-oriented
// format table. Lines mentioning "audio only" and not "video only" are
// candidates; everything else (headers, video rows) is skipped.
func parseFormats(output string) []entities.AudioFormat {
	var formats []entities.AudioFormat

	for _, line := range strings.Split(output, "\n") {
		if len(formats) >= maxListedFormats {
			break
		}
		if !strings.Contains(line, "audio only") || strings.Contains(line, "video only") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		format := entities.AudioFormat{
			ID:      fields[0],
			Ext:     fields[1],
			Quality: "audio only",
		}

		for _, f := range fields[2:] {
			switch {
			case format.Size == "" && (strings.HasSuffix(f, "MiB") || strings.HasSuffix(f, "KiB") || strings.HasSuffix(f, "GiB")):
				format.Size = f
			case format.Bitrate == "" && strings.HasSuffix(f, "k") && len(f) > 1 && isDigits(f[:len(f)-1]):
				format.Bitrate = f
			}
		}

		formats = append(formats, format)
	}

	return formats
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// processStream adapts the child's stdout into an io.ReadCloser that
// reaps the process exactly once. A non-zero exit discovered at EOF is
// surfaced as a read error so the consumer can tell a truncated source
// from a clean end-of-stream.
type processStream struct {
	rc     io.ReadCloser
	cmd    *exec.Cmd
	stderr *bytes.Buffer
	logger zerolog.Logger

	once    sync.Once
	waitErr error
}

func (s *processStream) Read(p []byte) (int, error) {
	n, err := s.rc.Read(p)
	if errors.Is(err, io.EOF) {
		if werr := s.wait(); werr != nil {
			s.logger.Error().
				Err(werr).
				Str("stderr", truncate(s.stderr.String(), 500)).
				Msg("yt-dlp exited with error after streaming began")
			return n, fmt.Errorf("extraction terminated early: %w", werr)
		}
	}
	return n, err
}

// Close releases the pipe and reaps the child. Safe to call after a
// completed read loop or to abort mid-stream.
func (s *processStream) Close() error {
	_ = s.rc.Close()
	s.wait()
	return nil
}

func (s *processStream) wait() error {
	s.once.Do(func() {
		s.waitErr = s.cmd.Wait()
	})
	return s.waitErr
}

// truncate shortens tool diagnostics for log fields
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
