// Package ffmpegsource decodes video files into RGB frames by piping them
// through an external ffmpeg process.
package ffmpegsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/user/bwvid/pkg/adapters/mp4probe"
	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

// ErrFFmpegNotFound is returned when no ffmpeg binary can be located.
var ErrFFmpegNotFound = errors.New("ffmpegsource: ffmpeg not found in PATH")

// stderrTail bounds how much ffmpeg output is kept for error messages.
const stderrTail = 4096

// Options configures the source.
type Options struct {
	// FFmpegPath overrides PATH lookup when set.
	FFmpegPath string
}

// Source implements ports.FrameSource on top of ffmpeg.
type Source struct {
	ffmpegPath string
	logger     ports.Logger
}

// New creates an ffmpeg-backed frame source.
func New(opts Options, logger ports.Logger) *Source {
	return &Source{
		ffmpegPath: opts.FFmpegPath,
		logger:     logger.WithComponent("ffmpeg"),
	}
}

// Available reports whether an ffmpeg binary can be found.
func (s *Source) Available() bool {
	_, err := s.findFFmpeg()
	return err == nil
}

// Probe reads stream metadata. MP4 files are inspected directly; other
// containers report their extension as format and an unknown size.
func (s *Source) Probe(ctx context.Context, path string) (ports.SourceInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.SourceInfo{}, fmt.Errorf("open video: %w", err)
	}
	defer f.Close()

	info := ports.SourceInfo{
		Path:   path,
		Kind:   ports.InputVideo,
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}

	if !mp4probe.Sniff(f) {
		s.logger.Debug("Not an MP4 file, natural size unknown")
		return info, nil
	}

	meta, err := mp4probe.Probe(f)
	if err != nil {
		return ports.SourceInfo{}, fmt.Errorf("probe %s: %w", path, err)
	}
	info.Format = "mp4"
	info.Codec = string(meta.Codec)
	info.Width = meta.Width
	info.Height = meta.Height
	info.FrameCount = meta.FrameCount
	info.Duration = meta.Duration
	info.FrameRate = meta.FrameRate()
	return info, nil
}

// Frames runs ffmpeg and yields each decoded frame. A trailing partial frame
// is yielded with its short buffer so callers can detect the size mismatch.
func (s *Source) Frames(ctx context.Context, path string, size ports.Size) iter.Seq2[ports.RGBFrame, error] {
	return func(yield func(ports.RGBFrame, error) bool) {
		out := size
		if out.Width == 0 || out.Height == 0 {
			info, err := s.Probe(ctx, path)
			if err != nil {
				yield(ports.RGBFrame{}, err)
				return
			}
			out = size.Resolve(info.Width, info.Height)
		}
		if out.Width <= 0 || out.Height <= 0 {
			yield(ports.RGBFrame{}, fmt.Errorf("%w: output size of %s is unknown, set width and height", bwimg.ErrUnsupported, path))
			return
		}

		bin, err := s.findFFmpeg()
		if err != nil {
			yield(ports.RGBFrame{}, err)
			return
		}
		s.logger.Debug("Using ffmpeg at %s", bin)

		args := Args(path, out)
		s.logger.Debug("Running ffmpeg: %s", strings.Join(args, " "))
		s.run(ctx, bin, args, out, yield)
	}
}

func (s *Source) run(ctx context.Context, bin string, args []string, out ports.Size, yield func(ports.RGBFrame, error) bool) {
	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr tailBuffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		yield(ports.RGBFrame{}, fmt.Errorf("ffmpeg stdout: %w", err))
		return
	}
	if err := cmd.Start(); err != nil {
		yield(ports.RGBFrame{}, fmt.Errorf("start ffmpeg: %w", err))
		return
	}

	stopped := false
	defer func() {
		if stopped && cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		// Wait is called on every path so the process is reaped
		if err := cmd.Wait(); err != nil && !stopped {
			if ctxErr := ctx.Err(); ctxErr != nil {
				yield(ports.RGBFrame{}, ctxErr)
				return
			}
			yield(ports.RGBFrame{}, fmt.Errorf("ffmpeg failed: %w\nstderr: %s", err, stderr.String()))
		}
	}()

	frameLen := out.Width * out.Height * 3
	for index := 0; ; index++ {
		buf := make([]byte, frameLen)
		n, err := io.ReadFull(stdout, buf)
		switch {
		case err == io.EOF:
			return
		case errors.Is(err, io.ErrUnexpectedEOF):
			rgb := bwimg.NewRGBData(buf[:n], uint32(out.Width), uint32(out.Height))
			if !yield(ports.RGBFrame{Index: index, RGB: rgb}, nil) {
				stopped = true
			}
			return
		case err != nil:
			stopped = true
			yield(ports.RGBFrame{}, fmt.Errorf("read ffmpeg output: %w", err))
			return
		}

		rgb := bwimg.NewRGBData(buf, uint32(out.Width), uint32(out.Height))
		if !yield(ports.RGBFrame{Index: index, RGB: rgb}, nil) {
			stopped = true
			return
		}
	}
}

// Args builds the ffmpeg command line that writes raw RGB24 frames of the
// given size to stdout.
func Args(path string, size ports.Size) []string {
	return []string{
		"-nostdin",
		"-v", "error",
		"-i", path,
		"-an",
		"-vf", "scale=" + strconv.Itoa(size.Width) + ":" + strconv.Itoa(size.Height) + ":flags=bilinear",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-",
	}
}

// findFFmpeg searches for ffmpeg in PATH and common locations.
// A configured path is used exclusively.
func (s *Source) findFFmpeg() (string, error) {
	if s.ffmpegPath != "" {
		if _, err := os.Stat(s.ffmpegPath); err == nil {
			return s.ffmpegPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, s.ffmpegPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}

	path, err := exec.LookPath(execName)
	if err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\ffmpeg.exe`,
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// tailBuffer keeps the last stderrTail bytes written to it.
type tailBuffer struct {
	buf bytes.Buffer
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	t.buf.Write(p)
	if extra := t.buf.Len() - stderrTail; extra > 0 {
		t.buf.Next(extra)
	}
	return n, nil
}

func (t *tailBuffer) String() string {
	return strings.TrimSpace(t.buf.String())
}

var _ ports.FrameSource = (*Source)(nil)
