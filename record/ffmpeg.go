package record

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/phanxgames/sprig"
)

// FFmpegConfig configures video encoding.
type FFmpegConfig struct {
	// Binary is the ffmpeg executable. Defaults to "ffmpeg" on PATH.
	Binary string
	// Dir and Pattern locate the input frames for Assemble. They default to
	// the DirSink defaults.
	Dir     string
	Pattern string
	// Output is the video path. Defaults to videos/anim_<unix time>.mp4.
	Output string
	// FPS defaults to 30.
	FPS int
	// Codec defaults to libx264.
	Codec string
	// Quality is the CRF for libx264 and the constant quality for NVENC.
	// Defaults to 18.
	Quality int
	// Clean removes the frame directory after a successful Assemble.
	Clean bool
}

func (c *FFmpegConfig) defaults() {
	if c.Binary == "" {
		c.Binary = "ffmpeg"
	}
	if c.Dir == "" {
		c.Dir = "frames"
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	if c.Output == "" {
		c.Output = filepath.Join("videos", fmt.Sprintf("anim_%d.mp4", time.Now().Unix()))
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Codec == "" {
		c.Codec = "libx264"
	}
	if c.Quality <= 0 {
		c.Quality = 18
	}
}

// Assemble encodes the numbered frame images in cfg.Dir into cfg.Output and
// returns the output path.
func Assemble(ctx context.Context, cfg FFmpegConfig) (string, error) {
	cfg.defaults()
	matches, err := filepath.Glob(filepath.Join(cfg.Dir, globPattern(cfg.Pattern)))
	if err != nil {
		return "", fmt.Errorf("assemble: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("assemble: no frames in %s", cfg.Dir)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return "", fmt.Errorf("assemble: %w", err)
	}

	cmd := exec.CommandContext(ctx, cfg.Binary, assembleArgs(cfg)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg assemble error: %w, output: %s", err, out)
	}
	if cfg.Clean {
		if err := os.RemoveAll(cfg.Dir); err != nil {
			return cfg.Output, fmt.Errorf("clean frames: %w", err)
		}
	}
	return cfg.Output, nil
}

// assembleArgs builds the ffmpeg command line for an image sequence.
func assembleArgs(cfg FFmpegConfig) []string {
	args := []string{
		"-y",
		"-framerate", strconv.Itoa(cfg.FPS),
		"-i", filepath.Join(cfg.Dir, cfg.Pattern),
	}
	args = append(args, encodeArgs(cfg)...)
	return append(args, cfg.Output)
}

// encodeArgs returns the output codec options shared by Assemble and
// FFmpegSink.
func encodeArgs(cfg FFmpegConfig) []string {
	args := []string{
		"-r", strconv.Itoa(cfg.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", cfg.Codec,
	}
	switch cfg.Codec {
	case "h264_videotoolbox":
		args = append(args, "-b:v", fmt.Sprintf("%dk", cfg.Quality*100))
	case "h264_nvenc":
		args = append(args, "-cq", strconv.Itoa(cfg.Quality))
	default:
		args = append(args, "-crf", strconv.Itoa(cfg.Quality), "-preset", "medium")
	}
	return args
}

// globPattern turns a fmt frame pattern into a filepath.Glob pattern by
// replacing its verb with "*".
func globPattern(pattern string) string {
	out := make([]byte, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			out = append(out, pattern[i])
			continue
		}
		j := i + 1
		for j < len(pattern) && (pattern[j] >= '0' && pattern[j] <= '9') {
			j++
		}
		if j < len(pattern) && pattern[j] == 'd' {
			out = append(out, '*')
			i = j
			continue
		}
		out = append(out, pattern[i])
	}
	return string(out)
}

// FFmpegSink pipes frames straight into an ffmpeg process as raw RGBA,
// skipping the intermediate image files. The process starts with the first
// frame, whose size fixes the video size.
type FFmpegSink struct {
	ctx   context.Context
	cfg   FFmpegConfig
	cmd   *exec.Cmd
	stdin io.WriteCloser
	w, h  int
	buf   *image.RGBA
}

var _ sprig.Sink = (*FFmpegSink)(nil)

// NewFFmpegSink returns a sink encoding into cfg.Output. Dir and Pattern are
// ignored.
func NewFFmpegSink(ctx context.Context, cfg FFmpegConfig) *FFmpegSink {
	cfg.defaults()
	return &FFmpegSink{ctx: ctx, cfg: cfg}
}

// Output returns the video path.
func (s *FFmpegSink) Output() string {
	return s.cfg.Output
}

// SaveFrame implements sprig.Sink. Frame ids are ignored; ffmpeg numbers
// frames by arrival.
func (s *FFmpegSink) SaveFrame(img image.Image, _ int) error {
	b := img.Bounds()
	if s.cmd == nil {
		if err := s.start(b.Dx(), b.Dy()); err != nil {
			return err
		}
	}
	if b.Dx() != s.w || b.Dy() != s.h {
		return fmt.Errorf("frame is %dx%d, video is %dx%d: %w", b.Dx(), b.Dy(), s.w, s.h, sprig.ErrDimensionMismatch)
	}
	if err := s.writeRawRGBA(img); err != nil {
		return fmt.Errorf("write raw error: %w", err)
	}
	return nil
}

func (s *FFmpegSink) start(w, h int) error {
	if err := os.MkdirAll(filepath.Dir(s.cfg.Output), 0o755); err != nil {
		return fmt.Errorf("ffmpeg output: %w", err)
	}
	cmd := exec.CommandContext(s.ctx, s.cfg.Binary, streamArgs(s.cfg, w, h)...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start error: %w", err)
	}
	s.cmd, s.stdin, s.w, s.h = cmd, stdin, w, h
	return nil
}

// streamArgs builds the ffmpeg command line for raw RGBA frames on stdin.
func streamArgs(cfg FFmpegConfig, w, h int) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", w, h),
		"-framerate", strconv.Itoa(cfg.FPS),
		"-i", "-",
	}
	args = append(args, encodeArgs(cfg)...)
	return append(args, cfg.Output)
}

func (s *FFmpegSink) writeRawRGBA(img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min != (image.Point{}) {
		if s.buf == nil {
			s.buf = image.NewRGBA(image.Rect(0, 0, s.w, s.h))
		}
		draw.Draw(s.buf, s.buf.Bounds(), img, bounds.Min, draw.Src)
		rgba = s.buf
	}
	_, err := s.stdin.Write(rgba.Pix)
	return err
}

// Close ends the stream and waits for ffmpeg to finish the file. Closing a
// sink that never received a frame is a no-op.
func (s *FFmpegSink) Close() error {
	if s.cmd == nil {
		return nil
	}
	err := s.stdin.Close()
	if werr := s.cmd.Wait(); werr != nil {
		err = errors.Join(err, fmt.Errorf("ffmpeg wait error: %w", werr))
	}
	return err
}
