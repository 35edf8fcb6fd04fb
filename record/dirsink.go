// Package record turns the frames a sprig.Driver produces into files and
// streams: numbered PNG sequences, ffmpeg videos and MQTT topics.
package record

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/sprig"
)

// DefaultPattern names frames so a lexical sort matches frame order.
const DefaultPattern = "frame_%06d.png"

// DirSinkConfig configures a DirSink.
type DirSinkConfig struct {
	// Dir is created if missing. Defaults to "frames".
	Dir string
	// Pattern is a fmt pattern taking the frame id. Defaults to DefaultPattern.
	Pattern string
	// Workers bounds concurrent PNG encodes. Defaults to GOMAXPROCS.
	Workers int
}

// DirSink writes every frame as a PNG file in a directory. Encoding runs on a
// bounded worker pool; SaveFrame only blocks when every worker is busy.
// Frames must not be modified after they are handed over.
type DirSink struct {
	dir     string
	pattern string
	g       *errgroup.Group
	ctx     context.Context
	written atomic.Int64
}

var _ sprig.Sink = (*DirSink)(nil)

// NewDirSink creates the output directory and returns a sink writing into it.
// Cancelling ctx stops accepting frames.
func NewDirSink(ctx context.Context, cfg DirSinkConfig) (*DirSink, error) {
	if cfg.Dir == "" {
		cfg.Dir = "frames"
	}
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("frame dir: %w", err)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	return &DirSink{dir: cfg.Dir, pattern: cfg.Pattern, g: g, ctx: gctx}, nil
}

// Dir returns the output directory.
func (s *DirSink) Dir() string {
	return s.dir
}

// Path returns the file a frame id is written to.
func (s *DirSink) Path(id int) string {
	return filepath.Join(s.dir, fmt.Sprintf(s.pattern, id))
}

// SaveFrame implements sprig.Sink. It reports the first failed write of an
// earlier frame, if any.
func (s *DirSink) SaveFrame(img image.Image, id int) error {
	if err := context.Cause(s.ctx); err != nil {
		return err
	}
	path := s.Path(id)
	s.g.Go(func() error {
		if err := writePNG(path, img); err != nil {
			return err
		}
		s.written.Add(1)
		return nil
	})
	return nil
}

// Written returns how many frames have been written so far.
func (s *DirSink) Written() int {
	return int(s.written.Load())
}

// Close waits for pending writes and returns the first error.
func (s *DirSink) Close() error {
	return s.g.Wait()
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
