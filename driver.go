package sprig

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
)

// ErrQuit is returned by Driver.Play when the event source asks to stop.
var ErrQuit = errors.New("sprig: quit requested")

// Events is the window or input layer, polled once per frame.
type Events interface {
	// Poll drains pending events and reports whether the user asked to quit.
	Poll() bool
}

// Pacer blocks the driver loop to hold a target frame rate.
type Pacer interface {
	Wait()
}

// Sink receives rendered frames, for example to write them to disk. Ids
// increase by one per saved frame and never repeat for one Driver.
type Sink interface {
	SaveFrame(img image.Image, id int) error
}

// TickerPacer paces frames with a time.Ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer returns a pacer for fps frames per second. Call Stop when
// done with it.
func NewTickerPacer(fps int) *TickerPacer {
	if fps <= 0 {
		fps = 30
	}
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(fps))}
}

// Wait blocks until the next tick.
func (p *TickerPacer) Wait() {
	<-p.ticker.C
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// Driver runs a scene frame by frame against a push-style backend: poll
// events, tick the scene, save the frame, wait for the next one. Events,
// Pacer and Sink are optional. A Sink needs a Renderer that implements
// Capturer.
type Driver struct {
	Scene    *Scene
	Renderer Renderer
	Events   Events
	Pacer    Pacer
	Sink     Sink

	nextID int
}

// Play runs frames frames. It stops early with ErrQuit when Events reports
// a quit, with ctx.Err() when ctx is done, and with the first update or
// sink error.
func (d *Driver) Play(ctx context.Context, frames int) error {
	if d.Scene == nil || d.Renderer == nil {
		return fmt.Errorf("%w: driver needs a scene and a renderer", ErrDanglingReference)
	}
	var capturer Capturer
	if d.Sink != nil {
		c, ok := d.Renderer.(Capturer)
		if !ok {
			return fmt.Errorf("sprig: renderer %T cannot capture frames for the sink", d.Renderer)
		}
		capturer = c
	}

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.Events != nil && d.Events.Poll() {
			return ErrQuit
		}
		if err := d.Scene.Tick(d.Renderer); err != nil {
			return err
		}
		if capturer != nil {
			img, err := capturer.Capture()
			if err != nil {
				return fmt.Errorf("capture frame %d: %w", d.nextID, err)
			}
			if err := d.Sink.SaveFrame(img, d.nextID); err != nil {
				return fmt.Errorf("save frame %d: %w", d.nextID, err)
			}
			d.nextID++
		}
		if d.Pacer != nil {
			d.Pacer.Wait()
		}
	}
	return nil
}

// Saved returns the number of frames handed to the sink so far.
func (d *Driver) Saved() int {
	return d.nextID
}
