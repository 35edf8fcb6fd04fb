// Command assemble encodes a directory of numbered frames into a video with
// ffmpeg.
//
//	assemble -dir frames -fps 30 -o videos/run.mp4
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/phanxgames/sprig/record"
)

func main() {
	var cfg record.FFmpegConfig
	flag.StringVar(&cfg.Dir, "dir", "frames", "directory holding the frames")
	flag.StringVar(&cfg.Pattern, "pattern", record.DefaultPattern, "frame file name pattern")
	flag.StringVar(&cfg.Output, "o", "", "output video (default videos/anim_<unix time>.mp4)")
	flag.IntVar(&cfg.FPS, "fps", 30, "frames per second")
	flag.StringVar(&cfg.Codec, "codec", "libx264", "video codec: libx264, h264_nvenc or h264_videotoolbox")
	flag.IntVar(&cfg.Quality, "quality", 18, "CRF, constant quality or bitrate/100 depending on the codec")
	flag.BoolVar(&cfg.Clean, "clean", false, "delete the frames after a successful encode")
	flag.StringVar(&cfg.Binary, "ffmpeg", "ffmpeg", "ffmpeg executable")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Println("Compiling video...")
	out, err := record.Assemble(ctx, cfg)
	if err != nil {
		log.Fatalf("assemble: %v", err)
	}
	log.Printf("Video compiled: %s", out)
}
