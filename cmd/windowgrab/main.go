// windowgrab - captures and manipulates top-level windows from the command line
package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type options struct {
	list     bool
	title    string
	hwnd     uint64
	out      string
	pdf      string
	render   bool
	x, y     int
	w, h     int
	thumb    int
	topmost  bool
	caption  bool
	minimize bool
	close    bool
	activate bool
	colorKey uint64
}

func main() {
	var opts options
	flag.BoolVar(&opts.list, "list", false, "list visible windows and exit")
	flag.StringVar(&opts.title, "title", "", "target the first window whose title contains this substring")
	flag.Uint64Var(&opts.hwnd, "hwnd", 0, "target a window by handle (overrides -title)")
	flag.StringVar(&opts.out, "out", "", "write the capture to this file (.png or .jpg)")
	flag.StringVar(&opts.pdf, "pdf", "", "write the capture as a single-page PDF to this file")
	flag.BoolVar(&opts.render, "render", false, "capture through the compositor instead of a direct blit")
	flag.IntVar(&opts.x, "x", 0, "capture region left, in client coordinates")
	flag.IntVar(&opts.y, "y", 0, "capture region top, in client coordinates")
	flag.IntVar(&opts.w, "w", 0, "capture region width (0 = full client area)")
	flag.IntVar(&opts.h, "h", 0, "capture region height (0 = full client area)")
	flag.IntVar(&opts.thumb, "thumb", 0, "downscale the capture to this width")
	flag.BoolVar(&opts.topmost, "topmost", false, "keep the target window above all others")
	caption := flag.Bool("caption", true, "keep the target window's title bar")
	flag.BoolVar(&opts.minimize, "minimize", false, "minimize the target window after capture")
	flag.BoolVar(&opts.close, "close", false, "ask the target window to close after capture")
	flag.BoolVar(&opts.activate, "activate", false, "bring the target window to the foreground before capture")
	colorKey := flag.String("colorkey", "", "make this 0xAARRGGBB color click-through transparent")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts.caption = *caption
	if *colorKey != "" {
		var err error
		opts.colorKey, err = parseColor(*colorKey)
		if err != nil {
			slog.Error("bad colorkey", "value", *colorKey, "error", err)
			os.Exit(2)
		}
	}

	if err := run(opts); err != nil {
		slog.Error("windowgrab failed", "error", err)
		os.Exit(1)
	}
}

// parseColor reads an 0xAARRGGBB or AARRGGBB hex color.
func parseColor(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32)
}
