package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frizinak/letterbox"
)

func perr(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

type options struct {
	viewport letterbox.Descriptor
	interval time.Duration
	ueberzug string
	window   string
	files    []string
}

func main() {
	var (
		host       string
		ratio      string
		resolution string
		mode       string
		o          options
	)

	flag.StringVar(&host, "host", "tcell", "host to render in: tcell, ueberzug or x")
	flag.StringVar(&ratio, "ratio", "16:9", "target aspect ratio as W:H")
	flag.StringVar(&resolution, "resolution", "", "target resolution as WxH, reduced to its ratio, overrides -ratio")
	flag.StringVar(&mode, "mode", "keep", "scaling mode: keep, keep_width, keep_height or scale")
	flag.StringVar(&o.ueberzug, "b", "", "ueberzug binary")
	flag.StringVar(&o.window, "window", os.Getenv("WINDOWID"), "X window id for -host x")
	flag.DurationVar(&o.interval, "interval", time.Millisecond*100, "update interval")
	flag.Parse()
	o.files = flag.Args()

	m, err := letterbox.ParseMode(mode)
	if err != nil {
		perr(err)
		os.Exit(1)
	}

	spec := ratio
	if resolution != "" {
		spec = resolution
	}
	o.viewport, err = letterbox.ParseDescriptor(spec, m)
	if err != nil {
		perr(err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	switch host {
	case "tcell":
		err = runTcell(o, sig)
	case "ueberzug":
		err = runUeberzug(o, sig)
	case "x":
		err = runX(o, sig)
	default:
		err = fmt.Errorf("unknown host '%s'", host)
	}

	if err != nil {
		perr(err)
		os.Exit(1)
	}
}

var errNoFiles = errors.New("no files given")
