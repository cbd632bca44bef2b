package main

import (
	"os"
	"time"

	"github.com/frizinak/letterbox"
	"github.com/frizinak/letterbox/x"
)

func readImage(path string) (x.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return x.ImageRead(f)
}

func runX(o options, sig <-chan os.Signal) error {
	if len(o.files) == 0 {
		return errNoFiles
	}

	var r *letterbox.Reactor
	d, err := x.New(o.window, x.Config{
		OnResize: func(ev letterbox.ResizeEvent) { r.Push(ev) },
		OnError:  perr,
	})
	if err != nil {
		return err
	}
	defer d.Close()
	r = letterbox.New(d, letterbox.Config{OnError: perr})

	img, err := readImage(o.files[0])
	if err != nil {
		return err
	}

	w := d.SubWindow("main")
	w.SetImage(img)
	bundle := letterbox.Bundle{Camera: w, Viewport: o.viewport, Target: d.ID()}
	if err := r.Spawn("main", bundle); err != nil {
		return err
	}
	if err := r.Resize(d.ID()); err != nil {
		return err
	}
	w.Show()

	ex := make(chan error, 1)
	go func() {
		for {
			if err := d.Render(true); err != nil {
				ex <- err
				return
			}
		}
	}()

	tick := time.NewTicker(o.interval)
	defer tick.Stop()
	for {
		select {
		case <-sig:
			return nil
		case err := <-ex:
			return err
		case <-tick.C:
			r.Update()
		}
	}
}
