package main

import (
	"os"
	"time"

	"github.com/frizinak/letterbox"
	"github.com/frizinak/letterbox/term"
	"github.com/gdamore/tcell/v2"
)

func runTcell(o options, sig <-chan os.Signal) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var errs []error
	var r *letterbox.Reactor
	s := term.New(screen, func(ev letterbox.ResizeEvent) { r.Push(ev) })
	r = letterbox.New(s, letterbox.Config{
		OnError: func(err error) { errs = append(errs, err) },
	})

	bg, err := letterbox.FromRatio(letterbox.Dimensions{W: 1, H: 1}, letterbox.Scale)
	if err != nil {
		return err
	}

	backdrop := s.Pane("", tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	backdrop.Fill = '░'
	view := s.Pane(
		o.viewport.String(),
		tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
	)

	for name, b := range map[string]letterbox.Bundle{
		"backdrop": {Camera: backdrop, Viewport: bg, Target: term.ScreenID},
		"view":     {Camera: view, Viewport: o.viewport, Target: term.ScreenID},
	} {
		if err := r.Spawn(name, b); err != nil {
			return err
		}
	}

	if err := r.Resize(term.ScreenID); err != nil {
		return err
	}
	s.Draw()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(o.interval)
	defer tick.Stop()
	for {
		select {
		case <-sig:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if k, ok := ev.(*tcell.EventKey); ok {
				if k.Key() == tcell.KeyEscape || k.Key() == tcell.KeyCtrlC || k.Rune() == 'q' {
					return nil
				}
			}
			s.HandleEvent(ev)
		case <-tick.C:
		}

		if r.Update() != 0 {
			s.Draw()
		}
		if len(errs) != 0 {
			return errs[0]
		}
	}
}
