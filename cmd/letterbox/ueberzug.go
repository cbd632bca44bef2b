package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/containerd/console"
	"github.com/frizinak/letterbox"
	"github.com/frizinak/letterbox/cli"
)

func runUeberzug(o options, sig <-chan os.Signal) error {
	if len(o.files) == 0 {
		return errNoFiles
	}

	agent := cli.New(cli.Config{
		UeberzugBinary: o.ueberzug,
		OnError:        perr,
	})
	if err := agent.Init(); err != nil {
		return err
	}
	defer agent.Close()

	con := console.Current()
	_ = con.SetRaw()
	defer con.Reset()

	t := cli.NewTerminal(con)
	r := letterbox.New(t, letterbox.Config{OnError: perr})

	layer := cli.NewLayer(agent, "main")
	layer.OnError = perr
	if err := r.Spawn("main", letterbox.Bundle{Camera: layer, Viewport: o.viewport}); err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go t.Watch(time.Millisecond*200, r.Push, perr, stop)

	keys := make(chan byte)
	go func() {
		input := bufio.NewReader(os.Stdin)
		for {
			n, err := input.ReadByte()
			if err != nil {
				close(keys)
				return
			}
			keys <- n
		}
	}()

	lix, ix := -1, 0
	show := func() {
		if ix == lix {
			return
		}
		lix = ix
		if err := layer.SetSource(o.files[ix]); err != nil {
			perr(err)
		}
	}
	show()

	tick := time.NewTicker(o.interval)
	defer tick.Stop()
	for {
		select {
		case <-sig:
			return nil
		case n, ok := <-keys:
			if !ok {
				return nil
			}
			switch n {
			case 3, 'q':
				fmt.Print("\033[0E")
				return nil
			case 'j', ' ':
				ix = min(ix+1, len(o.files)-1)
			case 'k':
				ix = max(ix-1, 0)
			}
			show()
		case <-tick.C:
			r.Update()
		}
	}
}
