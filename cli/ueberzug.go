package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

var ErrClosed = errors.New("ueberzug agent closed")

// Commander sends commands to an image placement backend.
type Commander interface {
	Command(Command) error
}

// Agent runs a ueberzug layer process and feeds it commands.
type Agent struct {
	sem    sync.Mutex
	c      Config
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	closed bool
}

type Config struct {
	UeberzugBinary string
	OnError        func(error)
}

func New(c Config) *Agent {
	if c.UeberzugBinary == "" {
		c.UeberzugBinary = "ueberzug"
	}
	if c.OnError == nil {
		c.OnError = func(error) {}
	}

	return &Agent{c: c}
}

func (u *Agent) Init() error {
	u.sem.Lock()
	defer u.sem.Unlock()
	return u.init()
}

// Close kills the ueberzug process, further commands return ErrClosed.
func (u *Agent) Close() error {
	u.sem.Lock()
	defer u.sem.Unlock()
	u.closed = true
	return u.kill()
}

func (u *Agent) kill() error {
	if u.cmd == nil {
		return nil
	}

	cmd := u.cmd
	u.cmd = nil
	u.stdin.Close()

	return cmd.Process.Kill()
}

func (u *Agent) Command(cmd Command) error {
	u.sem.Lock()
	defer u.sem.Unlock()
	if err := u.init(); err != nil {
		return err
	}

	return cmd.JSON(u.stdin)
}

func (u *Agent) init() error {
	if u.closed {
		return ErrClosed
	}
	if u.cmd != nil {
		return nil
	}

	cmd := exec.Command(
		u.c.UeberzugBinary, "layer",
		"--parser", "json",
		"--loader", "synchronous",
	)
	cmd.Stdout = io.Discard
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ueberzug: %w", err)
	}

	go u.read(stderr)
	go func() {
		err := cmd.Wait()
		u.sem.Lock()
		if u.cmd == cmd {
			u.cmd = nil
			if err != nil {
				u.c.OnError(fmt.Errorf("ueberzug exited: %w", err))
			}
		}
		u.sem.Unlock()
	}()

	u.cmd, u.stdin = cmd, stdin
	return nil
}

func (u *Agent) read(r io.Reader) {
	dec := json.NewDecoder(r)
	for {
		v := Output{}
		if err := dec.Decode(&v); err != nil {
			if err != io.EOF {
				u.c.OnError(err)
			}
			return
		}
		if err := v.Err(); err != nil {
			u.c.OnError(err)
		}
	}
}
