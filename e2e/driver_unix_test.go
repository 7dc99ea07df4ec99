//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// maxCapture bounds how much terminal output a session keeps
const maxCapture = 1 << 20

var binPath = "typeahead_e2e"

const (
	KeyEnter    = "\r"
	KeyCtrlC    = "\x03"
	KeyEsc      = "\x1b"
	KeyTab      = "\t"
	KeyShiftTab = "\x1b[Z"
	KeyDown     = "\x1b[B"
	KeyUp       = "\x1b[A"
	KeyQuit     = "q"
	KeyHelp     = "?"
)

var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// capture keeps the tail of everything the app wrote to its terminal
type capture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Write(p)
	if over := c.buf.Len() - maxCapture; over > 0 {
		c.buf.Next(over)
	}
	return len(p), nil
}

func (c *capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Session drives one typeahead process through a pseudo terminal
type Session struct {
	t      *testing.T
	dir    string // $HOME of the app and home of config files
	pty    *os.File
	cmd    *exec.Cmd
	out    capture
	exited chan error
}

// NewSession creates a session with its own scratch directory
func NewSession(t *testing.T) *Session {
	t.Helper()
	return &Session{t: t, dir: t.TempDir()}
}

// WriteConfig writes a TOML config next to the session and returns its path
func (s *Session) WriteConfig(name, content string) (string, error) {
	path := filepath.Join(s.dir, name)
	return path, os.WriteFile(path, []byte(content), 0644)
}

// Start launches the app on a 120x40 terminal
func (s *Session) Start(args ...string) error {
	args = append([]string{"--log-file", filepath.Join(s.dir, "typeahead.log")}, args...)
	s.cmd = exec.Command(binPath, args...)
	s.cmd.Dir = s.dir
	s.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+s.dir,
		"XDG_CONFIG_HOME="+filepath.Join(s.dir, ".config"),
		"TYPEAHEAD_E2E_TEST=1",
	)

	f, err := pty.StartWithSize(s.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("start %s: %w", binPath, err)
	}
	s.pty = f
	s.exited = make(chan error, 1)

	go func() { _, _ = io.Copy(&s.out, f) }()
	go func() { s.exited <- s.cmd.Wait() }()
	return nil
}

// Send writes raw keys to the terminal
func (s *Session) Send(keys string) error {
	s.t.Helper()
	_, err := s.pty.Write([]byte(keys))
	return err
}

// Type sends text one rune at a time so each rune is its own key event
func (s *Session) Type(text string) error {
	s.t.Helper()
	for _, r := range text {
		if err := s.Send(string(r)); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

func (s *Session) Ready() bool {
	s.t.Helper()
	return s.waitFor("__READY__", 5*time.Second, false)
}

// See waits for text to show up in the output with escape sequences removed
func (s *Session) See(text string) bool {
	s.t.Helper()
	ok := s.waitFor(text, 3*time.Second, true)
	if !ok {
		s.t.Logf("did not see %q; screen tail:\n%s", text, s.tail(2000))
	}
	return ok
}

func (s *Session) Edit() error      { return s.Send(KeyEnter) }
func (s *Session) NextField() error { return s.Send(KeyTab) }
func (s *Session) Down() error      { return s.Send(KeyDown) }
func (s *Session) Commit() error    { return s.Send(KeyEnter) }
func (s *Session) Dismiss() error   { return s.Send(KeyEsc) }
func (s *Session) Quit() error      { return s.Send(KeyQuit) }
func (s *Session) Interrupt() error { return s.Send(KeyCtrlC) }

// WaitExit waits for the process to end on its own
func (s *Session) WaitExit(timeout time.Duration) error {
	s.t.Helper()
	select {
	case err := <-s.exited:
		s.cmd = nil
		// let the reader drain what was written before exit
		time.Sleep(50 * time.Millisecond)
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process did not exit within %s", timeout)
	}
}

// Plain returns the output so far without escape sequences
func (s *Session) Plain() string {
	return ansiRe.ReplaceAllString(s.out.String(), "")
}

func (s *Session) waitFor(text string, timeout time.Duration, plain bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		out := s.out.String()
		if plain {
			out = ansiRe.ReplaceAllString(out, "")
		}
		if strings.Contains(out, text) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (s *Session) tail(n int) string {
	out := s.Plain()
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}

// Close kills the app if it is still running and releases the terminal
func (s *Session) Close() {
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
		<-s.exited
		s.cmd = nil
	}
	if s.pty != nil {
		_ = s.pty.Close()
		s.pty = nil
	}
}
