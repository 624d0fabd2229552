// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/pcm"
)

func init() {
	register(rankSubprocess, "subprocess", openSubprocess)
}

// SubprocessSink runs a shell command and feeds it raw samples on stdin.
type SubprocessSink struct {
	command string
	format  pcm.Format

	// Stdout and Stderr of the child. They default to the parent's.
	Stdout io.Writer
	Stderr io.Writer

	cmd   *exec.Cmd
	stdin io.WriteCloser
}

var (
	_ audio.Sink     = (*SubprocessSink)(nil)
	_ audio.ByteSink = (*SubprocessSink)(nil)
)

// NewSubprocessSink returns a sink that runs command with sh -c on Start.
func NewSubprocessSink(command string, format pcm.Format) (*SubprocessSink, error) {
	if command == "" {
		return nil, fmt.Errorf("%w: subprocess needs a command", audio.ErrDeviceRequired)
	}

	return &SubprocessSink{
		command: command,
		format:  format,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}, nil
}

func openSubprocess(device string, format pcm.Format) (audio.Sink, error) {
	return NewSubprocessSink(device, format)
}

func (s *SubprocessSink) Start() error {
	cmd := exec.Command("sh", "-c", s.command)
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("subprocess stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %q: %w", s.command, err)
	}

	s.cmd = cmd
	s.stdin = stdin

	log().Debug("subprocess sink started", "command", s.command, "pid", cmd.Process.Pid, "format", s.format)
	return nil
}

// Stop closes the child's stdin and waits for it to exit.
func (s *SubprocessSink) Stop() error {
	if s.cmd == nil {
		return nil
	}

	cerr := s.stdin.Close()
	werr := s.cmd.Wait()
	s.cmd, s.stdin = nil, nil

	if err := errors.Join(cerr, werr); err != nil {
		return fmt.Errorf("stop %q: %w", s.command, err)
	}

	log().Debug("subprocess sink stopped", "command", s.command)
	return nil
}

func (s *SubprocessSink) Write(p audio.Packet, c *pcm.Converter) error {
	return audio.WriteBytes(s, s.format, p, c)
}

func (s *SubprocessSink) WriteBytes(data []byte) error {
	if s.stdin == nil {
		return audio.ErrNotStarted
	}
	if _, err := s.stdin.Write(data); err != nil {
		return fmt.Errorf("subprocess write: %w", err)
	}
	return nil
}
