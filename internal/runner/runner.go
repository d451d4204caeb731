// Package runner supervises the configuration management engine: it spawns
// the engine attached to a pseudo-terminal, classifies its streamed output
// into log severities, and captures its exit status for verbatim passthrough.
package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"

	"github.com/conn-castle/install-layer/internal/logging"
	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/scenario"
)

// AnswerFileEnvVar tells the engine where the resolved answers live.
const AnswerFileEnvVar = "IL_ANSWER_FILE"

// State tracks the supervisor's progress through a run.
type State int

const (
	StateNotStarted State = iota
	StateSpawning
	StateStreaming
	StateDraining
	StateTerminated
)

// startPty is a seam for tests.
var startPty = pty.Start

// Runner drives one engine run. It is single-use: once the engine is spawned
// the run proceeds to completion with no cancellation.
type Runner struct {
	Engine     scenario.Engine
	AnswerFile string
	// Noop appends the engine's dry-run flag.
	Noop bool
	// RemoveAnswerFile removes the (temporary) answer file after the run,
	// best effort.
	RemoveAnswerFile bool

	state State
}

// State reports the supervisor state, for observability in tests.
func (r *Runner) State() State {
	return r.state
}

// engineArgs builds the engine invocation: scenario args, then the fixed,
// ordered safety flags, then the manifest. The flag order is part of the
// observable contract with wrapper scripts and stays stable.
func (r *Runner) engineArgs() []string {
	args := append([]string{}, r.Engine.Args...)
	args = append(args,
		"--verbose",
		"--debug",
		"--color=false",
		"--show_diff",
		"--detailed-exitcodes",
	)
	if r.Noop {
		args = append(args, "--noop")
	}
	return append(args, r.Engine.Manifest)
}

// Run executes the engine under a pty and returns its exit status verbatim.
// The pty keeps the engine in line-buffered terminal mode; piping instead
// makes most engines block-buffer and reorder their progress output.
// Any nonzero status (including detailed exit codes such as "2: changes
// applied") is returned untouched for passthrough.
func (r *Runner) Run() (int, error) {
	defer func() {
		r.state = StateTerminated
		if r.RemoveAnswerFile && r.AnswerFile != "" {
			// Best effort; a leftover temp answer file never fails the run.
			_ = os.Remove(r.AnswerFile)
		}
	}()

	r.state = StateSpawning
	args := r.engineArgs()
	logging.Debug(logging.ChannelInstaller, "starting engine: %s %s", r.Engine.Command, strings.Join(args, " "))
	cmd := exec.Command(r.Engine.Command, args...)
	cmd.Env = append(os.Environ(), AnswerFileEnvVar+"="+r.AnswerFile)

	ptmx, err := startPty(cmd)
	if err != nil {
		return 0, fmt.Errorf(messages.RunnerSpawnFailedFmt, r.Engine.Command, err)
	}
	defer func() {
		_ = ptmx.Close()
	}()

	r.state = StateStreaming
	r.stream(ptmx)

	r.state = StateDraining
	return waitStatus(cmd)
}

// stream forwards classified engine output lines to the engine log channel.
// A read error from the pty (EIO once the child exits) is the expected
// end-of-stream signal, not a failure. Lines have no length limit: the engine
// runs with diff output enabled and a single diff line can exceed any fixed
// buffer, and an abandoned pty would block the child forever.
func (r *Runner) stream(ptmx io.Reader) {
	reader := bufio.NewReader(ptmx)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimRight(line, "\r\n")
			level, msg := Classify(line)
			logging.Log(level, logging.ChannelEngine, "%s", msg)
		}
		if err != nil {
			return
		}
	}
}

// waitStatus retrieves the child's real exit status after end-of-stream.
// A child killed by a signal reports no exit code; that counts as a plain
// failure status rather than a passthrough code.
func waitStatus(cmd *exec.Cmd) (int, error) {
	if cmd.Process == nil {
		return 0, errors.New(messages.RunnerNotStarted)
	}
	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, nil
	}
	return 0, err
}
