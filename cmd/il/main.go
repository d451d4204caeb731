package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conn-castle/install-layer/internal/exitcode"
	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/scenario"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain executes the CLI and performs process termination exactly once.
// Every terminal path produces one outcome: an *exitcode.ExitError carries
// both symbolic failures and engine status passthrough; anything else is a
// generic failure.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	var exitErr *exitcode.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			_, _ = fmt.Fprintln(stdout, exitErr.Message)
		}
		exit(exitErr.Code)
		return
	}
	_, _ = fmt.Fprintln(stderr, err)
	exit(1)
}

// execute loads the scenario, builds the dynamic CLI, and runs it.
// The scenario path must be known before cobra parses anything because the
// flag surface itself is generated from the scenario.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	s, err := scenario.Load(scenarioPathFromArgs(args))
	if err != nil {
		if !wantsHelpOrVersion(args) {
			return err
		}
		// Help and version work without a scenario; only the dynamic flag
		// surface needs one, and it is empty on this path.
		s = &scenario.Scenario{}
	}
	cmd := newRootCmd(s)
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	cmd.SetArgs(args[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// wantsHelpOrVersion pre-scans raw arguments for a help or version request.
func wantsHelpOrVersion(args []string) bool {
	for i, arg := range args {
		if i == 0 {
			continue
		}
		switch arg {
		case "--":
			return false
		case "--help", "-h", "--version":
			return true
		}
	}
	return false
}

// scenarioPathFromArgs pre-scans raw arguments for --scenario before cobra
// runs, falling back to the environment override and then the default path.
func scenarioPathFromArgs(args []string) string {
	for i, arg := range args {
		if i == 0 {
			continue
		}
		if arg == "--" {
			break
		}
		if arg == "--scenario" {
			if i+1 < len(args) {
				return args[i+1]
			}
			break
		}
		if strings.HasPrefix(arg, "--scenario=") {
			return strings.TrimPrefix(arg, "--scenario=")
		}
	}
	if env := strings.TrimSpace(os.Getenv(scenario.EnvVar)); env != "" {
		return env
	}
	return scenario.DefaultPath
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
