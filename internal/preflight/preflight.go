// Package preflight runs environment sanity checks before any parameter
// resolution happens. The first failing check aborts the run with its
// symbolic outcome.
package preflight

import (
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/install-layer/internal/exitcode"
	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/scenario"
)

// Seams for tests.
var (
	hostnameFn = os.Hostname
	lookPathFn = exec.LookPath
	statFn     = os.Stat
)

// Check is a single named preflight check. Run returns nil on success or an
// *exitcode.ExitError describing why the environment is unusable.
type Check struct {
	Name string
	Run  func() error
}

// Checks builds the ordered check list for a scenario.
func Checks(s *scenario.Scenario) []Check {
	return []Check{
		{Name: "hostname", Run: hostnameCheck},
		{Name: "engine", Run: engineCheck(s.Engine.Command)},
		{Name: "manifest", Run: manifestCheck(s.Engine.Manifest)},
	}
}

// Run executes the checks in order and returns the first failure.
func Run(checks []Check) error {
	for _, c := range checks {
		if err := c.Run(); err != nil {
			return err
		}
	}
	return nil
}

// hostnameCheck requires a dotted FQDN, matching what the engine's fact
// system will report. A bare hostname makes certificate and node matching
// misbehave later, so it fails fast here.
func hostnameCheck() error {
	name, err := hostnameFn()
	if err != nil {
		return exitcode.Fail(exitcode.WrongHostname, messages.PreflightLookupFmt, err)
	}
	trimmed := strings.TrimSuffix(name, ".")
	if !strings.Contains(trimmed, ".") || strings.HasPrefix(trimmed, ".") {
		return exitcode.Fail(exitcode.WrongHostname, messages.PreflightHostnameFmt, name)
	}
	return nil
}

// engineCheck requires the engine binary on PATH.
func engineCheck(command string) func() error {
	return func() error {
		if _, err := lookPathFn(command); err != nil {
			return exitcode.Fail(exitcode.InvalidSystem, messages.PreflightEngineMissingFmt, command)
		}
		return nil
	}
}

// manifestCheck requires the engine entry manifest to exist.
func manifestCheck(manifest string) func() error {
	return func() error {
		if _, err := statFn(manifest); err != nil {
			return exitcode.Fail(exitcode.ManifestError, messages.PreflightManifestMissingFmt, manifest)
		}
		return nil
	}
}
