package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conn-castle/install-layer/internal/answers"
	"github.com/conn-castle/install-layer/internal/exitcode"
	"github.com/conn-castle/install-layer/internal/logging"
	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/model"
	"github.com/conn-castle/install-layer/internal/preflight"
	"github.com/conn-castle/install-layer/internal/runner"
	"github.com/conn-castle/install-layer/internal/scenario"
	"github.com/conn-castle/install-layer/internal/wizard"
)

// Seams for tests.
var (
	preflightChecksFunc = preflight.Checks
	newWizardUI         = func() wizard.UI { return wizard.NewHuhUI() }
)

// runInstall is the single orchestration pass: preflight, resolution,
// validation, answer persistence, then the supervised engine run. Fatal
// outcomes return an *exitcode.ExitError; the engine's own exit status is
// passed through verbatim.
func runInstall(cmd *cobra.Command, s *scenario.Scenario, set *model.ModuleSet, opts *rootOptions, modelOpts []model.Option) error {
	level := logging.LevelInfo
	if opts.verbose {
		level = logging.LevelDebug
	}
	logging.Init(level, cmd.ErrOrStderr())

	if err := preflight.Run(preflightChecksFunc(s)); err != nil {
		return err
	}

	answerPath := opts.answerFile
	if answerPath == "" {
		answerPath = s.Answers.Path
	}
	if answerPath == "" {
		answerPath = defaultAnswerPath
	}
	logging.Debug(logging.ChannelInstaller, "using answer file %s", answerPath)
	stored, err := answers.Load(answerPath, opts.answerFile != "")
	if err != nil {
		return err
	}

	cli, err := collectCLILayer(cmd, set, opts, modelOpts, stored)
	if err != nil {
		return err
	}
	if err := model.Resolve(set, stored, cli); err != nil {
		return err
	}

	if !model.Validate(set) {
		return exitcode.Fail(exitcode.InvalidValues, messages.ValuesInvalidExit)
	}

	storePath := answerPath
	removeAfter := false
	if opts.dontSaveAnswers {
		storePath, err = answers.TempPath()
		if err != nil {
			return err
		}
		removeAfter = true
	} else if opts.verbose {
		if err := answers.WriteDiffPreview(cmd.OutOrStdout(), set, storePath); err != nil {
			logging.Warn(logging.ChannelInstaller, "answer diff preview failed: %v", err)
		}
	}
	if err := answers.Store(set, storePath); err != nil {
		return err
	}

	if opts.noop {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.NoopNotice)
	}
	expanded, err := answers.ExpandPath(storePath)
	if err != nil {
		return err
	}
	run := &runner.Runner{
		Engine:           s.Engine,
		AnswerFile:       expanded,
		Noop:             opts.noop,
		RemoveAnswerFile: removeAfter,
	}
	status, err := run.Run()
	if err != nil {
		return err
	}
	logging.Info(logging.ChannelInstaller, messages.RunCompletedFmt, status)
	if status != 0 {
		return exitcode.Status(status)
	}
	return nil
}

// collectCLILayer produces the CLI-precedence resolution layer, either from
// parsed flags or from the interactive wizard.
func collectCLILayer(cmd *cobra.Command, set *model.ModuleSet, opts *rootOptions, modelOpts []model.Option, stored model.Layer) (model.Layer, error) {
	if !opts.interactive {
		return overridesFromFlags(cmd.Flags(), set, modelOpts)
	}
	// Prefill current values (defaults and stored answers) so the wizard
	// shows what pressing through would keep.
	if err := model.Resolve(set, stored, model.Layer{}); err != nil {
		return nil, err
	}
	layer, err := wizard.Run(set, newWizardUI())
	if errors.Is(err, huh.ErrUserAborted) {
		return nil, &exitcode.ExitError{Code: 1, Message: messages.WizardCancelled}
	}
	return layer, err
}

// overridesFromFlags walks the option descriptors and collects every flag the
// user actually set. flags.Changed is what makes an explicitly supplied empty
// value win over stored answers and defaults.
func overridesFromFlags(flags *pflag.FlagSet, set *model.ModuleSet, modelOpts []model.Option) (model.Layer, error) {
	layer := model.Layer{}
	ensure := func(module string) model.ModuleSettings {
		settings, ok := layer[module]
		if !ok {
			settings = model.ModuleSettings{Params: map[string]model.Setting{}}
		}
		return settings
	}
	for _, opt := range modelOpts {
		if !flags.Changed(opt.Name) {
			continue
		}
		settings := ensure(opt.Module)
		switch {
		case opt.Param == "":
			enabled := opt.EnableValue
			settings.Enabled = &enabled
		case opt.Kind == model.OptionList:
			values, err := flags.GetStringSlice(opt.Name)
			if err != nil {
				return nil, err
			}
			settings.Params[opt.Param] = model.Setting{Values: values, List: true}
		default:
			value, err := flags.GetString(opt.Name)
			if err != nil {
				return nil, err
			}
			settings.Params[opt.Param] = paramSetting(set, opt, value)
		}
		layer[opt.Module] = settings
	}
	return layer, nil
}

// paramSetting interprets a base-flag value: multi-valued parameters accept
// comma-separated input on the base flag.
func paramSetting(set *model.ModuleSet, opt model.Option, value string) model.Setting {
	if m, ok := set.Module(opt.Module); ok {
		if p, ok := m.Parameter(opt.Param); ok && p.Multivalued {
			return model.Setting{Values: strings.Split(value, ","), List: true}
		}
	}
	return model.Setting{Values: []string{value}}
}
