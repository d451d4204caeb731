package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/model"
	"github.com/conn-castle/install-layer/internal/scenario"
)

// defaultAnswerPath is used when neither the scenario nor --answer-file
// names an answer file.
const defaultAnswerPath = "/etc/install-layer/answers.yaml"

type rootOptions struct {
	interactive     bool
	verbose         bool
	noop            bool
	dontSaveAnswers bool
	answerFile      string
	scenarioPath    string
}

// newRootCmd builds the root command with its dynamic flag surface generated
// from the scenario's module/parameter model.
func newRootCmd(s *scenario.Scenario) *cobra.Command {
	set := s.BuildModel()
	opts := &rootOptions{}
	modelOpts := model.BuildOptions(set)

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd, s, set, opts, modelOpts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.interactive, "interactive", false, messages.RootFlagInteractive)
	flags.BoolVar(&opts.verbose, "verbose", false, messages.RootFlagVerbose)
	flags.BoolVar(&opts.noop, "noop", false, messages.RootFlagNoop)
	flags.BoolVar(&opts.dontSaveAnswers, "dont-save-answers", false, messages.RootFlagDontSave)
	flags.StringVar(&opts.answerFile, "answer-file", "", messages.RootFlagAnswerFile)
	// The scenario path was already pre-scanned; the flag exists so cobra
	// accepts and documents it.
	flags.StringVar(&opts.scenarioPath, "scenario", scenario.DefaultPath, messages.RootFlagScenario)
	registerModelFlags(flags, modelOpts)

	return cmd
}

// registerModelFlags renders option descriptors onto the flag set.
func registerModelFlags(flags *pflag.FlagSet, opts []model.Option) {
	for _, opt := range opts {
		switch opt.Kind {
		case model.OptionBool:
			flags.Bool(opt.Name, false, opt.Doc)
		case model.OptionValue:
			flags.String(opt.Name, opt.Default, opt.Doc)
		case model.OptionList:
			flags.StringSlice(opt.Name, opt.Defaults, opt.Doc)
		}
	}
}
