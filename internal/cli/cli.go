// Package cli handles command-line parsing and dispatch for codexspec.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/codexspec/internal/commands"
	"github.com/NielsdaWheelz/codexspec/internal/errors"
	"github.com/NielsdaWheelz/codexspec/internal/version"
)

// EnvFactory builds the command context for one invocation.
type EnvFactory func(debug bool) (*commands.Env, error)

// Run parses arguments and dispatches to the appropriate subcommand.
// Returns an error if the command fails; the caller should print the error and exit.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	newEnv := func(debug bool) (*commands.Env, error) {
		return commands.NewEnv(stdin, stdout, stderr, debug)
	}
	return Execute(context.Background(), NewRootCommand(newEnv), args, stdin, stdout, stderr)
}

// Execute runs root with args. Parse errors from cobra become E_USAGE.
func Execute(ctx context.Context, root *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	if _, ok := errors.AsError(err); ok {
		return err
	}
	return errors.Wrap(errors.EUsage, err.Error(), err)
}

// NewRootCommand builds the codexspec command tree.
func NewRootCommand(newEnv EnvFactory) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "codexspec",
		Short:         "CodexSpec - a Spec-Driven Development (SDD) toolkit for Claude Code",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errors.New(errors.EUsage, "no command specified")
		},
	}
	root.SetVersionTemplate("codexspec {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable detailed debug output")

	env := func() (*commands.Env, error) {
		e, err := newEnv(debug)
		if err != nil {
			return nil, errors.Wrap(errors.EInternal, "failed to set up command environment", err)
		}
		return e, nil
	}

	root.AddCommand(initCmd(env, &debug))
	root.AddCommand(configCmd(env))
	root.AddCommand(checkCmd(env))
	root.AddCommand(versionCmd(env))
	return root
}

func initCmd(env func() (*commands.Env, error), debug *bool) *cobra.Command {
	var opts commands.InitOpts

	cmd := &cobra.Command{
		Use:   "init [PROJECT_NAME]",
		Short: "Initialize a new CodexSpec project",
		Long: `Initialize a new CodexSpec project.

Sets up the .codexspec directory structure and installs the slash commands
Claude Code uses for the CodexSpec workflow. Use '.' or --here to initialize
the current directory.`,
		Example: `  codexspec init my-project
  codexspec init my-project --lang zh-CN
  codexspec init . --ai claude
  codexspec init --here --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.Name = args[0]
			}
			opts.Debug = *debug
			return commands.Init(cmd.Context(), e, opts)
		},
	}

	// -h belongs to --here, so help is long-form only.
	cmd.Flags().Bool("help", false, "help for init")
	cmd.Flags().BoolVarP(&opts.Here, "here", "h", false, "initialize the project in the current directory")
	cmd.Flags().StringVarP(&opts.AI, "ai", "a", "claude", "AI assistant to use")
	cmd.Flags().StringVarP(&opts.Lang, "lang", "l", "", "output language for Claude interactions and generated documents (e.g. en, zh-CN, ja)")
	cmd.Flags().StringVar(&opts.CommitLang, "commit-lang", "", "language for commit messages and PR descriptions (default: output language)")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite config.yml and CLAUDE.md, and allow an existing directory")
	cmd.Flags().BoolVar(&opts.NoGit, "no-git", false, "skip git repository initialization")
	return cmd
}

func configCmd(env func() (*commands.Env, error)) *cobra.Command {
	var opts commands.ConfigOpts

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify the project configuration",
		Example: `  codexspec config
  codexspec config --set-lang zh-CN
  codexspec config --set-commit-lang en
  codexspec config --list-langs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env()
			if err != nil {
				return err
			}
			return commands.Config(cmd.Context(), e, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.SetLang, "set-lang", "l", "", "set the output language (e.g. en, zh-CN, ja)")
	cmd.Flags().StringVar(&opts.SetCommitLang, "set-commit-lang", "", "set the commit message language")
	cmd.Flags().BoolVar(&opts.ListLangs, "list-langs", false, "list all supported languages")
	cmd.Flags().BoolVar(&opts.Render, "render", false, "render the configuration as markdown")
	return cmd
}

func checkCmd(env func() (*commands.Env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check for installed tools and dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env()
			if err != nil {
				return err
			}
			return commands.Check(cmd.Context(), e)
		},
	}
}

func versionCmd(env func() (*commands.Env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version and system information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env()
			if err != nil {
				return err
			}
			return commands.Version(e)
		},
	}
}
