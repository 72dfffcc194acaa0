// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pkgpublish CLI. Run without
// arguments it converts README.md to reStructuredText and uploads a source
// distribution to the package index.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pkgpublish/internal/execx"
	"github.com/pdiddy/pkgpublish/internal/logline"
	"github.com/pdiddy/pkgpublish/internal/publish"
	"github.com/pdiddy/pkgpublish/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries what the subcommands share once flags and config are resolved.
type app struct {
	exec   execx.Executor
	stderr io.Writer
	cfg    types.PublishConfig
	log    *logline.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pkgpublish",
		Short: "Convert README.md to reStructuredText and publish to PyPI",
		Long: `pkgpublish runs two steps in order and stops at the first failure:

  Convert        pandoc --from=markdown --to=rst --output=README.rst README.md
  Publishing..   python setup.py sdist upload -r pypi

Credentials for the upload come from the packaging tool's own configuration.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := publish.NewRunner(a.cfg, a.log, a.exec)
			if err != nil {
				return err
			}
			r.DryRun, _ = cmd.Flags().GetBool("dry-run")
			r.Out = cmd.OutOrStdout()
			return r.Run(context.Background())
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: ./pkgpublish.yaml or ~/.config/pkgpublish/config.yaml)")
	root.PersistentFlags().Bool("no-color", false, "disable coloured output (also honours NO_COLOR)")
	root.Flags().Bool("dry-run", false, "announce each step and print its command without running it")
	root.PersistentFlags().String("repository", "", "package index alias passed to the upload (default \"pypi\")")

	root.AddCommand(newPlanCmd(a), newVersionCmd())
	return root
}

// setup resolves configuration and the logger for cmd.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, a.stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logline.New(cmd.OutOrStdout(), colorEnabled(cmd))
	return nil
}

// loadConfig layers defaults, an optional config file, PKGPUBLISH_* environment
// variables and flags into a PublishConfig.
func loadConfig(cmd *cobra.Command, stderr io.Writer) (types.PublishConfig, error) {
	v := viper.New()
	setDefaults(v, types.DefaultPublishConfig())

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("pkgpublish")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pkgpublish"))
		}
	}

	v.SetEnvPrefix("PKGPUBLISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.PublishConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	if f := cmd.Flags().Lookup("repository"); f != nil {
		if err := v.BindPFlag("packager.repository", f); err != nil {
			return types.PublishConfig{}, fmt.Errorf("binding --repository: %w", err)
		}
	}

	var cfg types.PublishConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return types.PublishConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d types.PublishConfig) {
	v.SetDefault("converter.bin", d.Converter.Bin)
	v.SetDefault("converter.from", d.Converter.From)
	v.SetDefault("converter.to", d.Converter.To)
	v.SetDefault("converter.input", d.Converter.Input)
	v.SetDefault("converter.output", d.Converter.Output)
	v.SetDefault("packager.bin", d.Packager.Bin)
	v.SetDefault("packager.script", d.Packager.Script)
	v.SetDefault("packager.repository", d.Packager.Repository)
}

func colorEnabled(cmd *cobra.Command) bool {
	if off, _ := cmd.Root().PersistentFlags().GetBool("no-color"); off {
		return false
	}
	return os.Getenv("NO_COLOR") == ""
}

// execute runs root and returns the process exit code. Any error is printed
// as the red abort message on root's output.
func execute(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logline.New(root.OutOrStdout(), colorEnabled(root)).Abort(publish.Reason(err))
		return publish.ExitFailure
	}
	return publish.ExitSuccess
}

func main() {
	a := &app{exec: execx.NewOSExecutor(), stderr: os.Stderr}
	os.Exit(execute(newRootCmd(a), os.Args[1:]))
}
