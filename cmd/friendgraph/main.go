// Package main provides the friendgraph command, which builds users from a
// YAML roster and prints them ordered by name.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/opd-ai/friendgraph/roster"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "friendgraph"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Build and render users from a roster file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(logLevel, cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(renderCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func renderCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print every user in the roster, sorted by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(file, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Roster file path (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func render(path string, out io.Writer) error {
	r, err := roster.Load(path)
	if err != nil {
		return err
	}

	users, err := r.Build()
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, roster.Render(users))
	return err
}

// configureLogging sends logrus output to w at the named level.
func configureLogging(level string, w io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return nil
}
