// Package main provides the uniconnect binary: a command-line shell over
// the campus community core. The shell owns the checks the core leaves to
// callers (post existence, duplicate applications, role gating) and
// renders the collections.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uniconnect/uniconnect/internal/bootstrap"
	"github.com/uniconnect/uniconnect/internal/seed"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "uniconnect",
		Short:         "Campus community application",
		Long:          "UniConnect is a local-first campus community application:\nevent posts, applications, borrowing, marketplace, lost and found,\nhelp requests, emergency alerts and a notice board.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "uniconnect.yaml", "path to the config file")

	cmd.AddCommand(
		signupCmd(&configPath),
		loginCmd(&configPath),
		logoutCmd(&configPath),
		whoamiCmd(&configPath),
		profileCmd(&configPath),
		postCmd(&configPath),
		applyCmd(&configPath),
		applicationCmd(&configPath),
		borrowCmd(&configPath),
		sellCmd(&configPath),
		lostFoundCmd(&configPath),
		helpdeskCmd(&configPath),
		emergencyCmd(&configPath),
		noticesCmd(&configPath),
		seedCmd(&configPath),
	)
	return cmd
}

// withApp opens the application for one command invocation and closes the
// store afterwards.
func withApp(configPath *string, fn func(app *bootstrap.App) error) error {
	app, err := bootstrap.New(*configPath)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func seedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo accounts and starter records in an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				return seed.CreateDemoData(app.Repos, app.Logger)
			})
		},
	}
}
