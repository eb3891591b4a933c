package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/app/services"
	"github.com/uniconnect/uniconnect/internal/bootstrap"
)

func signupCmd(configPath *string) *cobra.Command {
	var email, password, role string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account with a college email",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				account, err := app.Sessions.Signup(email, password, models.Role(role))
				if err != nil {
					return err
				}
				fmt.Printf("Signed up as %s (%s). Run 'uniconnect profile' to finish setup.\n",
					account.Email, account.Role)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "college email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().StringVar(&role, "role", "student", "role: student or faculty")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func loginCmd(configPath *string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open a session for a registered account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				account, err := app.Sessions.Login(email, password)
				if err != nil {
					return err
				}
				fmt.Printf("Logged in as %s.\n", account.Email)
				if !account.ProfileComplete {
					fmt.Println("Profile setup is still pending; run 'uniconnect profile'.")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "college email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				if err := app.Sessions.Logout(); err != nil {
					return err
				}
				fmt.Println("Logged out.")
				return nil
			})
		},
	}
}

func whoamiCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				account, ok := app.Sessions.Current()
				if !ok {
					fmt.Println("Not logged in.")
					return nil
				}
				fmt.Printf("%s <%s> - %s", account.Name, account.Email, account.Role)
				if account.Year != nil && *account.Year != "" {
					fmt.Printf(", %s", *account.Year)
				}
				fmt.Println()
				if account.College != "" {
					fmt.Printf("%s, %s (%s)\n", account.College, account.Department, account.Branch)
				}
				if !account.ProfileComplete {
					fmt.Println("Profile setup pending.")
				}
				return nil
			})
		},
	}
}

func profileCmd(configPath *string) *cobra.Command {
	var name, college, department, branch, year string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Finish profile setup (one-time; marks the profile complete)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				update := services.ProfileUpdate{}
				if cmd.Flags().Changed("name") {
					update.Name = &name
				}
				if cmd.Flags().Changed("college") {
					update.College = &college
				}
				if cmd.Flags().Changed("department") {
					update.Department = &department
				}
				if cmd.Flags().Changed("branch") {
					update.Branch = &branch
				}
				if cmd.Flags().Changed("year") {
					update.Year = &year
				}
				account, err := app.Sessions.UpdateProfile(update)
				if err != nil {
					return err
				}
				fmt.Printf("Profile saved for %s.\n", account.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&college, "college", "", "college name")
	cmd.Flags().StringVar(&department, "department", "", "department")
	cmd.Flags().StringVar(&branch, "branch", "", "branch")
	cmd.Flags().StringVar(&year, "year", "", "year of study (students)")
	return cmd
}
