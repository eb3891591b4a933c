package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/app/services"
	"github.com/uniconnect/uniconnect/internal/bootstrap"
)

func lostFoundCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lostfound",
		Short: "Lost and found reports",
	}
	cmd.AddCommand(lostFoundAddCmd(configPath), lostFoundFoundCmd(configPath), lostFoundListCmd(configPath))
	return cmd
}

func lostFoundAddCmd(configPath *string) *cobra.Command {
	var item, location, description, status, contact string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Report a lost or found item",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				created, err := app.Community.AddLostFoundItem(services.LostFoundInput{
					Item:         item,
					Location:     location,
					Description:  description,
					Status:       models.LostFoundStatus(status),
					ContactEmail: contact,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Reported %q as %s (%s).\n", created.Item, created.Status, created.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&item, "item", "", "item name")
	cmd.Flags().StringVar(&location, "location", "", "where it was lost or found")
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().StringVar(&status, "status", "lost", "lost or found")
	cmd.Flags().StringVar(&contact, "contact", "", "contact email")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("contact")
	return cmd
}

func lostFoundFoundCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "found <item-id>",
		Short: "Mark a report as found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				if err := app.Community.MarkAsFound(args[0]); err != nil {
					return err
				}
				fmt.Println("Marked as found.")
				return nil
			})
		},
	}
}

func lostFoundListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List lost and found reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				items := app.Community.LostFoundItems()
				if len(items) == 0 {
					fmt.Println("No reports.")
					return nil
				}
				for _, item := range items {
					fmt.Printf("%-6s %q at %s - contact %s\n",
						item.Status, item.Item, item.Location, item.ContactEmail)
					fmt.Printf("    id=%s\n", item.ID)
				}
				return nil
			})
		},
	}
}

func helpdeskCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Community help requests",
	}
	cmd.AddCommand(helpdeskAddCmd(configPath), helpdeskResolveCmd(configPath), helpdeskListCmd(configPath))
	return cmd
}

func helpdeskAddCmd(configPath *string) *cobra.Command {
	var request, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Ask the community for help",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				created, err := app.Community.AddHelpRequest(services.HelpRequestInput{
					Request:  request,
					Category: category,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Help request filed (%s).\n", created.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&request, "request", "", "what you need help with")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	_ = cmd.MarkFlagRequired("request")
	return cmd
}

func helpdeskResolveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <request-id>",
		Short: "Mark a help request as resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				if err := app.Community.ResolveHelpRequest(args[0]); err != nil {
					return err
				}
				fmt.Println("Resolved.")
				return nil
			})
		},
	}
}

func helpdeskListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List help requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				requests := app.Community.HelpRequests()
				if len(requests) == 0 {
					fmt.Println("No help requests.")
					return nil
				}
				for _, request := range requests {
					category := request.Category
					if category == "" {
						category = "general"
					}
					fmt.Printf("%-8s [%s] %s - %s\n",
						request.Status, category, request.Request, request.RequesterName)
					fmt.Printf("    id=%s\n", request.ID)
				}
				return nil
			})
		},
	}
}

func emergencyCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "Emergency alerts (append-only)",
	}
	cmd.AddCommand(emergencyAddCmd(configPath), emergencyListCmd(configPath))
	return cmd
}

func emergencyAddCmd(configPath *string) *cobra.Command {
	var message, location, emergencyType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Report an emergency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				created, err := app.Community.AddEmergency(services.EmergencyInput{
					Message:  message,
					Location: location,
					Type:     models.EmergencyType(emergencyType),
				})
				if err != nil {
					return err
				}
				fmt.Printf("Emergency reported (%s).\n", created.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&message, "message", "", "what happened")
	cmd.Flags().StringVar(&location, "location", "", "where")
	cmd.Flags().StringVar(&emergencyType, "type", "other", "fire, medical, security or other")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func emergencyListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List emergency alerts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				emergencies := app.Community.Emergencies()
				if len(emergencies) == 0 {
					fmt.Println("No emergencies reported.")
					return nil
				}
				for _, emergency := range emergencies {
					fmt.Printf("%s  %-8s %s @ %s - %s\n",
						emergency.CreatedAt.Format("2006-01-02 15:04"), emergency.Type,
						emergency.Message, emergency.Location, emergency.ReporterName)
				}
				return nil
			})
		},
	}
}

func noticesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "notices",
		Short: "Show the notice board (posts and emergencies merged)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				notices := app.Notices.Notices()
				if len(notices) == 0 {
					fmt.Println("The notice board is empty.")
					return nil
				}
				for _, notice := range notices {
					switch notice.Kind {
					case models.NoticePost:
						fmt.Printf("%s  POST       %q by %s\n",
							notice.CreatedAt.Format("2006-01-02 15:04"),
							notice.Post.Title, notice.Post.PosterName)
					case models.NoticeEmergency:
						fmt.Printf("%s  EMERGENCY  %s @ %s\n",
							notice.CreatedAt.Format("2006-01-02 15:04"),
							notice.Emergency.Message, notice.Emergency.Location)
					}
				}
				return nil
			})
		},
	}
}
