package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/app/services"
	"github.com/uniconnect/uniconnect/internal/bootstrap"
)

func postCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Event posts on the community feed",
	}
	cmd.AddCommand(postAddCmd(configPath), postListCmd(configPath))
	return cmd
}

func postAddCmd(configPath *string) *cobra.Command {
	var title, description, postType, image string
	var applyEnabled bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Publish a new post",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				post, err := app.Community.AddPost(services.PostInput{
					Title:        title,
					Description:  description,
					Type:         models.PostType(postType),
					ApplyEnabled: applyEnabled,
					Image:        image,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Posted %q (%s).\n", post.Title, post.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&description, "description", "", "post body")
	cmd.Flags().StringVar(&postType, "type", "others", "category: hackathon, freshers, flashmob, placement, internship, topper or others")
	cmd.Flags().BoolVar(&applyEnabled, "apply", false, "accept applications for this post")
	cmd.Flags().StringVar(&image, "image", "", "optional image reference")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func postListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				posts := app.Community.Posts()
				if len(posts) == 0 {
					fmt.Println("No posts yet.")
					return nil
				}
				for _, post := range posts {
					marker := ""
					if post.ApplyEnabled {
						marker = " [applications open]"
					}
					fmt.Printf("%s  %-11s %q by %s (%s)%s\n",
						post.CreatedAt.Format("2006-01-02 15:04"), post.Type, post.Title,
						post.PosterName, post.Role, marker)
					fmt.Printf("    id=%s\n", post.ID)
				}
				return nil
			})
		},
	}
}

func applyCmd(configPath *string) *cobra.Command {
	var year, course, email string

	cmd := &cobra.Command{
		Use:   "apply <post-id>",
		Short: "Apply to a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				postID := args[0]

				// The store does not verify any of this; the shell does.
				actor, ok := app.Sessions.Current()
				if !ok {
					return fmt.Errorf("log in before applying")
				}
				if actor.Role != models.RoleStudent {
					return fmt.Errorf("only students can apply to posts")
				}
				post, found := app.Repos.Posts.FindByID(postID)
				if !found {
					return fmt.Errorf("post %s not found", postID)
				}
				if !post.ApplyEnabled {
					return fmt.Errorf("post %q does not accept applications", post.Title)
				}
				if app.Community.HasApplied(postID, actor.UID) {
					return fmt.Errorf("you already applied to %q", post.Title)
				}

				application, err := app.Community.ApplyToPost(postID, services.ApplicationInput{
					Year:   year,
					Course: course,
					Email:  email,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Applied to %q (application %s, status %s).\n",
					post.Title, application.ID, application.Status)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&year, "year", "", "year of study")
	cmd.Flags().StringVar(&course, "course", "", "course")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func applicationCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "application",
		Short: "Review applications to your posts",
	}
	cmd.AddCommand(
		applicationListCmd(configPath),
		applicationDecideCmd(configPath, "approve", models.ApplicationApproved),
		applicationDecideCmd(configPath, "reject", models.ApplicationRejected),
	)
	return cmd
}

func applicationListCmd(configPath *string) *cobra.Command {
	var postID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				applications := app.Community.Applications()
				shown := 0
				for _, application := range applications {
					if postID != "" && application.PostID != postID {
						continue
					}
					fmt.Printf("%s  %-8s %s (%s, %s) for post %s\n",
						application.AppliedAt.Format("2006-01-02 15:04"), application.Status,
						application.StudentName, application.Year, application.Course, application.PostID)
					fmt.Printf("    id=%s\n", application.ID)
					shown++
				}
				if shown == 0 {
					fmt.Println("No applications.")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&postID, "post", "", "only applications for this post id")
	return cmd
}

func applicationDecideCmd(configPath *string, verb string, status models.ApplicationStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <application-id>",
		Short: verb + " an application to one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				id := args[0]

				// Only the post author decides; the core leaves this to
				// the shell.
				actor, ok := app.Sessions.Current()
				if !ok {
					return fmt.Errorf("log in first")
				}
				var target *models.Application
				for _, application := range app.Community.Applications() {
					if application.ID == id {
						target = &application
						break
					}
				}
				if target == nil {
					return fmt.Errorf("application %s not found", id)
				}
				post, found := app.Repos.Posts.FindByID(target.PostID)
				if !found {
					return fmt.Errorf("post %s for this application no longer exists", target.PostID)
				}
				if post.PostedBy != actor.UID {
					return fmt.Errorf("only the post author can %s applications", verb)
				}

				if err := app.Community.UpdateApplicationStatus(id, status); err != nil {
					return err
				}
				fmt.Printf("Application %s is now %s.\n", id, status)
				return nil
			})
		},
	}
}
