package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/app/services"
	"github.com/uniconnect/uniconnect/internal/bootstrap"
)

func borrowCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "borrow",
		Short: "Lend and borrow items",
	}
	cmd.AddCommand(
		borrowAddCmd(configPath),
		borrowTakeCmd(configPath),
		borrowReturnCmd(configPath),
		borrowListCmd(configPath),
	)
	return cmd
}

func borrowAddCmd(configPath *string) *cobra.Command {
	var item, description, from, to string
	var price float64
	var friendOnly bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Offer an item for lending",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				created, err := app.Community.AddBorrowItem(services.BorrowItemInput{
					Item:          item,
					Description:   description,
					Price:         price,
					AvailableFrom: from,
					AvailableTo:   to,
					IsFriendOnly:  friendOnly,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Listed %q for lending (%s).\n", created.Item, created.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&item, "item", "", "item name")
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().Float64Var(&price, "price", 0, "per-day price (ignored for friend-only items)")
	cmd.Flags().StringVar(&from, "from", "", "available from (date)")
	cmd.Flags().StringVar(&to, "to", "", "available to (date)")
	cmd.Flags().BoolVar(&friendOnly, "friend-only", false, "lend free of charge")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func borrowTakeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "take <item-id>",
		Short: "Borrow an available item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				id := args[0]

				// Availability and self-borrowing are shell-side checks.
				actor, ok := app.Sessions.Current()
				if !ok {
					return fmt.Errorf("log in first")
				}
				var target *models.BorrowItem
				for _, item := range app.Community.BorrowItems() {
					if item.ID == id {
						target = &item
						break
					}
				}
				if target == nil {
					return fmt.Errorf("item %s not found", id)
				}
				if target.Status != models.BorrowAvailable {
					return fmt.Errorf("%q is already borrowed", target.Item)
				}
				if target.OwnerID == actor.UID {
					return fmt.Errorf("you cannot borrow your own item")
				}

				if err := app.Community.Borrow(id); err != nil {
					return err
				}
				fmt.Printf("Borrowed %q from %s.\n", target.Item, target.OwnerName)
				return nil
			})
		},
	}
}

func borrowReturnCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "return <item-id>",
		Short: "Return a borrowed item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				if err := app.Community.Return(args[0]); err != nil {
					return err
				}
				fmt.Println("Item returned.")
				return nil
			})
		},
	}
}

func borrowListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List lendable items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				items := app.Community.BorrowItems()
				if len(items) == 0 {
					fmt.Println("Nothing offered for lending.")
					return nil
				}
				for _, item := range items {
					pricing := fmt.Sprintf("%.0f/day", item.Price)
					if item.IsFriendOnly {
						pricing = "friend-only"
					}
					line := fmt.Sprintf("%-9s %q by %s (%s)", item.Status, item.Item, item.OwnerName, pricing)
					if item.BorrowerName != nil {
						line += " - with " + *item.BorrowerName
					}
					fmt.Println(line)
					fmt.Printf("    id=%s\n", item.ID)
				}
				return nil
			})
		},
	}
}

func sellCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sell",
		Short: "Marketplace listings",
	}
	cmd.AddCommand(sellAddCmd(configPath), sellSoldCmd(configPath), sellListCmd(configPath))
	return cmd
}

func sellAddCmd(configPath *string) *cobra.Command {
	var item, description, condition, image string
	var price float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "List an item for sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				created, err := app.Community.AddSellItem(services.SellItemInput{
					Item:        item,
					Price:       price,
					Description: description,
					Condition:   condition,
					Image:       image,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Listed %q for %.0f (%s).\n", created.Item, created.Price, created.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&item, "item", "", "item name")
	cmd.Flags().Float64Var(&price, "price", 0, "asking price")
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().StringVar(&condition, "condition", "", "condition label")
	cmd.Flags().StringVar(&image, "image", "", "optional image reference")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func sellSoldCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sold <item-id>",
		Short: "Mark one of your listings as sold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				id := args[0]

				actor, ok := app.Sessions.Current()
				if !ok {
					return fmt.Errorf("log in first")
				}
				for _, item := range app.Community.SellItems() {
					if item.ID == id && item.SellerID != actor.UID {
						return fmt.Errorf("only the seller can mark %q as sold", item.Item)
					}
				}

				if err := app.Community.MarkAsSold(id); err != nil {
					return err
				}
				fmt.Println("Marked as sold.")
				return nil
			})
		},
	}
}

func sellListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List marketplace items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(configPath, func(app *bootstrap.App) error {
				items := app.Community.SellItems()
				if len(items) == 0 {
					fmt.Println("Marketplace is empty.")
					return nil
				}
				for _, item := range items {
					fmt.Printf("%-9s %q %.0f (%s) by %s\n",
						item.Status, item.Item, item.Price, item.Condition, item.SellerName)
					fmt.Printf("    id=%s\n", item.ID)
				}
				return nil
			})
		},
	}
}
