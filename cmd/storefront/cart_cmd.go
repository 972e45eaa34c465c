package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/nikolayk812/fyf-cart/internal/cart"
	"github.com/nikolayk812/fyf-cart/internal/domain"
	"github.com/spf13/cobra"
)

const defaultOwner = "local"

func newCartCmd(configPath *string) *cobra.Command {
	var owner string

	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and modify a cart",
		Long: `Inspect and modify the cart of one owner in the configured store.

Available subcommands:
  show   - Print items, badge count and grand total
  add    - Add an item, or increment its quantity
  update - Set an item's quantity (values below 1 are ignored)
  remove - Remove an item
  clear  - Delete the cart
  total  - Print the grand total`,
	}

	cartCmd.PersistentFlags().StringVar(&owner, "owner", defaultOwner, "Cart owner id")

	// withEngine runs fn against an engine built from the config and closes the
	// store afterwards.
	withEngine := func(fn func(ctx context.Context, engine *cart.Engine, out io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()

			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := a.close(); closeErr != nil && err == nil {
					err = fmt.Errorf("close store: %w", closeErr)
				}
			}()

			return fn(ctx, a.engine, cmd.OutOrStdout())
		}
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the cart",
		Args:  cobra.NoArgs,
		RunE: withEngine(func(ctx context.Context, engine *cart.Engine, out io.Writer) error {
			current, err := engine.Load(ctx, owner)
			if err != nil {
				return err
			}
			return printCart(out, engine, current)
		}),
	}

	addCmd := &cobra.Command{
		Use:   "add <id> <name> <price>",
		Short: "Add an item to the cart",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, name, price := args[0], args[1], domain.ParsePrice(args[2])

			return withEngine(func(ctx context.Context, engine *cart.Engine, out io.Writer) error {
				updated, err := engine.AddItem(ctx, owner, id, name, price)
				if err != nil {
					return err
				}

				event := domain.Event{Kind: domain.EventItemAdded, ItemID: id, Name: name}
				fmt.Fprintln(out, event.Message())
				return printCart(out, engine, updated)
			})(cmd, args)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id> <quantity>",
		Short: "Set the quantity of an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, quantity := args[0], int(domain.ParseQuantity(args[1]))

			return withEngine(func(ctx context.Context, engine *cart.Engine, out io.Writer) error {
				updated, err := engine.UpdateQuantity(ctx, owner, id, quantity)
				if err != nil {
					return err
				}
				return printCart(out, engine, updated)
			})(cmd, args)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			return withEngine(func(ctx context.Context, engine *cart.Engine, out io.Writer) error {
				updated, err := engine.RemoveItem(ctx, owner, id)
				if err != nil {
					return err
				}
				return printCart(out, engine, updated)
			})(cmd, args)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the cart",
		Args:  cobra.NoArgs,
		RunE: withEngine(func(ctx context.Context, engine *cart.Engine, out io.Writer) error {
			if err := engine.Clear(ctx, owner); err != nil {
				return err
			}
			fmt.Fprintln(out, domain.Event{Kind: domain.EventCartCleared}.Message())
			return nil
		}),
	}

	totalCmd := &cobra.Command{
		Use:   "total",
		Short: "Print the grand total",
		Args:  cobra.NoArgs,
		RunE: withEngine(func(ctx context.Context, engine *cart.Engine, out io.Writer) error {
			total, err := engine.Total(ctx, owner)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, total.String())
			return nil
		}),
	}

	cartCmd.AddCommand(showCmd, addCmd, updateCmd, removeCmd, clearCmd, totalCmd)

	return cartCmd
}

func printCart(out io.Writer, engine *cart.Engine, current domain.Cart) error {
	if current.IsEmpty() {
		_, err := fmt.Fprintln(out, "cart is empty")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, item := range current.Items {
		subtotal := domain.GrandTotal([]domain.CartItem{item})
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, item.Price.StringFixed(2), strconv.Itoa(item.Quantity), subtotal.StringFixed(2))
	}
	fmt.Fprintf(w, "\t\t\t%d\t%s\n", current.ItemCount(), engine.Money(current.GrandTotal()).String())

	return w.Flush()
}
