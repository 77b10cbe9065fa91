package cmd

import (
	"errors"
	"fmt"

	"shoestock/internal/inventory"
	"shoestock/internal/shell"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print every shoe in the inventory file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd, false)
	},
}

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Print the stock value of every shoe",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd, true)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search CODE",
	Short: "Show the shoe with the given code",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(valueCmd)
	rootCmd.AddCommand(searchCmd)
}

func printReport(cmd *cobra.Command, withValue bool) error {
	svc, err := loadSession()
	if err != nil {
		return err
	}

	rows := svc.List()
	if withValue {
		rows = svc.ValueReport()
	}
	fmt.Fprintln(cmd.OutOrStdout(), shell.RenderReport(rows, withValue))
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, err := loadSession()
	if err != nil {
		return err
	}

	i, err := svc.Search(args[0])
	if errors.Is(err, inventory.ErrNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "Shoe not found in inventory")
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid code %q: %w", args[0], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), shell.Detail(*svc.Store().At(i), svc.Currency()))
	return nil
}
