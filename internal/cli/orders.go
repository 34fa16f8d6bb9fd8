// orders.go implements the "scrapline orders" command listing every pickup.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List all pickup orders, most recent first",
	RunE:  runOrders,
}

func runOrders(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	orders := env.Store.Snapshot().Orders
	if len(orders) == 0 {
		fmt.Println("No pickups scheduled yet.")
		return nil
	}

	for _, o := range orders {
		printOrderLine(o)
		if o.PickupCode != nil {
			fmt.Printf("              pickup code: %s\n", *o.PickupCode)
		}
		for _, item := range o.Items {
			fmt.Printf("              %-12s x%-3d @ %.0f\n", item.Name, item.Qty, item.Price)
		}
		if len(o.Items) > 0 {
			fmt.Printf("              total: %.0f\n", o.TotalAmount)
		}
	}

	return nil
}
