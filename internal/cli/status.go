// status.go implements the "scrapline status" command showing the current
// session and the most recent pickups.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrapline-dev/scrapline/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and recent pickups",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.Store.RestoreSession(); err != nil {
		return err
	}

	fmt.Println("Scrapline Status")
	sess := env.Store.Session()
	if sess == nil {
		fmt.Println("Not logged in. Run 'scrapline' to log in.")
		return nil
	}
	fmt.Printf("Logged in as: +91 %s\n", sess.PhoneNumber)
	fmt.Println()

	recent := env.Store.RecentOrders(0)
	if len(recent) == 0 {
		fmt.Println("No pickups scheduled yet.")
		return nil
	}

	fmt.Println("Recent pickups:")
	for _, o := range recent {
		printOrderLine(o)
	}

	return nil
}

func printOrderLine(o store.PickupOrder) {
	fmt.Printf("  %-10s  %-21s  %-22s  %s\n", o.Date, o.TimeSlot, o.Status, o.Address)
}
