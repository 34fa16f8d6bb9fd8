// schedule.go implements the "scrapline schedule" command for creating a
// pickup without the TUI.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrapline-dev/scrapline/internal/store"
)

var (
	scheduleDate    string
	scheduleSlot    string
	scheduleAddress string
	scheduleLink    string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule a pickup non-interactively",
	Long: `Create a pickup order from flags. The order starts in the
Pending status, exactly as one scheduled from the TUI.

Orders live in memory for the lifetime of the process: only the login
session is persisted, so an order created here is gone once the command
exits. Use the TUI for a session-long order list.`,
	RunE: runSchedule,
}

func runSchedule(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.Store.RestoreSession(); err != nil {
		return err
	}
	if env.Store.Session() == nil {
		return fmt.Errorf("not logged in; run 'scrapline' to log in first")
	}

	draft := store.OrderDraft{
		Date:     scheduleDate,
		TimeSlot: scheduleSlot,
		Address:  scheduleAddress,
	}
	if scheduleLink != "" {
		draft.LocationLink = &scheduleLink
	}

	order, err := env.Store.ScheduleOrder(draft)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("missing --%s", flagForField(verr.Field))
		}
		return err
	}

	fmt.Printf("Scheduled pickup %s for %s, %s\n", order.ID, order.Date, order.TimeSlot)
	return nil
}

// flagForField maps a draft field name to its CLI flag.
func flagForField(field string) string {
	switch field {
	case "timeSlot":
		return "slot"
	default:
		return field
	}
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "Pickup date (YYYY-MM-DD)")
	scheduleCmd.Flags().StringVar(&scheduleSlot, "slot", "", "Time slot, e.g. \"10:00 AM - 11:00 AM\"")
	scheduleCmd.Flags().StringVar(&scheduleAddress, "address", "", "Pickup address")
	scheduleCmd.Flags().StringVar(&scheduleLink, "link", "", "Optional maps link")
}
