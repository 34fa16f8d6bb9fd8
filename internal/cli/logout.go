// logout.go implements the "scrapline logout" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the saved session",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	// Logout clears the in-memory session even when the delete fails;
	// report the fault but don't treat it as fatal.
	if err := env.Store.Logout(); err != nil {
		fmt.Printf("Logged out (warning: %v)\n", err)
		return nil
	}

	fmt.Println("Logged out.")
	return nil
}
