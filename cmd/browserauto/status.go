package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/anshiakhileshmj/browserauto/internal/autoconfig"
)

// StatusCmd creates the status command. Status never launches the browser;
// it only re-reads the persisted record and re-verifies the executable.
func StatusCmd(configurator *autoconfig.Configurator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current browser configuration status",
		Run: func(cmd *cobra.Command, args []string) {
			emitStatus(configurator.Status())

			if !watchStatus {
				return
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			fmt.Println("Watching for configuration changes (Ctrl+C to stop)...")
			_ = configurator.Watch(ctx, func(record autoconfig.Record) {
				fmt.Println("--- configuration changed ---")
				emitStatus(configurator.Status())
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the status as JSON")
	cmd.Flags().BoolVar(&watchStatus, "watch", false, "Keep running and report configuration changes")

	return cmd
}

func emitStatus(status autoconfig.Status) {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(status)
		return
	}
	printStatus(status)
}
