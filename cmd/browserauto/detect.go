package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anshiakhileshmj/browserauto/internal/autoconfig"
)

// DetectCmd creates the detect command: a fresh probe that overwrites the
// persisted record.
func DetectCmd(configurator *autoconfig.Configurator) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the local Chrome installation and save the configuration",
		Run: func(cmd *cobra.Command, args []string) {
			record := configurator.AutoDetectAndConfigure()
			configurator.ApplyToEnvironment(record)

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				_ = enc.Encode(record)
				return
			}

			fmt.Printf("Browser path: %s\n", orUnset(record.BrowserPath))
			fmt.Printf("Use own browser: %s\n", record.UseOwnBrowser)
			fmt.Printf("User data dir: %s\n", orUnset(record.BrowserUserData))
			fmt.Printf("Saved to: %s\n", configurator.Path())
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the record as JSON")

	return cmd
}
