// Package cli wires the browserauto commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anshiakhileshmj/browserauto/internal/autoconfig"
	"github.com/anshiakhileshmj/browserauto/internal/logging"
)

// SetupRootCmd configures the root command with all subcommands and flags.
func SetupRootCmd(configurator *autoconfig.Configurator) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "browserauto",
		Short: "browserauto - drive a local Chrome over its debugging port",
		Long: `browserauto detects a local Chrome installation, attaches to it over the
DevTools protocol (launching a debuggable instance when none is running)
and executes simple navigation tasks against it.

Running bare auto-detects Chrome, exports the configuration to the
environment and prints the status.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				logging.Disable()
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			runRoot(configurator)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print detection and connection logs")
	rootCmd.PersistentFlags().BoolVar(&noAutoConfig, "no-auto-config", false, "Skip automatic Chrome detection")

	rootCmd.AddCommand(DetectCmd(configurator))
	rootCmd.AddCommand(StatusCmd(configurator))
	rootCmd.AddCommand(TaskCmd(configurator))

	return rootCmd
}

// runRoot mirrors process startup: detect unless disabled, export the record,
// then report status.
func runRoot(configurator *autoconfig.Configurator) {
	if noAutoConfig {
		fmt.Println("Auto-configuration disabled")
	} else {
		record := configurator.AutoDetectAndConfigure()
		configurator.ApplyToEnvironment(record)

		fmt.Printf("BROWSER_PATH: %s\n", orUnset(os.Getenv("BROWSER_PATH")))
		fmt.Printf("USE_OWN_BROWSER: %s\n", orUnset(os.Getenv("USE_OWN_BROWSER")))
		fmt.Printf("BROWSER_USER_DATA: %s\n", orUnset(os.Getenv("BROWSER_USER_DATA")))
	}

	printStatus(configurator.Status())
}

func printStatus(status autoconfig.Status) {
	if status.ChromeDetected {
		fmt.Printf("Chrome detected: %s\n", status.ChromePath)
		if status.ExecutableVerified {
			fmt.Println("Executable verified: yes")
		} else {
			fmt.Println("Executable verified: no")
		}
	} else {
		fmt.Println("Chrome detected: no (bundled engine will be used)")
	}
	if status.UserDataDir != "" {
		fmt.Printf("User data dir: %s\n", status.UserDataDir)
	}
	fmt.Printf("Use own browser: %v\n", status.UseOwnBrowser)
	fmt.Printf("Connection tested: %v\n", status.ConnectionTested)
}

func orUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
