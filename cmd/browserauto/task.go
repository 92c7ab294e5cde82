package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anshiakhileshmj/browserauto/internal/autoconfig"
	"github.com/anshiakhileshmj/browserauto/internal/connector"
)

// TaskCmd creates the task command: connect to the configured browser and run
// one free-text task against it.
func TaskCmd(configurator *autoconfig.Configurator) *cobra.Command {
	var (
		port      int
		timeout   time.Duration
		terminate bool
	)

	cmd := &cobra.Command{
		Use:   "task <text>",
		Short: "Execute a browser task (e.g. \"open google\", \"search cats\")",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			task := strings.Join(args, " ")

			record, err := configurator.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
				os.Exit(1)
			}
			if record.BrowserPath == "" {
				record = configurator.AutoDetectAndConfigure()
			}
			if record.BrowserPath == "" {
				fmt.Fprintln(os.Stderr, "no Chrome installation found")
				os.Exit(1)
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			conn := connector.New(connector.Options{
				DebugPort:  port,
				OnAttached: configurator.MarkConnectionTested,
			})

			if !conn.Connect(ctx, record.BrowserPath, record.BrowserUserData) {
				fmt.Fprintln(os.Stderr, "could not connect to browser")
				if lastErr := conn.LastError(); lastErr != nil {
					fmt.Fprintf(os.Stderr, "  %v\n", lastErr)
				}
				os.Exit(1)
			}

			result, err := conn.ExecuteTask(ctx, task)
			if err != nil {
				fmt.Fprintf(os.Stderr, "task error: %v\n", err)
				os.Exit(1)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(result)

			conn.Close()
			if terminate {
				conn.ForceTerminate()
			}

			if !result.Success {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", connector.DefaultDebugPort, "Remote debugging port")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Overall task timeout")
	cmd.Flags().BoolVar(&terminate, "terminate", false, "Kill the browser process if this run launched it")

	return cmd
}
