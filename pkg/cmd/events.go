package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/mq"
)

var (
	eventsCmd = &cobra.Command{
		Use:     "events",
		Short:   "month event bus related commands",
		Aliases: []string{"mq"},
	}

	eventsListCmd = &cobra.Command{
		Use:     "list",
		Short:   "list all registered event bus types, the configured one marked with *",
		Aliases: []string{"ls", "l"},
		Run: func(cmd *cobra.Command, args []string) {
			cfg := configs.GetConfig()
			current := cfg.Events.GetEventsType()

			fmt.Fprintf(cmd.OutOrStdout(), "Registered event bus types (enabled: %t):\n", cfg.Events.Enabled)

			for _, t := range mq.GetRegisteredTypes() {
				mark := " "
				if t == current {
					mark = "*"
				}

				fmt.Fprintf(cmd.OutOrStdout(), " %s - %s\n", mark, t)
			}
		},
	}
)

// registerEventsCommands 注册事件总线相关命令.
func registerEventsCommands() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsListCmd)
}
