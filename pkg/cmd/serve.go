package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yeisme/monthvault/pkg/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := app.NewApp(ctx)
		if err != nil {
			return err
		}

		return a.Run(ctx)
	},
}

// registerServeCommands 注册 HTTP 服务命令.
func registerServeCommands() {
	rootCmd.AddCommand(serveCmd)
}
