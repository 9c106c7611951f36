package cmd

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yeisme/monthvault/pkg/app"
	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/service"
)

var cgiCmd = &cobra.Command{
	Use:   "cgi",
	Short: "handle a single CGI request from the environment and stdin",
	Long: "Reads the month parameter from QUERY_STRING or a POST form body and writes\n" +
		"\"Content-Type: application/json\", a blank line and the JSON body to stdout.\n" +
		"Load errors are reported in the body, the exit status stays 0.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCGI(cmd)
	},
}

func runCGI(cmd *cobra.Command) error {
	cfg := configs.GetConfig()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Server.GetTimeoutDuration())
	defer cancel()

	svc := service.NewMonthServiceWithFS(afero.NewReadOnlyFs(afero.NewOsFs()), cfg.Data)

	return app.ServeCGI(ctx, svc, app.EnvMap(os.Environ()), cmd.InOrStdin(), cmd.OutOrStdout())
}

// registerCGICommands 注册 CGI 命令.
func registerCGICommands() {
	rootCmd.AddCommand(cgiCmd)
}
