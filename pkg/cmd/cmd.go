// Package cmd contains the command line applications for the project.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/log"
)

var (
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "monthvault",
		Short: "Serve the files of a month directory as JSON",
		Long: "monthvault reads every file in <base_path>/<month> and returns them as one JSON object\n" +
			"keyed by file name. Run it as a CGI program or as an HTTP server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return err
			}

			if debug {
				configs.GetConfig().Server.Debug = true
			}

			log.Init()

			return nil
		},
		// 由 Web 服务器以 CGI 方式调用时没有子命令
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("GATEWAY_INTERFACE") != "" {
				return runCGI(cmd)
			}

			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file or directory (default: current directory, env "+configs.EnvPrefix+"_*)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")

	registerServeCommands()
	registerCGICommands()
	registerMonthsCommands()
	registerConfigsCommands()
	registerKVCommands()
	registerEventsCommands()
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
