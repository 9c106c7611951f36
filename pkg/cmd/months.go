package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yeisme/monthvault/pkg/configs"
	"github.com/yeisme/monthvault/pkg/internal/service"
)

var (
	monthsCmd = &cobra.Command{
		Use:   "months",
		Short: "month directory related commands",
	}

	monthsListCmd = &cobra.Command{
		Use:     "list",
		Short:   "list the month directories under the base path",
		Aliases: []string{"ls", "l"},
		RunE: func(cmd *cobra.Command, args []string) error {
			months, err := newMonthService().AvailableMonths(cmd.Context())
			if err != nil {
				return err
			}

			for _, m := range months {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}

			return nil
		},
	}

	monthsShowCmd = &cobra.Command{
		Use:   "show [month]",
		Short: "print the JSON body for a month (default month when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := ""
			if len(args) == 1 {
				month = args[0]
			}

			resp := newMonthService().Load(cmd.Context(), month)

			b, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(b))

			return nil
		},
	}
)

func newMonthService() *service.MonthService {
	return service.NewMonthServiceWithFS(afero.NewReadOnlyFs(afero.NewOsFs()), configs.GetConfig().Data)
}

// registerMonthsCommands 注册月份相关命令.
func registerMonthsCommands() {
	monthsCmd.AddCommand(monthsListCmd)
	monthsCmd.AddCommand(monthsShowCmd)

	rootCmd.AddCommand(monthsCmd)
}
