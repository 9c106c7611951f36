package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/monthvault/pkg/configs"
	kv "github.com/yeisme/monthvault/pkg/internal/storage/kv"
)

var (
	kvCmd = &cobra.Command{
		Use:     "kv",
		Short:   "response cache backend related commands",
		Aliases: []string{"keyvalue"},
	}

	kvListCmd = &cobra.Command{
		Use:     "list",
		Short:   "list all registered kv types, the configured one marked with *",
		Aliases: []string{"ls", "l"},
		Run: func(cmd *cobra.Command, args []string) {
			cfg := configs.GetConfig()
			current := kv.KVType(cfg.KV.GetKVType())

			fmt.Fprintf(cmd.OutOrStdout(), "Registered kv types (cache enabled: %t):\n", cfg.Cache.Enabled)

			for _, t := range kv.GetRegisteredKVTypes() {
				mark := " "
				if t == current {
					mark = "*"
				}

				fmt.Fprintf(cmd.OutOrStdout(), " %s - %s\n", mark, t)
			}
		},
	}
)

// registerKVCommands 注册 KV 相关命令.
func registerKVCommands() {
	rootCmd.AddCommand(kvCmd)
	kvCmd.AddCommand(kvListCmd)
}
