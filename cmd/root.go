package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	config "github.com/denismitr/intset/configs"
	customLogger "github.com/denismitr/intset/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "intset",
		Short: "Calculator for sorted sets of integers",
		Long: "intset evaluates set expressions such as {1 2 3} + {2 3 4}, " +
			"either from arguments and stdin (eval) or interactively (repl).",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject set literals that are not strictly ascending")
	rootCmd.PersistentFlags().Int("history-size", 100, "How many statements the history keeps")
	rootCmd.PersistentFlags().Bool("color", true, "Use colors in the interactive mode")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))
	viper.BindPFlag("log.file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("sets.strict", rootCmd.PersistentFlags().Lookup("strict"))
	viper.BindPFlag("history.size", rootCmd.PersistentFlags().Lookup("history-size"))
	viper.BindPFlag("render.color", rootCmd.PersistentFlags().Lookup("color"))
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
}

func initConfig() {
	if err := config.LoadConfig(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	customLogger.InitLogger()
}
