package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"manualrag/src/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "manualrag",
	Short: "Find figures and tables in a technical manual",
	Long: `manualrag indexes a technical manual and its page layout metadata and
answers natural-language questions with the most relevant figures and tables,
cited by page and bounding box.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return log.Configure(viper.GetString("log.level"), viper.GetBool("log.development"))
	},
}

func init() {
	settingDefaultConfig()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
}

func initConfig() error {
	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
