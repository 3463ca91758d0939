package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todoapp/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "todoapp",
	Short: "In-memory todo manager",
	Long: `Todoapp tracks tasks in memory and exposes them through two
front ends: an interactive console (todoapp console) and a REST API
(todoapp serve). State lives for the duration of the process.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default searches . and $HOME/.config/todoapp)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME/.config/todoapp")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TODOAPP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Файл конфигурации опционален
	_ = viper.ReadInConfig()
}
