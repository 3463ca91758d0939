package cmd

import (
	"github.com/spf13/cobra"

	"todoapp/internal/console"
	"todoapp/internal/repo"
	"todoapp/internal/service"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive console",
	Run: func(cmd *cobra.Command, args []string) {
		taskRepo := repo.NewMemoryRepo()
		taskService := service.NewTaskService(taskRepo)
		console.NewREPL(cmd.InOrStdin(), cmd.OutOrStdout(), taskService).Run()
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
