package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskme",
	Short: "TaskMe AI - your life-admin assistant",
	Long: `TaskMe AI surfaces tasks derived from your email and calendar -
subscription cancellations, appointment confirmations, refund follow-ups,
reminders - and lets you track, filter, and act on them.`,
	Run: showDashboard,
}

func main() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(runActionCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(signInCmd)
	rootCmd.AddCommand(signUpCmd)
	rootCmd.AddCommand(signOutCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
