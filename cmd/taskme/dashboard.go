package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
	"github.com/AFTLlimited25/Task-AI/pkg/view"
)

var dashboardFilter string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard",
	Long:  `Show the main panel: connection status, pending task counts, and the task grid.`,
	Run:   showDashboard,
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardFilter, "type", "t", "all", "Filter tasks by type (all, email_followup, appointment, subscription, refund, reminder, other)")
}

func showDashboard(cmd *cobra.Command, args []string) {
	app := newApp()
	app.bootstrap(context.Background())

	snap := app.store.Snapshot()
	view.RenderHeader(os.Stdout, snap)
	view.RenderDashboard(os.Stdout, snap, model.TaskType(dashboardFilter))
}
