package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AFTLlimited25/Task-AI/pkg/store"
	"github.com/AFTLlimited25/Task-AI/pkg/view"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show the notification panel",
	Run:   showNotifications,
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	Run:   markNotificationRead,
}

var notificationsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all notifications",
	Run:   clearNotifications,
}

func init() {
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsClearCmd)
}

func showNotifications(cmd *cobra.Command, args []string) {
	app := newApp()
	app.bootstrap(context.Background())

	snap := app.store.Snapshot()
	if badge := view.BadgeLabel(view.UnreadCount(snap.Notifications)); badge != "" {
		fmt.Printf("Notifications (%s unread)\n", badge)
	} else {
		fmt.Println("Notifications")
	}
	view.RenderNotifications(os.Stdout, snap.Notifications, time.Now())
}

func markNotificationRead(cmd *cobra.Command, args []string) {
	app := newApp()
	app.bootstrap(context.Background())

	app.store.Apply(store.MarkNotificationRead{ID: args[0]})
	view.RenderNotifications(os.Stdout, app.store.Snapshot().Notifications, time.Now())
}

func clearNotifications(cmd *cobra.Command, args []string) {
	app := newApp()
	app.bootstrap(context.Background())

	app.store.Apply(store.ClearNotifications{})
	fmt.Println("✓ Notifications cleared")
}
