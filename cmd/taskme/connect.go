package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AFTLlimited25/Task-AI/pkg/model"
	"github.com/AFTLlimited25/Task-AI/pkg/store"
)

var connectCmd = &cobra.Command{
	Use:   "connect <gmail|calendar>",
	Short: "Link an external account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setConnected(args[0], true)
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect <gmail|calendar>",
	Short: "Unlink an external account",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setConnected(args[0], false)
	},
}

func setConnected(service string, connected bool) {
	ctx := context.Background()
	app := newApp()
	app.bootstrap(ctx)

	switch service {
	case "gmail":
		app.store.Apply(store.SetGmailConnected{Connected: connected})
		if connected {
			app.notify(model.NotifySuccess, "Successfully connected to Gmail", "")
		}
	case "calendar":
		app.store.Apply(store.SetCalendarConnected{Connected: connected})
		if connected {
			app.notify(model.NotifySuccess, "Successfully connected to Google Calendar", "")
		}
	default:
		fatal("Unknown service %q, expected gmail or calendar", service)
	}

	app.pushConnections(ctx)

	verb := "connected"
	if !connected {
		verb = "disconnected"
	}
	fmt.Printf("✓ %s %s\n", service, verb)
}
