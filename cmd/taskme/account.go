package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AFTLlimited25/Task-AI/pkg/auth"
)

var (
	accountEmail    string
	accountPassword string
	accountName     string
)

var signInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to the backend",
	Run:   signIn,
}

var signUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a backend account",
	Run:   signUp,
}

var signOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out and clear the cached session",
	Run:   signOut,
}

func init() {
	for _, cmd := range []*cobra.Command{signInCmd, signUpCmd} {
		cmd.Flags().StringVarP(&accountEmail, "email", "e", "", "Account email (required)")
		cmd.Flags().StringVarP(&accountPassword, "password", "p", "", "Account password (required)")
		if err := cmd.MarkFlagRequired("email"); err != nil {
			panic(err)
		}
		if err := cmd.MarkFlagRequired("password"); err != nil {
			panic(err)
		}
	}
	signUpCmd.Flags().StringVarP(&accountName, "name", "n", "", "Display name (required)")
	if err := signUpCmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
}

func signIn(cmd *cobra.Command, args []string) {
	app := newApp()

	session, user, err := app.auth.SignIn(context.Background(), accountEmail, accountPassword)
	if err != nil {
		fatal("Sign in failed: %v", err)
	}
	if err := auth.Save(session); err != nil {
		fatal("Could not cache session: %v", err)
	}
	fmt.Printf("✓ Signed in as %s <%s>\n", user.Name, user.Email)
}

func signUp(cmd *cobra.Command, args []string) {
	app := newApp()

	userID, err := app.auth.SignUp(context.Background(), accountEmail, accountPassword, accountName)
	if err != nil {
		fatal("Sign up failed: %v", err)
	}
	fmt.Printf("✓ Account created: %s. Run 'taskme signin' to sign in.\n", userID)
}

func signOut(cmd *cobra.Command, args []string) {
	app := newApp()

	if app.session != nil {
		if err := app.auth.SignOut(context.Background()); err != nil {
			app.log.WithError(err).Warn("remote sign-out failed, clearing local session anyway")
		}
	}
	if err := auth.Clear(); err != nil {
		fatal("Could not clear session: %v", err)
	}
	fmt.Println("✓ Signed out")
}
