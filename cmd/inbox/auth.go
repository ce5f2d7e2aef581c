package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s21platform/market-chat/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and remember the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := inbox.client.Login(cmd.Context(), strings.TrimSpace(loginEmail), loginPassword)
		if err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}

		sess := session.New(resp.Token, resp.User)
		if err := sess.Save(inbox.sessionPath); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		fmt.Printf("Logged in as %s (%s)\n", displayName(resp.User.Name, resp.User.Surname), resp.User.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.Clear(inbox.sessionPath); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		fmt.Println("Logged out")
		return nil
	},
}

func displayName(name, surname string) string {
	return strings.TrimSpace(name + " " + surname)
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, logoutCmd)
}
