package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holidaze/client-go/internal/auth"
)

func newRegisterCmd() *cobra.Command {
	var in auth.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			sess, err := a.auth.RegisterThenLogin(cmd.Context(), in)
			if err != nil {
				return err
			}
			if err := a.store.SetSession(sess); err != nil {
				return err
			}

			fmt.Printf("Welcome, %s! You are now logged in.\n", sess.User.Name)
			if sess.User.VenueManager {
				fmt.Println("Venue manager features are enabled for this account.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address (@stud.noroff.no)")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (min 8 characters)")
	cmd.Flags().BoolVar(&in.VenueManager, "venue-manager", false, "register as a venue manager")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var creds auth.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			sess, err := a.auth.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			if err := a.store.SetSession(sess); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s <%s>\n", sess.User.Name, sess.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "email address")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.store.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			sess, ok := a.store.Current()
			if !ok {
				fmt.Println("Not logged in.")
				return nil
			}

			role := "customer"
			if sess.User.VenueManager {
				role = "venue manager"
			}
			fmt.Printf("%s <%s> (%s)\n", sess.User.Name, sess.User.Email, role)
			return nil
		},
	}
}
