package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jolidon/olyst/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, username and password and creates an account.
// A successful registration logs the user in and provisions their referral
// profile, which is printed right away.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.session.Register(ctx, email, username, string(password)); err != nil {
		a.printErr(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Welcome to Olyst!")
	if profile, ok := a.session.ReferralProfile(); ok {
		fmt.Fprintf(a.out, "Your referral link: %s\n", profile.Link)
	}
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// On failure the session stays untouched and the backend's message is shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.printErr(ctx, err)
		return err
	}

	u, _ := a.session.User()
	fmt.Fprintf(a.out, "Logged in as %s\n", u.Username)
	return nil
}

// Logout tears the session down. Safe to run when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.printErr(ctx, err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current identity.
func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.session.User()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	role := "customer"
	if u.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", u.Username, u.Email, role)
	return nil
}
