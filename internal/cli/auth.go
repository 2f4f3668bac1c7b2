package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ecotracker/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates a new account.
//
// The password byte slice is wiped before returning. Validation and duplicate
// errors are reported to the user and returned.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.users.Register(ctx, name, email, password); err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			printlnFn("This email is already registered. Please log in.")
		case errors.Is(err, common.ErrorValidation):
			printlnFn("Please fill in all fields with a valid email address.")
		default:
			printlnFn("Sign up failed:", err.Error())
		}
		return err
	}

	printlnFn("Sign up successful! Please log in. 🎉")
	return nil
}

// Login prompts for credentials, verifies them, and persists the session
// slot so the login survives restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Invalid email or password. Please try again.")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	if err := a.sessions.SetCurrent(ctx, user.Email); err != nil {
		a.log.Error(ctx, "error saving session", "error", err)
		return err
	}

	a.current = user
	printlnFn(fmt.Sprintf("Login successful! Hello, %s — you have %d EcoPoints.", user.Name, user.EcoPoints))
	a.maybeCongratulate(user.EcoPoints)
	return nil
}

// Logout clears the session slot. User records are untouched.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.ClearCurrent(ctx); err != nil {
		a.log.Error(ctx, "error clearing session", "error", err)
		return err
	}
	a.current = nil
	printlnFn("Logged out. See you soon! 🌱")
	return nil
}
