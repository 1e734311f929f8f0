package main

import (
	"context"
	"fmt"

	"github.com/prittywoman/harmonyctl/internal/shared"
	"github.com/urfave/cli/v3"
)

// Login exchanges a username and password for an API token and persists it.
//
// Credentials come from flags first, then the configuration file or the
// HARMONY_USERNAME / HARMONY_PASSWORD environment variables.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	if username == "" {
		username = r.config.Login.Username
	}
	password := cmd.String("password")
	if password == "" {
		password = r.config.Login.Password
	}

	r.logger.Infof("logging in as %v", username)

	token, err := r.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	r.session.Set(token)

	if r.store != nil {
		if err := r.store.Save(token); err != nil {
			r.logger.Warnf("token not persisted: %v", err)
		}
	}

	return r.writePlain("✓ Logged in as %s\n", username)
}

// Logout clears the in-memory session and deletes the persisted token.
func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	r.session.Clear()

	if r.store != nil {
		if err := r.store.Delete(); err != nil {
			return fmt.Errorf("failed to delete stored token: %w", err)
		}
	}

	return r.writePlain("✓ Logged out\n")
}

// ProfileShow fetches and prints the authenticated user's profile.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	if !r.session.Present() {
		return fmt.Errorf("%w: run `harmonyctl login` first", shared.ErrMissingCredential)
	}

	profile, err := r.client.ProfileData(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(profile, cmd.Bool("pretty"))
	}

	r.writePlain("Username:   %s\n", profile.Username)
	r.writePlain("Name:       %s %s\n", profile.FirstName, profile.LastName)
	r.writePlain("Email:      %s\n", profile.Email)
	if profile.Bio != "" {
		r.writePlain("Bio:        %s\n", profile.Bio)
	}
	return nil
}

// ProfileUpdate patches the authenticated user's profile with the provided
// flag values. Unset flags leave their fields untouched.
func (r *Runner) ProfileUpdate(ctx context.Context, cmd *cli.Command) error {
	if !r.session.Present() {
		return fmt.Errorf("%w: run `harmonyctl login` first", shared.ErrMissingCredential)
	}

	fields := map[string]any{}
	for flag, field := range map[string]string{
		"first-name": "first_name",
		"last-name":  "last_name",
		"email":      "email",
		"bio":        "bio",
	} {
		if cmd.IsSet(flag) {
			fields[field] = cmd.String(flag)
		}
	}

	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update, pass at least one field flag", shared.ErrValidation)
	}

	profile, err := r.client.ProfileData(ctx)
	if err != nil {
		return err
	}

	updated, err := r.client.UpdateProfile(ctx, profile.UserID, fields)
	if err != nil {
		return err
	}

	r.logger.Infof("profile %v updated", updated.UserID)
	return r.writeJSON(updated, true)
}
