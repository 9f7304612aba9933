package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/storage"
	"github.com/BlankTuber/Tauri-PwdMngr/internal/ui"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/generator"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/notify"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/remote"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/search"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/strength"
)

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the master password for a new vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.openVault()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			initialized, err := v.Initialized(ctx)
			if err != nil {
				return err
			}
			if initialized {
				return errors.New("vault is already initialized")
			}

			password, err := a.readSecret("Create master password: ")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, ui.StrengthBar(strength.Score(password)))
			again, err := a.readSecret("Confirm master password: ")
			if err != nil {
				return err
			}
			if password != again {
				return errors.New("passwords do not match")
			}

			key, err := v.CreateMasterPassword(ctx, password)
			if err != nil {
				return err
			}
			a.session.SetEncKey(key)
			a.notifier.Show(notify.Success, "Vault created. Keep your master password safe, it cannot be recovered.")
			return nil
		},
	}
}

// entryFlags are the credential fields settable from the command line
type entryFlags struct {
	website  string
	username string
	url      string
	notes    string
	generate bool
}

func (f *entryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.website, "website", "", "website name")
	cmd.Flags().StringVar(&f.username, "username", "", "account username")
	cmd.Flags().StringVar(&f.url, "url", "", "website URL")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
	cmd.Flags().BoolVar(&f.generate, "generate", false, "generate a strong password")
}

// fill prompts for every field not given as a flag, defaulting to current
func (a *app) fill(f *entryFlags, current models.Credential, askPassword bool) (models.Credential, error) {
	var (
		c   = current
		err error
	)
	fields := []struct {
		prompt string
		flag   string
		dst    *string
	}{
		{"Website", f.website, &c.Website},
		{"Username", f.username, &c.Username},
		{"Website URL", f.url, &c.WebsiteURL},
		{"Notes", f.notes, &c.Notes},
	}
	for _, field := range fields {
		if field.flag != "" {
			*field.dst = field.flag
			continue
		}
		if *field.dst, err = a.ask(field.prompt, *field.dst); err != nil {
			return c, err
		}
	}

	switch {
	case f.generate:
		password, result, err := generator.New(nil).GenerateScored()
		if err != nil {
			return c, err
		}
		c.Password = password
		fmt.Fprintln(a.out, ui.StrengthBar(result))
	case askPassword:
		if c.Password, err = a.readSecret("Password: "); err != nil {
			return c, err
		}
		fmt.Fprintln(a.out, ui.StrengthBar(strength.Score(c.Password)))
	}
	return c, nil
}

func (a *app) addCmd() *cobra.Command {
	var flags entryFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.unlock(cmd.Context())
			if err != nil {
				return err
			}

			c, err := a.fill(&flags, models.Credential{}, true)
			if err != nil {
				return err
			}
			ctx, cancel := a.remoteContext(cmd)
			defer cancel()
			msg, err := a.vault.CreateCredential(ctx, c, key)
			if err != nil {
				return a.fail(err)
			}
			a.notifier.Show(notify.Success, msg)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var (
		flags          entryFlags
		changePassword bool
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a saved password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.unlock(cmd.Context())
			if err != nil {
				return err
			}

			detail, err := a.fetchDetail(cmd, args[0], key)
			if err != nil {
				return err
			}
			if detail.Undecryptable() {
				return errors.New("this entry cannot be decrypted with the current key")
			}
			current := models.Credential{
				Website:    detail.Website,
				Username:   detail.Username.Ok,
				Password:   detail.Password.Ok,
				WebsiteURL: detail.WebsiteURL,
				Notes:      detail.Notes,
			}

			c, err := a.fill(&flags, current, changePassword)
			if err != nil {
				return err
			}
			ctx, cancel := a.remoteContext(cmd)
			defer cancel()
			msg, err := a.vault.UpdateCredential(ctx, args[0], c, key)
			if err != nil {
				return a.fail(err)
			}
			a.notifier.Show(notify.Success, msg)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&changePassword, "change-password", false, "prompt for a new password")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var reveal, clip bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.unlock(cmd.Context())
			if err != nil {
				return err
			}

			detail, err := a.fetchDetail(cmd, args[0], key)
			if err != nil {
				return err
			}

			password := "********"
			if reveal {
				password = detail.Password.Value(search.UndecryptableText)
			}
			ui.PrintBox(a.out, fmt.Sprintf("Website:  %s\nURL:      %s\nUsername: %s\nPassword: %s\nNotes:    %s",
				detail.Website, orDash(detail.WebsiteURL), detail.Username.Value(search.UndecryptableText),
				password, orDash(detail.Notes)))

			if clip {
				if detail.Password.Failed() {
					return errors.New("password could not be decrypted")
				}
				if err := clipboard.WriteAll(detail.Password.Ok); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				a.notifier.Show(notify.Success, "Password copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the password in clear text")
	cmd.Flags().BoolVar(&clip, "clip", false, "copy the password to the clipboard")
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.unlock(cmd.Context())
			if err != nil {
				return err
			}

			detail, err := a.fetchDetail(cmd, args[0], key)
			if err != nil {
				return err
			}
			if !yes && !a.confirm(fmt.Sprintf("Are you sure you want to delete the password for %s?", detail.Website)) {
				return errCancelled
			}

			ctx, cancel := a.remoteContext(cmd)
			defer cancel()
			msg, err := a.vault.DeleteCredential(ctx, args[0])
			if err != nil {
				return a.fail(err)
			}
			a.notifier.Show(notify.Success, msg)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (a *app) fetchDetail(cmd *cobra.Command, id string, key remote.EncKey) (*models.ExportRecord, error) {
	ctx, cancel := a.remoteContext(cmd)
	defer cancel()
	detail, err := a.vault.FetchCredentialDetail(ctx, id, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("no password with id %s", id)
	}
	return detail, err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
