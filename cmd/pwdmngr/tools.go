package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/ui"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/generator"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/notify"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/strength"
)

func (a *app) generateCmd() *cobra.Command {
	var clip bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a strong random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, result, err := generator.New(nil).GenerateScored()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, password)
			fmt.Fprintln(a.out, ui.StrengthBar(result))

			if clip {
				if err := clipboard.WriteAll(password); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				a.notifier.Show(notify.Success, "Password copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&clip, "clip", "c", false, "copy the password to the clipboard")
	return cmd
}

func (a *app) strengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password]",
		Short: "Rate the strength of a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var candidate string
			if len(args) == 1 {
				candidate = args[0]
			} else {
				var err error
				if candidate, err = a.readSecret("Password to rate: "); err != nil {
					return err
				}
			}

			fmt.Fprintln(a.out, ui.StrengthBar(strength.Score(candidate)))
			ui.PrintMuted(a.out, fmt.Sprintf("Estimated entropy: %.1f bits", strength.Entropy(candidate)))
			return nil
		},
	}
}
