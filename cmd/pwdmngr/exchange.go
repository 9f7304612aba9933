package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/logger"
	"github.com/BlankTuber/Tauri-PwdMngr/internal/ui"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/exchange"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/importer"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/manager"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/models"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/notify"
)

var errNoSelection = manager.ErrEmptySelection

func (a *app) exportCmd() *cobra.Command {
	var (
		formatName string
		outDir     string
		ids        []string
		all        bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export passwords to a JSON or CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.notifier = a.newNotifier(a.cfg.ExchangeNotifyTTL)

			format, err := exchange.ParseFormat(formatName)
			if err != nil {
				return a.fail(err)
			}
			if !all && len(ids) == 0 {
				return a.fail(errNoSelection)
			}

			key, err := a.unlock(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := a.remoteContext(cmd)
			defer cancel()

			if all {
				records, err := a.vault.FetchAllForExport(ctx, key)
				if err != nil {
					return a.fail(&models.BackendError{Op: "export", Err: err})
				}
				if len(records) == 0 {
					return a.fail(errNoSelection)
				}
				ids = ids[:0]
				for _, r := range records {
					ids = append(ids, r.ID)
				}
			}

			selection, err := a.vault.PrepareExportSelection(ctx, key, ids)
			if err != nil {
				return a.fail(&models.BackendError{Op: "export", Err: err})
			}
			if !selection.Success {
				return a.fail(&models.BackendError{Op: "export", Err: errors.New("store refused the export")})
			}

			records, undecryptable := exportable(selection.Data)
			if undecryptable > 0 {
				ui.PrintWarning(a.out, fmt.Sprintf("Skipping %d passwords that could not be decrypted", undecryptable))
			}
			if len(records) == 0 {
				return a.fail(errors.New("no exportable passwords in the selection"))
			}

			text, err := exchange.Encode(format, records)
			if err != nil {
				return a.fail(err)
			}
			path := filepath.Join(outDir, exchange.FileName(format))
			if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
				return a.fail(fmt.Errorf("failed to write export file: %w", err))
			}

			logger.Info("Export written", map[string]interface{}{"count": len(records), "format": string(format)})
			a.notifier.Show(notify.Success, fmt.Sprintf("Successfully exported %d passwords to %s.", len(records), path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", "json", "export format: json or csv")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the export file to")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "IDs of the passwords to export")
	cmd.Flags().BoolVar(&all, "all", false, "export every saved password")
	return cmd
}

// exportable drops records with a secret field that failed to decrypt
func exportable(records []models.ExportRecord) ([]models.ExportRecord, int) {
	kept := make([]models.ExportRecord, 0, len(records))
	for _, r := range records {
		if r.Undecryptable() {
			logger.Warn("Skipping undecryptable record in export", map[string]interface{}{"id": r.ID})
			continue
		}
		kept = append(kept, r)
	}
	return kept, len(records) - len(kept)
}

func (a *app) importCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import passwords from a JSON or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.notifier = a.newNotifier(a.cfg.ExchangeNotifyTTL)

			sub, err := importer.Prepare(args[0])
			if err != nil {
				return a.fail(err)
			}

			rows, more := sub.Preview()
			ui.RenderPreview(a.out, rows, more)
			if sub.SkippedRows > 0 || sub.RejectedCount > 0 {
				ui.PrintWarning(a.out, fmt.Sprintf("%d malformed rows skipped, %d invalid records rejected",
					sub.SkippedRows, sub.RejectedCount))
			}

			acknowledged := 0
			if yes || a.confirm(sub.ConfirmPrompt()) {
				acknowledged = sub.Count()
			}
			if acknowledged == 0 {
				return errCancelled
			}

			key, err := a.unlock(cmd.Context())
			if err != nil {
				return err
			}
			orchestrator := importer.New(a.vault, a.cfg.RemoteTimeout)
			outcome, err := orchestrator.Submit(cmd.Context(), sub, acknowledged, key)
			if err != nil {
				return a.fail(err)
			}
			a.notifier.Show(notify.Success, outcome.Message)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
