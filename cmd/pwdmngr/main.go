package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/config"
	"github.com/BlankTuber/Tauri-PwdMngr/internal/logger"
	"github.com/BlankTuber/Tauri-PwdMngr/internal/ui"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/manager"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/notify"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/remote"
	"github.com/BlankTuber/Tauri-PwdMngr/pkg/session"
)

// app carries the state shared by all commands of one invocation
type app struct {
	cfgPath string
	cfg     config.Config

	vault    *manager.Vault
	session  *session.Store
	notifier *notify.Notifier

	in         *bufio.Reader
	out        io.Writer
	readSecret func(prompt string) (string, error)
}

var errReported = errors.New("reported")

func newApp(in io.Reader, out io.Writer) *app {
	a := &app{
		session: session.New(),
		in:      bufio.NewReader(in),
		out:     out,
	}
	a.readSecret = a.readTerminalSecret
	return a
}

func main() {
	a := newApp(os.Stdin, os.Stdout)
	err := a.run(os.Args[1:])
	if errors.Is(err, errCancelled) {
		ui.PrintMuted(os.Stdout, "Cancelled.")
		return
	}
	if err != nil {
		if !errors.Is(err, errReported) {
			ui.PrintError(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pwdmngr",
		Short:         "Local password vault with JSON and CSV exchange",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a YAML config file")

	root.AddCommand(
		a.initCmd(),
		a.addCmd(),
		a.editCmd(),
		a.showCmd(),
		a.deleteCmd(),
		a.browseCmd(),
		a.exportCmd(),
		a.importCmd(),
		a.generateCmd(),
		a.strengthCmd(),
	)
	return root
}

// run executes one command line and releases the vault afterwards
func (a *app) run(args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.Execute()
	if cerr := a.teardown(); err == nil {
		err = cerr
	}
	return err
}

func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	logger.SetOutput(os.Stderr)

	a.notifier = a.newNotifier(cfg.NotifyTTL)
	return nil
}

func (a *app) teardown() error {
	a.session.Clear()
	if a.vault != nil {
		err := a.vault.Close()
		a.vault = nil
		return err
	}
	return nil
}

func (a *app) newNotifier(ttl time.Duration) *notify.Notifier {
	return notify.New(ttl, func(msg notify.Message, visible bool) {
		if visible {
			fmt.Fprintln(a.out, ui.Notification(msg))
		}
	})
}

// fail shows err as a notification and marks it as already reported
func (a *app) fail(err error) error {
	a.notifier.Error(err)
	return fmt.Errorf("%w: %w", errReported, err)
}

// openVault opens the vault database once per invocation
func (a *app) openVault() (*manager.Vault, error) {
	if a.vault != nil {
		return a.vault, nil
	}
	v, err := manager.Open(a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	a.vault = v
	return v, nil
}

// unlock asks for the master password and stores the session key
func (a *app) unlock(ctx context.Context) (remote.EncKey, error) {
	if key, err := a.session.RequireEncKey(); err == nil {
		return key, nil
	}

	v, err := a.openVault()
	if err != nil {
		return "", err
	}
	password, err := a.readSecret("Enter master password: ")
	if err != nil {
		return "", err
	}
	key, err := v.Unlock(ctx, password)
	if err != nil {
		return "", err
	}
	a.session.SetEncKey(key)
	return a.session.RequireEncKey()
}

// remoteContext bounds a store call by the configured timeout
func (a *app) remoteContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.RemoteTimeout)
}
