package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/BlankTuber/Tauri-PwdMngr/internal/ui"
)

var errCancelled = errors.New("cancelled")

// readTerminalSecret reads without echo when stdin is a terminal and falls
// back to a plain line otherwise
func (a *app) readTerminalSecret(prompt string) (string, error) {
	ui.PrintPrompt(a.out, prompt)
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.readLine()
	}
	bytePassword, err := term.ReadPassword(fd)
	fmt.Fprintln(a.out) // Add a newline after password input
	if err != nil {
		return "", err
	}
	return string(bytePassword), nil
}

// readLine reads a trimmed line; EOF with no input is an error
func (a *app) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask prompts for a value, keeping current when the answer is empty
func (a *app) ask(prompt, current string) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	ui.PrintPrompt(a.out, prompt+": ")
	answer, err := a.readLine()
	if err != nil {
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return current, nil
	}
	return answer, nil
}

// confirm asks a yes/no question; anything but y or yes declines
func (a *app) confirm(question string) bool {
	ui.PrintPrompt(a.out, question+" (y/n): ")
	answer, err := a.readLine()
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
