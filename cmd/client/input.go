package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// Seams for the terminal so prompts can be driven from tests.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

func (c *client) flagOrPrompt(cctx *cli.Context, flag, prompt string) (string, error) {
	if v := strings.TrimSpace(cctx.String(flag)); v != "" {
		return v, nil
	}
	return readLine(c.in, c.out, prompt)
}

func (c *client) passwordFlagOrPrompt(cctx *cli.Context) (string, error) {
	if v := cctx.String("password"); v != "" {
		return v, nil
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return readLine(c.in, c.out, "Password")
	}

	fmt.Fprint(c.out, "Password: ")
	pw, err := readPassword(fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

func readLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprintf(w, "%s: ", prompt)
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("read %s: %w", strings.ToLower(prompt), err)
	}
	return strings.TrimSpace(line), nil
}

func joinAuthors(authors []string) string {
	return strings.Join(authors, ", ")
}
