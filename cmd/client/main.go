// Command bookshelf-client searches Google Books and manages the books saved to a
// bookshelf account from the terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"bookshelf/internal/books"
	"bookshelf/internal/client/api"
	"bookshelf/internal/client/localstore"
	"bookshelf/internal/client/search"
	"bookshelf/pkg/log"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const defaultStatePath = "bookshelf.db"

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type client struct {
	in    *bufio.Reader
	out   io.Writer
	logs  *zap.SugaredLogger
	state *localstore.Store
	api   *api.Client
	books *books.Client
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	c := &client{
		in:  bufio.NewReader(in),
		out: out,
	}

	return &cli.App{
		Name:   "bookshelf-client",
		Usage:  "search Google Books and keep a list of saved books",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "bookshelf GraphQL endpoint",
				EnvVars: []string{"BOOKSHELF_SERVER"},
				Value:   api.DefaultEndpoint,
			},
			&cli.StringFlag{
				Name:    "books-api",
				Usage:   "Google Books API base URL",
				EnvVars: []string{"BOOKS_API_URL"},
				Value:   books.DefaultBaseURL,
			},
			&cli.StringFlag{
				Name:    "state",
				Usage:   "path of the local state database",
				EnvVars: []string{"BOOKSHELF_STATE"},
				Value:   defaultStatePath,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level written to stderr",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "warn",
			},
		},
		Before: c.open,
		After:  c.close,
		Commands: []*cli.Command{
			{
				Name:  "signup",
				Usage: "create an account and log in",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}},
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}},
				},
				Action: c.signup,
			},
			{
				Name:  "login",
				Usage: "log in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}},
				},
				Action: c.login,
			},
			{
				Name:   "logout",
				Usage:  "forget the stored token",
				Action: c.logout,
			},
			{
				Name:   "me",
				Usage:  "show the logged in account and its saved books",
				Action: c.me,
			},
			{
				Name:      "remove",
				Usage:     "remove a saved book",
				ArgsUsage: "<bookId>",
				Action:    c.remove,
			},
			{
				Name:   "shell",
				Usage:  "interactive search and save",
				Action: c.shell,
			},
		},
	}
}

func (c *client) open(cctx *cli.Context) error {
	c.logs = log.NewZapLoggerTo("bookshelf-client", log.ParseLevel(cctx.String("log-level")), os.Stderr)

	state, err := localstore.Open(cctx.Context, cctx.String("state"))
	if err != nil {
		return fmt.Errorf("open local state: %w", err)
	}
	c.state = state

	c.api = api.NewClient(cctx.String("server"), nil, state)
	c.books = books.NewClient(cctx.String("books-api"), nil)
	return nil
}

func (c *client) close(*cli.Context) error {
	if c.logs != nil {
		defer func() { _ = c.logs.Sync() }()
	}
	if c.state == nil {
		return nil
	}
	return c.state.Close()
}

func (c *client) session(ctx context.Context) *search.Session {
	sess := search.NewSession(c.logs, c.books, c.api, c.state)
	if err := sess.Load(ctx); err != nil {
		c.logs.Warnw("failed to load saved books", "error", err)
	}
	return sess
}
