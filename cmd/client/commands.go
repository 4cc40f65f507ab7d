package main

import (
	"errors"
	"fmt"
	"io"

	"bookshelf/internal/client/api"
	"bookshelf/internal/models"

	"github.com/urfave/cli/v2"
)

func (c *client) signup(cctx *cli.Context) error {
	username, err := c.flagOrPrompt(cctx, "username", "Username")
	if err != nil {
		return err
	}
	email, err := c.flagOrPrompt(cctx, "email", "Email")
	if err != nil {
		return err
	}
	password, err := c.passwordFlagOrPrompt(cctx)
	if err != nil {
		return err
	}

	result, err := c.api.AddUser(cctx.Context, username, email, password)
	if err != nil {
		return err
	}
	return c.storeToken(cctx, result, "Signed up")
}

func (c *client) login(cctx *cli.Context) error {
	email, err := c.flagOrPrompt(cctx, "email", "Email")
	if err != nil {
		return err
	}
	password, err := c.passwordFlagOrPrompt(cctx)
	if err != nil {
		return err
	}

	result, err := c.api.Login(cctx.Context, email, password)
	if err != nil {
		return err
	}
	return c.storeToken(cctx, result, "Logged in")
}

func (c *client) storeToken(cctx *cli.Context, result api.AuthResult, verb string) error {
	if err := c.state.SetToken(cctx.Context, result.Token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	ids := make([]string, 0, len(result.User.SavedBooks))
	for _, b := range result.User.SavedBooks {
		ids = append(ids, b.BookID)
	}
	if err := c.state.SetSavedBookIDs(cctx.Context, ids); err != nil {
		c.logs.Warnw("failed to store saved books", "error", err)
	}

	fmt.Fprintf(c.out, "%s as %s\n", verb, result.User.Username)
	return nil
}

func (c *client) logout(cctx *cli.Context) error {
	if err := c.state.ClearToken(cctx.Context); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	fmt.Fprintln(c.out, "Logged out")
	return nil
}

func (c *client) me(cctx *cli.Context) error {
	user, err := c.api.Me(cctx.Context)
	if err != nil {
		return err
	}

	printUser(c.out, user)
	return nil
}

func (c *client) remove(cctx *cli.Context) error {
	bookID := cctx.Args().First()
	if bookID == "" {
		return errors.New("usage: remove <bookId>")
	}

	sess := c.session(cctx.Context)
	if !sess.Remove(cctx.Context, bookID) {
		return fmt.Errorf("could not remove book %s", bookID)
	}
	fmt.Fprintf(c.out, "Removed %s\n", bookID)
	return nil
}

func (c *client) shell(cctx *cli.Context) error {
	sess := c.session(cctx.Context)
	defer func() {
		if err := sess.Close(cctx.Context); err != nil {
			c.logs.Errorw("failed to persist saved books", "error", err)
		}
	}()

	runShell(cctx.Context, sess, c.in, c.out)
	return nil
}

func printUser(w io.Writer, user models.User) {
	fmt.Fprintf(w, "%s <%s>\n", user.Username, user.Email)
	if user.BookCount() == 0 {
		fmt.Fprintln(w, "You have no saved books!")
		return
	}

	noun := "books"
	if user.BookCount() == 1 {
		noun = "book"
	}
	fmt.Fprintf(w, "Viewing %d saved %s:\n", user.BookCount(), noun)
	for _, b := range user.SavedBooks {
		fmt.Fprintf(w, "  %s  %s\n", b.BookID, describeBook(b))
	}
}

func describeBook(b models.SavedBook) string {
	if len(b.Authors) == 0 {
		return b.Title
	}
	return fmt.Sprintf("%s by %s", b.Title, joinAuthors(b.Authors))
}
