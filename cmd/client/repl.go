package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookshelf/internal/client/search"
)

const shellHelp = `Commands:
  search <terms>      search Google Books
  save <n|bookId>     save a result (requires login)
  remove <bookId>     remove a saved book
  saved               list saved book ids
  help                show this help
  quit                leave the shell`

// runShell reads commands line by line until EOF or quit. Command failures are
// reported and logged by the session, the loop keeps going.
func runShell(ctx context.Context, sess *search.Session, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, shellHelp)

	for {
		fmt.Fprint(out, "bookshelf> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help", "?":
			fmt.Fprintln(out, shellHelp)

		case "search", "s":
			if len(args) == 0 {
				fmt.Fprintln(out, "usage: search <terms>")
				continue
			}
			sess.SetInput(strings.Join(args, " "))
			sess.Submit(ctx)
			if sess.Input() != "" {
				fmt.Fprintln(out, "Search failed, try again.")
				continue
			}
			printResults(out, sess)

		case "save":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: save <n|bookId>")
				continue
			}
			if !sess.LoggedIn(ctx) {
				fmt.Fprintln(out, "Log in to save books.")
				continue
			}
			bookID := resolveBookID(sess, args[0])
			if sess.Save(ctx, bookID) {
				fmt.Fprintf(out, "Saved %s\n", bookID)
			} else {
				fmt.Fprintf(out, "Could not save %s\n", bookID)
			}

		case "remove", "rm":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: remove <bookId>")
				continue
			}
			if sess.Remove(ctx, args[0]) {
				fmt.Fprintf(out, "Removed %s\n", args[0])
			} else {
				fmt.Fprintf(out, "Could not remove %s\n", args[0])
			}

		case "saved":
			ids := sess.SavedIDs()
			if len(ids) == 0 {
				fmt.Fprintln(out, "You have no saved books!")
				continue
			}
			for _, id := range ids {
				fmt.Fprintln(out, "  "+id)
			}

		case "quit", "exit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		}
	}
}

func printResults(out io.Writer, sess *search.Session) {
	results := sess.Results()
	if len(results) == 0 {
		fmt.Fprintln(out, "No results.")
		return
	}

	fmt.Fprintf(out, "Viewing %d results:\n", len(results))
	for i, b := range results {
		marker := ""
		if sess.IsSaved(b.BookID) {
			marker = " (saved)"
		}
		fmt.Fprintf(out, "%2d. %s  %s%s\n", i+1, b.BookID, describeBook(b), marker)
	}
}

// resolveBookID accepts a 1-based result number or a raw book id.
func resolveBookID(sess *search.Session, arg string) string {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg
	}
	results := sess.Results()
	if n < 1 || n > len(results) {
		return arg
	}
	return results[n-1].BookID
}
