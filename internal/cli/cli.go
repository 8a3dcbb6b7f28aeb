// Package cli implements the holdings command line tool on top of the same
// store and services as the HTTP server.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/luminark/holdings/internal/app"
)

// Opener builds the application for one command invocation
type Opener func(ctx context.Context) (*app.App, error)

// base is shared by every subcommand
type base struct {
	open   Opener
	out    io.Writer
	errOut io.Writer
	render func(md string) (string, error)
}

// Register adds every subcommand to c. Markdown output is rendered for the terminal with glamour.
func Register(c *subcommands.Commander, open Opener, out, errOut io.Writer) {
	b := base{open: open, out: out, errOut: errOut, render: renderTerminal}

	c.Register(&summaryCmd{base: b}, "portfolio")
	c.Register(&categoriesCmd{base: b}, "portfolio")
	c.Register(&cashCmd{base: b}, "portfolio")
	c.Register(&roiCmd{base: b}, "tools")
	c.Register(&convertCmd{base: b}, "tools")
	c.Register(&exportCmd{base: b}, "data")
	c.Register(&backupsCmd{base: b}, "data")
}

func renderTerminal(md string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func (b *base) printMarkdown(md string) {
	if b.render != nil {
		if rendered, err := b.render(md); err == nil {
			md = rendered
		}
	}
	fmt.Fprint(b.out, md)
}

func (b *base) fail(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(b.errOut, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// withApp opens the application, runs fn and closes it again
func (b *base) withApp(ctx context.Context, fn func(a *app.App) subcommands.ExitStatus) subcommands.ExitStatus {
	a, err := b.open(ctx)
	if err != nil {
		return b.fail("%v", err)
	}
	defer a.Close()
	return fn(a)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
