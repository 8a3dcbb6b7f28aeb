package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/luminark/holdings/internal/app"
)

type exportCmd struct {
	base
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio as xlsx, json, md or html" }
func (*exportCmd) Usage() string {
	return `holdings export [-format xlsx|json|md|html] [-o <file>]

  Writes the portfolio to a file. Without -o the file is named
  luminark-portfolio-<date>.<format> in the current directory; -o - writes
  to standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "xlsx", "Export format: xlsx, json, md or html")
	f.StringVar(&c.output, "o", "", "Output file, - for standard output")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.format {
	case "xlsx", "json", "md", "html":
	default:
		fmt.Fprintf(c.errOut, "Error: unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	return c.withApp(ctx, func(a *app.App) subcommands.ExitStatus {
		name := c.output
		if name == "" {
			name = a.Export.FileName(c.format)
		}

		var w io.Writer = c.out
		if name != "-" {
			f, err := os.Create(name)
			if err != nil {
				return c.fail("creating %s: %v", name, err)
			}
			defer f.Close()
			w = f
		}

		if err := c.write(ctx, a, w); err != nil {
			return c.fail("exporting %s: %v", c.format, err)
		}
		if name != "-" {
			fmt.Fprintf(c.errOut, "Wrote %s\n", name)
		}
		return subcommands.ExitSuccess
	})
}

func (c *exportCmd) write(ctx context.Context, a *app.App, w io.Writer) error {
	switch c.format {
	case "xlsx":
		return a.Export.WriteSpreadsheet(ctx, w)
	case "json":
		return a.Export.WriteJSON(ctx, w)
	case "md":
		md, err := a.Export.Markdown(ctx)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	default:
		page, err := a.Export.HTML(ctx)
		if err != nil {
			return err
		}
		_, err = w.Write(page)
		return err
	}
}

type backupsCmd struct {
	base
	restore  string
	snapshot bool
}

func (*backupsCmd) Name() string     { return "backups" }
func (*backupsCmd) Synopsis() string { return "list, take or restore daily snapshots" }
func (*backupsCmd) Usage() string {
	return `holdings backups [-snapshot] [-restore <YYYY-MM-DD>]

  Lists the retained daily snapshots, oldest first. -snapshot writes
  today's snapshot; -restore makes a snapshot the current state.
`
}

func (c *backupsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.restore, "restore", "", "Day of the snapshot to restore")
	f.BoolVar(&c.snapshot, "snapshot", false, "Write today's snapshot")
}

func (c *backupsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.restore != "" {
		if _, err := time.Parse("2006-01-02", c.restore); err != nil {
			fmt.Fprintf(c.errOut, "Error: invalid day %q, expected YYYY-MM-DD\n", c.restore)
			return subcommands.ExitUsageError
		}
	}

	return c.withApp(ctx, func(a *app.App) subcommands.ExitStatus {
		switch {
		case c.restore != "":
			state, err := a.Investments.RestoreBackup(ctx, c.restore)
			if err != nil {
				return c.fail("restoring %s: %v", c.restore, err)
			}
			if state == nil {
				return c.fail("no snapshot for %s", c.restore)
			}
			fmt.Fprintf(c.out, "Restored %s: %d investments, %d transactions\n",
				c.restore, len(state.Investments), len(state.Transactions))
			return subcommands.ExitSuccess
		case c.snapshot:
			if err := a.Investments.SnapshotState(ctx); err != nil {
				return c.fail("writing snapshot: %v", err)
			}
		}

		days, err := a.Investments.ListBackups(ctx)
		if err != nil {
			return c.fail("listing snapshots: %v", err)
		}
		if len(days) == 0 {
			fmt.Fprintln(c.out, "No snapshots.")
		}
		for _, day := range days {
			fmt.Fprintln(c.out, day)
		}
		return subcommands.ExitSuccess
	})
}
