package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/app"
	"github.com/luminark/holdings/internal/format"
	"github.com/luminark/holdings/internal/models"
)

type summaryCmd struct {
	base
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio totals in IDR" }
func (*summaryCmd) Usage() string {
	return `holdings summary

  Displays total capital, value, profit, loss, ROI and cash. Foreign
  current values are converted to IDR.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.withApp(ctx, func(a *app.App) subcommands.ExitStatus {
		state, err := a.Investments.ExportState(ctx)
		if err != nil {
			return c.fail("loading portfolio: %v", err)
		}
		snap := a.Portfolio.Aggregate(ctx, state.Investments)
		idr := func(d decimal.Decimal) string { return format.Currency(d, models.BaseCurrency) }

		var b strings.Builder
		b.WriteString("# Portfolio summary\n\n")
		b.WriteString("| | |\n|---|---:|\n")
		fmt.Fprintf(&b, "| Investments | %d (%d active) |\n", len(state.Investments), state.ActiveCount())
		fmt.Fprintf(&b, "| Total capital | %s |\n", idr(snap.TotalCapital))
		fmt.Fprintf(&b, "| Total value | %s |\n", idr(snap.TotalValue))
		fmt.Fprintf(&b, "| Total profit | %s |\n", idr(snap.TotalProfit))
		fmt.Fprintf(&b, "| Total loss | %s |\n", idr(snap.TotalLoss))
		fmt.Fprintf(&b, "| Net profit | %s |\n", idr(snap.NetProfit))
		fmt.Fprintf(&b, "| ROI | %s |\n", format.Percent(snap.ROI()))
		fmt.Fprintf(&b, "| Cash | %s |\n", idr(state.Cash))
		c.printMarkdown(b.String())
		return subcommands.ExitSuccess
	})
}

type categoriesCmd struct {
	base
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display per-category statistics" }
func (*categoriesCmd) Usage() string {
	return `holdings categories

  Displays count, capital, value and profit per category, in order of
  first appearance. Amounts are in each investment's own currency.
`
}

func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (c *categoriesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.withApp(ctx, func(a *app.App) subcommands.ExitStatus {
		state, err := a.Investments.ExportState(ctx)
		if err != nil {
			return c.fail("loading portfolio: %v", err)
		}
		stats := a.Portfolio.CategoryStats(ctx, state.Investments)

		var b strings.Builder
		b.WriteString("# Categories\n\n")
		if len(stats) == 0 {
			b.WriteString("No investments yet.\n")
			c.printMarkdown(b.String())
			return subcommands.ExitSuccess
		}
		b.WriteString("| Category | Count | Capital | Value | Profit | % |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|\n")
		for _, s := range stats {
			fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
				escapeCell(string(s.Category)),
				s.Count,
				format.Number(s.TotalCapital, 0),
				format.Number(s.TotalValue, 0),
				format.Number(s.Profit, 0),
				format.Percent(s.ProfitPercentage))
		}
		c.printMarkdown(b.String())
		return subcommands.ExitSuccess
	})
}

type cashCmd struct {
	base
	set string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "display or set the cash balance" }
func (*cashCmd) Usage() string {
	return `holdings cash [-set <amount>]

  Displays the uninvested cash balance, or replaces it with -set.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "New cash balance in IDR")
}

func (c *cashCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var amount decimal.Decimal
	if c.set != "" {
		var err error
		if amount, err = decimal.NewFromString(c.set); err != nil {
			fmt.Fprintf(c.errOut, "Error: invalid amount %q\n", c.set)
			return subcommands.ExitUsageError
		}
	}

	return c.withApp(ctx, func(a *app.App) subcommands.ExitStatus {
		if c.set != "" {
			if err := a.Investments.SetCash(ctx, amount); err != nil {
				return c.fail("setting cash: %v", err)
			}
		}
		cash, err := a.Investments.GetCash(ctx)
		if err != nil {
			return c.fail("reading cash: %v", err)
		}
		fmt.Fprintln(c.out, format.Currency(cash, models.BaseCurrency))
		return subcommands.ExitSuccess
	})
}
