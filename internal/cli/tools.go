package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/app"
	"github.com/luminark/holdings/internal/format"
	"github.com/luminark/holdings/internal/models"
)

type roiCmd struct {
	base
	initial string
	final   string
}

func (*roiCmd) Name() string     { return "roi" }
func (*roiCmd) Synopsis() string { return "compute the return on investment" }
func (*roiCmd) Usage() string {
	return `holdings roi -initial <amount> -final <amount>

  Prints the profit and (final - initial) / initial * 100. The ROI of a
  zero initial amount is 0.
`
}

func (c *roiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.initial, "initial", "", "Initial investment")
	f.StringVar(&c.final, "final", "", "Final value")
}

func (c *roiCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initial, err := decimal.NewFromString(c.initial)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: invalid -initial %q\n", c.initial)
		return subcommands.ExitUsageError
	}
	final, err := decimal.NewFromString(c.final)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: invalid -final %q\n", c.final)
		return subcommands.ExitUsageError
	}

	r := models.NewROIResult(initial, final)
	fmt.Fprintf(c.out, "Profit: %s\n", format.Currency(r.Profit, models.BaseCurrency))
	fmt.Fprintf(c.out, "ROI: %s\n", format.Percent(r.ROI))
	return subcommands.ExitSuccess
}

type convertCmd struct {
	base
	amount   string
	currency string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount into IDR" }
func (*convertCmd) Usage() string {
	return `holdings convert -amount <amount> -currency <code>

  Converts with the configured rate source. When no rate is available
  the fallback rate is used.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to convert")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the amount")
}

func (c *convertCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: invalid -amount %q\n", c.amount)
		return subcommands.ExitUsageError
	}
	code := models.NormalizeCurrency(c.currency)

	return c.withApp(ctx, func(a *app.App) subcommands.ExitStatus {
		converted := a.Converter.ConvertToBase(ctx, amount, code)
		fmt.Fprintf(c.out, "%s = %s\n",
			format.Currency(amount, code),
			format.Currency(converted, a.Converter.BaseCurrency()))
		return subcommands.ExitSuccess
	})
}
