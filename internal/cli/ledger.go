package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/state"
	"github.com/google/subcommands"
)

type ledgerCmd struct{ env *Env }

func (*ledgerCmd) Name() string           { return "ledger" }
func (*ledgerCmd) Synopsis() string       { return "list income and expenses with totals" }
func (*ledgerCmd) Usage() string          { return "dashctl ledger\n" }
func (*ledgerCmd) SetFlags(*flag.FlagSet) {}

func (c *ledgerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	entries, err := c.env.Svc.Entries(ctx, c.env.Session)
	if err != nil {
		return c.env.fail(err)
	}
	summary, err := c.env.Svc.Summary(ctx, c.env.Session)
	if err != nil {
		return c.env.fail(err)
	}

	w := tabwriter.NewWriter(c.env.Out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		sign := "-"
		if e.Type == models.EntryIncome {
			sign = "+"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%s\t%s\n",
			e.Date.Format("2006-01-02"), e.Description, e.Category, sign,
			strconv.FormatFloat(e.Amount, 'f', 2, 64), e.ID)
	}
	fmt.Fprintf(w, "\nIncome\t%s\n", summary.Formatted.Income)
	fmt.Fprintf(w, "Expense\t%s\n", summary.Formatted.Expense)
	fmt.Fprintf(w, "Balance\t%s\n", summary.Formatted.NetBalance)
	w.Flush()
	return subcommands.ExitSuccess
}

type addEntryCmd struct {
	env      *Env
	kind     string
	category string
}

func (*addEntryCmd) Name() string     { return "add-entry" }
func (*addEntryCmd) Synopsis() string { return "record an income or expense" }
func (*addEntryCmd) Usage() string {
	return `dashctl add-entry [-type expense|income] [-category <name>] <amount> <description>
`
}

func (c *addEntryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", models.EntryExpense, "Entry type: expense or income.")
	f.StringVar(&c.category, "category", state.DefaultCategory, "Entry category.")
}

func (c *addEntryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		return usageError(c.env, c.Usage())
	}
	amount, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		return c.env.fail(state.ErrInvalidAmount)
	}
	entry, err := c.env.Svc.AddEntry(ctx, c.env.Session, state.EntryInput{
		Description: strings.Join(f.Args()[1:], " "),
		Category:    c.category,
		Amount:      amount,
		Type:        c.kind,
	})
	if err != nil {
		return c.env.fail(err)
	}
	fmt.Fprintf(c.env.Out, "Added %s\n", entry.ID)
	return subcommands.ExitSuccess
}

type rmEntryCmd struct{ env *Env }

func (*rmEntryCmd) Name() string           { return "rm-entry" }
func (*rmEntryCmd) Synopsis() string       { return "delete a ledger entry" }
func (*rmEntryCmd) Usage() string          { return "dashctl rm-entry <id>\n" }
func (*rmEntryCmd) SetFlags(*flag.FlagSet) {}

func (c *rmEntryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := oneArg(f)
	if !ok {
		return usageError(c.env, c.Usage())
	}
	if err := c.env.Svc.DeleteEntry(ctx, c.env.Session, id); err != nil {
		return c.env.fail(err)
	}
	return subcommands.ExitSuccess
}

type exportCmd struct {
	env    *Env
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the balance sheet as CSV" }
func (*exportCmd) Usage() string {
	return `dashctl export [-o <file>]

  Writes the CSV balance sheet to the file, or to stdout when -o is empty.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sheet, err := c.env.Svc.ExportCSV(ctx, c.env.Session)
	if err != nil {
		return c.env.fail(err)
	}
	if c.output == "" {
		_, _ = c.env.Out.Write(sheet)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, sheet, 0o600); err != nil {
		return c.env.fail(err)
	}
	fmt.Fprintf(c.env.Out, "Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
