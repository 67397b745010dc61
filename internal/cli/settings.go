package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type themeCmd struct{ env *Env }

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show, set or toggle the theme" }
func (*themeCmd) Usage() string {
	return `dashctl theme [dark|light|toggle]
`
}
func (*themeCmd) SetFlags(*flag.FlagSet) {}

func (c *themeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		theme string
		err   error
	)
	switch f.Arg(0) {
	case "":
		theme, err = c.env.Svc.Theme(ctx, c.env.Session)
	case "toggle":
		theme, err = c.env.Svc.ToggleTheme(ctx, c.env.Session)
	default:
		theme, err = c.env.Svc.SetTheme(ctx, c.env.Session, f.Arg(0))
	}
	if err != nil {
		return c.env.fail(err)
	}
	fmt.Fprintln(c.env.Out, theme)
	return subcommands.ExitSuccess
}

type clearCmd struct {
	env *Env
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all dashboard data" }
func (*clearCmd) Usage() string {
	return `dashctl clear -yes

  Deletes every task, entry, note and preference. The account is kept.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the deletion.")
}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		return usageError(c.env, c.Usage())
	}
	if err := c.env.Svc.ClearData(ctx, c.env.Session); err != nil {
		return c.env.fail(err)
	}
	fmt.Fprintln(c.env.Out, "All data cleared.")
	return subcommands.ExitSuccess
}
