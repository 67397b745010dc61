// Package cli implements the dashctl subcommands on top of the service layer.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Dan9191/unidash/internal/service"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/google/subcommands"
)

// Env is what every command operates on.
type Env struct {
	Svc     *service.Service
	Session session.Session
	Out     io.Writer
	Err     io.Writer
}

// Register adds every command to c.
func Register(c *subcommands.Commander, env *Env) {
	c.Register(&tasksCmd{env: env}, "tasks")
	c.Register(&addTaskCmd{env: env}, "tasks")
	c.Register(&toggleTaskCmd{env: env}, "tasks")
	c.Register(&rmTaskCmd{env: env}, "tasks")

	c.Register(&ledgerCmd{env: env}, "ledger")
	c.Register(&addEntryCmd{env: env}, "ledger")
	c.Register(&rmEntryCmd{env: env}, "ledger")
	c.Register(&exportCmd{env: env}, "ledger")

	c.Register(&notesCmd{env: env}, "notes")
	c.Register(&addNoteCmd{env: env}, "notes")

	c.Register(&themeCmd{env: env}, "settings")
	c.Register(&clearCmd{env: env}, "settings")
}

func (e *Env) fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(e.Err, "error:", err)
	return subcommands.ExitFailure
}

// oneArg returns the single positional argument of f.
func oneArg(f *flag.FlagSet) (string, bool) {
	if f.NArg() != 1 || strings.TrimSpace(f.Arg(0)) == "" {
		return "", false
	}
	return f.Arg(0), true
}

// joined returns the positional arguments as one string.
func joined(f *flag.FlagSet) string {
	return strings.TrimSpace(strings.Join(f.Args(), " "))
}

func usageError(e *Env, usage string) subcommands.ExitStatus {
	fmt.Fprintf(e.Err, "usage: %s", usage)
	return subcommands.ExitUsageError
}
