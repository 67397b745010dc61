package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type tasksCmd struct {
	env    *Env
	query  string
	filter string
}

func (*tasksCmd) Name() string     { return "tasks" }
func (*tasksCmd) Synopsis() string { return "list tasks" }
func (*tasksCmd) Usage() string {
	return `dashctl tasks [-q <text>] [-filter all|pending|completed]
`
}

func (c *tasksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Only show tasks whose title contains this text.")
	f.StringVar(&c.filter, "filter", "all", "Completion filter: all, pending or completed.")
}

func (c *tasksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tasks, err := c.env.Svc.Tasks(ctx, c.env.Session, c.query, c.filter)
	if err != nil {
		return c.env.fail(err)
	}
	if len(tasks) == 0 {
		fmt.Fprintln(c.env.Out, "No tasks.")
		return subcommands.ExitSuccess
	}
	w := tabwriter.NewWriter(c.env.Out, 0, 4, 2, ' ', 0)
	for _, task := range tasks {
		mark := "[ ]"
		if task.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", mark, task.Title, task.ID)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type addTaskCmd struct{ env *Env }

func (*addTaskCmd) Name() string           { return "add-task" }
func (*addTaskCmd) Synopsis() string       { return "add a task" }
func (*addTaskCmd) Usage() string          { return "dashctl add-task <title>\n" }
func (*addTaskCmd) SetFlags(*flag.FlagSet) {}

func (c *addTaskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	title := joined(f)
	if title == "" {
		return usageError(c.env, c.Usage())
	}
	task, err := c.env.Svc.AddTask(ctx, c.env.Session, title)
	if err != nil {
		return c.env.fail(err)
	}
	fmt.Fprintf(c.env.Out, "Added %s\n", task.ID)
	return subcommands.ExitSuccess
}

type toggleTaskCmd struct{ env *Env }

func (*toggleTaskCmd) Name() string           { return "toggle-task" }
func (*toggleTaskCmd) Synopsis() string       { return "mark a task done or pending" }
func (*toggleTaskCmd) Usage() string          { return "dashctl toggle-task <id>\n" }
func (*toggleTaskCmd) SetFlags(*flag.FlagSet) {}

func (c *toggleTaskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := oneArg(f)
	if !ok {
		return usageError(c.env, c.Usage())
	}
	task, err := c.env.Svc.ToggleTask(ctx, c.env.Session, id)
	if err != nil {
		return c.env.fail(err)
	}
	state := "pending"
	if task.Completed {
		state = "completed"
	}
	fmt.Fprintf(c.env.Out, "%s is now %s\n", task.Title, state)
	return subcommands.ExitSuccess
}

type rmTaskCmd struct{ env *Env }

func (*rmTaskCmd) Name() string           { return "rm-task" }
func (*rmTaskCmd) Synopsis() string       { return "delete a task" }
func (*rmTaskCmd) Usage() string          { return "dashctl rm-task <id>\n" }
func (*rmTaskCmd) SetFlags(*flag.FlagSet) {}

func (c *rmTaskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, ok := oneArg(f)
	if !ok {
		return usageError(c.env, c.Usage())
	}
	if err := c.env.Svc.DeleteTask(ctx, c.env.Session, id); err != nil {
		return c.env.fail(err)
	}
	return subcommands.ExitSuccess
}
