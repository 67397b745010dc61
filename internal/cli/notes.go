package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

type notesCmd struct {
	env   *Env
	query string
	width int
}

func (*notesCmd) Name() string     { return "notes" }
func (*notesCmd) Synopsis() string { return "show notes rendered for the terminal" }
func (*notesCmd) Usage() string {
	return `dashctl notes [-q <text>] [-width <cols>]
`
}

func (c *notesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Only show notes containing this text.")
	f.IntVar(&c.width, "width", 80, "Word wrap width.")
}

func (c *notesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	notes, err := c.env.Svc.Notes(ctx, c.env.Session, c.query)
	if err != nil {
		return c.env.fail(err)
	}
	if len(notes) == 0 {
		fmt.Fprintln(c.env.Out, "No notes.")
		return subcommands.ExitSuccess
	}

	theme, err := c.env.Svc.Theme(ctx, c.env.Session)
	if err != nil {
		return c.env.fail(err)
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(c.width),
	)
	if err != nil {
		return c.env.fail(err)
	}

	var md strings.Builder
	for i, note := range notes {
		if i > 0 {
			md.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&md, "## %s\n\n_%s · %s_\n\n%s\n", note.Title, note.Date.Format("2006-01-02 15:04"), note.ID, note.Content)
	}
	out, err := renderer.Render(md.String())
	if err != nil {
		return c.env.fail(err)
	}
	fmt.Fprint(c.env.Out, out)
	return subcommands.ExitSuccess
}

type addNoteCmd struct {
	env   *Env
	title string
}

func (*addNoteCmd) Name() string     { return "add-note" }
func (*addNoteCmd) Synopsis() string { return "create a note" }
func (*addNoteCmd) Usage() string    { return "dashctl add-note -title <title> <content>\n" }

func (c *addNoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Note title.")
}

func (c *addNoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	note, err := c.env.Svc.CreateNote(ctx, c.env.Session, c.title, joined(f))
	if err != nil {
		return c.env.fail(err)
	}
	fmt.Fprintf(c.env.Out, "Added %s\n", note.ID)
	return subcommands.ExitSuccess
}
