package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Dan9191/unidash/internal/export"
	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
	"github.com/google/go-cmp/cmp"
)

func TestTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	a, err := env.svc.AddTask(ctx, ana, "Buy milk")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	b, _ := env.svc.AddTask(ctx, ana, "Write report")
	if _, err := env.svc.AddTask(ctx, ana, "   "); !errors.Is(err, state.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}

	toggled, err := env.svc.ToggleTask(ctx, ana, a.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("toggle: %+v err=%v", toggled, err)
	}
	if _, err := env.svc.ToggleTask(ctx, ana, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	pending, _ := env.svc.Tasks(ctx, ana, "", models.FilterPending)
	if len(pending) != 1 || pending[0].ID != b.ID {
		t.Fatalf("unexpected pending tasks %+v", pending)
	}

	stats, _ := env.svc.TaskStats(ctx, ana)
	if diff := cmp.Diff(models.TaskStats{Total: 2, Pending: 1, Completed: 1}, stats); diff != "" {
		t.Fatalf("stats (-want +got):\n%s", diff)
	}

	ordered, err := env.svc.ReorderTasks(ctx, ana, []string{b.ID, a.ID})
	if err != nil || ordered[0].ID != b.ID {
		t.Fatalf("reorder: %+v err=%v", ordered, err)
	}

	if err := env.svc.DeleteTask(ctx, ana, "missing"); err != nil {
		t.Fatalf("deleting a missing task should be a no-op: %v", err)
	}
	if err := env.svc.DeleteTask(ctx, ana, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ := env.svc.Tasks(ctx, ana, "", "")
	if len(all) != 1 || all[0].ID != b.ID {
		t.Fatalf("unexpected tasks after delete %+v", all)
	}
}

func TestLedgerSummaryAndExport(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	if _, err := env.svc.ExportCSV(ctx, ana); !errors.Is(err, export.ErrNoData) {
		t.Fatalf("expected ErrNoData on empty ledger, got %v", err)
	}

	inputs := []state.EntryInput{
		{Description: "Salary", Category: "Work", Amount: 1500, Type: models.EntryIncome},
		{Description: "Rent, March", Category: "Home", Amount: 1234.5, Type: models.EntryExpense},
		{Description: "Coffee", Amount: 0.3},
	}
	for _, in := range inputs {
		if _, err := env.svc.AddEntry(ctx, ana, in); err != nil {
			t.Fatalf("add entry %q: %v", in.Description, err)
		}
	}
	if _, err := env.svc.AddEntry(ctx, ana, state.EntryInput{Description: "Bad", Amount: -1}); !errors.Is(err, state.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	summary, err := env.svc.Summary(ctx, ana)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := models.IncomeExpenseStats{Income: 1500, Expense: 1234.8, NetBalance: 265.2}
	if diff := cmp.Diff(want, summary.Totals); diff != "" {
		t.Fatalf("totals (-want +got):\n%s", diff)
	}
	if summary.Currency != "USD" || summary.Formatted.Expense != "$1,234.80" || summary.Formatted.NetBalance != "$265.20" {
		t.Fatalf("unexpected formatted summary %+v", summary)
	}

	sheet, err := env.svc.ExportCSV(ctx, ana)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.Contains(sheet, []byte(`"Rent, March"`)) {
		t.Fatalf("comma in description should be quoted:\n%s", sheet)
	}

	if err := env.svc.EmailExport(ctx, ana); err != nil {
		t.Fatalf("email export: %v", err)
	}
	if env.mailer.to != ana.Identity || !bytes.Equal(env.mailer.sheet, sheet) {
		t.Fatalf("mailer got to=%q sheet=%q", env.mailer.to, env.mailer.sheet)
	}
	if err := env.svc.EmailExport(ctx, session.Local()); !errors.Is(err, ErrNoRecipient) {
		t.Fatalf("expected ErrNoRecipient for local user, got %v", err)
	}

	entries, _ := env.svc.Entries(ctx, ana)
	if err := env.svc.DeleteEntry(ctx, ana, entries[0].ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	summary, _ = env.svc.Summary(ctx, ana)
	if summary.Totals.Income != 0 {
		t.Fatalf("income should drop to zero after deleting salary, got %v", summary.Totals.Income)
	}
}

func TestLedgerSummaryBalanceUsesRoundedTotals(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.svc.AddEntry(ctx, ana, state.EntryInput{Description: "Interest", Amount: 1.005, Type: models.EntryIncome})
	env.svc.AddEntry(ctx, ana, state.EntryInput{Description: "Fee", Amount: 0.004, Type: models.EntryExpense})

	summary, err := env.svc.Summary(ctx, ana)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := models.LedgerSummary{
		Currency: "USD",
		Totals:   models.IncomeExpenseStats{Income: 1.01, Expense: 0, NetBalance: 1.01},
		Formatted: models.FormattedStats{
			Income:     "$1.01",
			Expense:    "$0.00",
			NetBalance: "$1.01",
		},
	}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Fatalf("summary (-want +got):\n%s", diff)
	}
}

func TestNotesAndQuickNote(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.svc.CreateNote(ctx, ana, "Groceries", "- [ ] eggs\n- [x] milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, _ := env.svc.CreateNote(ctx, ana, "Ideas", "**bold** plan")
	if _, err := env.svc.CreateNote(ctx, ana, "", "x"); !errors.Is(err, state.ErrEmptyNote) {
		t.Fatalf("expected ErrEmptyNote, got %v", err)
	}

	notes, _ := env.svc.Notes(ctx, ana, "")
	if len(notes) != 2 || notes[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", notes)
	}
	found, _ := env.svc.Notes(ctx, ana, "EGGS")
	if len(found) != 1 || found[0].ID != first.ID {
		t.Fatalf("search mismatch %+v", found)
	}

	if _, err := env.svc.UpdateNote(ctx, ana, first.ID, "Groceries", "bread"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := env.svc.UpdateNote(ctx, ana, "missing", "a", "b"); !errors.Is(err, state.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}

	html, err := env.svc.NoteHTML(ctx, ana, second.ID)
	if err != nil || !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("html: %q err=%v", html, err)
	}

	if err := env.svc.DeleteNote(ctx, ana, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := env.svc.NoteHTML(ctx, ana, first.ID); !errors.Is(err, state.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound after delete, got %v", err)
	}

	quick, err := env.svc.SetQuickNote(ctx, ana, "héllo")
	if err != nil || quick.Chars != 5 {
		t.Fatalf("quick note: %+v err=%v", quick, err)
	}
	if got, _ := env.svc.QuickNote(ctx, ana); got.Text != "héllo" {
		t.Fatalf("quick note not persisted: %+v", got)
	}
}

func TestProfileThemeSettings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	profile, _ := env.svc.Profile(ctx, ana)
	if profile.Name != "ana" || profile.Status != state.StatusDefault {
		t.Fatalf("unexpected default profile %+v", profile)
	}

	name, status := "Ana Lovelace", "Shipping"
	profile, err := env.svc.UpdateProfile(ctx, ana, ProfileUpdate{Name: &name, Status: &status})
	if err != nil || profile.Name != name || profile.Status != status {
		t.Fatalf("update profile: %+v err=%v", profile, err)
	}
	blank := " "
	if _, err := env.svc.UpdateProfile(ctx, ana, ProfileUpdate{Name: &blank}); !errors.Is(err, state.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	profile, err = env.svc.UploadAvatar(ctx, ana, png)
	if err != nil || !strings.HasPrefix(profile.Avatar, "data:image/png;base64,") {
		t.Fatalf("avatar: %q err=%v", profile.Avatar, err)
	}
	if _, err := env.svc.UploadAvatar(ctx, ana, []byte("plain text")); !errors.Is(err, ErrAvatarType) {
		t.Fatalf("expected ErrAvatarType, got %v", err)
	}
	if _, err := env.svc.UploadAvatar(ctx, ana, make([]byte, MaxAvatarBytes+1)); !errors.Is(err, ErrAvatarTooLarge) {
		t.Fatalf("expected ErrAvatarTooLarge, got %v", err)
	}

	if theme, _ := env.svc.Theme(ctx, ana); theme != models.ThemeDark {
		t.Fatalf("expected dark default, got %q", theme)
	}
	if theme, _ := env.svc.ToggleTheme(ctx, ana); theme != models.ThemeLight {
		t.Fatalf("expected light after toggle, got %q", theme)
	}
	if _, err := env.svc.SetTheme(ctx, ana, "sepia"); !errors.Is(err, state.ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}

	settings, err := env.svc.SaveSettings(ctx, ana, models.Settings{City: " Paris "})
	if err != nil || settings.City != "Paris" {
		t.Fatalf("settings: %+v err=%v", settings, err)
	}
	settings, _ = env.svc.SaveSettings(ctx, ana, models.Settings{})
	if settings.City != "Bengaluru" {
		t.Fatalf("empty city should fall back to default, got %q", settings.City)
	}
}

func TestClearDataKeepsAccountsAndOtherUsers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	bob := session.Session{Identity: "bob@example.com"}

	if _, err := env.svc.Register(ctx, ana.Identity, "Ana", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	env.svc.AddTask(ctx, ana, "mine")
	env.svc.AddTask(ctx, bob, "his")
	env.svc.SetTheme(ctx, ana, models.ThemeLight)

	if err := env.svc.ClearData(ctx, ana); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if tasks, _ := env.svc.Tasks(ctx, ana, "", ""); len(tasks) != 0 {
		t.Fatalf("ana's tasks should be gone, got %+v", tasks)
	}
	if theme, _ := env.svc.Theme(ctx, ana); theme != models.ThemeDark {
		t.Fatalf("theme should reset to dark, got %q", theme)
	}
	if tasks, _ := env.svc.Tasks(ctx, bob, "", ""); len(tasks) != 1 {
		t.Fatalf("bob's tasks must survive, got %+v", tasks)
	}
	if _, err := env.svc.Login(ctx, ana.Identity, "pw"); err != nil {
		t.Fatalf("account must survive a data clear: %v", err)
	}
}

func TestDashboardAndWeather(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
		env.svc.AddTask(ctx, ana, title)
	}
	tasks, _ := env.svc.Tasks(ctx, ana, "", "")
	env.svc.ToggleTask(ctx, ana, tasks[0].ID)
	env.svc.AddEntry(ctx, ana, state.EntryInput{Description: "Lunch", Amount: 12.5})
	env.svc.SaveSettings(ctx, ana, models.Settings{City: "Oslo"})

	dash, err := env.svc.Dashboard(ctx, ana)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.PendingTasks != 5 || len(dash.TopTasks) != state.MiniListSize || dash.TotalExpense != "$12.50" {
		t.Fatalf("unexpected dashboard %+v", dash)
	}
	if dash.Greeting != "Good Morning" || !strings.HasPrefix(dash.Date, "Sunday, March 1, 2026") {
		t.Fatalf("unexpected greeting %q / date %q", dash.Greeting, dash.Date)
	}
	if dash.Weather.City != "Oslo" || dash.Weather.Value != "30°C" {
		t.Fatalf("dashboard should look up the user's city: %+v", dash.Weather)
	}

	env.svc.Dashboard(ctx, ana)
	if len(env.weather.lookups) != 1 {
		t.Fatalf("second dashboard should reuse the cached snapshot, lookups=%v", env.weather.lookups)
	}

	if _, err := env.svc.SaveSettings(ctx, ana, models.Settings{City: "Oslo", Timezone: "Mars/Olympus"}); !errors.Is(err, ErrInvalidZone) {
		t.Fatalf("expected ErrInvalidZone, got %v", err)
	}
	if _, err := env.svc.SaveSettings(ctx, ana, models.Settings{City: "Oslo", Timezone: "Asia/Kolkata"}); err != nil {
		t.Fatalf("save timezone: %v", err)
	}
	dash, _ = env.svc.Dashboard(ctx, ana)
	if dash.Greeting != "Good Afternoon" {
		t.Fatalf("09:00 UTC is afternoon in Kolkata, got %q", dash.Greeting)
	}

	snap, err := env.svc.Weather(ctx, ana, "Lima")
	if err != nil || snap.City != "Lima" {
		t.Fatalf("weather: %+v err=%v", snap, err)
	}
}
