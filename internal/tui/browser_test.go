package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"explain/internal/topics"
)

func newTestStore(t *testing.T) *topics.Store {
	t.Helper()
	store := topics.NewStore(t.TempDir())
	_, err := store.Add([]topics.Topic{
		topics.New("Auth flow", topics.KindFile, "src/auth.py", "repo-overview"),
		topics.New("Login handler", topics.KindFunction, "src/auth.py:login", "repo-overview"),
		topics.New("Session layout", topics.KindGeneral, "sessions", ""),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return store
}

func TestNewBrowserListsPending(t *testing.T) {
	store := newTestStore(t)

	browser, err := NewBrowser(store)
	if err != nil {
		t.Fatalf("NewBrowser: %v", err)
	}

	if got := len(browser.list.Items()); got != 3 {
		t.Fatalf("items = %d, want 3", got)
	}

	first := browser.list.Items()[0].(topicItem)
	if first.Title() != "[file] src/auth.py" {
		t.Errorf("first item title = %q", first.Title())
	}
	if first.Description() != "Auth flow (from repo-overview)" {
		t.Errorf("first item description = %q", first.Description())
	}

	third := browser.list.Items()[2].(topicItem)
	if third.Description() != "Session layout" {
		t.Errorf("sourceless description = %q", third.Description())
	}
}

func TestBrowserSkipPersists(t *testing.T) {
	store := newTestStore(t)

	browser, err := NewBrowser(store)
	if err != nil {
		t.Fatalf("NewBrowser: %v", err)
	}

	model, _ := browser.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	browser = model.(*Browser)

	if got := len(browser.list.Items()); got != 2 {
		t.Errorf("items after skip = %d, want 2", got)
	}

	queue, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if queue[0].Status != topics.StatusSkipped {
		t.Errorf("first topic status = %q, want skipped", queue[0].Status)
	}
	if queue[1].Status != topics.StatusPending {
		t.Errorf("second topic status = %q, want pending", queue[1].Status)
	}
}

func TestBrowserSkipWithFilterApplied(t *testing.T) {
	store := newTestStore(t)

	browser, err := NewBrowser(store)
	if err != nil {
		t.Fatalf("NewBrowser: %v", err)
	}

	// Filter down to the third topic, apply the filter, then skip the
	// selection. The skip must land on the selected topic, not on
	// whatever sits at the same position in the full queue.
	// Drive the model the way the bubbletea runtime does: execute each
	// command returned by Update and deliver the resulting messages (the
	// list widget computes filter matches in a command and only applies
	// them when the FilterMatchesMsg comes back through Update).
	var model tea.Model = browser
	press := func(msg tea.KeyMsg) {
		var cmd tea.Cmd
		model, cmd = model.Update(msg)
		pending := []tea.Cmd{cmd}
		for len(pending) > 0 {
			next := pending[0]
			pending = pending[1:]
			if next == nil {
				continue
			}
			switch out := next().(type) {
			case tea.BatchMsg:
				pending = append(pending, out...)
			case list.FilterMatchesMsg:
				model, cmd = model.Update(out)
				pending = append(pending, cmd)
			}
		}
	}
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	for _, r := range "sessions" {
		press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	press(tea.KeyMsg{Type: tea.KeyEnter})
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	queue, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	byTarget := make(map[string]string, len(queue))
	for _, topic := range queue {
		byTarget[topic.Target] = topic.Status
	}
	if byTarget["sessions"] != topics.StatusSkipped {
		t.Errorf("filtered selection status = %q, want skipped", byTarget["sessions"])
	}
	if byTarget["src/auth.py"] != topics.StatusPending {
		t.Errorf("unrelated topic status = %q, want pending", byTarget["src/auth.py"])
	}
	if byTarget["src/auth.py:login"] != topics.StatusPending {
		t.Errorf("unrelated topic status = %q, want pending", byTarget["src/auth.py:login"])
	}
}

func TestBrowserQuit(t *testing.T) {
	store := newTestStore(t)

	browser, err := NewBrowser(store)
	if err != nil {
		t.Fatalf("NewBrowser: %v", err)
	}

	_, cmd := browser.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("command produced %T, want tea.QuitMsg", msg)
	}
}
