// Package tui provides the interactive topic queue browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"explain/internal/topics"
)

// topicItem adapts a pending topic to the list widget.
type topicItem struct {
	topic topics.Topic
}

func (i topicItem) Title() string {
	return fmt.Sprintf("[%s] %s", i.topic.Kind, i.topic.Target)
}

func (i topicItem) Description() string {
	if i.topic.Source != "" {
		return fmt.Sprintf("%s (from %s)", i.topic.Title, i.topic.Source)
	}
	return i.topic.Title
}

func (i topicItem) FilterValue() string {
	return i.topic.Title + " " + i.topic.Target
}

// Browser is the interactive queue browser. It lists pending topics and
// lets the user skip them; pending-relative positions stay aligned with
// the store because the list holds only pending topics in queue order.
type Browser struct {
	store  *topics.Store
	list   list.Model
	status string
	err    error

	statusStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewBrowser creates a browser over the store's pending topics.
func NewBrowser(store *topics.Store) (*Browser, error) {
	queue, err := store.Load()
	if err != nil {
		return nil, err
	}

	var items []list.Item
	for _, topic := range queue {
		if topic.Status == topics.StatusPending {
			items = append(items, topicItem{topic: topic})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 80, 24)
	l.Title = "Exploration queue"
	l.SetShowStatusBar(false)

	return &Browser{
		store: store,
		list:  l,
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
	}, nil
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys while the user is filtering.
		if b.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit

		case "s":
			b.skipSelected()
			return b, nil
		}

	case tea.WindowSizeMsg:
		b.list.SetSize(msg.Width, msg.Height-1)
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

// View implements tea.Model.
func (b *Browser) View() string {
	view := b.list.View()
	if b.err != nil {
		return view + "\n" + b.errorStyle.Render("Error: "+b.err.Error())
	}
	if b.status != "" {
		return view + "\n" + b.statusStyle.Render(b.status)
	}
	return view + "\n" + "s skip · q quit"
}

// skipSelected marks the selected topic skipped in the store and drops it
// from the list. The selection must be resolved to its position in the
// underlying item set: with a filter applied, Index is relative to the
// visible items and would address the wrong topic.
func (b *Browser) skipSelected() {
	index := b.list.GlobalIndex()
	if index < 0 || index >= len(b.list.Items()) {
		return
	}

	item := b.list.Items()[index].(topicItem)

	skipped, err := b.store.Skip(index)
	if err != nil {
		b.err = err
		return
	}
	if !skipped {
		return
	}

	b.list.RemoveItem(index)
	b.err = nil
	b.status = fmt.Sprintf("Skipped [%s] %s", item.topic.Kind, item.topic.Target)
}

// Run starts the browser and blocks until the user quits.
func Run(store *topics.Store) error {
	browser, err := NewBrowser(store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(browser, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
