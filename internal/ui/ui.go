package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"livetv/internal/models"
	"livetv/internal/player"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ChannelListView ViewState = iota
	PlayerView
)

// channelItem wraps [models.Channel] to implement list.Item.
type channelItem struct {
	channel models.Channel
}

// FilterValue feeds the list's free-text filter with name, description and
// category, matching the viewer search semantics.
func (i channelItem) FilterValue() string {
	return strings.Join([]string{i.channel.Name, i.channel.Description, i.channel.Category}, " ")
}

func (i channelItem) Title() string { return i.channel.Name }

func (i channelItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.channel.Category, i.channel.Type)
	if i.channel.Description != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.channel.Description)
	}
	return desc
}

type copiedMsg struct{ err error }

// Model represents the TUI viewer state.
type Model struct {
	view        ViewState
	channelList list.Model
	selected    *models.Channel
	shareBase   string
	copied      bool
	copyErr     error
	width       int
	height      int
	help        help.Model
	keys        keyMap
}

// Opts contains the dependencies for creating a viewer Model.
type Opts struct {
	Channels  []models.Channel
	ShareBase string
	// SelectID auto-selects a channel on startup (share deep link semantics);
	// an unknown id is silently ignored.
	SelectID int
}

// NewModel creates a new TUI model over the given channel list.
func NewModel(opts Opts) *Model {
	items := make([]list.Item, len(opts.Channels))
	for i, c := range opts.Channels {
		items[i] = channelItem{channel: c}
	}

	channelList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	channelList.Title = "Live TV Channels"

	m := &Model{
		view:        ChannelListView,
		channelList: channelList,
		shareBase:   opts.ShareBase,
		help:        help.New(),
		keys:        newKeyMap(),
	}

	if opts.SelectID != 0 {
		for _, c := range opts.Channels {
			if c.ID == opts.SelectID {
				selected := c
				m.selected = &selected
				m.view = PlayerView
				break
			}
		}
	}

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.channelList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ChannelListView:
			return m.handleListKeys(msg)
		case PlayerView:
			return m.handlePlayerKeys(msg)
		}

	case copiedMsg:
		m.copied = msg.err == nil
		m.copyErr = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.channelList, cmd = m.channelList.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ChannelListView:
		return m.renderList()
	case PlayerView:
		return m.renderPlayer()
	default:
		return ""
	}
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list's filter input is open, every key belongs to it.
	if m.channelList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.channelList, cmd = m.channelList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if item, ok := m.channelList.SelectedItem().(channelItem); ok {
			selected := item.channel
			m.selected = &selected
			m.copied = false
			m.copyErr = nil
			m.view = PlayerView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.channelList, cmd = m.channelList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlayerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = ChannelListView
		m.selected = nil
		return m, nil
	case "c":
		if m.selected != nil {
			url := player.ShareURL(m.shareBase, m.selected.ID)
			return m, func() tea.Msg {
				return copiedMsg{err: clipboard.WriteAll(url)}
			}
		}
	}
	return m, nil
}

func (m *Model) renderList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.channelList.View(), helpView)
}

func (m *Model) renderPlayer() string {
	if m.selected == nil {
		return styles.err.Render("No channel selected\n\nPress esc to go back")
	}

	c := m.selected
	title := styles.title.Render(fmt.Sprintf("▶ %s", c.Name))
	info := fmt.Sprintf("Category: %s • %s\n", c.Category, strings.ToUpper(string(c.Type)))
	if c.Description != "" {
		info += fmt.Sprintf("%s\n", c.Description)
	}

	embed := fmt.Sprintf("\nStream: %s\nShare:  %s", player.ToEmbedURL(c.URL, c.Type), player.ShareURL(m.shareBase, c.ID))

	var status string
	if m.copied {
		status = "\n\n" + styles.ok.Render("✓ Share link copied to clipboard")
	} else if m.copyErr != nil {
		status = "\n\n" + styles.warn.Render(fmt.Sprintf("Could not copy link: %v", m.copyErr))
	}

	helpKeys := []key.Binding{m.keys.copy, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s%s\n\n%s", title, info, embed, status, helpView)
}
