package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/s21platform/market-chat/internal/messaging"
	"github.com/s21platform/market-chat/internal/model"
)

type mode int

const (
	modeBrowse mode = iota
	modeCompose
	modeConfirmDelete
)

type conversationsLoadedMsg struct {
	err error
}

type threadLoadedMsg struct {
	conversationID string
	err            error
}

type sentMsg struct {
	conversationID string
	err            error
}

type deletedMsg struct {
	conversationID string
	err            error
}

// Model is the interactive inbox: the conversation list of one role on the
// left, the open thread and the composer on the right.
type Model struct {
	newCtx   func() context.Context
	userID   string
	store    *messaging.Store
	loader   *messaging.ThreadLoader
	composer *messaging.Composer

	width  int
	height int

	mode     mode
	cursor   int
	loading  bool
	status   string
	lastErr  error
	deleteID string
}

var _ tea.Model = (*Model)(nil)

// New builds the inbox. newCtx is called once per backend call and must
// return a context carrying a logger of its own, since commands run
// concurrently.
func New(newCtx func() context.Context, userID string, store *messaging.Store, loader *messaging.ThreadLoader, composer *messaging.Composer) *Model {
	return &Model{
		newCtx:   newCtx,
		userID:   userID,
		store:    store,
		loader:   loader,
		composer: composer,
		width:    100,
		height:   30,
	}
}

func (m *Model) Init() tea.Cmd {
	m.loading = true
	return m.loadCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case conversationsLoadedMsg:
		m.loading = false
		m.lastErr = typed.err
		m.clampCursor()
		return m, nil
	case threadLoadedMsg:
		if errors.Is(typed.err, messaging.ErrStale) {
			return m, nil
		}
		m.lastErr = typed.err
		return m, nil
	case sentMsg:
		m.lastErr = typed.err
		if typed.err == nil {
			m.status = "message sent"
		}
		return m, nil
	case deletedMsg:
		m.lastErr = typed.err
		if typed.err == nil {
			m.status = "conversation deleted"
			m.clampCursor()
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(typed)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	switch m.mode {
	case modeCompose:
		return m.handleComposeKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "tab":
		if m.store.Role() == messaging.RoleBuying {
			m.setRole(messaging.RoleSelling)
		} else {
			m.setRole(messaging.RoleBuying)
		}
	case "b":
		m.setRole(messaging.RoleBuying)
	case "s":
		m.setRole(messaging.RoleSelling)
	case "r":
		m.loading = true
		m.status = ""
		return m.loadCmd()
	case "enter":
		return m.openCmd()
	case "n", "i":
		if _, ok := m.store.Selected(); ok {
			m.mode = modeCompose
			m.status = ""
		}
	case "d":
		conv, ok := m.cursorConversation()
		if !ok {
			return nil
		}
		m.deleteID = conv.ID
		m.mode = modeConfirmDelete
	}

	return nil
}

func (m *Model) handleComposeKey(msg tea.KeyMsg) tea.Cmd {
	sending := m.composer.State() == messaging.StateSending

	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		return nil
	case tea.KeyEnter:
		if sending {
			return nil
		}
		return m.sendCmd()
	case tea.KeyBackspace, tea.KeyDelete:
		if sending {
			return nil
		}
		runes := []rune(m.composer.Text())
		if len(runes) > 0 {
			m.composer.SetText(string(runes[:len(runes)-1]))
		}
		return nil
	case tea.KeySpace:
		if !sending {
			m.composer.SetText(m.composer.Text() + " ")
		}
		return nil
	case tea.KeyRunes:
		if !sending {
			m.composer.SetText(m.composer.Text() + string(msg.Runes))
		}
		return nil
	}

	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	id := m.deleteID
	m.mode = modeBrowse
	m.deleteID = ""

	switch msg.String() {
	case "y", "Y", "s", "S":
		return m.deleteCmd(id)
	}

	m.status = "delete cancelled"
	return nil
}

func (m *Model) setRole(role messaging.Role) {
	if m.store.Role() == role {
		return
	}
	m.store.SetRole(role)
	m.cursor = 0
	if m.mode == modeCompose {
		if _, ok := m.store.Selected(); !ok {
			m.mode = modeBrowse
		}
	}
}

func (m *Model) cursorConversation() (model.Conversation, bool) {
	conversations := m.store.Conversations()
	if m.cursor < 0 || m.cursor >= len(conversations) {
		return model.Conversation{}, false
	}
	return conversations[m.cursor], true
}

func (m *Model) clampCursor() {
	m.cursor = clampInt(m.cursor, 0, maxInt(0, len(m.store.Conversations())-1))
}

func (m *Model) loadCmd() tea.Cmd {
	ctx := m.newCtx()
	return func() tea.Msg {
		return conversationsLoadedMsg{err: m.store.Load(ctx)}
	}
}

// openCmd selects the conversation under the cursor right away so that
// the newest selection always wins, then fetches its thread.
func (m *Model) openCmd() tea.Cmd {
	conv, ok := m.cursorConversation()
	if !ok {
		return nil
	}

	ticket, err := m.store.Select(conv.ID)
	if err != nil {
		m.lastErr = err
		return nil
	}
	m.lastErr = nil
	m.status = ""

	ctx := m.newCtx()
	return func() tea.Msg {
		return threadLoadedMsg{conversationID: ticket.ConversationID(), err: m.loader.Load(ctx, ticket)}
	}
}

func (m *Model) sendCmd() tea.Cmd {
	conv, ok := m.store.Selected()
	if !ok || strings.TrimSpace(m.composer.Text()) == "" {
		return nil
	}

	ctx := m.newCtx()
	return func() tea.Msg {
		return sentMsg{conversationID: conv.ID, err: m.composer.Send(ctx)}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	if id == "" {
		return nil
	}

	ctx := m.newCtx()
	return func() tea.Msg {
		return deletedMsg{conversationID: id, err: m.store.Delete(ctx, id)}
	}
}

func (m *Model) View() string {
	width := maxInt(40, m.width)
	height := maxInt(10, m.height)

	header := m.renderTabs()
	footer := m.renderFooter(width)
	bodyHeight := maxInt(4, height-lipgloss.Height(header)-lipgloss.Height(footer))

	var body string
	if width < 80 {
		listHeight := maxInt(4, bodyHeight/2)
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderList(width, listHeight),
			m.renderThread(width, maxInt(4, bodyHeight-listHeight)),
		)
	} else {
		listWidth := maxInt(36, width*2/5)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderList(listWidth, bodyHeight),
			m.renderThread(maxInt(30, width-listWidth), bodyHeight),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderTabs() string {
	buying := tabStyle.Render("Comprando")
	selling := tabStyle.Render("Vendendo")
	if m.store.Role() == messaging.RoleBuying {
		buying = activeTabStyle.Render("Comprando")
	} else {
		selling = activeTabStyle.Render("Vendendo")
	}

	return titleStyle.Render("Mensagens") + "  " + buying + "  " + selling
}

func (m *Model) renderList(width, height int) string {
	innerW := maxInt(0, width-4)
	innerH := maxInt(1, height-2)

	conversations := m.store.Conversations()
	selected, hasSelected := m.store.Selected()

	lines := make([]string, 0, innerH)
	switch {
	case m.loading && len(conversations) == 0:
		lines = append(lines, mutedStyle.Render("Loading conversations..."))
	case len(conversations) == 0:
		lines = append(lines, mutedStyle.Render("Sem conversas"))
	}

	// Each conversation takes two lines.
	rows := maxInt(1, innerH/2)
	start := maxInt(0, m.cursor-rows/2)
	if start+rows > len(conversations) {
		start = maxInt(0, len(conversations)-rows)
	}

	for idx := start; idx < len(conversations) && len(lines) < innerH; idx++ {
		conv := conversations[idx]

		marker := " "
		if hasSelected && conv.ID == selected.ID {
			marker = "●"
		}
		cursor := " "
		if idx == m.cursor {
			cursor = "▸"
		}

		title := truncate(fmt.Sprintf("%s%s %s · %s", cursor, marker, counterpartName(conv, m.userID), conv.Product.Summary()), innerW)
		preview := mutedStyle.Render(truncate("   "+conv.Content, innerW))
		if idx == m.cursor {
			title = selectedStyle.Render(title)
		}
		lines = append(lines, title, preview)
	}

	return panelStyle.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderThread(width, height int) string {
	innerW := maxInt(0, width-4)
	innerH := maxInt(1, height-2)

	conv, ok := m.store.Selected()
	if !ok {
		return panelStyle.Width(width - 2).Height(innerH).Render(mutedStyle.Render("Selecione uma conversa"))
	}

	title := titleStyle.Render(truncate(fmt.Sprintf("%s · %s", counterpartName(conv, m.userID), conv.Product.Summary()), innerW))

	composerLines := 0
	if m.mode == modeCompose {
		composerLines = 2
	}

	var body []string
	for _, msg := range m.loader.Messages() {
		body = append(body, m.renderMessage(msg, innerW)...)
	}
	if len(body) == 0 {
		body = []string{mutedStyle.Render("Nenhuma mensagem")}
	}

	room := maxInt(1, innerH-1-composerLines)
	if len(body) > room {
		body = body[len(body)-room:]
	}

	lines := append([]string{title}, body...)
	if m.mode == modeCompose {
		prompt := "> " + m.composer.Text() + "_"
		if m.composer.State() == messaging.StateSending {
			prompt = "> " + m.composer.Text() + "  (sending...)"
		}
		lines = append(lines, "", truncate(prompt, innerW))
	}

	return panelStyle.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderMessage(msg model.Message, width int) []string {
	name := "?"
	style := theirsStyle
	if msg.Sender != nil {
		name = msg.Sender.DisplayName()
		if msg.Sender.ID == m.userID {
			name = "você"
			style = mineStyle
		}
	}

	stamp := ""
	if msg.CreatedAt != nil {
		stamp = " " + mutedStyle.Render(msg.CreatedAt.Local().Format("02/01 15:04"))
	}

	return []string{
		style.Render(truncate(name, width)) + stamp,
		truncate("  "+msg.Content, width),
	}
}

func (m *Model) renderFooter(width int) string {
	var hint string
	switch m.mode {
	case modeCompose:
		hint = "Enter send  Esc back"
	case modeConfirmDelete:
		hint = "Delete this conversation? y/n"
	default:
		hint = "j/k move  Enter open  Tab role  n write  d delete  r reload  q quit"
	}

	line := mutedStyle.Render(truncate(hint, width))
	switch {
	case m.lastErr != nil:
		line = lipgloss.JoinVertical(lipgloss.Left, line, errorStyle.Render(truncate(errorText(m.lastErr), width)))
	case m.status != "":
		line = lipgloss.JoinVertical(lipgloss.Left, line, mutedStyle.Render(truncate(m.status, width)))
	}

	return line
}

func errorText(err error) string {
	if errors.Is(err, messaging.ErrNoSession) {
		return "not logged in, run `inbox login` first"
	}
	return "error: " + err.Error()
}

// counterpartName names the other side of conv for the current user.
func counterpartName(conv model.Conversation, userID string) string {
	if name := messaging.OtherParticipant(conv, userID).DisplayName(); name != "" {
		return name
	}
	return "Usuário"
}
