package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/Ikhwanand/diary-tui/pkg/engine"
	"github.com/Ikhwanand/diary-tui/pkg/entry"
	"github.com/Ikhwanand/diary-tui/pkg/nav"
	"github.com/Ikhwanand/diary-tui/pkg/tui/statusbar"
)

// entry item for the home list
type entryItem struct{ e *entry.Entry }

func (it entryItem) Title() string {
	title := it.e.Title
	if it.e.HasAttachment() {
		title += " [" + string(it.e.Attachment.Kind) + "]"
	}
	return title
}
func (it entryItem) Description() string {
	return it.e.CreatedDate() + "  " + it.e.Preview(100)
}
func (it entryItem) FilterValue() string { return it.e.Title }

// eventMsg carries a completed effect's result back into the update loop.
type eventMsg struct{ ev engine.Event }

const (
	helpAuth    = "tab next field, enter login, ctrl+r register, ctrl+c quit"
	helpHome    = "j/k move, enter details, o new, i edit, d delete, r refresh, ctrl+l logout, q quit"
	helpForm    = "tab next field, ctrl+s save, ctrl+o pick file, ctrl+x clear file, esc cancel"
	helpEdit    = "tab next field, ctrl+s save, esc cancel"
	helpDetails = "i edit, d delete, esc back"
	helpConfirm = "y confirm, n cancel"
)

// Model contains UI state. All diary state lives in the engine; the
// model owns only widgets and routing.
type Model struct {
	eng *engine.Engine
	ctx context.Context

	username textinput.Model
	password textinput.Model
	title    textinput.Model
	content  textarea.Model
	path     textinput.Model

	entries list.Model
	footer  statusbar.Model

	authFocus int // 0: username, 1: password
	formFocus int // 0: title, 1: content, 2: path

	seenEpoch uint64

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the engine.
func New(eng *engine.Engine) Model {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 256
		ti.Prompt = ""
		ti.Styles.Cursor.Color = lipgloss.Color("218")
		ti.Styles.Cursor.Shape = tea.CursorUnderline
		return ti
	}

	username := newInput("username")
	username.Focus()
	password := newInput("password")
	password.EchoMode = textinput.EchoPassword
	title := newInput("Title")
	path := newInput("path to file")

	content := textarea.New()
	content.Placeholder = "Content"
	content.SetHeight(8)

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	entList := list.New([]list.Item{}, delegate, 80, 20)
	entList.Title = "My Diaries"
	entList.SetShowHelp(false)
	entList.SetShowStatusBar(false)
	entList.SetFilteringEnabled(false)

	footer := statusbar.New()
	footer.SetHelp(helpAuth)

	m := Model{
		eng:      eng,
		ctx:      context.Background(),
		username: username,
		password: password,
		title:    title,
		content:  content,
		path:     path,
		entries:  entList,
		footer:   footer,
	}
	m.seenEpoch = eng.FormEpoch()
	return m
}

// Init begins cursor blinking; nothing loads until login.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// dispatch feeds an intent to the engine and schedules its effects.
func (m *Model) dispatch(ev engine.Event) tea.Cmd {
	effects := m.eng.Handle(ev)
	m.syncFromEngine()
	if len(effects) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, eff := range effects {
		eff := eff
		cmds = append(cmds, func() tea.Msg {
			return eventMsg{ev: eff(m.ctx)}
		})
	}
	return tea.Batch(cmds...)
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case eventMsg:
		cmds = append(cmds, m.dispatch(msg.ev))
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// An open confirmation captures all keys.
		if _, open := m.eng.Notifier().ConfirmPrompt(); open {
			switch msg.String() {
			case "y", "enter":
				cmds = append(cmds, m.dispatch(engine.ConfirmAccepted{}))
			case "n", "esc":
				cmds = append(cmds, m.dispatch(engine.ConfirmRejected{}))
			}
			return m, tea.Batch(cmds...)
		}
		switch m.eng.Nav().Top().Kind {
		case nav.Auth:
			m.updateAuth(msg, &cmds)
		case nav.Home:
			m.updateHome(msg, &cmds)
		case nav.Create, nav.Edit:
			m.updateForm(msg, &cmds)
		case nav.Details:
			m.updateDetails(msg, &cmds)
		}
	}

	m.syncFromEngine()
	return m, tea.Batch(cmds...)
}

func (m *Model) updateAuth(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "shift+tab", "up":
		m.authFocus = 1 - m.authFocus
		m.applyAuthFocus(cmds)
	case "enter":
		*cmds = append(*cmds, m.dispatch(engine.LoginSubmitted{
			Username: strings.TrimSpace(m.username.Value()),
			Password: m.password.Value(),
		}))
	case "ctrl+r":
		*cmds = append(*cmds, m.dispatch(engine.RegisterSubmitted{
			Username: strings.TrimSpace(m.username.Value()),
			Password: m.password.Value(),
		}))
	default:
		var cmd tea.Cmd
		if m.authFocus == 0 {
			m.username, cmd = m.username.Update(msg)
		} else {
			m.password, cmd = m.password.Update(msg)
		}
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) updateHome(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q":
		*cmds = append(*cmds, tea.Quit)
	case "r":
		*cmds = append(*cmds, m.dispatch(engine.RefreshRequested{}))
	case "o":
		*cmds = append(*cmds, m.dispatch(engine.CreateOpened{}))
	case "enter":
		if e := m.selectedEntry(); e != nil {
			*cmds = append(*cmds, m.dispatch(engine.DetailsOpened{Entry: e}))
		}
	case "i":
		if e := m.selectedEntry(); e != nil {
			*cmds = append(*cmds, m.dispatch(engine.EditOpened{ID: e.ID}))
		}
	case "d":
		if e := m.selectedEntry(); e != nil {
			*cmds = append(*cmds, m.dispatch(engine.DeleteRequested{ID: e.ID}))
		}
	case "ctrl+l":
		*cmds = append(*cmds, m.dispatch(engine.LogoutRequested{}))
	case "esc":
		*cmds = append(*cmds, m.dispatch(engine.BannerDismissed{}))
	default:
		var cmd tea.Cmd
		m.entries, cmd = m.entries.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) updateForm(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	top := m.eng.Nav().Top()
	editing := top.Kind == nav.Edit
	fieldCount := 3
	if editing {
		// Attachments cannot be changed on an existing diary.
		fieldCount = 2
	}

	switch msg.String() {
	case "esc":
		if editing {
			*cmds = append(*cmds, m.dispatch(engine.EditCancelled{}))
		} else {
			*cmds = append(*cmds, m.dispatch(engine.CreateCancelled{}))
		}
	case "tab":
		m.formFocus = (m.formFocus + 1) % fieldCount
		m.applyFormFocus(cmds)
	case "shift+tab":
		m.formFocus = (m.formFocus + fieldCount - 1) % fieldCount
		m.applyFormFocus(cmds)
	case "ctrl+s":
		if editing {
			*cmds = append(*cmds, m.dispatch(engine.EditSubmitted{
				ID:      top.EntryID,
				Title:   strings.TrimSpace(m.title.Value()),
				Content: strings.TrimSpace(m.content.Value()),
			}))
		} else {
			*cmds = append(*cmds, m.dispatch(engine.CreateSubmitted{
				Title:   strings.TrimSpace(m.title.Value()),
				Content: strings.TrimSpace(m.content.Value()),
			}))
		}
	case "ctrl+o":
		if !editing {
			*cmds = append(*cmds, m.dispatch(engine.PickRequested{
				Path: strings.TrimSpace(m.path.Value()),
			}))
		}
	case "ctrl+x":
		if !editing {
			*cmds = append(*cmds, m.dispatch(engine.AttachmentCleared{}))
		}
	case "enter":
		if m.formFocus == 1 {
			// Newline inside the content area.
			var cmd tea.Cmd
			m.content, cmd = m.content.Update(msg)
			*cmds = append(*cmds, cmd)
			return
		}
		m.formFocus = (m.formFocus + 1) % fieldCount
		m.applyFormFocus(cmds)
	default:
		var cmd tea.Cmd
		switch m.formFocus {
		case 0:
			m.title, cmd = m.title.Update(msg)
		case 1:
			m.content, cmd = m.content.Update(msg)
		case 2:
			m.path, cmd = m.path.Update(msg)
		}
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) updateDetails(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	top := m.eng.Nav().Top()
	switch msg.String() {
	case "esc", "q":
		*cmds = append(*cmds, m.dispatch(engine.DetailsClosed{}))
	case "i":
		if top.Entry != nil {
			*cmds = append(*cmds, m.dispatch(engine.EditOpened{ID: top.Entry.ID}))
		}
	case "d":
		if top.Entry != nil {
			*cmds = append(*cmds, m.dispatch(engine.DeleteRequested{ID: top.Entry.ID}))
		}
	}
}

func (m *Model) selectedEntry() *entry.Entry {
	if len(m.entries.Items()) == 0 {
		return nil
	}
	sel := m.entries.SelectedItem()
	if sel == nil {
		return nil
	}
	it, ok := sel.(entryItem)
	if !ok {
		return nil
	}
	return it.e
}

// syncFromEngine mirrors engine state into the widgets: list items from
// the cache, form contents when the form generation changed, and the
// footer lines.
func (m *Model) syncFromEngine() {
	if epoch := m.eng.FormEpoch(); epoch != m.seenEpoch {
		m.seenEpoch = epoch
		m.seedForms()
	}

	all := m.eng.Cache().All()
	items := make([]list.Item, 0, len(all))
	for _, e := range all {
		items = append(items, entryItem{e: e})
	}
	m.entries.SetItems(items)
	if idx := m.entries.Index(); idx >= len(items) && len(items) > 0 {
		m.entries.Select(len(items) - 1)
	}

	m.footer.SetHelp(m.helpForScreen())
	if banner, ok := m.eng.Notifier().Banner(); ok {
		m.footer.SetStatus(banner)
	} else {
		m.footer.SetStatus("")
	}
	m.footer.SetBusy(m.eng.Notifier().Busy())
}

func (m *Model) helpForScreen() string {
	if _, open := m.eng.Notifier().ConfirmPrompt(); open {
		return helpConfirm
	}
	switch m.eng.Nav().Top().Kind {
	case nav.Auth:
		return helpAuth
	case nav.Home:
		return helpHome
	case nav.Create:
		return helpForm
	case nav.Edit:
		return helpEdit
	case nav.Details:
		return helpDetails
	}
	return ""
}

// seedForms resets the input widgets for the screen on top of the
// stack. Runs whenever the engine signals that form contents changed
// from underneath the UI, such as logout or opening an edit.
func (m *Model) seedForms() {
	top := m.eng.Nav().Top()
	switch top.Kind {
	case nav.Auth:
		m.username.SetValue("")
		m.password.SetValue("")
		m.authFocus = 0
		m.applyAuthFocus(nil)
	case nav.Create:
		m.title.SetValue("")
		m.content.SetValue("")
		m.path.SetValue("")
		m.formFocus = 0
		m.applyFormFocus(nil)
	case nav.Edit:
		if top.Entry != nil {
			m.title.SetValue(top.Entry.Title)
			m.content.SetValue(top.Entry.Content)
		}
		m.title.CursorEnd()
		m.formFocus = 0
		m.applyFormFocus(nil)
	}
}

func (m *Model) applyAuthFocus(cmds *[]tea.Cmd) {
	m.username.Blur()
	m.password.Blur()
	var cmd tea.Cmd
	if m.authFocus == 0 {
		cmd = m.username.Focus()
	} else {
		cmd = m.password.Focus()
	}
	if cmds != nil && cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) applyFormFocus(cmds *[]tea.Cmd) {
	m.title.Blur()
	m.content.Blur()
	m.path.Blur()
	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		cmd = m.title.Focus()
	case 1:
		cmd = m.content.Focus()
	case 2:
		cmd = m.path.Focus()
	}
	if cmds != nil && cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
)

// View renders the top screen plus confirmation overlay and footer.
func (m Model) View() string {
	var body string
	switch m.eng.Nav().Top().Kind {
	case nav.Auth:
		body = m.viewAuth()
	case nav.Home:
		body = m.entries.View()
	case nav.Create:
		body = m.viewForm("New Diary", true)
	case nav.Edit:
		body = m.viewForm("Edit Diary", false)
	case nav.Details:
		body = m.viewDetails()
	}

	if prompt, open := m.eng.Notifier().ConfirmPrompt(); open {
		body += "\n\n" + panelStyle.Render(prompt+"\n\n[y] yes   [n] no")
	}

	return body + "\n\n" + m.footer.View()
}

func (m Model) viewAuth() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("My Diary") + "\n\n")
	b.WriteString(labelStyle.Render("Username") + "\n")
	b.WriteString(m.username.View() + "\n\n")
	b.WriteString(labelStyle.Render("Password") + "\n")
	b.WriteString(m.password.View() + "\n")
	return b.String()
}

func (m Model) viewForm(header string, withAttachment bool) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(header) + "\n\n")
	b.WriteString(labelStyle.Render("Title") + "\n")
	b.WriteString(m.title.View() + "\n\n")
	b.WriteString(labelStyle.Render("Content") + "\n")
	b.WriteString(m.content.View() + "\n")
	if withAttachment {
		b.WriteString("\n" + labelStyle.Render("Attachment") + "\n")
		if p := m.eng.Pending(); p != nil {
			b.WriteString(p.Label() + "\n")
		} else {
			b.WriteString("No file selected\n")
		}
		b.WriteString(m.path.View() + "\n")
	}
	return b.String()
}

func (m Model) viewDetails() string {
	top := m.eng.Nav().Top()
	e := top.Entry
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(e.Title) + "\n")
	b.WriteString(dateStyle.Render(e.CreatedDate()) + "\n\n")
	b.WriteString(e.Content + "\n")
	if e.HasAttachment() {
		b.WriteString("\n" + labelStyle.Render(fmt.Sprintf("Attachment (%s): ", e.Attachment.Kind)))
		b.WriteString(e.Attachment.URL + "\n")
	}
	return b.String()
}

// applySizes recalculates widget sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	width := m.termWidth - 2
	if width < 20 {
		width = 20
	}
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.entries.SetSize(width, height)
	m.content.SetWidth(width)
	contentHeight := height - 10
	if contentHeight < 3 {
		contentHeight = 3
	}
	if contentHeight > 12 {
		contentHeight = 12
	}
	m.content.SetHeight(contentHeight)
}

// Run launches the Bubble Tea UI.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(New(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
