package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gags88/reminder-pwa/internal/models"
	"github.com/gags88/reminder-pwa/internal/notify"
	"github.com/gags88/reminder-pwa/internal/push"
)

// formMode makes the shared create/edit form state explicit: the form is
// either idle (submitting creates) or editing a remembered reminder id
// (submitting updates).
type formMode int

const (
	modeIdle formMode = iota
	modeEditing
)

type focusArea int

const (
	focusTitle focusArea = iota
	focusDate
	focusList
)

const toastTTL = 4 * time.Second

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastError
)

type toast struct {
	id    int
	level toastLevel
	title string
	body  string
}

// Model is the reminder list controller: it owns the in-memory list, drives
// the store, and raises due-soon notices whenever the list is reloaded. The
// list is a cache, replaced wholesale after every mutation.
type Model struct {
	store     ReminderStore
	pushCh    <-chan push.Message
	soundPath string

	reminders []models.Reminder
	loadSeq   uint64 // newest issued load; responses from older loads are discarded

	mode      formMode
	editingID string

	titleInput textinput.Model
	dateInput  textinput.Model
	focus      focusArea
	formErrs   map[string]string

	cursor int

	toasts      []toast
	nextToastID int

	width  int
	height int

	now func() time.Time

	styles Styles
}

// NewModel builds the controller around an injected store. pushCh may be
// nil when push delivery is not configured.
func NewModel(store ReminderStore, pushCh <-chan push.Message, soundPath string) *Model {
	title := textinput.New()
	title.Prompt = "> "
	title.Placeholder = "e.g. Finish client report"
	title.CharLimit = 200
	title.Focus()

	date := textinput.New()
	date.Prompt = "> "
	date.Placeholder = models.DateLayout
	date.CharLimit = 10

	return &Model{
		store:      store,
		pushCh:     pushCh,
		soundPath:  soundPath,
		titleInput: title,
		dateInput:  date,
		focus:      focusTitle,
		now:        time.Now,
		styles:     DefaultStyles(),
	}
}

// Message types
type remindersLoadedMsg struct {
	seq       uint64
	reminders []models.Reminder
	err       error
}

type savedMsg struct{ err error }

type deletedMsg struct{ err error }

type pushMsg push.Message

type toastExpiredMsg struct{ id int }

type cuePlayedMsg struct{}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.loadCmd()}
	if m.pushCh != nil {
		cmds = append(cmds, waitForPush(m.pushCh))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case remindersLoadedMsg:
		return m.handleLoaded(msg)

	case savedMsg:
		if msg.err != nil {
			log.Printf("Error saving reminder: %v", msg.err)
			return m, m.showToast(toastError, "Error saving reminder", "")
		}
		// Edit state and form clear only on success; a failed submit
		// leaves both populated.
		m.mode = modeIdle
		m.editingID = ""
		m.resetForm()
		return m, m.loadCmd()

	case deletedMsg:
		if msg.err != nil {
			log.Printf("Error deleting reminder: %v", msg.err)
			return m, m.showToast(toastError, "Error deleting reminder", "")
		}
		return m, m.loadCmd()

	case pushMsg:
		title := msg.Notification.Title
		if title == "" {
			title = "Notification"
		}
		cmds := []tea.Cmd{m.showToast(toastInfo, title, msg.Notification.Body)}
		if m.pushCh != nil {
			cmds = append(cmds, waitForPush(m.pushCh))
		}
		return m, tea.Batch(cmds...)

	case toastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case cuePlayedMsg:
		return m, nil
	}

	return m, nil
}

func (m *Model) handleLoaded(msg remindersLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		// Superseded by a later refresh; drop it.
		return m, nil
	}
	if msg.err != nil {
		// Keep the last-known-good list on a failed refresh.
		log.Printf("Error fetching reminders: %v", msg.err)
		return m, m.showToast(toastError, "Error fetching reminders", "")
	}

	m.reminders = msg.reminders
	if m.cursor >= len(m.reminders) {
		m.cursor = len(m.reminders) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	// Due scan: re-runs on every reload, with no memory of earlier
	// notices, so a qualifying reminder re-fires each time.
	var cmds []tea.Cmd
	for _, n := range notify.ScanDue(m.reminders, m.now()) {
		cmds = append(cmds, m.showToast(toastInfo, n.Title, n.Body))
		cmds = append(cmds, m.playCueCmd())
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.cycleFocus(1)
		return m, nil

	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil
	}

	if m.focus == focusList {
		return m.handleListKeys(msg)
	}
	return m.handleFormKeys(msg)
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m, m.submit()

	case tea.KeyEscape:
		// Cancel edit: back to idle with a clean form.
		m.mode = modeIdle
		m.editingID = ""
		m.resetForm()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.dateInput, cmd = m.dateInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.reminders)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "r":
		return m, m.loadCmd()

	case "n", "a":
		m.setFocus(focusTitle)

	case "e", "enter":
		if m.cursor < len(m.reminders) {
			m.edit(m.reminders[m.cursor])
		}

	case "d", "x":
		if m.cursor < len(m.reminders) {
			return m, m.deleteCmd(m.reminders[m.cursor].ID)
		}
	}

	return m, nil
}

// edit copies the in-memory reminder into the form and remembers its id.
// No fresh fetch; whatever the cache holds is what gets edited.
func (m *Model) edit(r models.Reminder) {
	m.titleInput.SetValue(r.Title)
	m.dateInput.SetValue(r.Date)
	m.formErrs = nil
	m.mode = modeEditing
	m.editingID = r.ID
	m.setFocus(focusTitle)
}

// submit validates the form and dispatches the create or update. Validation
// failures never reach the store.
func (m *Model) submit() tea.Cmd {
	title := m.titleInput.Value()
	date := m.dateInput.Value()

	if errs := validateForm(title, date); errs != nil {
		m.formErrs = errs
		return nil
	}
	m.formErrs = nil

	store := m.store
	if m.mode == modeEditing {
		id := m.editingID
		return func() tea.Msg {
			return savedMsg{err: store.UpdateReminder(context.Background(), id, title, date)}
		}
	}
	return func() tea.Msg {
		_, err := store.CreateReminder(context.Background(), title, date)
		return savedMsg{err: err}
	}
}

// deleteCmd guards against an absent id: deleting an unpersisted reminder
// is a no-op, not an error.
func (m *Model) deleteCmd(id string) tea.Cmd {
	if id == "" {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		return deletedMsg{err: store.DeleteReminder(context.Background(), id)}
	}
}

func (m *Model) loadCmd() tea.Cmd {
	m.loadSeq++
	seq := m.loadSeq
	store := m.store
	return func() tea.Msg {
		reminders, err := store.ListReminders(context.Background())
		return remindersLoadedMsg{seq: seq, reminders: reminders, err: err}
	}
}

func (m *Model) playCueCmd() tea.Cmd {
	path := m.soundPath
	return func() tea.Msg {
		notify.PlayCue(path)
		return cuePlayedMsg{}
	}
}

func (m *Model) showToast(level toastLevel, title, body string) tea.Cmd {
	m.nextToastID++
	id := m.nextToastID
	m.toasts = append(m.toasts, toast{id: id, level: level, title: title, body: body})
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.titleInput.Blur()
	m.dateInput.Blur()
	switch f {
	case focusTitle:
		m.titleInput.Focus()
	case focusDate:
		m.dateInput.Focus()
	}
}

func (m *Model) cycleFocus(dir int) {
	next := (int(m.focus) + dir + 3) % 3
	m.setFocus(focusArea(next))
}

func (m *Model) resetForm() {
	m.titleInput.SetValue("")
	m.dateInput.SetValue("")
	m.formErrs = nil
	m.setFocus(focusTitle)
}

func waitForPush(ch <-chan push.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return pushMsg(msg)
	}
}
