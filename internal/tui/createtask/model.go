// Package createtask implements the interactive task creation form.
package createtask

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/taskhub/internal/core/attach"
	"github.com/colonyops/taskhub/internal/core/logging"
	"github.com/colonyops/taskhub/internal/core/styles"
	"github.com/colonyops/taskhub/internal/core/task"
	"github.com/colonyops/taskhub/internal/taskapi"
	"github.com/colonyops/taskhub/internal/tui/components/form"
)

const (
	headerTitle    = "Create New Task"
	headerSubtitle = "Stay organized, achieve your goals"
	helpText       = "tab/shift+tab: move  ctrl+s: submit  ctrl+r: reset  f1: help  esc: quit"

	msgSubmitting = "Creating task..."
	msgCreated    = "Task created successfully!"
)

// DefaultResetDelay is how long the success banner stays before the form
// clears itself.
const DefaultResetDelay = 2 * time.Second

// State is the submission state of the form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Submitter sends a validated draft to the task API.
type Submitter interface {
	Create(ctx context.Context, d task.Draft) (taskapi.Response, error)
}

// Resolver turns the input of an attachment field into files.
type Resolver func(kind form.PickKind, input string) ([]attach.File, error)

// Deps are the collaborators of the form.
type Deps struct {
	Submitter  Submitter
	ResetDelay time.Duration    // zero uses DefaultResetDelay
	Now        func() time.Time // clock used for due date validation
	Resolve    Resolver         // nil uses ResolvePick
	Context    context.Context  // context passed to the submitter
}

// Options configure the initial form.
type Options struct {
	// Draft prefills the form. A later reset still returns to defaults.
	Draft *task.Draft
}

type (
	submitResultMsg struct {
		gen  int
		resp taskapi.Response
		err  error
	}

	resetTickMsg struct {
		gen int
	}

	attachmentsPickedMsg struct {
		gen   int
		field string
		files []attach.File
		err   error
	}
)

// Model is the Bubble Tea model for the task creation form.
type Model struct {
	deps    Deps
	log     zerolog.Logger
	fields  fields
	dialog  *form.Dialog
	spinner spinner.Model

	draft  task.Draft
	errors task.Errors
	state  State
	notice string

	// submitGen and resetGen identify the current submission and the
	// current scheduled reset. Results and ticks carrying an older
	// generation are dropped.
	submitGen int
	resetGen  int
	pickGen   int // bumped on reset so picks started before it are dropped

	created  int
	lastResp taskapi.Response

	width    int
	height   int
	showHelp bool
	quitting bool
}

// New creates a form model.
func New(deps Deps, opts Options) Model {
	if deps.ResetDelay == 0 {
		deps.ResetDelay = DefaultResetDelay
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Resolve == nil {
		deps.Resolve = ResolvePick
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}

	draft := task.New()
	if opts.Draft != nil {
		draft = *opts.Draft
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorSecondary)

	f, dialog := newForm(draft)
	return Model{
		deps:    deps,
		log:     logging.Component("createtask"),
		fields:  f,
		dialog:  dialog,
		spinner: s,
		draft:   draft,
		errors:  task.Errors{},
	}
}

// ResolvePick resolves attachment field input using the attach pickers.
func ResolvePick(kind form.PickKind, input string) ([]attach.File, error) {
	switch kind {
	case form.PickDirectory:
		return attach.Directory(input)
	case form.PickImages:
		return attach.Images(input)
	default:
		paths := attach.ParsePaths(input)
		if len(paths) == 0 {
			return nil, errors.New("no paths given")
		}
		return attach.Files(paths...)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if m.showHelp {
			switch msg.String() {
			case "ctrl+c":
				return m.quit()
			case "esc", "f1":
				m.showHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "f1":
			m.showHelp = true
			return m, nil
		case "ctrl+s":
			return m.submit()
		case "ctrl+r":
			m.reset()
			return m, nil
		}

	case submitResultMsg:
		return m.handleSubmitResult(msg)

	case resetTickMsg:
		if msg.gen != m.resetGen || m.state != StateSuccess {
			return m, nil
		}
		m.log.Debug().Msg("clearing form after success")
		m.reset()
		return m, nil

	case form.PickRequestMsg:
		return m, m.pickCmd(msg)

	case attachmentsPickedMsg:
		return m.handlePicked(msg)

	case form.RemoveRequestMsg:
		return m.handleRemove(msg)

	case spinner.TickMsg:
		if m.state != StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	m.syncDraft()

	if m.dialog.ConsumeSubmit() {
		next, submitCmd := m.submit()
		return next, tea.Batch(cmd, submitCmd)
	}

	if m.dialog.Cancelled() {
		return m.quit()
	}

	return m, cmd
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// syncDraft copies field values into the draft. A field whose value changed
// loses its error message.
func (m *Model) syncDraft() {
	prev := m.draft
	values := m.dialog.FormValues()
	for _, name := range scalarFields {
		if err := m.draft.SetField(name, values[name]); err != nil {
			m.log.Error().Err(err).Str("field", name).Msg("sync field")
			continue
		}
		if prev.Get(name) != m.draft.Get(name) {
			delete(m.errors, name)
		}
	}
	m.dialog.SetErrors(m.errors)
}

// submit validates the draft and starts a submission. It is a no-op while a
// submission is in flight.
func (m Model) submit() (Model, tea.Cmd) {
	if m.state == StateSubmitting {
		return m, nil
	}

	m.notice = ""
	m.errors = task.Validate(m.draft, m.deps.Now())
	m.dialog.SetErrors(m.errors)
	if !m.errors.Empty() {
		m.log.Debug().Strs("fields", m.errors.Fields()).Msg("validation failed")
		for _, name := range fieldOrder {
			if m.errors.Has(name) {
				return m, m.dialog.FocusField(name)
			}
		}
		return m, nil
	}

	m.state = StateSubmitting
	m.submitGen++
	m.resetGen++ // a resubmit from the success state cancels the pending reset
	return m, tea.Batch(m.spinner.Tick, m.submitCmd(m.submitGen, m.draft))
}

// submitCmd runs one Create call off the event loop. d is a copy, so edits
// made while the request runs do not change what is sent.
func (m Model) submitCmd(gen int, d task.Draft) tea.Cmd {
	ctx := m.deps.Context
	submitter := m.deps.Submitter
	return func() tea.Msg {
		if submitter == nil {
			return submitResultMsg{gen: gen, err: errors.New("no submitter configured")}
		}
		resp, err := submitter.Create(ctx, d)
		return submitResultMsg{gen: gen, resp: resp, err: err}
	}
}

func (m Model) handleSubmitResult(msg submitResultMsg) (Model, tea.Cmd) {
	if msg.gen != m.submitGen || m.state != StateSubmitting {
		m.log.Debug().Int("gen", msg.gen).Msg("dropping stale submit result")
		return m, nil
	}

	if msg.err != nil {
		m.log.Warn().Err(msg.err).Msg("task submission failed")
		m.state = StateIdle
		m.errors[task.KeySubmit] = task.MsgSubmitFailed
		return m, nil
	}

	m.state = StateSuccess
	m.created++
	m.lastResp = msg.resp
	m.resetGen++
	gen := m.resetGen
	return m, tea.Tick(m.deps.ResetDelay, func(time.Time) tea.Msg {
		return resetTickMsg{gen: gen}
	})
}

// reset returns the form to defaults from any state. In-flight results and
// pending reset ticks become stale.
func (m *Model) reset() {
	m.draft.Reset()
	m.errors = task.Errors{}
	m.state = StateIdle
	m.notice = ""
	m.submitGen++
	m.resetGen++
	m.pickGen++
	m.fields, m.dialog = newForm(m.draft)
}

func (m Model) pickCmd(req form.PickRequestMsg) tea.Cmd {
	resolve := m.deps.Resolve
	gen := m.pickGen
	return func() tea.Msg {
		files, err := resolve(req.Kind, req.Input)
		return attachmentsPickedMsg{gen: gen, field: req.Field, files: files, err: err}
	}
}

func (m Model) handlePicked(msg attachmentsPickedMsg) (Model, tea.Cmd) {
	if msg.gen != m.pickGen {
		m.log.Debug().Str("field", msg.field).Msg("dropping pick started before reset")
		return m, nil
	}
	slot, ok := slotFor(msg.field)
	if !ok {
		return m, nil
	}
	if msg.err != nil {
		m.errors[msg.field] = msg.err.Error()
		m.dialog.SetErrors(m.errors)
		return m, nil
	}
	if err := m.draft.AddAttachments(slot, msg.files...); err != nil {
		m.log.Error().Err(err).Msg("add attachments")
		return m, nil
	}

	delete(m.errors, msg.field)
	m.dialog.SetErrors(m.errors)
	field := m.fields.attachments(slot)
	field.SetFiles(m.draft.Attachments(slot))
	field.ClearInput()

	switch len(msg.files) {
	case 0:
		m.notice = "No matching files found"
	case 1:
		m.notice = "Attached " + msg.files[0].Name
	default:
		m.notice = fmt.Sprintf("Attached %d files", len(msg.files))
	}
	return m, nil
}

func (m Model) handleRemove(msg form.RemoveRequestMsg) (Model, tea.Cmd) {
	slot, ok := slotFor(msg.Field)
	if !ok {
		return m, nil
	}
	if err := m.draft.RemoveAttachment(slot, msg.Index); err != nil {
		m.log.Debug().Err(err).Msg("remove attachment")
		return m, nil
	}
	m.fields.attachments(slot).SetFiles(m.draft.Attachments(slot))
	m.notice = ""
	return m, nil
}

func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.HeaderTitleStyle.Render(styles.IconCheckList+headerTitle),
		styles.HeaderSubtitleStyle.Render(headerSubtitle),
	)

	parts := []string{header, ""}
	if status := m.statusLine(); status != "" {
		parts = append(parts, status, "")
	}
	parts = append(parts, m.dialog.View())

	content := styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.width > 0 {
		content = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	}
	if m.showHelp {
		content = newHelp().Overlay(content, m.width, m.height)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) statusLine() string {
	switch {
	case m.state == StateSubmitting:
		return m.spinner.View() + " " + styles.BannerPendingStyle.Render(msgSubmitting)
	case m.state == StateSuccess:
		return styles.BannerSuccessStyle.Render(styles.IconCheck + " " + msgCreated)
	case m.errors.Has(task.KeySubmit):
		return styles.BannerErrorStyle.Render(styles.IconCross + " " + m.errors[task.KeySubmit])
	case m.notice != "":
		return styles.FormHelpStyle.Render(m.notice)
	default:
		return ""
	}
}

// Draft returns a copy of the current draft.
func (m Model) Draft() task.Draft { return m.draft }

// Errors returns a copy of the current error messages.
func (m Model) Errors() task.Errors { return maps.Clone(m.errors) }

// State returns the submission state.
func (m Model) State() State { return m.state }

// Created returns how many tasks were created in this session.
func (m Model) Created() int { return m.created }

// ShowingHelp reports whether the shortcut overlay is open.
func (m Model) ShowingHelp() bool { return m.showHelp }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// LastResponse returns the response of the most recent successful
// submission.
func (m Model) LastResponse() taskapi.Response { return m.lastResp }
