// Package tui implements the interactive categorization session: a predict
// form, label selector, CSV batch pane, and correction actions over one
// shared session object.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarlsen/txcat/internal/api"
	"github.com/mkarlsen/txcat/internal/common"
	"github.com/mkarlsen/txcat/internal/csvview"
	"github.com/mkarlsen/txcat/internal/model"
	"github.com/mkarlsen/txcat/internal/render"
	"github.com/mkarlsen/txcat/internal/session"
	"github.com/mkarlsen/txcat/internal/theme"
)

// focusArea identifies which pane receives input.
type focusArea int

const (
	focusTransaction focusArea = iota
	focusLabels
	focusCSV
)

// pendingConfirm identifies an action awaiting explicit confirmation.
type pendingConfirm int

const (
	confirmNone pendingConfirm = iota
	confirmRebuild
	confirmAutoAdd
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusPending
	statusSuccess
	statusWarning
	statusError
)

// Config holds the dependencies for the interactive session.
type Config struct {
	Client  *api.Client
	Session *session.Session
	Themes  *theme.Manager
}

// Model holds the TUI state. All mutation happens inside Update; network
// calls run as commands and report back through messages.
type Model struct {
	ctx        context.Context
	client     *api.Client
	sess       *session.Session
	themes     *theme.Manager
	th         theme.Theme
	keymap     KeyMap
	txInput    textinput.Model
	fileInput  textinput.Model
	options    []render.Option
	optionIdx  int
	modelName  string
	indexCount string

	// Last prediction display.
	showResult  bool
	rawJSON     string
	correctTx   string
	correctJSON string

	// Batch pane.
	csvPath    string
	preview    csvview.Preview
	hasPreview bool
	batchJSON  string

	status     string
	statusKind statusKind
	confirm    pendingConfirm

	busyPredict bool
	busyCorrect bool
	busyBatch   bool
	busyUpload  bool
	busyRebuild bool

	focus    focusArea
	width    int
	height   int
	quitting bool
}

// NewModel creates the session model. The theme manager must already be
// initialized so the first render uses the resolved mode. ctx cancels
// in-flight requests when the program shuts down.
func NewModel(ctx context.Context, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	txInput := textinput.New()
	txInput.Placeholder = "transaction description"
	txInput.Focus()

	fileInput := textinput.New()
	fileInput.Placeholder = "path to CSV or taxonomy file"

	return Model{
		ctx:        ctx,
		client:     cfg.Client,
		sess:       cfg.Session,
		themes:     cfg.Themes,
		th:         cfg.Themes.Current(),
		keymap:     DefaultKeyMap(),
		txInput:    txInput,
		fileInput:  fileInput,
		options:    render.TaxonomyOptions(nil),
		modelName:  render.Placeholder,
		indexCount: render.Placeholder,
		status:     "Loading taxonomy…",
		statusKind: statusPending,
	}
}

// Init starts the taxonomy load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadTaxonomy())
}

// Update routes messages. Shared state (taxonomy cache, last prediction) is
// only touched here, never from command goroutines.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case taxonomyLoadedMsg:
		return m.handleTaxonomyLoaded(msg)

	case predictionMsg:
		return m.handlePrediction(msg)

	case correctionMsg:
		m.busyCorrect = false
		if msg.err != nil {
			m.setStatus(statusError, "Correction failed: %v", msg.err)
			return m, nil
		}
		m.correctJSON = render.PrettyJSON(msg.raw)
		m.setStatus(statusSuccess, "Correction recorded")
		return m, nil

	case autoAddMsg:
		m.busyCorrect = false
		switch {
		case msg.err != nil:
			m.setStatus(statusError, "Auto-add failed: %v", msg.err)
		case msg.indexErr != nil:
			m.setStatus(statusInfo, "Correction saved; indexing skipped (%v)", msg.indexErr)
		default:
			m.setStatus(statusSuccess, "Correction saved and added to index")
		}
		return m, nil

	case csvPreviewMsg:
		if msg.err != nil {
			m.setStatus(statusError, "Preview failed: %v", msg.err)
			return m, nil
		}
		m.csvPath = msg.path
		m.preview = msg.preview
		m.hasPreview = true
		m.setStatus(statusInfo, "Previewing %s", msg.path)
		return m, nil

	case batchResultMsg:
		m.busyBatch = false
		if msg.err != nil {
			m.setStatus(statusError, "Batch prediction failed: %v", msg.err)
			return m, nil
		}
		m.batchJSON = render.PrettyJSON(msg.raw)
		m.setStatus(statusSuccess, "Batch prediction complete")
		return m, nil

	case uploadDoneMsg:
		m.busyUpload = false
		if msg.err != nil {
			m.setStatus(statusError, "Taxonomy upload failed: %v", msg.err)
			return m, nil
		}
		m.setStatus(statusPending, "Taxonomy uploaded, reloading…")
		return m, m.loadTaxonomy()

	case rebuildDoneMsg:
		m.busyRebuild = false
		if msg.err != nil {
			m.setStatus(statusError, "Index rebuild failed: %v", msg.err)
			return m, nil
		}
		m.setStatus(statusPending, "Index rebuilt, reloading taxonomy…")
		return m, m.loadTaxonomy()

	case jsonSavedMsg:
		switch {
		case msg.err != nil:
			m.setStatus(statusError, "Raw JSON action failed: %v", msg.err)
		case msg.copied:
			m.setStatus(statusSuccess, "Raw JSON copied to clipboard")
		default:
			m.setStatus(statusSuccess, "Raw JSON saved to %s", msg.path)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	// A pending confirmation swallows the next key.
	if m.confirm != confirmNone {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit) && !m.anyBusy():
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextFocus):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keymap.ToggleTheme):
		m.th = m.themes.Toggle()
		m.setStatus(statusInfo, "Theme: %s", m.themes.Mode())
		return m, nil

	case key.Matches(msg, m.keymap.Reload):
		m.setStatus(statusPending, "Reloading taxonomy…")
		return m, m.loadTaxonomy()

	case key.Matches(msg, m.keymap.Up) && m.focus == focusLabels:
		if m.optionIdx > 0 {
			m.optionIdx--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down) && m.focus == focusLabels:
		if m.optionIdx < len(m.options)-1 {
			m.optionIdx++
		}
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keymap.Correct):
		return m.handleCorrect()

	case key.Matches(msg, m.keymap.AutoAdd):
		return m.handleAutoAdd()

	case key.Matches(msg, m.keymap.ClearBatch):
		m.clearBatch()
		return m, nil

	case key.Matches(msg, m.keymap.Upload):
		return m.handleUpload()

	case key.Matches(msg, m.keymap.Rebuild):
		m.confirm = confirmRebuild
		m.setStatus(statusWarning, "Rebuild the index? This can be slow and expensive. (y/n)")
		return m, nil

	case key.Matches(msg, m.keymap.CopyJSON):
		if m.rawJSON == "" {
			m.setStatus(statusWarning, "Nothing to copy yet")
			return m, nil
		}
		return m, copyJSON(m.rawJSON)

	case key.Matches(msg, m.keymap.SaveJSON):
		if m.rawJSON == "" {
			m.setStatus(statusWarning, "Nothing to save yet")
			return m, nil
		}
		return m, saveJSON(m.rawJSON)
	}

	// Everything else feeds the focused text input.
	var cmd tea.Cmd
	switch m.focus {
	case focusTransaction:
		m.txInput, cmd = m.txInput.Update(msg)
	case focusCSV:
		m.fileInput, cmd = m.fileInput.Update(msg)
	case focusLabels:
		// Label pane has no text input.
	}
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Cancel) {
		m.confirm = confirmNone
		m.setStatus(statusInfo, "Cancelled")
		return m, nil
	}
	if !key.Matches(msg, m.keymap.Confirm) {
		// Any other key leaves the prompt pending.
		return m, nil
	}

	pending := m.confirm
	m.confirm = confirmNone

	switch pending {
	case confirmRebuild:
		m.busyRebuild = true
		m.setStatus(statusPending, "Rebuilding index…")
		return m, m.rebuildIndex()

	case confirmAutoAdd:
		correction, err := m.sess.AutoAddCorrection(m.selectedLabel())
		if err != nil {
			m.setStatus(statusWarning, "%v", err)
			return m, nil
		}
		m.busyCorrect = true
		m.setStatus(statusPending, "Saving correction…")
		return m, m.autoAdd(correction)

	case confirmNone:
	}
	return m, nil
}

// handleSubmit dispatches Enter based on the focused pane: predict from the
// transaction form, load the file preview from the CSV pane, submit the
// batch when a preview is already loaded.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusTransaction:
		return m.startPredict()

	case focusCSV:
		path := m.fileInput.Value()
		if path == "" {
			m.setStatus(statusWarning, "%v", common.ErrNoFile)
			return m, nil
		}
		if m.hasPreview && path == m.csvPath {
			if m.busyBatch {
				return m, nil
			}
			m.busyBatch = true
			m.setStatus(statusPending, "Running batch prediction…")
			return m, m.batchPredict(path)
		}
		return m, m.readCSVPreview(path)

	case focusLabels:
		// Selection is implicit; nothing to submit.
	}
	return m, nil
}

func (m Model) startPredict() (tea.Model, tea.Cmd) {
	if m.busyPredict {
		return m, nil
	}
	transaction := m.txInput.Value()
	if transaction == "" {
		m.setStatus(statusWarning, "%v", common.ErrEmptyTransaction)
		return m, nil
	}

	m.busyPredict = true
	m.showResult = false // hidden proactively before the request
	m.setStatus(statusPending, "Predicting…")
	return m, m.predict(transaction)
}

func (m Model) handleCorrect() (tea.Model, tea.Cmd) {
	if m.busyCorrect {
		return m, nil
	}
	transaction := m.correctTx
	if transaction == "" {
		transaction = m.txInput.Value()
	}
	if transaction == "" {
		m.setStatus(statusWarning, "%v", common.ErrEmptyTransaction)
		return m, nil
	}
	label := m.selectedLabel()
	if label == "" {
		m.setStatus(statusWarning, "%v", common.ErrNoLabel)
		return m, nil
	}

	m.busyCorrect = true
	m.setStatus(statusPending, "Submitting correction…")
	return m, m.correct(model.Correction{Transaction: transaction, CorrectLabel: label})
}

func (m Model) handleAutoAdd() (tea.Model, tea.Cmd) {
	if m.busyCorrect {
		return m, nil
	}
	if m.sess.LastPrediction() == nil {
		m.setStatus(statusWarning, "%v", common.ErrNoPrediction)
		return m, nil
	}
	m.confirm = confirmAutoAdd
	m.setStatus(statusWarning, "Save the last prediction as a correction and add it to the index? (y/n)")
	return m, nil
}

func (m Model) handleUpload() (tea.Model, tea.Cmd) {
	if m.busyUpload {
		return m, nil
	}
	path := m.fileInput.Value()
	if path == "" {
		m.setStatus(statusWarning, "%v", common.ErrNoFile)
		return m, nil
	}
	m.busyUpload = true
	m.setStatus(statusPending, "Uploading taxonomy…")
	return m, m.uploadTaxonomy(path)
}

func (m *Model) handleTaxonomyLoaded(msg taxonomyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.sess.SetTaxonomy(nil)
		m.options = render.TaxonomyOptions(nil)
		m.optionIdx = 0
		m.modelName, m.indexCount = render.ModelInfo(nil)
		m.setStatus(statusError, "%v", msg.err)
		return *m, nil
	}

	m.sess.SetTaxonomy(msg.taxonomy)
	m.options = render.TaxonomyOptions(msg.taxonomy)
	if m.optionIdx >= len(m.options) {
		m.optionIdx = 0
	}
	m.modelName, m.indexCount = render.ModelInfo(msg.taxonomy)
	m.setStatus(statusSuccess, "Loaded %d categories", len(msg.taxonomy.Categories))
	return *m, nil
}

func (m *Model) handlePrediction(msg predictionMsg) (tea.Model, tea.Cmd) {
	m.busyPredict = false
	if msg.err != nil {
		m.showResult = false
		m.setStatus(statusError, "Prediction failed: %v", msg.err)
		return *m, nil
	}

	m.sess.RecordPrediction(msg.transaction, *msg.prediction)
	m.correctTx = msg.transaction // mirror the input into the correction form
	m.showResult = true
	m.rawJSON = render.PrettyJSON(msg.prediction.Raw)

	// Pre-select the predicted category in the label list.
	for i, opt := range m.options {
		if opt.Value == msg.prediction.Category {
			m.optionIdx = i
			break
		}
	}

	m.setStatus(statusSuccess, "Predicted %s", msg.prediction.Category)
	return *m, nil
}

func (m *Model) clearBatch() {
	m.fileInput.SetValue("")
	m.csvPath = ""
	m.preview = csvview.Preview{}
	m.hasPreview = false
	m.batchJSON = "" // hide any prior batch result
	m.setStatus(statusInfo, "CSV selection cleared")
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case focusTransaction:
		m.focus = focusLabels
		m.txInput.Blur()
	case focusLabels:
		m.focus = focusCSV
		m.fileInput.Focus()
	case focusCSV:
		m.focus = focusTransaction
		m.fileInput.Blur()
		m.txInput.Focus()
	}
}

func (m Model) selectedLabel() string {
	if m.optionIdx < 0 || m.optionIdx >= len(m.options) {
		return ""
	}
	return m.options[m.optionIdx].Value
}

func (m Model) anyBusy() bool {
	return m.busyPredict || m.busyCorrect || m.busyBatch || m.busyUpload || m.busyRebuild
}

func (m *Model) setStatus(kind statusKind, format string, args ...any) {
	m.statusKind = kind
	m.status = fmt.Sprintf(format, args...)
}
