package tui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/txcat/internal/api"
	"github.com/mkarlsen/txcat/internal/csvview"
	"github.com/mkarlsen/txcat/internal/model"
	"github.com/mkarlsen/txcat/internal/render"
	"github.com/mkarlsen/txcat/internal/session"
	"github.com/mkarlsen/txcat/internal/theme"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	manager := theme.NewManager(theme.NewStore(filepath.Join(t.TempDir(), "theme")))
	manager.Init()
	return NewModel(context.Background(), Config{
		Session: session.New(),
		Themes:  manager,
	})
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestPredict_EmptyInputIssuesNoRequest(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyMsg(tea.KeyEnter))
	next := updated.(Model)

	assert.Nil(t, cmd, "no network command for empty input")
	assert.Equal(t, statusWarning, next.statusKind)
	assert.False(t, next.busyPredict)
}

func TestPredict_SuccessRecordsAndMirrors(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(predictionMsg{
		transaction: "CAFE 11",
		prediction: &model.Prediction{
			Category:   "dining",
			Confidence: 0.873,
			Raw:        []byte(`{"category":"dining"}`),
		},
	})
	next := updated.(Model)

	assert.True(t, next.showResult)
	assert.Equal(t, "CAFE 11", next.correctTx, "input is mirrored into the correction form")
	require.NotNil(t, next.sess.LastPrediction())
	assert.Equal(t, "dining", next.sess.LastPrediction().Response.Category)
	assert.Equal(t, statusSuccess, next.statusKind)
}

func TestPredict_FailureHidesResult(t *testing.T) {
	m := newTestModel(t)
	m.showResult = true

	updated, _ := m.Update(predictionMsg{err: errors.New("connection refused")})
	next := updated.(Model)

	assert.False(t, next.showResult)
	assert.Equal(t, statusError, next.statusKind)
	assert.Contains(t, next.status, "Prediction failed")
}

func TestTaxonomyLoad(t *testing.T) {
	t.Run("success populates one option per category", func(t *testing.T) {
		m := newTestModel(t)

		taxonomy := &model.Taxonomy{
			Model:      "minilm",
			IndexCount: 42,
			Categories: []model.Category{
				{ID: "dining", Name: "Dining Out"},
				{ID: "transport", Name: "Transportation"},
			},
		}
		updated, _ := m.Update(taxonomyLoadedMsg{taxonomy: taxonomy})
		next := updated.(Model)

		require.Len(t, next.options, 2)
		assert.Equal(t, "dining", next.options[0].Value)
		assert.Equal(t, "minilm", next.modelName)
		assert.Equal(t, "42", next.indexCount)
	})

	t.Run("failure leaves the sentinel option and placeholders", func(t *testing.T) {
		m := newTestModel(t)

		updated, _ := m.Update(taxonomyLoadedMsg{err: errors.New("boom")})
		next := updated.(Model)

		require.Len(t, next.options, 1)
		assert.Equal(t, render.SentinelLoadFailed, next.options[0].Label)
		assert.Equal(t, render.Placeholder, next.modelName)
		assert.Equal(t, render.Placeholder, next.indexCount)
		assert.Equal(t, statusError, next.statusKind)
	})
}

func TestClearBatch_ResetsPreviewAndResult(t *testing.T) {
	m := newTestModel(t)

	// Load a preview and a batch result first.
	updated, _ := m.Update(csvPreviewMsg{
		path:    "transactions.csv",
		preview: csvview.Parse("description\nCAFE 11\n"),
	})
	m = updated.(Model)
	updated, _ = m.Update(batchResultMsg{raw: []byte(`[{"category":"dining"}]`)})
	m = updated.(Model)

	require.True(t, m.hasPreview)
	require.NotEmpty(t, m.batchJSON)

	updated, _ = m.Update(keyMsg(tea.KeyCtrlX))
	next := updated.(Model)

	assert.False(t, next.hasPreview)
	assert.True(t, next.preview.Empty())
	assert.Empty(t, next.batchJSON, "prior batch result is hidden")
	assert.Empty(t, next.fileInput.Value())
	assert.Empty(t, next.csvPath)
}

func TestAutoAdd_WithoutPredictionWarnsAndSendsNothing(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyMsg(tea.KeyCtrlA))
	next := updated.(Model)

	assert.Nil(t, cmd, "no network request without a prior prediction")
	assert.Equal(t, statusWarning, next.statusKind)
	assert.Equal(t, confirmNone, next.confirm, "no confirmation is pending")
}

func TestAutoAdd_SoftIndexFailure(t *testing.T) {
	m := newTestModel(t)
	m.busyCorrect = true

	updated, _ := m.Update(autoAddMsg{indexErr: errors.New("404 not found")})
	next := updated.(Model)

	assert.False(t, next.busyCorrect)
	assert.Equal(t, statusInfo, next.statusKind, "index failure is informational, not an error")
	assert.Contains(t, next.status, "indexing skipped")
}

func TestRebuild_RequiresConfirmation(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyMsg(tea.KeyCtrlB))
	next := updated.(Model)
	assert.Nil(t, cmd, "nothing sent before confirmation")
	assert.Equal(t, confirmRebuild, next.confirm)

	// A stray key leaves the prompt pending.
	updated, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	next = updated.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, confirmRebuild, next.confirm)

	// The cancel key dismisses it.
	updated, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	next = updated.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, confirmNone, next.confirm)
	assert.Contains(t, next.status, "Cancelled")
}

func TestConfirm_EscCancelsWithoutQuitting(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg(tea.KeyCtrlB))
	next := updated.(Model)
	require.Equal(t, confirmRebuild, next.confirm)

	updated, cmd := next.Update(keyMsg(tea.KeyEsc))
	next = updated.(Model)
	assert.Nil(t, cmd, "esc during a confirmation must not quit the program")
	assert.Equal(t, confirmNone, next.confirm)
	assert.False(t, next.quitting)
}

func TestCommandsUseRunContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"categories":[]}`))
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // the program is already shutting down

	manager := theme.NewManager(theme.NewStore(filepath.Join(t.TempDir(), "theme")))
	manager.Init()
	m := NewModel(ctx, Config{Client: client, Session: session.New(), Themes: manager})

	msg := m.loadTaxonomy()()
	loaded, ok := msg.(taxonomyLoadedMsg)
	require.True(t, ok)
	require.Error(t, loaded.err)
	assert.ErrorIs(t, loaded.err, context.Canceled)
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)
	before := m.themes.Mode()

	updated, _ := m.Update(keyMsg(tea.KeyCtrlT))
	next := updated.(Model)

	assert.NotEqual(t, before, next.themes.Mode())
	assert.Contains(t, next.status, next.themes.Mode())
}

func TestUpload_SuccessTriggersReload(t *testing.T) {
	m := newTestModel(t)
	m.busyUpload = true

	updated, cmd := m.Update(uploadDoneMsg{})
	next := updated.(Model)

	assert.False(t, next.busyUpload)
	assert.NotNil(t, cmd, "a taxonomy reload follows a successful upload")
	assert.Equal(t, statusPending, next.statusKind)
}
