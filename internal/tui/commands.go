package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarlsen/txcat/internal/csvview"
	"github.com/mkarlsen/txcat/internal/model"
	"github.com/mkarlsen/txcat/internal/rawjson"
)

// loadTaxonomy fetches the taxonomy from the backend.
func (m Model) loadTaxonomy() tea.Cmd {
	return func() tea.Msg {
		taxonomy, err := m.client.GetTaxonomy(m.ctx)
		return taxonomyLoadedMsg{taxonomy: taxonomy, err: err}
	}
}

// predict submits a single transaction.
func (m Model) predict(transaction string) tea.Cmd {
	return func() tea.Msg {
		prediction, err := m.client.Predict(m.ctx, transaction)
		return predictionMsg{transaction: transaction, prediction: prediction, err: err}
	}
}

// correct submits a correction.
func (m Model) correct(correction model.Correction) tea.Cmd {
	return func() tea.Msg {
		raw, err := m.client.Correct(m.ctx, correction)
		return correctionMsg{raw: raw, err: err}
	}
}

// autoAdd submits the correction, then independently tries the optional
// add-to-index endpoint. Index failure is carried separately so the caller
// can downgrade it to an informational status.
func (m Model) autoAdd(correction model.Correction) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.client.Correct(m.ctx, correction); err != nil {
			return autoAddMsg{err: err}
		}
		return autoAddMsg{indexErr: m.client.AddToIndex(m.ctx, correction)}
	}
}

// readCSVPreview reads the selected file's text and parses the preview.
func (m Model) readCSVPreview(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return csvPreviewMsg{path: path, err: err}
		}
		return csvPreviewMsg{path: path, preview: csvview.Parse(string(data))}
	}
}

// batchPredict uploads the selected file for batch prediction.
func (m Model) batchPredict(path string) tea.Cmd {
	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return batchResultMsg{err: err}
		}
		defer func() { _ = file.Close() }()

		raw, err := m.client.PredictBatch(m.ctx, file.Name(), file)
		return batchResultMsg{raw: raw, err: err}
	}
}

// uploadTaxonomy uploads a replacement taxonomy file.
func (m Model) uploadTaxonomy(path string) tea.Cmd {
	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return uploadDoneMsg{err: err}
		}
		defer func() { _ = file.Close() }()

		_, err = m.client.UploadTaxonomy(m.ctx, file.Name(), file)
		return uploadDoneMsg{err: err}
	}
}

// rebuildIndex asks the backend to rebuild its index.
func (m Model) rebuildIndex() tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.RebuildIndex(m.ctx)
		return rebuildDoneMsg{err: err}
	}
}

// copyJSON copies the displayed raw JSON to the clipboard.
func copyJSON(text string) tea.Cmd {
	return func() tea.Msg {
		return jsonSavedMsg{copied: true, err: rawjson.Copy(text)}
	}
}

// saveJSON saves the displayed raw JSON under the fixed filename.
func saveJSON(text string) tea.Cmd {
	return func() tea.Msg {
		path, err := rawjson.Save(".", text)
		return jsonSavedMsg{path: path, err: err}
	}
}
