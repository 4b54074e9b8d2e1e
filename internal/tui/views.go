package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkarlsen/txcat/internal/csvview"
	"github.com/mkarlsen/txcat/internal/render"
)

const neighborBarWidth = 24

// maxVisibleOptions caps the label list height.
const maxVisibleOptions = 8

// View renders the whole session screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.viewHeader(),
		m.viewPredictPane(),
		m.viewLabelPane(),
	}

	if m.showResult {
		sections = append(sections, m.viewResultPane())
	}

	sections = append(sections, m.viewBatchPane())

	if m.correctJSON != "" {
		sections = append(sections, m.paneTitle("Correction response", false)+"\n"+m.th.Code.Render(m.correctJSON))
	}

	sections = append(sections, m.viewStatus(), m.viewFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	title := m.th.Title.Render("txcat — transaction categorization")
	info := m.th.Subtitle.Render(fmt.Sprintf("model: %s · indexed: %s · theme: %s",
		m.modelName, m.indexCount, m.themes.Mode()))
	return lipgloss.JoinVertical(lipgloss.Left, title, info)
}

func (m Model) viewPredictPane() string {
	return m.paneTitle("Transaction", m.focus == focusTransaction) + "\n" + m.txInput.View()
}

func (m Model) viewLabelPane() string {
	focused := m.focus == focusLabels
	lines := []string{m.paneTitle("Category label", focused)}

	start := 0
	if m.optionIdx >= maxVisibleOptions {
		start = m.optionIdx - maxVisibleOptions + 1
	}
	end := start + maxVisibleOptions
	if end > len(m.options) {
		end = len(m.options)
	}

	for i := start; i < end; i++ {
		line := m.options[i].Label
		if i == m.optionIdx {
			line = m.th.Selected.Render("▸ " + line)
		} else {
			line = m.th.Normal.Render("  " + line)
		}
		lines = append(lines, line)
	}

	if len(m.options) > end {
		lines = append(lines, m.th.Muted.Render(fmt.Sprintf("  … %d more", len(m.options)-end)))
	}

	return strings.Join(lines, "\n")
}

func (m Model) viewResultPane() string {
	last := m.sess.LastPrediction()
	if last == nil {
		return ""
	}
	prediction := last.Response

	lines := []string{
		m.paneTitle("Result", false),
		m.th.Bold.Render(prediction.Category) + "  " + m.th.Subtitle.Render(render.Confidence(prediction.Confidence)),
	}
	if prediction.LowConfidence {
		lines = append(lines, m.th.StatusWarning.Render("low confidence"))
	}
	if prediction.Unknown {
		lines = append(lines, m.th.StatusWarning.Render("unknown category"))
	}

	lines = append(lines, render.NeighborRows(prediction.Explanations, neighborBarWidth, m.th)...)
	lines = append(lines, m.th.Subtitle.Render(render.Rationale(prediction)))
	lines = append(lines, m.th.Code.Render(m.rawJSON))

	return m.th.BorderedBox.Render(strings.Join(lines, "\n"))
}

func (m Model) viewBatchPane() string {
	focused := m.focus == focusCSV
	lines := []string{
		m.paneTitle("CSV batch", focused),
		m.fileInput.View(),
	}

	if m.hasPreview {
		lines = append(lines, csvview.Render(m.preview, m.th))
	}
	if m.batchJSON != "" {
		lines = append(lines, m.th.Code.Render(m.batchJSON))
	}

	return strings.Join(lines, "\n")
}

func (m Model) viewStatus() string {
	var style = m.th.StatusInfo
	switch m.statusKind {
	case statusPending:
		style = m.th.StatusPending
	case statusSuccess:
		style = m.th.StatusSuccess
	case statusWarning:
		style = m.th.StatusWarning
	case statusError:
		style = m.th.StatusError
	case statusInfo:
	}
	return style.Render(m.status)
}

func (m Model) viewFooter() string {
	return m.th.Muted.Render(
		"Tab panes · Enter submit · Ctrl+O correct · Ctrl+A auto-add · Ctrl+U upload · " +
			"Ctrl+B rebuild · Ctrl+X clear · Ctrl+R reload · Ctrl+Y copy · Ctrl+S save · Ctrl+T theme · Esc quit")
}

func (m Model) paneTitle(title string, focused bool) string {
	if focused {
		return m.th.Selected.Render(" " + title + " ")
	}
	return m.th.Bold.Render(title)
}
