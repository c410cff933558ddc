package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actAnalyze action = iota
	actExport
	actClear
	actQuit
	actConfirmSave
	actCancelSave
)

type handler func(*Model) tea.Cmd

// actions dispatches every user action to the method that carries it out.
var actions = map[action]handler{
	actAnalyze:     (*Model).startAnalysis,
	actExport:      (*Model).openSavePrompt,
	actClear:       (*Model).clear,
	actQuit:        func(*Model) tea.Cmd { return tea.Quit },
	actConfirmSave: (*Model).confirmSave,
	actCancelSave:  (*Model).closeSavePrompt,
}

// browseKeys and saveKeys bind key strings to actions per mode.
var (
	browseKeys = map[string]action{
		"enter":  actAnalyze,
		"ctrl+e": actExport,
		"ctrl+l": actClear,
		"ctrl+c": actQuit,
	}
	saveKeys = map[string]action{
		"enter":  actConfirmSave,
		"esc":    actCancelSave,
		"ctrl+c": actQuit,
	}
)

func (m *Model) resolve(msg tea.KeyMsg) (action, bool) {
	keys := browseKeys
	if m.mode == modeSave {
		keys = saveKeys
	}
	act, ok := keys[msg.String()]
	return act, ok
}
