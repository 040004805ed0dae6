package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
}

func TestUpdateHelpCommandTogglesPanel(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestEvaluatePersistsAcrossLines(t *testing.T) {
	m := newREPLModel()

	if output, isErr := m.evaluate("var score = 42;"); isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	output, isErr := m.evaluate("score + 1")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	if output != "43" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestEvaluateAppendsMissingSemicolon(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate("1 + 2")
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	if output != "3" {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestEvaluateReportsErrors(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate("missing_name")
	if !isErr {
		t.Fatalf("expected error output, got %q", output)
	}
	if !strings.Contains(output, "undefined variable") {
		t.Fatalf("unexpected error output: %q", output)
	}
}

func TestEvaluateIncludesPrintOutput(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate(`print "hello";`)
	if isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Fatalf("print output missing: %q", output)
	}
}

func TestEvaluateBindsLastResult(t *testing.T) {
	m := newREPLModel()
	if output, isErr := m.evaluate("40 + 2"); isErr {
		t.Fatalf("unexpected eval error: %s", output)
	}
	val, ok := m.session.Lookup("_")
	if !ok || val.Number() != 42 {
		t.Fatalf("expected _ bound to 42")
	}
}
