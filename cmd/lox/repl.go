package main

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"loxscript/lox"
)

// replTheme groups the lipgloss styles for the REPL surface.
type replTheme struct {
	prompt lipgloss.Style
	result lipgloss.Style
	fail   lipgloss.Style
	dim    lipgloss.Style
	title  lipgloss.Style
	panel  lipgloss.Style
	accent lipgloss.Style
}

func newReplTheme() replTheme {
	blue := lipgloss.Color("69")
	green := lipgloss.Color("42")
	red := lipgloss.Color("203")
	gray := lipgloss.Color("245")
	amber := lipgloss.Color("214")

	return replTheme{
		prompt: lipgloss.NewStyle().Foreground(blue).Bold(true),
		result: lipgloss.NewStyle().Foreground(green),
		fail:   lipgloss.NewStyle().Foreground(red),
		dim:    lipgloss.NewStyle().Foreground(gray),
		title:  lipgloss.NewStyle().Foreground(blue).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(blue).
			PaddingLeft(1),
		accent: lipgloss.NewStyle().Foreground(amber),
	}
}

var languageKeywords = []string{
	"and", "break", "class", "else", "false", "for", "fun", "if",
	"nil", "or", "print", "return", "this", "true", "var", "while",
}

// cell is one evaluated chunk of the transcript: the source the user typed
// and the lines the evaluation produced.
type cell struct {
	src    string
	out    string
	failed bool
}

type replKeymap struct {
	Submit   key.Binding
	Quit     key.Binding
	Wipe     key.Binding
	Complete key.Binding
	Older    key.Binding
	Newer    key.Binding
}

var replKeys = replKeymap{
	Submit:   key.NewBinding(key.WithKeys("enter")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d")),
	Wipe:     key.NewBinding(key.WithKeys("ctrl+l")),
	Complete: key.NewBinding(key.WithKeys("tab")),
	Older:    key.NewBinding(key.WithKeys("up")),
	Newer:    key.NewBinding(key.WithKeys("down")),
}

type replModel struct {
	textInput  textinput.Model
	theme      replTheme
	session    *lox.Session
	printed    *bytes.Buffer
	transcript []cell
	typed      []string
	recallAt   int
	showHelp   bool
	showVars   bool
	quitting   bool
}

func newREPLModel() replModel {
	theme := newReplTheme()

	in := textinput.New()
	in.Prompt = "lox> "
	in.PromptStyle = theme.prompt
	in.Placeholder = "statement or :command"
	in.CharLimit = 512
	in.Width = 72
	in.Focus()

	printed := new(bytes.Buffer)
	engine := lox.NewEngine(lox.Config{Stdout: printed})

	return replModel{
		textInput: in,
		theme:     theme,
		session:   engine.NewSession(),
		printed:   printed,
		recallAt:  -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, replKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, replKeys.Wipe):
		m.transcript = nil
		return m, nil

	case key.Matches(keyMsg, replKeys.Older):
		return m.recall(-1), nil

	case key.Matches(keyMsg, replKeys.Newer):
		return m.recall(+1), nil

	case key.Matches(keyMsg, replKeys.Complete):
		return m.complete(), nil

	case key.Matches(keyMsg, replKeys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(keyMsg)
	return m, cmd
}

// recall moves through previously typed lines; delta is -1 for older,
// +1 for newer. Moving past the newest entry restores an empty prompt.
func (m replModel) recall(delta int) replModel {
	if len(m.typed) == 0 {
		return m
	}
	at := m.recallAt
	if at == -1 {
		if delta > 0 {
			return m
		}
		at = len(m.typed)
	}
	at += delta
	if at >= len(m.typed) {
		m.recallAt = -1
		m.textInput.SetValue("")
		return m
	}
	if at < 0 {
		at = 0
	}
	m.recallAt = at
	m.textInput.SetValue(m.typed[at])
	m.textInput.CursorEnd()
	return m
}

func (m replModel) submit() (replModel, tea.Cmd) {
	line := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")
	m.recallAt = -1
	if line == "" {
		return m, nil
	}

	if strings.HasPrefix(line, ":") {
		return m.runCommand(line)
	}

	out, failed := m.evaluate(line)
	m.transcript = append(m.transcript, cell{src: line, out: out, failed: failed})
	m.typed = append(m.typed, line)
	return m, nil
}

func (m replModel) runCommand(line string) (replModel, tea.Cmd) {
	switch strings.Fields(line)[0] {
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":vars", ":v":
		m.showVars = !m.showVars
	case ":clear", ":c":
		m.transcript = nil
	case ":reset", ":r":
		m.session.Reset()
		m.transcript = append(m.transcript, cell{src: line, out: "session reset"})
	default:
		m.transcript = append(m.transcript, cell{
			src:    line,
			out:    "unknown command (try :help)",
			failed: true,
		})
	}
	return m, nil
}

// complete extends the identifier under the cursor from the keyword list and
// the session's globals. With several candidates it lists them instead.
func (m replModel) complete() replModel {
	line := m.textInput.Value()
	start := len(line)
	for start > 0 && isCompletionRune(rune(line[start-1])) {
		start--
	}
	stem := line[start:]
	if stem == "" {
		return m
	}

	candidates := make([]string, 0, 4)
	for _, word := range languageKeywords {
		if strings.HasPrefix(word, stem) {
			candidates = append(candidates, word)
		}
	}
	for _, name := range m.session.Globals() {
		if strings.HasPrefix(name, stem) {
			candidates = append(candidates, name)
		}
	}

	switch len(candidates) {
	case 0:
	case 1:
		m.textInput.SetValue(line[:start] + candidates[0])
		m.textInput.CursorEnd()
	default:
		sort.Strings(candidates)
		m.transcript = append(m.transcript, cell{out: strings.Join(candidates, "  ")})
	}
	return m
}

func isCompletionRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// evaluate feeds one line into the persistent session and reports the result
// text plus whether it failed. A trailing semicolon is supplied when missing,
// so bare expressions work the way people type them. The last result is bound
// to `_`.
func (m replModel) evaluate(input string) (string, bool) {
	source := input
	if !strings.HasSuffix(source, ";") && !strings.HasSuffix(source, "}") {
		source += ";"
	}

	m.printed.Reset()
	result, err := m.session.Eval(context.Background(), source)
	if err != nil {
		return err.Error(), true
	}
	m.session.Bind("_", result)

	out := result.String()
	if printed := strings.TrimRight(m.printed.String(), "\n"); printed != "" {
		out = printed + "\n" + out
	}
	return out, false
}

const transcriptWindow = 20

func (m replModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.title.Render("lox") + m.theme.dim.Render("  :help for commands, ctrl+c to quit") + "\n\n")

	cells := m.transcript
	if len(cells) > transcriptWindow {
		cells = cells[len(cells)-transcriptWindow:]
	}
	for _, c := range cells {
		if c.src != "" {
			b.WriteString(m.theme.dim.Render("lox> ") + c.src + "\n")
		}
		style := m.theme.result
		if c.failed {
			style = m.theme.fail
		}
		for _, line := range strings.Split(c.out, "\n") {
			b.WriteString(style.Render(line) + "\n")
		}
	}
	if len(cells) > 0 {
		b.WriteString("\n")
	}

	if m.showVars {
		b.WriteString(m.varsPanel() + "\n")
	}
	if m.showHelp {
		b.WriteString(m.helpPanel() + "\n")
	}

	b.WriteString(m.textInput.View() + "\n")
	return b.String()
}

func (m replModel) varsPanel() string {
	names := m.session.Globals()
	if len(names) == 0 {
		return m.theme.panel.Render(m.theme.dim.Render("no variables defined"))
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names)+1)
	lines = append(lines, m.theme.title.Render("globals"))
	for _, name := range names {
		val, _ := m.session.Lookup(name)
		lines = append(lines, fmt.Sprintf("%s = %s", m.theme.accent.Render(name), val.String()))
	}
	return m.theme.panel.Render(strings.Join(lines, "\n"))
}

func (m replModel) helpPanel() string {
	rows := [][2]string{
		{"enter", "evaluate the line"},
		{"tab", "complete keyword or global"},
		{"up/down", "walk typed history"},
		{"ctrl+l / :clear", "wipe the transcript"},
		{":vars", "show or hide globals"},
		{":reset", "drop all session state"},
		{":quit", "leave the repl"},
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, m.theme.title.Render("commands"))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s  %s",
			m.theme.accent.Render(fmt.Sprintf("%-15s", row[0])),
			m.theme.dim.Render(row[1])))
	}
	return m.theme.panel.Render(strings.Join(lines, "\n"))
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel())
	_, err := p.Run()
	return err
}
