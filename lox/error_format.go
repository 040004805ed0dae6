package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// formatCodeFrame renders the offending source line with a caret under the
// error column, preceded by the previous line for context when one exists.
func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}

	lineText := lines[pos.Line-1]
	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if width := len([]rune(lineText)) + 1; column > width {
		column = width
	}

	gutter := len(strconv.Itoa(pos.Line))
	var b strings.Builder
	fmt.Fprintf(&b, "  --> line %d, column %d\n", pos.Line, column)
	if pos.Line > 1 {
		fmt.Fprintf(&b, " %*d | %s\n", gutter, pos.Line-1, lines[pos.Line-2])
	}
	fmt.Fprintf(&b, " %*d | %s\n", gutter, pos.Line, lineText)
	fmt.Fprintf(&b, " %s | %s^", strings.Repeat(" ", gutter), strings.Repeat(" ", column-1))
	return b.String()
}
