package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"loxscript/lox"
)

type lintWarning struct {
	Scope   string
	Pos     lox.Position
	Message string
}

func analyzeCommand(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("lox analyze: script path required")
	}

	scriptPath, err := filepath.Abs(remaining[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	engine := lox.NewEngine(lox.Config{})
	script, err := engine.Compile(string(input))
	if err != nil {
		return fmt.Errorf("analysis compile failed: %w", err)
	}

	warnings := analyzeProgram(script.Program())
	if len(warnings) == 0 {
		fmt.Println("No issues found")
		return nil
	}

	for _, warning := range warnings {
		line, column := warning.Pos.Line, warning.Pos.Column
		if line <= 0 {
			line = 1
		}
		if column <= 0 {
			column = 1
		}
		fmt.Printf("%s:%d:%d: %s (%s)\n", scriptPath, line, column, warning.Message, warning.Scope)
	}

	return fmt.Errorf("analysis found %d issue(s)", len(warnings))
}

func analyzeProgram(program *lox.Program) []lintWarning {
	warnings := make([]lintWarning, 0)
	lintStatements("<script>", program.Statements, &warnings)

	sort.SliceStable(warnings, func(i, j int) bool {
		if warnings[i].Pos.Line != warnings[j].Pos.Line {
			return warnings[i].Pos.Line < warnings[j].Pos.Line
		}
		return warnings[i].Pos.Column < warnings[j].Pos.Column
	})

	return warnings
}

// lintStatements flags statements that follow a return or break in the same
// block. It reports whether the block always terminates control flow.
func lintStatements(scope string, statements []lox.Statement, warnings *[]lintWarning) bool {
	terminated := false
	for _, stmt := range statements {
		if terminated {
			*warnings = append(*warnings, lintWarning{
				Scope:   scope,
				Pos:     stmt.Pos(),
				Message: "unreachable statement",
			})
			continue
		}
		if statementTerminates(scope, stmt, warnings) {
			terminated = true
		}
	}
	return terminated
}

func statementTerminates(scope string, stmt lox.Statement, warnings *[]lintWarning) bool {
	switch typed := stmt.(type) {
	case *lox.ReturnStmt, *lox.BreakStmt:
		return true
	case *lox.BlockStmt:
		return lintStatements(scope, typed.Statements, warnings)
	case *lox.IfStmt:
		thenTerminates := statementTerminates(scope, typed.Then, warnings)
		if typed.Else == nil {
			return false
		}
		elseTerminates := statementTerminates(scope, typed.Else, warnings)
		return thenTerminates && elseTerminates
	case *lox.WhileStmt:
		statementTerminates(scope, typed.Body, warnings)
		return false
	case *lox.FunctionStmt:
		lintStatements(typed.Name, typed.Body, warnings)
		return false
	case *lox.ClassStmt:
		for _, method := range typed.Methods {
			lintStatements(typed.Name+"."+method.Name, method.Body, warnings)
		}
		return false
	default:
		return false
	}
}
