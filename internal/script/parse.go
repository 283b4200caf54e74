// Package script replays a file of board operations without the terminal UI.
//
// Each non-blank line not starting with '#' is one operation, with fields
// separated by '|':
//
//	add  | <title> | <description> | <people>
//	move | <title or id> | <active or finished>
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"projboard/internal/form"
	"projboard/internal/views"
)

// ErrSyntax is returned for lines that cannot be parsed
var ErrSyntax = errors.New("syntax error")

// Op is a script operation
type Op string

const (
	OpAdd  Op = "add"
	OpMove Op = "move"
)

// Command is one parsed script line
type Command struct {
	Line   int
	Op     Op
	Fields form.Fields // add
	Ref    string      // move: project title or id
	Target views.Kind  // move
}

// Parse reads every command from r.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		cmd, err := parseLine(line, text)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return cmds, nil
}

func parseLine(line int, text string) (Command, error) {
	parts := strings.Split(text, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	cmd := Command{Line: line, Op: Op(strings.ToLower(parts[0]))}
	switch cmd.Op {
	case OpAdd:
		if len(parts) != 4 {
			return Command{}, fmt.Errorf("line %d: %w: add takes title | description | people", line, ErrSyntax)
		}
		cmd.Fields = form.Fields{Title: parts[1], Description: parts[2], People: parts[3]}
	case OpMove:
		if len(parts) != 3 || parts[1] == "" {
			return Command{}, fmt.Errorf("line %d: %w: move takes project | status", line, ErrSyntax)
		}
		kind, err := views.ParseKind(parts[2])
		if err != nil {
			return Command{}, fmt.Errorf("line %d: %w", line, err)
		}
		cmd.Ref = parts[1]
		cmd.Target = kind
	default:
		return Command{}, fmt.Errorf("line %d: %w: unknown operation %q", line, ErrSyntax, parts[0])
	}
	return cmd, nil
}
