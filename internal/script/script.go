// Package script parses and runs line-oriented operation scripts against a
// DynamicArray of ints.
//
// One command per line. Blank lines and lines starting with '#' are
// skipped:
//
//	add 10
//	insert 1 40
//	print
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Verb string

const (
	VerbAdd        Verb = "add"
	VerbSet        Verb = "set"
	VerbGet        Verb = "get"
	VerbInsert     Verb = "insert"
	VerbRemove     Verb = "remove"
	VerbResize     Verb = "resize"
	VerbShrink     Verb = "shrink"
	VerbClear      Verb = "clear"
	VerbAppend     Verb = "append"
	VerbSelfAppend Verb = "selfappend"
	VerbPrint      Verb = "print"
	VerbInfo       Verb = "info"
)

// arity is the accepted argument count range; max < 0 means unbounded.
var arity = map[Verb][2]int{
	VerbAdd:        {1, 1},
	VerbSet:        {2, 2},
	VerbGet:        {1, 1},
	VerbInsert:     {2, 2},
	VerbRemove:     {1, 1},
	VerbResize:     {1, 2},
	VerbShrink:     {0, 0},
	VerbClear:      {0, 0},
	VerbAppend:     {1, -1},
	VerbSelfAppend: {0, 0},
	VerbPrint:      {0, 0},
	VerbInfo:       {0, 0},
}

var (
	ErrUnknownVerb = errors.New("script: unknown command")
	ErrArity       = errors.New("script: wrong number of arguments")
	ErrBadNumber   = errors.New("script: argument is not an integer")
)

type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

type Command struct {
	Verb Verb
	Args []int
	Line int
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.Verb))
	for _, a := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(a))
	}
	return sb.String()
}

// ParseLine parses a single line. ok is false for blank and comment lines.
func ParseLine(line string) (cmd Command, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, false, nil
	}

	fields := strings.Fields(line)
	verb := Verb(strings.ToLower(fields[0]))
	bounds, known := arity[verb]
	if !known {
		return Command{}, false, &SyntaxError{Text: line, Err: ErrUnknownVerb}
	}

	n := len(fields) - 1
	if n < bounds[0] || (bounds[1] >= 0 && n > bounds[1]) {
		return Command{}, false, &SyntaxError{Text: line, Err: ErrArity}
	}

	args := make([]int, 0, n)
	for _, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Command{}, false, &SyntaxError{Text: line, Err: ErrBadNumber}
		}
		args = append(args, v)
	}

	return Command{Verb: verb, Args: args}, true, nil
}

// Parse reads a whole script and stops at the first syntax error.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		cmd, ok, err := ParseLine(sc.Text())
		if err != nil {
			var se *SyntaxError
			if errors.As(err, &se) {
				se.Line = lineNo
			}
			return nil, err
		}
		if !ok {
			continue
		}
		cmd.Line = lineNo
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

func ParseString(s string) ([]Command, error) {
	return Parse(strings.NewReader(s))
}
