package client

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLine is the longest input line accepted from files and pipes.
const maxLine = 1 << 20

// Reader produces the expressions to send, one per line.
type Reader interface {
	// ForEach calls fn for each input line, and stops at the first error.
	ForEach(fn func(line string) error) error
}

// StringReader yields a single expression.
type StringReader string

func (r StringReader) ForEach(fn func(string) error) error {
	return fn(string(r))
}

// FileReader yields the lines of a text file. A byte order mark is honoured and dropped.
type FileReader struct {
	Path string
}

func (r FileReader) ForEach(fn func(string) error) error {
	f, err := os.Open(r.Path)
	if err != nil {
		return inputError(errors.Wrapf(err, "couldn't open file: %s", r.Path))
	}
	defer f.Close()

	decoded := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	return scanLines(decoded, fn)
}

// MultiFileReader yields the lines of several files in order.
type MultiFileReader []string

func (r MultiFileReader) ForEach(fn func(string) error) error {
	for _, path := range r {
		if err := (FileReader{Path: path}).ForEach(fn); err != nil {
			return err
		}
	}
	return nil
}

// ConsoleReader yields lines read from a stream, typically a pipe.
type ConsoleReader struct {
	In io.Reader
}

func (r ConsoleReader) ForEach(fn func(string) error) error {
	return scanLines(r.In, fn)
}

// PromptReader reads lines from the terminal with line editing and history.
type PromptReader struct {
	Prompt string
}

func (r PromptReader) ForEach(fn func(string) error) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	for {
		line, err := ln.Prompt(r.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return inputError(err)
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if err := fn(line); err != nil {
			return err
		}
	}
}

// NewConsoleReader reads from stdin, prompting for input when stdin is a terminal.
func NewConsoleReader(stdin *os.File) Reader {
	if stdin == os.Stdin && isTerminal(stdin) {
		return PromptReader{Prompt: "> "}
	}
	return ConsoleReader{In: stdin}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func scanLines(r io.Reader, fn func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLine)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return inputError(err)
	}
	return nil
}
