package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON document named by a --file flag. The value "-"
// reads standard input.
type FileReader[T any] struct {
	path  string
	stdin io.Reader
}

// Flag returns the flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "read input from a JSON file (- for stdin)",
		Destination: &fr.path,
	}
}

// Provided reports whether the flag was given.
func (fr *FileReader[T]) Provided() bool { return fr.path != "" }

// Read decodes the document. Unknown fields are rejected.
func (fr *FileReader[T]) Read() (T, error) {
	var input T

	var reader io.Reader
	switch fr.path {
	case "":
		return input, errors.New("no input file given")
	case "-":
		if fr.stdin != nil {
			reader = fr.stdin
			break
		}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return input, errors.New("stdin is a terminal; pipe JSON input or pass a file path")
		}
		reader = os.Stdin
	default:
		f, err := os.Open(fr.path)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}
	return input, nil
}
