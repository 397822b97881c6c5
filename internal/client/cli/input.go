package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var errInteractiveInput = errors.New("no registration payload: pass -r <file> or pipe it on stdin")

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// readPayload returns the registration payload from file, or from in when
// file is empty. An interactive terminal on stdin is refused so the client
// never blocks waiting for input nobody is going to type.
func readPayload(file string, in io.Reader) ([]byte, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read registration file: %w", err)
		}
		return b, nil
	}

	if in == nil {
		return nil, nil
	}
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		return nil, errInteractiveInput
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read registration payload: %w", err)
	}
	return b, nil
}
