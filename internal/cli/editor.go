package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when neither VISUAL nor EDITOR is set.
var ErrNoEditor = errors.New("EDITOR not set. Set it or pass field flags instead of -i")

// Editor runs an external text editor on a temporary file.
type Editor struct {
	// Command is the editor command line, e.g. "code --wait".
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewEditor returns an Editor using $VISUAL, then $EDITOR, attached to the
// process terminal.
func NewEditor() *Editor {
	return &Editor{
		Command: getEditor(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// Edit writes content to a temp file named with suffix, runs the editor on
// it, and returns the file contents after the editor exits.
func (ed *Editor) Edit(content []byte, suffix string) ([]byte, error) {
	if strings.TrimSpace(ed.Command) == "" {
		return nil, ErrNoEditor
	}

	tmpFile, err := os.CreateTemp("", "roster-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := ed.run(tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return result, nil
}

// run executes the editor with path appended to its arguments.
func (ed *Editor) run(path string) error {
	parts := strings.Fields(ed.Command)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = ed.Stdin
	cmd.Stdout = ed.Stdout
	cmd.Stderr = ed.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
