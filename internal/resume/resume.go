// Package resume loads the candidate's resume from disk and extracts its
// plain text so it can be handed to the title suggester.
package resume

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// InputError reports an invalid run input, such as a missing resume file or
// an unsupported format. Input errors are fatal and raised before any network
// call is made.
type InputError struct {
	Path    string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("input error for %s: %s", e.Path, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// Load reads the resume at path and returns its cleaned plain text.
// Supported formats: .txt, .md (read directly) and .pdf (text extraction via
// github.com/ledongthuc/pdf).
func Load(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &InputError{Path: path, Message: "resume path is empty"}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", &InputError{Path: path, Message: "resume file not found", Cause: err}
	}
	if info.IsDir() {
		return "", &InputError{Path: path, Message: "resume path is a directory"}
	}

	var content string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &InputError{Path: path, Message: "failed to read resume", Cause: err}
		}
		content = string(data)
	case ".pdf":
		content, err = extractPDF(path)
		if err != nil {
			return "", &InputError{Path: path, Message: "failed to extract PDF text", Cause: err}
		}
	default:
		return "", &InputError{Path: path, Message: fmt.Sprintf("unsupported resume format %q (want .txt, .md or .pdf)", ext)}
	}

	content = CleanText(content)
	if content == "" {
		return "", &InputError{Path: path, Message: "resume file is empty"}
	}
	return content, nil
}

// extractPDF pulls the plain text out of a PDF file.
func extractPDF(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
