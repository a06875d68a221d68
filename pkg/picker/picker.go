// Package picker wraps file selection behind a small capability: a pick
// request produces exactly one result — a validated PendingAttachment,
// a cancellation, or a file-access failure.
package picker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/Ikhwanand/diary-tui/pkg/entry"
)

// AllowedExtensions is the application's attachment allow-list, matched
// case-insensitively.
var AllowedExtensions = []string{
	"jpg", "jpeg", "png", "gif",
	"mp3", "wav", "ogg", "m4a",
	"pdf", "doc", "docx", "txt",
}

var (
	// ErrFileAccess means the chosen file exists but is not readable.
	ErrFileAccess = errors.New("cannot read selected file")
	// ErrExtensionNotAllowed means the file type is outside the allow-list.
	ErrExtensionNotAllowed = errors.New("file type not allowed")
)

// Request describes one pick intent.
type Request struct {
	// Path is the user-provided file location. Empty means the user
	// cancelled the dialog.
	Path              string
	AllowedExtensions []string
}

// Result is the single outcome of a pick. Exactly one of File or
// Cancelled is meaningful.
type Result struct {
	File      *entry.PendingAttachment
	Cancelled bool
}

// Adapter is the pick capability the engine depends on.
type Adapter interface {
	Pick(req Request) (Result, error)
}

// Local resolves picks against the local filesystem.
type Local struct{}

var _ Adapter = Local{}

// Pick validates the requested path and produces a PendingAttachment.
// The file must be readable at pick time; an unreadable file is reported
// as ErrFileAccess, never as a silent success.
func (Local) Pick(req Request) (Result, error) {
	raw := strings.TrimSpace(req.Path)
	if raw == "" {
		return Result{Cancelled: true}, nil
	}

	path, err := homedir.Expand(raw)
	if err != nil {
		path = raw
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !extensionAllowed(ext, req.AllowedExtensions) {
		return Result{}, fmt.Errorf("%w: .%s", ErrExtensionNotAllowed, ext)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", ErrFileAccess, raw)
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrFileAccess, raw)
	}
	f.Close()

	return Result{File: &entry.PendingAttachment{
		LocalPath:   path,
		DisplayName: filepath.Base(path),
		SizeBytes:   info.Size(),
		Extension:   ext,
	}}, nil
}

func extensionAllowed(ext string, allowed []string) bool {
	if len(allowed) == 0 {
		allowed = AllowedExtensions
	}
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return true
		}
	}
	return false
}
