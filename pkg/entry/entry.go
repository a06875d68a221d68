package entry

import (
	"path"
	"strings"
	"time"
)

// Kind classifies an attachment by the stored file's extension. The
// backend derives it server-side; the client re-derives it as a fallback
// when only a URL is available.
type Kind string

const (
	KindImage Kind = "image"
	KindAudio Kind = "audio"
	KindOther Kind = "other"
	// KindNone means the entry has no attachment.
	KindNone Kind = ""
)

var (
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true, ".webp": true}
	audioExts = map[string]bool{".mp3": true, ".wav": true, ".ogg": true, ".m4a": true}
)

// KindForName classifies a file name or URL by extension, matching the
// backend's rules. Matching is case-insensitive.
func KindForName(name string) Kind {
	if name == "" {
		return KindNone
	}
	ext := strings.ToLower(path.Ext(name))
	switch {
	case imageExts[ext]:
		return KindImage
	case audioExts[ext]:
		return KindAudio
	default:
		return KindOther
	}
}

// Attachment is the stored file reference on an entry.
type Attachment struct {
	URL  string `json:"url"`
	Kind Kind   `json:"kind"`
}

// Entry is a single diary record. Identity is ID; Title and Content only
// change through a successful update round trip.
type Entry struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	Content    string      `json:"content"`
	Attachment *Attachment `json:"attachment,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Clone returns an independent copy. Screens that capture an entry
// snapshot use it so later cache refreshes cannot mutate what they show.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	out := *e
	if e.Attachment != nil {
		att := *e.Attachment
		out.Attachment = &att
	}
	return &out
}

// HasAttachment reports whether the entry carries a stored file.
func (e *Entry) HasAttachment() bool {
	return e.Attachment != nil && e.Attachment.URL != ""
}

// Preview returns the content truncated to max runes, with an ellipsis
// when truncated.
func (e *Entry) Preview(max int) string {
	r := []rune(e.Content)
	if len(r) <= max {
		return e.Content
	}
	return string(r[:max]) + "..."
}

// CreatedDate renders the creation date portion for list rows.
func (e *Entry) CreatedDate() string {
	if e.CreatedAt.IsZero() {
		return ""
	}
	return e.CreatedAt.Format("2006-01-02")
}
