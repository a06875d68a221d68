package api

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Ikhwanand/diary-tui/pkg/entry"
)

// wireTime accepts the timestamp layouts the backend is known to emit:
// RFC3339 with or without fractional seconds, and the timezone-naive
// variant some deployments produce.
type wireTime struct {
	time.Time
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range wireTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// wireEntry mirrors the serialized diary resource.
type wireEntry struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	File      *string  `json:"file"`
	FileURL   *string  `json:"file_url"`
	FileType  *string  `json:"file_type"`
	CreatedAt wireTime `json:"created_at"`
	UpdatedAt wireTime `json:"updated_at"`
}

func (w *wireEntry) toEntry() *entry.Entry {
	e := &entry.Entry{
		ID:        w.ID,
		Title:     w.Title,
		Content:   w.Content,
		CreatedAt: w.CreatedAt.Time,
		UpdatedAt: w.UpdatedAt.Time,
	}
	url := ""
	if w.FileURL != nil {
		url = strings.TrimSpace(*w.FileURL)
	}
	if url == "" {
		return e
	}
	kind := entry.KindNone
	if w.FileType != nil && *w.FileType != "" {
		kind = entry.Kind(*w.FileType)
	} else {
		kind = entry.KindForName(url)
	}
	e.Attachment = &entry.Attachment{URL: url, Kind: kind}
	return e
}

// loginResponse is the token payload from POST login/.
type loginResponse struct {
	Key string `json:"key"`
}
