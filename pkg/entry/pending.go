package entry

import "fmt"

// PendingAttachment is a locally chosen file that has not been submitted
// yet. It exists only between a successful pick and the next create
// submission or explicit clear; it is never persisted.
type PendingAttachment struct {
	LocalPath   string
	DisplayName string
	SizeBytes   int64
	// Extension is lowercased and has no leading dot.
	Extension string
}

// Label renders the selection summary shown on the create form.
func (p *PendingAttachment) Label() string {
	return fmt.Sprintf("%s (%d bytes)", p.DisplayName, p.SizeBytes)
}
