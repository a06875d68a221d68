package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Ikhwanand/diary-tui/pkg/entry"
)

// PrettyPrint renders diary entries to stdout for one-shot commands.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders a table of diary entries, newest first as given.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	if pp.ShowID {
		tbl.AddRow("ID", "CREATED", "TITLE", "CONTENT", "FILE")
	} else {
		tbl.AddRow("CREATED", "TITLE", "CONTENT", "FILE")
	}
	for _, e := range entries {
		file := ""
		if e.HasAttachment() {
			file = string(e.Attachment.Kind)
		}
		if pp.ShowID {
			tbl.AddRow(e.ID, e.CreatedDate(), e.Title, e.Preview(60), file)
		} else {
			tbl.AddRow(e.CreatedDate(), e.Title, e.Preview(60), file)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}
