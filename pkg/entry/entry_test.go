package entry

import "testing"

func TestKindForName(t *testing.T) {
	cases := []struct {
		name string
		want Kind
	}{
		{"photo.jpg", KindImage},
		{"PHOTO.JPG", KindImage},
		{"banner.webp", KindImage},
		{"song.mp3", KindAudio},
		{"voice.M4A", KindAudio},
		{"notes.pdf", KindOther},
		{"archive.tar.gz", KindOther},
		{"", KindNone},
		{"https://example.com/media/diaries/pic.PNG", KindImage},
	}
	for _, tc := range cases {
		if got := KindForName(tc.name); got != tc.want {
			t.Errorf("KindForName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPreviewTruncation(t *testing.T) {
	e := &Entry{Content: "short"}
	if got := e.Preview(100); got != "short" {
		t.Fatalf("expected untruncated content, got %q", got)
	}

	long := make([]rune, 0, 150)
	for i := 0; i < 150; i++ {
		long = append(long, 'a')
	}
	e = &Entry{Content: string(long)}
	got := e.Preview(100)
	if len([]rune(got)) != 103 {
		t.Fatalf("expected 100 runes plus ellipsis, got %d runes", len([]rune(got)))
	}
	if got[len(got)-3:] != "..." {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestHasAttachment(t *testing.T) {
	e := &Entry{}
	if e.HasAttachment() {
		t.Fatal("entry without attachment should report false")
	}
	e.Attachment = &Attachment{URL: "https://example.com/media/diaries/a.png", Kind: KindImage}
	if !e.HasAttachment() {
		t.Fatal("entry with attachment should report true")
	}
}
