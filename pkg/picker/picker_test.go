package picker

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPickValidFile(t *testing.T) {
	path := writeFile(t, "photo.png")
	res, err := Local{}.Pick(Request{Path: path})
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if res.Cancelled || res.File == nil {
		t.Fatalf("expected picked file, got %+v", res)
	}
	if res.File.DisplayName != "photo.png" {
		t.Fatalf("unexpected display name %q", res.File.DisplayName)
	}
	if res.File.Extension != "png" {
		t.Fatalf("unexpected extension %q", res.File.Extension)
	}
	if res.File.SizeBytes != 4 {
		t.Fatalf("unexpected size %d", res.File.SizeBytes)
	}
}

func TestPickUppercaseExtensionAccepted(t *testing.T) {
	path := writeFile(t, "photo.PNG")
	res, err := Local{}.Pick(Request{Path: path})
	if err != nil {
		t.Fatalf("uppercase extension should be accepted: %v", err)
	}
	if res.File.Extension != "png" {
		t.Fatalf("extension should be lowercased, got %q", res.File.Extension)
	}
}

func TestPickEmptyPathIsCancelled(t *testing.T) {
	res, err := Local{}.Pick(Request{Path: "  "})
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if !res.Cancelled {
		t.Fatal("expected cancelled result")
	}
}

func TestPickDisallowedExtension(t *testing.T) {
	path := writeFile(t, "payload.exe")
	_, err := Local{}.Pick(Request{Path: path})
	if !errors.Is(err, ErrExtensionNotAllowed) {
		t.Fatalf("expected ErrExtensionNotAllowed, got %v", err)
	}
}

func TestPickMissingFile(t *testing.T) {
	_, err := Local{}.Pick(Request{Path: filepath.Join(t.TempDir(), "gone.png")})
	if !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
}

func TestPickUnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced here")
	}
	path := writeFile(t, "secret.txt")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatal(err)
	}
	_, err := Local{}.Pick(Request{Path: path})
	if !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
}

func TestPickDirectoryRejected(t *testing.T) {
	dir := t.TempDir()
	_, err := Local{}.Pick(Request{Path: dir})
	if !errors.Is(err, ErrExtensionNotAllowed) && !errors.Is(err, ErrFileAccess) {
		t.Fatalf("expected rejection for directory, got %v", err)
	}
}
