package buffer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bingrid_test.bin")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen(t *testing.T) {
	path := writeTemp(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05})

	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if b.Size() != 5 {
		t.Errorf("expected size 5, got %d", b.Size())
	}
	if !filepath.IsAbs(b.Filename()) {
		t.Errorf("expected absolute filename, got %s", b.Filename())
	}
	if data := b.Data(); data[2] != 0x03 || data[4] != 0x05 {
		t.Errorf("unexpected data: %v", data)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestOpenDirectory(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("expected error opening a directory")
	}
}

func TestOpenEmpty(t *testing.T) {
	b, err := Open(writeTemp(t, nil))
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != 0 {
		t.Errorf("expected size 0, got %d", b.Size())
	}
}

func TestHasChangedOnDisk(t *testing.T) {
	path := writeTemp(t, []byte("hello"))
	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	changed, err := b.HasChangedOnDisk()
	if err != nil || changed {
		t.Errorf("expected unchanged, got %v %v", changed, err)
	}

	if err := os.WriteFile(path, []byte("world"), 0644); err != nil {
		t.Fatal(err)
	}
	changed, err = b.HasChangedOnDisk()
	if err != nil || !changed {
		t.Errorf("expected changed, got %v %v", changed, err)
	}

	fresh, err := b.Reload()
	if err != nil {
		t.Fatal(err)
	}
	if string(fresh.Data()) != "world" {
		t.Errorf("expected reloaded data, got %q", fresh.Data())
	}
	if string(b.Data()) != "hello" {
		t.Errorf("original buffer must keep its data, got %q", b.Data())
	}

	os.Remove(path)
	if changed, _ := fresh.HasChangedOnDisk(); !changed {
		t.Error("expected removed file to count as changed")
	}
}
