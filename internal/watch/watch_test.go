package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

const waitDuration = 3 * time.Second

func tempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir, err := Canonical(t.TempDir())
	if err != nil {
		t.Fatalf("canonical temp dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func waitForKind(t *testing.T, w *Watcher, kind Kind) Event {
	t.Helper()
	deadline := time.After(waitDuration)
	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				t.Fatalf("event stream closed while waiting for %s", kind)
			}
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", kind)
		}
	}
}

func TestNewMissingFileIsSetupError(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.cpp"))
	var se *SetupError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SetupError, got %T: %v", err, err)
	}
}

func TestNewCanonicalizesSymlink(t *testing.T) {
	target := tempFile(t, "main.cpp", "int main(){}")
	link := filepath.Join(t.TempDir(), "link.cpp")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	w, err := New(link)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if w.Path() != target {
		t.Errorf("expected canonical path %q, got %q", target, w.Path())
	}
}

func TestWriteEmitsChanged(t *testing.T) {
	path := tempFile(t, "main.cpp", "int main(){}")
	w, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("int main(){return 1;}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ev := waitForKind(t, w, Changed)
	if ev.Path != path {
		t.Errorf("expected path %q, got %q", path, ev.Path)
	}
}

func TestRenameReplaceEmitsChanged(t *testing.T) {
	path := tempFile(t, "main.cpp", "int main(){}")
	w, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	tmp := filepath.Join(filepath.Dir(path), ".main.cpp.swp")
	os.WriteFile(tmp, []byte("int main(){return 2;}"), 0o644)
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}

	waitForKind(t, w, Changed)
}

func TestRemoveEmitsRemoved(t *testing.T) {
	path := tempFile(t, "main.cpp", "int main(){}")
	w, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	waitForKind(t, w, Removed)
}

func TestTranslateIgnoresOtherPaths(t *testing.T) {
	path := tempFile(t, "main.cpp", "")
	other := filepath.Join(filepath.Dir(path), "other.cpp")
	os.WriteFile(other, []byte("x"), 0o644)

	w := &Watcher{path: path}
	for _, op := range []fsnotify.Op{fsnotify.Create, fsnotify.Write, fsnotify.Remove, fsnotify.Rename} {
		if _, ok := w.translate(fsnotify.Event{Name: other, Op: op}); ok {
			t.Errorf("expected %v on another file to be ignored", op)
		}
	}
}

func TestTranslateSkipsVanishedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.cpp")
	w := &Watcher{path: path}

	if _, ok := w.translate(fsnotify.Event{Name: path, Op: fsnotify.Write}); ok {
		t.Error("expected write on a file that cannot be canonicalized to be skipped")
	}
}

func TestTranslateIgnoresChmod(t *testing.T) {
	path := tempFile(t, "main.cpp", "")
	w := &Watcher{path: path}

	if _, ok := w.translate(fsnotify.Event{Name: path, Op: fsnotify.Chmod}); ok {
		t.Error("expected chmod to be ignored")
	}
}

func TestCloseEndsStream(t *testing.T) {
	path := tempFile(t, "main.cpp", "")
	w, err := New(path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}

	select {
	case _, ok := <-w.Events():
		for ok {
			_, ok = <-w.Events()
		}
	case <-time.After(waitDuration):
		t.Fatal("expected event stream to close after Close")
	}
}

func TestKindString(t *testing.T) {
	if Changed.String() != "changed" || Removed.String() != "removed" || Failed.String() != "failed" {
		t.Error("unexpected Kind names")
	}
}
