package uploads

import (
	"strings"
	"testing"
)

func TestStorageKey(t *testing.T) {
	key := StorageKey(7, "cat.png")
	if !strings.HasPrefix(key, "user/7/") {
		t.Errorf("key %q is not namespaced per user", key)
	}
	if !strings.HasSuffix(key, "_cat.png") {
		t.Errorf("key %q lost the sanitized filename", key)
	}
	if len(key) > 100 {
		t.Errorf("key %q longer than the Img column", key)
	}
}

func TestStorageKeyNeverCollides(t *testing.T) {
	// Same user, same filename - the generated suffix must differ
	if StorageKey(7, "cat.png") == StorageKey(7, "cat.png") {
		t.Error("two uploads of the same file produced the same key")
	}
}

func TestStorageKeyTraversal(t *testing.T) {
	key := StorageKey(3, "../../etc/passwd")
	if strings.Contains(key, "..") {
		t.Errorf("key %q contains a traversal component", key)
	}
	if strings.Count(key, "/") != 2 {
		t.Errorf("key %q has unexpected path depth", key)
	}
}

func TestStorageKeyLongName(t *testing.T) {
	long := strings.Repeat("a", 200) + ".jpeg"
	key := StorageKey(123456, long)
	if len(key) > 100 {
		t.Errorf("key length %d exceeds the Img column", len(key))
	}
	if !strings.HasSuffix(key, ".jpeg") {
		t.Errorf("key %q lost the extension when truncating", key)
	}
}

func TestThumbKey(t *testing.T) {
	if got := ThumbKey("user/1/abc_cat.png"); got != "user/1/abc_cat.png_thumb.jpg" {
		t.Errorf("ThumbKey = %q", got)
	}
}
