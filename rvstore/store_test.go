package rvstore

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/roomview/roomview/rvconf"
)

func testTree(t *testing.T) *rvconf.Tree {
	t.Helper()
	tree := rvconf.New()
	for path, value := range map[string]string{
		"Service/Autostart":                "1",
		"Service/Arguments":                "-session 2",
		"Authentication/EncodedLogonACL":   "AQIDBA==",
		"Authentication/KeyImportAccepted": "true",
	} {
		if err := tree.Set(path, value); err != nil {
			t.Fatal(err)
		}
	}
	return tree
}

func TestBoltStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	store, err := OpenBolt(Options{Scope: ScopeSystem, Path: path})
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}

	tree := testTree(t)
	if err := store.Flush(tree); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded.List(), tree.List()) {
		t.Errorf("round trip changed contents: %v != %v", loaded.List(), tree.List())
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// The snapshot survives a reopen.
	store, err = OpenBolt(Options{Scope: ScopeSystem, Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("Load after reopen: %v", err)
	}
	if !reflect.DeepEqual(loaded.List(), tree.List()) {
		t.Error("snapshot did not survive reopen")
	}
}

func TestBoltStoreLoadEmpty(t *testing.T) {
	store, err := OpenBolt(Options{Path: filepath.Join(t.TempDir(), "config.db")})
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	defer store.Close()

	tree, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tree.Len() != 0 {
		t.Errorf("fresh store loaded %d leaves, want 0", tree.Len())
	}
}

func TestBoltStoreSnapshotEncrypted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.db")
	store, err := OpenBolt(Options{Path: path})
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}

	tree := rvconf.New()
	const marker = "plaintext-marker-value"
	if err := tree.Set("Authentication/Secret", marker); err != nil {
		t.Fatal(err)
	}
	if err := store.Flush(tree); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	store.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(raw), marker) {
		t.Error("snapshot value stored in plain text")
	}
}

func TestBoltStoreRejectsBadProfile(t *testing.T) {
	if _, err := OpenBolt(Options{Profile: "../escape"}); err == nil {
		t.Error("expected error for invalid profile name")
	}
}

func TestTextStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	store := NewTextStore(path)

	tree := testTree(t)
	// A value needing binary encoding.
	if err := tree.Set("Service/Banner", "line1\nline2{}"); err != nil {
		t.Fatal(err)
	}

	if err := store.Flush(tree); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded.List(), tree.List()) {
		t.Errorf("round trip changed contents: %v != %v", loaded.List(), tree.List())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Service/Autostart=T{1}") {
		t.Errorf("expected text encoding in output:\n%s", data)
	}
	if !strings.Contains(string(data), "Service/Banner=B{") {
		t.Errorf("expected binary encoding for unsafe value:\n%s", data)
	}
}

func TestTextStoreLoadMissing(t *testing.T) {
	store := NewTextStore(filepath.Join(t.TempDir(), "missing.txt"))
	tree, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tree.Len() != 0 {
		t.Errorf("missing file loaded %d leaves, want 0", tree.Len())
	}
}

func TestTextStoreLoadRejectsMalformed(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"no-equals":    "Service/Autostart\n",
		"no-encoding":  "Service/Autostart=1\n",
		"bad-base64":   "Service/Autostart=B{!!}\n",
		"invalid-path": "Service//Autostart=T{1}\n",
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := NewTextStore(path).Load(); err == nil {
			t.Errorf("%s: expected load error", name)
		}
	}
}

func TestTextStoreSkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	content := "# roomview configuration\n\nService/Autostart=T{1}\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	tree, err := NewTextStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, ok := tree.Get("Service/Autostart"); !ok || v != "1" {
		t.Errorf("Get = %q, %v", v, ok)
	}
}
