package rvconf

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func mustSet(t *testing.T, tree *Tree, path, value string) {
	t.Helper()
	if err := tree.Set(path, value); err != nil {
		t.Fatalf("Set(%q): %v", path, err)
	}
}

func TestSetGetRemove(t *testing.T) {
	tree := New()
	mustSet(t, tree, "Service/Autostart", "1")
	mustSet(t, tree, "Service/Arguments", "-ivs")
	mustSet(t, tree, "Top", "x")

	if v, ok := tree.Get("Service/Arguments"); !ok || v != "-ivs" {
		t.Errorf("Get = %q, %v", v, ok)
	}
	if !tree.GetBool("Service/Autostart") {
		t.Error("GetBool(Service/Autostart) = false")
	}
	if tree.GetBool("Service/Arguments") {
		t.Error("GetBool on a non-flag value = true")
	}
	if _, ok := tree.Get("Service"); ok {
		t.Error("Get on a subtree path succeeded")
	}
	if _, ok := tree.Get("Service/Missing"); ok {
		t.Error("Get on a missing path succeeded")
	}

	if !tree.Remove("Service/Autostart") {
		t.Error("Remove existing leaf = false")
	}
	if tree.Remove("Service/Autostart") {
		t.Error("Remove twice = true")
	}
	if tree.Len() != 2 {
		t.Errorf("Len = %d, want 2", tree.Len())
	}
}

func TestSetInvalidPath(t *testing.T) {
	tree := New()
	for _, path := range []string{"", "a//b", "/a", "a/", "k=v/x"} {
		if err := tree.Set(path, "v"); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Set(%q): expected ErrInvalidPath, got %v", path, err)
		}
	}
}

// The zero value works without New().
func TestZeroValueTree(t *testing.T) {
	var tree Tree
	if err := tree.Set("a/b", "1"); err != nil {
		t.Fatalf("Set on zero value: %v", err)
	}
	if v, ok := tree.Get("a/b"); !ok || v != "1" {
		t.Errorf("Get(a/b) = %q, %v", v, ok)
	}

	var dst Tree
	dst.Merge(&tree)
	if v, ok := dst.Get("a/b"); !ok || v != "1" {
		t.Errorf("after Merge, Get(a/b) = %q, %v", v, ok)
	}
}

func TestSetReplacesSubtree(t *testing.T) {
	tree := New()
	mustSet(t, tree, "a/b", "1")
	mustSet(t, tree, "a", "flat")

	if v, ok := tree.Get("a"); !ok || v != "flat" {
		t.Errorf("Get(a) = %q, %v", v, ok)
	}
	if _, ok := tree.Get("a/b"); ok {
		t.Error("replaced subtree still reachable")
	}
}

func TestMergeDeepUnion(t *testing.T) {
	dst := New()
	mustSet(t, dst, "x/z", "2")

	src := New()
	mustSet(t, src, "x/y", "1")

	dst.Merge(src)

	want := []Entry{{"x/y", "1"}, {"x/z", "2"}}
	if got := dst.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List after merge = %v, want %v", got, want)
	}
}

func TestMergeOverwritesLeaves(t *testing.T) {
	dst := New()
	mustSet(t, dst, "a/b", "old")

	src := New()
	mustSet(t, src, "a/b", "new")

	dst.Merge(src)
	if v, _ := dst.Get("a/b"); v != "new" {
		t.Errorf("Get(a/b) = %q, want new", v)
	}
}

func TestMergeIdempotent(t *testing.T) {
	tree := New()
	mustSet(t, tree, "a/b", "1")
	mustSet(t, tree, "c", "2")

	before := tree.List()
	tree.Merge(tree.Clone())
	if got := tree.List(); !reflect.DeepEqual(got, before) {
		t.Errorf("merge of identical tree changed contents: %v != %v", got, before)
	}
}

func TestMergeCopiesSubtrees(t *testing.T) {
	src := New()
	mustSet(t, src, "sub/key", "original")

	dst := New()
	dst.Merge(src)

	// Mutating the source after the merge must not affect the destination.
	mustSet(t, src, "sub/key", "mutated")
	if v, _ := dst.Get("sub/key"); v != "original" {
		t.Errorf("merged subtree aliases its source: Get = %q", v)
	}
}

func TestListDeterministic(t *testing.T) {
	tree := New()
	mustSet(t, tree, "d", "3")
	mustSet(t, tree, "a/c", "2")
	mustSet(t, tree, "a/b", "1")

	want := []Entry{{"a/b", "1"}, {"a/c", "2"}, {"d", "3"}}
	first := tree.List()
	if !reflect.DeepEqual(first, want) {
		t.Errorf("List = %v, want %v", first, want)
	}
	if second := tree.List(); !reflect.DeepEqual(second, first) {
		t.Errorf("second List differs: %v != %v", second, first)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tree := New()
	mustSet(t, tree, "Service/Autostart", "1")
	mustSet(t, tree, "Authentication/EncodedLogonACL", "AQID")
	mustSet(t, tree, "empty", "")

	data, err := tree.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	loaded, err := UnmarshalTree(data)
	if err != nil {
		t.Fatalf("UnmarshalTree: %v", err)
	}
	if !reflect.DeepEqual(loaded.List(), tree.List()) {
		t.Errorf("round trip changed contents: %v != %v", loaded.List(), tree.List())
	}
}

func TestSnapshotRejectsEmptyNode(t *testing.T) {
	data, err := cbor.Marshal(map[string]wireNode{"a": {}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := UnmarshalTree(data); err == nil {
		t.Error("expected error for node with neither scalar nor subtree")
	}
}
