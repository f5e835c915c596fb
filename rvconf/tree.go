// Package rvconf implements the hierarchical configuration tree used by the
// roomview configurator. A tree maps string keys to either a scalar string
// value or a nested subtree; nothing else is representable, so traversal
// never meets an unrecognized value kind.
//
// Trees are acyclic by construction: subtrees are deep-copied on insert and
// merge, and the type exposes no way to alias one subtree into another.
//
// A Tree is not safe for concurrent use; callers serialize access.
package rvconf

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Separator joins key segments into a full configuration path.
const Separator = "/"

// ErrInvalidPath is returned for paths with empty segments, such as "a//b"
// or a trailing slash, and for segments containing '='. The separator is
// structural, so every path maps to exactly one leaf, and keeping '=' out
// of keys makes the exported path=value lines unambiguous.
var ErrInvalidPath = errors.New("roomview: invalid configuration path")

// node is the closed value variant: exactly one of scalar or sub is active.
type node struct {
	scalar string
	sub    *Tree
}

func (n node) isSubtree() bool { return n.sub != nil }

// Tree is a hierarchical string-keyed configuration map.
// The zero value is an empty tree ready for use.
type Tree struct {
	nodes map[string]node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{nodes: make(map[string]node)}
}

func (t *Tree) init() {
	if t.nodes == nil {
		t.nodes = make(map[string]node)
	}
}

func splitPath(path string) ([]string, error) {
	segs := strings.Split(path, Separator)
	for _, s := range segs {
		if s == "" || strings.ContainsRune(s, '=') {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	return segs, nil
}

// Set stores a scalar value at the /-joined path, creating intermediate
// subtrees as needed. Whatever was previously stored at the leaf position,
// scalar or subtree, is replaced.
func (t *Tree) Set(path, value string) error {
	segs, err := splitPath(path)
	if err != nil {
		return err
	}
	t.init()
	cur := t
	for _, seg := range segs[:len(segs)-1] {
		next := cur.nodes[seg]
		if !next.isSubtree() {
			next = node{sub: New()}
			cur.nodes[seg] = next
		}
		cur = next.sub
	}
	cur.nodes[segs[len(segs)-1]] = node{scalar: value}
	return nil
}

// SetBool stores "1" or "0" at path.
func (t *Tree) SetBool(path string, v bool) error {
	if v {
		return t.Set(path, "1")
	}
	return t.Set(path, "0")
}

// Get returns the scalar stored at path. The second result is false when
// the path is absent, invalid, or names a subtree.
func (t *Tree) Get(path string) (string, bool) {
	segs, err := splitPath(path)
	if err != nil {
		return "", false
	}
	cur := t
	for _, seg := range segs[:len(segs)-1] {
		next := cur.nodes[seg]
		if !next.isSubtree() {
			return "", false
		}
		cur = next.sub
	}
	n, ok := cur.nodes[segs[len(segs)-1]]
	if !ok || n.isSubtree() {
		return "", false
	}
	return n.scalar, true
}

// GetBool interprets the scalar at path as a flag. "1" and "true" are true;
// anything else, including an absent value, is false.
func (t *Tree) GetBool(path string) bool {
	v, ok := t.Get(path)
	return ok && (v == "1" || v == "true")
}

// Remove deletes the value or subtree at path. It reports whether anything
// was removed.
func (t *Tree) Remove(path string) bool {
	segs, err := splitPath(path)
	if err != nil {
		return false
	}
	cur := t
	for _, seg := range segs[:len(segs)-1] {
		next := cur.nodes[seg]
		if !next.isSubtree() {
			return false
		}
		cur = next.sub
	}
	leaf := segs[len(segs)-1]
	if _, ok := cur.nodes[leaf]; !ok {
		return false
	}
	delete(cur.nodes, leaf)
	return true
}

// Merge applies in to t as a deep union: incoming scalars overwrite values
// at the same path, incoming subtrees merge recursively into existing
// subtrees, and a kind mismatch is resolved in favor of the incoming node.
// Incoming subtrees are copied, never aliased.
func (t *Tree) Merge(in *Tree) {
	if in == nil {
		return
	}
	t.init()
	for key, inNode := range in.nodes {
		if inNode.isSubtree() {
			existing := t.nodes[key]
			if existing.isSubtree() {
				existing.sub.Merge(inNode.sub)
				continue
			}
			t.nodes[key] = node{sub: inNode.sub.Clone()}
			continue
		}
		t.nodes[key] = node{scalar: inNode.scalar}
	}
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	out := New()
	for key, n := range t.nodes {
		if n.isSubtree() {
			out.nodes[key] = node{sub: n.sub.Clone()}
		} else {
			out.nodes[key] = n
		}
	}
	return out
}

// Entry is one scalar leaf produced by List.
type Entry struct {
	Path  string
	Value string
}

// List flattens the tree depth-first into one entry per scalar leaf.
// Children are visited in lexicographic key order, so the result is
// deterministic and identical across repeated calls.
func (t *Tree) List() []Entry {
	var out []Entry
	t.list("", &out)
	return out
}

func (t *Tree) list(prefix string, out *[]Entry) {
	keys := make([]string, 0, len(t.nodes))
	for key := range t.nodes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + Separator + key
		}
		n := t.nodes[key]
		if n.isSubtree() {
			n.sub.list(path, out)
		} else {
			*out = append(*out, Entry{Path: path, Value: n.scalar})
		}
	}
}

// Len returns the number of scalar leaves in the tree.
func (t *Tree) Len() int {
	total := 0
	for _, n := range t.nodes {
		if n.isSubtree() {
			total += n.sub.Len()
		} else {
			total++
		}
	}
	return total
}
