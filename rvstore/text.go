package rvstore

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/roomview/roomview/rvconf"
	"github.com/roomview/roomview/rvdef"
)

// TextStore reads and writes configuration trees as a flat text file with
// one leaf per line:
//
//	Service/Autostart=T{1}
//	Authentication/EncodedLogonACL=B{aGVsbG8=}
//
// Text encoding T{...} is used when the value contains only printable ASCII
// and no braces or newlines; B{...} carries base64 otherwise. Lines starting
// with # and blank lines are ignored on load.
type TextStore struct {
	path string
}

var _ Store = (*TextStore)(nil)

// NewTextStore creates a text store backed by the given file.
func NewTextStore(path string) *TextStore {
	return &TextStore{path: path}
}

// needsBinaryEncoding returns true if the value cannot be carried in a
// single-line T{...} form.
func needsBinaryEncoding(value string) bool {
	for _, r := range value {
		if r < 0x20 || r >= 0x7f || r == '{' || r == '}' {
			return true
		}
	}
	return false
}

// Flush writes every leaf of tree to the file, in List order.
func (s *TextStore) Flush(tree *rvconf.Tree) error {
	entries := tree.List()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s configuration\n", rvdef.AppName)
	for _, e := range entries {
		if needsBinaryEncoding(e.Value) {
			fmt.Fprintf(&b, "%s=B{%s}\n", e.Path, base64.StdEncoding.EncodeToString([]byte(e.Value)))
		} else {
			fmt.Fprintf(&b, "%s=T{%s}\n", e.Path, e.Value)
		}
	}
	return atomicWriteFile(s.path, []byte(b.String()), 0600)
}

// Load parses the file into a tree. A missing file yields an empty tree.
func (s *TextStore) Load() (*rvconf.Tree, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return rvconf.New(), nil
		}
		return nil, err
	}
	defer f.Close()

	tree := rvconf.New()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		path, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%s:%d: missing '='", s.path, lineNo)
		}
		path = strings.TrimSpace(path)

		var decoded string
		switch {
		case strings.HasPrefix(value, "T{") && strings.HasSuffix(value, "}"):
			decoded = value[2 : len(value)-1]
		case strings.HasPrefix(value, "B{") && strings.HasSuffix(value, "}"):
			raw, err := base64.StdEncoding.DecodeString(value[2 : len(value)-1])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: decode base64 for %q: %w", s.path, lineNo, path, err)
			}
			decoded = string(raw)
		default:
			return nil, fmt.Errorf("%s:%d: value must use T{...} or B{...} encoding", s.path, lineNo)
		}

		if err := tree.Set(path, decoded); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.path, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tree, nil
}

// Path returns the file location for display purposes.
func (s *TextStore) Path() string {
	return s.path
}
