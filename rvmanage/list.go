package rvmanage

import (
	"fmt"
	"io"

	"github.com/roomview/roomview/rvconf"
)

// ListConfiguration writes one newline-terminated "path=value" line per
// scalar leaf of tree to w, in lexicographic path order. The output is
// UTF-8 with no escaping; it stays unambiguous because rvconf rejects key
// segments containing '=' or the separator at the Set boundary.
func ListConfiguration(w io.Writer, tree *rvconf.Tree) error {
	for _, e := range tree.List() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", e.Path, e.Value); err != nil {
			return err
		}
	}
	return nil
}
