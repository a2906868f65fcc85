// Package assembly packages named solid bodies into a multi-body
// solid-model container and serializes it. The exporter never alters
// geometry: each body is tessellated and written as an independent
// named object. Writes are atomic, so a failed export leaves no
// partial file behind.
package assembly

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chazu/filament/pkg/solid"
)

// NamedBody pairs a body with its label. The label carries an intended
// material or color tag and is preserved on reload; it is not enforced
// by geometry.
type NamedBody struct {
	Label string
	Body  *solid.Body
}

// DuplicateLabelError reports a label collision within one export call.
type DuplicateLabelError struct {
	Label string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("assembly: duplicate body label %q", e.Label)
}

// Export serializes the bodies to a 3MF file at path. Labels must be
// unique; a duplicate fails before any I/O happens.
func Export(bodies []NamedBody, path string) error {
	if len(bodies) == 0 {
		return fmt.Errorf("assembly: export: no bodies")
	}
	seen := make(map[string]bool, len(bodies))
	for _, nb := range bodies {
		if nb.Label == "" {
			return fmt.Errorf("assembly: export: empty body label")
		}
		if seen[nb.Label] {
			return &DuplicateLabelError{Label: nb.Label}
		}
		seen[nb.Label] = true
	}

	data, err := encode3MF(bodies)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data, 0o644)
}

// writeFileAtomic stages the bytes in a temp file next to the target,
// then renames it into place. The target is only ever absent, the old
// file, or the complete new file.
func writeFileAtomic(path string, b []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	staged := tmp.Name()
	defer os.Remove(staged) // no-op once renamed

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(staged, path)
}
