// SPDX-License-Identifier: MPL-2.0

package widgetfile

import (
	"fmt"
	"os"

	"widgetcfg/pkg/xmltree"
)

// Bytes serializes the manifest with the fixed four-space indentation.
func (w *Widgetfile) Bytes() []byte {
	return xmltree.Serialize(w.doc)
}

// Save serializes the manifest and overwrites the originating file. The
// in-memory document stays valid for further mutation and save cycles.
func (w *Widgetfile) Save() error {
	return w.SaveTo(w.path)
}

// SaveTo serializes the manifest and writes it to the given path.
func (w *Widgetfile) SaveTo(path string) error {
	if err := os.WriteFile(path, w.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest to %s: %w", path, err)
	}
	return nil
}

// SaveAsync starts a Save in the background and returns a channel that
// receives exactly one value (the save's outcome) and is then closed. The
// serialized bytes are captured before the call returns, but the caller must
// still not start another mutation or save on the same Widgetfile until the
// outcome has been received.
func (w *Widgetfile) SaveAsync() <-chan error {
	// Serialize on the caller's goroutine so the write races with nothing.
	data := w.Bytes()
	path := w.path

	done := make(chan error, 1)
	go func() {
		defer close(done)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			done <- fmt.Errorf("failed to write manifest to %s: %w", path, err)
			return
		}
		done <- nil
	}()
	return done
}
