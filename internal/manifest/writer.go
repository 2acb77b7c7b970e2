package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/user0420EEC/hassmap/internal/filelock"
)

// Write serializes the manifest with 2-space indentation and writes it to
// path, unconditionally replacing any previous file. Non-ASCII text and the
// arrows in usage_rules are left unescaped. The write is atomic, so a
// failure partway through never leaves a truncated manifest behind.
// Returns the number of bytes written.
func Write(m *Manifest, path string) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return 0, fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := filelock.AtomicWrite(path, buf.Bytes()); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
