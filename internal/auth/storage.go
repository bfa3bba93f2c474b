package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/holidaze/client-go/internal/model"
)

// sessionRecord is the single persisted session file. Only the Store
// reads and writes it; every other component goes through the Store.
type sessionRecord struct {
	path string
}

// load reads the persisted session. A missing file, unreadable content
// or a record that fails validation all report ok=false; hydration must
// never turn a bad record into a startup failure.
func (r sessionRecord) load() (model.Session, bool) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return model.Session{}, false
	}

	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return model.Session{}, false
	}
	if !sess.Valid() {
		return model.Session{}, false
	}
	return sess, true
}

// save writes the session record, creating parent directories as
// needed. The file is user-readable only; it holds a bearer token.
func (r sessionRecord) save(sess model.Session) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// clear removes the session record. A file that is already gone is not
// an error.
func (r sessionRecord) clear() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
