// Package saves converts the application document to and from the portable
// save-file format used for backups and moving progress between devices.
package saves

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/models"
)

// FileName is the suggested name for exported saves.
const FileName = "questtrack_rpg_save.json"

// Export serializes the whole document as indented JSON.
func Export(doc *models.Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return b, nil
}

type payload struct {
	Users   json.RawMessage `json:"users"`
	Session json.RawMessage `json:"session"`
}

// Import builds the document that results from loading raw over current.
// Users and session are replaced wholesale; meta is kept from current. A
// missing or null session becomes the logged-out default. current is not
// modified.
func Import(current *models.Document, raw []byte) (*models.Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, invalid(trimmed)
	}

	var p payload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, common.Import("Could not import save file.")
	}
	users := bytes.TrimSpace(p.Users)
	if len(users) == 0 || users[0] != '[' {
		return nil, common.Import("Invalid save file.")
	}

	next := &models.Document{Meta: current.Meta}
	if err := json.Unmarshal(users, &next.Users); err != nil {
		return nil, common.Import("Could not import save file.")
	}
	if s := bytes.TrimSpace(p.Session); len(s) > 0 && !bytes.Equal(s, []byte("null")) {
		if err := json.Unmarshal(s, &next.Session); err != nil {
			return nil, common.Import("Could not import save file.")
		}
	}

	next.Normalize()
	return next, nil
}

// invalid distinguishes well-formed JSON of the wrong shape from text that
// does not parse at all.
func invalid(b []byte) error {
	if json.Valid(b) {
		return common.Import("Invalid save file.")
	}
	return common.Import("Could not import save file.")
}
