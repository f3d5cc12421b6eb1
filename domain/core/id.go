package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ImportID identifies one spreadsheet import
type ImportID ID

// NewImportID creates a new time-ordered import identifier
func NewImportID() ImportID {
	return ImportID(NewID())
}

// String returns the string representation
func (id ImportID) String() string { return ID(id).String() }

// ParseImportID parses a string into ImportID
func ParseImportID(s string) (ImportID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("import ID cannot be empty")
	}
	return ImportID(s), nil
}
