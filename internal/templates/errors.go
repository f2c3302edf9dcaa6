package templates

import "fmt"

// LoadError reports a template file that is missing, unreadable, or not
// valid JSON.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("templates: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NotFoundError reports a lookup for a template id that does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("templates: template %q not found", e.ID)
}

// DuplicateError reports two entries sharing the same template id.
// Duplicates are always an error, never a silent overwrite.
type DuplicateError struct {
	ID string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("templates: duplicate template id %q", e.ID)
}
