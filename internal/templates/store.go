package templates

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/guestmail/internal/render"
)

// Template is one reusable message. Subject is empty when the file entry is
// a bare body string.
type Template struct {
	ID      string
	Subject string
	Body    string
}

// idPattern is the allowed shape for template ids: lowercase, digits,
// underscores, not starting with a digit.
var idPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Store holds the templates of one file, preserving the file's key order.
type Store struct {
	path  string
	order []string
	byID  map[string]Template
}

// Load reads a UTF-8 JSON template file: a top-level object mapping template
// id to either a body string or an object with subject and body fields.
// Key order is preserved and duplicate ids are rejected.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	s := &Store{path: path, byID: map[string]Template{}}
	if err := s.decode(f); err != nil {
		var dup *DuplicateError
		if errors.As(err, &dup) {
			return nil, err
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return s, nil
}

// decode walks the JSON token stream instead of unmarshalling into a map:
// encoding/json maps neither preserve key order nor surface duplicate keys.
func (s *Store) decode(r io.Reader) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("top level must be a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		t, err := parseTemplate(id, raw)
		if err != nil {
			return err
		}

		if _, exists := s.byID[id]; exists {
			return &DuplicateError{ID: id}
		}
		s.byID[id] = t
		s.order = append(s.order, id)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func parseTemplate(id string, raw json.RawMessage) (Template, error) {
	var body string
	if err := json.Unmarshal(raw, &body); err == nil {
		return Template{ID: id, Body: body}, nil
	}

	var obj struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Template{}, fmt.Errorf("template %q: value must be a body string or an object with a body field", id)
	}
	if obj.Body == "" {
		return Template{}, fmt.Errorf("template %q: missing body field", id)
	}
	return Template{ID: id, Subject: obj.Subject, Body: obj.Body}, nil
}

// Get returns the template for id.
func (s *Store) Get(id string) (Template, error) {
	t, ok := s.byID[id]
	if !ok {
		return Template{}, &NotFoundError{ID: id}
	}
	return t, nil
}

// IDs returns template ids in file order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// List returns all templates in file order.
func (s *Store) List() []Template {
	out := make([]Template, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of templates in the store.
func (s *Store) Len() int { return len(s.order) }

// RequiredFields returns the sorted unique placeholder names a template
// references across subject and body.
func RequiredFields(t Template) []string {
	return render.Fields(t.Subject, t.Body)
}

// Add inserts a new template and persists the store. The id must match
// idPattern and must not already exist.
func (s *Store) Add(t Template) error {
	if !idPattern.MatchString(t.ID) {
		return fmt.Errorf("templates: invalid id %q: use lowercase letters, digits, and underscores", t.ID)
	}
	if t.Body == "" {
		return fmt.Errorf("templates: template %q: body must not be empty", t.ID)
	}
	if _, exists := s.byID[t.ID]; exists {
		return &DuplicateError{ID: t.ID}
	}
	s.byID[t.ID] = t
	s.order = append(s.order, t.ID)
	return s.save()
}

// Update replaces the subject and/or body of an existing template and
// persists the store. A nil field keeps the current value.
func (s *Store) Update(id string, subject, body *string) error {
	t, ok := s.byID[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	if subject != nil {
		t.Subject = *subject
	}
	if body != nil {
		if *body == "" {
			return fmt.Errorf("templates: template %q: body must not be empty", id)
		}
		t.Body = *body
	}
	s.byID[id] = t
	return s.save()
}

// Delete removes a template and persists the store.
func (s *Store) Delete(id string) error {
	if _, ok := s.byID[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return s.save()
}

// save writes the store back to its file, keeping key order. Entries with a
// subject serialize as objects, bare bodies as strings.
func (s *Store) save() error {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, id := range s.order {
		t := s.byID[id]
		key, err := json.Marshal(id)
		if err != nil {
			return err
		}

		var value []byte
		if t.Subject == "" {
			value, err = json.Marshal(t.Body)
		} else {
			value, err = json.MarshalIndent(struct {
				Subject string `json:"subject"`
				Body    string `json:"body"`
			}{t.Subject, t.Body}, "  ", "  ")
		}
		if err != nil {
			return err
		}

		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(s.order)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("templates: save %s: %w", s.path, err)
	}
	return nil
}

// Init writes the default hotel template set to path. It refuses to
// overwrite an existing file.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("templates: file already exists at %s", path)
	}
	s := &Store{path: path, byID: map[string]Template{}}
	for _, t := range defaultTemplates() {
		s.byID[t.ID] = t
		s.order = append(s.order, t.ID)
	}
	return s.save()
}
