package dom

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/domfocus/pkg/errors"
)

// Attr is a name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// GetAttribute returns the value of the named attribute and whether it is
// present. A present attribute may have an empty value.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = asciiLower(name)
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// SetAttribute adds or updates an attribute.
func (e *Element) SetAttribute(name, value string) error {
	if err := validateName(name); err != nil {
		return errors.New("dom.Element.SetAttribute", errors.KindInvalidCharacter,
			"invalid attribute name %q: %v", name, err)
	}
	name = asciiLower(name)
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			e.attributeChanged()
			return nil
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	e.attributeChanged()
	return nil
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = asciiLower(name)
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = slices.Delete(e.attrs, i, i+1)
			e.attributeChanged()
			return
		}
	}
}

// ToggleAttribute removes the attribute if present and adds it with an empty
// value otherwise. It reports whether the attribute is present afterwards.
func (e *Element) ToggleAttribute(name string) (bool, error) {
	if e.HasAttribute(name) {
		e.RemoveAttribute(name)
		return false, nil
	}
	if err := e.SetAttribute(name, ""); err != nil {
		return false, err
	}
	return true, nil
}

// Attributes returns a copy of the element's attributes in insertion order.
func (e *Element) Attributes() []Attr {
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

func (e *Element) attributeChanged() {
	if e.doc != nil {
		e.doc.ClearCache()
	}
}

// validateName applies the HTML parser's name rules to tag and attribute names.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if i := strings.IndexAny(name, " \t\n\f\r/>=\"'\x00"); i >= 0 {
		return fmt.Errorf("character %q not allowed", name[i])
	}
	return nil
}

// asciiLower lower-cases ASCII letters only, as HTML does for names.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
