package entities

import "fmt"

// LocatorKind selects the resolution strategy for a locator.
type LocatorKind string

const (
	LocatorByRole     LocatorKind = "role"
	LocatorBySelector LocatorKind = "selector"
)

// Locator is a declarative element descriptor. It carries either an ARIA role
// plus accessible name, or a raw selector expression. Resolution against live
// page state happens inside the session driver at action time; the descriptor
// itself is declared once and reused read-only.
type Locator struct {
	Kind     LocatorKind `json:"kind" yaml:"kind"`
	Role     string      `json:"role,omitempty" yaml:"role,omitempty"`
	Name     string      `json:"name,omitempty" yaml:"name,omitempty"`
	Exact    bool        `json:"exact,omitempty" yaml:"exact,omitempty"`
	Selector string      `json:"selector,omitempty" yaml:"selector,omitempty"`
}

// ByRole - builds a role-based locator (button, link, searchbox, heading, ...).
func ByRole(role, name string) Locator {
	return Locator{Kind: LocatorByRole, Role: role, Name: name}
}

// BySelector - builds a locator from a raw CSS selector.
func BySelector(selector string) Locator {
	return Locator{Kind: LocatorBySelector, Selector: selector}
}

// IsZero reports whether the locator is empty.
func (l Locator) IsZero() bool {
	return l.Role == "" && l.Selector == ""
}

func (l Locator) String() string {
	if l.Kind == LocatorByRole || (l.Kind == "" && l.Role != "") {
		if l.Name != "" {
			return fmt.Sprintf("role=%s[name=%q]", l.Role, l.Name)
		}
		return fmt.Sprintf("role=%s", l.Role)
	}
	return l.Selector
}
