package hostcanvas

import (
	"maps"
	"strconv"
)

// Style is a plain property bag standing in for CSSStyleDeclaration. Engines
// write sizes and touch-action hints into it; nothing reads them back except
// the engine itself.
type Style struct {
	props map[string]string
}

func newStyle() *Style {
	return &Style{props: make(map[string]string)}
}

// SetProperty stores value under name. An empty value removes the property.
func (s *Style) SetProperty(name, value string) {
	if value == "" {
		delete(s.props, name)
		return
	}
	s.props[name] = value
}

// GetPropertyValue returns the stored value or "".
func (s *Style) GetPropertyValue(name string) string {
	return s.props[name]
}

// RemoveProperty deletes name and returns its previous value.
func (s *Style) RemoveProperty(name string) string {
	old := s.props[name]
	delete(s.props, name)
	return old
}

// Set is an alias of SetProperty for direct member assignment (style.width = ...).
func (s *Style) Set(name, value string) { s.SetProperty(name, value) }

// Get is an alias of GetPropertyValue.
func (s *Style) Get(name string) string { return s.GetPropertyValue(name) }

// Len returns the number of stored properties.
func (s *Style) Len() int { return len(s.props) }

// Props returns a copy of the bag.
func (s *Style) Props() map[string]string {
	return maps.Clone(s.props)
}

// formatPx renders a logical length as a CSS pixel value.
func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
