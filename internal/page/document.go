// Package page models the themed page surface that reacts to theme changes.
package page

import (
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/jmylchreest/glimmer/internal/theme"
)

// ThemeAttribute is the root element attribute carrying the active theme.
const ThemeAttribute = "data-theme"

// Avatar is a testimonial image on the page.
type Avatar struct {
	Src    string
	Filter string
}

// Document holds the presentation state of the page: root attributes, the
// navigation background and avatar image filters.
type Document struct {
	mu            sync.RWMutex
	attrs         map[string]string
	navBackground string
	avatars       []Avatar
}

// NewDocument creates a document with n avatar images and no theme applied.
func NewDocument(avatars int) *Document {
	d := &Document{
		attrs:   make(map[string]string),
		avatars: make([]Avatar, avatars),
	}
	for i := range d.avatars {
		d.avatars[i].Src = fmt.Sprintf("assets/img/avatar-%d.webp", i+1)
	}
	return d
}

// Apply sets the theme attribute, navigation background and avatar filters
// for t. Its signature matches store.Listener.
func (d *Document) Apply(t theme.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("apply: %w: %q", theme.ErrUnknownTheme, t)
	}
	p := theme.PaletteFor(t)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.attrs[ThemeAttribute] = t.String()
	d.navBackground = p.NavBackground
	for i := range d.avatars {
		d.avatars[i].Filter = p.AvatarFilter
	}
	return nil
}

// Attr returns a root element attribute.
func (d *Document) Attr(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.attrs[name]
	return v, ok
}

// NavBackground returns the navigation bar background colour.
func (d *Document) NavBackground() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.navBackground
}

// Avatars returns a copy of the avatar images.
func (d *Document) Avatars() []Avatar {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Avatar, len(d.avatars))
	copy(out, d.avatars)
	return out
}

type avatarView struct {
	Src    string
	Filter template.CSS
}

type pageView struct {
	Theme         string
	NavBackground template.CSS
	Avatars       []avatarView
}

// Render writes the page skeleton with the current presentation state.
func (d *Document) Render(w io.Writer) error {
	d.mu.RLock()
	// Values come from the fixed palettes, never from user input
	view := pageView{
		Theme:         d.attrs[ThemeAttribute],
		NavBackground: template.CSS(d.navBackground),
		Avatars:       make([]avatarView, len(d.avatars)),
	}
	for i, a := range d.avatars {
		view.Avatars[i] = avatarView{Src: a.Src, Filter: template.CSS(a.Filter)}
	}
	d.mu.RUnlock()

	return pageTemplate.Execute(w, view)
}
