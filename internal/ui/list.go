package ui

import (
	"github.com/charmbracelet/bubbles/list"
)

var _ list.Item = row{}

// row is the uniform [list.Item] for every resource pane: a heading line
// and a caption built from the entity's scalar fields.
type row struct {
	heading string
	caption string
}

func (r row) Title() string       { return r.heading }
func (r row) Description() string { return r.caption }
func (r row) FilterValue() string { return r.heading }
