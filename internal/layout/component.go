package layout

import (
	"strings"

	"github.com/wpscaffold/cli/internal/output"
)

// Component is an optional feature module of the boilerplate.
type Component string

const (
	Controller Component = "controller"
	Cron       Component = "cron"
	Model      Component = "model"
	Route      Component = "route"
	Widget     Component = "widget"
	Shortcode  Component = "shortcode"
)

// Vocabulary lists every known component in scaffold order.
var Vocabulary = []Component{Controller, Cron, Model, Route, Widget, Shortcode}

// ParseComponents matches raw identifiers against vocabulary, case-insensitively
// after trimming. The result follows vocabulary order without duplicates.
// Unknown identifiers are returned separately and otherwise ignored.
func ParseComponents(vocabulary []Component, raw []string) (selected []Component, unknown []string) {
	requested := make(map[Component]bool, len(raw))
	for _, r := range raw {
		name := Component(strings.ToLower(strings.TrimSpace(r)))
		if name == "" {
			continue
		}
		if !contains(vocabulary, name) {
			output.Debug("ignoring unknown component", "component", r)
			unknown = append(unknown, r)
			continue
		}
		requested[name] = true
	}

	for _, c := range vocabulary {
		if requested[c] {
			selected = append(selected, c)
		}
	}
	return selected, unknown
}

var descriptions = map[Component]string{
	Controller: "request controller class",
	Cron:       "scheduled task class",
	Model:      "post and user model classes",
	Route:      "custom rewrite router",
	Widget:     "widget class with admin and client views",
	Shortcode:  "shortcode class and factory",
}

// Description is a short human summary of c.
func (c Component) Description() string {
	return descriptions[c]
}

// Files lists the files a component moves into the plugin for variant v,
// relative to the plugin root.
func (c Component) Files(v Variant) []string {
	var files []string
	for _, op := range componentFiles[v][c] {
		if op.Kind == Move {
			files = append(files, op.Dest)
		}
	}
	return files
}

// Names converts components to their string identifiers.
func Names(components []Component) []string {
	out := make([]string, len(components))
	for i, c := range components {
		out[i] = string(c)
	}
	return out
}

func contains(vocabulary []Component, c Component) bool {
	for _, v := range vocabulary {
		if v == c {
			return true
		}
	}
	return false
}
