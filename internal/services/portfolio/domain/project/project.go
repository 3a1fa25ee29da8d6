// Package project defines portfolio project records and the ordered catalog
// that holds them for the lifetime of the process.
//
// A catalog is built once at startup and never mutated. Records are handed out
// as pointers so that UI state can keep a non-owning reference to the project
// it is showing; callers must treat those records as read-only.
package project

import (
	"slices"
	"strings"
)

// Record describes one portfolio project.
type Record struct {
	Title      string
	Subtitle   string
	Tech       []string
	Impact     []string
	Featured   bool
	Problem    string
	Importance string
	// Build may span several lines. Line breaks are significant for display
	// and the text is never interpreted as markup.
	Build   string
	Extra   string
	Metrics []string
}

// Slug returns the routing identifier derived from the record title.
func (r *Record) Slug() string {
	if r == nil {
		return ""
	}
	return Slug(r.Title)
}

// BuildLines splits Build into display lines. Leading and trailing blank
// lines and trailing spaces are dropped and the indentation shared by every
// line is removed; relative indentation and inner blank lines are kept.
func (r *Record) BuildLines() []string {
	if r == nil || strings.TrimSpace(r.Build) == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(r.Build, "\r\n", "\n"), "\n")
	for strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || width < indent {
			indent = width
		}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if len(line) < indent {
			continue
		}
		out[i] = line[indent:]
	}
	return out
}

// HasMetrics reports whether the record carries a metrics list at all.
func (r *Record) HasMetrics() bool {
	return r != nil && r.Metrics != nil
}

func (r Record) clone() Record {
	r.Tech = slices.Clone(r.Tech)
	r.Impact = slices.Clone(r.Impact)
	r.Metrics = slices.Clone(r.Metrics)
	return r
}
