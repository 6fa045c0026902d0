package model

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnsupported = errors.New("unsupported option")

// Module is a node of the architecture tree.
type Module interface {
	// Name is the type name printed before the parentheses.
	Name() string
	// Extra is the constructor summary printed inside the parentheses.
	Extra() string
	// Children are the named submodules in registration order.
	Children() []Child
	// OwnParams counts the learnable parameters registered directly on the module.
	OwnParams() int64
}

// Child is a named submodule.
type Child struct {
	Name   string
	Module Module
}

// NumParams counts the learnable parameters of m and all its descendants.
func NumParams(m Module) int64 {
	total := m.OwnParams()
	for _, c := range m.Children() {
		total += NumParams(c.Module)
	}
	return total
}

// Format renders m as an indented tree, one child per line.
func Format(m Module) string {
	var lines []string
	if extra := m.Extra(); extra != "" {
		lines = append(lines, strings.Split(extra, "\n")...)
	}
	children := m.Children()
	for _, c := range children {
		lines = append(lines, "("+c.Name+"): "+indent(Format(c.Module), 2))
	}

	var b strings.Builder
	b.WriteString(m.Name())
	b.WriteString("(")
	switch {
	case len(lines) == 1 && len(children) == 0:
		b.WriteString(lines[0])
	case len(lines) > 0:
		b.WriteString("\n  ")
		b.WriteString(strings.Join(lines, "\n  "))
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return strings.ReplaceAll(s, "\n", "\n"+pad)
}

// pyFloat prints a float the way Python's repr does for the values used here.
func pyFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".en") {
		s += ".0"
	}
	return s
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

type container struct {
	name     string
	children []Child
}

func (c *container) Name() string      { return c.name }
func (c *container) Extra() string     { return "" }
func (c *container) Children() []Child { return c.children }
func (c *container) OwnParams() int64  { return 0 }
func (c *container) add(name string, m Module) {
	c.children = append(c.children, Child{Name: name, Module: m})
}
