// Package template defines the template engine contract renderers depend on.
// Concrete engines live in sub-packages.
package template
