// Package testsupport holds fixtures and assertions shared by the renderer
// and server test suites.
package testsupport

import (
	"context"
	"html"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// Error texts as they appear next to the controls.
const (
	FirstNameError = "Error: firstName must have at least 5 characters."
	LastNameError  = "Error: lastName is a required field."
	EmailError     = "Error: email must be a valid email address."
)

// ValidContact passes every rule and includes a message.
var ValidContact = contact.FormState{
	FirstName: "Weston",
	LastName:  "Woodard",
	Email:     "westonwoodard28@gmail.com",
	Message:   "abra kadabra alakazam",
}

// Context returns the context used by renderer tests.
func Context() context.Context {
	return context.Background()
}

// CompareText returns a cmp diff between two strings.
func CompareText(want, got string) string {
	return cmp.Diff(want, got)
}

var textPolicy = bluemonday.StrictPolicy()

// TextContent strips markup from an HTML document and returns the visible
// text with entities decoded.
func TextContent(document string) string {
	return html.UnescapeString(textPolicy.Sanitize(document))
}

// HasText reports whether the visible text of document matches pattern,
// case-insensitively.
func HasText(t *testing.T, document, pattern string) bool {
	t.Helper()
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		t.Fatalf("compile pattern %q: %v", pattern, err)
	}
	return re.MatchString(TextContent(document))
}

// ErrorTexts returns the known rule messages that appear in
// document, in field order.
func ErrorTexts(t *testing.T, document string) []string {
	t.Helper()
	var found []string
	for _, message := range []string{FirstNameError, LastNameError, EmailError} {
		if strings.Contains(TextContent(document), message) {
			found = append(found, message)
		}
	}
	return found
}
