// Package contact holds the contact form component: the controlled field
// values, per-field validation state and the snapshot taken on a valid
// submission. Front ends (HTML, terminal, HTTP) drive it through Change and
// Submit and render whatever Values, Errors and Submitted report.
package contact
