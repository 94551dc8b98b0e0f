// Package server exposes the contact form over HTTP. Each request builds its
// own form, replays the posted values as change events, submits and renders
// the result; nothing is kept between requests.
package server
