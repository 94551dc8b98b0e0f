// Package openapi describes the contact form HTTP surface as an OpenAPI 3
// document built with kin-openapi. The request schema carries the same
// constraints the form rules enforce.
package openapi
