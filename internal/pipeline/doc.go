// Package pipeline orchestrates a full page translation pass: detect
// candidate bubbles, recognize their source text, translate it, and
// composite the replacements back onto the page.
//
// Every collaborator is injected behind a narrow interface, so tests run
// with stubs and builds without OCR support still composite pages from
// caller-supplied regions. Collaborator failures degrade per region:
// a failed recognition leaves the region's text empty (which makes
// compositing skip it), a failed translation substitutes the original
// text. Only a nil page image fails the whole run.
package pipeline
