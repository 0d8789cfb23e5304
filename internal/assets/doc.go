// Package assets provides the CSS styles for HTML table previews.
//
// Styles are embedded at compile time and loaded by name through the
// package-level LoadStyle or an EmbeddedLoader. The converter layers custom
// styles on top: a style flag may name a built-in, point at a CSS file on
// disk, or carry raw CSS content, with built-ins resolved here.
//
// # Security
//
// Style names are validated to prevent path traversal: no separators, no
// dots, no traversal sequences. File-based overrides are read by the caller,
// not by this package.
package assets
