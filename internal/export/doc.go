// Package export writes frames as SVG documents.
package export
