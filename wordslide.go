// Package wordslide imports song lyrics into slide sets.
// It pulls a title, an ordered list of verses and an optional chorus out of
// hymnal web pages and legacy presentation files.
//
// This package contains domain types, interfaces and the literal-marker
// scanning primitives following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, http/, etree/).
package wordslide
