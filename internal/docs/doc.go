// Package docs provides read-only access to the markdown documentation
// root and header-delimited section extraction.
//
// Section parsing is a pure pass over a document's lines producing Section
// records up front; extraction is then a lookup by anchor slug. Anchors are
// derived from heading text by the slug rule: lowercase, spaces to hyphens,
// everything outside [a-z0-9-] stripped.
package docs
