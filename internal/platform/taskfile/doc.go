// Package taskfile persists the task book as a single JSON document on
// disk. The document is human-inspectable (indented, non-ASCII text kept
// verbatim) and is always read and rewritten whole: there is no caching
// between calls and no partial update, so last writer wins.
package taskfile
