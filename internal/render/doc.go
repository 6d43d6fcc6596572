// Package render turns ticket rows into HTML: the generic ticket table, the
// status badge, detail links and the page shell with its metadata.
package render
