// Package pagination selects a page of rows for the list command.
//
// Two mutually exclusive modes are supported:
//   - offset-based: --limit and --offset
//   - page-based: --page and --page-size
package pagination
