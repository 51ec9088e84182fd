// Package schedule parses Langara registration pages into course session records.
//
// The schedule package locates the "Registered Courses" table inside a loosely
// structured Banner-style HTML document, resolves its (possibly multi-row)
// header columns, and extracts one Session per table row. Rows that omit the
// course identity fields inherit them from the previous row, matching the
// registration system's convention of printing Subject/Course/Section only on
// the first of several rows for the same course.
package schedule
