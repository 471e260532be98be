// Package export renders attendance and grade data as CSV and writes it to
// any destination the abstract file storage layer can address.
package export
