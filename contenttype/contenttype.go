// Package contenttype maps file extensions to MIME content types.
//
// The mapping is a fixed part of this package's contract: changing an entry
// changes the Content-Type attached to uploaded objects, so additions must be
// versioned deliberately.
package contenttype

import "strings"

// Default is the content type used when the extension is unmapped or absent.
const Default = "application/octet-stream"

// table maps lowercase file extensions (without the leading dot) to MIME types.
// Lookups are case-sensitive; "CSV" falls through to Default.
var table = map[string]string{
	"html": "text/html",
	"csv":  "text/csv",
	"txt":  "text/plain",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"pkl":  "application/octet-stream",
}

// Resolve returns the content type for the file named fileName based on its
// extension, or Default if the extension is unmapped or the name has none.
// It is a total function over all string inputs and never errors.
func Resolve(fileName string) string {
	ext := extension(fileName)
	if ext == "" {
		return Default
	}
	if ct, ok := table[ext]; ok {
		return ct
	}
	return Default
}

// Known reports whether the extension of fileName has an explicit mapping.
// Callers that can sniff file contents use this to decide when to fall back.
func Known(fileName string) bool {
	_, ok := table[extension(fileName)]
	return ok
}

// extension returns the substring after the last '.' of the final path
// segment, or "" if the segment has no dot.
func extension(fileName string) string {
	base := fileName
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return ""
	}
	return base[i+1:]
}
