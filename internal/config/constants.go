package config

// Version is the current semfront version, set at build time via
// -ldflags or by editing this file, matching the teacher's convention.
var Version = "0.1.0"

// SourceFileExt is the canonical source extension; SourceFileExtensions
// lists every extension the file-system importer recognizes (kept as a
// slice, like the teacher, even though only one entry is defined, so a
// future dialect extension doesn't need to touch every call site).
const SourceFileExt = ".sp"

var SourceFileExtensions = []string{".sp"}

// TrimSourceExt removes a recognized source extension from a filename,
// returning the input unchanged if none matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt reports whether path ends with a recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// PackageAliasFile is the well-known filename §6 describes: a package.txt
// sitting in any directory expands dotted alias names.
const PackageAliasFile = "package.txt"

// IsTestMode mirrors the teacher's global test-mode flag. No code in
// this module sets or reads it.
var IsTestMode = false
