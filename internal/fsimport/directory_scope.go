// Package fsimport maps dotted names onto packages and source files on
// disk, lazily materializing Package/Module semantic-graph nodes as
// names are looked up. It is grounded on the original's
// compiler/fsimport.cpp (DirectoryScope, FileSystemImporter,
// ModulePathScope) and, for the loader-shaped pieces, on the teacher's
// internal/modules/loader.go (detectPackageExtension/hasSourceFiles
// style checks) and internal/utils/path_utils.go (path helpers, now
// folded into internal/source.Path).
package fsimport

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sparkfront/semfront/internal/config"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/source"
)

// SourceImporter is the narrow view of the compiler a DirectoryScope
// needs to turn a matching .sp file into a Module, without fsimport
// importing internal/compiler (which itself imports fsimport) — the
// same cycle-breaking shape as the teacher's ModuleLoader/LoadedModule
// pair.
type SourceImporter interface {
	ImportModuleFromSource(path string) (semgraph.Member, error)
}

// DirectoryScope is a filesystem-backed Scope: one is attached to every
// Package, rooted at the directory that package corresponds to.
type DirectoryScope struct {
	dir      string
	owner    semgraph.Member
	importer SourceImporter
	reporter *diagnostics.Reporter

	fileStems map[string]bool // exact on-disk stems of recognized source files
	dirNames  map[string]bool // exact on-disk subdirectory names
	lowerSeen map[string]string // lowercase -> first-seen exact name, for case-collision detection

	aliasExpansion map[string][]string // alias -> dotted path components

	children map[string]*semgraph.Package
	modules  map[string]*semgraph.Module
}

// NewDirectoryScope enumerates dir once and parses package.txt if
// present. owner is the Package (or, for a root, nil) this scope
// belongs to; it becomes definedIn for every Package/Module
// materialized underneath it.
func NewDirectoryScope(dir string, owner semgraph.Member, importer SourceImporter, reporter *diagnostics.Reporter) (*DirectoryScope, error) {
	ds := &DirectoryScope{
		dir:            dir,
		owner:          owner,
		importer:       importer,
		reporter:       reporter,
		fileStems:      make(map[string]bool),
		dirNames:       make(map[string]bool),
		lowerSeen:      make(map[string]string),
		aliasExpansion: make(map[string][]string),
		children:       make(map[string]*semgraph.Package),
		modules:        make(map[string]*semgraph.Module),
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		name := e.Name()
		lower := strings.ToLower(name)
		if prev, collide := ds.lowerSeen[lower]; collide && prev != name {
			// Case-only collision: the second entry is ignored, matching
			// the original's "a subdirectory whose name collides with a
			// cached filename (case mismatch) is ignored" failure mode.
			continue
		}
		ds.lowerSeen[lower] = name
		if e.IsDir() {
			ds.dirNames[name] = true
			continue
		}
		if config.HasSourceExt(name) {
			ds.fileStems[config.TrimSourceExt(name)] = true
		}
	}
	aliasPath := filepath.Join(dir, config.PackageAliasFile)
	if data, err := os.ReadFile(aliasPath); err == nil {
		ds.parseAliases(string(data), aliasPath)
	}
	return ds, nil
}

func (ds *DirectoryScope) parseAliases(content, path string) {
	lines := strings.Split(content, "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ".")
		if len(parts) < 2 {
			if ds.reporter != nil {
				ds.reporter.Fatal(&source.Location{File: path, StartLine: i + 1, EndLine: i + 1}).
					WithCode(diagnostics.InvalidForm).
					Write("malformed package alias %q: needs at least two dotted components", line).
					Emit()
			}
			ds.aliasExpansion = make(map[string][]string)
			return
		}
		alias := parts[len(parts)-1]
		ds.aliasExpansion[alias] = parts
	}
}

// LookupName implements semgraph.Scope.
func (ds *DirectoryScope) LookupName(name string) []semgraph.Member {
	if name == "" {
		return nil
	}
	if expansion, ok := ds.aliasExpansion[name]; ok {
		return ds.resolveAlias(expansion)
	}
	if m := ds.lookupFsName(name); m != nil {
		return []semgraph.Member{m}
	}
	return nil
}

// resolveAlias drills through intermediate Package/Module/Type member
// scopes one dotted component at a time, the way the original resolves
// its first part in the filesystem and then walks each remaining
// intermediate scope.
func (ds *DirectoryScope) resolveAlias(parts []string) []semgraph.Member {
	if len(parts) == 0 {
		return nil
	}
	m := ds.lookupFsName(parts[0])
	if m == nil {
		return nil
	}
	for _, part := range parts[1 : len(parts)-1] {
		next := lookupInMember(m, part)
		if len(next) != 1 {
			return nil
		}
		m = next[0]
	}
	if len(parts) == 1 {
		return []semgraph.Member{m}
	}
	return lookupInMember(m, parts[len(parts)-1])
}

func lookupInMember(m semgraph.Member, name string) []semgraph.Member {
	switch v := semgraph.Unwrap(m).(type) {
	case *semgraph.Package:
		return v.MemberScope.LookupName(name)
	case *semgraph.Module:
		return v.TopScope.LookupName(name)
	case *semgraph.TypeDefn:
		return v.MemberScope.LookupName(name)
	default:
		return nil
	}
}

// lookupFsName resolves a single path component against the cached
// directory listing: a subdirectory materializes (and caches) a new
// Package; a source file with a matching exact-case stem triggers
// SourceImporter.ImportModuleFromSource.
func (ds *DirectoryScope) lookupFsName(name string) semgraph.Member {
	if pkg, ok := ds.children[name]; ok {
		return pkg
	}
	if mod, ok := ds.modules[name]; ok {
		return mod
	}
	if ds.dirNames[name] {
		sub, err := NewDirectoryScope(filepath.Join(ds.dir, name), nil, ds.importer, ds.reporter)
		if err != nil {
			return nil
		}
		pkg := semgraph.NewPackage(name, ds.owner, sub)
		sub.owner = pkg
		ds.children[name] = pkg
		return pkg
	}
	if ds.fileStems[name] {
		path := filepath.Join(ds.dir, name+config.SourceFileExt)
		mod, err := ds.importer.ImportModuleFromSource(path)
		if err != nil || mod == nil {
			return nil
		}
		if m, ok := mod.(*semgraph.Module); ok {
			ds.modules[name] = m
		}
		return mod
	}
	return nil
}

// ForAllNames emits, in sorted order, the stem of every recognized
// source file, every subdirectory name and every alias key: each name
// LookupName can resolve from this directory.
func (ds *DirectoryScope) ForAllNames(fn func(string)) {
	names := make([]string, 0, len(ds.fileStems)+len(ds.dirNames)+len(ds.aliasExpansion))
	for n := range ds.fileStems {
		names = append(names, n)
	}
	for n := range ds.dirNames {
		names = append(names, n)
	}
	for n := range ds.aliasExpansion {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fn(n)
	}
}

func (ds *DirectoryScope) AddMember(semgraph.Member) {
	// DirectoryScope's children are discovered lazily from disk, never
	// declared by a pass; AddMember is a no-op so DirectoryScope still
	// satisfies semgraph.Scope where one is expected structurally.
}

func (ds *DirectoryScope) Describe() string { return "directory:" + ds.dir }
func (ds *DirectoryScope) ScopeType() semgraph.ScopeType { return semgraph.DefaultScope }
