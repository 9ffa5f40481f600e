package fsimport

import (
	"path/filepath"
	"strings"

	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/semgraph"
)

// Importer is the capability ModulePathScope fans lookups out across.
// FileSystemImporter is the sole production implementation.
type Importer interface {
	LookupName(name string) []semgraph.Member
	GetPackageForPath(fsPath string) *semgraph.Package
}

// ModulePathScope is an ordered list of Importers. LookupName queries
// every importer in order and concatenates results — no first-match
// short-circuit, so two roots exposing the same package name surface as
// a MemberSet of length 2 that the classifier, not the scope, must
// judge.
type ModulePathScope struct {
	importers []Importer
}

func NewModulePathScope() *ModulePathScope { return &ModulePathScope{} }

func (m *ModulePathScope) AddImporter(imp Importer) { m.importers = append(m.importers, imp) }

func (m *ModulePathScope) LookupName(name string) []semgraph.Member {
	var out []semgraph.Member
	for _, imp := range m.importers {
		out = append(out, imp.LookupName(name)...)
	}
	return out
}

func (m *ModulePathScope) ForAllNames(fn func(string)) {
	emitted := make(map[string]bool)
	for _, imp := range m.importers {
		if fsi, ok := imp.(*FileSystemImporter); ok {
			fsi.forAllRootNames(func(n string) {
				if !emitted[n] {
					emitted[n] = true
					fn(n)
				}
			})
		}
	}
}

func (m *ModulePathScope) AddMember(semgraph.Member) {
	// ModulePathScope has no declared members of its own; roots are
	// added via AddImporter/FileSystemImporter.AddPath instead.
}

func (m *ModulePathScope) Describe() string { return "modulepath" }
func (m *ModulePathScope) ScopeType() semgraph.ScopeType { return semgraph.DefaultScope }

// GetPackageForPath asks each importer in turn; FileSystemImporter is
// the only one that can answer.
func (m *ModulePathScope) GetPackageForPath(fsPath string) *semgraph.Package {
	for _, imp := range m.importers {
		if pkg := imp.GetPackageForPath(fsPath); pkg != nil {
			return pkg
		}
	}
	return nil
}

// root pairs a root Package with the absolute filesystem path it was
// registered under.
type root struct {
	path string
	pkg  *semgraph.Package
	ds   *DirectoryScope
}

// FileSystemImporter holds a list of root Packages and the filesystem
// paths they originated from.
type FileSystemImporter struct {
	importer SourceImporter
	reporter *diagnostics.Reporter
	roots    []root
}

func NewFileSystemImporter(importer SourceImporter, reporter *diagnostics.Reporter) *FileSystemImporter {
	return &FileSystemImporter{importer: importer, reporter: reporter}
}

// AddPath creates a root Package named after dir's final path
// component, attaches a DirectoryScope, and registers it.
func (f *FileSystemImporter) AddPath(dir string) (*semgraph.Package, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	ds, err := NewDirectoryScope(abs, nil, f.importer, f.reporter)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(abs)
	pkg := semgraph.NewPackage(name, nil, ds)
	ds.owner = pkg
	f.roots = append(f.roots, root{path: abs, pkg: pkg, ds: ds})
	return pkg, nil
}

func (f *FileSystemImporter) LookupName(name string) []semgraph.Member {
	var out []semgraph.Member
	for _, r := range f.roots {
		out = append(out, r.pkg.MemberScope.LookupName(name)...)
	}
	return out
}

func (f *FileSystemImporter) forAllRootNames(fn func(string)) {
	for _, r := range f.roots {
		r.pkg.MemberScope.ForAllNames(fn)
	}
}

// GetPackageForPath strips whichever root's path is the longest
// matching prefix of fsPath, then drills the remainder as package
// names, asserting a unique Package at each step.
func (f *FileSystemImporter) GetPackageForPath(fsPath string) *semgraph.Package {
	abs, err := filepath.Abs(fsPath)
	if err != nil {
		return nil
	}
	var best *root
	for i := range f.roots {
		r := &f.roots[i]
		if strings.HasPrefix(abs, r.path) {
			if best == nil || len(r.path) > len(best.path) {
				best = r
			}
		}
	}
	if best == nil {
		return nil
	}
	rest := strings.TrimPrefix(abs, best.path)
	rest = strings.Trim(rest, string(filepath.Separator))
	pkg := best.pkg
	if rest == "" {
		return pkg
	}
	for _, part := range strings.Split(rest, string(filepath.Separator)) {
		if part == "" {
			continue
		}
		next := pkg.MemberScope.LookupName(part)
		if len(next) != 1 {
			return nil
		}
		p, ok := next[0].(*semgraph.Package)
		if !ok {
			return nil
		}
		pkg = p
	}
	return pkg
}
