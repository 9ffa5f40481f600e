// Package essentials resolves the fixed set of well-known absolute
// names the compiler needs in hand — Any, Object, Enum — grounded on
// the original's sema/types/essentials.cpp.
package essentials

import (
	"fmt"
	"strings"

	"github.com/sparkfront/semfront/internal/config"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/source"
	"github.com/sparkfront/semfront/internal/types"
)

// ID names one essential type slot.
type ID int

const (
	Any ID = iota
	Object
	Enum
)

func (id ID) String() string {
	switch id {
	case Any:
		return "Any"
	case Object:
		return "Object"
	case Enum:
		return "Enum"
	default:
		return "?"
	}
}

// PathResolver is the narrow capability Load needs: resolve a dotted
// absolute name down to the Members it names. internal/compiler.Context
// provides this via its ModulePathScope plus package/module/type member
// scope drilling.
type PathResolver interface {
	ResolveAbsolute(dotted []string) []semgraph.Member
}

// Table holds the resolved Composite types, keyed by ID.
type Table struct {
	types map[ID]*types.CompositeType
}

func (t *Table) Get(id ID) *types.CompositeType {
	if t == nil {
		return nil
	}
	return t.types[id]
}

// Load resolves every entry of cfg against resolver, reporting
// EssentialMissing for any name that fails to resolve to exactly one
// Type-kind Member.
func Load(cfg config.EssentialsConfig, resolver PathResolver, reporter *diagnostics.Reporter) *Table {
	table := &Table{types: make(map[ID]*types.CompositeType)}
	entries := []struct {
		id   ID
		path string
	}{
		{Any, cfg.Any},
		{Object, cfg.Object},
		{Enum, cfg.Enum},
	}
	for _, e := range entries {
		parts := strings.Split(e.path, ".")
		hits := resolver.ResolveAbsolute(parts)
		composite, err := exactlyOneType(hits)
		if err != nil {
			if reporter != nil {
				reporter.Error(&source.Location{}).
					WithCode(diagnostics.EssentialMissing).
					Write("essential %s (%s): %s", e.id, e.path, err).
					Emit()
			}
			continue
		}
		table.types[e.id] = composite
	}
	return table
}

func exactlyOneType(hits []semgraph.Member) (*types.CompositeType, error) {
	var typed []semgraph.Member
	for _, m := range hits {
		if semgraph.Unwrap(m).Kind() == semgraph.TypeKind {
			typed = append(typed, m)
		}
	}
	if len(typed) == 0 {
		return nil, fmt.Errorf("not found")
	}
	if len(typed) > 1 {
		return nil, fmt.Errorf("ambiguous (%d candidates)", len(typed))
	}
	td := semgraph.Unwrap(typed[0]).(*semgraph.TypeDefn)
	return td.Type, nil
}
