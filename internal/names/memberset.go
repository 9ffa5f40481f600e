package names

import (
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/semgraph"
	"github.com/sparkfront/semfront/internal/source"
)

// MemberSet is the result of classifying a name lookup: a stem (the
// owning Member, or nil for a free lookup), the candidate Members, the
// computed Genus, and the source name/location for diagnostics.
type MemberSet struct {
	Stem    semgraph.Member
	Name    string
	Loc     source.Location
	Members []semgraph.Member
	Genus   Genus
}

// FillMemberSet classifies candidates relative to subject, applying
// visibility partitioning then genus classification, per §4.8.2.
// Reporter may be nil in tests that only want the classification.
func FillMemberSet(subject semgraph.Member, stem semgraph.Member, name string, loc source.Location, candidates []semgraph.Member, reporter *diagnostics.Reporter) *MemberSet {
	ms := &MemberSet{Stem: stem, Name: name, Loc: loc}

	var visible, hidden []semgraph.Member
	for _, c := range candidates {
		if IsVisible(subject, c) {
			visible = append(visible, c)
		} else {
			hidden = append(hidden, c)
		}
	}

	active := visible
	if len(active) == 0 {
		active = candidates
	}
	ms.Genus = genusOfSet(active)
	ms.Members = active

	if len(hidden) > 0 && len(visible) == 0 {
		reportNotVisible(reporter, name, loc, hidden)
	}
	if ms.Genus == Inconsistent {
		reportAmbiguous(reporter, name, loc)
	}
	if ms.Genus == Variable && len(ms.Members) == 1 {
		if vd, ok := semgraph.Unwrap(ms.Members[0]).(*semgraph.ValueDefn); ok && !vd.Defined {
			reportUseBeforeDef(reporter, name, loc)
		}
	}
	return ms
}

func reportNotVisible(r *diagnostics.Reporter, name string, loc source.Location, hidden []semgraph.Member) {
	if r == nil {
		return
	}
	genus := genusOfSet(hidden)
	sink := r.Error(&loc).WithCode(diagnostics.NotVisible).
		Write("%s '%s' is not visible here", visibilityNoun(genus), name)
	sink.Emit()
	for _, m := range hidden {
		r.Info().Write("  candidate: %s", m.QualifiedName()).Emit()
	}
}

func visibilityNoun(g Genus) string {
	switch g {
	case Namespace:
		return "namespace"
	case Type:
		return "type"
	case Function:
		return "function"
	default:
		return "member"
	}
}

func reportAmbiguous(r *diagnostics.Reporter, name string, loc source.Location) {
	if r == nil {
		return
	}
	r.Error(&loc).WithCode(diagnostics.Ambiguous).
		Write("Ambiguous reference to '%s'", name).Emit()
}

func reportUseBeforeDef(r *diagnostics.Reporter, name string, loc source.Location) {
	if r == nil {
		return
	}
	r.Error(&loc).WithCode(diagnostics.UseBeforeDef).
		Write("reference to '%s' before assignment", name).Emit()
}
