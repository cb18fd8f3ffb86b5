package audit

import (
	"math"

	"github.com/designlint/designlint/internal/domain"
)

// Category coverage is a proxy over overall compliance restricted to the
// kinds deemed relevant to each category, not a per-category issue count.
var (
	componentRelevantKinds = []domain.Kind{
		domain.KindFrame, domain.KindGroup, domain.KindInstance,
		domain.KindComponent, domain.KindComponentSet,
	}
	tokenRelevantKinds = []domain.Kind{
		domain.KindRectangle, domain.KindEllipse, domain.KindLine,
		domain.KindPolygon, domain.KindStar, domain.KindVector,
		domain.KindBooleanOp, domain.KindText, domain.KindFrame,
	}
	styleRelevantKinds = []domain.Kind{
		domain.KindRectangle, domain.KindEllipse, domain.KindVector,
		domain.KindText, domain.KindFrame, domain.KindInstance,
	}
)

// aggregator folds layer reports into running totals. It sees only nodes
// that were actually evaluated; ignored kinds never reach it.
type aggregator struct {
	byKind       map[domain.Kind]*domain.TypeStat
	total        int
	compliant    int
	nonCompliant []domain.LayerReport
}

func newAggregator() *aggregator {
	return &aggregator{byKind: make(map[domain.Kind]*domain.TypeStat)}
}

func (a *aggregator) add(r domain.LayerReport) {
	stat, ok := a.byKind[r.Kind]
	if !ok {
		stat = &domain.TypeStat{}
		a.byKind[r.Kind] = stat
	}
	stat.Total++
	a.total++
	if r.Compliant {
		stat.Compliant++
		a.compliant++
	} else {
		a.nonCompliant = append(a.nonCompliant, r)
	}
}

func (a *aggregator) finalize(rootName string, cfg domain.EngineConfig) *domain.CoverageReport {
	byKind := make(map[domain.Kind]domain.TypeStat, len(a.byKind))
	for kind, stat := range a.byKind {
		stat.Percentage = pct(stat.Compliant, stat.Total)
		byKind[kind] = *stat
	}

	nonCompliant := a.nonCompliant
	if nonCompliant == nil {
		nonCompliant = []domain.LayerReport{}
	}

	return &domain.CoverageReport{
		Summary: domain.Summary{
			OverallScore:      pct(a.compliant, a.total),
			ComponentCoverage: a.coverageOver(componentRelevantKinds),
			TokenCoverage:     a.coverageOver(tokenRelevantKinds),
			StyleCoverage:     a.coverageOver(styleRelevantKinds),
			TotalLayers:       a.total,
			CompliantLayers:   a.compliant,
			AnalyzedRootName:  rootName,
		},
		Details: domain.Details{
			ByKind:       byKind,
			NonCompliant: nonCompliant,
		},
		SettingsEcho: cfg,
	}
}

// coverageOver computes compliance restricted to a fixed kind subset.
func (a *aggregator) coverageOver(kinds []domain.Kind) int {
	var total, compliant int
	for _, kind := range kinds {
		if stat, ok := a.byKind[kind]; ok {
			total += stat.Total
			compliant += stat.Compliant
		}
	}
	return pct(compliant, total)
}

// pct rounds a ratio to a whole percentage, guarded for empty buckets.
func pct(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
