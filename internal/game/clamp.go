package game

import (
	"math"

	"github.com/user/mideast-strategy/internal/types"
)

const (
	minRelationship = -100
	maxRelationship = 100
)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// fieldRange declares the valid range of one numeric nation attribute
type fieldRange struct {
	name     string
	field    func(n *types.Nation) *float64
	min, max float64
}

// nationRanges is applied after every patch merge
var nationRanges = []fieldRange{
	{"stability", func(n *types.Nation) *float64 { return &n.Politics.Stability }, 0, 100},
	{"corruption", func(n *types.Nation) *float64 { return &n.Politics.Corruption }, 0, 100},
	{"public_support", func(n *types.Nation) *float64 { return &n.Politics.PublicSupport }, 0, 100},
	{"freedom_index", func(n *types.Nation) *float64 { return &n.Politics.FreedomIndex }, 0, 100},
	{"pressure.opposition", func(n *types.Nation) *float64 { return &n.Politics.PressureGroups.Opposition }, 0, 100},
	{"pressure.minorities", func(n *types.Nation) *float64 { return &n.Politics.PressureGroups.Minorities }, 0, 100},
	{"pressure.military", func(n *types.Nation) *float64 { return &n.Politics.PressureGroups.Military }, 0, 100},
	{"pressure.religious", func(n *types.Nation) *float64 { return &n.Politics.PressureGroups.Religious }, 0, 100},
	{"experience", func(n *types.Nation) *float64 { return &n.Military.Experience }, 0, 100},
	{"morale", func(n *types.Nation) *float64 { return &n.Military.Morale }, 0, 100},
	{"agencies", func(n *types.Nation) *float64 { return &n.Intelligence.Agencies }, 0, 100},
	{"gathering", func(n *types.Nation) *float64 { return &n.Intelligence.Capabilities.Gathering }, 0, 100},
	{"analysis", func(n *types.Nation) *float64 { return &n.Intelligence.Capabilities.Analysis }, 0, 100},
	{"cyber", func(n *types.Nation) *float64 { return &n.Intelligence.Capabilities.Cyber }, 0, 100},
	{"counter_intel", func(n *types.Nation) *float64 { return &n.Intelligence.Capabilities.CounterIntel }, 0, 100},
	{"debt", func(n *types.Nation) *float64 { return &n.Economy.Debt }, 0, math.Inf(1)},
	{"inflation", func(n *types.Nation) *float64 { return &n.Economy.Inflation }, 0, math.Inf(1)},
}

// clampNation forces every ranged attribute and relationship back into bounds
func clampNation(n *types.Nation) {
	for _, r := range nationRanges {
		p := r.field(n)
		*p = clamp(*p, r.min, r.max)
	}
	for id, score := range n.Diplomacy.Relationships {
		n.Diplomacy.Relationships[id] = clamp(score, minRelationship, maxRelationship)
	}
}

// applyPatch merges p onto n and re-establishes the range invariants
func applyPatch(n *types.Nation, p types.Patch) {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}

	set(&n.Economy.GDP, p.GDP)
	set(&n.Economy.Debt, p.Debt)
	set(&n.Economy.Inflation, p.Inflation)
	set(&n.Economy.Budget.Income, p.Income)
	set(&n.Economy.Budget.Expenses.Defense, p.DefenseExpense)
	set(&n.Economy.Budget.Expenses.Health, p.HealthExpense)
	set(&n.Economy.Budget.Expenses.Education, p.EducationExpense)
	set(&n.Economy.Budget.Expenses.Infrastructure, p.InfrastructureExpense)
	set(&n.Military.Experience, p.Experience)
	set(&n.Military.Morale, p.Morale)
	set(&n.Politics.Stability, p.Stability)
	set(&n.Politics.Corruption, p.Corruption)
	set(&n.Politics.PublicSupport, p.PublicSupport)
	set(&n.Politics.FreedomIndex, p.FreedomIndex)
	set(&n.Intelligence.Capabilities.Gathering, p.Gathering)
	set(&n.Intelligence.Capabilities.Analysis, p.Analysis)
	set(&n.Intelligence.Capabilities.Cyber, p.Cyber)
	set(&n.Intelligence.Capabilities.CounterIntel, p.CounterIntel)

	if p.NuclearStatus != nil {
		n.Military.Nuclear.Status = *p.NuclearStatus
	}

	if len(p.Relationships) > 0 && n.Diplomacy.Relationships == nil {
		n.Diplomacy.Relationships = make(map[string]float64, len(p.Relationships))
	}
	for id, score := range p.Relationships {
		if id == n.ID {
			continue
		}
		n.Diplomacy.Relationships[id] = score
	}

	clampNation(n)
}
