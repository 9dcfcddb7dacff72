package types

// Patch is a partial set of new attribute values for a nation.
// Nil fields are left untouched; Relationships entries overwrite the stored score.
type Patch struct {
	GDP       *float64 `json:"gdp,omitempty"`
	Debt      *float64 `json:"debt,omitempty"`
	Inflation *float64 `json:"inflation,omitempty"`
	Income    *float64 `json:"income,omitempty"`

	DefenseExpense        *float64 `json:"defense_expense,omitempty"`
	HealthExpense         *float64 `json:"health_expense,omitempty"`
	EducationExpense      *float64 `json:"education_expense,omitempty"`
	InfrastructureExpense *float64 `json:"infrastructure_expense,omitempty"`

	Experience    *float64       `json:"experience,omitempty"`
	Morale        *float64       `json:"morale,omitempty"`
	NuclearStatus *NuclearStatus `json:"nuclear_status,omitempty"`

	Stability     *float64 `json:"stability,omitempty"`
	Corruption    *float64 `json:"corruption,omitempty"`
	PublicSupport *float64 `json:"public_support,omitempty"`
	FreedomIndex  *float64 `json:"freedom_index,omitempty"`

	Gathering    *float64 `json:"gathering,omitempty"`
	Analysis     *float64 `json:"analysis,omitempty"`
	Cyber        *float64 `json:"cyber,omitempty"`
	CounterIntel *float64 `json:"counter_intel,omitempty"`

	Relationships map[string]float64 `json:"relationships,omitempty"`
}

// Float returns a pointer to v, for building patches
func Float(v float64) *float64 {
	return &v
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p.GDP == nil && p.Debt == nil && p.Inflation == nil && p.Income == nil &&
		p.DefenseExpense == nil && p.HealthExpense == nil && p.EducationExpense == nil &&
		p.InfrastructureExpense == nil && p.Experience == nil && p.Morale == nil &&
		p.NuclearStatus == nil && p.Stability == nil && p.Corruption == nil &&
		p.PublicSupport == nil && p.FreedomIndex == nil && p.Gathering == nil &&
		p.Analysis == nil && p.Cyber == nil && p.CounterIntel == nil && len(p.Relationships) == 0
}

// SetRelationship records a new relationship score toward id
func (p *Patch) SetRelationship(id string, score float64) {
	if p.Relationships == nil {
		p.Relationships = make(map[string]float64)
	}
	p.Relationships[id] = score
}

// Summary flattens the set fields into a key/value map for event payloads
func (p Patch) Summary() map[string]float64 {
	out := make(map[string]float64)
	add := func(key string, v *float64) {
		if v != nil {
			out[key] = *v
		}
	}
	add("gdp", p.GDP)
	add("debt", p.Debt)
	add("inflation", p.Inflation)
	add("income", p.Income)
	add("defense_expense", p.DefenseExpense)
	add("health_expense", p.HealthExpense)
	add("education_expense", p.EducationExpense)
	add("infrastructure_expense", p.InfrastructureExpense)
	add("experience", p.Experience)
	add("morale", p.Morale)
	add("stability", p.Stability)
	add("corruption", p.Corruption)
	add("public_support", p.PublicSupport)
	add("freedom_index", p.FreedomIndex)
	add("gathering", p.Gathering)
	add("analysis", p.Analysis)
	add("cyber", p.Cyber)
	add("counter_intel", p.CounterIntel)
	for id, score := range p.Relationships {
		out["relationship."+id] = score
	}
	return out
}
