package types

import (
	"maps"
	"slices"
	"time"
)

// Ideology is the governing system of a nation
type Ideology string

const (
	IdeologyDemocracy Ideology = "democracy"
	IdeologyAutocracy Ideology = "autocracy"
	IdeologyTheocracy Ideology = "theocracy"
)

// Doctrine is a nation's military posture
type Doctrine string

const (
	DoctrineDefensive  Doctrine = "defensive"
	DoctrineOffensive  Doctrine = "offensive"
	DoctrineAsymmetric Doctrine = "asymmetric"
)

// NuclearStatus tracks the progress of a nuclear program
type NuclearStatus string

const (
	NuclearNone        NuclearStatus = "none"
	NuclearDeveloping  NuclearStatus = "developing"
	NuclearOperational NuclearStatus = "operational"
)

// Phase is the lifecycle stage of a game
type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhasePlaying Phase = "playing"
	PhaseEnded   Phase = "ended"
)

// VictoryType tags how a game was won
type VictoryType string

const (
	VictoryMilitary      VictoryType = "military"
	VictoryEconomic      VictoryType = "economic"
	VictoryDiplomatic    VictoryType = "diplomatic"
	VictoryTechnological VictoryType = "technological"
)

// GameState represents the overall state of a single game
type GameState struct {
	CurrentPlayer string             `json:"current_player"`
	Turn          int                `json:"turn"`
	Nations       map[string]*Nation `json:"countries"`
	Events        []Event            `json:"events"`
	News          []NewsItem         `json:"news"`
	GlobalFactors GlobalFactors      `json:"global_factors"`
	Phase         Phase              `json:"game_phase"`
	Winner        string             `json:"winner,omitempty"`
	VictoryType   VictoryType        `json:"victory_type,omitempty"`
	Score         int                `json:"score"`
}

// GlobalFactors are world-wide values perturbed every turn
type GlobalFactors struct {
	OilPrice       float64 `json:"oil_price"`
	GlobalTension  float64 `json:"global_tension"`
	EconomicGrowth float64 `json:"economic_growth"`
}

// Nation is the unit of simulation
type Nation struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Capital  string   `json:"capital" yaml:"capital"`
	Flag     string   `json:"flag" yaml:"flag"`
	Ideology Ideology `json:"ideology" yaml:"ideology"`

	Population   int64        `json:"population" yaml:"population"`
	Demographics Demographics `json:"demographics" yaml:"demographics"`

	Economy      Economy      `json:"economy" yaml:"economy"`
	Military     Military     `json:"military" yaml:"military"`
	Politics     Politics     `json:"politics" yaml:"politics"`
	Diplomacy    Diplomacy    `json:"diplomacy" yaml:"diplomacy"`
	Intelligence Intelligence `json:"intelligence" yaml:"intelligence"`
	Resources    Resources    `json:"resources" yaml:"resources"`
}

// Demographics holds named population shares
type Demographics struct {
	Ethnic    map[string]float64 `json:"ethnic" yaml:"ethnic"`
	Religious map[string]float64 `json:"religious" yaml:"religious"`
}

// Economy holds a nation's economic figures
type Economy struct {
	GDP       float64  `json:"gdp" yaml:"gdp"`
	Sectors   Sectors  `json:"sectors" yaml:"sectors"`
	Budget    Budget   `json:"budget" yaml:"budget"`
	Debt      float64  `json:"debt" yaml:"debt"`
	Inflation float64  `json:"inflation" yaml:"inflation"`
	Sanctions []string `json:"sanctions" yaml:"sanctions"`
}

// Sectors is the share of GDP per sector
type Sectors struct {
	Oil         float64 `json:"oil" yaml:"oil"`
	Technology  float64 `json:"technology" yaml:"technology"`
	Tourism     float64 `json:"tourism" yaml:"tourism"`
	Agriculture float64 `json:"agriculture" yaml:"agriculture"`
	Industry    float64 `json:"industry" yaml:"industry"`
}

// Budget is yearly income and expenses
type Budget struct {
	Income   float64  `json:"income" yaml:"income"`
	Expenses Expenses `json:"expenses" yaml:"expenses"`
}

// Expenses by category
type Expenses struct {
	Defense        float64 `json:"defense" yaml:"defense"`
	Health         float64 `json:"health" yaml:"health"`
	Education      float64 `json:"education" yaml:"education"`
	Infrastructure float64 `json:"infrastructure" yaml:"infrastructure"`
}

// Military holds force strength and readiness
type Military struct {
	Units      Units    `json:"units" yaml:"units"`
	Doctrine   Doctrine `json:"doctrine" yaml:"doctrine"`
	Nuclear    Nuclear  `json:"nuclear" yaml:"nuclear"`
	Experience float64  `json:"experience" yaml:"experience"`
	Morale     float64  `json:"morale" yaml:"morale"`
}

// Units is the strength of each branch
type Units struct {
	Infantry float64 `json:"infantry" yaml:"infantry"`
	Armor    float64 `json:"armor" yaml:"armor"`
	AirForce float64 `json:"air_force" yaml:"air_force"`
	Navy     float64 `json:"navy" yaml:"navy"`
	Special  float64 `json:"special" yaml:"special"`
	Missiles float64 `json:"missiles" yaml:"missiles"`
	Drones   float64 `json:"drones" yaml:"drones"`
	Cyber    float64 `json:"cyber" yaml:"cyber"`
}

// Nuclear describes a nuclear program
type Nuclear struct {
	Status   NuclearStatus `json:"status" yaml:"status"`
	Warheads int           `json:"warheads" yaml:"warheads"`
	Delivery []string      `json:"delivery" yaml:"delivery"`
}

// Politics holds internal political indicators
type Politics struct {
	Stability      float64        `json:"stability" yaml:"stability"`
	Corruption     float64        `json:"corruption" yaml:"corruption"`
	PublicSupport  float64        `json:"public_support" yaml:"public_support"`
	FreedomIndex   float64        `json:"freedom_index" yaml:"freedom_index"`
	PressureGroups PressureGroups `json:"pressure_groups" yaml:"pressure_groups"`
}

// PressureGroups holds the intensity of domestic interest groups
type PressureGroups struct {
	Opposition float64 `json:"opposition" yaml:"opposition"`
	Minorities float64 `json:"minorities" yaml:"minorities"`
	Military   float64 `json:"military" yaml:"military"`
	Religious  float64 `json:"religious" yaml:"religious"`
}

// Diplomacy holds relationships (-100..100) keyed by nation ID
type Diplomacy struct {
	Relationships map[string]float64 `json:"relationships" yaml:"relationships"`
	Agreements    []string           `json:"agreements" yaml:"agreements"`
	Organizations []string           `json:"organizations" yaml:"organizations"`
}

// Intelligence holds agency strength and capabilities
type Intelligence struct {
	Agencies     float64      `json:"agencies" yaml:"agencies"`
	Budget       float64      `json:"budget" yaml:"budget"`
	Capabilities Capabilities `json:"capabilities" yaml:"capabilities"`
}

// Capabilities of the intelligence services
type Capabilities struct {
	Gathering    float64 `json:"gathering" yaml:"gathering"`
	Analysis     float64 `json:"analysis" yaml:"analysis"`
	Cyber        float64 `json:"cyber" yaml:"cyber"`
	CounterIntel float64 `json:"counter_intel" yaml:"counter_intel"`
}

// Resources are abundance scores
type Resources struct {
	Water    float64 `json:"water" yaml:"water"`
	Oil      float64 `json:"oil" yaml:"oil"`
	Gas      float64 `json:"gas" yaml:"gas"`
	Minerals float64 `json:"minerals" yaml:"minerals"`
	Food     float64 `json:"food" yaml:"food"`
}

// EventScope is the reach of a world event
type EventScope string

const (
	ScopeGlobal   EventScope = "global"
	ScopeRegional EventScope = "regional"
	ScopeInternal EventScope = "internal"
)

// Severity grades an event
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Event is a transient world occurrence that expires after Duration turns
type Event struct {
	ID          string             `json:"id"`
	Scope       EventScope         `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Effects     map[string]float64 `json:"effects"`
	Duration    int                `json:"duration"`
	Severity    Severity           `json:"severity"`
}

// NewsCategory classifies a news item
type NewsCategory string

const (
	NewsMilitary   NewsCategory = "military"
	NewsDiplomatic NewsCategory = "diplomatic"
	NewsEconomic   NewsCategory = "economic"
	NewsInternal   NewsCategory = "internal"
)

// NewsItem is a display record produced after actions
type NewsItem struct {
	ID        string       `json:"id"`
	Headline  string       `json:"headline"`
	Content   string       `json:"content"`
	Category  NewsCategory `json:"type"`
	Nation    string       `json:"country,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// Personality is the fixed trait vector that weights AI choices
type Personality struct {
	Aggression  float64  `json:"aggression" yaml:"aggression"`
	Caution     float64  `json:"caution" yaml:"caution"`
	Expansion   float64  `json:"expansion" yaml:"expansion"`
	Cooperation float64  `json:"cooperation" yaml:"cooperation"`
	Ideology    float64  `json:"ideology" yaml:"ideology"`
	Priorities  []string `json:"priorities" yaml:"priorities"`
}

// Clone returns a deep copy of the nation
func (n *Nation) Clone() *Nation {
	if n == nil {
		return nil
	}
	c := *n
	c.Demographics.Ethnic = maps.Clone(n.Demographics.Ethnic)
	c.Demographics.Religious = maps.Clone(n.Demographics.Religious)
	c.Economy.Sanctions = slices.Clone(n.Economy.Sanctions)
	c.Military.Nuclear.Delivery = slices.Clone(n.Military.Nuclear.Delivery)
	c.Diplomacy.Relationships = maps.Clone(n.Diplomacy.Relationships)
	c.Diplomacy.Agreements = slices.Clone(n.Diplomacy.Agreements)
	c.Diplomacy.Organizations = slices.Clone(n.Diplomacy.Organizations)
	return &c
}

// Clone returns a deep copy of the state, safe to hand to renderers
func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	c := *gs
	c.Nations = make(map[string]*Nation, len(gs.Nations))
	for id, n := range gs.Nations {
		c.Nations[id] = n.Clone()
	}
	c.Events = make([]Event, len(gs.Events))
	for i, e := range gs.Events {
		e.Effects = maps.Clone(e.Effects)
		c.Events[i] = e
	}
	c.News = slices.Clone(gs.News)
	return &c
}

// NationIDs returns the registered nation IDs in sorted order
func (gs *GameState) NationIDs() []string {
	return slices.Sorted(maps.Keys(gs.Nations))
}
