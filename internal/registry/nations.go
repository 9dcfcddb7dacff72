// Package registry holds the built-in scenario: the starting roster of nations
// and the AI personality table.
package registry

import (
	"github.com/user/mideast-strategy/internal/types"
)

// Nations returns a fresh copy of the starting roster keyed by nation ID.
// Callers own the returned values.
func Nations() map[string]*types.Nation {
	out := make(map[string]*types.Nation, len(roster))
	for _, n := range roster {
		out[n.ID] = n.Clone()
	}
	return out
}

var roster = []*types.Nation{
	{
		ID: "israel", Name: "Israel", Capital: "Jerusalem", Flag: "🇮🇱", Ideology: types.IdeologyDemocracy,
		Population: 9500000,
		Demographics: types.Demographics{
			Ethnic:    map[string]float64{"jewish": 74, "arab": 21, "other": 5},
			Religious: map[string]float64{"jewish": 73, "muslim": 18, "christian": 2, "other": 7},
		},
		Economy: types.Economy{
			GDP:     481e9,
			Sectors: types.Sectors{Oil: 0, Technology: 45, Tourism: 15, Agriculture: 8, Industry: 32},
			Budget: types.Budget{
				Income:   120e9,
				Expenses: types.Expenses{Defense: 24e9, Health: 18e9, Education: 15e9, Infrastructure: 12e9},
			},
			Debt: 72, Inflation: 3.5, Sanctions: []string{},
		},
		Military: types.Military{
			Units:      types.Units{Infantry: 45, Armor: 85, AirForce: 95, Navy: 60, Special: 90, Missiles: 85, Drones: 80, Cyber: 95},
			Doctrine:   types.DoctrineOffensive,
			Nuclear:    types.Nuclear{Status: types.NuclearOperational, Warheads: 90, Delivery: []string{"missiles", "submarines"}},
			Experience: 95, Morale: 85,
		},
		Politics: types.Politics{
			Stability: 70, Corruption: 25, PublicSupport: 65, FreedomIndex: 85,
			PressureGroups: types.PressureGroups{Opposition: 40, Minorities: 30, Military: 20, Religious: 35},
		},
		Diplomacy: types.Diplomacy{
			Relationships: map[string]float64{"egypt": 40, "saudi": 30, "turkey": -20, "iran": -90, "jordan": 60, "syria": -80, "iraq": -40},
			Agreements:    []string{"Camp David", "Abraham Accords"},
			Organizations: []string{"UN", "OECD"},
		},
		Intelligence: types.Intelligence{
			Agencies: 90, Budget: 3e9,
			Capabilities: types.Capabilities{Gathering: 95, Analysis: 90, Cyber: 85, CounterIntel: 90},
		},
		Resources: types.Resources{Water: 30, Oil: 5, Gas: 40, Minerals: 60, Food: 40},
	},
	{
		ID: "egypt", Name: "Egypt", Capital: "Cairo", Flag: "🇪🇬", Ideology: types.IdeologyAutocracy,
		Population: 104000000,
		Demographics: types.Demographics{
			Ethnic:    map[string]float64{"arab": 99, "other": 1},
			Religious: map[string]float64{"muslim": 90, "christian": 10},
		},
		Economy: types.Economy{
			GDP:     469e9,
			Sectors: types.Sectors{Oil: 20, Technology: 8, Tourism: 25, Agriculture: 20, Industry: 27},
			Budget: types.Budget{
				Income:   85e9,
				Expenses: types.Expenses{Defense: 12e9, Health: 8e9, Education: 10e9, Infrastructure: 15e9},
			},
			Debt: 85, Inflation: 8.5, Sanctions: []string{},
		},
		Military: types.Military{
			Units:      types.Units{Infantry: 75, Armor: 70, AirForce: 65, Navy: 50, Special: 60, Missiles: 50, Drones: 40, Cyber: 35},
			Doctrine:   types.DoctrineDefensive,
			Nuclear:    types.Nuclear{Status: types.NuclearNone, Delivery: []string{}},
			Experience: 70, Morale: 65,
		},
		Politics: types.Politics{
			Stability: 60, Corruption: 70, PublicSupport: 55, FreedomIndex: 25,
			PressureGroups: types.PressureGroups{Opposition: 60, Minorities: 20, Military: 80, Religious: 50},
		},
		Diplomacy: types.Diplomacy{
			Relationships: map[string]float64{"israel": 40, "saudi": 70, "turkey": 30, "iran": -30, "jordan": 80, "syria": 20, "iraq": 40},
			Agreements:    []string{"Camp David", "Arab League Charter"},
			Organizations: []string{"UN", "Arab League", "African Union"},
		},
		Intelligence: types.Intelligence{
			Agencies: 60, Budget: 1.5e9,
			Capabilities: types.Capabilities{Gathering: 65, Analysis: 60, Cyber: 40, CounterIntel: 70},
		},
		Resources: types.Resources{Water: 20, Oil: 60, Gas: 70, Minerals: 40, Food: 30},
	},
	{
		ID: "saudi", Name: "Saudi Arabia", Capital: "Riyadh", Flag: "🇸🇦", Ideology: types.IdeologyAutocracy,
		Population: 35000000,
		Demographics: types.Demographics{
			Ethnic:    map[string]float64{"arab": 90, "other": 10},
			Religious: map[string]float64{"muslim": 100},
		},
		Economy: types.Economy{
			GDP:     833e9,
			Sectors: types.Sectors{Oil: 70, Technology: 5, Tourism: 5, Agriculture: 3, Industry: 17},
			Budget: types.Budget{
				Income:   280e9,
				Expenses: types.Expenses{Defense: 70e9, Health: 20e9, Education: 25e9, Infrastructure: 50e9},
			},
			Debt: 25, Inflation: 2.5, Sanctions: []string{},
		},
		Military: types.Military{
			Units:      types.Units{Infantry: 60, Armor: 80, AirForce: 85, Navy: 40, Special: 70, Missiles: 75, Drones: 60, Cyber: 50},
			Doctrine:   types.DoctrineOffensive,
			Nuclear:    types.Nuclear{Status: types.NuclearDeveloping, Delivery: []string{"missiles"}},
			Experience: 55, Morale: 70,
		},
		Politics: types.Politics{
			Stability: 75, Corruption: 60, PublicSupport: 70, FreedomIndex: 15,
			PressureGroups: types.PressureGroups{Opposition: 20, Minorities: 10, Military: 30, Religious: 80},
		},
		Diplomacy: types.Diplomacy{
			Relationships: map[string]float64{"israel": 30, "egypt": 70, "turkey": 40, "iran": -70, "jordan": 85, "syria": -20, "iraq": 50},
			Agreements:    []string{"Abraham Accords", "GCC Charter"},
			Organizations: []string{"UN", "Arab League", "GCC", "OPEC"},
		},
		Intelligence: types.Intelligence{
			Agencies: 70, Budget: 8e9,
			Capabilities: types.Capabilities{Gathering: 75, Analysis: 70, Cyber: 60, CounterIntel: 65},
		},
		Resources: types.Resources{Water: 10, Oil: 95, Gas: 85, Minerals: 30, Food: 15},
	},
	{
		ID: "turkey", Name: "Turkey", Capital: "Ankara", Flag: "🇹🇷", Ideology: types.IdeologyAutocracy,
		Population: 85000000,
		Demographics: types.Demographics{
			Ethnic:    map[string]float64{"turkish": 70, "kurdish": 20, "other": 10},
			Religious: map[string]float64{"muslim": 99, "other": 1},
		},
		Economy: types.Economy{
			GDP:     819e9,
			Sectors: types.Sectors{Oil: 5, Technology: 15, Tourism: 20, Agriculture: 25, Industry: 35},
			Budget: types.Budget{
				Income:   200e9,
				Expenses: types.Expenses{Defense: 20e9, Health: 25e9, Education: 30e9, Infrastructure: 35e9},
			},
			Debt: 40, Inflation: 15.2, Sanctions: []string{"EU partial", "US targeted"},
		},
		Military: types.Military{
			Units:      types.Units{Infantry: 80, Armor: 75, AirForce: 70, Navy: 65, Special: 75, Missiles: 60, Drones: 90, Cyber: 55},
			Doctrine:   types.DoctrineOffensive,
			Nuclear:    types.Nuclear{Status: types.NuclearNone, Delivery: []string{}},
			Experience: 80, Morale: 75,
		},
		Politics: types.Politics{
			Stability: 50, Corruption: 65, PublicSupport: 60, FreedomIndex: 30,
			PressureGroups: types.PressureGroups{Opposition: 70, Minorities: 80, Military: 40, Religious: 60},
		},
		Diplomacy: types.Diplomacy{
			Relationships: map[string]float64{"israel": -20, "egypt": 30, "saudi": 40, "iran": 20, "jordan": 50, "syria": -60, "iraq": 60},
			Agreements:    []string{"NATO Charter"},
			Organizations: []string{"UN", "NATO", "G20"},
		},
		Intelligence: types.Intelligence{
			Agencies: 75, Budget: 3.5e9,
			Capabilities: types.Capabilities{Gathering: 80, Analysis: 75, Cyber: 70, CounterIntel: 70},
		},
		Resources: types.Resources{Water: 60, Oil: 20, Gas: 25, Minerals: 70, Food: 80},
	},
	{
		ID: "iran", Name: "Iran", Capital: "Tehran", Flag: "🇮🇷", Ideology: types.IdeologyTheocracy,
		Population: 85000000,
		Demographics: types.Demographics{
			Ethnic:    map[string]float64{"persian": 61, "azeri": 16, "kurd": 10, "other": 13},
			Religious: map[string]float64{"muslim": 99, "other": 1},
		},
		Economy: types.Economy{
			GDP:     231e9,
			Sectors: types.Sectors{Oil: 60, Technology: 8, Tourism: 2, Agriculture: 15, Industry: 15},
			Budget: types.Budget{
				Income:   60e9,
				Expenses: types.Expenses{Defense: 25e9, Health: 8e9, Education: 10e9, Infrastructure: 12e9},
			},
			Debt: 45, Inflation: 40, Sanctions: []string{"US comprehensive", "EU comprehensive", "UN targeted"},
		},
		Military: types.Military{
			Units:      types.Units{Infantry: 70, Armor: 60, AirForce: 45, Navy: 50, Special: 80, Missiles: 90, Drones: 85, Cyber: 75},
			Doctrine:   types.DoctrineAsymmetric,
			Nuclear:    types.Nuclear{Status: types.NuclearDeveloping, Delivery: []string{"missiles"}},
			Experience: 75, Morale: 80,
		},
		Politics: types.Politics{
			Stability: 45, Corruption: 80, PublicSupport: 40, FreedomIndex: 10,
			PressureGroups: types.PressureGroups{Opposition: 85, Minorities: 70, Military: 70, Religious: 90},
		},
		Diplomacy: types.Diplomacy{
			Relationships: map[string]float64{"israel": -90, "egypt": -30, "saudi": -70, "turkey": 20, "jordan": -40, "syria": 80, "iraq": 70},
			Agreements:    []string{"JCPOA (suspended)"},
			Organizations: []string{"UN", "OIC"},
		},
		Intelligence: types.Intelligence{
			Agencies: 85, Budget: 4e9,
			Capabilities: types.Capabilities{Gathering: 80, Analysis: 75, Cyber: 85, CounterIntel: 80},
		},
		Resources: types.Resources{Water: 40, Oil: 90, Gas: 95, Minerals: 60, Food: 50},
	},
	{
		ID: "jordan", Name: "Jordan", Capital: "Amman", Flag: "🇯🇴", Ideology: types.IdeologyAutocracy,
		Population: 11000000,
		Demographics: types.Demographics{
			Ethnic:    map[string]float64{"arab": 98, "other": 2},
			Religious: map[string]float64{"muslim": 95, "christian": 4, "other": 1},
		},
		Economy: types.Economy{
			GDP:     47e9,
			Sectors: types.Sectors{Oil: 2, Technology: 10, Tourism: 20, Agriculture: 15, Industry: 53},
			Budget: types.Budget{
				Income:   12e9,
				Expenses: types.Expenses{Defense: 2e9, Health: 1.5e9, Education: 2e9, Infrastructure: 1.8e9},
			},
			Debt: 95, Inflation: 4.2, Sanctions: []string{},
		},
		Military: types.Military{
			Units:      types.Units{Infantry: 50, Armor: 45, AirForce: 40, Navy: 20, Special: 70, Missiles: 30, Drones: 25, Cyber: 30},
			Doctrine:   types.DoctrineDefensive,
			Nuclear:    types.Nuclear{Status: types.NuclearNone, Delivery: []string{}},
			Experience: 65, Morale: 70,
		},
		Politics: types.Politics{
			Stability: 65, Corruption: 50, PublicSupport: 60, FreedomIndex: 40,
			PressureGroups: types.PressureGroups{Opposition: 50, Minorities: 30, Military: 40, Religious: 45},
		},
		Diplomacy: types.Diplomacy{
			Relationships: map[string]float64{"israel": 60, "egypt": 80, "saudi": 85, "turkey": 50, "iran": -40, "syria": 30, "iraq": 60},
			Agreements:    []string{"Wadi Araba Treaty"},
			Organizations: []string{"UN", "Arab League"},
		},
		Intelligence: types.Intelligence{
			Agencies: 60, Budget: 0.5e9,
			Capabilities: types.Capabilities{Gathering: 65, Analysis: 60, Cyber: 35, CounterIntel: 70},
		},
		Resources: types.Resources{Water: 15, Oil: 5, Gas: 10, Minerals: 40, Food: 25},
	},
	{
		ID: "syria", Name: "Syria", Capital: "Damascus", Flag: "🇸🇾", Ideology: types.IdeologyAutocracy,
		Population: 19000000,
		Demographics: types.Demographics{
			Ethnic:    map[string]float64{"arab": 90, "kurd": 9, "other": 1},
			Religious: map[string]float64{"muslim": 87, "christian": 10, "other": 3},
		},
		Economy: types.Economy{
			GDP:     40e9,
			Sectors: types.Sectors{Oil: 40, Technology: 2, Tourism: 5, Agriculture: 25, Industry: 28},
			Budget: types.Budget{
				Income:   8e9,
				Expenses: types.Expenses{Defense: 4e9, Health: 0.8e9, Education: 1e9, Infrastructure: 1.2e9},
			},
			Debt: 120, Inflation: 25, Sanctions: []string{"US comprehensive", "EU comprehensive"},
		},
		Military: types.Military{
			Units:      types.Units{Infantry: 40, Armor: 35, AirForce: 25, Navy: 15, Special: 45, Missiles: 40, Drones: 30, Cyber: 20},
			Doctrine:   types.DoctrineDefensive,
			Nuclear:    types.Nuclear{Status: types.NuclearNone, Delivery: []string{}},
			Experience: 85, Morale: 50,
		},
		Politics: types.Politics{
			Stability: 25, Corruption: 90, PublicSupport: 30, FreedomIndex: 5,
			PressureGroups: types.PressureGroups{Opposition: 90, Minorities: 85, Military: 60, Religious: 40},
		},
		Diplomacy: types.Diplomacy{
			Relationships: map[string]float64{"israel": -80, "egypt": 20, "saudi": -20, "turkey": -60, "iran": 80, "jordan": 30, "iraq": 60},
			Agreements:    []string{},
			Organizations: []string{"UN", "Arab League (suspended)"},
		},
		Intelligence: types.Intelligence{
			Agencies: 70, Budget: 0.8e9,
			Capabilities: types.Capabilities{Gathering: 60, Analysis: 50, Cyber: 30, CounterIntel: 75},
		},
		Resources: types.Resources{Water: 25, Oil: 40, Gas: 35, Minerals: 30, Food: 20},
	},
	{
		ID: "iraq", Name: "Iraq", Capital: "Baghdad", Flag: "🇮🇶", Ideology: types.IdeologyDemocracy,
		Population: 41000000,
		Demographics: types.Demographics{
			Ethnic:    map[string]float64{"arab": 75, "kurd": 20, "other": 5},
			Religious: map[string]float64{"muslim": 99, "other": 1},
		},
		Economy: types.Economy{
			GDP:     234e9,
			Sectors: types.Sectors{Oil: 85, Technology: 2, Tourism: 1, Agriculture: 5, Industry: 7},
			Budget: types.Budget{
				Income:   80e9,
				Expenses: types.Expenses{Defense: 8e9, Health: 4e9, Education: 6e9, Infrastructure: 15e9},
			},
			Debt: 65, Inflation: 6, Sanctions: []string{},
		},
		Military: types.Military{
			Units:      types.Units{Infantry: 45, Armor: 40, AirForce: 30, Navy: 10, Special: 50, Missiles: 25, Drones: 20, Cyber: 15},
			Doctrine:   types.DoctrineDefensive,
			Nuclear:    types.Nuclear{Status: types.NuclearNone, Delivery: []string{}},
			Experience: 60, Morale: 55,
		},
		Politics: types.Politics{
			Stability: 30, Corruption: 85, PublicSupport: 35, FreedomIndex: 35,
			PressureGroups: types.PressureGroups{Opposition: 75, Minorities: 60, Military: 50, Religious: 70},
		},
		Diplomacy: types.Diplomacy{
			Relationships: map[string]float64{"israel": -40, "egypt": 40, "saudi": 50, "turkey": 60, "iran": 70, "jordan": 60, "syria": 60},
			Agreements:    []string{},
			Organizations: []string{"UN", "Arab League", "OPEC"},
		},
		Intelligence: types.Intelligence{
			Agencies: 40, Budget: 1.2e9,
			Capabilities: types.Capabilities{Gathering: 45, Analysis: 40, Cyber: 25, CounterIntel: 50},
		},
		Resources: types.Resources{Water: 70, Oil: 95, Gas: 80, Minerals: 50, Food: 35},
	},
	{
		ID: "uae", Name: "United Arab Emirates", Capital: "Abu Dhabi", Flag: "🇦🇪", Ideology: types.IdeologyAutocracy,
		Population: 9800000,
		Demographics: types.Demographics{
			Ethnic:    map[string]float64{"arab": 12, "other": 88},
			Religious: map[string]float64{"muslim": 76, "christian": 9, "hindu": 15},
		},
		Economy: types.Economy{
			GDP:     421e9,
			Sectors: types.Sectors{Oil: 30, Technology: 10, Tourism: 20, Agriculture: 2, Industry: 38},
			Budget: types.Budget{
				Income:   120e9,
				Expenses: types.Expenses{Defense: 25e9, Health: 12e9, Education: 10e9, Infrastructure: 15e9},
			},
			Debt: 20, Inflation: 2.2, Sanctions: []string{},
		},
		Military: types.Military{
			Units:      types.Units{Infantry: 30, Armor: 40, AirForce: 50, Navy: 30, Special: 40, Missiles: 30, Drones: 40, Cyber: 30},
			Doctrine:   types.DoctrineDefensive,
			Nuclear:    types.Nuclear{Status: types.NuclearNone, Delivery: []string{}},
			Experience: 50, Morale: 60,
		},
		Politics: types.Politics{
			Stability: 80, Corruption: 30, PublicSupport: 80, FreedomIndex: 20,
			PressureGroups: types.PressureGroups{Opposition: 10, Minorities: 10, Military: 20, Religious: 40},
		},
		Diplomacy: types.Diplomacy{
			Relationships: map[string]float64{"israel": 60, "saudi": 80, "iran": -40, "egypt": 70, "qatar": 30, "bahrain": 80},
			Agreements:    []string{"Abraham Accords"},
			Organizations: []string{"UN", "Arab League", "GCC"},
		},
		Intelligence: types.Intelligence{
			Agencies: 40, Budget: 1e9,
			Capabilities: types.Capabilities{Gathering: 40, Analysis: 40, Cyber: 30, CounterIntel: 40},
		},
		Resources: types.Resources{Water: 5, Oil: 80, Gas: 60, Minerals: 10, Food: 10},
	},
}
