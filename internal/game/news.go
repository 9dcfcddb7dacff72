package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/user/mideast-strategy/internal/types"
)

const maxNewsPerAction = 3

// fillerNews is appended after any action-specific headline
var fillerNews = []types.NewsItem{
	{
		Headline: "Economic Indicators Show Mixed Results",
		Content:  "Regional economies face challenges amid global uncertainty",
		Category: types.NewsEconomic,
	},
	{
		Headline: "Military Exercises Conducted",
		Content:  "Joint military exercises demonstrate regional cooperation",
		Category: types.NewsMilitary,
	},
	{
		Headline: "Diplomatic Talks Resume",
		Content:  "High-level diplomatic meetings aim to reduce tensions",
		Category: types.NewsDiplomatic,
	},
}

// newsTemplate builds the headline for an action. ok is false when the
// action has no template or lacks the names the template needs.
type newsTemplate func(actor, target string) (item types.NewsItem, ok bool)

var newsTemplates = map[types.ActionType]newsTemplate{
	types.ActionMilitaryExercise: func(actor, _ string) (types.NewsItem, bool) {
		return types.NewsItem{
			Headline: fmt.Sprintf("%s Conducts Major Military Exercise", actor),
			Content:  fmt.Sprintf("Large-scale military exercises demonstrate %s's growing military capabilities and readiness", actor),
			Category: types.NewsMilitary,
		}, true
	},
	types.ActionCyberAttack: func(_, _ string) (types.NewsItem, bool) {
		return types.NewsItem{
			Headline: "Sophisticated Cyber Attack Reported",
			Content:  "Intelligence agencies report coordinated cyber operations targeting critical infrastructure",
			Category: types.NewsMilitary,
		}, true
	},
	types.ActionImproveRelations: func(actor, target string) (types.NewsItem, bool) {
		return types.NewsItem{
			Headline: fmt.Sprintf("%s and %s Strengthen Ties", actor, target),
			Content:  "High-level diplomatic meetings result in improved bilateral relations",
			Category: types.NewsDiplomatic,
		}, target != ""
	},
	types.ActionTradeAgreement: func(actor, target string) (types.NewsItem, bool) {
		return types.NewsItem{
			Headline: fmt.Sprintf("%s Signs Trade Deal with %s", actor, target),
			Content:  "New economic partnership expected to boost bilateral trade significantly",
			Category: types.NewsEconomic,
		}, target != ""
	},
	types.ActionEconomicSanctions: func(actor, target string) (types.NewsItem, bool) {
		return types.NewsItem{
			Headline: fmt.Sprintf("%s Imposes Economic Sanctions on %s", actor, target),
			Content:  "New sanctions target key economic sectors in escalating diplomatic crisis",
			Category: types.NewsEconomic,
		}, target != ""
	},
	types.ActionDeclareWar: func(actor, target string) (types.NewsItem, bool) {
		return types.NewsItem{
			Headline: fmt.Sprintf("WAR DECLARED: %s vs %s", actor, target),
			Content:  "Military conflict erupts as diplomatic relations collapse completely",
			Category: types.NewsMilitary,
		}, target != ""
	},
	types.ActionInvestInfrastructure: func(actor, _ string) (types.NewsItem, bool) {
		return types.NewsItem{
			Headline: fmt.Sprintf("%s Announces Major Infrastructure Investment", actor),
			Content:  "Massive infrastructure spending program aims to boost economic growth",
			Category: types.NewsEconomic,
		}, true
	},
}

// GenerateNews returns up to three news items. When action has a template its
// headline comes first, followed by generic filler. action may be nil.
func GenerateNews(state *types.GameState, action types.Action, now time.Time) []types.NewsItem {
	items := make([]types.NewsItem, 0, len(fillerNews)+1)

	if action != nil {
		if tmpl, ok := newsTemplates[action.Type()]; ok {
			actor := nationName(state, action.Actor())
			if actor == "" {
				actor = "Unknown"
			}
			if item, ok := tmpl(actor, nationName(state, types.TargetOf(action))); ok {
				item.Nation = action.Actor()
				items = append(items, item)
			}
		}
	}
	items = append(items, fillerNews...)

	if len(items) > maxNewsPerAction {
		items = items[:maxNewsPerAction]
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].Timestamp = now
	}
	return items
}

// leadershipNews announces the player's arrival in office
func leadershipNews(n *types.Nation, now time.Time) types.NewsItem {
	return types.NewsItem{
		ID:        uuid.NewString(),
		Headline:  fmt.Sprintf("%s Leadership Takes Office", n.Name),
		Content:   fmt.Sprintf("New leadership in %s begins ambitious reform program to strengthen the nation", n.Name),
		Category:  types.NewsInternal,
		Nation:    n.ID,
		Timestamp: now,
	}
}

// nationName resolves a display name, or "" for an empty or unknown ID
func nationName(state *types.GameState, id string) string {
	if id == "" {
		return ""
	}
	if n, ok := state.Nations[id]; ok && n != nil {
		return n.Name
	}
	return ""
}
