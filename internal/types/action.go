package types

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned when an envelope carries an unrecognized type tag
	ErrUnknownAction = errors.New("unknown action type")

	// ErrMalformedAction is returned when an envelope lacks a field its type needs
	ErrMalformedAction = errors.New("malformed action")
)

// ActionType is the tag of an Action
type ActionType string

const (
	ActionMilitaryExercise     ActionType = "military_exercise"
	ActionInvestInfrastructure ActionType = "invest_infrastructure"
	ActionCyberAttack          ActionType = "cyber_attack"
	ActionImproveRelations     ActionType = "improve_relations"
	ActionTradeAgreement       ActionType = "trade_agreement"
	ActionEconomicSanctions    ActionType = "economic_sanctions"
	ActionGatherIntelligence   ActionType = "gather_intelligence"
	ActionDeclareWar           ActionType = "declare_war"
	ActionExecute              ActionType = "execute_action"
	ActionResolveDilemma       ActionType = "resolve_dilemma"
)

// Action is an instruction issued by a nation. The set of variants is closed.
type Action interface {
	Type() ActionType
	Actor() string
	isAction()
}

// Targeted is implemented by actions aimed at another nation
type Targeted interface {
	Action
	TargetID() string
}

// MilitaryExercise raises experience and morale at a defense budget cost
type MilitaryExercise struct {
	Country string
}

// InvestInfrastructure grows GDP and support at an infrastructure cost
type InvestInfrastructure struct {
	Country string
}

// GatherIntelligence improves gathering and analysis
type GatherIntelligence struct {
	Country string
}

// CyberAttack strikes the target's economy and stability on success
type CyberAttack struct {
	Country string
	Target  string
}

// ImproveRelations raises mutual relationships
type ImproveRelations struct {
	Country string
	Target  string
}

// TradeAgreement grows both economies and relationships
type TradeAgreement struct {
	Country string
	Target  string
}

// EconomicSanctions hurts the target's GDP and both relationships
type EconomicSanctions struct {
	Country string
	Target  string
}

// DeclareWar snaps the actor's view of the target to -100
type DeclareWar struct {
	Country string
	Target  string
}

// ExecuteAction merges a UI-supplied patch onto the acting nation
type ExecuteAction struct {
	Country  string
	ActionID string
	Effects  Patch
}

// ResolveDilemma records the option chosen in a dilemma
type ResolveDilemma struct {
	Country  string
	OptionID string
}

func (a MilitaryExercise) Type() ActionType     { return ActionMilitaryExercise }
func (a InvestInfrastructure) Type() ActionType { return ActionInvestInfrastructure }
func (a GatherIntelligence) Type() ActionType   { return ActionGatherIntelligence }
func (a CyberAttack) Type() ActionType          { return ActionCyberAttack }
func (a ImproveRelations) Type() ActionType     { return ActionImproveRelations }
func (a TradeAgreement) Type() ActionType       { return ActionTradeAgreement }
func (a EconomicSanctions) Type() ActionType    { return ActionEconomicSanctions }
func (a DeclareWar) Type() ActionType           { return ActionDeclareWar }
func (a ExecuteAction) Type() ActionType        { return ActionExecute }
func (a ResolveDilemma) Type() ActionType       { return ActionResolveDilemma }

func (a MilitaryExercise) Actor() string     { return a.Country }
func (a InvestInfrastructure) Actor() string { return a.Country }
func (a GatherIntelligence) Actor() string   { return a.Country }
func (a CyberAttack) Actor() string          { return a.Country }
func (a ImproveRelations) Actor() string     { return a.Country }
func (a TradeAgreement) Actor() string       { return a.Country }
func (a EconomicSanctions) Actor() string    { return a.Country }
func (a DeclareWar) Actor() string           { return a.Country }
func (a ExecuteAction) Actor() string        { return a.Country }
func (a ResolveDilemma) Actor() string       { return a.Country }

func (a CyberAttack) TargetID() string       { return a.Target }
func (a ImproveRelations) TargetID() string  { return a.Target }
func (a TradeAgreement) TargetID() string    { return a.Target }
func (a EconomicSanctions) TargetID() string { return a.Target }
func (a DeclareWar) TargetID() string        { return a.Target }

func (MilitaryExercise) isAction()     {}
func (InvestInfrastructure) isAction() {}
func (GatherIntelligence) isAction()   {}
func (CyberAttack) isAction()          {}
func (ImproveRelations) isAction()     {}
func (TradeAgreement) isAction()       {}
func (EconomicSanctions) isAction()    {}
func (DeclareWar) isAction()           {}
func (ExecuteAction) isAction()        {}
func (ResolveDilemma) isAction()       {}

// TargetOf returns the target nation of an action, or "" when it has none
func TargetOf(a Action) string {
	if t, ok := a.(Targeted); ok {
		return t.TargetID()
	}
	return ""
}

// ActionEnvelope is the wire form of an Action
type ActionEnvelope struct {
	Type     ActionType `json:"type"`
	Country  string     `json:"country"`
	Target   string     `json:"target,omitempty"`
	ActionID string     `json:"action_id,omitempty"`
	OptionID string     `json:"option_id,omitempty"`
	Effects  *Patch     `json:"effects,omitempty"`
}

// Decode converts the envelope into its typed Action
func (e ActionEnvelope) Decode() (Action, error) {
	if e.Country == "" {
		return nil, fmt.Errorf("%w: %s requires country", ErrMalformedAction, e.Type)
	}

	needTarget := func() error {
		if e.Target == "" {
			return fmt.Errorf("%w: %s requires target", ErrMalformedAction, e.Type)
		}
		return nil
	}

	switch e.Type {
	case ActionMilitaryExercise:
		return MilitaryExercise{Country: e.Country}, nil
	case ActionInvestInfrastructure:
		return InvestInfrastructure{Country: e.Country}, nil
	case ActionGatherIntelligence:
		return GatherIntelligence{Country: e.Country}, nil
	case ActionCyberAttack:
		if err := needTarget(); err != nil {
			return nil, err
		}
		return CyberAttack{Country: e.Country, Target: e.Target}, nil
	case ActionImproveRelations:
		if err := needTarget(); err != nil {
			return nil, err
		}
		return ImproveRelations{Country: e.Country, Target: e.Target}, nil
	case ActionTradeAgreement:
		if err := needTarget(); err != nil {
			return nil, err
		}
		return TradeAgreement{Country: e.Country, Target: e.Target}, nil
	case ActionEconomicSanctions:
		if err := needTarget(); err != nil {
			return nil, err
		}
		return EconomicSanctions{Country: e.Country, Target: e.Target}, nil
	case ActionDeclareWar:
		if err := needTarget(); err != nil {
			return nil, err
		}
		return DeclareWar{Country: e.Country, Target: e.Target}, nil
	case ActionExecute:
		var effects Patch
		if e.Effects != nil {
			effects = *e.Effects
		}
		return ExecuteAction{Country: e.Country, ActionID: e.ActionID, Effects: effects}, nil
	case ActionResolveDilemma:
		return ResolveDilemma{Country: e.Country, OptionID: e.OptionID}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, e.Type)
	}
}

// EnvelopeOf converts an Action into its wire form
func EnvelopeOf(a Action) ActionEnvelope {
	env := ActionEnvelope{
		Type:    a.Type(),
		Country: a.Actor(),
		Target:  TargetOf(a),
	}
	switch v := a.(type) {
	case ExecuteAction:
		env.ActionID = v.ActionID
		effects := v.Effects
		env.Effects = &effects
	case ResolveDilemma:
		env.OptionID = v.OptionID
	}
	return env
}
