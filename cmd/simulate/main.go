// Command simulate plays a seeded game headlessly. The player's nation is put
// on auto-pilot and picks its actions the same way the AI nations do.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/user/mideast-strategy/config"
	"github.com/user/mideast-strategy/internal/game"
	"github.com/user/mideast-strategy/internal/types"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (defaults when empty)")
	nation := flag.String("nation", "", "Player nation (config default when empty)")
	turns := flag.Int("turns", 20, "Maximum number of turns to play")
	seed := flag.Int64("seed", 1, "Random seed")
	scenarioPath := flag.String("scenario", "", "YAML scenario file")
	verbose := flag.Bool("v", false, "Log every action")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Game.Seed = *seed
	if *nation != "" {
		cfg.Game.DefaultNation = *nation
	}

	scenario := game.DefaultScenario()
	if *scenarioPath != "" {
		loaded, err := game.NewDataLoader("").LoadScenario(*scenarioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load scenario: %v\n", err)
			os.Exit(1)
		}
		scenario = loaded
	}

	logger := zap.NewNop()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	state, err := run(cfg.Game, scenario, *turns, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	report(os.Stdout, state)
}

// run plays up to turns turns with the player on auto-pilot
func run(cfg config.GameConfig, scenario *game.Scenario, turns int, logger *zap.Logger) (*types.GameState, error) {
	engine := game.NewEngine(cfg, scenario.Nations(), scenario.Personalities)
	engine.SetLogger(logger)

	state := engine.StartGame(cfg.DefaultNation)
	if state.Phase != types.PhasePlaying {
		return nil, fmt.Errorf("cannot start as %q: %w", cfg.DefaultNation, game.ErrNationNotFound)
	}

	for i := 0; i < turns && state.Phase == types.PhasePlaying; i++ {
		if action := engine.ExecuteAITurn(state.CurrentPlayer); action != nil {
			engine.ProcessAction(action)
		}
		state = engine.EndTurn()
		logger.Info(game.TurnSummary(state))
	}
	return state, nil
}

// report prints the final standings
func report(w io.Writer, state *types.GameState) {
	player := state.Nations[state.CurrentPlayer]

	fmt.Fprintf(w, "Playing as %s, %d turns\n", player.Name, state.Turn-1)
	switch {
	case state.Winner != "":
		fmt.Fprintf(w, "Result: %s victory\n", state.VictoryType)
	case state.Phase == types.PhaseEnded:
		fmt.Fprintln(w, "Result: turn limit reached")
	default:
		fmt.Fprintln(w, "Result: undecided")
	}
	fmt.Fprintf(w, "Score: %d\n", state.Score)

	gf := state.GlobalFactors
	fmt.Fprintf(w, "Oil $%.2f  Tension %.0f  Growth %.1f%%\n\n", gf.OilPrice, gf.GlobalTension, gf.EconomicGrowth)

	fmt.Fprintf(w, "%-22s %16s %14s %9s %9s %7s\n", "Nation", "GDP", "Population", "Stability", "Military", "Cyber")
	fmt.Fprintln(w, strings.Repeat("-", 82))
	for _, id := range state.NationIDs() {
		n := state.Nations[id]
		name := n.Name
		if id == state.CurrentPlayer {
			name += " *"
		}
		fmt.Fprintf(w, "%-22s %16s %14s %9.0f %9.0f %7.0f\n",
			name,
			"$"+humanize.CommafWithDigits(n.Economy.GDP/1e9, 1)+"B",
			humanize.Comma(n.Population),
			n.Politics.Stability,
			n.Military.Experience,
			n.Intelligence.Capabilities.Cyber)
	}

	if len(state.News) > 0 {
		fmt.Fprintln(w, "\nLatest headlines:")
		for i, item := range state.News {
			if i == 5 {
				break
			}
			fmt.Fprintf(w, "  [%s] %s\n", item.Category, item.Headline)
		}
	}
}
