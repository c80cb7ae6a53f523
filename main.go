// kallisworld is a small platformer: run right across the tiled levels,
// collect coins, shoot meteors and keep away from the spikes.
//
// Usage:
//
//	kallisworld [flags]
//
// Flags:
//
//	--level <n>            - Start on level n (default: 1)
//	--seed <value>         - Seed for meteor placement (0 = time based)
//	--skip-instructions    - Go straight into the game
//	--debug                - Show hitboxes and log at debug level
//	--config <path>        - YAML file overriding gameplay tunables
//	--log-level <level>    - debug, info, warn or error (default: info)
package main

import (
	"os"

	"github.com/automoto/kallis-world/assets"
	"github.com/automoto/kallis-world/config"
	"github.com/automoto/kallis-world/fonts"
	"github.com/automoto/kallis-world/logging"
	"github.com/automoto/kallis-world/scenes"
	"github.com/automoto/kallis-world/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel            int
	flagSeed             int64
	flagSkipInstructions bool
	flagDebug            bool
	flagConfig           string
	flagLogLevel         string
)

type Game struct {
	machine *scenes.Machine
}

func NewGame() *Game {
	initial := scenes.StateInstructions
	if config.Debug.SkipInstructions {
		initial = scenes.StateGame
	}

	m := scenes.NewMachine(initial)
	session := &scenes.Session{Best: systems.LoadBestScore()}
	systems.BestScore = session.Best

	m.Register(scenes.StateInstructions, scenes.NewInstructionsScene(m))
	m.Register(scenes.StateGame, scenes.NewGameScene(m, session, assets.NewLevelLoader()))
	m.Register(scenes.StateGameOver, scenes.NewGameOverScene(m, session))

	return &Game{machine: m}
}

func (g *Game) Update() error {
	return g.machine.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.machine.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var rootCmd = &cobra.Command{
	Use:   "kallisworld",
	Short: "Kalli's World - a tiny platformer",
	Long: `Kalli's World opens a window on the instructions screen.

Move with the arrow keys or A/D, jump with Up or W and click to shoot
meteors. F1 toggles the hitbox overlay and M mutes sound.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagLevel, "level", config.Level.FirstLevel, "Level to start on")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagSkipInstructions, "skip-instructions", false, "Start the game without the instructions screen")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show hitboxes and log at debug level")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML tunables file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	level := flagLogLevel
	if flagDebug {
		level = "debug"
	}
	if err := logging.Configure(level); err != nil {
		return err
	}

	if flagConfig != "" {
		if err := config.LoadTunables(flagConfig); err != nil {
			return err
		}
		logging.L.Info("tunables loaded", "path", flagConfig)
	}

	config.Debug.StartLevel = flagLevel
	config.Debug.Seed = flagSeed
	config.Debug.SkipInstructions = flagSkipInstructions
	config.Debug.ShowHitboxes = flagDebug

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logging.L.Warn("running without saved settings", "error", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Synthesize sounds up front so the first jump does not stall a frame
	systems.PreloadAllSFX()

	return ebiten.RunGame(NewGame())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.L.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
