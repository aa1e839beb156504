package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/automoto/shadow-runner/assets"
	"github.com/automoto/shadow-runner/config"
	"github.com/automoto/shadow-runner/logging"
	"github.com/automoto/shadow-runner/shared/gamemath"
	"github.com/automoto/shadow-runner/shared/leveldata"
	"github.com/automoto/shadow-runner/systems"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lockedStyle = cellStyle.Foreground(lipgloss.Color("245"))
)

var (
	flagLevel      int
	flagSkipMenu   bool
	flagDebug      bool
	flagCatalog    string
	flagFullscreen bool
)

var rootCmd = &cobra.Command{
	Use:   "shadow-runner",
	Short: "Shadow Runner - a night-time platformer",
	Long: `Shadow Runner is a 2D platformer. Run, jump and dodge your way
through a catalog of levels built in Tiled.

Examples:
  shadow-runner
  shadow-runner --level 3 --skip-menu
  shadow-runner levels
  shadow-runner walls 0`,
	SilenceUsage: true,
	RunE:         runGame,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog with best times",
	RunE:  runLevels,
}

var wallsCmd = &cobra.Command{
	Use:   "walls <id>",
	Short: "Print the merged wall rectangles of a level",
	Long: `Loads a level's walls layer and prints the rectangles the collision
builder produces, one per line, without opening a window.`,
	Args: cobra.ExactArgs(1),
	RunE: runWalls,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw colliders and log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to a level catalog (YAML)")

	rootCmd.Flags().IntVar(&flagLevel, "level", -1, "Start directly in this level")
	rootCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Skip the main menu")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.SetDebug(flagDebug)
	}

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(wallsCmd)
}

func loadCatalog() (*leveldata.Catalog, error) {
	return leveldata.LoadCatalog(flagCatalog, assets.DefaultCatalog())
}

func runGame(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	config.Debug.DrawColliders = flagDebug
	config.Debug.SkipMenu = flagSkipMenu
	if flagLevel >= 0 {
		if _, err := catalog.Lookup(flagLevel); err != nil {
			return err
		}
		config.Debug.StartLevel = flagLevel
		config.Debug.SkipMenu = true
	}

	logger := logging.For("main")

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("could not initialize persistence", "err", err)
	}
	systems.ApplySavedSettings(systems.LoadSettings())
	if flagFullscreen {
		ebiten.SetFullscreen(true)
	}

	logger.Info("starting", "levels", catalog.Len(), "skipMenu", config.Debug.SkipMenu)
	return ebiten.RunGame(NewGame(catalog))
}

func runLevels(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	if err := systems.InitPersistence(); err != nil {
		logging.For("main").Warn("could not initialize persistence", "err", err)
	}
	progress := systems.LoadProgress()

	rows := make([][]string, 0, catalog.Len())
	locked := map[int]bool{}
	for i, level := range catalog.Levels {
		best := config.LevelsMenu.EmptyTime
		if d, ok := progress.BestTime(level.ID); ok {
			best = gamemath.FormatDuration(d)
		}
		status := "open"
		if level.ID > progress.Unlocked {
			status = "locked"
			locked[i] = true
		}
		rows = append(rows, []string{strconv.Itoa(level.ID), level.Name, level.File, best, status})
	}
	return printTable(cmd.OutOrStdout(), []string{"ID", "Name", "File", "Best", "Status"}, rows, locked)
}

func runWalls(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("level id %q: %w", args[0], err)
	}
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	entry, err := catalog.Lookup(id)
	if err != nil {
		return err
	}

	grid, err := leveldata.LoadWallGrid(assets.LevelFS(), entry.File)
	if err != nil {
		return err
	}
	rects := grid.Rectangles()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level %d %q: %dx%d tiles, %d cells, %d rectangles\n",
		entry.ID, entry.Name, grid.Width, grid.Height, grid.Count(), len(rects))
	if grid.Skipped > 0 {
		logging.For("walls").Warn("tiles without a known kind were ignored", "count", grid.Skipped)
	}

	rows := make([][]string, 0, len(rects))
	for _, r := range rects {
		rows = append(rows, []string{
			r.Kind.String(),
			strconv.Itoa(r.Left),
			strconv.Itoa(r.Bottom),
			strconv.Itoa(r.Width()),
			strconv.Itoa(r.Height()),
		})
	}
	return printTable(out, []string{"Kind", "Left", "Bottom", "Width", "Height"}, rows, nil)
}

// printTable renders rows with a header. Rows whose index is in dim are
// greyed out.
func printTable(w io.Writer, headers []string, rows [][]string, dim map[int]bool) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case dim[row]:
				return lockedStyle
			default:
				return cellStyle
			}
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
