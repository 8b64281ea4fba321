package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/oSoWoSo/neofetch/internal/color"
	"github.com/oSoWoSo/neofetch/internal/config"
	"github.com/oSoWoSo/neofetch/internal/presets"
	"github.com/oSoWoSo/neofetch/internal/pride"
	"github.com/oSoWoSo/neofetch/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configPath string
	modeName   string
	lightness  float64
	showStats  bool
)

var rootCmd = &cobra.Command{
	Use:   "neofetch",
	Short: "pride flags for your terminal",
	Long: `neofetch paints pride flags in your terminal.

Without a subcommand it opens the interactive preset browser; pick a
favorite flag there or hand off straight to the full-screen animation.`,
	RunE:          runBrowser,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var prideCmd = &cobra.Command{
	Use:   "pride",
	Short: "run the scrolling pride month animation",
	Long: `pride fills the screen with a diagonally scrolling gradient over
every flag palette until you press enter.`,
	RunE: runPride,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "list flag presets with color swatches",
	RunE:  listPresets,
}

var previewCmd = &cobra.Command{
	Use:   "preview [preset]",
	Short: "print one flag as full-width stripes",
	Args:  cobra.ExactArgs(1),
	RunE:  previewPreset,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (yaml)")

	prideCmd.Flags().StringVar(&modeName, "mode", "", "color mode: rgb, 8bit or ansi")
	prideCmd.Flags().BoolVar(&showStats, "stats", false, "print frame time statistics after the run")

	previewCmd.Flags().StringVar(&modeName, "mode", "", "color mode: rgb, 8bit or ansi")
	previewCmd.Flags().Float64Var(&lightness, "lightness", config.DefaultLightness, "stripe lightness, 0 to 1")

	rootCmd.AddCommand(prideCmd, presetsCmd, previewCmd)
}

func main() {
	log.SetReportTimestamp(false)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves the config path and reads it, falling back to the
// defaults when no file exists yet.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}
	cfg := config.LoadOrDefault(path)
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, path, nil
}

// resolveMode applies the flag > config > default precedence.
func resolveMode(cmd *cobra.Command, cfg *config.Config) (color.Mode, error) {
	name := cfg.Mode
	if cmd.Flags().Changed("mode") {
		name = modeName
	}
	return color.ParseMode(name)
}

func runBrowser(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(tui.NewBrowser(cfg, path), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(tui.Model); ok && m.Animate {
		mode, err := color.ParseMode(cfg.Mode)
		if err != nil {
			return err
		}
		return runAnimation(mode, false)
	}
	return nil
}

func runPride(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	mode, err := resolveMode(cmd, cfg)
	if err != nil {
		return err
	}
	return runAnimation(mode, showStats)
}

func runAnimation(mode color.Mode, stats bool) error {
	w, h, err := pride.TerminalSize()
	if err != nil {
		return err
	}

	anim, err := pride.New(w, h, mode)
	if err != nil {
		return err
	}
	if err := anim.Run(); err != nil {
		return err
	}

	if stats {
		printFrameStats(anim.FrameTimings())
	}
	return nil
}

func printFrameStats(timings []float64) {
	if len(timings) == 0 {
		return
	}

	mean, max := 0.0, timings[0]
	for _, t := range timings {
		mean += t
		if t > max {
			max = t
		}
	}
	mean /= float64(len(timings))

	fmt.Printf("frames: %d\n", len(timings))
	fmt.Printf("render+write mean: %.2fms  max: %.2fms\n\n", mean, max)

	graph := asciigraph.Plot(timings,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("frame render+write (ms)"),
	)
	fmt.Println(graph)
}

func listPresets(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	mode, err := color.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	for _, p := range presets.All {
		var b strings.Builder
		for _, c := range p.Colors {
			b.WriteString(c.Sequence(mode, true))
			b.WriteString("  ")
		}
		b.WriteString(color.ResetSequence)
		fmt.Printf("%-14s %s\n", p.Name, b.String())
	}
	return nil
}

func previewPreset(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	mode, err := resolveMode(cmd, cfg)
	if err != nil {
		return err
	}

	p, ok := presets.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown preset: %s (available: %s)",
			args[0], strings.Join(presets.Names(), ", "))
	}

	if cmd.Flags().Changed("lightness") {
		if lightness < 0 || lightness > 1 {
			return fmt.Errorf("%w: %v", config.ErrLightnessRange, lightness)
		}
		p = p.WithLightness(lightness)
	}

	w, _, err := pride.TerminalSize()
	if err != nil {
		// Not a terminal; keep the stripes at a readable width.
		w = 80
	}

	for _, c := range p.Colors {
		fmt.Println(c.Sequence(mode, true) + strings.Repeat(" ", w) + color.ResetSequence)
	}
	return nil
}
