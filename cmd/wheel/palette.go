package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wheel/internal/config"
)

var flagDumpYAML bool

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the palette and the configured segments",
	Long: `Print the color palette and the segments the current flags and
config resolve to. --yaml prints the embedded default config instead,
ready to be copied to ~/.wheel/configs/wheel.yaml.

Examples:
  wheel palette
  wheel palette --count 10
  wheel palette --yaml > ~/.wheel/configs/wheel.yaml`,
	Args: cobra.NoArgs,
	Run:  runPalette,
}

func init() {
	paletteCmd.Flags().BoolVar(&flagDumpYAML, "yaml", false, "Print the default config YAML")
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

func runPalette(_ *cobra.Command, _ []string) {
	if flagDumpYAML {
		fmt.Print(string(config.GetDefaultYAML()))
		return
	}

	logger := newLogger("wheel")
	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println("Palette:")
	fmt.Println()
	for i, hex := range cfg.Palette {
		fmt.Printf("  %2d  %s  %s\n", i, swatch(hex), hex)
	}

	segs, err := segments(cfg)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println()
	fmt.Printf("Segments (%s mode):\n", cfg.WheelMode())
	fmt.Println()
	for i, s := range segs {
		state := ""
		if s.Inactive {
			state = "  (inactive)"
		}
		fmt.Printf("  %2d  %s  %s  %s%s\n", i, swatch(s.Color), s.Color, s.Text, state)
	}
}
