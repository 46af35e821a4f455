// wheel is a spinning wheel for the terminal: pick one option, or knock
// options out round by round until a champion is left.
//
// Usage:
//
//	wheel play               - Spin the wheel interactively
//	wheel serve              - Start SSH server for remote play
//	wheel render             - Export the wheel as a PNG
//	wheel simulate           - Run spins headlessly and print the results
//	wheel palette            - Show the palette and the configured segments
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible spins
//	--config <path>     - Use a custom wheel config YAML
//	--mode <mode>       - normal or elimination
//	-s, --segment <t>   - Add a segment ("text" or "text:#rrggbb"), repeatable
//	--count <n>         - Number of segments (pads with "Option N")
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagMode     string
	flagSegments []string
	flagCount    int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Wheel - spin to decide, in your terminal",
	Long: `Wheel spins a segmented wheel and reports where it stops.

Modes:
  normal       - every spin picks a winner, nothing changes
  elimination  - the landed segment leaves the wheel each round
                 until one champion is left

Available commands:
  play      - Spin the wheel interactively
  serve     - Start SSH server for remote play
  render    - Export the wheel as a PNG
  simulate  - Run spins headlessly and print the results
  palette   - Show the palette and the configured segments

Examples:
  wheel play
  wheel play --mode elimination -s Alice -s Bob -s Carol
  wheel render --out wheel.png --winner 2
  wheel simulate --mode elimination --seed 42
  wheel serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom wheel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Wheel mode: normal, elimination (default from config)")
	rootCmd.PersistentFlags().StringArrayVarP(&flagSegments, "segment", "s", nil, `Segment "text" or "text:#rrggbb" (repeatable)`)
	rootCmd.PersistentFlags().IntVar(&flagCount, "count", 0, "Number of segments (0 = as listed)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(paletteCmd)
}
