package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wheel/internal/platform/tui"
	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

var (
	flagSpins    int
	flagRealtime bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run spins headlessly and print the results",
	Long: `Spin the wheel without a terminal UI and print every stop.

In normal mode --spins spins are made. In elimination mode the wheel is
spun until a champion is left, then the final classification is printed.

With --realtime each spin is paced by wall-clock frames at --fps, taking
as long as it would on screen. Otherwise spins are computed tick by tick
as fast as possible; both give the same result for the same --seed.

Examples:
  wheel simulate --seed 42
  wheel simulate --mode elimination --seed 7
  wheel simulate --spins 20 --count 12
  wheel simulate --realtime --fps 30`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSpins, "spins", 5, "Number of spins in normal mode")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace spins with wall-clock frames")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := newLogger("wheel")

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}
	rt := runtimeConfig()

	w, err := wheelFactory(cfg, rt, logger)()
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("%s mode, %d segments\n", w.Mode(), len(w.Segments()))
	fmt.Println()
	fmt.Printf("  %-5s  %-8s  %-24s  %s\n", "Round", "Angle", "Segment", "Result")
	fmt.Printf("  %-5s  %-8s  %-24s  %s\n", "-----", "-----", "-------", "------")

	animator := wheel.NewAnimator(w, nil)
	spins := 0
	for {
		if w.Mode() == wheel.ModeNormal && spins >= flagSpins {
			break
		}
		if !w.CanSpin() {
			break
		}

		ev, ok := spinOnce(w, animator, rt.TickRate)
		if !ok {
			fatal("spin did not finish")
		}
		spins++
		printStop(ev)
	}

	standings := w.Standings()
	if len(standings) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Final classification")
	fmt.Println()
	for _, r := range standings {
		fmt.Printf("  %-4s  %-24s  %-11s  R%d\n", tui.Medal(r.Position), r.Segment.Text, tui.PlaceText(r.Position), r.Round)
	}
}

// spinOnce runs one spin to rest, either tick by tick or paced by a ticker.
func spinOnce(w *wheel.Wheel, animator *wheel.Animator, fps int) (wheel.StopEvent, bool) {
	if !flagRealtime {
		if !w.Spin() {
			return wheel.StopEvent{}, false
		}
		return w.RunToStop()
	}

	if !animator.Spin() {
		return wheel.StopEvent{}, false
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	return animator.Run(ticker.C)
}

func printStop(ev wheel.StopEvent) {
	result := "landed"
	switch {
	case ev.Finished && ev.Champion != nil:
		result = fmt.Sprintf("eliminated, %s wins", ev.Champion.Segment.Text)
	case ev.Record != nil:
		result = fmt.Sprintf("eliminated, %s", tui.PlaceText(ev.Record.Position))
	}
	fmt.Printf("  %-5d  %-8.3f  %-24s  %s\n", ev.Round, wheel.Normalize(ev.Angle), ev.Segment.Text, result)
}
