// timervid renders a countdown timer video: big MM:SS digits counting down
// to zero, then an alarm. The alarm comes from a file when one exists and is
// synthesized otherwise.
//
//	timervid -m 1 -s 30 -a chime.wav -o my_timer.mp4
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"timervid/config"
	"timervid/logging"
	"timervid/pipeline"
	"timervid/tui"
	"timervid/types"
)

func main() {
	_ = godotenv.Load()

	cfg := config.New()
	flag.IntVar(&cfg.Minutes, "m", 0, "timer minutes")
	flag.IntVar(&cfg.Seconds, "s", 0, "timer seconds (0-59)")
	flag.StringVar(&cfg.AlarmPath, "a", cfg.AlarmPath, "alarm audio file; a beep is synthesized when it does not exist")
	flag.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "output video file")
	flag.StringVar(&cfg.BackgroundPath, "b", "", "background music played during the countdown")
	flag.StringVar(&cfg.FontPath, "font", cfg.FontPath, "TTF font for the countdown digits")
	flag.BoolVar(&cfg.NoTUI, "no-tui", false, "plain log lines instead of the progress display")
	flag.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	flag.Parse()

	logging.SetVerbose(cfg.Verbose)

	if err := cfg.Validate(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		logging.Errorf("%v", err)
		var cerr *types.ConfigError
		if errors.As(err, &cerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
	logging.Infof("generated video: %s", cfg.OutputPath)
}

func run(cfg config.Config) error {
	if cfg.NoTUI || !isatty.IsTerminal(os.Stdout.Fd()) {
		return pipeline.Run(cfg, func(e pipeline.Event) {
			logging.Infof("%s", e.Message)
		})
	}

	events := make(chan pipeline.Event)
	result := make(chan error, 1)
	go func() {
		result <- pipeline.Run(cfg, func(e pipeline.Event) { events <- e })
		close(events)
	}()

	final, err := tea.NewProgram(tui.New(events, result)).Run()
	if err != nil {
		return fmt.Errorf("progress display failed: %w", err)
	}
	return final.(tui.Model).Err()
}
