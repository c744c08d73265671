package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/soundwave/internal/audio"
	"github.com/iburimskiy/soundwave/internal/board"
	"github.com/iburimskiy/soundwave/internal/config"
	"github.com/iburimskiy/soundwave/internal/game"
	"github.com/iburimskiy/soundwave/internal/gameplay"
	"github.com/iburimskiy/soundwave/internal/geom"
	"github.com/iburimskiy/soundwave/internal/level"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file.yaml] [<audio-file> [auto|zen|normal|hardcore]]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	path := flag.Arg(0)
	picked := false
	if path == "" {
		path, err = selectFile()
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		picked = true
	}
	difficulty := cfg.Gameplay.Difficulty
	if flag.NArg() > 1 {
		difficulty = flag.Arg(1)
	}

	track, err := audio.Open(path)
	if err != nil {
		fatal(picked, err)
	}
	log.Printf("loaded %s: %s at %.0f Hz", filepath.Base(path), track.Duration(), track.SampleRate())
	if err := track.PrepareSpeaker(); err != nil {
		fatal(picked, err)
	}

	boardSize := geom.V(cfg.Board.Width, cfg.Board.Height)
	lvl := level.Build(track.DrainSamples(), track.SampleRate(), level.Options{
		TargetRate:     cfg.Analysis.TargetRate,
		TravelRatio:    cfg.Analysis.TravelRatio,
		DistanceMargin: cfg.Analysis.DistanceMargin,
		BoardSize:      boardSize,
	})
	st := lvl.Stats()
	log.Printf("analysis: window %d (%.2f Hz), %d windows, %d onsets, %d bubbles; speeds note %.2f ripple %.2f appear %.2f",
		st.WindowSize, st.Rate, st.Windows, st.Onsets, st.Scheduled,
		st.Pacing.NoteSpeed, st.Pacing.RippleSpeed, st.Pacing.AppearSpeed)

	rules := gameplay.Rules{
		Difficulty:      gameplay.ParseDifficulty(difficulty),
		LeadInSeconds:   cfg.Gameplay.LeadInSeconds,
		TransitionSpeed: cfg.Gameplay.TransitionSpeed,
	}
	log.Printf("difficulty %s", rules.Difficulty)

	engine := gameplay.NewEngine(gameplay.NewSession(lvl, track, rules), board.New(boardSize))
	g, err := game.New(engine, track, cfg.Window)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowClosingHandled(true)
	err = ebiten.RunGame(g)
	track.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	log.Print("session ended")
}

func selectFile() (string, error) {
	var patterns []string
	for _, ext := range audio.Extensions() {
		patterns = append(patterns, "*"+ext)
	}
	return zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: patterns,
		}},
	)
}

// fatal reports a startup error. A file chosen through the picker also gets
// a dialog, since there may be no terminal to read the log.
func fatal(picked bool, err error) {
	if picked {
		_ = zenity.Error(err.Error(), zenity.Title("Soundwave"), zenity.ErrorIcon)
	}
	log.Fatal(err)
}
