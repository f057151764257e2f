package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/pusoy-dos/domain/deck"
	"github.com/luca-patrignani/pusoy-dos/domain/pusoy"
)

func main() {
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	revealFlag := flag.Bool("reveal", true, "show the opponents' cards")
	playFlag := flag.String("play", "", "play these cards (e.g. 3C3S) once and exit")
	handsFlag := flag.Uint("hands", deck.MaxHands, "number of hands to deal (1-4)")
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *debugFlag {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("usoy ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("D", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("os", pterm.FgDarkGray.ToStyle()),
	).Render()

	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the cards ...")
	d := deck.New()
	d.Shuffle(deck.DefaultStream())
	hands, err := d.DealAll(int(*handsFlag))
	if err != nil {
		spinner.Fail()
		logger.Error("failed to deal", "hands", *handsFlag, "error", err)
		os.Exit(1)
	}
	spinner.Success()
	for i := range hands {
		hands[i].SortByGameValue()
	}
	own := &hands[len(hands)-1]
	opponents := hands[:len(hands)-1]
	logger.Debug("hands dealt", "hands", len(hands), "own", own.String())

	if *playFlag != "" {
		printState(opponents, *own, *revealFlag)
		if !playOnce(logger, own, *playFlag) {
			os.Exit(1)
		}
		return
	}

	printState(opponents, *own, *revealFlag)
	for own.Len() > 0 {
		input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter the cards to play (e.g. 3C3S), or quit").Show()
		pterm.Println()
		if strings.EqualFold(strings.TrimSpace(input), "quit") {
			return
		}
		if !playOnce(logger, own, input) {
			continue
		}
		printState(opponents, *own, *revealFlag)
	}
	pterm.Success.Println("No cards left!")
}

// playOnce runs one request and reports whether it was a recognized hand.
func playOnce(logger *slog.Logger, own *pusoy.Hand, input string) bool {
	o, err := play(own, input)
	switch {
	case err == nil:
		logger.Info("hand played", "request", o.Request, "score", o.Result.Score, "category", o.Result.Category.String())
		pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getResultPanel(o)}}).Render()
		return true
	case errors.Is(err, errNotAHand):
		logger.Debug("unrecognized hand", "request", o.Request)
		pterm.Warning.Println("Try Again!")
	case errors.Is(err, pusoy.ErrMalformedRequest), errors.Is(err, pusoy.ErrCardNotFound):
		logger.Debug("withdrawal failed", "input", input, "error", err)
		pterm.Error.Printfln("Invalid request: %s", err.Error())
	default:
		logger.Error(err.Error())
	}
	return false
}
