// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/debugger/terminal"
	"github.com/jetsetilly/gophernes/emulation"
	"github.com/jetsetilly/gophernes/gui/sdlaudio"
	"github.com/jetsetilly/gophernes/gui/sdlplay"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/television"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/version"
	"github.com/jetsetilly/gophernes/wavwriter"
)

func main() {
	mode := "run"
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "run", "nestest", "wav", "version":
			mode = args[0]
			args = args[1:]
		}
	}

	var err error

	switch mode {
	case "run":
		err = play(args)
	case "nestest":
		err = nestest(args)
	case "wav":
		err = wavCapture(args)
	case "version":
		vers, revision, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vers, revision)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(10)
	}
}

// loadConsole parses whatever is left on the command line as the cartridge
// file and builds a console around it.
func loadConsole(flags *flag.FlagSet) (*hardware.NES, error) {
	if flags.NArg() != 1 {
		return nil, fmt.Errorf("one cartridge file required")
	}

	cartload, err := cartridgeloader.NewLoader(flags.Arg(0))
	if err != nil {
		return nil, err
	}

	return hardware.NewNES(cartload)
}

// the default run mode: an SDL window with the keyboard standing in for
// the first joypad.
func play(args []string) error {
	flags := flag.NewFlagSet("run", flag.ExitOnError)
	log := flags.Bool("log", false, "echo the log to stderr")
	stats := flags.Bool("stats", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))
	scale := flags.Int("scale", 3, "window scale")
	audio := flags.Bool("audio", true, "play sound")
	frames := flags.Int("frames", 0, "quit after n frames (0 means no limit)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}
	if *stats {
		statsview.Launch(os.Stdout)
	}

	console, err := loadConsole(flags)
	if err != nil {
		return err
	}

	events := make(chan emulation.Event, 2)

	scr, err := sdlplay.NewSdlPlay(*scale, events, console.Joypads[0])
	if err != nil {
		return err
	}
	console.AttachRenderer(scr)

	if *audio {
		mix, err := sdlaudio.NewAudio()
		if err != nil {
			return err
		}
		console.PlugMixer(mix)
	}

	term, err := terminal.NewTerminal(os.Stdin, events)
	if err != nil {
		// no controlling terminal is fine. the SDL window has its own keys
		logger.Logf(logger.Allow, "terminal", "not available: %v", err)
	} else {
		defer term.Restore()
	}

	return emulation.NewPlaymode(console, events, *frames).Run()
}

// nestest traces the automated portion of the nestest ROM to stdout, in
// the format of the reference log.
func nestest(args []string) error {
	flags := flag.NewFlagSet("nestest", flag.ExitOnError)
	log := flags.Bool("log", false, "echo the log to stderr")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	console, err := loadConsole(flags)
	if err != nil {
		return err
	}

	return emulation.Nestest(console, os.Stdout)
}

// wavCapture runs the console without a window and writes the sound it
// makes to a WAV file.
func wavCapture(args []string) error {
	flags := flag.NewFlagSet("wav", flag.ExitOnError)
	log := flags.Bool("log", false, "echo the log to stderr")
	wavfile := flags.String("wav", "capture.wav", "output file")
	frames := flags.Int("frames", 60*television.FramesPerSecond, "number of frames to capture")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	console, err := loadConsole(flags)
	if err != nil {
		return err
	}

	aw, err := wavwriter.NewWavWriter(*wavfile)
	if err != nil {
		return err
	}
	console.PlugMixer(aw)

	for i := 0; i < *frames; i++ {
		if err := console.Frame(); err != nil {
			return err
		}
	}

	return console.End()
}
