// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/misrei/sc12conv"
)

var cli struct {
	Dir        string `help:"Directory to scan for .sc12 files." default:"."`
	Format     string `help:"Output format." enum:"fc32,wav,aiff" default:"fc32"`
	SampleRate int    `help:"Sample rate recorded in wav and aiff headers." default:"1000000"`
	Verbose    bool   `help:"Prints debug output."`
}

func main() {
	_ = kong.Parse(&cli,
		kong.Name("sc12conv"),
		kong.Description("Converts every .sc12 file in a directory to .fc32."),
	)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	_, err := sc12conv.ConvertDir(cli.Dir, sc12conv.Options{
		Logger:     logger,
		Format:     cli.Format,
		SampleRate: cli.SampleRate,
	})
	if err != nil {
		os.Exit(1)
	}
}
