package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nickandperla.net/equals/internal/lang"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List available language packs",
	RunE:  runLangs,
}

var (
	langNameColor   = color.New(color.FgCyan, color.Bold)
	langMarkerColor = color.New(color.FgYellow)
)

func runLangs(cmd *cobra.Command, args []string) error {
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("unknown color mode: %s (use auto, on, or off)", colorMode)
	}

	for _, ev := range lang.All() {
		command := ""
		if c, ok := ev.(interface{ Command() string }); ok {
			command = c.Command()
		}
		fmt.Printf("%s  marker %s  command %s\n",
			langNameColor.Sprintf("%-8s", ev.Name()),
			langMarkerColor.Sprint(ev.Marker()),
			command)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
