package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-bounce/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game interactively",
	Long: `Shows a picker with every registered game. Quitting a game returns
to the picker; quitting the picker exits.`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(consoleLogger())
	if err != nil {
		return err
	}
	size := terminalConfig(cfg)

	for {
		gameID, err := tui.RunMenu(size.ScreenW, size.ScreenH)
		if err != nil {
			return err
		}
		if gameID == "" {
			return nil
		}

		if err := playGame(gameID); err != nil {
			return err
		}
	}
}
