package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/kunya-oba/morning-dashboard/internal/config"
	"github.com/kunya-oba/morning-dashboard/internal/store"
	"github.com/kunya-oba/morning-dashboard/internal/tui"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "morning-dashboard requires an interactive terminal")
		os.Exit(1)
	}

	dataDir := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataDir, 0o755)

	s, err := store.Open(context.Background(), filepath.Join(dataDir, config.DBFileName))
	util.MustSucceed("open settings store", err)
	defer s.Close()

	cfg := config.Load()
	model := tui.NewMainModel(s, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "morning-dashboard failed: %v\n", err)
		os.Exit(1)
	}
}
