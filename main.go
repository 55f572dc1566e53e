package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/laststance/gitbox-sub002/internal/board"
	"github.com/laststance/gitbox-sub002/internal/config"
	"github.com/laststance/gitbox-sub002/internal/database"
	"github.com/laststance/gitbox-sub002/internal/github"
	"github.com/laststance/gitbox-sub002/internal/logging"
	"github.com/laststance/gitbox-sub002/internal/services/repocard"
	"github.com/laststance/gitbox-sub002/internal/services/status"
	"github.com/laststance/gitbox-sub002/internal/tui"
)

func main() {
	// The TUI owns stdout, so logs go to a file
	if err := logging.Init(); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Initialize database
	db, err := database.InitDB(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Create repository wrapping the database
	repo := database.NewRepository(db)

	// Unauthenticated GitHub access works for public repositories;
	// GITHUB_TOKEN raises the rate limit.
	var lookup repocard.RepoLookup = github.NewClientFromEnv(ctx)

	cardSvc := repocard.NewService(repo, lookup)
	statusSvc := status.NewService(repo)

	boards, err := repo.GetAllBoards(ctx)
	if err != nil || len(boards) == 0 {
		log.Fatalf("Failed to load boards: %v", err)
	}

	session, err := board.OpenSession(ctx, repo, boards[0].ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open board: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(session, repo, cfg, cardSvc, statusSvc)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
