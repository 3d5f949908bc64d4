// Operator CLI for the shop database: flip detection status entries and
// inspect recorded orders without going through the HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/elevatescripts/backend/internal/models"
	"github.com/elevatescripts/backend/internal/store"
)

func main() {
	toggleCmd := flag.NewFlagSet("toggle-status", flag.ExitOnError)
	game := toggleCmd.String("game", "", "Game tag (vmp, cs2, r6)")
	state := toggleCmd.String("state", "", "Detection state (detected, undetected)")
	noteFA := toggleCmd.String("note-fa", "", "Optional note (Farsi)")
	noteEN := toggleCmd.String("note-en", "", "Optional note (English)")

	listOrdersCmd := flag.NewFlagSet("list-orders", flag.ExitOnError)
	limit := listOrdersCmd.Int("limit", 20, "How many recent orders to show")

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "toggle-status":
		toggleCmd.Parse(os.Args[2:])
		if *game == "" || *state == "" {
			fmt.Println("game and state are required")
			toggleCmd.PrintDefaults()
			os.Exit(1)
		}
		toggleStatus(*game, *state, *noteFA, *noteEN)
	case "list-status":
		listStatus()
	case "list-orders":
		listOrdersCmd.Parse(os.Args[2:])
		listOrders(*limit)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("expected 'toggle-status', 'list-status' or 'list-orders' subcommand")
	os.Exit(1)
}

func openStore() *store.SQLite {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	db, err := store.OpenSQLite(dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return db
}

func toggleStatus(game, state, noteFA, noteEN string) {
	g := models.Game(game)
	st := models.DetectionState(state)
	if !models.ValidGame(g) {
		log.Fatalf("unknown game %q", game)
	}
	if !models.ValidDetectionState(st) {
		log.Fatalf("unknown state %q", state)
	}

	db := openStore()
	defer db.Close()

	entry := &models.StatusEntry{
		Game:      g,
		State:     st,
		UpdatedAt: time.Now().UTC(),
		NoteFA:    noteFA,
		NoteEN:    noteEN,
	}
	if err := db.UpsertStatus(context.Background(), entry); err != nil {
		log.Fatalf("Failed to update status: %v", err)
	}
	fmt.Printf("%s is now %s\n", g, st)
}

func listStatus() {
	db := openStore()
	defer db.Close()

	entries, err := db.StatusEntries(context.Background())
	if err != nil {
		log.Fatalf("Failed to read status entries: %v", err)
	}
	for _, e := range entries {
		fmt.Printf("%-4s %-11s updated %s\n", e.Game, e.State, e.UpdatedAt.Format(time.RFC3339))
	}
}

func listOrders(limit int) {
	db := openStore()
	defer db.Close()

	orders, err := db.Orders(context.Background(), limit)
	if err != nil {
		log.Fatalf("Failed to read orders: %v", err)
	}
	for _, o := range orders {
		fmt.Printf("%s  %-8s %10d %s  %s\n", o.CreatedAt.Format(time.RFC3339), o.PaymentStatus, o.Total, o.Email, o.ID)
	}
}
