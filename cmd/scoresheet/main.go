// Package main provides the scoresheet CLI: it keeps a local Doppelkopf
// score database, records rounds, and prints standings and the upcoming
// round's schedule.
//
// Usage:
//
//	scoresheet new -players anna,bernd,clara,david -rounds 8 [-mandatory-solos]
//	scoresheet record -game <id> -round round.json
//	scoresheet sheet -game <id>
//	scoresheet next -game <id>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ahentschel/doppelkopf.club/internal/doko"
	"github.com/ahentschel/doppelkopf.club/internal/doko/service"
	apperrors "github.com/ahentschel/doppelkopf.club/internal/errors"
	"github.com/ahentschel/doppelkopf.club/internal/platform/config"
	"github.com/ahentschel/doppelkopf.club/internal/platform/telemetry"
	"github.com/ahentschel/doppelkopf.club/internal/storage/sqlite"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("load config: %v", err)
	}

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		config.Exitf("open database %s: %v", cfg.DatabasePath, err)
	}
	defer func() { _ = store.Close() }()

	svc := service.New(store, store, store, telemetry.NewEmitter(store))
	ctx := context.Background()

	switch os.Args[1] {
	case "new":
		runNew(ctx, svc, cfg, os.Args[2:])
	case "record":
		runRecord(ctx, svc, cfg, os.Args[2:])
	case "sheet":
		runSheet(ctx, svc, cfg, os.Args[2:])
	case "next":
		runNext(ctx, svc, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: scoresheet <new|record|sheet|next> [flags]")
}

// exitDomain prints a localized message for domain errors and a plain one
// for everything else, then exits.
func exitDomain(cfg config.Config, err error) {
	if apperrors.GetCode(err) != apperrors.CodeUnknown {
		code, msg := apperrors.Localize(err, cfg.Locale)
		config.Exitf("%s [%s]", msg, code)
	}
	config.Exitf("%v", err)
}

func runNew(ctx context.Context, svc *service.Service, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	players := fs.String("players", "", "comma-separated player ids, seated in order")
	rounds := fs.Int("rounds", 0, "agreed round count")
	mandatorySolos := fs.Bool("mandatory-solos", false, "every player owes one mandatory solo")
	_ = fs.Parse(args)

	var playerIDs []string
	for _, player := range strings.Split(*players, ",") {
		if trimmed := strings.TrimSpace(player); trimmed != "" {
			playerIDs = append(playerIDs, trimmed)
		}
	}
	if *rounds == 0 && len(playerIDs) > 0 {
		counts := doko.LegalRoundCounts(len(playerIDs))
		if len(counts) > 0 {
			*rounds = counts[0]
		}
	}

	game, err := svc.CreateGame(ctx, service.CreateGameInput{
		PlayerIDs:          playerIDs,
		MaxRounds:          *rounds,
		WithMandatorySolos: *mandatorySolos,
	})
	if err != nil {
		exitDomain(cfg, err)
	}

	fmt.Printf("game %s created: %d players, %d rounds", game.ID, len(game.Participants), game.MaxRounds)
	if game.WithMandatorySolos {
		fmt.Print(", mandatory solos")
	}
	fmt.Println()
}

func runRecord(ctx context.Context, svc *service.Service, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("record", flag.ExitOnError)
	gameID := fs.String("game", "", "game id")
	roundPath := fs.String("round", "", "path to the round JSON file, - for stdin")
	_ = fs.Parse(args)

	reader := os.Stdin
	if *roundPath != "" && *roundPath != "-" {
		file, err := os.Open(*roundPath)
		if err != nil {
			config.Exitf("open round file: %v", err)
		}
		defer func() { _ = file.Close() }()
		reader = file
	}

	in, err := parseRoundInput(reader)
	if err != nil {
		config.Exitf("%v", err)
	}

	round, points, err := svc.RecordRound(ctx, *gameID, in)
	if err != nil {
		exitDomain(cfg, err)
	}

	fmt.Printf("round %d recorded (%s)\n", round.Number, round.Type)
	for _, pt := range points {
		fmt.Printf("  %s\t%+d\t%s\n", pt.PlayerID, pt.Points, pt.Result)
	}
}

func runSheet(ctx context.Context, svc *service.Service, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("sheet", flag.ExitOnError)
	gameID := fs.String("game", "", "game id")
	_ = fs.Parse(args)

	game, err := svc.Game(ctx, *gameID)
	if err != nil {
		exitDomain(cfg, err)
	}
	board, err := svc.Scoreboard(ctx, *gameID)
	if err != nil {
		exitDomain(cfg, err)
	}

	status := fmt.Sprintf("round %d of %d", len(game.Rounds), game.MaxRounds)
	if game.Complete() {
		status = "finished"
	}
	fmt.Printf("game %s (%s)\n", game.ID, status)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "player\tpoints\twon\tlost\tdraw")
	for _, entry := range board {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", entry.PlayerID, entry.Points, entry.Won, entry.Lost, entry.Draw)
	}
	_ = w.Flush()
}

func runNext(ctx context.Context, svc *service.Service, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("next", flag.ExitOnError)
	gameID := fs.String("game", "", "game id")
	_ = fs.Parse(args)

	info, err := svc.NextRound(ctx, *gameID)
	if err != nil {
		exitDomain(cfg, err)
	}
	if info.GameComplete {
		fmt.Println("game is finished")
		return
	}

	fmt.Printf("round %d: dealer %s (seat %d)\n", info.Number, info.DealerID, info.DealerSeat)
	if info.ParadeActive {
		fmt.Printf("parade: mandatory solo by %s\n", info.ExpectedSoloist)
	}
}
