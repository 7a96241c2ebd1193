// Command feedsim serves a deterministic fake feed for local pipeline
// runs and verifies the corpus those runs produce.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/boxscore/internal/feedsim"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if len(os.Args) < 2 {
		feedsim.ShowHelp()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx, os.Args[2:])
	case "verify":
		err = runVerify(ctx, os.Args[2:])
	case "help", "-h", "-help", "--help":
		feedsim.ShowHelp()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		feedsim.ShowHelp()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := flags.String("addr", feedsim.DefaultAddr, "listen address")
	teams := flags.Int("teams", feedsim.DefaultTeams, "number of teams, rounded down to even")
	days := flags.Int("days", feedsim.DefaultDays, "days in the season")
	seed := flags.Int64("seed", feedsim.DefaultSeed, "season seed")
	if err := flags.Parse(args); err != nil {
		return err
	}

	return feedsim.Serve(ctx, feedsim.Config{
		Addr:  *addr,
		Teams: *teams,
		Days:  *days,
		Seed:  *seed,
	})
}

func runVerify(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("verify", flag.ExitOnError)
	dir := flags.String("dir", feedsim.DefaultDir, "corpus root to check")
	teams := flags.Int("teams", feedsim.DefaultTeams, "number of teams the serve used")
	days := flags.Int("days", feedsim.DefaultDays, "days in the season the serve used")
	seed := flags.Int64("seed", feedsim.DefaultSeed, "season seed the serve used")
	workers := flags.Int("workers", feedsim.DefaultWorkers, "concurrent file checks")
	if err := flags.Parse(args); err != nil {
		return err
	}

	_, err := feedsim.Verify(ctx, feedsim.Config{
		Dir:     *dir,
		Teams:   *teams,
		Days:    *days,
		Seed:    *seed,
		Workers: *workers,
	})
	return err
}
