package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kaymed/picklepong/internal/app"
	"github.com/kaymed/picklepong/internal/pong"
	"github.com/kaymed/picklepong/internal/term"
	"github.com/kaymed/picklepong/internal/theme"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write verbose event logs to this file")
	flag.Parse()

	th, ok := theme.Lookup(cfg.Theme)
	if !ok {
		log.Fatalf("unknown theme %q (have %s)", cfg.Theme, strings.Join(theme.Names(), ", "))
	}

	// The screen owns the terminal while the match runs, so event logs go to
	// a file or nowhere. Startup failures still reach stderr.
	fatal := log.New(os.Stderr, "", log.LstdFlags)
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal.Fatalf("open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		fatal.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := pong.NewEngine(pong.FromMap(cfg.Params()))
	driver := term.NewDriver(screen, engine, th, cfg.TPS)
	if cfg.Verbose {
		driver.OnEvent = func(ev pong.Event, s *pong.State) {
			log.Print(app.DescribeEvent(ev, s))
		}
	}

	final := driver.Run(ctx)
	screen.Fini()
	fmt.Println(final.Scoreline())
}
