package main

import (
	"flag"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/YevhenPoshtak/seabattle/pkg/ai"
	"github.com/YevhenPoshtak/seabattle/pkg/catalog"
)

func main() {
	addr := flag.String("addr", ":8080", "http service address")
	size := flag.Int("size", 10, "board size, clamped to [10, 26]")
	shots := flag.Int("shots", 0, "shots per turn, 0 uses the catalog default")
	smart := flag.Bool("smart", true, "use the smart targeting strategy for the hosted side")
	flag.Parse()

	difficulty := ai.Easy
	if *smart {
		difficulty = ai.Smart
	}

	cfg := catalog.NewGameConfig(*size, *shots)
	server := NewServer(cfg, difficulty)

	http.HandleFunc("/ws", server.ServeWs)

	log.Info("hosting matches", "addr", *addr, "board", cfg.BoardSize, "shots", cfg.ShotsPerTurn, "difficulty", difficulty)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal("ListenAndServe", "error", err)
	}
}
