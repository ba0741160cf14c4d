// Headless-клиент для обкатки сервера: подключается к /ws как обычный
// игрок, бродит по подземелью и дерётся с тем, кого увидит.
//
//	go run ./cmd/bot -addr localhost:8080 -moves 200 -delay 100ms
package main

import (
	"context"
	"flag"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpruizc/rustoguelike/internal/agent"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var addr string
	var moves int
	var delay time.Duration
	var seed int64
	flag.StringVar(&addr, "addr", "localhost:8080", "Server address host:port")
	flag.IntVar(&moves, "moves", 200, "How many moves to make before leaving")
	flag.DurationVar(&delay, "delay", 100*time.Millisecond, "Pause between moves")
	flag.Int64Var(&seed, "seed", 0, "Decision seed (0 = random)")
	flag.Parse()

	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	bot := agent.NewBot(u.String(), moves, delay, seed)
	if err := bot.Run(ctx); err != nil {
		logger.Log.Fatal("Bot error: ", err)
	}
}
