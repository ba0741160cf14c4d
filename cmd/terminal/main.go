package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	termbox "github.com/nsf/termbox-go"

	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/engine"
	"github.com/rpruizc/rustoguelike/pkg/dungeon"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

// Сколько последних сообщений показывать под картой
const messageLines = 3

func init() {
	logger.Init()

	// termbox рисует прямо в терминал, логи увели бы экран в кашу.
	// Пишем в файл по запросу, иначе глушим.
	if path := os.Getenv("RL_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			logger.Log.SetOutput(f)
			return
		}
	}
	logger.Log.SetOutput(io.Discard)
}

type app struct {
	game     *engine.Game
	cfg      engine.Config
	flagSeed int64
	messages []string
}

func main() {
	var seed int64
	var omniscient bool
	var width, height int
	flag.Int64Var(&seed, "seed", 0, "World seed (0 = random)")
	flag.BoolVar(&omniscient, "omniscient", false, "Start with full map visibility")
	flag.IntVar(&width, "width", domain.DefaultGridWidth, "Grid width")
	flag.IntVar(&height, "height", domain.DefaultGridHeight, "Grid height")
	flag.Parse()

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
	}
	cfg.Width = width
	cfg.Height = height
	cfg.Omniscient = omniscient

	a := &app{
		game:     engine.NewGame(cfg, dungeon.NewGenerator()),
		cfg:      cfg,
		flagSeed: seed,
	}

	if err := a.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) run() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("terminal init failed: %w", err)
	}
	defer termbox.Close()

	a.draw()
	for {
		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}
			a.draw()
		case termbox.EventResize:
			a.draw()
		case termbox.EventError:
			return ev.Err
		}
	}
}

// handleKey переводит нажатие в команду ядра. true означает выход.
func (a *app) handleKey(ev termbox.Event) bool {
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return true
	case termbox.KeyArrowUp:
		a.step(domain.MoveCommand(enums.DirectionNorth))
		return false
	case termbox.KeyArrowDown:
		a.step(domain.MoveCommand(enums.DirectionSouth))
		return false
	case termbox.KeyArrowLeft:
		a.step(domain.MoveCommand(enums.DirectionWest))
		return false
	case termbox.KeyArrowRight:
		a.step(domain.MoveCommand(enums.DirectionEast))
		return false
	case termbox.KeySpace:
		a.step(domain.WaitCommand())
		return false
	}

	switch ev.Ch {
	case 'q':
		return true
	case 'k', 'w':
		a.step(domain.MoveCommand(enums.DirectionNorth))
	case 'j', 's':
		a.step(domain.MoveCommand(enums.DirectionSouth))
	case 'h', 'a':
		a.step(domain.MoveCommand(enums.DirectionWest))
	case 'l', 'd':
		a.step(domain.MoveCommand(enums.DirectionEast))
	case '.':
		a.step(domain.WaitCommand())
	case 'v':
		a.game.SetOmniscient(!a.game.Omniscient())
	case 'r':
		if !a.game.IsPlayerAlive() {
			a.restart()
		}
	}
	return false
}

func (a *app) step(cmd domain.Command) {
	events := a.game.ProcessTurn(cmd)
	for _, ev := range events {
		a.messages = append(a.messages, ev.Text)
	}
	if len(a.messages) > messageLines {
		a.messages = a.messages[len(a.messages)-messageLines:]
	}
}

// restart начинает новую партию. Явный -seed повторяет то же
// подземелье, без него жребий тянется заново.
func (a *app) restart() {
	cfg := a.cfg
	if a.flagSeed != 0 {
		cfg.Seed = a.flagSeed
	} else {
		cfg.Seed = time.Now().UnixNano()
	}
	a.cfg = cfg
	a.game = engine.NewGame(cfg, dungeon.NewGenerator())
	a.messages = nil
}

func (a *app) draw() {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return
	}

	size := a.game.Size()

	// Статика по памяти игрока: Previously затемняется
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			c := domain.Coord{X: x, Y: y}
			state := a.game.VisibilityAt(c)
			if state == enums.VisibilityNever {
				continue
			}
			tile, ok := a.game.RememberedTile(c)
			if !ok {
				continue
			}
			attr := tileAttr(tile)
			if state == enums.VisibilityPreviously {
				attr = termbox.ColorBlack | termbox.AttrBold
			}
			termbox.SetCell(x, y, rune(tile.Glyph().Char()), attr, termbox.ColorDefault)
		}
	}

	// Живые персонажи поверх статики
	for _, r := range a.game.Renderables() {
		if r.Location.Layer != enums.LayerCharacter || r.Visibility != enums.VisibilityCurrently {
			continue
		}
		c := r.Location.Coord
		termbox.SetCell(c.X, c.Y, rune(r.Tile.Glyph().Char()), tileAttr(r.Tile), termbox.ColorDefault)
	}

	a.drawHud(size)

	if err := termbox.Flush(); err != nil {
		return
	}
}

func (a *app) drawHud(size domain.Size) {
	status := "You are dead"
	if hp, ok := a.game.PlayerHitPoints(); ok && a.game.IsPlayerAlive() {
		status = fmt.Sprintf("HP %d/%d", hp.Current, hp.Max)
	}
	status = fmt.Sprintf("%s  Turn %d", status, a.game.Turn())
	if a.game.Omniscient() {
		status += "  [omniscient]"
	}
	printText(0, size.Height, status, termbox.ColorWhite|termbox.AttrBold)

	for i, msg := range a.messages {
		printText(0, size.Height+1+i, msg, termbox.ColorWhite)
	}

	if !a.game.IsPlayerAlive() {
		printText(0, size.Height+1+messageLines,
			"YOU DIED. Press r to restart, q to quit.",
			termbox.ColorRed|termbox.AttrBold)
	}
}

// tileAttr выбирает атрибут termbox по палитре тайла.
// Терминал беднее RGB, раскладываем по ближайшим базовым цветам.
func tileAttr(tile domain.Tile) termbox.Attribute {
	switch tile.Kind {
	case enums.TileKindWall:
		return termbox.ColorCyan
	case enums.TileKindPlayer:
		return termbox.ColorWhite | termbox.AttrBold
	case enums.TileKindPlayerCorpse:
		return termbox.ColorWhite
	case enums.TileKindNpc, enums.TileKindNpcCorpse:
		if tile.Npc == enums.NpcKindTroll {
			return termbox.ColorRed
		}
		return termbox.ColorGreen
	}
	return termbox.ColorDefault
}

func printText(x, y int, s string, fg termbox.Attribute) {
	for i, r := range []rune(s) {
		termbox.SetCell(x+i, y, r, fg, termbox.ColorDefault)
	}
}
