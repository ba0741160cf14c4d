package main

import (
	"flag"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/rpruizc/rustoguelike/internal/core/types"
	"github.com/rpruizc/rustoguelike/internal/core/types/enums"
	"github.com/rpruizc/rustoguelike/internal/domain"
	"github.com/rpruizc/rustoguelike/internal/engine"
	"github.com/rpruizc/rustoguelike/pkg/dungeon"
	"github.com/rpruizc/rustoguelike/pkg/logger"
)

// Клетка сетки под глиф Face7x13: 7px ширины плюс зазор, 13px высоты плюс межстрочье
const (
	cellWidth  = 8
	cellHeight = 14
	fontAscent = 11 // базовая линия Face7x13

	messageLines = 3
	hudLines     = messageLines + 2

	windowScale = 2
)

func init() {
	logger.Init()
}

type frontend struct {
	game     *engine.Game
	cfg      engine.Config
	flagSeed int64
	face     font.Face
	messages []string
}

func newFrontend(cfg engine.Config, flagSeed int64) *frontend {
	return &frontend{
		game:     engine.NewGame(cfg, dungeon.NewGenerator()),
		cfg:      cfg,
		flagSeed: flagSeed,
		face:     basicfont.Face7x13,
	}
}

func (f *frontend) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		f.step(domain.MoveCommand(enums.DirectionNorth))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		f.step(domain.MoveCommand(enums.DirectionSouth))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		f.step(domain.MoveCommand(enums.DirectionWest))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		f.step(domain.MoveCommand(enums.DirectionEast))
	case inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyPeriod):
		f.step(domain.WaitCommand())
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		f.game.SetOmniscient(!f.game.Omniscient())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if !f.game.IsPlayerAlive() {
			f.restart()
		}
	}
	return nil
}

func (f *frontend) step(cmd domain.Command) {
	events := f.game.ProcessTurn(cmd)
	for _, ev := range events {
		f.messages = append(f.messages, ev.Text)
	}
	if len(f.messages) > messageLines {
		f.messages = f.messages[len(f.messages)-messageLines:]
	}
}

// restart начинает новую партию. Явный -seed повторяет то же
// подземелье, без него жребий тянется заново.
func (f *frontend) restart() {
	cfg := f.cfg
	if f.flagSeed != 0 {
		cfg.Seed = f.flagSeed
	} else {
		cfg.Seed = time.Now().UnixNano()
	}
	f.cfg = cfg
	f.game = engine.NewGame(cfg, dungeon.NewGenerator())
	f.messages = nil
}

func (f *frontend) Draw(screen *ebiten.Image) {
	size := f.game.Size()

	// Статика по памяти игрока: Previously затемняется
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			c := domain.Coord{X: x, Y: y}
			state := f.game.VisibilityAt(c)
			if state == enums.VisibilityNever {
				continue
			}
			tile, ok := f.game.RememberedTile(c)
			if !ok {
				continue
			}
			glyph := tile.Glyph()
			if state == enums.VisibilityPreviously {
				glyph = glyph.Dim()
			}
			f.drawGlyph(screen, x, y, glyph)
		}
	}

	// Живые персонажи поверх статики
	for _, r := range f.game.Renderables() {
		if r.Location.Layer != enums.LayerCharacter || r.Visibility != enums.VisibilityCurrently {
			continue
		}
		f.drawGlyph(screen, r.Location.Coord.X, r.Location.Coord.Y, r.Tile.Glyph())
	}

	f.drawHud(screen, size)
}

func (f *frontend) drawGlyph(screen *ebiten.Image, x, y int, glyph types.Glyph) {
	r, g, b := glyph.RGB()
	text.Draw(screen, string(rune(glyph.Char())), f.face,
		x*cellWidth, y*cellHeight+fontAscent,
		color.RGBA{R: r, G: g, B: b, A: 0xFF})
}

func (f *frontend) drawHud(screen *ebiten.Image, size domain.Size) {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	status := "You are dead"
	if hp, ok := f.game.PlayerHitPoints(); ok && f.game.IsPlayerAlive() {
		status = fmt.Sprintf("HP %d/%d", hp.Current, hp.Max)
	}
	status = fmt.Sprintf("%s  Turn %d", status, f.game.Turn())
	if f.game.Omniscient() {
		status += "  [omniscient]"
	}
	text.Draw(screen, status, f.face, 0, size.Height*cellHeight+fontAscent, white)

	for i, msg := range f.messages {
		text.Draw(screen, msg, f.face, 0, (size.Height+1+i)*cellHeight+fontAscent, white)
	}

	if !f.game.IsPlayerAlive() {
		text.Draw(screen, "YOU DIED. Press R to restart, Q to quit.", f.face,
			0, (size.Height+1+messageLines)*cellHeight+fontAscent,
			color.RGBA{R: 0xFF, A: 0xFF})
	}
}

func (f *frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := f.game.Size()
	return size.Width * cellWidth, (size.Height + hudLines) * cellHeight
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

	f := newFrontend(cfg, seed)

	size := f.game.Size()
	ebiten.SetWindowSize(size.Width*cellWidth*windowScale, (size.Height+hudLines)*cellHeight*windowScale)
	ebiten.SetWindowTitle("Rustoguelike")

	if err := ebiten.RunGame(f); err != nil {
		logger.Log.Fatal("Window closed with error: ", err)
	}
}
