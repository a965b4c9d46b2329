package gui

import (
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/atomscene/internal/clock"
	"github.com/san-kum/atomscene/internal/scene"
	"github.com/san-kum/atomscene/internal/theme"
)

const (
	buttonW      = 84
	buttonH      = 32
	buttonGap    = 8
	headerMargin = 24
	clockSize    = 28
	dateSize     = 18
)

type Options struct {
	Scene  *scene.Scene
	Clock  *clock.Formatter
	Width  int
	Height int
	FPS    int
	Title  string
}

// App is the window host. All scene calls happen on the raylib main loop.
type App struct {
	Scene    *scene.Scene
	Clock    *clock.Formatter
	Fader    *theme.Fader
	Textures map[string]rl.Texture2D
	Paused   bool

	schedule *clock.Schedule
	reading  clock.Reading
	fps      int
}

func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
}

// NewApp expects the window to be open already, since textures can only be
// loaded with a live GL context.
func NewApp(opts Options) *App {
	a := &App{
		Scene:    opts.Scene,
		Clock:    opts.Clock,
		Fader:    theme.NewFader(opts.FPS, opts.Scene.Theme.Mode()),
		Textures: make(map[string]rl.Texture2D),
		schedule: clock.NewSchedule(time.Second),
		fps:      opts.FPS,
	}
	a.loadTextures()
	a.reading = a.Clock.Read(time.Now())
	return a
}

func (a *App) loadTextures() {
	for _, at := range a.Scene.Registry.All() {
		if at.Image == "" {
			continue
		}
		if _, err := os.Stat(at.Image); err != nil {
			log.Printf("atom %s: image %s not found, drawing a disc", at.ID, at.Image)
			continue
		}
		tex := rl.LoadTexture(at.Image)
		if tex.ID == 0 {
			log.Printf("atom %s: could not load %s", at.ID, at.Image)
			continue
		}
		rl.SetTextureFilter(tex, rl.FilterBilinear)
		a.Textures[at.ID] = tex
	}
}

func (a *App) unload() {
	for id, tex := range a.Textures {
		rl.UnloadTexture(tex)
		delete(a.Textures, id)
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Title == "" {
		opts.Title = "atomscene"
	}
	initWindow(opts)
	defer rl.CloseWindow()

	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	opts.Scene.Resize(float64(w), float64(h))

	app := NewApp(opts)
	defer app.unload()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// buttonRects returns the Day and Night button rectangles for a window width.
func buttonRects(width int) (day, night rl.Rectangle) {
	x := float32(width - headerMargin - buttonW)
	night = rl.NewRectangle(x, headerMargin, buttonW, buttonH)
	day = rl.NewRectangle(x-buttonGap-buttonW, headerMargin, buttonW, buttonH)
	return day, night
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.Scene.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	mouse := rl.GetMousePosition()
	if rl.IsCursorOnScreen() {
		a.Scene.PointerMove(float64(mouse.X), float64(mouse.Y))
	} else {
		a.Scene.PointerLeave()
	}

	switch {
	case rl.IsKeyPressed(rl.KeyD):
		a.Scene.SetMode(theme.Light)
	case rl.IsKeyPressed(rl.KeyN):
		a.Scene.SetMode(theme.Dark)
	case rl.IsKeyPressed(rl.KeySpace):
		a.Paused = !a.Paused
	}

	hover := false
	day, night := buttonRects(rl.GetScreenWidth())
	if rl.CheckCollisionPointRec(mouse, day) || rl.CheckCollisionPointRec(mouse, night) {
		hover = true
	}
	target := a.Scene.AtomAt(float64(mouse.X), float64(mouse.Y))
	if target != nil && target.Link != "" {
		hover = true
	}
	if hover {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		switch {
		case rl.CheckCollisionPointRec(mouse, day):
			a.Scene.SetMode(theme.Light)
		case rl.CheckCollisionPointRec(mouse, night):
			a.Scene.SetMode(theme.Dark)
		case target != nil && target.Link != "":
			rl.OpenURL(target.Link)
		}
	}

	if !a.Paused {
		a.Scene.Advance(float64(rl.GetFrameTime()))
	}
	a.Fader.Update(a.Scene.Theme.Mode())

	now := time.Now()
	if a.schedule.Due(now) {
		a.reading = a.Clock.Read(now)
	}
}
