package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/theme"
)

func (a *App) color(slot func(theme.Palette) string) rl.Color {
	c := a.Fader.Color(slot)
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.color(func(p theme.Palette) string { return p.Background }))

	for _, at := range a.Scene.Registry.All() {
		a.drawAtom(at)
	}
	a.drawHeader()

	rl.EndDrawing()
}

func (a *App) drawAtom(at *atoms.Atom) {
	size := float32(at.Size)
	if tex, ok := a.Textures[at.ID]; ok {
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		dst := rl.NewRectangle(float32(at.X), float32(at.Y), size, size)
		rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
		return
	}

	cx, cy := at.Center()
	center := rl.NewVector2(float32(cx), float32(cy))
	rl.DrawCircleV(center, size/2, a.color(func(p theme.Palette) string { return p.Atom }))

	fontSize := int32(size / 6)
	if fontSize < 10 {
		fontSize = 10
	}
	tw := rl.MeasureText(at.ID, fontSize)
	rl.DrawText(at.ID, int32(cx)-tw/2, int32(cy)-fontSize/2, fontSize,
		a.color(func(p theme.Palette) string { return p.Background }))
}

func (a *App) drawHeader() {
	text := a.color(func(p theme.Palette) string { return p.Text })
	muted := a.color(func(p theme.Palette) string { return p.Muted })

	rl.DrawText(a.reading.Time, headerMargin, headerMargin, clockSize, text)
	rl.DrawText(a.reading.Date, headerMargin, headerMargin+clockSize+6, dateSize, muted)

	state := a.Scene.Theme.State()
	day, night := buttonRects(rl.GetScreenWidth())
	a.drawButton(day, "Day", state.DayActive)
	a.drawButton(night, "Night", state.NightActive)

	if a.Paused {
		rl.DrawText("PAUSED", headerMargin, int32(rl.GetScreenHeight())-headerMargin-dateSize, dateSize,
			a.color(func(p theme.Palette) string { return p.Accent }))
	}
}

func (a *App) drawButton(r rl.Rectangle, label string, active bool) {
	fill := a.color(func(p theme.Palette) string { return p.Surface })
	ink := a.color(func(p theme.Palette) string { return p.Text })
	if active {
		fill = a.color(func(p theme.Palette) string { return p.Button })
		ink = a.color(func(p theme.Palette) string { return p.ButtonText })
	}
	rl.DrawRectangleRounded(r, 0.5, 8, fill)

	const fontSize = 16
	tw := rl.MeasureText(label, fontSize)
	rl.DrawText(label, int32(r.X)+(int32(r.Width)-tw)/2, int32(r.Y)+(int32(r.Height)-fontSize)/2, fontSize, ink)
}
