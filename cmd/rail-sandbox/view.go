package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rail-walker/spline"
	"github.com/lixenwraith/rail-walker/vmath"
	"github.com/lixenwraith/rail-walker/walker"
)

// rasterSamples is the number of plotted points per spline segment
const rasterSamples = 48

// viewMargin pads the world bounds on every side, in world units
const viewMargin = 1.0

var (
	styleNormal   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleActive   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// view draws a side projection of the spline network: X maps to columns, Y to rows
type view struct {
	screen  tcell.Screen
	reg     *spline.Registry
	showHUD bool

	minX, maxX float64
	minY, maxY float64
}

func newView(screen tcell.Screen, reg *spline.Registry) *view {
	v := &view{screen: screen, reg: reg, showHUD: true}
	v.fit()
	return v
}

// fit recomputes world bounds from every registered spline
func (v *view) fit() {
	v.minX, v.minY = math.Inf(1), math.Inf(1)
	v.maxX, v.maxY = math.Inf(-1), math.Inf(-1)
	for _, sp := range v.reg.All() {
		v.eachSample(sp, func(p vmath.Vec3F) {
			v.minX, v.maxX = math.Min(v.minX, p.X), math.Max(v.maxX, p.X)
			v.minY, v.maxY = math.Min(v.minY, p.Y), math.Max(v.maxY, p.Y)
		})
	}
	if math.IsInf(v.minX, 1) {
		v.minX, v.maxX, v.minY, v.maxY = 0, 0, 0, 0
	}
	v.minX -= viewMargin
	v.maxX += viewMargin
	v.minY -= viewMargin
	v.maxY += viewMargin
}

func (v *view) eachSample(sp *spline.Spline, fn func(vmath.Vec3F)) {
	if !sp.Initialized() {
		return
	}
	n := rasterSamples * sp.SegmentCount()
	for i := 0; i <= n; i++ {
		fn(sp.PositionAt(float64(i) / float64(n)))
	}
}

// project maps a world position to a screen cell; row 0 is the top of the world
func (v *view) project(p vmath.Vec3F) (col, row int) {
	w, h := v.screen.Size()
	sx := (p.X - v.minX) / (v.maxX - v.minX)
	sy := (p.Y - v.minY) / (v.maxY - v.minY)
	col = int(math.Round(sx * float64(w-1)))
	row = h - 1 - int(math.Round(sy*float64(h-1)))
	return col, row
}

func splineStyle(sp *spline.Spline) (rune, tcell.Style) {
	switch sp.Type() {
	case spline.Platform:
		return '=', stylePlatform
	case spline.Wall:
		return '|', styleWall
	}
	return '#', styleNormal
}

func walkerGlyph(m walker.Mode) rune {
	switch m {
	case walker.Airborne:
		return '^'
	case walker.WallHanging, walker.WallSliding:
		return '%'
	case walker.SlopeSliding:
		return '~'
	}
	return '@'
}

// draw renders one frame
func (v *view) draw(st walker.State, hud []string) {
	v.screen.Clear()

	for _, sp := range v.reg.All() {
		glyph, style := splineStyle(sp)
		if sp.Name() == st.Spline {
			style = styleActive
		}
		v.eachSample(sp, func(p vmath.Vec3F) {
			col, row := v.project(p)
			v.screen.SetContent(col, row, glyph, nil, style)
		})
	}

	col, row := v.project(st.Position)
	v.screen.SetContent(col, row, walkerGlyph(st.Mode), nil, styleHUD.Bold(true))

	if v.showHUD {
		for i, line := range hud {
			v.drawText(0, i, line)
		}
	}
	v.screen.Show()
}

func (v *view) drawText(x, y int, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, styleHUD)
		x++
	}
}
