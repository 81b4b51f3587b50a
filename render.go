package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	hudFace = text.NewGoXFace(basicfont.Face7x13)

	// whitePixel is the source texture for filled polygons.
	whitePixel *ebiten.Image

	skyColor      = color.RGBA{0x0a, 0x0a, 0x1a, 0xff}
	groundColor   = color.RGBA{0x22, 0x22, 0x88, 0xff}
	spikeColor    = color.RGBA{0xff, 0x00, 0x44, 0xff}
	platformColor = color.RGBA{0xff, 0xaa, 0x00, 0xff}
	barrierColor  = color.RGBA{0xff, 0x66, 0x00, 0xff}
	asteroidColor = color.RGBA{0x88, 0x77, 0x66, 0xff}
	cubeColor     = color.RGBA{0x00, 0xff, 0x88, 0xff}
	planeColor    = color.RGBA{0xff, 0x00, 0x44, 0xff}
	toPlaneColor  = color.RGBA{0x00, 0xff, 0xff, 0xff}
	toCubeColor   = color.RGBA{0xff, 0x00, 0xff, 0xff}
)

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// toScreen maps world coordinates (y up) to screen pixels (y down).
func toScreen(x, y float64) (float32, float32) {
	return float32((x - viewLeft) * pixelsPerUnit), float32((viewTop - y) * pixelsPerUnit)
}

// Draw renders the current session and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	s := g.session
	if s == nil || s.player == nil {
		return
	}

	for _, seg := range s.ground {
		fillWorldRect(screen, seg.x-groundSpacing/2+0.05, groundY-0.5, groundSpacing-0.1, 1, groundColor)
	}
	for _, pl := range s.platforms {
		fillWorldRect(screen, pl.x-platformCatchX+0.1, pl.y-pl.height/2, 2*platformCatchX-0.2, pl.height, platformColor)
	}
	for _, sp := range s.spikes {
		base := groundY + 0.5
		fillPolygon(screen, spikeColor,
			[2]float64{sp.x - 0.4, base},
			[2]float64{sp.x + 0.4, base},
			[2]float64{sp.x, sp.y + spikeLift - 0.25},
		)
	}
	for _, b := range s.barriers {
		fillWorldRect(screen, b.x-0.5, b.gapTop(), 1, viewTop-b.gapTop(), barrierColor)
		fillWorldRect(screen, b.x-0.5, groundY, 1, b.gapBottom()-groundY, barrierColor)
	}
	for _, a := range s.asteroids {
		cx, cy := toScreen(a.x, a.y)
		vector.DrawFilledCircle(screen, cx, cy, float32(a.size*pixelsPerUnit), asteroidColor, true)
	}
	for _, pt := range s.portals {
		clr := toPlaneColor
		if pt.target == formCube {
			clr = toCubeColor
		}
		cx, cy := toScreen(pt.x, 0)
		vector.StrokeCircle(screen, cx, cy, float32(1.5*pixelsPerUnit), 4, clr, true)
	}

	drawPlayer(screen, s.player)

	for _, pt := range s.particles {
		px, py := toScreen(pt.x, pt.y)
		clr := color.NRGBA{0xff, 0xff, 0xff, uint8(clampFloat(pt.life, 0, 1) * 0xff)}
		vector.DrawFilledRect(screen, px-2, py-2, 4, 4, clr, false)
	}

	g.drawHUD(screen)
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }

func (g *Game) drawHUD(screen *ebiten.Image) {
	drawText(screen, fmt.Sprintf("Score: %d", g.hud.score), 8, 8)
	drawText(screen, fmt.Sprintf("Mode: %s / %s", g.variant, g.session.player.form), 8, 24)
	if g.pilot != nil {
		drawText(screen, "autopilot", 8, 40)
	}
	if g.hud.gameOver {
		msg := fmt.Sprintf("GAME OVER - Final Score: %d", g.hud.final)
		w, _ := text.Measure(msg, hudFace, 0)
		drawText(screen, msg, (screenW-w)/2, screenH/2-20)
		hint := "jump or R to restart, M to switch variant"
		w, _ = text.Measure(hint, hudFace, 0)
		drawText(screen, hint, (screenW-w)/2, screenH/2)
	}
	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTick: %.3f ms\nSpeed: %.4f\nParticles: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.lastTickDuration.Seconds()*1000, g.session.speed, len(g.session.particles))
		ebitenutil.DebugPrintAt(screen, msg, screenW-140, 8)
	}
}

func drawText(screen *ebiten.Image, msg string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, hudFace, op)
}

// drawPlayer renders the cube as a rotated square and the plane as a banked
// arrow.
func drawPlayer(screen *ebiten.Image, p *player) {
	switch p.form {
	case formCube:
		const half = 0.4
		fillPolygon(screen, cubeColor,
			rotateAbout(p.x, p.y, -half, -half, p.rotation),
			rotateAbout(p.x, p.y, half, -half, p.rotation),
			rotateAbout(p.x, p.y, half, half, p.rotation),
			rotateAbout(p.x, p.y, -half, half, p.rotation),
		)
	case formPlane:
		// The bank angle is negative when climbing; the nose should point up.
		angle := -p.rotation
		fillPolygon(screen, planeColor,
			rotateAbout(p.x, p.y, 0.9, 0, angle),
			rotateAbout(p.x, p.y, -0.6, 0.45, angle),
			rotateAbout(p.x, p.y, -0.3, 0, angle),
			rotateAbout(p.x, p.y, -0.6, -0.45, angle),
		)
	}
}

// rotateAbout returns the world point (cx+dx, cy+dy) rotated by angle
// around (cx, cy).
func rotateAbout(cx, cy, dx, dy, angle float64) [2]float64 {
	sin, cos := math.Sincos(angle)
	return [2]float64{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos}
}

// fillWorldRect fills an axis-aligned rectangle whose bottom-left corner is
// (x, y) in world units.
func fillWorldRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	sx, sy := toScreen(x, y+h)
	vector.DrawFilledRect(screen, sx, sy, float32(w*pixelsPerUnit), float32(h*pixelsPerUnit), clr, false)
}

// fillPolygon fills a convex polygon given in world coordinates.
func fillPolygon(screen *ebiten.Image, clr color.RGBA, points ...[2]float64) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	for i, pt := range points {
		x, y := toScreen(pt[0], pt[1])
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, gr, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = gr
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vs, is, ensureWhitePixel(), op)
}
