package game

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/lottery-wheel/internal/config"
	"github.com/iburimskiy/lottery-wheel/internal/wheel"
)

var (
	center = wheel.Point{X: config.CenterX, Y: config.CenterY}

	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// pointerTip is where the pointer touches a wheel of the given radius.
func pointerTip(radius float64) wheel.Point {
	return wheel.Point{X: center.X, Y: center.Y + radius - config.PointerTipInset}
}

// solid returns a 1x1 white source image for DrawTriangles.
func solid() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (g *Game) fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
	g.drawVertices(dst, clr)
}

func (g *Game) strokePath(dst *ebiten.Image, path *vector.Path, clr color.Color, width float32) {
	op := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}
	g.vertices, g.indices = path.AppendVerticesAndIndicesForStroke(g.vertices[:0], g.indices[:0], op)
	g.drawVertices(dst, clr)
}

func (g *Game) drawVertices(dst *ebiten.Image, clr color.Color) {
	r, gr, b, a := clr.RGBA()
	for i := range g.vertices {
		g.vertices[i].SrcX = 1
		g.vertices[i].SrcY = 1
		g.vertices[i].ColorR = float32(r) / 0xffff
		g.vertices[i].ColorG = float32(gr) / 0xffff
		g.vertices[i].ColorB = float32(b) / 0xffff
		g.vertices[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(g.vertices, g.indices, solid(), op)
}

// sectionPath outlines one pie slice as a fan of arc points.
func sectionPath(radius, start, end float64, points int) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(center.X), float32(center.Y))
	for j := 0; j <= points; j++ {
		theta := start + (end-start)*float64(j)/float64(points)
		p := wheel.OnCircle(center, radius, theta)
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return &path
}

func (g *Game) drawWheel(screen *ebiten.Image) {
	numbers := g.wheel.Remaining()
	n := len(numbers)
	if n == 0 {
		return
	}

	s := g.wheel.Settings()
	radius := g.wheel.Radius()
	angle := g.wheel.Angle()
	colors := wheel.Pastel(n, s.Darkness)
	points := max(config.MinArcPoints, int(360/float64(n)/2))
	flashIdx, lit := g.wheel.FlashSection()
	face := g.fonts.face(s.WheelFontSize, s.NumberStyle)

	for i, num := range numbers {
		start, end := wheel.SectionArc(angle, i, n)
		path := sectionPath(radius, start, end, points)

		var fill color.Color = colors[i]
		if i == flashIdx && lit {
			fill = settingColor(s.FlashColor)
		}
		g.fillPath(screen, path, fill)
		g.strokePath(screen, path, settingColor(s.BorderColor), float32(s.BorderWidth))

		mid := (start + end) / 2
		pos := wheel.OnCircle(center, radius-config.NumberInset, mid)
		g.drawRotated(screen, strconv.Itoa(num), face, pos, mid-90, settingColor(s.NumberColor))
	}

	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(s.HubSize)/2, settingColor(s.HubColor), true)
	dot := wheel.OnCircle(center, float64(s.DotOffset), angle)
	vector.DrawFilledCircle(screen, float32(dot.X), float32(dot.Y), float32(s.DotSize)/2, settingColor(s.DotColor), true)
}

// drawRotated draws s centered on pos, turned counterclockwise by degrees.
func (g *Game) drawRotated(screen *ebiten.Image, s string, face text.Face, pos wheel.Point, degrees float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Rotate(-degrees * math.Pi / 180)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawPointer draws the black pointer body with its red tip pointing up
// into the wheel.
func (g *Game) drawPointer(screen *ebiten.Image) {
	const half = config.PointerWidth / 2.0
	tip := pointerTip(g.wheel.Radius())
	tipX, tipY := tip.X, tip.Y
	baseY := tipY + config.PointerHeight
	redY := tipY + config.PointerRedHeight
	redHalf := half * config.PointerRedHeight / config.PointerHeight

	var body vector.Path
	body.MoveTo(float32(tipX-half), float32(baseY))
	body.LineTo(float32(tipX+half), float32(baseY))
	body.LineTo(float32(tipX+redHalf), float32(redY))
	body.LineTo(float32(tipX-redHalf), float32(redY))
	body.Close()
	g.fillPath(screen, &body, colBlack)

	var tipPath vector.Path
	tipPath.MoveTo(float32(tipX-redHalf), float32(redY))
	tipPath.LineTo(float32(tipX+redHalf), float32(redY))
	tipPath.LineTo(float32(tipX), float32(tipY))
	tipPath.Close()
	g.fillPath(screen, &tipPath, colRed)
}

func cellRect(i int) wheel.Rect {
	row := i / config.TableCols
	col := i % config.TableCols
	return wheel.Rect{
		X: float64(config.TableX + col*config.CellWidth),
		Y: float64(config.TableY + row*config.CellHeight),
		W: config.CellWidth,
		H: config.CellHeight,
	}
}

func (g *Game) drawWinners(screen *ebiten.Image) {
	winners := g.wheel.Winners()
	if len(winners) == 0 {
		return
	}

	s := g.wheel.Settings()
	face := g.fonts.face(s.TableFontSize, wheel.Regular)
	flashIdx, lit := g.wheel.FlashCell()
	for i := 0; i < config.TableRows*config.TableCols; i++ {
		r := cellRect(i)
		if i == flashIdx && lit {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), settingColor(s.FlashColor), false)
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), config.CellBorder, colDarkBrown, false)
	}

	for i, num := range winners {
		if i >= config.TableRows*config.TableCols {
			break
		}
		c := cellRect(i).Center()
		drawCentered(screen, strconv.Itoa(num), face, c.X, c.Y, g.wheel.NumberColor(num))
	}
}

func (g *Game) drawMain(screen *ebiten.Image) {
	screen.Fill(settingColor(g.wheel.Settings().Background))
	g.drawWheel(screen)
	g.drawPointer(screen)
	g.drawWinners(screen)
	for _, b := range g.buttons {
		g.drawButton(screen, b, g.fonts.button)
	}
}
