package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/event"
	"go-hex-defense/pkg/hexmap"
)

// HexRenderer draws a game's board, towers and enemies. Tiles are cached
// in mapImage and redrawn only after the route or the terrain changes.
type HexRenderer struct {
	colors    *MapColors
	fillImg   *ebiten.Image
	strokeImg *ebiten.Image
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
	fontFace  font.Face
	mapImage  *ebiten.Image

	game  *app.Game
	dirty bool
}

func NewHexRenderer(colors *MapColors) *HexRenderer {
	if colors == nil {
		colors = DefaultMapColors()
	}
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	return &HexRenderer{
		colors:    colors,
		fillImg:   fillImg,
		strokeImg: strokeImg,
		fillVs:    make([]ebiten.Vertex, 0, 18),
		fillIs:    make([]uint16, 0, 18),
		strokeVs:  make([]ebiten.Vertex, 0, 36),
		strokeIs:  make([]uint16, 0, 36),
		fontFace:  basicfont.Face7x13,
	}
}

// OnEvent marks the cached board stale.
func (r *HexRenderer) OnEvent(e event.Event) {
	if e.Type == event.PathUpdated {
		r.dirty = true
	}
}

func (r *HexRenderer) bind(g *app.Game) {
	r.game = g
	r.dirty = true
	g.EventDispatcher.Subscribe(event.PathUpdated, r)
}

// Draw renders g centred on screen. A nil game only clears the screen.
func (r *HexRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(r.colors.BackgroundColor)
	if g == nil {
		return
	}
	if g != r.game {
		r.bind(g)
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if r.mapImage == nil || r.mapImage.Bounds().Dx() != w || r.mapImage.Bounds().Dy() != h {
		r.mapImage = ebiten.NewImage(w, h)
		r.dirty = true
	}
	offset := hexmap.Point{X: float64(w) / 2, Y: float64(h) / 2}
	if r.dirty {
		r.renderMapImage(g, offset)
		r.dirty = false
	}
	screen.DrawImage(r.mapImage, nil)

	r.drawDamage(screen, g, offset)
	for hex := range g.Grid.Towers {
		r.drawHexOutline(screen, g, hex, offset, r.colors.TowerStrokeColor)
	}
	r.drawEnemies(screen, g, offset)
}

// renderMapImage redraws every tile into the cached board image.
func (r *HexRenderer) renderMapImage(g *app.Game, offset hexmap.Point) {
	r.mapImage.Clear()
	hexes := g.Board.Hexes()
	for _, hex := range hexes {
		r.drawHexFill(r.mapImage, g, hex, offset)
	}
	for _, hex := range hexes {
		r.drawHexOutline(r.mapImage, g, hex, offset, color.RGBA{})
	}
}

func (r *HexRenderer) hexPath(g *app.Game, hex hexmap.Hex, offset hexmap.Point) (vector.Path, float64, float64) {
	center := g.Grid.HexToWorld(hex)
	x, y := center.X+offset.X, center.Y+offset.Y
	size := g.Grid.Layout.Size

	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := x + size*math.Cos(angle)
		py := y + size*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path, x, y
}

func (r *HexRenderer) tileColor(g *app.Game, hex hexmap.Hex) color.RGBA {
	id, ok := g.Grid.TileAt(hex)
	if !ok {
		return r.colors.BackgroundColor
	}
	onPath := false
	if tp, ok := g.ECS.TilePaths[id]; ok {
		onPath = tp.IsPath
	}
	switch g.ECS.Tiles[id].Terrain {
	case hexmap.Spawner:
		return r.colors.EntryColor
	case hexmap.Goal:
		return r.colors.ExitColor
	case hexmap.Blocked:
		if onPath {
			return DarkenColor(r.colors.PathColor)
		}
		return r.colors.ImpassableColor
	default:
		if onPath {
			return r.colors.PathColor
		}
		return r.colors.PassableColor
	}
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, g *app.Game, hex hexmap.Hex, offset hexmap.Point) {
	path, x, y := r.hexPath(g, hex, offset)
	fillColor := r.tileColor(g, hex)

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	label := strconv.Itoa(hex.Q) + "," + strconv.Itoa(hex.R)
	textColor := r.colors.TextLightColor
	if isLight(fillColor) {
		textColor = r.colors.TextDarkColor
	}
	r.drawCentered(target, label, x, y-4, textColor)
}

// drawHexOutline strokes hex; a zero strokeColor derives one from the fill.
func (r *HexRenderer) drawHexOutline(target *ebiten.Image, g *app.Game, hex hexmap.Hex, offset hexmap.Point, strokeColor color.RGBA) {
	path, _, _ := r.hexPath(g, hex, offset)
	if strokeColor == (color.RGBA{}) {
		strokeColor = LightenColor(r.tileColor(g, hex), 40)
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth,
	})
	paint(r.strokeVs, strokeColor)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawDamage(screen *ebiten.Image, g *app.Game, offset hexmap.Point) {
	for hex, id := range g.Grid.Tiles {
		area, ok := g.ECS.DamageAreas[id]
		if !ok || area.Damage == 0 {
			continue
		}
		center := g.Grid.HexToWorld(hex)
		r.drawCentered(screen, strconv.FormatUint(uint64(area.Damage), 10), center.X+offset.X, center.Y+offset.Y+8, r.colors.DamageTextColor)
	}
}

func (r *HexRenderer) drawEnemies(screen *ebiten.Image, g *app.Game, offset hexmap.Point) {
	radius := float32(g.Grid.Layout.Size * 0.4)
	for id := range g.ECS.Enemies {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X+offset.X), float32(pos.Y+offset.Y), radius, r.colors.EnemyColor, true)
	}
}

func (r *HexRenderer) drawCentered(target *ebiten.Image, label string, x, y float64, clr color.Color) {
	bounds := text.BoundString(r.fontFace, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(x)-textWidth/2, int(y)+textHeight/2, clr)
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
