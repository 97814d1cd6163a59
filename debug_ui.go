package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/overworld/ecs/component"
)

// DebugUI is the F3 overlay: camera, map, and transition state in a corner
// panel. F8 copies the current readout to the system clipboard.
type DebugUI struct {
	ui      *ebitenui.UI
	lines   *widget.Text
	visible bool

	clipboardOK bool
	dump        string
}

func NewDebugUI() *DebugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	lines := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(lines)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	d := &DebugUI{
		ui:    &ebitenui.UI{Container: root},
		lines: lines,
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
	} else {
		d.clipboardOK = true
	}
	return d
}

func (d *DebugUI) Update(g *Game) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		d.visible = !d.visible
	}

	mapName := "<none>"
	if m := g.render.ActiveMap(); m != nil {
		mapName = m.Name()
	}
	wisps := len(g.world.Query(component.WispComponent.ID()))
	d.dump = fmt.Sprintf(
		"map: %s\ncamera: %.1f, %.1f\ntransitioning: %v (alpha %.2f)\nwisps: %d\ntps: %.0f",
		mapName,
		g.cam.X, g.cam.Y,
		g.render.Transitioning(), g.render.TransitionAlpha(),
		wisps,
		ebiten.ActualTPS(),
	)

	if inpututil.IsKeyJustPressed(ebiten.KeyF8) && d.clipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(d.dump))
	}

	if !d.visible {
		return
	}
	d.lines.Label = d.dump
	d.ui.Update()
}

func (d *DebugUI) Draw(screen *ebiten.Image) {
	if !d.visible {
		return
	}
	d.ui.Draw(screen)
}
