package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUD shows the published player snapshot in the top-left corner.
type HUD struct {
	UI *ebitenui.UI

	stateLabel  *widget.Label
	speedLabel  *widget.Label
	floorLabel  *widget.Label
	cameraLabel *widget.Label
	scoreLabel  *widget.Label
	tickLabel   *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewHUD builds the HUD. fonts.LoadDefaults must have been called.
func NewHUD() *HUD {
	h := &HUD{
		titleFace:  fonts.HUDBold.Face(),
		normalFace: fonts.HUD.Face(),
		smallFace:  fonts.HUDSmall.Face(),
	}
	h.buildUI()
	return h
}

func (h *HUD) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 180})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.stateLabel = h.label(panel, &h.titleFace, cfg.UI.HUDTextColor)
	h.speedLabel = h.label(panel, &h.normalFace, cfg.UI.HUDTextColor)
	h.floorLabel = h.label(panel, &h.normalFace, cfg.UI.HUDTextColor)
	h.cameraLabel = h.label(panel, &h.normalFace, cfg.LightBlue)
	h.scoreLabel = h.label(panel, &h.normalFace, cfg.Yellow)
	h.tickLabel = h.label(panel, &h.smallFace, cfg.DarkBlue)

	rootContainer.AddChild(panel)
	h.UI = &ebitenui.UI{Container: rootContainer}
}

func (h *HUD) label(parent *widget.Container, face *text.Face, clr color.Color) *widget.Label {
	l := widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{Idle: clr}),
	)
	parent.AddChild(l)
	return l
}

// Refresh copies the snapshot and camera state into the labels.
func (h *HUD) Refresh(s components.PlayerSnapshot, camera *components.CameraData, score int) {
	h.stateLabel.Label = s.State.String()
	h.speedLabel.Label = fmt.Sprintf("speed %.2f (%v) [%.1f-%.1f]", s.CurrentSpeed, s.SpeedState, s.BaseSpeed, s.MaxSpeed)
	if s.Grounded {
		h.floorLabel.Label = fmt.Sprintf("grounded, floor %.2f", s.DistanceFromFloor)
	} else {
		h.floorLabel.Label = fmt.Sprintf("airborne, vy %.2f", s.Velocity.Y())
	}
	if camera != nil {
		h.cameraLabel.Label = fmt.Sprintf("camera %v %.0f°", camera.Mode, camera.Angle)
	}
	h.scoreLabel.Label = fmt.Sprintf("score %d", score)
	h.tickLabel.Label = fmt.Sprintf("tick %d v%d", s.Tick, s.Version)
}

func (h *HUD) Update() {
	h.UI.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
}
