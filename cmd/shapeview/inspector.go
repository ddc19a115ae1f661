package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const inspectorWidth = 360

// Inspector is the side panel that shows the query report and a few
// controls.
type Inspector struct {
	UI     *ebitenui.UI
	panel  *widget.Container
	report *widget.Text
}

// NewInspector builds the panel with buttons and labels drawn from the
// built-in basic font, so no theme assets are needed.
func NewInspector(v *Viewer) *Inspector {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	title := widget.NewText(
		widget.TextOpts.Text("Inspector  [R]eload [C]opy [B]oxes [Tab] scene", &face, white),
	)
	report := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xcc, G: 0xe6, B: 0xff, A: 0xff}),
		widget.TextOpts.MaxWidth(inspectorWidth-20),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	buttons.AddChild(button("Reload", v.Reload))
	buttons.AddChild(button("Copy", v.CopyReport))
	buttons.AddChild(button("Boxes", v.ToggleBoxes))
	buttons.AddChild(button("Next", v.NextScene))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(inspectorWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(buttons)
	panel.AddChild(report)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &Inspector{
		UI:     &ebitenui.UI{Container: root},
		panel:  panel,
		report: report,
	}
}

func (in *Inspector) SetReport(report string) {
	in.report.Label = report
}

// Contains reports whether the screen position lies on the panel, so clicks
// on it do not start a segment query.
func (in *Inspector) Contains(x, y int) bool {
	return image.Pt(x, y).In(in.panel.GetWidget().Rect)
}
