package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/dashrun/components"
	cfg "github.com/automoto/dashrun/config"
	"github.com/automoto/dashrun/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LobbyUI holds the ebitenui interface for the lobby
type LobbyUI struct {
	UI    *ebitenui.UI
	Lobby *components.LobbyData

	// Callbacks
	OnStartMatch func()
	OnQuit       func()

	// Widget references for updates, one per roster slot
	slotLabels    []*widget.Label
	readyButtons  []*widget.Button
	removeButtons []*widget.Button
	addButton     *widget.Button
	startButton   *widget.Button
	statusLabel   *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewLobbyUI creates a new lobby UI with one row per roster slot
func NewLobbyUI(lobby *components.LobbyData, onStartMatch, onQuit func()) *LobbyUI {
	lui := &LobbyUI{
		Lobby:        lobby,
		OnStartMatch: onStartMatch,
		OnQuit:       onQuit,
	}

	lui.loadFonts()
	lui.buildUI()

	return lui
}

func (lui *LobbyUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Smaller fonts to fit 640x360 screen
	lui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	lui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	lui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (lui *LobbyUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.ArenaBg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("LOBBY", &lui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(lui.buildSlotsContainer())
	contentContainer.AddChild(lui.buildButtonsContainer())

	lui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &lui.smallFace, &widget.LabelColor{
			Idle: cfg.LightRed,
		}),
	)
	contentContainer.AddChild(lui.statusLabel)

	rootContainer.AddChild(contentContainer)

	lui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (lui *LobbyUI) buildSlotsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	slots := lui.Lobby.MaxPlayers
	lui.slotLabels = make([]*widget.Label, slots)
	lui.readyButtons = make([]*widget.Button, slots)
	lui.removeButtons = make([]*widget.Button, slots)
	for i := 0; i < slots; i++ {
		container.AddChild(lui.buildSlotRow(i))
	}

	return container
}

func (lui *LobbyUI) buildSlotRow(slotIndex int) *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	playerLabel := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("P%d:", slotIndex+1), &lui.normalFace, &widget.LabelColor{
			Idle: systems.PlayerColor(slotIndex),
		}),
	)
	row.AddChild(playerLabel)

	lui.slotLabels[slotIndex] = widget.NewLabel(
		widget.LabelOpts.Text("(open)", &lui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	row.AddChild(lui.slotLabels[slotIndex])

	idx := slotIndex // Capture for closure
	lui.readyButtons[slotIndex] = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 20)),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text("", &lui.smallFace, lui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p, ok := lui.playerAt(idx); ok {
				systems.ToggleReady(lui.Lobby, p.ID)
				lui.UpdateUI()
			}
		}),
	)
	row.AddChild(lui.readyButtons[slotIndex])

	lui.removeButtons[slotIndex] = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 20)),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text("Remove", &lui.smallFace, lui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if p, ok := lui.playerAt(idx); ok {
				systems.LeaveLobby(lui.Lobby, p.ID)
				lui.UpdateUI()
			}
		}),
	)
	row.AddChild(lui.removeButtons[slotIndex])

	return row
}

func (lui *LobbyUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &lui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.OnQuit != nil {
				lui.OnQuit()
			}
		}),
	)
	container.AddChild(quitButton)

	lui.addButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(lui.buttonImage()),
		widget.ButtonOpts.Text("Add Player", &lui.normalFace, lui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			AddDefaultPlayer(lui.Lobby)
			lui.UpdateUI()
		}),
	)
	container.AddChild(lui.addButton)

	lui.startButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(lui.startButtonImage()),
		widget.ButtonOpts.Text("START", &lui.normalFace, &widget.ButtonTextColor{
			Idle:     cfg.White,
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if systems.CanStartMatch(lui.Lobby) && lui.OnStartMatch != nil {
				lui.OnStartMatch()
			}
		}),
	)
	container.AddChild(lui.startButton)

	return container
}

// AddDefaultPlayer joins a player named after their new id. It returns
// false when the lobby is full.
func AddDefaultPlayer(lobby *components.LobbyData) bool {
	id := systems.NextPlayerID(lobby)
	return systems.JoinLobby(lobby, id, fmt.Sprintf("Player %d", id))
}

func (lui *LobbyUI) playerAt(slot int) (components.LobbyPlayer, bool) {
	if slot < 0 || slot >= len(lui.Lobby.Players) {
		return components.LobbyPlayer{}, false
	}
	return lui.Lobby.Players[slot], true
}

func (lui *LobbyUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{200, 200, 200, 255},
		Hover:    cfg.White,
		Pressed:  color.RGBA{150, 150, 150, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

func (lui *LobbyUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (lui *LobbyUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI updates all UI elements to reflect current lobby state
func (lui *LobbyUI) UpdateUI() {
	for i := range lui.slotLabels {
		p, taken := lui.playerAt(i)

		if lui.slotLabels[i] != nil {
			if taken {
				lui.slotLabels[i].Label = fmt.Sprintf("%s (id %d)", p.Name, p.ID)
			} else {
				lui.slotLabels[i].Label = "(open)"
			}
		}

		if b := lui.readyButtons[i]; b != nil {
			if textWidget := b.Text(); textWidget != nil {
				switch {
				case !taken:
					textWidget.Label = ""
				case p.Ready:
					textWidget.Label = "Ready"
				default:
					textWidget.Label = "Not Ready"
				}
			}
			b.GetWidget().Disabled = !taken
		}

		if b := lui.removeButtons[i]; b != nil {
			b.GetWidget().Disabled = !taken
		}
	}

	if lui.addButton != nil {
		lui.addButton.GetWidget().Disabled = len(lui.Lobby.Players) >= lui.Lobby.MaxPlayers
	}

	if lui.startButton != nil {
		lui.startButton.GetWidget().Disabled = !systems.CanStartMatch(lui.Lobby)
	}
	if lui.statusLabel != nil {
		lui.statusLabel.Label = systems.LobbyValidationMessage(lui.Lobby)
	}
}

// Update calls the UI's Update method
func (lui *LobbyUI) Update() {
	lui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !lui.initialized {
		lui.initialized = true
		lui.UpdateUI()
	}
}
