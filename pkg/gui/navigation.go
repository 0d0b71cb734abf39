package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mscrnt/examine/pkg/display"
)

// navButton is one entry in the vertical navigation sidebar.
type navButton struct {
	widget.BaseWidget

	label     string
	icon      fyne.Resource
	onTapped  func()
	selected  bool
	collapsed bool
	renderer  *navButtonRenderer
}

func newNavButton(label string, icon fyne.Resource, onTapped func()) *navButton {
	b := &navButton{label: label, icon: icon, onTapped: onTapped}
	b.ExtendBaseWidget(b)
	return b
}

func (b *navButton) setSelected(selected bool) {
	b.selected = selected
	b.Refresh()
}

func (b *navButton) setCollapsed(collapsed bool) {
	b.collapsed = collapsed
	b.Refresh()
}

// Tapped implements fyne.Tappable.
func (b *navButton) Tapped(*fyne.PointEvent) {
	if b.onTapped != nil {
		b.onTapped()
	}
}

// MouseIn implements desktop.Hoverable.
func (b *navButton) MouseIn(*desktop.MouseEvent) {
	if b.renderer != nil {
		b.renderer.hoverBg.Show()
		b.Refresh()
	}
}

// MouseOut implements desktop.Hoverable.
func (b *navButton) MouseOut() {
	if b.renderer != nil {
		b.renderer.hoverBg.Hide()
		b.Refresh()
	}
}

// MouseMoved implements desktop.Hoverable.
func (b *navButton) MouseMoved(*desktop.MouseEvent) {}

// CreateRenderer implements fyne.Widget.
func (b *navButton) CreateRenderer() fyne.WidgetRenderer {
	icon := widget.NewIcon(b.icon)
	label := widget.NewLabel(b.label)
	label.Alignment = fyne.TextAlignLeading

	bg := canvas.NewRectangle(color.Transparent)
	bg.CornerRadius = 6
	hoverBg := canvas.NewRectangle(color.RGBA{0x44, 0x44, 0x48, 0x33})
	hoverBg.CornerRadius = 6
	hoverBg.Hide()

	content := container.NewBorder(nil, nil, container.NewCenter(icon), nil, label)

	r := &navButtonRenderer{
		button:  b,
		bg:      bg,
		hoverBg: hoverBg,
		label:   label,
		icon:    icon,
		content: content,
		objects: []fyne.CanvasObject{bg, hoverBg, content},
	}
	b.renderer = r
	return r
}

type navButtonRenderer struct {
	button  *navButton
	bg      *canvas.Rectangle
	hoverBg *canvas.Rectangle
	label   *widget.Label
	icon    *widget.Icon
	content fyne.CanvasObject
	objects []fyne.CanvasObject
}

func (r *navButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.hoverBg.Resize(size)
	r.content.Resize(size)
}

func (r *navButtonRenderer) MinSize() fyne.Size {
	if r.button.collapsed {
		return fyne.NewSize(48, 38)
	}
	return fyne.NewSize(170, 38)
}

func (r *navButtonRenderer) Refresh() {
	r.label.TextStyle = fyne.TextStyle{Bold: r.button.selected}
	if r.button.collapsed {
		r.label.Hide()
	} else {
		r.label.Show()
	}
	r.label.Refresh()

	if r.button.selected {
		r.bg.FillColor = color.RGBA{colorAccent.R, colorAccent.G, colorAccent.B, 0x30}
	} else {
		r.bg.FillColor = color.Transparent
	}
	r.bg.Refresh()
}

func (r *navButtonRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *navButtonRenderer) Destroy() {}

// sidebar is the vertical page navigation. Selecting an entry is a pure
// state transition: it swaps in content built from the startup snapshot and
// never triggers data collection.
type sidebar struct {
	container *fyne.Container
	content   *fyne.Container

	pages    []display.Page
	buttons  []*navButton
	contents map[display.Page]fyne.CanvasObject

	current   display.Page
	collapsed bool
	onSelect  func(display.Page)
}

func pageIcon(p display.Page) fyne.Resource {
	switch p {
	case display.PageOverview:
		return theme.HomeIcon()
	case display.PageDistribution:
		return theme.InfoIcon()
	case display.PageMotherboard:
		return theme.ComputerIcon()
	case display.PageProcessor:
		return theme.SettingsIcon()
	case display.PagePCIDevices:
		return theme.StorageIcon()
	case display.PageUSBDevices:
		return theme.ListIcon()
	}
	return theme.DocumentIcon()
}

func newSidebar(onSelect func(display.Page)) *sidebar {
	s := &sidebar{
		pages:    display.Pages(),
		contents: make(map[display.Page]fyne.CanvasObject),
		current:  -1,
		onSelect: onSelect,
	}

	buttonBox := container.NewVBox()
	for _, p := range s.pages {
		page := p
		btn := newNavButton(page.Title(), pageIcon(page), func() {
			s.Select(page)
		})
		s.buttons = append(s.buttons, btn)
		buttonBox.Add(btn)
	}

	navBg := canvas.NewRectangle(color.RGBA{0x1d, 0x1d, 0x21, 0xff})
	s.container = container.NewStack(navBg, container.NewPadded(buttonBox))
	s.content = container.NewStack()
	return s
}

// SetContent installs the rendered rows for one page.
func (s *sidebar) SetContent(p display.Page, content fyne.CanvasObject) {
	s.contents[p] = content
	if s.current == p {
		s.content.Objects = []fyne.CanvasObject{content}
		s.content.Refresh()
	}
}

// Select activates a page and notifies the owner.
func (s *sidebar) Select(p display.Page) {
	for i, page := range s.pages {
		s.buttons[i].setSelected(page == p)
	}

	s.content.Objects = nil
	if c, ok := s.contents[p]; ok {
		s.content.Objects = []fyne.CanvasObject{c}
	}
	s.content.Refresh()
	s.current = p

	if s.onSelect != nil {
		s.onSelect(p)
	}
}

// SetCollapsed switches the sidebar between full and icon-only width.
func (s *sidebar) SetCollapsed(collapsed bool) {
	if s.collapsed == collapsed {
		return
	}
	s.collapsed = collapsed
	for _, btn := range s.buttons {
		btn.setCollapsed(collapsed)
	}
	s.container.Refresh()
}

// Collapsed reports the current sidebar state.
func (s *sidebar) Collapsed() bool { return s.collapsed }

// Layout returns the sidebar and content arranged in a border layout.
func (s *sidebar) Layout() fyne.CanvasObject {
	return container.NewBorder(nil, nil, s.container, nil, s.content)
}
