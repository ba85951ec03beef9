package platform

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-strut/strut/pkg/animation"
	"github.com/go-strut/strut/pkg/geometry"
	"github.com/go-strut/strut/pkg/input"
	"github.com/go-strut/strut/pkg/paint"
	"github.com/go-strut/strut/pkg/ui"
	"github.com/go-strut/strut/pkg/widgets"
)

// App builds one frame of the user interface.
type App func(root *ui.Ui)

// Host runs an App in an OS window. Each tick it translates the host's
// input into a ui.Frame, builds the frame, and rasterizes the
// resulting display list.
//
// The host redraws every tick, so repaint requests from animations are
// satisfied without extra scheduling.
type Host struct {
	cfg *Config
	ctx *ui.Context
	app App

	touches  input.TouchTracker
	touchIDs []ebiten.TouchID
	touchBuf []input.Touch
	keys     []ebiten.Key
	chars    []rune

	list          *paint.DisplayList
	typed         string
	width, height int
	lastTick      time.Time
}

// NewHost creates a host for the given app. Style overrides from the
// config are applied to the context.
func NewHost(cfg *Config, app App) *Host {
	ctx := ui.NewContext()
	cfg.ApplyStyle(ctx.Style())
	return &Host{
		cfg:    cfg,
		ctx:    ctx,
		app:    app,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
}

// Context returns the ui context owned by this host.
func (h *Host) Context() *ui.Context { return h.ctx }

// TypedText returns the text typed during the last frame: character
// input plus any just-pressed keys that carry an obvious text meaning.
func (h *Host) TypedText() string { return h.typed }

// Run opens the window and blocks until it is closed. Scroll positions
// are restored from the session file before the first frame and saved
// back on a clean exit.
func (h *Host) Run() error {
	ebiten.SetWindowSize(h.cfg.Window.Width, h.cfg.Window.Height)
	ebiten.SetWindowTitle(h.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(h.cfg.Window.Fullscreen)

	h.loadSession()
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	h.saveSession()
	return nil
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	dt := h.tick()

	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	h.touchBuf = h.touchBuf[:0]
	for _, id := range h.touchIDs {
		x, y := ebiten.TouchPosition(id)
		h.touchBuf = append(h.touchBuf, input.Touch{
			ID:  input.TouchID(id),
			Pos: geometry.Offset{X: float64(x), Y: float64(y)},
		})
	}

	var pos geometry.Offset
	var down bool
	if len(h.touchBuf) > 0 {
		pos = h.touches.Pos(h.touchBuf)
		down = true
	} else {
		h.touches.Reset()
		mx, my := ebiten.CursorPosition()
		pos = geometry.Offset{X: float64(mx), Y: float64(my)}
		down = pointerButtons()[input.ButtonPrimary]
	}

	mods := input.Modifiers{
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Meta:  ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
	h.typed = h.collectTypedText(mods)

	wx, wy := ebiten.Wheel()
	line := h.cfg.Scroll.LineHeight

	root := h.ctx.BeginFrame(ui.Frame{
		DT:          dt,
		ScreenRect:  geometry.RectFromLTWH(0, 0, float64(h.width), float64(h.height)),
		PointerPos:  &pos,
		PointerDown: down,
		ScrollDelta: geometry.Offset{X: wx * line, Y: wy * line},
		Modifiers:   mods,
	})
	h.app(root)
	h.list = h.ctx.EndFrame()
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.list == nil {
		return
	}
	h.list.Replay(newRasterCanvas(screen))
}

// Layout implements ebiten.Game.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.width, h.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// pointerButtons reads the held mouse buttons and maps them from host
// indices to canonical buttons.
func pointerButtons() (held [5]bool) {
	for idx := range held {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButton(idx)) {
			continue
		}
		if button, ok := input.ButtonFromHost(idx); ok {
			held[button] = true
		}
	}
	return held
}

// tick measures the elapsed time since the previous Update. The first
// tick and long stalls fall back to the nominal tick duration so
// kinetic scrolling never sees a huge dt after the window was hidden.
func (h *Host) tick() float64 {
	now := animation.Now()
	nominal := 1.0 / float64(ebiten.TPS())
	dt := nominal
	if !h.lastTick.IsZero() {
		measured := now.Sub(h.lastTick).Seconds()
		if measured > 0 && measured < 4*nominal {
			dt = measured
		}
	}
	h.lastTick = now
	return dt
}

func (h *Host) collectTypedText(mods input.Modifiers) string {
	var b strings.Builder
	h.chars = ebiten.AppendInputChars(h.chars[:0])
	for _, r := range h.chars {
		b.WriteRune(r)
	}
	// Some keys never produce character input but still mean text.
	// Skip them while a command chord is held.
	if b.Len() == 0 && !mods.Command() {
		h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
		for _, k := range h.keys {
			if text, ok := input.TextFromKey(k.String()); ok {
				b.WriteString(text)
			}
		}
	}
	return b.String()
}

func (h *Host) loadSession() {
	path := h.cfg.Session.Path
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("session: %v", err)
		}
		return
	}
	defer f.Close()
	if err := widgets.LoadSession(h.ctx.Memory(), f); err != nil {
		log.Printf("session: %v", err)
	}
}

func (h *Host) saveSession() {
	path := h.cfg.Session.Path
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("session: %v", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Printf("session: %v", err)
		return
	}
	defer f.Close()
	if err := widgets.SaveSession(h.ctx.Memory(), f); err != nil {
		log.Printf("session: %v", err)
	}
}
