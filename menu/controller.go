// Package menu holds the selection state of a command menu: how many items
// are on screen, which one is highlighted and whose turn is displayed.
//
// The package has no engine dependency. A host owns a Controller and routes
// input and lifecycle events into it; drawing is delegated to a Renderer.
package menu

// NoSelection is reported by Selected when no item can be highlighted.
const NoSelection = -1

// State of the controller's menu.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Boundary decides what happens when the selection moves past either end.
type Boundary int

const (
	Wrap  Boundary = iota // past the last item selects the first and vice versa
	Clamp                 // selection stops at the first/last item
)

// Item is an entry of a menu. The controller only forwards items to the
// renderer; it keeps the count, never the items themselves.
type Item struct {
	Label  string
	Action string
}

// Renderer is notified of every visible change.
type Renderer interface {
	ShowItems(items []Item)
	AnimateSelection(from, to int)
	ShowTurn(name string)
	// HideItems is called when an open menu closes. Any highlight animation
	// still running must stop.
	HideItems()
}

type nopRenderer struct{}

func (nopRenderer) ShowItems([]Item) {}
func (nopRenderer) AnimateSelection(int, int) {}
func (nopRenderer) ShowTurn(string) {}
func (nopRenderer) HideItems() {}

// Option configures a Controller.
type Option func(*Controller)

// WithBoundary sets the boundary policy. The default is Wrap.
func WithBoundary(b Boundary) Option {
	return func(c *Controller) {
		c.boundary = b
	}
}

// Controller tracks the open menu and the turn label. It is not safe for
// concurrent use; all calls are expected on the game's update loop.
type Controller struct {
	renderer Renderer
	boundary Boundary

	count    int
	selected int
	open     bool
	turn     string
}

// NewController returns a closed controller. A nil renderer is allowed.
func NewController(r Renderer, opts ...Option) *Controller {
	if r == nil {
		r = nopRenderer{}
	}
	c := &Controller{
		renderer: r,
		boundary: Wrap,
		selected: NoSelection,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InitMenu opens a menu with the given items, replacing any open one.
// The first item is selected; an empty menu has no selection.
func (c *Controller) InitMenu(items []Item) {
	c.count = len(items)
	c.selected = NoSelection
	if c.count > 0 {
		c.selected = 0
	}
	c.open = true
	c.renderer.ShowItems(items)
}

// CloseMenu closes the open menu. Closing a closed menu does nothing.
func (c *Controller) CloseMenu() {
	if !c.open {
		return
	}
	c.open = false
	c.count = 0
	c.selected = NoSelection
	c.renderer.HideItems()
}

// ConfigItem moves the selection by direction starting from index and
// animates the highlight from the previous selection to the new one.
// Calls made while the menu is closed or empty are ignored.
func (c *Controller) ConfigItem(index, direction int) {
	if !c.open || c.count == 0 {
		return
	}

	prev := c.selected
	next := c.target(mod(index, c.count), direction)
	c.selected = next
	if next != prev {
		c.renderer.AnimateSelection(prev, next)
	}
}

// Move shifts the selection relative to the current one.
func (c *Controller) Move(direction int) {
	c.ConfigItem(c.selected, direction)
}

func (c *Controller) target(start, direction int) int {
	if c.boundary == Clamp {
		// Compare before adding so huge directions cannot overflow
		if direction > c.count-1-start {
			return c.count - 1
		}
		if direction < -start {
			return 0
		}
		return start + direction
	}
	return mod(start+mod(direction, c.count), c.count)
}

// SetTurn sets the displayed turn label. An empty name means no one is acting.
func (c *Controller) SetTurn(name string) {
	c.turn = name
	c.renderer.ShowTurn(name)
}

// Count returns the number of items in the open menu.
func (c *Controller) Count() int { return c.count }

// Selected returns the highlighted index, or NoSelection.
func (c *Controller) Selected() int { return c.selected }

// IsOpen reports whether a menu is open.
func (c *Controller) IsOpen() bool { return c.open }

// Turn returns the current turn label.
func (c *Controller) Turn() string { return c.turn }

// State returns Open or Closed.
func (c *Controller) State() State {
	if c.open {
		return Open
	}
	return Closed
}

// mod is the Euclidean remainder, always in [0, n).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
