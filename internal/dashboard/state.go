// Package dashboard is the interactive dashboard's state machine and the
// per-frame view models it renders. It has no dependency on a terminal
// library; internal/tui drives it.
package dashboard

// Screen is the active dashboard screen.
type Screen int

const (
	MainMenu Screen = iota
	Transactions
	Budgets
	Reports
)

func (s Screen) String() string {
	switch s {
	case Transactions:
		return "Transactions"
	case Budgets:
		return "Budgets"
	case Reports:
		return "Reports"
	default:
		return "Main Menu"
	}
}

// Key is a decoded input event.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyMenu
	KeyQuit
)

// MenuEntries are the main menu items in cursor order.
var MenuEntries = []string{"Transactions", "Budgets", "Reports", "Quit"}

// menuTargets maps a menu cursor to the screen Enter opens. The last entry quits.
var menuTargets = []Screen{Transactions, Budgets, Reports}

// State is the whole of the dashboard's interaction state.
type State struct {
	Screen Screen
	// Cursor is the main menu selection; other screens leave it untouched.
	Cursor int
	// Scroll is the first visible row of the Transactions screen.
	Scroll int
	Quit   bool
}

// New returns the initial state: main menu, cursor on the first entry.
func New() State {
	return State{Screen: MainMenu}
}

// Apply returns the state after k. rows is the number of scrollable rows on
// the Transactions screen and bounds Scroll. Unknown keys change nothing.
func (s State) Apply(k Key, rows int) State {
	if s.Quit {
		return s
	}
	switch k {
	case KeyQuit:
		s.Quit = true
	case KeyMenu:
		s.Screen = MainMenu
	case KeyUp:
		switch s.Screen {
		case MainMenu:
			if s.Cursor > 0 {
				s.Cursor--
			}
		case Transactions:
			if s.Scroll > 0 {
				s.Scroll--
			}
		}
	case KeyDown:
		switch s.Screen {
		case MainMenu:
			if s.Cursor < len(MenuEntries)-1 {
				s.Cursor++
			}
		case Transactions:
			if s.Scroll < rows-1 {
				s.Scroll++
			}
		}
	case KeyEnter:
		if s.Screen != MainMenu {
			break
		}
		if s.Cursor < len(menuTargets) {
			s.Screen = menuTargets[s.Cursor]
			s.Scroll = 0
		} else {
			s.Quit = true
		}
	}
	return s
}
