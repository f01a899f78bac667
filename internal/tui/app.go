package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/fintrack/internal/apperrors"
	"github.com/jask/fintrack/internal/dashboard"
	"github.com/jask/fintrack/internal/database/repository"
)

// chrome is the number of lines taken by title, panel border and footer.
const chrome = 6

// Options configures the dashboard model.
type Options struct {
	Currency string
	// Tick bounds how long the loop waits for input before re-rendering.
	Tick   time.Duration
	Clock  func() time.Time
	Styles Styles
	Keys   KeyMap
}

// Model adapts the dashboard state machine to bubbletea.
type Model struct {
	state    dashboard.State
	data     dashboard.Data
	keys     KeyMap
	help     help.Model
	styles   Styles
	currency string
	tick     time.Duration
	clock    func() time.Time
	now      time.Time
	width    int
	height   int
}

type tickMsg time.Time

func New(data dashboard.Data, opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Tick <= 0 {
		opts.Tick = 50 * time.Millisecond
	}
	if opts.Keys.Quit.Keys() == nil {
		opts.Keys = DefaultKeyMap()
	}
	return &Model{
		state:    dashboard.New(),
		data:     data,
		keys:     opts.Keys,
		help:     help.New(),
		styles:   opts.Styles,
		currency: opts.Currency,
		tick:     opts.Tick,
		clock:    opts.Clock,
		now:      opts.Clock(),
	}
}

// State returns the current dashboard state.
func (m *Model) State() dashboard.State { return m.state }

func (m *Model) Init() tea.Cmd {
	return m.waitTick()
}

func (m *Model) waitTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.state = m.state.Apply(m.keys.Decode(msg), len(m.data.Transactions))
		if m.state.Quit {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tickMsg:
		m.now = m.clock()
		return m, m.waitTick()
	}
	return m, nil
}

func (m *Model) View() string {
	var title, body string
	switch m.state.Screen {
	case dashboard.Transactions:
		title, body = "Transactions", m.renderTransactions()
	case dashboard.Budgets:
		title, body = "Budgets (limit + spent)", m.renderBudgets()
	case dashboard.Reports:
		title, body = "Reports by category - "+dashboard.ReportTitle(m.now), m.renderReports()
	default:
		title, body = "Main Menu", m.renderMainMenu()
	}
	return fmt.Sprintf("%s\n%s\n%s",
		m.styles.Title.Render(title),
		m.styles.Panel.Render(body),
		m.help.View(m.keys))
}

func (m *Model) renderMainMenu() string {
	lines := make([]string, 0, len(dashboard.MenuEntries))
	for i, item := range dashboard.MenuEntries {
		if i == m.state.Cursor {
			lines = append(lines, m.styles.MenuActive.Render("> "+item))
			continue
		}
		lines = append(lines, m.styles.MenuItem.Render("  "+item))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTransactions() string {
	txs := m.data.Transactions
	if len(txs) == 0 {
		return m.styles.Muted.Render("No transactions loaded.")
	}
	start := min(m.state.Scroll, len(txs)-1)
	end := len(txs)
	if m.height > chrome {
		end = min(end, start+m.height-chrome)
	}
	lines := make([]string, 0, end-start)
	for _, t := range txs[start:end] {
		lines = append(lines, m.styles.Row.Render(m.clip(dashboard.TransactionLine(t, m.currency))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBudgets() string {
	rows := dashboard.BudgetRows(m.data.Budgets, m.data.Transactions)
	if len(rows) == 0 {
		return m.styles.Muted.Render("No budgets configured.")
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		style := m.styles.Row
		if r.Over {
			style = m.styles.OverBudget
		}
		lines = append(lines, style.Render(m.clip(r.Line(m.currency))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderReports() string {
	bars := dashboard.ReportBars(m.data.Transactions, m.now)
	if len(bars) == 0 {
		return m.styles.Muted.Render("No expenses found for the current month.")
	}
	lines := make([]string, 0, len(bars)+1)
	for _, b := range bars {
		lines = append(lines, m.styles.Bar.Render(m.clip(b.Line(m.currency))))
	}
	lines = append(lines, m.styles.Muted.Render(strings.Repeat("-", 40)))
	return strings.Join(lines, "\n")
}

// clip truncates a line to the panel's inner width once the window size is known.
func (m *Model) clip(line string) string {
	if m.width <= 4 {
		return line
	}
	return ansi.Truncate(line, m.width-4, "…")
}

// TransactionLoader loads every transaction in ascending id order.
type TransactionLoader interface {
	List(ctx context.Context) ([]repository.Transaction, error)
}

// BudgetLoader loads every budget ordered by category.
type BudgetLoader interface {
	List(ctx context.Context) ([]repository.Budget, error)
}

// LoadData reads the dashboard's data once. A failed load is logged and
// replaced by an empty collection so the dashboard still opens.
func LoadData(ctx context.Context, txs TransactionLoader, budgets BudgetLoader, log *zap.Logger) dashboard.Data {
	if log == nil {
		log = zap.NewNop()
	}
	var data dashboard.Data
	list, err := txs.List(ctx)
	if err != nil {
		log.Warn("failed to load transactions", zap.Error(err))
	} else {
		data.Transactions = list
	}
	bs, err := budgets.List(ctx)
	if err != nil {
		log.Warn("failed to load budgets", zap.Error(err))
	} else {
		data.Budgets = bs
	}
	return data
}

// Run blocks until the user quits the dashboard. Failing to drive the
// terminal is reported as ErrTerminalInit.
func Run(ctx context.Context, data dashboard.Data, opts Options, progOpts ...tea.ProgramOption) error {
	all := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(New(data, opts), all...)
	if _, err := p.Run(); err != nil {
		return apperrors.Wrap(apperrors.ErrTerminalInit, err)
	}
	return nil
}
