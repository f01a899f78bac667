package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/fintrack/internal/dashboard"
	"github.com/jask/fintrack/internal/database/repository"
)

var march = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func str(s string) *string { return &s }

func sampleData() dashboard.Data {
	return dashboard.Data{
		Transactions: []repository.Transaction{
			{ID: 1, Amount: decimal.NewFromInt(-50), Category: str("Food"), Description: str("Lidl"), Date: "03/01/2024"},
			{ID: 2, Amount: decimal.NewFromInt(-100), Category: str("Food"), Description: str("Kaufland"), Date: "03/02/2024"},
			{ID: 3, Amount: decimal.NewFromInt(-10), Category: str("Transport"), Description: str("Uber"), Date: "03/03/2024"},
			{ID: 4, Amount: decimal.NewFromInt(2000), Category: str("IncomingTransfer"), Description: str("Salary"), Date: "03/04/2024"},
		},
		Budgets: []repository.Budget{
			{Category: "Food", Limit: decimal.NewFromInt(100)},
			{Category: "Transport", Limit: decimal.NewFromInt(50)},
		},
	}
}

func newTestModel(data dashboard.Data) *Model {
	return New(data, Options{
		Currency: "lei",
		Clock:    func() time.Time { return march },
		Styles:   PlainStyles(),
	})
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyMenu  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func TestMainMenuView(t *testing.T) {
	m := newTestModel(sampleData())
	view := m.View()
	require.Contains(t, view, "Main Menu")
	require.Contains(t, view, "> Transactions")
	require.Contains(t, view, "  Budgets")

	press(m, keyDown)
	require.Contains(t, m.View(), "> Budgets")
}

func TestNavigateToReports(t *testing.T) {
	m := newTestModel(sampleData())
	press(m, keyDown, keyDown, keyEnter)
	require.Equal(t, dashboard.Reports, m.State().Screen)

	view := m.View()
	require.Contains(t, view, "March (03/2024)")
	require.Contains(t, view, "Food  "+strings.Repeat("█", 30))
	require.Contains(t, view, "150.00 lei")
	require.Contains(t, view, "Transport  "+strings.Repeat("█", 2)+" ")
	require.NotContains(t, view, "IncomingTransfer")
}

func TestReportsPlaceholderWhenMonthEmpty(t *testing.T) {
	m := New(sampleData(), Options{
		Currency: "lei",
		Clock:    func() time.Time { return march.AddDate(0, 2, 0) },
		Styles:   PlainStyles(),
	})
	press(m, keyDown, keyDown, keyEnter)
	require.Contains(t, m.View(), "No expenses found for the current month.")
}

func TestBudgetsView(t *testing.T) {
	m := newTestModel(sampleData())
	press(m, keyDown, keyEnter)
	view := m.View()
	require.Contains(t, view, "Food: limit 100.00 lei | spent 150.00 lei | remaining -50.00 lei (150.0%)")
	require.Contains(t, view, "Transport: limit 50.00 lei | spent 10.00 lei | remaining 40.00 lei (20.0%)")
}

func TestTransactionsViewScrolls(t *testing.T) {
	m := newTestModel(sampleData())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: chrome + 2})
	press(m, keyEnter)
	view := m.View()
	require.Contains(t, view, "1 | 03/01/2024 | -50.00 lei | Lidl")
	require.Contains(t, view, "2 | 03/02/2024")
	require.NotContains(t, view, "3 | 03/03/2024")

	press(m, keyDown, keyDown)
	view = m.View()
	require.NotContains(t, view, "1 | 03/01/2024")
	require.Contains(t, view, "3 | 03/03/2024")
	require.Contains(t, view, "4 | 03/04/2024 | 2000.00 lei | Salary")
}

func TestNarrowWindowTruncatesRows(t *testing.T) {
	m := newTestModel(sampleData())
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 40})
	press(m, keyEnter)
	for _, line := range strings.Split(m.View(), "\n") {
		if strings.Contains(line, "|") {
			require.True(t, strings.HasSuffix(line, "…"), line)
		}
	}
}

func TestMenuKeyPreservesCursor(t *testing.T) {
	m := newTestModel(sampleData())
	press(m, keyDown, keyDown, keyEnter, keyUp, keyMenu)
	require.Equal(t, dashboard.MainMenu, m.State().Screen)
	require.Equal(t, 2, m.State().Cursor)
	require.Contains(t, m.View(), "> Reports")
}

func TestQuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(sampleData())
	cmd := press(m, keyQuit)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	m = newTestModel(sampleData())
	cmd = press(m, keyDown, keyDown, keyDown, keyEnter)
	require.True(t, m.State().Quit)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTickRefreshesClock(t *testing.T) {
	now := march
	m := New(sampleData(), Options{Clock: func() time.Time { return now }, Styles: PlainStyles()})
	press(m, keyDown, keyDown, keyEnter)
	require.Contains(t, m.View(), "March (03/2024)")

	now = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	_, cmd := m.Update(tickMsg(now))
	require.NotNil(t, cmd)
	require.Contains(t, m.View(), "April (04/2024)")
	require.Contains(t, m.View(), "No expenses found for the current month.")
}

type stubLoader[T any] struct {
	rows []T
	err  error
}

func (s stubLoader[T]) List(context.Context) ([]T, error) { return s.rows, s.err }

func TestLoadDataDegradesToEmpty(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	data := LoadData(context.Background(),
		stubLoader[repository.Transaction]{err: errors.New("no such table")},
		stubLoader[repository.Budget]{rows: sampleData().Budgets},
		zap.New(core))

	require.Empty(t, data.Transactions)
	require.Len(t, data.Budgets, 2)
	require.Equal(t, 1, logs.FilterMessage("failed to load transactions").Len())

	m := newTestModel(data)
	press(m, keyEnter)
	require.Contains(t, m.View(), "No transactions loaded.")
}

func TestRunQuitsOnQ(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), sampleData(), Options{Styles: PlainStyles()},
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
		tea.WithoutSignalHandler())
	require.NoError(t, err)
}
