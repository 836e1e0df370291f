package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/avypatel/finsight/internal/cli"
	"github.com/avypatel/finsight/internal/model"
)

// Tab identifies one of the three views.
type Tab int

// Views, in tab order.
const (
	TabDashboard Tab = iota
	TabPassbook
	TabBudget
)

var tabNames = []string{"Dashboard", "Passbook", "Budget & Goals"}

// Asker answers one affordability query. *advisor.Service implements it.
type Asker interface {
	Ask(ctx context.Context, query string, userCtx model.UserContext) string
}

// adviceMsg delivers the advisor's answer back to the update loop.
type adviceMsg struct {
	text string
}

// Model is the root bubbletea model.
type Model struct {
	asker        Asker
	userCtx      model.UserContext
	transactions []model.Transaction
	theme        Theme
	input        textinput.Model
	goalBar      progress.Model
	advice       string
	tab          Tab
	width        int
	thinking     bool
	quitting     bool
}

// New creates the dashboard model.
func New(asker Asker, userCtx model.UserContext, transactions []model.Transaction) Model {
	input := textinput.New()
	input.Placeholder = "Can I afford a 50k bike?"
	input.CharLimit = 200
	input.Width = 48

	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	bar.Width = 40

	return Model{
		asker:        asker,
		userCtx:      userCtx,
		transactions: transactions,
		theme:        DarkTheme(),
		input:        input,
		goalBar:      bar,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case adviceMsg:
		// Re-enable the input on every exit path of the advisor call.
		m.thinking = false
		m.advice = msg.text
		m.input.Focus()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.input.Focused() || msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
		case "tab":
			m.tab = (m.tab + 1) % Tab(len(tabNames))
			return m, nil
		case "shift+tab":
			m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil
		case "ctrl+t":
			if m.theme.Name == "dark" {
				m.theme = LightTheme()
			} else {
				m.theme = DarkTheme()
			}
			return m, nil
		case "enter":
			if m.tab == TabDashboard && !m.thinking {
				query := strings.TrimSpace(m.input.Value())
				if query == "" {
					return m, nil
				}
				// One request in flight at a time; the input stays
				// disabled until the answer arrives.
				m.thinking = true
				m.advice = ""
				m.input.Blur()
				return m, m.askCmd(query)
			}
		case "i":
			if m.tab == TabDashboard && !m.input.Focused() && !m.thinking {
				m.input.Focus()
				return m, textinput.Blink
			}
		case "esc":
			m.input.Blur()
			return m, nil
		}
	}

	if m.tab == TabDashboard && m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) askCmd(query string) tea.Cmd {
	asker := m.asker
	userCtx := m.userCtx
	return func() tea.Msg {
		return adviceMsg{text: asker.Ask(context.Background(), query, userCtx)}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.tab {
	case TabPassbook:
		body = cli.RenderPassbook(m.transactions)
	case TabBudget:
		body = m.viewBudget()
	default:
		body = m.viewDashboard()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		m.theme.Box.Render(body),
		lipgloss.NewStyle().Foreground(m.theme.Subtle).
			Render("tab: switch view • i: ask advisor • ctrl+t: theme • q: quit"),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, m.theme.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.theme.TabIdle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	text := lipgloss.NewStyle().Foreground(m.theme.Text)
	subtle := lipgloss.NewStyle().Foreground(m.theme.Subtle)

	sections := []string{
		text.Bold(true).Render("Total Balance  " + model.FormatINR(m.userCtx.TotalBalance)),
		lipgloss.NewStyle().Foreground(m.theme.Income).Render("Income  "+model.FormatINR(m.userCtx.MonthlyIncome)) +
			"   " +
			lipgloss.NewStyle().Foreground(m.theme.Expense).Render("Spend  "+model.FormatINR(m.userCtx.MonthlySpending)),
		"",
		cli.RenderCashFlowChart(m.userCtx.MonthlyStats),
		"",
		subtle.Render("AI Advisor"),
		m.input.View(),
	}

	if m.thinking {
		sections = append(sections, subtle.Render("Thinking..."))
	} else if m.advice != "" {
		sections = append(sections, "", text.Render(m.advice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewBudget() string {
	goal := m.userCtx.SavingsGoal
	if goal.Item == "" {
		return lipgloss.NewStyle().Foreground(m.theme.Subtle).
			Render("No savings goal set. Try 'finsight goal set'.")
	}

	ratio := 0.0
	pct := decimal.Zero
	if goal.Target.Sign() > 0 {
		frac := goal.Current.Div(goal.Target)
		pct = frac.Mul(decimal.NewFromInt(100)).Round(0)
		r, _ := frac.Float64()
		if r > 1 {
			r = 1
		}
		ratio = r
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(m.theme.Text).Render(goal.Item),
		fmt.Sprintf("%s of %s", model.FormatINR(goal.Current), model.FormatINR(goal.Target)),
		m.goalBar.ViewAs(ratio),
		lipgloss.NewStyle().Foreground(m.theme.Subtle).
			Render(fmt.Sprintf("%s%% funded", pct)),
	)
}
