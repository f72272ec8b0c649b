package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcscylla/portfolio-simulator/internal/domain"
	"github.com/mcscylla/portfolio-simulator/internal/output"
	"github.com/mcscylla/portfolio-simulator/internal/simulation"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var paramInfo = map[string]string{
	"investment":  "starting portfolio value",
	"mean_return": "expected annual return",
	"volatility":  "annual return standard deviation",
	"years":       "simulation horizon",
	"simulations": "number of trajectories",
	"inflation":   "annual inflation rate",
	"withdrawal":  "withdrawal rate",
}

var paramSteps = map[string]float64{
	"investment":  10000,
	"mean_return": 0.01,
	"volatility":  0.01,
	"years":       1,
	"simulations": 500,
	"inflation":   0.001,
	"withdrawal":  0.005,
}

type state int

const (
	stateForm state = iota
	stateRunning
	stateResults
)

type model struct {
	state state

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	dynamic bool
	seed    int64

	result *domain.SimulationResult
	chart  string
	err    error

	width  int
	height int
}

// NewApp builds the interactive parameter form, pre-filled from cfg.
func NewApp(cfg domain.SimulationConfig, seed int64) *model {
	return &model{
		state: stateForm,
		params: map[string]float64{
			"investment":  cfg.InitialInvestment,
			"mean_return": cfg.AnnualMeanReturn,
			"volatility":  cfg.AnnualVolatility,
			"years":       float64(cfg.Years),
			"simulations": float64(cfg.NumSimulations),
			"inflation":   cfg.InflationRate,
			"withdrawal":  cfg.WithdrawalRate,
		},
		paramNames: []string{
			"investment", "mean_return", "volatility", "years",
			"simulations", "inflation", "withdrawal",
		},
		dynamic: cfg.Policy() == domain.WithdrawalDynamic,
		seed:    seed,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type resultMsg struct {
	result *domain.SimulationResult
	chart  string
	err    error
}

// config assembles a SimulationConfig from the current form values.
func (m model) config() domain.SimulationConfig {
	policy := domain.WithdrawalConstant
	if m.dynamic {
		policy = domain.WithdrawalDynamic
	}
	return domain.SimulationConfig{
		InitialInvestment: m.params["investment"],
		AnnualMeanReturn:  m.params["mean_return"],
		AnnualVolatility:  m.params["volatility"],
		Years:             int(m.params["years"]),
		NumSimulations:    int(m.params["simulations"]),
		InflationRate:     m.params["inflation"],
		WithdrawalRate:    m.params["withdrawal"],
		WithdrawalPolicy:  policy,
	}
}

func (m model) runSimulation() tea.Cmd {
	cfg := m.config()
	seed := m.seed
	return func() tea.Msg {
		sim := simulation.NewSimulator(seed)
		result, _, err := sim.RunWithPaths(cfg)
		if err != nil {
			return resultMsg{err: err}
		}
		chart := output.NewTerminalChart().Render(result)
		return resultMsg{result: result, chart: chart}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case resultMsg:
		m.result = msg.result
		m.chart = msg.chart
		m.err = msg.err
		m.state = stateResults
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateForm:
		return m.formKey(msg)
	case stateRunning:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case stateResults:
		return m.resultsKey(msg)
	}
	return m, nil
}

func (m model) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing = false
			m.editBuf = ""
		case "esc", "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter":
		m.editing = true
		m.editBuf = trimFloat(m.params[m.paramNames[m.paramCursor]])
	case "left", "h":
		name := m.paramNames[m.paramCursor]
		m.params[name] -= paramSteps[name]
		if m.params[name] < 0 {
			m.params[name] = 0
		}
	case "right", "l":
		name := m.paramNames[m.paramCursor]
		m.params[name] += paramSteps[name]
	case "p":
		m.dynamic = !m.dynamic
	case "s":
		if err := m.config().Validate(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.state = stateRunning
		return m, m.runSimulation()
	}
	return m, nil
}

func (m model) resultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "escape", "e":
		m.state = stateForm
		m.result = nil
		m.chart = ""
		m.err = nil
		return m, tea.ClearScreen
	case "r":
		m.state = stateRunning
		return m, m.runSimulation()
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateForm:
		return m.viewForm()
	case stateRunning:
		return m.viewRunning()
	case stateResults:
		return m.viewResults()
	}
	return ""
}

func (m model) viewForm() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + cyan.Render("portfolio simulator") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%12s", trimFloat(m.params[name]))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%12s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-13s", name)) + magenta.Render(val) + "  " + dim.Render(paramInfo[name]) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-13s", name)) + dim.Render(val) + "  " + dimmer.Render(paramInfo[name]) + "\n")
		}
	}

	policy := "constant"
	if m.dynamic {
		policy = "dynamic"
	}
	b.WriteString("\n")
	b.WriteString("        " + dim.Render(fmt.Sprintf("%-13s", "policy")) + yellow.Render(fmt.Sprintf("%12s", policy)) + "  " + dimmer.Render("p to toggle") + "\n")

	if m.err != nil {
		b.WriteString("\n      " + red.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  p policy  s simulate  q quit") + "\n")

	return b.String()
}

func (m model) viewRunning() string {
	cfg := m.config()
	return fmt.Sprintf("\n   %s running %d trajectories over %d years...\n",
		green.Render("●"), cfg.NumSimulations, cfg.Years)
}

func (m model) viewResults() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString("\n      " + red.Render(m.err.Error()) + "\n")
		b.WriteString(dim.Render("\n      e edit  q quit") + "\n")
		return b.String()
	}

	r := m.result
	cfg := r.Config

	b.WriteString("\n   " + cyan.Render("simulation results") + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 40)) + "\n\n")
	b.WriteString("   " + dim.Render("mean final value        ") + white.Render(output.FormatCurrency(r.MeanFinalValue)) + "\n")
	b.WriteString("   " + dim.Render("inflation-adjusted mean ") + white.Render(output.FormatCurrency(r.InflationAdjustedMean)) + "\n")
	b.WriteString("   " + dim.Render("std of final values     ") + white.Render(output.FormatCurrency(r.StdFinalValue)) + "\n")

	depStyle := green
	if r.DepletionProbability > 25 {
		depStyle = red
	} else if r.DepletionProbability > 5 {
		depStyle = yellow
	}
	b.WriteString("   " + dim.Render("depletion probability   ") + depStyle.Render(output.FormatPercentagePoints(r.DepletionProbability)) + "\n")
	b.WriteString("   " + dim.Render(fmt.Sprintf("horizon %d years, %d trajectories", cfg.Years, cfg.NumSimulations)) + "\n\n")

	if m.chart != "" {
		b.WriteString(m.chart)
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("   e edit  r rerun  q quit") + "\n")

	return b.String()
}

// trimFloat renders a float without trailing zero noise.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// Run starts the interactive form.
func Run(cfg domain.SimulationConfig, seed int64) error {
	p := tea.NewProgram(NewApp(cfg, seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
