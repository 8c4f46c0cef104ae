package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Niki1320/supply-chain/cmd/tui/internal/view"
	"github.com/Niki1320/supply-chain/internal/catalog"
	"github.com/Niki1320/supply-chain/internal/config"
	"github.com/Niki1320/supply-chain/internal/ledger"
	"github.com/Niki1320/supply-chain/internal/payment"
	"github.com/Niki1320/supply-chain/internal/register"
	"github.com/Niki1320/supply-chain/internal/transition"
)

type model struct {
	catalogService    *catalog.Service
	transitionService *transition.Service
	registerService   *register.Service

	// Catalog state is shared by every view so a transition submitted in
	// one shows up when the user switches back to tracking.
	catalogState *catalog.State

	tokenDecimals int32

	currentView View

	trackView      view.TrackModel
	transitionView view.TransitionModel
	registerView   view.RegisterModel
}

type View int

const (
	ViewMenu       View = 0
	ViewTrack      View = 1
	ViewTransition View = 2
	ViewRegister   View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	gateway, err := ledger.Dial(context.Background(), ledger.Options{
		Endpoint:  cfg.Ledger.RPCURL,
		Contracts: cfg.Ledger.Contracts,
		From:      cfg.Ledger.From,
		Timeout:   cfg.Ledger.Timeout,
	})
	if err != nil {
		slog.Error("failed to connect to ledger", "error", err)
		os.Exit(1)
	}

	calc := payment.NewCalculator(cfg.Token.Decimals)

	catalogSvc := catalog.NewService(gateway)
	transitionSvc := transition.NewService(gateway, calc, cfg.Gas.FallbackLimit)
	registerSvc := register.NewService(gateway, calc, cfg.Gas.FallbackLimit)

	state := catalog.NewState()

	return model{
		catalogService:    catalogSvc,
		transitionService: transitionSvc,
		registerService:   registerSvc,
		catalogState:      state,
		tokenDecimals:     cfg.Token.Decimals,
		currentView:       ViewMenu,
		trackView:         view.NewTrackModel(catalogSvc, state, cfg.Token.Decimals),
		transitionView:    view.NewTransitionModel(transitionSvc, catalogSvc, state),
		registerView:      view.NewRegisterModel(registerSvc, catalogSvc, state),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewTrack
				m.trackView = view.NewTrackModel(m.catalogService, m.catalogState, m.tokenDecimals)

				return m, m.trackView.Init()
			case "2":
				m.currentView = ViewTransition
				m.transitionView = view.NewTransitionModel(m.transitionService, m.catalogService, m.catalogState)

				return m, m.transitionView.Init()
			case "3":
				m.currentView = ViewRegister
				m.registerView = view.NewRegisterModel(m.registerService, m.catalogService, m.catalogState)

				return m, m.registerView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewTrack:
		var newModel tea.Model
		newModel, cmd = m.trackView.Update(msg)
		m.trackView = newModel.(view.TrackModel)
	case ViewTransition:
		var newModel tea.Model
		newModel, cmd = m.transitionView.Update(msg)
		m.transitionView = newModel.(view.TransitionModel)
	case ViewRegister:
		var newModel tea.Model
		newModel, cmd = m.registerView.Update(msg)
		m.registerView = newModel.(view.RegisterModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Supply Chain TUI\n\n" +
				"1. Track Products\n" +
				"2. Move Product\n" +
				"3. Register Product\n\n" +
				"q. Quit",
		)
	case ViewTrack:
		return m.trackView.View()
	case ViewTransition:
		return m.transitionView.View()
	case ViewRegister:
		return m.registerView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
