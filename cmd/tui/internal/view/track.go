package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Niki1320/supply-chain/internal/catalog"
)

type TrackModel struct {
	CommonModel
	loader   *catalog.Service
	state    *catalog.State
	decimals int32

	table   table.Model
	spinner spinner.Model
}

func NewTrackModel(loader *catalog.Service, state *catalog.State, decimals int32) TrackModel {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 28},
		{Title: "Destination", Width: 16},
		{Title: "Price", Width: 12},
		{Title: "Qty", Width: 6},
		{Title: "Stage", Width: 20},
		{Title: "Expires", Width: 22},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := TrackModel{
		loader:   loader,
		state:    state,
		decimals: decimals,
		table:    t,
		spinner:  sp,
	}
	m.refreshTable()

	return m
}

func (m TrackModel) Title() string { return "Track Products" }

func (m TrackModel) ShortHelp() string {
	return "Esc: back | r: refresh"
}

func (m TrackModel) Init() tea.Cmd {
	m.state.BeginLoad()

	return tea.Batch(m.spinner.Tick, loadCatalogCmd(m.loader))
}

func (m TrackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.state.FinishLoad(msg.snap, msg.err)
		m.refreshTable()

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.state.BeginLoad()
			return m, tea.Batch(m.spinner.Tick, loadCatalogCmd(m.loader))
		}

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	var cmd tea.Cmd

	if m.state.Loading {
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TrackModel) View() string {
	if m.state.Loading {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("%s Loading products from the ledger...", m.spinner.View()))
	}

	// A failed load blocks the catalog; the user has to fix the cause or
	// retry, there is nothing consistent to render.
	if m.state.Err != nil {
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Error: %v\n\nr: retry | Esc: back", m.state.Err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if notice := m.state.Notice; notice.Text != "" {
		style := lipgloss.NewStyle().Faint(true)
		if notice.Err {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		}

		content = style.Render(notice.Text) + "\n" + content
	}

	help := lipgloss.NewStyle().Faint(true).PaddingTop(1).Render(m.ShortHelp())

	return lipgloss.NewStyle().Padding(1).Render(content + "\n" + help)
}

func (m *TrackModel) refreshTable() {
	snap := m.state.Snapshot
	if snap == nil {
		m.table.SetRows(nil)
		return
	}

	now := time.Now()

	rows := make([]table.Row, 0, snap.Len())
	for _, e := range snap.Items {
		expires := FormatDate(e.Product.ExpiresTime())
		if e.Product.Expired(now) {
			expires += " (expired)"
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", e.Product.ID),
			e.Product.Name,
			e.Product.Destination,
			FormatAmount(e.Product.Price, m.decimals),
			fmt.Sprintf("%d", e.Product.Quantity),
			string(e.Stage),
			expires,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type catalogLoadedMsg struct {
	snap *catalog.Snapshot
	err  error
}

func loadCatalogCmd(loader *catalog.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := LedgerCtx()
		defer cancel()

		snap, err := loader.LoadAll(ctx)

		return catalogLoadedMsg{snap: snap, err: err}
	}
}
