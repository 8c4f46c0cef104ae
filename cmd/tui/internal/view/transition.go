package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Niki1320/supply-chain/internal/catalog"
	"github.com/Niki1320/supply-chain/internal/transition"
)

type transitionState int

const (
	transitionStateForm transitionState = iota
	transitionStateSubmitting
)

type TransitionModel struct {
	CommonModel
	transitions *transition.Service
	loader      *catalog.Service
	state       *catalog.State

	mode    transitionState
	form    *huh.Form
	spinner spinner.Model

	// Form bindings
	productID string
	operation string
}

func NewTransitionModel(transitions *transition.Service, loader *catalog.Service, state *catalog.State) TransitionModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := TransitionModel{
		transitions: transitions,
		loader:      loader,
		state:       state,
		spinner:     sp,
	}
	m.form = m.newForm()

	return m
}

func (m *TransitionModel) newForm() *huh.Form {
	m.productID = ""
	m.operation = string(transition.OpManufacture)

	ops := make([]huh.Option[string], 0, len(transition.Ops()))
	for _, op := range transition.Ops() {
		ops = append(ops, huh.NewOption(string(op), string(op)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("product_id").
				Title("Product ID").
				Value(&m.productID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("product id cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("operation").
				Title("Operation").
				Options(ops...).
				Value(&m.operation),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m TransitionModel) Title() string { return "Move Product" }

func (m TransitionModel) ShortHelp() string {
	if m.mode == transitionStateSubmitting {
		return "Waiting for the ledger..."
	}

	return "Navigate form | Enter: submit | Esc: back"
}

func (m TransitionModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m TransitionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transitionDoneMsg:
		m.mode = transitionStateForm
		m.form = m.newForm()

		if msg.err != nil {
			// The failed attempt only produces a notice; the loaded
			// catalog stays as it was.
			m.state.TransitionFailed(msg.err.Error())

			return m, m.form.Init()
		}

		m.state.TransitionAccepted(fmt.Sprintf("%s product %d submitted: %s",
			msg.receipt.Operation, msg.receipt.ProductID, msg.receipt.TxHash))

		// Reload so the new stage shows once the user returns to tracking.
		m.state.BeginLoad()

		return m, tea.Batch(m.form.Init(), loadCatalogCmd(m.loader))

	case catalogLoadedMsg:
		m.state.FinishLoad(msg.snap, msg.err)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.mode == transitionStateForm {
			return m, Back
		}
	}

	if m.mode == transitionStateSubmitting {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.mode = transitionStateSubmitting

	req := transition.Request{
		ProductID: m.form.GetString("product_id"),
		Operation: transition.Op(m.form.GetString("operation")),
	}

	return m, tea.Batch(m.spinner.Tick, m.submitCmd(req))
}

func (m TransitionModel) View() string {
	if m.mode == transitionStateSubmitting {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"%s Submitting transition to the ledger...\n\nYour wallet may ask for confirmation.",
			m.spinner.View()))
	}

	var b strings.Builder

	if notice := m.state.Notice; notice.Text != "" {
		style := lipgloss.NewStyle().Faint(true)
		if notice.Err {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		}

		b.WriteString(style.Render(notice.Text))
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()))

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}

func (m TransitionModel) submitCmd(req transition.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := LedgerCtx()
		defer cancel()

		receipt, err := m.transitions.Submit(ctx, req)

		return transitionDoneMsg{receipt: receipt, err: err}
	}
}

// Messages

type transitionDoneMsg struct {
	receipt *transition.Receipt
	err     error
}
