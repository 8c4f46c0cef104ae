package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Niki1320/supply-chain/internal/catalog"
	"github.com/Niki1320/supply-chain/internal/register"
)

type registerState int

const (
	registerStateForm registerState = iota
	registerStateSubmitting
)

type RegisterModel struct {
	CommonModel
	registrar *register.Service
	loader    *catalog.Service
	state     *catalog.State

	mode    registerState
	form    *huh.Form
	spinner spinner.Model

	// Form bindings
	name        string
	destination string
	price       string
	quantity    string
	expires     string
}

func NewRegisterModel(registrar *register.Service, loader *catalog.Service, state *catalog.State) RegisterModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := RegisterModel{
		registrar: registrar,
		loader:    loader,
		state:     state,
		spinner:   sp,
	}
	m.form = m.newForm()

	return m
}

func (m *RegisterModel) newForm() *huh.Form {
	m.name = ""
	m.destination = ""
	m.price = ""
	m.quantity = ""
	m.expires = ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.name).
				Validate(notBlank("name")),

			huh.NewInput().
				Key("destination").
				Title("Destination").
				Value(&m.destination).
				Validate(notBlank("destination")),

			huh.NewInput().
				Key("price").
				Title("Unit price (tokens)").
				Placeholder("1.5").
				Value(&m.price).
				Validate(notBlank("price")),

			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Value(&m.quantity).
				Validate(func(s string) error {
					n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
					if err != nil {
						return fmt.Errorf("quantity must be a whole number")
					}
					if n == 0 {
						return fmt.Errorf("quantity must be positive")
					}
					return nil
				}),

			huh.NewInput().
				Key("expires").
				Title("Expiry date").
				Placeholder("2030-01-31").
				Value(&m.expires).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("expiry must be YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func (m RegisterModel) Title() string { return "Register Product" }

func (m RegisterModel) ShortHelp() string {
	if m.mode == registerStateSubmitting {
		return "Waiting for the ledger..."
	}

	return "Navigate form | Enter: submit | Esc: back"
}

func (m RegisterModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.mode = registerStateForm
		m.form = m.newForm()

		if msg.err != nil {
			m.state.TransitionFailed(msg.err.Error())

			return m, m.form.Init()
		}

		m.state.TransitionAccepted(fmt.Sprintf("registered %q submitted: %s",
			msg.name, msg.receipt.TxHash))

		// The catalog gains a row once the transaction is mined;
		// reload now so tracking picks it up as soon as it lands.
		m.state.BeginLoad()

		return m, tea.Batch(m.form.Init(), loadCatalogCmd(m.loader))

	case catalogLoadedMsg:
		m.state.FinishLoad(msg.snap, msg.err)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.mode == registerStateForm {
			return m, Back
		}
	}

	if m.mode == registerStateSubmitting {
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

	quantity, err := strconv.ParseUint(strings.TrimSpace(m.form.GetString("quantity")), 10, 64)
	if err != nil {
		m.state.TransitionFailed(fmt.Sprintf("invalid quantity: %v", err))
		m.form = m.newForm()

		return m, m.form.Init()
	}

	expires, err := time.Parse(time.DateOnly, strings.TrimSpace(m.form.GetString("expires")))
	if err != nil {
		m.state.TransitionFailed(fmt.Sprintf("invalid expiry date: %v", err))
		m.form = m.newForm()

		return m, m.form.Init()
	}

	params := register.Params{
		Name:        strings.TrimSpace(m.form.GetString("name")),
		Destination: strings.TrimSpace(m.form.GetString("destination")),
		Price:       strings.TrimSpace(m.form.GetString("price")),
		Quantity:    quantity,
		ExpiresAt:   expires,
	}

	m.mode = registerStateSubmitting

	return m, tea.Batch(m.spinner.Tick, m.registerCmd(params))
}

func (m RegisterModel) View() string {
	if m.mode == registerStateSubmitting {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"%s Submitting registration to the ledger...\n\nYour wallet may ask for confirmation.",
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

func (m RegisterModel) registerCmd(params register.Params) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := LedgerCtx()
		defer cancel()

		receipt, err := m.registrar.Register(ctx, params)

		return registerDoneMsg{name: params.Name, receipt: receipt, err: err}
	}
}

// Messages

type registerDoneMsg struct {
	name    string
	receipt *register.Receipt
	err     error
}
