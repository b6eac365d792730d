package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepBrowsingColumns
	stepBrowsingCards
	stepViewingComments
)

type column struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type comment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type model struct {
	step         step
	baseURL      string
	email        string
	userID       string
	token        string
	columns      []column
	cards        []card
	comments     []comment
	cursor       int
	columnCursor int
	cardCursor   int
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct {
	userID string
	token  string
}
type columnsMsg []column
type cardsMsg []card
type commentsMsg []comment
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func apiBaseURL() string {
	if v := os.Getenv("BOARD_API_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://localhost:7777"
}

func initialModel() model {
	return model{
		step:    stepEnteringEmail,
		baseURL: apiBaseURL(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func apiGet(baseURL, path, token string, out interface{}) error {
	client := &http.Client{Timeout: 10 * time.Second}

	req, _ := http.NewRequest("GET", baseURL+path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}

func loginUser(baseURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", baseURL+"/user/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("cannot reach %s: %w", baseURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed - check email and password")}
		}

		var result struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
			Token string `json:"token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected login response: %w", err)}
		}
		if result.Token == "" || result.Data.ID == "" {
			return errMsg{fmt.Errorf("login failed - check email and password")}
		}

		return loginSuccessMsg{userID: result.Data.ID, token: result.Token}
	}
}

func fetchColumns(m model) tea.Cmd {
	return func() tea.Msg {
		var cols []column
		path := fmt.Sprintf("/user/%s/columns", m.userID)
		if err := apiGet(m.baseURL, path, m.token, &cols); err != nil {
			return errMsg{fmt.Errorf("failed to load columns: %w", err)}
		}
		return columnsMsg(cols)
	}
}

func fetchCards(m model, columnID string) tea.Cmd {
	return func() tea.Msg {
		var cs []card
		path := fmt.Sprintf("/user/%s/columns/%s/cards", m.userID, columnID)
		if err := apiGet(m.baseURL, path, m.token, &cs); err != nil {
			return errMsg{fmt.Errorf("failed to load cards: %w", err)}
		}
		return cardsMsg(cs)
	}
}

func fetchComments(m model, columnID, cardID string) tea.Cmd {
	return func() tea.Msg {
		var cms []comment
		path := fmt.Sprintf("/user/%s/columns/%s/cards/%s/comments", m.userID, columnID, cardID)
		if err := apiGet(m.baseURL, path, m.token, &cms); err != nil {
			return errMsg{fmt.Errorf("failed to load comments: %w", err)}
		}
		return commentsMsg(cms)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.step != stepEnteringEmail && m.step != stepEnteringPassword {
				m.quitting = true
				return m, tea.Quit
			}
			m.currentInput += "q"

		case "up", "k":
			if m.cursor > 0 && (m.step == stepBrowsingColumns || m.step == stepBrowsingCards) {
				m.cursor--
			}

		case "down", "j":
			limit := 0
			if m.step == stepBrowsingColumns {
				limit = len(m.columns) - 1
			} else if m.step == stepBrowsingCards {
				limit = len(m.cards) - 1
			}
			if m.cursor < limit {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "esc":
			switch m.step {
			case stepBrowsingCards:
				m.step = stepBrowsingColumns
				m.cursor = m.columnCursor
			case stepViewingComments:
				m.step = stepBrowsingCards
				m.cursor = m.cardCursor
			}

		case "r":
			if m.step == stepBrowsingColumns {
				m.message = "Refreshing..."
				return m, fetchColumns(m)
			}
			m.currentInput += "r"

		case "enter":
			switch m.step {
			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					password := m.currentInput
					m.currentInput = ""
					m.step = stepLoggingIn
					m.message = "Logging in..."
					return m, loginUser(m.baseURL, m.email, password)
				}

			case stepBrowsingColumns:
				if len(m.columns) > 0 {
					m.columnCursor = m.cursor
					m.message = fmt.Sprintf("Loading cards in %q...", m.columns[m.cursor].Name)
					return m, fetchCards(m, m.columns[m.cursor].ID)
				}

			case stepBrowsingCards:
				if len(m.cards) > 0 {
					m.cardCursor = m.cursor
					m.message = "Loading comments..."
					return m, fetchComments(m, m.columns[m.columnCursor].ID, m.cards[m.cursor].ID)
				}
			}

		default:
			if m.step == stepEnteringEmail || m.step == stepEnteringPassword {
				m.currentInput += msg.String()
			}
		}

	case loginSuccessMsg:
		m.userID = msg.userID
		m.token = msg.token
		m.message = successStyle.Render("Logged in as " + m.email)
		return m, fetchColumns(m)

	case columnsMsg:
		m.columns = []column(msg)
		m.step = stepBrowsingColumns
		m.cursor = 0

	case cardsMsg:
		m.cards = []card(msg)
		m.step = stepBrowsingCards
		m.cursor = 0
		m.message = ""

	case commentsMsg:
		m.comments = []comment(msg)
		m.step = stepViewingComments
		m.message = ""

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		if m.step == stepLoggingIn {
			m.step = stepEnteringEmail
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Task Board\n\n"))

	switch m.step {
	case stepEnteringEmail:
		s.WriteString(promptStyle.Render("Email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")
		if m.message != "" {
			s.WriteString("\n" + m.message + "\n")
		}

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn:
		s.WriteString(m.message + "\n")

	case stepBrowsingColumns:
		s.WriteString(promptStyle.Render("Columns:\n\n"))
		if len(m.columns) == 0 {
			s.WriteString(dimStyle.Render("  (no columns yet)\n"))
		}
		for i, col := range m.columns {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(col.Name)))
		}
		s.WriteString("\nUse ↑/↓, Enter to open, r to refresh, q to quit\n")
		if m.message != "" {
			s.WriteString("\n" + m.message + "\n")
		}

	case stepBrowsingCards:
		s.WriteString(promptStyle.Render(fmt.Sprintf("Cards in %s:\n\n", m.columns[m.columnCursor].Name)))
		if len(m.cards) == 0 {
			s.WriteString(dimStyle.Render("  (no cards yet)\n"))
		}
		for i, cd := range m.cards {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s %s\n", cursor, style.Render(cd.Title), dimStyle.Render(cd.Description)))
		}
		s.WriteString("\nUse ↑/↓, Enter for comments, Esc back, q to quit\n")

	case stepViewingComments:
		s.WriteString(promptStyle.Render(fmt.Sprintf("Comments on %s:\n\n", m.cards[m.cardCursor].Title)))
		if len(m.comments) == 0 {
			s.WriteString(dimStyle.Render("  (no comments yet)\n"))
		}
		for _, cm := range m.comments {
			s.WriteString(normalStyle.Render(cm.Text))
			s.WriteString(dimStyle.Render("  " + cm.CreatedAt))
			s.WriteString("\n")
		}
		s.WriteString("\nEsc back, q to quit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
