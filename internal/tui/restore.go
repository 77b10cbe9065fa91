package tui

import (
	"fmt"
	"path/filepath"
	"sort"

	"shoestock/internal/backup"
	"shoestock/internal/inventory"
	"shoestock/internal/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RestoreModel replaces the inventory with a backup from the backup directory.
type RestoreModel struct {
	svc          *inventory.Service
	backups      *backup.Service
	backupDir    string
	file         string
	state        RestoreState
	files        []string
	selectedFile int
	result       RestoreResult
	width        int
	height       int
}

type RestoreState int

const (
	RestoreFileSelectState RestoreState = iota
	ConfirmationState
	RestoreProgressState
	RestoreResultState
)

type RestoreResult struct {
	RecordCount int
	Error       error
}

// RestoreCompleteMsg carries the decoded backup. The store is replaced when
// the message reaches Update.
type RestoreCompleteMsg struct {
	Shoes []models.Shoe
	Err   error
}

func NewRestoreModel(svc *inventory.Service, opts Options) *RestoreModel {
	return &RestoreModel{
		svc:       svc,
		backups:   opts.Backups,
		backupDir: opts.BackupDir,
		file:      opts.File,
	}
}

func (m *RestoreModel) Init() tea.Cmd {
	return nil
}

func (m *RestoreModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reset lists the backups, newest first.
func (m *RestoreModel) Reset() {
	m.state = RestoreFileSelectState
	m.result = RestoreResult{}
	m.selectedFile = 0

	jsonFiles, _ := filepath.Glob(filepath.Join(m.backupDir, "backup_inventory_*.json"))
	bsonFiles, _ := filepath.Glob(filepath.Join(m.backupDir, "backup_inventory_*.bson"))
	files := append(jsonFiles, bsonFiles...)
	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i]) > filepath.Base(files[j])
	})
	m.files = files
}

func (m *RestoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case RestoreFileSelectState:
			return m.updateFileSelectState(msg)
		case ConfirmationState:
			return m.updateConfirmationState(msg)
		case RestoreProgressState:
			return m, nil
		case RestoreResultState:
			if msg.String() == "enter" || msg.String() == " " {
				m.Reset()
				return m, nil
			}
		}

	case RestoreCompleteMsg:
		m.finish(msg)
		return m, nil
	}

	return m, nil
}

func (m *RestoreModel) updateFileSelectState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedFile > 0 {
			m.selectedFile--
		}
	case "down", "j":
		if m.selectedFile < len(m.files)-1 {
			m.selectedFile++
		}
	case "enter":
		if len(m.files) > 0 {
			m.state = ConfirmationState
		}
	}
	return m, nil
}

func (m *RestoreModel) updateConfirmationState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.state = RestoreProgressState
		return m, m.performRestore(m.files[m.selectedFile])
	case "n":
		m.state = RestoreFileSelectState
	}
	return m, nil
}

func (m *RestoreModel) performRestore(path string) tea.Cmd {
	backups := m.backups
	return func() tea.Msg {
		shoes, err := backups.Restore(path, "")
		return RestoreCompleteMsg{Shoes: shoes, Err: err}
	}
}

func (m *RestoreModel) finish(msg RestoreCompleteMsg) {
	m.state = RestoreResultState
	m.result = RestoreResult{RecordCount: len(msg.Shoes), Error: msg.Err}
	if msg.Err != nil {
		return
	}
	if err := m.svc.ReplaceAll(msg.Shoes); err != nil {
		m.result.Error = err
	}
}

func (m *RestoreModel) View() string {
	switch m.state {
	case ConfirmationState:
		return m.renderConfirmation()
	case RestoreProgressState:
		return m.renderProgress()
	case RestoreResultState:
		return m.renderResult()
	}
	return m.renderFileSelector()
}

func (m *RestoreModel) renderFileSelector() string {
	title := titleStyle.Render("🔄 Restore Inventory from Backup")

	if len(m.files) == 0 {
		content := warningStyle.Render(fmt.Sprintf("No backup files found in %s", m.backupDir))
		help := helpStyle.Render("Esc: Back to menu")
		return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
	}

	var fileList string
	for i, file := range m.files {
		cursor := " "
		style := menuItemStyle
		if i == m.selectedFile {
			cursor = ">"
			style = selectedMenuItemStyle
		}
		fileList += fmt.Sprintf("%s %s\n", cursor, style.Render(filepath.Base(file)))
	}

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • Esc: Back to menu")

	return lipgloss.JoinVertical(lipgloss.Left, title, fileList, help)
}

func (m *RestoreModel) renderConfirmation() string {
	title := titleStyle.Render("⚠️  Confirm Restore")

	warningText := warningStyle.Render(fmt.Sprintf("'%s' and the records in memory will be replaced.", m.file))
	details := fmt.Sprintf("📋 Backup file: %s", filepath.Base(m.files[m.selectedFile]))
	help := helpStyle.Render("Y/Enter: Confirm • N: Cancel")

	return lipgloss.JoinVertical(lipgloss.Left, title, warningText, details, help)
}

func (m *RestoreModel) renderProgress() string {
	title := titleStyle.Render("🔄 Restoring Inventory...")
	help := helpStyle.Render("Please wait while the backup is being read...")
	return lipgloss.JoinVertical(lipgloss.Left, title, help)
}

func (m *RestoreModel) renderResult() string {
	title := titleStyle.Render("🔄 Restore Complete")

	if m.result.Error != nil {
		status := errorStyle.Render(fmt.Sprintf("❌ Restore failed: %v", m.result.Error))
		help := helpStyle.Render("Enter: Choose another backup • Esc: Back to menu")
		return lipgloss.JoinVertical(lipgloss.Left, title, status, help)
	}

	status := successStyle.Render("✅ Restore completed successfully!")
	stats := fmt.Sprintf("📊 %d records restored to '%s'", m.result.RecordCount, m.file)
	help := helpStyle.Render("Enter: Restore another backup • Esc: Back to menu")

	return lipgloss.JoinVertical(lipgloss.Left, title, status, stats, help)
}
