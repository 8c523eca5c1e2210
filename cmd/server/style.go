package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	totalStyle = lipgloss.NewStyle().Bold(true)
	payStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)
