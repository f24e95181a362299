// Package viz renders DynamicArray state for the terminal with lipgloss.
package viz
