// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// StatusBadge returns a colored indicator for an XMPP connection status.
func StatusBadge(status string) string {
	switch status {
	case "online":
		return Green("● Online")
	case "offline":
		return Yellow("○ Offline")
	case "unknown":
		return Yellow("◌ Unknown")
	case "disconnected":
		return Red("○ Disconnected")
	default:
		return Red("✗ Error")
	}
}

// PrintStatus prints the service status in a formatted style.
func PrintStatus(status, addr, logPath string) {
	fmt.Fprintf(Output, "%s %s\n", Bold("XMPP:"), StatusBadge(status))
	fmt.Fprintf(Output, "%s %s\n", Bold("Service:"), Blue(addr))
	fmt.Fprintf(Output, "%s %s\n", Bold("Logs:"), logPath)
}

// PrintInboxMessage prints a single inbox message.
func PrintInboxMessage(index int, from, msg string) {
	fmt.Fprintf(Output, "%s %s\n", Bold(fmt.Sprintf("[%d]", index)), Cyan(from))
	fmt.Fprintf(Output, "    %s\n", msg)
}

// PrintInboxCount prints the number of messages waiting in the inbox.
func PrintInboxCount(count int) {
	if count == 0 {
		fmt.Fprintln(Output, "Inbox is empty.")
		return
	}
	fmt.Fprintf(Output, "%s %d\n", Bold("Messages waiting:"), count)
}

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message with red X.
func PrintError(message string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}
