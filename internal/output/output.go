// Package output formats user-facing CLI messages.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// Print writes a plain line to stdout.
func Print(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Info writes a cyan progress line to stdout.
func Info(format string, args ...interface{}) {
	infoColor.Printf(format+"\n", args...)
}

// Success writes a green line to stdout.
func Success(format string, args ...interface{}) {
	successColor.Printf(format+"\n", args...)
}

// Warn writes a yellow line to stderr.
func Warn(format string, args ...interface{}) {
	warnColor.Fprintf(os.Stderr, format+"\n", args...)
}

// Error writes a red line to stderr.
func Error(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, format+"\n", args...)
}

// Table writes aligned columns to stdout.
func Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := make([]string, len(headers))
	for i, h := range headers {
		line[i] = fmt.Sprintf("%-*s", widths[i], h)
	}
	fmt.Println(strings.Join(line, "  "))

	for i, w := range widths {
		line[i] = strings.Repeat("-", w)
	}
	fmt.Println(strings.Join(line, "  "))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i < len(widths) {
				cells[i] = fmt.Sprintf("%-*s", widths[i], cell)
			}
		}
		fmt.Println(strings.Join(cells, "  "))
	}
}
