package main

import (
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"tunedadm/internal/control"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func renderActiveLine(names []string, ok bool, colorize bool) string {
	const label = "Current active profile: "
	if !ok {
		if colorize {
			return label + ansiYellow + "none" + ansiReset
		}
		return label + "none"
	}
	value := strings.Join(names, " ")
	if colorize {
		value = ansiGreen + value + ansiReset
	}
	return label + value
}

func renderProfileTable(result control.ListResult, colorize bool) string {
	active := make(map[string]bool, len(result.Active))
	for _, name := range result.Active {
		active[name] = true
	}

	rows := make([][]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		marker := ""
		if active[entry.Name] {
			marker = "*"
			if colorize {
				marker = ansiGreen + marker + ansiReset
			}
		}
		rows = append(rows, []string{entry.Name, strings.Join(entry.Sources, ", "), marker})
	}
	return renderTable([]string{"Profile", "Layers", "Active"}, rows, []text.Align{text.AlignLeft, text.AlignLeft, text.AlignCenter})
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
