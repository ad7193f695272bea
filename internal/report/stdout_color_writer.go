// ColorStdoutWriter prints human-friendly, colorized stats to STDOUT.
package report

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	tsStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	quadrantTags = [4]string{"tl", "tr", "bl", "br"}
)

// ColorStdoutWriter prints stats rows using lipgloss colors.
type ColorStdoutWriter struct {
	out  io.Writer
	once sync.Once
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter() *ColorStdoutWriter {
	return &ColorStdoutWriter{out: os.Stdout}
}

func count(n int) string {
	if n == 0 {
		return emptyStyle.Render("0")
	}
	return countStyle.Render(fmt.Sprint(n))
}

// Write outputs a single stats row in colorized format.
func (w *ColorStdoutWriter) Write(row StatsRow) error {
	w.once.Do(func() {
		fmt.Fprintln(w.out, headerStyle.Render(fmt.Sprintf("run %s dataset %s", row.RunID, row.Dataset)))
	})
	line := fmt.Sprintf("%s %s %s frames=%s boxes=%s",
		tsStyle.Render("["+row.Timestamp.Format(time.RFC3339)+"]"),
		stageStyle.Render(row.Stage),
		fileStyle.Render(row.File),
		count(row.Frames), count(row.Boxes))
	if row.Stage == StageSplit {
		for i, n := range [4]int{row.TopLeft, row.TopRight, row.BottomLeft, row.BottomRight} {
			line += fmt.Sprintf(" %s=%s", quadrantTags[i], count(n))
		}
	}
	_, err := fmt.Fprintln(w.out, line)
	return err
}

// WriteBatch outputs multiple stats rows.
func (w *ColorStdoutWriter) WriteBatch(rows []StatsRow) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
