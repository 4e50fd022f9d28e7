package transcript

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ExportMeta carries session metadata for the exported document header.
type ExportMeta struct {
	Topic  string
	Agents []string
	Date   time.Time
}

// ExportMarkdown serializes the turns into a human-readable markdown document.
func ExportMarkdown(turns []Turn, meta ExportMeta) string {
	var sb strings.Builder

	sb.WriteString("# Multi-Agent Architecture Discussion\n")
	fmt.Fprintf(&sb, "**Date:** %s\n", meta.Date.Format("2006-01-02 15:04"))
	fmt.Fprintf(&sb, "**Topic:** %s\n", meta.Topic)
	fmt.Fprintf(&sb, "**Agents:** %s\n", strings.Join(meta.Agents, ", "))
	sb.WriteString("\n---\n")

	for _, t := range turns {
		fmt.Fprintf(&sb, "\n### %s\n\n%s\n", t.Author, t.Content)
	}
	sb.WriteString("\n")

	return sb.String()
}

// WriteMarkdown exports the turns to a markdown file at path.
func WriteMarkdown(path string, turns []Turn, meta ExportMeta) error {
	doc := ExportMarkdown(turns, meta)
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write transcript export: %w", err)
	}
	return nil
}

// DefaultExportName returns a timestamped filename for an export.
func DefaultExportName(now time.Time) string {
	return fmt.Sprintf("agent_discussion_%s.md", now.Format("20060102_1504"))
}
