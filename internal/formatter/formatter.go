// package formatter renders channel lists for the CLI (plain text, CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"livetv/internal/models"
	"livetv/internal/query"
)

// ToCSV converts channels to CSV with columns: ID, Name, URL, Type, Category, Status, Created
func ToCSV(channels []models.Channel) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "URL", "Type", "Category", "Status", "Created"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, c := range channels {
		record := []string{
			strconv.Itoa(c.ID),
			c.Name,
			c.URL,
			string(c.Type),
			c.Category,
			string(c.Status),
			c.CreatedAt.Format("2006-01-02"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ToMarkdown converts channels to a Markdown listing with a stats header.
func ToMarkdown(channels []models.Channel) []byte {
	var buf bytes.Buffer

	stats := query.Summarize(channels)
	buf.WriteString("# Channels\n\n")
	buf.WriteString(fmt.Sprintf("**Total**: %d (%d YouTube, %d Facebook, %d categories)\n\n",
		stats.Total, stats.YouTube, stats.Facebook, stats.Categories))

	for i, c := range channels {
		descPart := ""
		if c.Description != "" {
			descPart = fmt.Sprintf(" - %s", c.Description)
		}
		buf.WriteString(fmt.Sprintf("%d. **%s** (%s/%s, %s)%s\n", i+1, c.Name, c.Type, c.Category, c.Status, descPart))
	}

	return buf.Bytes()
}

// ToText converts channels to a plain text table for terminal display.
func ToText(channels []models.Channel) []byte {
	var buf bytes.Buffer

	if len(channels) == 0 {
		buf.WriteString("No channels found\n")
		return buf.Bytes()
	}

	buf.WriteString(fmt.Sprintf("%-5s %-24s %-10s %-14s %-9s %s\n", "ID", "NAME", "TYPE", "CATEGORY", "STATUS", "CREATED"))
	for _, c := range channels {
		buf.WriteString(fmt.Sprintf("%-5d %-24s %-10s %-14s %-9s %s\n",
			c.ID, truncate(c.Name, 24), c.Type, truncate(c.Category, 14), c.Status, c.CreatedAt.Format("2006-01-02")))
	}

	return buf.Bytes()
}

// FormatActivity renders recent activity entries, newest first.
func FormatActivity(records []models.ActivityRecord) []byte {
	var buf bytes.Buffer

	if len(records) == 0 {
		buf.WriteString("No recent activity\n")
		return buf.Bytes()
	}

	for _, r := range records {
		buf.WriteString(fmt.Sprintf("%s  %s - %s\n", r.Timestamp.Format("2006-01-02 15:04"), r.Title, r.Description))
	}
	return buf.Bytes()
}

// FormatBackupHistory renders the backup history, newest first.
func FormatBackupHistory(records []models.BackupRecord) []byte {
	var buf bytes.Buffer

	if len(records) == 0 {
		buf.WriteString("No backup history\n")
		return buf.Bytes()
	}

	for _, r := range records {
		buf.WriteString(fmt.Sprintf("%s  %-7s %d channels\n", r.Timestamp.Format("2006-01-02 15:04"), r.Type, r.Channels))
	}
	return buf.Bytes()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
