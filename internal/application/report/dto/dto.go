package dto

import "time"

// FormatMarkdown and FormatHTML are the supported export formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

type ExportReportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=markdown html"`
}

type ReportResponse struct {
	Format      string    `json:"format"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}
