// Package audit provides a development-only lint pass over the loaded
// list, flagging rows that would render as unusable links. It is wired
// in the composition root only when the development environment is
// active and never alters data flow or rendering.
package audit

import (
	"fmt"
	"log/slog"
	"net/url"
)

// Rule identifiers for findings
const (
	RuleEmptyLinkText = "empty-link-text"
	RuleMissingURL    = "missing-url"
	RuleRelativeURL   = "relative-url"
	RuleDuplicateID   = "duplicate-id"
	RuleEmptyID       = "empty-id"
)

// Finding describes one problem with a rendered row
type Finding struct {
	StarID string
	Rule   string
	Detail string
}

// Row is the minimal projection of a list row the auditor inspects
type Row struct {
	ID   string
	Name string
	URL  string
}

// Auditor checks rendered rows for accessibility problems
type Auditor struct {
	logger *slog.Logger
}

// New creates an Auditor reporting through the given logger
func New(logger *slog.Logger) *Auditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auditor{logger: logger}
}

// AuditRows inspects rows and returns all findings, logging each one
func (a *Auditor) AuditRows(rows []Row) []Finding {
	var findings []Finding
	seen := make(map[string]int)

	for i, row := range rows {
		if row.ID == "" {
			findings = append(findings, Finding{
				Rule:   RuleEmptyID,
				Detail: fmt.Sprintf("row %d has no stable key", i),
			})
		} else if prev, dup := seen[row.ID]; dup {
			findings = append(findings, Finding{
				StarID: row.ID,
				Rule:   RuleDuplicateID,
				Detail: fmt.Sprintf("rows %d and %d share id %q", prev, i, row.ID),
			})
		} else {
			seen[row.ID] = i
		}

		if row.Name == "" {
			findings = append(findings, Finding{
				StarID: row.ID,
				Rule:   RuleEmptyLinkText,
				Detail: fmt.Sprintf("row %d renders a link with no text", i),
			})
		}

		switch u, err := url.Parse(row.URL); {
		case row.URL == "":
			findings = append(findings, Finding{
				StarID: row.ID,
				Rule:   RuleMissingURL,
				Detail: fmt.Sprintf("row %d has no link target", i),
			})
		case err != nil || !u.IsAbs():
			findings = append(findings, Finding{
				StarID: row.ID,
				Rule:   RuleRelativeURL,
				Detail: fmt.Sprintf("row %d link %q is not absolute", i, row.URL),
			})
		}
	}

	for _, f := range findings {
		a.logger.Warn("render audit finding", "rule", f.Rule, "starID", f.StarID, "detail", f.Detail)
	}

	return findings
}
