/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package app

import (
	"bennypowers.dev/reslink/resolver"
	"bennypowers.dev/reslink/token"
)

// Report is the serializable outcome of a resolution.
type Report struct {
	// Target is the literal text, empty when there is no literal.
	Target string `json:"target"`

	// Span covers the literal, nil when there is no literal.
	Span *token.Span `json:"span"`

	// Files are the candidates in presentation order.
	Files []ReportFile `json:"files"`
}

// ReportFile is one candidate of a Report.
type ReportFile struct {
	Path     string `json:"path"`
	Relative string `json:"relative"`
}

// NewReport converts a result into a Report.
func NewReport(result resolver.Result) Report {
	report := Report{Files: []ReportFile{}}
	if result.HasTarget {
		span := result.Span
		report.Target = result.Target
		report.Span = &span
	}
	for _, f := range result.Presented() {
		report.Files = append(report.Files, ReportFile{
			Path:     f.Path,
			Relative: result.Project.Rel(f.Path),
		})
	}
	return report
}
