// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"fmt"
	"io"
	"strings"
)

// Report is the machine-readable form of a doctor run.
type Report struct {
	Checks []Result `json:"checks" desc:"individual check results"`
	OK     bool     `json:"ok" desc:"true when no check failed"`
}

// BuildReport assembles the JSON output struct from check results.
func BuildReport(results []Result) Report {
	return Report{Checks: results, OK: Healthy(results)}
}

// PrintChecklist prints check results as a human-readable checklist,
// with a one-line verdict at the bottom.
func PrintChecklist(w io.Writer, results []Result) {
	for _, result := range results {
		fmt.Fprintf(w, "[%-4s]  %-24s  %s\n",
			strings.ToUpper(string(result.Status)), result.Name, result.Message)
		if result.Status == StatusFail && result.Hint != "" {
			fmt.Fprintf(w, "        %-24s  hint: %s\n", "", result.Hint)
		}
	}

	fmt.Fprintln(w)
	if Healthy(results) {
		fmt.Fprintln(w, "All checks passed.")
	} else {
		fmt.Fprintln(w, "Some checks failed; see hints above.")
	}
}
