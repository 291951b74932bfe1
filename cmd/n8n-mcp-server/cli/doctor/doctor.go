// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package doctor

// Status is the outcome of a single health check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single health check. Failures may
// carry a Hint describing how to fix the problem; there is no
// automatic repair, since every failure here (wrong URL, revoked key,
// unreachable instance) needs a human decision.
type Result struct {
	Name    string `json:"name" desc:"health check name"`
	Status  Status `json:"status" desc:"check outcome: pass, fail, warn, skip"`
	Message string `json:"message" desc:"human-readable check result"`
	Hint    string `json:"hint,omitempty" desc:"suggested fix description"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// FailWithHint creates a failing check result with a fix suggestion.
func FailWithHint(name, message, hint string) Result {
	return Result{Name: name, Status: StatusFail, Message: message, Hint: hint}
}

// Warn creates a warning check result: something is off but the
// server would still function.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped check result, used when a prerequisite check
// failed or the check does not apply to the current configuration.
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// Healthy reports whether no check failed. Warnings and skips do not
// count as failures.
func Healthy(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return false
		}
	}
	return true
}
