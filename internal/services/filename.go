package services

import (
	"regexp"
	"time"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// sanitizeName keeps ASCII letters and digits, replaces everything else with
// an underscore and truncates to 20 characters.
func sanitizeName(name string) string {
	safe := unsafeNameChars.ReplaceAllString(name, "_")
	if len(safe) > 20 {
		safe = safe[:20]
	}
	return safe
}

// OutputFileName names the output document of a submission from the
// requester's name and the UTC time of the run.
func OutputFileName(name string, at time.Time) string {
	return "Translation_" + sanitizeName(name) + "_" + at.UTC().Format("2006-01-02T15-04-05") + ".docx"
}
