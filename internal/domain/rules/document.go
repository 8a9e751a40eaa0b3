package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/skillcheck/skillcheck/internal/domain"
)

// windowsPathPattern matches a backslash flanked by word characters or
// slashes, the shape of a genuine path fragment rather than incidental
// escape usage.
var windowsPathPattern = regexp.MustCompile(`[\w/\\]\\[\w/\\]`)

// windowsPathToken widens a hit to the surrounding whitespace-delimited
// token for reporting.
var windowsPathToken = regexp.MustCompile(`\S*[\w/\\]\\[\w/\\]\S*`)

const maxWindowsPathExamples = 3

// DocumentLength warns when the document exceeds the configured line
// ceiling. Long skill documents should move detail into auxiliary
// reference files the agent loads on demand.
func DocumentLength(doc string, maxLines int) domain.CheckResult {
	if maxLines <= 0 {
		maxLines = domain.DefaultMaxDocumentLines
	}
	lines := countLines(doc)
	if lines > maxLines {
		return fail(domain.CheckDocumentLength,
			fmt.Sprintf("document is %d lines (advisory limit %d); consider moving content into auxiliary reference files", lines, maxLines))
	}
	return pass(domain.CheckDocumentLength, fmt.Sprintf("document is %d lines", lines))
}

// WindowsPaths flags backslash path separators so skills stay portable.
// The message lists up to three distinct examples.
func WindowsPaths(doc string) domain.CheckResult {
	if !strings.ContainsRune(doc, '\\') {
		return pass(domain.CheckWindowsPaths, "no backslash path separators")
	}
	if !windowsPathPattern.MatchString(doc) {
		return pass(domain.CheckWindowsPaths, "backslashes present but none look like paths")
	}

	var examples []string
	seen := make(map[string]bool)
	for _, tok := range windowsPathToken.FindAllString(doc, -1) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		examples = append(examples, tok)
		if len(examples) == maxWindowsPathExamples {
			break
		}
	}
	return fail(domain.CheckWindowsPaths,
		"Windows-style paths found (use forward slashes): "+strings.Join(examples, ", "))
}

// FileListing records the recursive file count. Content never fails it;
// only an enumeration error degrades this one check instead of aborting
// the run.
func FileListing(files []string, listingErr error) domain.CheckResult {
	if listingErr != nil {
		return fail(domain.CheckFileListing, fmt.Sprintf("listing skill files: %v", listingErr))
	}
	return pass(domain.CheckFileListing, fmt.Sprintf("%d file(s) under skill directory", len(files)))
}

// countLines counts logical lines; a trailing newline does not open an
// extra empty line.
func countLines(doc string) int {
	if doc == "" {
		return 0
	}
	n := strings.Count(doc, "\n")
	if !strings.HasSuffix(doc, "\n") {
		n++
	}
	return n
}
