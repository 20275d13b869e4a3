package document

import (
	"regexp"
	"strings"
)

// DefaultCharBudget caps the text sent to the model.
const DefaultCharBudget = 4096

const windowRadius = 2

var dateToken = regexp.MustCompile(`\d{1,2}/\d{1,2}`)

// SelectCandidates keeps every line within two lines of a line that carries
// both a date token and one of aliases. Lines stay in document order, appear
// once and the result is cut to budget characters.
func SelectCandidates(lines []string, aliases []string, budget int) string {
	if budget <= 0 {
		budget = DefaultCharBudget
	}
	upper := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if a = strings.ToUpper(strings.TrimSpace(a)); a != "" {
			upper = append(upper, a)
		}
	}
	if len(upper) == 0 {
		return ""
	}

	keep := make([]bool, len(lines))
	for i, line := range lines {
		if !qualifies(line, upper) {
			continue
		}
		lo, hi := max(0, i-windowRadius), min(len(lines)-1, i+windowRadius)
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	seen := make(map[string]struct{})
	var out []string
	for i, line := range lines {
		if !keep[i] {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return truncateRunes(strings.Join(out, "\n"), budget)
}

func qualifies(line string, aliases []string) bool {
	if !dateToken.MatchString(line) {
		return false
	}
	u := strings.ToUpper(line)
	for _, a := range aliases {
		if strings.Contains(u, a) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
