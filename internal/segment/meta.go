package segment

import (
	"fmt"
	"regexp"
	"strconv"
)

// Meta is document-level metadata recovered from raw header blocks,
// used to validate or supply series/date when filename parsing is
// ambiguous. This pass is deliberately coarser than the token rules:
// it only needs one date + issue-number co-location anywhere in the
// document.
type Meta struct {
	Date  string // YYYY-MM-DD, empty if nothing matched
	Issue string // Issue number from the "Número N" line
}

var monthNumbers = map[string]int{
	"janeiro": 1, "fevereiro": 2, "março": 3, "abril": 4,
	"maio": 5, "junho": 6, "julho": 7, "agosto": 8,
	"setembro": 9, "outubro": 10, "novembro": 11, "dezembro": 12,
}

const monthAlt = `janeiro|fevereiro|março|abril|maio|junho|julho|agosto|setembro|outubro|novembro|dezembro`

var (
	// "4 - S 30 de maio de 2025\nNúmero 97"
	pageFirstMetaRe = regexp.MustCompile(
		`\d+\s*-\s*\p{L}\s+(\d{1,2}) de (` + monthAlt + `) de (\d{4})\s*\n\s*Número\s+(\d+)`)
	// "30 de maio de 2025 S - 4\nNúmero 97"
	dateFirstMetaRe = regexp.MustCompile(
		`(\d{1,2}) de (` + monthAlt + `) de (\d{4})\s+\p{L}\s*-\s*\d+\s*\n\s*Número\s+(\d+)`)
)

// DetectMeta scans raw document text for a masthead-shaped block and
// returns the first date and issue number found. A zero Meta means no
// block matched; that is an expected outcome, not an error.
func DetectMeta(text string) Meta {
	for _, re := range []*regexp.Regexp{pageFirstMetaRe, dateFirstMetaRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		day, err := strconv.Atoi(m[1])
		if err != nil || day < 1 || day > 31 {
			continue
		}
		month, ok := monthNumbers[m[2]]
		if !ok {
			continue
		}
		return Meta{
			Date:  fmt.Sprintf("%s-%02d-%02d", m[3], month, day),
			Issue: m[4],
		}
	}
	return Meta{}
}
