package rules

import "github.com/jmpinto/gazeta/internal/model"

// Library is the compiled, priority-ordered rule set for one gazette
// layout family. Build it once and share it; Find is safe for
// concurrent use.
type Library struct {
	rules []Rule
}

// Portuguese month names as they appear in masthead blocks
var months = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Act-type keywords opening a legal-act header
var actKeywords = []string{"despacho", "aviso", "declaração", "edital", "deliberação"}

// Linking words allowed between the act keyword and the ordinal marker
var actLinkWords = []string{"conjunto", "de", "da", "do", "retificação", "retificacao"}

// NewLibrary compiles the gazette rule set. Rules are tried in order at
// each position, so composite patterns must precede the primary ones
// they overlap with: the summary-end block before plain banners, the
// correspondence masthead variants before the bare ones.
func NewLibrary() *Library {
	return &Library{rules: []Rule{
		summaryEndRule(),
		mastheadRule(true, true),
		mastheadRule(false, true),
		mastheadRule(true, false),
		mastheadRule(false, false),
		actHeaderRule(),
		sectionBannerRule(),
		summaryStartRule(),
	}}
}

// Find returns ordered, non-overlapping header matches. No match means
// an empty slice, never an error.
func (l *Library) Find(text string) []model.HeaderMatch {
	tokens := Tokenize(text)
	var matches []model.HeaderMatch

	i := 0
	for i < len(tokens) {
		advanced := false
		for ri := range l.rules {
			end, ok := l.rules[ri].Match(tokens, i)
			if !ok || end <= i {
				continue
			}
			start := tokens[i].Start
			stop := tokens[end-1].End
			matches = append(matches, model.HeaderMatch{
				Category: l.rules[ri].Category,
				Text:     text[start:stop],
				Start:    start,
				End:      stop,
			})
			i = end
			advanced = true
			break
		}
		if !advanced {
			i++
		}
	}
	return matches
}

// FindCategory returns only the matches of one category, in order
func (l *Library) FindCategory(text string, category model.MatchCategory) []model.HeaderMatch {
	var out []model.HeaderMatch
	for _, m := range l.Find(text) {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// actHeaderRule matches "Despacho n.º 464" style headers. The trailing
// element consumes one token that must not be punctuation, which
// deliberately excludes slash-qualified forms like "n.º 464/2025".
func actHeaderRule() Rule {
	return Rule{
		Category: model.CategoryActHeader,
		Elements: []Element{
			{Pred: lowerIn(actKeywords...), Op: One},
			{Pred: lowerIn(actLinkWords...), Op: Star},
			{Pred: textIn("n.º", "nº"), Op: One},
			{Pred: likeNum, Op: One},
			{Pred: isPunct, Op: Not},
		},
	}
}

// sectionBannerRule matches the all-caps department heading, typically
// split across two lines ("SECRETARIA REGIONAL\nDE EDUCAÇÃO...").
func sectionBannerRule() Rule {
	return Rule{
		Category: model.CategorySectionBanner,
		Elements: []Element{
			{Pred: textIn("PRESIDÊNCIA", "SECRETARIA"), Op: One},
			{Pred: isUpper, Op: Plus},
			{Pred: isPunct, Op: Star},
			{Pred: isNewline, Op: Opt},
			{Pred: isPunct, Op: Star},
			{Pred: isUpper, Op: Plus},
		},
	}
}

// mastheadRule matches the page running-header block. Source documents
// vary page to page: the page/series prefix may precede or follow the
// date (pageFirst), and some pages carry a trailing CORRESPONDÊNCIA
// footer line (correspondence). Four orderings total.
func mastheadRule(pageFirst, correspondence bool) Rule {
	var elems []Element
	if pageFirst {
		// "4 - S 30 de maio de 2025"
		elems = []Element{
			{Pred: likeNum, Op: One},
			{Pred: text("-"), Op: One},
			{Pred: isSingleLetter, Op: One},
			{Pred: isNewline, Op: Opt},
			{Pred: likeNum, Op: One},
			{Pred: lower("de"), Op: One},
			{Pred: lowerIn(months...), Op: One},
			{Pred: lower("de"), Op: One},
			{Pred: likeNum, Op: One},
		}
	} else {
		// "30 de maio de 2025 S - 4"
		elems = []Element{
			{Pred: likeNum, Op: One},
			{Pred: lower("de"), Op: One},
			{Pred: lowerIn(months...), Op: One},
			{Pred: lower("de"), Op: One},
			{Pred: likeNum, Op: One},
			{Pred: isSingleLetter, Op: One},
			{Pred: text("-"), Op: One},
			{Pred: likeNum, Op: One},
		}
	}
	elems = append(elems,
		Element{Pred: isNewline, Op: Star},
		Element{Pred: lower("número"), Op: One},
		Element{Pred: likeNum, Op: One},
	)
	if correspondence {
		elems = append(elems,
			Element{Pred: isNewline, Op: Star},
			Element{Pred: text("CORRESPONDÊNCIA"), Op: One},
		)
	}
	return Rule{Category: model.CategoryMasthead, Elements: elems}
}

// summaryStartRule matches the "Sumário" marker opening the summary
func summaryStartRule() Rule {
	return Rule{
		Category: model.CategorySummaryStart,
		Elements: []Element{
			{Pred: text("Sumário"), Op: One},
			{Pred: text(":"), Op: Opt},
		},
	}
}

// summaryEndRule matches the composite block where the first act is
// restated after the summary: an all-caps banner, an act keyword with
// its number, then "Sumário" again.
func summaryEndRule() Rule {
	return Rule{
		Category: model.CategorySummaryEnd,
		Elements: []Element{
			{Pred: isUpper, Op: Plus},
			{Pred: isNewline, Op: Star},
			{Pred: isUpper, Op: Plus},
			{Pred: isNewline, Op: Star},
			{Pred: lowerIn("despacho", "aviso"), Op: One},
			{Pred: isNewline, Op: Star},
			{Pred: text("n.º"), Op: Opt},
			{Pred: isNewline, Op: Star},
			{Pred: likeNum, Op: One},
			{Pred: isNewline, Op: Star},
			{Pred: text("Sumário"), Op: One},
			{Pred: text(":"), Op: Opt},
		},
	}
}
