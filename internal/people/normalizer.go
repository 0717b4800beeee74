// Package people turns raw tagged person-name candidates into a clean,
// deduplicated list. The tagger output over scanned gazette text is
// noisy: run-on captures, bare first names, org nouns folded into the
// span. The pipeline stages here are order-sensitive; reordering them
// changes results.
package people

import (
	"regexp"
	"sort"
	"strings"
)

// Keywords marking section boundaries the tagger tends to run past
var trimKeywords = []string{"anexo", "nota curricular", "secretaria"}

// Job-title and organizational nouns that mark a candidate as a
// mis-capture rather than a person name
var unwantedWords = []string{
	"formação", "profissional", "infraestruturas", "despacho", "conjunto", "madeira",
	"câmara", "chefe", "estudos", "coordenação", "autoridade", "assuntos",
	"fiscais", "regional", "secretária", "&", "diretor", "diretora",
	"habilitações", "literárias", "professor", "professora", "convidado", "convidada",
	"sistemas", "informação", "tecnologias", "especialista", "recursos", "humanos",
	"apoio", "família", "idosa", "idoso", "assistente",
	"vogal", "conselho", "diretivo", "bilhete", "identidade", "inspetora", "tributária",
	"tributário", "secundária", "bolseiro", "bolseira", "investigador", "investigadora",
}

// Academic and professional titles that precede person names
var nameTitles = []string{
	"Licenciado", "Licenciada",
	"Doutor", "Doutora",
	"Mestre", "Mestra",
	"Mestrando", "Mestranda",
	"Doutorando", "Doutoranda",
	"Pós-Doutor", "Pós-Doutora",
}

// Normalizer is the filtering/deduplication pipeline for person names
type Normalizer struct {
	trimKeywords []string
	unwanted     map[string]bool
	titles       map[string]bool
	fallbackRe   *regexp.Regexp
}

// NewNormalizer creates a normalizer with the built-in gazette word lists
func NewNormalizer() *Normalizer {
	unwanted := make(map[string]bool, len(unwantedWords))
	for _, w := range unwantedWords {
		unwanted[strings.ToLower(w)] = true
	}
	titles := make(map[string]bool, len(nameTitles))
	for _, t := range nameTitles {
		titles[strings.ToLower(t)] = true
	}
	// Title followed by a capitalized multi-word sequence
	pattern := `\b(` + strings.Join(nameTitles, "|") + `)\s+` +
		`([A-ZÁÉÍÓÚÂÊÔÃÕÀÇ][\p{L}\p{N}\-']+(?:\s+[A-ZÁÉÍÓÚÂÊÔÃÕÀÇ][\p{L}\p{N}\-']+)+)`
	return &Normalizer{
		trimKeywords: trimKeywords,
		unwanted:     unwanted,
		titles:       titles,
		fallbackRe:   regexp.MustCompile(pattern),
	}
}

// Clean runs the full pipeline over raw candidates from one chunk.
// chunk is the original chunk text, needed for the regex fallback when
// every tagged candidate was filtered out. Always returns a non-nil
// list; the stages never fail on malformed input.
func (n *Normalizer) Clean(candidates []string, chunk string) []string {
	out := removeSingleTokens(candidates)
	out = n.trimAfterKeywords(out)
	out = keepShortestPrefix(out)
	out = normalizeAndDedupe(out)
	out = n.removeUnwanted(out)
	if len(out) == 0 {
		out = n.fallbackExtract(chunk, nil)
	}
	out = n.stripTitles(out)
	if out == nil {
		out = []string{}
	}
	return out
}

// removeSingleTokens drops bare first names: a single word is not a
// usable identification.
func removeSingleTokens(candidates []string) []string {
	var kept []string
	for _, c := range candidates {
		if len(strings.Fields(c)) > 1 {
			kept = append(kept, c)
		}
	}
	return kept
}

// trimAfterKeywords truncates each candidate at the earliest boundary
// keyword occurrence, removing run-on captures. A candidate that starts
// with a keyword trims to nothing and is dropped: downstream, an empty
// candidate would count every other candidate as its prefix-extension
// and swallow the whole list.
func (n *Normalizer) trimAfterKeywords(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		lower := strings.ToLower(c)
		cut := len(c)
		for _, kw := range n.trimKeywords {
			if idx := strings.Index(lower, kw); idx >= 0 && idx < cut {
				cut = idx
			}
		}
		trimmed := strings.TrimSpace(c[:cut])
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// keepShortestPrefix sorts candidates by (token count, lexical order)
// and keeps one only if it does not extend an already-kept candidate
// token by token. The tagger's shortest capture is the most reliable
// anchor, so "Ana Reis Varela" collapses into a kept "Ana Reis".
func keepShortestPrefix(candidates []string) []string {
	uniq := dedupe(candidates)
	sort.Slice(uniq, func(i, j int) bool {
		ti, tj := len(strings.Fields(uniq[i])), len(strings.Fields(uniq[j]))
		if ti != tj {
			return ti < tj
		}
		return uniq[i] < uniq[j]
	})

	var kept []string
	for _, cand := range uniq {
		candTokens := strings.Fields(cand)
		extension := false
		for _, k := range kept {
			keptTokens := strings.Fields(k)
			if len(candTokens) >= len(keptTokens) && equalTokens(candTokens[:len(keptTokens)], keptTokens) {
				extension = true
				break
			}
		}
		if !extension {
			kept = append(kept, cand)
		}
	}
	return kept
}

// normalizeAndDedupe collapses internal whitespace runs, deduplicates
// exactly, and sorts by length ascending.
func normalizeAndDedupe(candidates []string) []string {
	normalized := make([]string, 0, len(candidates))
	for _, c := range candidates {
		normalized = append(normalized, strings.Join(strings.Fields(c), " "))
	}
	uniq := dedupe(normalized)
	sort.Slice(uniq, func(i, j int) bool {
		if len(uniq[i]) != len(uniq[j]) {
			return len(uniq[i]) < len(uniq[j])
		}
		return uniq[i] < uniq[j]
	})
	return uniq
}

// removeUnwanted discards candidates containing a stoplist term as a
// whole word, case-insensitive.
func (n *Normalizer) removeUnwanted(candidates []string) []string {
	var kept []string
	for _, c := range candidates {
		bad := false
		for _, w := range strings.Fields(strings.ToLower(c)) {
			if n.unwanted[w] {
				bad = true
				break
			}
		}
		if !bad {
			kept = append(kept, c)
		}
	}
	return kept
}

// fallbackExtract runs the title+capitalized-sequence regex over the
// original chunk text, accepting only names not already known. The
// title is kept in the candidate here; stripTitles removes it later.
func (n *Normalizer) fallbackExtract(chunk string, known []string) []string {
	knownSet := make(map[string]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}
	var names []string
	for _, m := range n.fallbackRe.FindAllStringSubmatch(chunk, -1) {
		name := m[1] + " " + m[2]
		if !knownSet[name] {
			knownSet[name] = true
			names = append(names, name)
		}
	}
	return names
}

// stripTitles removes a leading academic/professional title from each
// candidate. Prefix-only: tokens after the first are never touched, and
// nothing happens unless the first token (lowercased, trailing period
// ignored) is in the title list.
func (n *Normalizer) stripTitles(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		tokens := strings.Fields(c)
		if len(tokens) > 0 && n.titles[strings.TrimRight(strings.ToLower(tokens[0]), ".")] {
			out = append(out, strings.Join(tokens[1:], " "))
			continue
		}
		out = append(out, c)
	}
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var uniq []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			uniq = append(uniq, v)
		}
	}
	return uniq
}

func equalTokens(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
