package rules

import (
	"testing"

	"github.com/jmpinto/gazeta/internal/model"
)

func TestTokenize_WordsKeepJoiners(t *testing.T) {
	tokens := Tokenize("Despacho n.º 464")

	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}

	want := []string{"Despacho", "n.º", "464"}
	if len(texts) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(texts), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestTokenize_SlashSplitsNumbers(t *testing.T) {
	tokens := Tokenize("464/2025")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[1].Text != "/" || !tokens[1].IsPunct() {
		t.Errorf("expected middle token to be punct '/', got %q", tokens[1].Text)
	}
}

func TestTokenize_Offsets(t *testing.T) {
	text := "Aviso  nº 12\n\nfim"
	for _, tok := range Tokenize(text) {
		if text[tok.Start:tok.End] != tok.Text {
			t.Errorf("offset mismatch: text[%d:%d]=%q, token=%q",
				tok.Start, tok.End, text[tok.Start:tok.End], tok.Text)
		}
	}
}

func TestTokenize_NewlineRuns(t *testing.T) {
	tokens := Tokenize("a\r\n\nb")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if !tokens[1].IsNewline() {
		t.Errorf("expected newline token, got %q", tokens[1].Text)
	}
}

func TestToken_IsUpper(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"EDUCAÇÃO", true},
		{"DE", true},
		{"Despacho", false},
		{"464", false},
		{"N.º", true}, // º is uncased; only lowercase letters disqualify
	}
	for _, tc := range cases {
		tok := Token{Text: tc.text}
		if got := tok.IsUpper(); got != tc.want {
			t.Errorf("IsUpper(%q): expected %v, got %v", tc.text, tc.want, got)
		}
	}
}

func TestFind_ActHeader(t *testing.T) {
	lib := NewLibrary()
	text := "SECRETARIA REGIONAL\nDE EDUCAÇÃO\nDespacho n.º 464\nNomeia a trabalhadora."

	acts := lib.FindCategory(text, model.CategoryActHeader)
	if len(acts) != 1 {
		t.Fatalf("expected 1 act header, got %d", len(acts))
	}
	if got := acts[0].Text; got != "Despacho n.º 464\n" {
		t.Errorf("unexpected act header text: %q", got)
	}
}

func TestFind_ActHeaderWithLinkWords(t *testing.T) {
	lib := NewLibrary()
	text := "PRESIDÊNCIA DO GOVERNO\nDespacho conjunto n.º 7\ntexto."

	acts := lib.FindCategory(text, model.CategoryActHeader)
	if len(acts) != 1 {
		t.Fatalf("expected 1 act header, got %d", len(acts))
	}
}

func TestFind_ActHeaderExcludesSlashQualified(t *testing.T) {
	lib := NewLibrary()
	text := "Despacho n.º 464/2025 de maio"

	acts := lib.FindCategory(text, model.CategoryActHeader)
	if len(acts) != 0 {
		t.Errorf("expected no act header for slash-qualified number, got %d", len(acts))
	}
}

func TestFind_SectionBannerTwoLines(t *testing.T) {
	lib := NewLibrary()
	text := "SECRETARIA REGIONAL\nDE EDUCAÇÃO, CIÊNCIA E TECNOLOGIA\ncorpo"

	banners := lib.FindCategory(text, model.CategorySectionBanner)
	if len(banners) != 1 {
		t.Fatalf("expected 1 banner, got %d", len(banners))
	}
	if banners[0].Start != 0 {
		t.Errorf("expected banner at offset 0, got %d", banners[0].Start)
	}
}

func TestFind_SectionBannerSingleLine(t *testing.T) {
	lib := NewLibrary()
	text := "PRESIDÊNCIA DO GOVERNO REGIONAL\ncorpo"

	banners := lib.FindCategory(text, model.CategorySectionBanner)
	if len(banners) != 1 {
		t.Fatalf("expected 1 banner, got %d", len(banners))
	}
	if got := banners[0].Text; got != "PRESIDÊNCIA DO GOVERNO REGIONAL" {
		t.Errorf("unexpected banner text: %q", got)
	}
}

func TestFind_MastheadVariants(t *testing.T) {
	lib := NewLibrary()
	cases := []struct {
		name string
		text string
	}{
		{"page first", "4 - S 30 de maio de 2025\nNúmero 97"},
		{"date first", "30 de maio de 2025 S - 4\nNúmero 97"},
		{"page first with correspondence", "2 - S 30 de maio de 2025\nNúmero 97\nCORRESPONDÊNCIA"},
		{"date first with correspondence", "30 de maio de 2025 S - 2\nNúmero 97\nCORRESPONDÊNCIA"},
	}
	for _, tc := range cases {
		heads := lib.FindCategory(tc.text, model.CategoryMasthead)
		if len(heads) != 1 {
			t.Errorf("%s: expected 1 masthead, got %d", tc.name, len(heads))
			continue
		}
		if heads[0].End != len(tc.text) {
			t.Errorf("%s: expected masthead to span whole text, ended at %d of %d",
				tc.name, heads[0].End, len(tc.text))
		}
	}
}

func TestFind_CorrespondenceFoldedIntoMasthead(t *testing.T) {
	lib := NewLibrary()
	text := "4 - S 30 de maio de 2025\nNúmero 97\nCORRESPONDÊNCIA\nresto"

	heads := lib.FindCategory(text, model.CategoryMasthead)
	if len(heads) != 1 {
		t.Fatalf("expected 1 masthead, got %d", len(heads))
	}
	if got := heads[0].Text; got != "4 - S 30 de maio de 2025\nNúmero 97\nCORRESPONDÊNCIA" {
		t.Errorf("expected correspondence variant to win, got %q", got)
	}
}

func TestFind_SummaryMarkers(t *testing.T) {
	lib := NewLibrary()
	text := "Sumário:\nDespacho n.º 464\nNomeia.\nSECRETARIA REGIONAL\nDE EDUCAÇÃO\nDespacho n.º 464\nSumário:\ncorpo"

	matches := lib.Find(text)

	var cats []model.MatchCategory
	for _, m := range matches {
		cats = append(cats, m.Category)
	}

	if len(matches) == 0 || matches[0].Category != model.CategorySummaryStart {
		t.Fatalf("expected summary start first, got %v", cats)
	}
	foundEnd := false
	for _, m := range matches {
		if m.Category == model.CategorySummaryEnd {
			foundEnd = true
		}
	}
	if !foundEnd {
		t.Errorf("expected a summary end match, got %v", cats)
	}
}

func TestFind_MatchesAreOrderedAndNonOverlapping(t *testing.T) {
	lib := NewLibrary()
	text := "SECRETARIA REGIONAL\nDE EDUCAÇÃO\nDespacho n.º 1\na\nAviso n.º 2\nb\n"

	matches := lib.Find(text)
	if len(matches) < 3 {
		t.Fatalf("expected at least 3 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Start < matches[i-1].End {
			t.Errorf("matches overlap: %v then %v", matches[i-1], matches[i])
		}
	}
	for _, m := range matches {
		if text[m.Start:m.End] != m.Text {
			t.Errorf("offset mismatch for %q", m.Text)
		}
	}
}
