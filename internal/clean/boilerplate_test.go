package clean

import (
	"strings"
	"testing"

	"github.com/jmpinto/gazeta/internal/rules"
)

func newStripper() *Stripper {
	return NewStripper(rules.NewLibrary())
}

func TestTruncateBeforeSecondTitle(t *testing.T) {
	text := "Despacho n.º 464 lixo de capa Despacho n.º 464 conteúdo real"
	got := TruncateBeforeSecondTitle(text, "Despacho n.º 464")
	want := "Despacho n.º 464 conteúdo real"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTruncateBeforeSecondTitle_SingleOccurrence(t *testing.T) {
	text := "Despacho n.º 464 conteúdo"
	if got := TruncateBeforeSecondTitle(text, "Despacho n.º 464"); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestTruncateBeforeSecondTitle_EmptyTitle(t *testing.T) {
	text := "qualquer coisa"
	if got := TruncateBeforeSecondTitle(text, ""); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestTruncateAfterLastMasthead(t *testing.T) {
	text := "conteúdo antes\n4 - S 30 de maio de 2025\nNúmero 97\nartefactos do scanner"
	got := newStripper().TruncateAfterLastMasthead(text)
	if !strings.HasSuffix(got, "Número 97") {
		t.Errorf("expected text to end exactly after the issue number, got %q", got)
	}
	if strings.Contains(got, "artefactos") {
		t.Errorf("expected trailing artifacts removed, got %q", got)
	}
}

func TestTruncateAfterLastMasthead_NoMasthead(t *testing.T) {
	text := "texto sem cabeçalho de página"
	if got := newStripper().TruncateAfterLastMasthead(text); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestStripMastheads(t *testing.T) {
	text := "início\n4 - S 30 de maio de 2025\nNúmero 97\nmeio\n30 de maio de 2025 S - 5\nNúmero 97\nfim"
	got := newStripper().StripMastheads(text)

	if strings.Contains(got, "Número") {
		t.Errorf("expected all mastheads removed, got %q", got)
	}
	for _, part := range []string{"início", "meio", "fim"} {
		if !strings.Contains(got, part) {
			t.Errorf("expected %q preserved, got %q", part, got)
		}
	}
}

func TestNarrowToSummary(t *testing.T) {
	text := "capa\nSumário:\nDespacho n.º 464\nNomeia a técnica.\nSECRETARIA REGIONAL\nDE EDUCAÇÃO\nDespacho n.º 464\nSumário:\ncorpo completo"
	got := newStripper().NarrowToSummary(text)

	if !strings.Contains(got, "Nomeia a técnica.") {
		t.Errorf("expected summary listing kept, got %q", got)
	}
	if strings.Contains(got, "capa") || strings.Contains(got, "corpo completo") {
		t.Errorf("expected text outside summary region removed, got %q", got)
	}
}

func TestNarrowToSummary_NoMarkers(t *testing.T) {
	text := "documento sem marcador de sumário"
	if got := newStripper().NarrowToSummary(text); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}
