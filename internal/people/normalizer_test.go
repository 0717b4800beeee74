package people

import (
	"reflect"
	"testing"
)

func TestClean_DropsSingleTokenCandidates(t *testing.T) {
	n := NewNormalizer()
	got := n.Clean([]string{"Maria"}, "texto sem títulos")
	if len(got) != 0 {
		t.Errorf("expected single-token candidate dropped, got %v", got)
	}
}

func TestClean_NeverReturnsNil(t *testing.T) {
	n := NewNormalizer()
	if got := n.Clean(nil, ""); got == nil {
		t.Errorf("expected empty slice, got nil")
	}
}

func TestClean_KeepsShortestPrefix(t *testing.T) {
	n := NewNormalizer()
	got := n.Clean([]string{"Ana Reis Varela", "Ana Reis"}, "")
	want := []string{"Ana Reis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClean_TrimsAfterBoundaryKeywords(t *testing.T) {
	n := NewNormalizer()
	got := n.Clean([]string{"João Silva Anexo II"}, "")
	want := []string{"João Silva"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClean_CandidateTrimmedToNothingDoesNotSwallowRest(t *testing.T) {
	n := NewNormalizer()
	got := n.Clean([]string{"Secretaria Regional de Educação", "Ana Reis Varela"}, "")
	want := []string{"Ana Reis Varela"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClean_RemovesOrganizationalCaptures(t *testing.T) {
	n := NewNormalizer()
	got := n.Clean([]string{"João Paulo Martins", "Chefe Gabinete"}, "")
	want := []string{"João Paulo Martins"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClean_CollapsesWhitespaceAndDedupes(t *testing.T) {
	n := NewNormalizer()
	got := n.Clean([]string{"Ana  Maria \n Sousa", "Ana Maria Sousa"}, "")
	want := []string{"Ana Maria Sousa"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClean_FallbackExtractsTitledNames(t *testing.T) {
	n := NewNormalizer()
	chunk := "designar a Licenciada Ana Cristina Fernandes Escórcio para o cargo"
	got := n.Clean(nil, chunk)
	want := []string{"Ana Cristina Fernandes Escórcio"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClean_FallbackOnlyWhenAllCandidatesFiltered(t *testing.T) {
	n := NewNormalizer()
	chunk := "o Doutor Pedro Nunes Vieira assina"
	got := n.Clean([]string{"Rita Gomes Andrade"}, chunk)
	want := []string{"Rita Gomes Andrade"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected tagged candidate to win over fallback, got %v", got)
	}
}

func TestClean_StripsLeadingTitle(t *testing.T) {
	n := NewNormalizer()
	got := n.Clean([]string{"Doutora Maria João Abreu"}, "")
	want := []string{"Maria João Abreu"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClean_TitleStripIsPrefixOnly(t *testing.T) {
	n := NewNormalizer()
	got := n.Clean([]string{"Maria Mestre Coelho"}, "")
	want := []string{"Maria Mestre Coelho"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected non-leading title untouched, got %v", got)
	}
}

func TestClean_Idempotent(t *testing.T) {
	n := NewNormalizer()
	input := []string{"Licenciado Carlos Alberto Sá", "Rita Gomes", "chefe"}
	once := n.Clean(input, "")
	twice := n.Clean(once, "")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected idempotent cleaning: first %v, second %v", once, twice)
	}
}
