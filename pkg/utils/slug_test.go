package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Kit 3 Camisas Ibiza":            "kit-3-camisas-ibiza",
		"Conjunto Regata & Saia Longa":   "conjunto-regata-saia-longa",
		"Vestido Alça Fina — Vermelho":   "vestido-alca-fina-vermelho",
		"  espaços   em   excesso  ":     "espacos-em-excesso",
		"Promoção!!!":                    "promocao",
		"UPPER lower MiXeD":              "upper-lower-mixed",
	}

	for input, want := range cases {
		if got := GenerateSlug(input); got != want {
			t.Fatalf("GenerateSlug(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestGenerateSlugEmptyInput(t *testing.T) {
	if got := GenerateSlug(""); got != "" {
		t.Fatalf("expected empty slug for empty input, got %q", got)
	}
}
