package i18n

import "testing"

func TestGetCatalogFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		locale string
		want   string
	}{
		{"", "en-US"},
		{"en-US", "en-US"},
		{"en", "en-US"},
		{"pt-BR", "pt-BR"},
		{"pt", "pt-BR"},
		{"fr-FR", "en-US"},
		{"not a locale", "en-US"},
	}
	for _, tc := range cases {
		got := GetCatalog(tc.locale).Locale()
		if got != tc.want {
			t.Fatalf("GetCatalog(%q).Locale() = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	t.Parallel()

	catalog := GetCatalog("en-US")
	msg := catalog.Format(CodeBetOutOfRange, map[string]string{"Min": "10", "Max": "10000"})
	if msg != "Bet per line must be between 10 and 10000" {
		t.Fatalf("formatted message = %q", msg)
	}
}

func TestFormatUnknownCodeReturnsCode(t *testing.T) {
	t.Parallel()

	catalog := GetCatalog("en-US")
	if msg := catalog.Format("NOT_A_CODE", nil); msg != "NOT_A_CODE" {
		t.Fatalf("formatted message = %q, want the code itself", msg)
	}
}

func TestAllCodesPresentInEveryCatalog(t *testing.T) {
	t.Parallel()

	for code := range enUSCatalog.messages {
		if _, ok := ptBRCatalog.messages[code]; !ok {
			t.Fatalf("pt-BR catalog is missing code %s", code)
		}
	}
	for code := range ptBRCatalog.messages {
		if _, ok := enUSCatalog.messages[code]; !ok {
			t.Fatalf("en-US catalog is missing code %s", code)
		}
	}
}
