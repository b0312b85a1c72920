package i18n

import "testing"

func TestGetCatalogFallback(t *testing.T) {
	base := GetCatalog("en-US")
	if base == nil {
		t.Fatal("expected base catalog")
	}
	fallback := GetCatalog("missing-locale")
	if fallback != base {
		t.Fatal("expected fallback to en-US catalog")
	}
	if GetCatalog("") != base {
		t.Fatal("expected empty locale to resolve to en-US")
	}
}

func TestGetCatalogMatchesAcceptLanguage(t *testing.T) {
	cat := GetCatalog("pt-PT,pt;q=0.9,en;q=0.5")
	if cat.Locale() != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", cat.Locale())
	}
}

func TestMatchLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", BaseLocale},
		{"not a locale;;", BaseLocale},
		{"en-GB", "en-US"},
		{"pt-BR", "pt-BR"},
		{"ja-JP", BaseLocale},
	}
	for _, tc := range tests {
		if got := MatchLocale(tc.in); got != tc.want {
			t.Fatalf("MatchLocale(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuiltInCatalogsCoverSameCodes(t *testing.T) {
	for code := range enUSCatalog.messages {
		if _, ok := ptBRCatalog.messages[code]; !ok {
			t.Fatalf("pt-BR catalog missing %s", code)
		}
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	got := GetCatalog("en-US").Format(CodeSourceMismatch, map[string]string{"Source": "vrf-7"})
	if got != "Source vrf-7 is not bound to this roll" {
		t.Fatalf("format = %q", got)
	}
}

func TestFormatFallbacks(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "hello {{.Name}}",
	})

	if cat.Format("unknown", nil) != "unknown" {
		t.Fatal("expected code fallback when template missing")
	}
	if cat.Format("code", nil) != "hello <no value>" {
		t.Fatal("expected template to render missing metadata")
	}
}

func TestFormatTemplateErrorFallback(t *testing.T) {
	cat := NewCatalog("test", map[Code]string{
		"code": "{{ if .Name }}",
	})
	if cat.Format("code", map[string]string{"Name": "X"}) != "{{ if .Name }}" {
		t.Fatal("expected template fallback on parse error")
	}
}

func TestRegisterCatalog(t *testing.T) {
	custom := NewCatalog("custom", map[Code]string{"code": "ok"})
	RegisterCatalog("custom", custom)
	if got := GetCatalog("custom"); got != custom {
		t.Fatal("expected registered catalog")
	}
}
