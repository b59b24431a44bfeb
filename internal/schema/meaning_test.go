package schema_test

import (
	"db-audit/internal/schema"
	"testing"
)

func TestHumanizeName(t *testing.T) {
	cases := map[string]string{
		"ArtistId":    "artist id",
		"reg_dt":      "registered date",
		"cust_nm":     "cust name",
		"HTTPServer":  "http server",
		"Address2Txt": "address2 text",
		"title":       "title",
		"":            "",
	}
	for in, want := range cases {
		if got := schema.HumanizeName(in); got != want {
			t.Errorf("HumanizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
