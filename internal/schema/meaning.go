package schema

import (
	"strings"
	"unicode"
)

var abbreviations = map[string]string{
	// Common Nouns
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "cnt": "count", "qty": "quantity",
	"addr": "address", "tel": "phone", "hp": "phone", "ph": "phone",
	"biz": "business", "pwd": "password", "passwd": "password", "pw": "password",
	"img": "image", "zip": "zipcode", "post": "zipcode",
	"msg": "message", "txt": "text", "tit": "title", "subj": "subject",
	"doc": "document", "usr": "user", "emp": "employee",
	"dept": "department", "grp": "group", "cat": "category",
	"loc": "location", "lat": "latitude", "lng": "longitude", "lon": "longitude",
	"geo": "geometry", "st": "street", "prov": "province", "dist": "district",
	"bal": "balance", "calc": "calculation", "rst": "result", "rslt": "result",
	"std": "standard", "avg": "average",

	// Verbs / Status
	"reg": "registered", "mod": "modified", "del": "deleted", "cre": "created",
	"upd": "updated", "yn": "yes/no", "stat": "status", "sts": "status",
	"typ": "type", "val": "value",
	"ord": "order", "seq": "sequence", "idx": "index",
	"bg": "background", "fg": "foreground",
	"brd": "board", "art": "article", "auth": "authority",
	"flg": "flag",
}

// HumanizeName turns a column identifier into a readable display name:
// snake_case and camelCase are split into words, known abbreviations are
// expanded and the result is lower-cased ("CustomerId" → "customer id",
// "reg_dt" → "registered date").
func HumanizeName(colName string) string {
	var words []string
	for _, part := range splitIdentifier(colName) {
		p := strings.ToLower(part)
		if full, ok := abbreviations[p]; ok {
			p = full
		}
		words = append(words, p)
	}
	if len(words) == 0 {
		return colName
	}
	return strings.Join(words, " ")
}

func splitIdentifier(name string) []string {
	var parts []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			parts = append(parts, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && len(cur) > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// "customerId" splits before I; "HTTPServer" splits before S.
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return parts
}
