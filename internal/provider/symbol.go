package provider

import (
	"regexp"
	"strings"
)

var tokyoCode = regexp.MustCompile(`^\d{4}$`)

// SymbolMap translates the caller's ticker code into the provider's symbol.
// Explicit overrides win; otherwise, with TokyoSuffix set, bare 4-digit TSE
// codes get the ".T" suffix (7203 -> 7203.T).
type SymbolMap struct {
	overrides   map[string]string
	tokyoSuffix bool
}

// NewSymbolMap builds a SymbolMap; override keys are matched case-insensitively.
func NewSymbolMap(overrides map[string]string, tokyoSuffix bool) SymbolMap {
	m := SymbolMap{overrides: make(map[string]string, len(overrides)), tokyoSuffix: tokyoSuffix}
	for k, v := range overrides {
		m.overrides[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return m
}

// Symbol returns the provider symbol for code.
func (m SymbolMap) Symbol(code string) string {
	code = strings.TrimSpace(code)
	if s, ok := m.overrides[strings.ToUpper(code)]; ok && s != "" {
		return s
	}
	if m.tokyoSuffix && tokyoCode.MatchString(code) {
		return code + ".T"
	}
	return code
}
