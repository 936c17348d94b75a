package domain

// FindRule returns the first rule, by list order, that applies to state when the
// head reads symbol. It never mutates rules and is safe for concurrent readers.
func FindRule(rules []Rule, state string, symbol rune) (Rule, bool) {
	for _, r := range rules {
		if r.State == state && r.Read == symbol {
			return r, true
		}
	}
	return Rule{}, false
}
