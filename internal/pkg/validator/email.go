package validator

import (
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// emailCacheSize bounds the memoization cache; validation is pure, so
// entries never need invalidation.
const emailCacheSize = 100

// Conservative local-part@domain pattern: ASCII letters/digits and
// ._%+- in the local part, dot-separated domain labels, 2+ letter TLD.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var emailCache, _ = lru.New[string, bool](emailCacheSize)

// IsValidEmail reports whether addr looks like a deliverable email
// address. Results are memoized per distinct address string.
func IsValidEmail(addr string) bool {
	if addr == "" {
		return false
	}
	if valid, ok := emailCache.Get(addr); ok {
		return valid
	}
	valid := emailPattern.MatchString(addr)
	emailCache.Add(addr, valid)
	return valid
}
