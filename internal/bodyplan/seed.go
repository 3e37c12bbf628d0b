package bodyplan

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// SeedFromPhrase hashes a phrase into a generation seed. Case and surrounding
// whitespace are ignored so "Sea Slug" and " sea slug" yield the same creature.
func SeedFromPhrase(phrase string) int64 {
	h := fnv.New64a()
	h.Write([]byte(normalize(phrase)))
	return int64(h.Sum64())
}

// Name titles a specimen as "The <word>-<limbs> Creature", where word is the
// first word of the phrase and limbs the number of appendages drawn.
func Name(phrase string, p Plan) string {
	word := "specimen"
	if fields := strings.Fields(normalize(phrase)); len(fields) > 0 {
		word = fields[0]
	}
	return fmt.Sprintf("The %s-%d Creature", word, len(p.Appendages))
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
