package fallback

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// DefaultLanguage must always have an entry in the catalogue.
const DefaultLanguage = "en"

// Catalog selects pre-authored replies when the AI provider cannot be used.
type Catalog struct {
	mu      sync.Mutex
	rnd     *rand.Rand
	replies map[string][]string
}

// NewCatalog returns a catalogue backed by the built-in replies. A nil rnd
// gets a time-seeded source.
func NewCatalog(rnd *rand.Rand) *Catalog {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Catalog{rnd: rnd, replies: replies}
}

// Pick returns a random reply for language, or an English one when the
// language has no entry. Repeated calls may return different replies.
func (c *Catalog) Pick(language string) string {
	candidates := c.Candidates(language)

	c.mu.Lock()
	idx := c.rnd.IntN(len(candidates))
	c.mu.Unlock()

	return candidates[idx]
}

// Candidates returns the reply list Pick draws from for language.
func (c *Catalog) Candidates(language string) []string {
	if list, ok := c.replies[strings.ToLower(strings.TrimSpace(language))]; ok && len(list) > 0 {
		return list
	}
	return c.replies[DefaultLanguage]
}

// Covers reports whether language has its own reply list.
func (c *Catalog) Covers(language string) bool {
	_, ok := c.replies[strings.ToLower(strings.TrimSpace(language))]
	return ok
}
