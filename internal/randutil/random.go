package randutil

import (
	"math"
	"math/rand/v2"
	"strings"
)

var leftNames = []string{
	"brave", "calm", "eager", "gentle", "kind", "proud", "quiet", "sharp", "wise", "zealous",
	"bold", "clever", "curious", "daring", "focused", "graceful", "humble", "jolly", "lively", "merry",
	"patient", "quick", "resourceful", "steady", "thoughtful", "trusty", "vivid", "witty", "zesty", "cheerful",
}

var rightNames = []string{
	"builder", "creator", "dreamer", "explorer", "friend", "helper", "leader", "maker", "seeker", "thinker",
	"artisan", "pathfinder", "innovator", "navigator", "observer", "planner", "storyteller", "strategist", "tinkerer", "visionary",
	"adventurer", "collaborator", "discoverer", "engineer", "fixer", "pioneer", "scholar", "traveler", "watcher", "worker",
}

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	maxExtraChars  = 18
	sentenceWords  = 6
	maxPositiveInt = math.MaxInt32
)

// Rand generates random field values. It is not safe for concurrent use.
type Rand struct {
	r *rand.Rand
}

// New returns a Rand seeded with seed. The same seed yields the same sequence.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// PositiveInt returns an integer in [1, math.MaxInt32].
func (g *Rand) PositiveInt() int {
	return 1 + g.r.IntN(maxPositiveInt)
}

// String returns a random alphanumeric string of at least minLen characters.
func (g *Rand) String(minLen int) string {
	if minLen < 1 {
		minLen = 1
	}
	return g.chars(minLen + g.r.IntN(maxExtraChars))
}

// Sentence returns a few random words ending with a period.
func (g *Rand) Sentence() string {
	words := make([]string, sentenceWords)
	for i := range words {
		if i%2 == 0 {
			words[i] = leftNames[g.r.IntN(len(leftNames))]
		} else {
			words[i] = rightNames[g.r.IntN(len(rightNames))]
		}
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// Member returns a random element of members, or nil if members is empty.
func (g *Rand) Member(members []any) any {
	if len(members) == 0 {
		return nil
	}
	return members[g.r.IntN(len(members))]
}

func (g *Rand) chars(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[g.r.IntN(len(charset))]
	}
	return string(b)
}
