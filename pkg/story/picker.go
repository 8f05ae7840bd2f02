package story

import (
	"fmt"
	"math/rand/v2"
)

// NewRand returns a generator for Pick. A zero seed draws a random one.
func NewRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed)), seed
}

// Pick returns one template of genre g chosen uniformly with rng.
// An empty genre list is a broken catalog and panics.
func Pick(c *Catalog, g Genre, rng *rand.Rand) string {
	stories := c.Stories(g)
	if len(stories) == 0 {
		panic(fmt.Sprintf("story: all story types should have at least one story, %s has none", g))
	}
	return stories[rng.IntN(len(stories))]
}
