package trivia

import "math/rand/v2"

// pickFunc returns a uniform random index in [0, n). Injectable so tests can
// pin the selection.
type pickFunc func(n int) int

// selectNext picks one question uniformly at random from candidates, or
// returns nil when the candidate set is empty. The selector is stateless;
// repetition avoidance is the caller's job via the exclusion filters.
func selectNext(candidates []Question, pick pickFunc) *Question {
	if len(candidates) == 0 {
		return nil
	}
	if pick == nil {
		pick = rand.IntN
	}
	q := candidates[pick(len(candidates))]
	return &q
}
