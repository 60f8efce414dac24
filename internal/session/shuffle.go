package session

import (
	"math/rand"

	"github.com/thtahamid/active-recall-test/internal/model"
)

// shuffleGrid tags and concatenates targets and decoys, then applies a
// Fisher-Yates permutation. Called once per session; the result is memoized
// on the controller so the tile order never shifts under the participant.
func shuffleGrid(targets []model.Word, decoys []model.Decoy, rnd *rand.Rand) []model.GridItem {
	grid := make([]model.GridItem, 0, len(targets)+len(decoys))
	for _, w := range targets {
		grid = append(grid, model.GridItem{
			Text:     w.Text,
			Language: w.Language,
			IsTarget: true,
			Position: w.Position,
		})
	}
	for _, d := range decoys {
		grid = append(grid, model.GridItem{Text: d.Text, Language: d.Language})
	}
	for i := len(grid) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		grid[i], grid[j] = grid[j], grid[i]
	}
	return grid
}
