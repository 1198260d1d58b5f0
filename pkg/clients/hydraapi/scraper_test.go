package hydraapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrapeEvaluationPage(t *testing.T) {

	t.Run("ReturnsBuildIdsOfRequestedJobs", func(t *testing.T) {

		page, err := os.ReadFile(filepath.Join("testdata", "eval.html"))
		assert.Nil(t, err)

		jobs := []string{"cardano-wallet-linux64", "cardano-wallet-macos64", "cardano-wallet-win64"}

		// act
		buildIDs, err := ScrapeEvaluationPage(jobs, string(page))

		assert.Nil(t, err)
		assert.Equal(t, map[string]int{
			"cardano-wallet-linux64": 6259993,
			"cardano-wallet-macos64": 6259982,
			"cardano-wallet-win64":   6259976,
		}, buildIDs)
	})

	t.Run("OmitsJobsNotOnPage", func(t *testing.T) {

		page, err := os.ReadFile(filepath.Join("testdata", "eval.html"))
		assert.Nil(t, err)

		// act
		buildIDs, err := ScrapeEvaluationPage([]string{"cardano-wallet-linux64", "cardano-node-linux64"}, string(page))

		assert.Nil(t, err)
		assert.Equal(t, map[string]int{"cardano-wallet-linux64": 6259993}, buildIDs)
	})

	t.Run("KeepsFirstRowForJob", func(t *testing.T) {

		page := `<table>
			<tr><td><a href="/build/1">1</a></td><td><a href="/job/p/j/linux64">linux64</a></td></tr>
			<tr><td><a href="/build/2">2</a></td><td><a href="/job/p/j/linux64">linux64</a></td></tr>
			<tr><td><a href="/build/3">3</a></td><td><a href="/job/p/j/win64">win64</a></td></tr>
		</table>`

		// act
		buildIDs, err := ScrapeEvaluationPage([]string{"linux64", "win64"}, page)

		assert.Nil(t, err)
		assert.Equal(t, map[string]int{"linux64": 1, "win64": 3}, buildIDs)
	})
}
