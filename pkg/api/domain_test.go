package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepoSpecValidate(t *testing.T) {

	t.Run("ReturnsNilIfAllFieldsAreSet", func(t *testing.T) {

		repo := RepoSpec{Owner: "input-output-hk", Name: "cardano-wallet", Rev: "abc"}

		// act
		err := repo.Validate()

		assert.Nil(t, err)
	})

	t.Run("NamesOwnerFirstIfEverythingIsMissing", func(t *testing.T) {

		repo := RepoSpec{}

		// act
		err := repo.Validate()

		assert.EqualError(t, err, "owner missing from github payload")
	})

	t.Run("NamesMissingName", func(t *testing.T) {

		repo := RepoSpec{Owner: "input-output-hk", Rev: "abc"}

		// act
		err := repo.Validate()

		assert.EqualError(t, err, "name missing from github payload")
	})

	t.Run("NamesMissingRev", func(t *testing.T) {

		repo := RepoSpec{Owner: "input-output-hk", Name: "cardano-wallet"}

		// act
		err := repo.Validate()

		assert.EqualError(t, err, "rev missing from github payload")
	})
}

func TestTimings(t *testing.T) {

	started := time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("OnlyRecordsFirstCIStatus", func(t *testing.T) {

		timings := NewTimings(started)

		// act
		timings.MarkCIStatusCreated(started.Add(5 * time.Second))
		timings.MarkCIStatusCreated(started.Add(65 * time.Second))

		assert.Equal(t, started.Add(5*time.Second), *timings.CIStatusCreated)
	})

	t.Run("FormatsMarksWithSecondsSinceStart", func(t *testing.T) {

		timings := NewTimings(started)
		timings.MarkCIStatusCreated(started.Add(5 * time.Second))
		timings.MarkEvaluated(started.Add(90 * time.Second))

		// act
		formatted := timings.Format()

		assert.Equal(t, "2020-06-01T10:00:00Z", formatted.ActionStarted)
		assert.Equal(t, "2020-06-01T10:00:05Z", formatted.CIStatusCreated)
		assert.Equal(t, 5.0, *formatted.CIStatusSeconds)
		assert.Equal(t, "2020-06-01T10:01:30Z", formatted.Evaluated)
		assert.Equal(t, 90.0, *formatted.EvaluatedSecs)
		assert.Equal(t, "", formatted.Built)
		assert.Nil(t, formatted.BuiltSeconds)
	})

	t.Run("OmitsMissingMarksFromJSON", func(t *testing.T) {

		timings := NewTimings(started)

		// act
		data, err := json.Marshal(timings.Format())

		assert.Nil(t, err)
		assert.Equal(t, `{"actionStarted":"2020-06-01T10:00:00Z"}`, string(data))
	})
}
