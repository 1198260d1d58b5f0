package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverrideFromEnv(t *testing.T) {

	t.Run("KeepsConfigIfNoEnvironmentVariableHasPrefix", func(t *testing.T) {

		config := &ActionConfig{Polling: &PollingConfig{Concurrency: 3}}
		environmentVariables := []string{"HYDRA_URL=https://hydra.iohk.io", "INPUT_JOBS=linux64"}

		// act
		err := OverrideFromEnv(config, "HYDRA_ACTION", environmentVariables)

		assert.Nil(t, err)
		assert.Nil(t, config.Hydra)
		assert.Equal(t, 3, config.Polling.Concurrency)
	})

	t.Run("OverridesFieldOfConfigSectionAndKeepsTheOthers", func(t *testing.T) {

		config := &ActionConfig{Polling: &PollingConfig{Concurrency: 3, MaxBuildAttempts: 10}}
		environmentVariables := []string{"HYDRA_ACTION_POLLING_MAXBUILDATTEMPTS=20"}

		// act
		err := OverrideFromEnv(config, "HYDRA_ACTION", environmentVariables)

		assert.Nil(t, err)
		assert.Equal(t, 20, config.Polling.MaxBuildAttempts)
		assert.Equal(t, 3, config.Polling.Concurrency)
	})

	t.Run("CreatesMissingConfigSectionOnlyIfOneOfItsFieldsIsSet", func(t *testing.T) {

		config := &ActionConfig{}
		environmentVariables := []string{"HYDRA_ACTION_BADGE_ENABLE=true"}

		// act
		err := OverrideFromEnv(config, "HYDRA_ACTION", environmentVariables)

		assert.Nil(t, err)
		assert.True(t, config.Badge.Enable)
		assert.Nil(t, config.Hydra)
		assert.Nil(t, config.Polling)
	})

	t.Run("SplitsJobsOnWhitespaceCommasAndNewlines", func(t *testing.T) {

		config := &ActionConfig{}
		environmentVariables := []string{"HYDRA_ACTION_HYDRA_JOBS=linux64 macos64,\nwin64"}

		// act
		err := OverrideFromEnv(config, "HYDRA_ACTION", environmentVariables)

		assert.Nil(t, err)
		assert.Equal(t, []string{"linux64", "macos64", "win64"}, config.Hydra.Jobs)
	})

	t.Run("ParsesBuildProductNumbers", func(t *testing.T) {

		config := &ActionConfig{}
		environmentVariables := []string{"HYDRA_ACTION_HYDRA_BUILDPRODUCTS=1, 3"}

		// act
		err := OverrideFromEnv(config, "HYDRA_ACTION", environmentVariables)

		assert.Nil(t, err)
		assert.Equal(t, []int{1, 3}, config.Hydra.BuildProducts)
	})

	t.Run("SetsResolveMode", func(t *testing.T) {

		config := &ActionConfig{}
		environmentVariables := []string{"HYDRA_ACTION_HYDRA_RESOLVEBY=jobset"}

		// act
		err := OverrideFromEnv(config, "HYDRA_ACTION", environmentVariables)

		assert.Nil(t, err)
		assert.Equal(t, ResolveByJobset, config.Hydra.ResolveBy)
	})

	t.Run("ReturnsErrorNamingFieldForUnparsableNumber", func(t *testing.T) {

		config := &ActionConfig{}
		environmentVariables := []string{"HYDRA_ACTION_POLLING_CONCURRENCY=lots"}

		// act
		err := OverrideFromEnv(config, "HYDRA_ACTION", environmentVariables)

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "Concurrency")
	})

	t.Run("ReturnsErrNotPtrForConfigPassedByValue", func(t *testing.T) {

		environmentVariables := []string{"HYDRA_ACTION_BADGE_ENABLE=true"}

		// act
		err := OverrideFromEnv(ActionConfig{}, "HYDRA_ACTION", environmentVariables)

		assert.True(t, errors.Is(err, ErrNotPtr))
	})
}

func TestReadActionInputs(t *testing.T) {

	t.Run("MapsInputEnvironmentVariablesToInputs", func(t *testing.T) {

		environmentVariables := []string{
			"INPUT_HYDRA=https://hydra.iohk.io",
			"INPUT_STATUSNAME=ci/hydra-eval",
			"INPUT_JOBS=linux64 win64",
			"INPUT_REQUIREDJOB=required",
			"INPUT_BADGE=true",
			"HYDRA_URL=https://ignored.example.com",
		}

		// act
		inputs, err := ReadActionInputs(environmentVariables)

		assert.Nil(t, err)
		assert.Equal(t, "https://hydra.iohk.io", inputs.Hydra)
		assert.Equal(t, "ci/hydra-eval", inputs.StatusName)
		assert.Equal(t, "linux64 win64", inputs.Jobs)
		assert.Equal(t, "required", inputs.RequiredJob)
		assert.Equal(t, "true", inputs.Badge)
		assert.Equal(t, "", inputs.Project)
	})

	t.Run("ReadsTokenFromGithubTokenInput", func(t *testing.T) {

		// act
		inputs, err := ReadActionInputs([]string{"INPUT_GITHUB_TOKEN=ghp_abc", "INPUT_TOKEN=ignored"})

		assert.Nil(t, err)
		assert.Equal(t, "ghp_abc", inputs.Token)
	})

	t.Run("KeepsEqualSignsInEvaluationJSON", func(t *testing.T) {

		// act
		inputs, err := ReadActionInputs([]string{`INPUT_EVALUATION={"id":10,"errormsg":"a=b"}`})

		assert.Nil(t, err)
		assert.Equal(t, `{"id":10,"errormsg":"a=b"}`, inputs.Evaluation)
	})
}
