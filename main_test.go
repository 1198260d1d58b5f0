package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/githubapi"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
	"github.com/rvl/hydra-build-products-action/pkg/services/hydra"
	"github.com/stretchr/testify/assert"
)

func testConfig() *api.ActionConfig {
	config := &api.ActionConfig{
		Hydra: &api.HydraConfig{
			URL:           "https://hydra.iohk.io",
			Jobs:          []string{"linux64"},
			BuildProducts: []int{1},
		},
	}
	config.SetDefaults()
	return config
}

var actionContext = api.ActionContext{
	Repo:           api.RepoSpec{Owner: "input-output-hk", Name: "cardano-wallet", Rev: "5b3e"},
	PreviousStatus: &api.PreviousStatus{Context: "ci/hydra-eval", State: "success", TargetURL: "https://hydra.iohk.io/eval/10"},
	EventName:      "status",
}

func TestCreateService(t *testing.T) {

	t.Run("WiresClientsAndServiceDecorators", func(t *testing.T) {

		// act
		service := createService(testConfig())

		assert.NotNil(t, service)
	})
}

func TestRunAction(t *testing.T) {

	t.Run("PassesActionContextAndDownloadsToRun", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		hydraService := hydra.NewMockService(ctrl)
		var stdout bytes.Buffer

		hydraService.
			EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params hydra.RunParams) (*hydra.Result, error) {
				assert.Equal(t, actionContext.Repo, params.Repo)
				assert.Equal(t, &githubapi.Status{Context: "ci/hydra-eval", State: "success", TargetURL: "https://hydra.iohk.io/eval/10"}, params.PreviousStatus)
				assert.Nil(t, params.PreviousEvaluation)
				assert.Nil(t, params.PreviousBuilds)
				assert.Equal(t, []api.Download{{Job: "linux64", BuildProducts: []int{1}}}, params.Downloads)
				return &hydra.Result{
					Evaluation:       &hydraapi.Evaluation{ID: 10, Builds: []int{2}},
					EvalURL:          "https://hydra.iohk.io/eval/10",
					BuildURLs:        []string{"https://hydra.iohk.io/build/2"},
					BuildProductURLs: []string{"https://hydra.iohk.io/build/2/download/1/cardano-wallet.tar.gz"},
					Timings:          api.NewTimings(time.Date(2020, 5, 1, 10, 0, 0, 0, time.UTC)),
				}, nil
			})

		// act
		err := runAction(context.Background(), testConfig(), actionContext, hydraService, api.NewOutputWriter("", &stdout))

		assert.Nil(t, err)
		assert.True(t, strings.Contains(stdout.String(), "evalURL=https://hydra.iohk.io/eval/10\n"))
		assert.True(t, strings.Contains(stdout.String(), "buildProducts=https://hydra.iohk.io/build/2/download/1/cardano-wallet.tar.gz\n"))
		assert.True(t, strings.Contains(stdout.String(), "timings={\"actionStarted\":\"2020-05-01T10:00:00Z\"}\n"))
	})

	t.Run("ParsesEvaluationAndBuildsFromEarlierRun", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := testConfig()
		config.Hydra.EvaluationJSON = `{"id":10,"builds":[2]}`
		config.Hydra.BuildsJSON = `{"linux64":{"id":2,"job":"linux64","finished":1,"buildstatus":0}}`
		hydraService := hydra.NewMockService(ctrl)

		hydraService.
			EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, params hydra.RunParams) (*hydra.Result, error) {
				assert.Equal(t, 10, params.PreviousEvaluation.ID)
				assert.Equal(t, 2, params.PreviousBuilds["linux64"].ID)
				assert.True(t, params.PreviousBuilds["linux64"].IsSuccessful())
				return &hydra.Result{Timings: api.NewTimings(time.Now())}, nil
			})

		// act
		err := runAction(context.Background(), config, api.ActionContext{}, hydraService, api.NewOutputWriter("", &bytes.Buffer{}))

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrorForIncompleteRepoBeforeRunning", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		hydraService := hydra.NewMockService(ctrl)

		// act
		err := runAction(context.Background(), testConfig(), api.ActionContext{Repo: api.RepoSpec{Owner: "input-output-hk", Name: "cardano-wallet"}}, hydraService, api.NewOutputWriter("", &bytes.Buffer{}))

		assert.NotNil(t, err)
		assert.Equal(t, "rev missing from github payload", err.Error())
	})

	t.Run("ReturnsErrorForInvalidEvaluationJSON", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		config := testConfig()
		config.Hydra.EvaluationJSON = `{"id":`
		hydraService := hydra.NewMockService(ctrl)

		// act
		err := runAction(context.Background(), config, actionContext, hydraService, api.NewOutputWriter("", &bytes.Buffer{}))

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorFromRunWithoutWritingOutputs", func(t *testing.T) {

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		hydraService := hydra.NewMockService(ctrl)
		var stdout bytes.Buffer

		hydraService.
			EXPECT().
			Run(gomock.Any(), gomock.Any()).
			Return(nil, hydra.ErrJobNotFound)

		// act
		err := runAction(context.Background(), testConfig(), actionContext, hydraService, api.NewOutputWriter("", &stdout))

		assert.True(t, errors.Is(err, hydra.ErrJobNotFound))
		assert.Equal(t, "", stdout.String())
	})
}
