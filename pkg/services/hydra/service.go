package hydra

import (
	"context"
	"errors"
	"time"

	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/githubapi"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
)

var (
	ErrEvaluationNotFound   = errors.New("no evaluation with builds found for commit")
	ErrBuildNotFinished     = errors.New("build did not finish")
	ErrBuildProductNotFound = errors.New("build product not found")
	ErrJobNotFound          = errors.New("job not found in evaluation")
)

// Service resolves the hydra evaluation and builds for a commit
//
//go:generate mockgen -package=hydra -destination ./mock.go -source=service.go
type Service interface {
	FetchStatuses(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, page int) (statuses []*githubapi.Status, hasNextPage bool, err error)
	ResolveEvaluation(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, onPending func(), page int) (evaluation *hydraapi.Evaluation, err error)
	FindEvaluationByInput(ctx context.Context, repo api.RepoSpec, project, jobset string) (evaluation *hydraapi.Evaluation, err error)
	LocateBuilds(ctx context.Context, evaluation *hydraapi.Evaluation, jobs []string, all bool) (builds hydraapi.Builds, err error)
	WaitForBuild(ctx context.Context, build *hydraapi.Build, buildProducts []int) (buildProductURLs []string, finished *hydraapi.Build, err error)
	Run(ctx context.Context, params RunParams) (result *Result, err error)
}

// NewService returns a new hydra.Service
func NewService(config *api.ActionConfig, githubapiClient githubapi.Client, hydraapiClient hydraapi.Client, sleeper api.Sleeper, jitter api.JitterFunc) Service {
	return &service{
		config:          config,
		githubapiClient: githubapiClient,
		hydraapiClient:  hydraapiClient,
		sleeper:         sleeper,
		jitter:          jitter,
		now:             time.Now,
	}
}

type service struct {
	config          *api.ActionConfig
	githubapiClient githubapi.Client
	hydraapiClient  hydraapi.Client
	sleeper         api.Sleeper
	jitter          api.JitterFunc
	now             func() time.Time
}

func (s *service) evaluationBackoff() time.Duration {
	return time.Duration(s.config.Polling.EvaluationBackoffSeconds) * time.Second
}

func (s *service) buildBackoff() time.Duration {
	return time.Duration(s.config.Polling.BuildBackoffSeconds)*time.Second + s.jitter(time.Duration(s.config.Polling.BuildJitterSeconds)*time.Second)
}

// exhausted returns true once the number of attempts reaches a positive maximum
func exhausted(attempts, maxAttempts int) bool {
	return maxAttempts > 0 && attempts >= maxAttempts
}
