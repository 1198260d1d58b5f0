package hydra

import (
	"context"

	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/githubapi"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "hydra"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) FetchStatuses(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, page int) (statuses []*githubapi.Status, hasNextPage bool, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "FetchStatuses", err) }()

	return s.Service.FetchStatuses(ctx, repo, statusName, previous, page)
}

func (s *loggingService) ResolveEvaluation(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, onPending func(), page int) (evaluation *hydraapi.Evaluation, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "ResolveEvaluation", err) }()

	return s.Service.ResolveEvaluation(ctx, repo, statusName, previous, onPending, page)
}

func (s *loggingService) FindEvaluationByInput(ctx context.Context, repo api.RepoSpec, project, jobset string) (evaluation *hydraapi.Evaluation, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "FindEvaluationByInput", err) }()

	return s.Service.FindEvaluationByInput(ctx, repo, project, jobset)
}

func (s *loggingService) LocateBuilds(ctx context.Context, evaluation *hydraapi.Evaluation, jobs []string, all bool) (builds hydraapi.Builds, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "LocateBuilds", err) }()

	return s.Service.LocateBuilds(ctx, evaluation, jobs, all)
}

func (s *loggingService) WaitForBuild(ctx context.Context, build *hydraapi.Build, buildProducts []int) (buildProductURLs []string, finished *hydraapi.Build, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "WaitForBuild", err, ErrBuildNotFinished) }()

	return s.Service.WaitForBuild(ctx, build, buildProducts)
}

func (s *loggingService) Run(ctx context.Context, params RunParams) (result *Result, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "Run", err) }()

	return s.Service.Run(ctx, params)
}
