package hydra

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/githubapi"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
)

// NewMetricsService returns a new instance of a metrics Service.
func NewMetricsService(s Service, requestCount metrics.Counter, requestLatency metrics.Histogram) Service {
	return &metricsService{s, requestCount, requestLatency}
}

type metricsService struct {
	Service        Service
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (s *metricsService) FetchStatuses(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, page int) (statuses []*githubapi.Status, hasNextPage bool, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "FetchStatuses", begin, err)
	}(time.Now())

	return s.Service.FetchStatuses(ctx, repo, statusName, previous, page)
}

func (s *metricsService) ResolveEvaluation(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, onPending func(), page int) (evaluation *hydraapi.Evaluation, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "ResolveEvaluation", begin, err)
	}(time.Now())

	return s.Service.ResolveEvaluation(ctx, repo, statusName, previous, onPending, page)
}

func (s *metricsService) FindEvaluationByInput(ctx context.Context, repo api.RepoSpec, project, jobset string) (evaluation *hydraapi.Evaluation, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "FindEvaluationByInput", begin, err)
	}(time.Now())

	return s.Service.FindEvaluationByInput(ctx, repo, project, jobset)
}

func (s *metricsService) LocateBuilds(ctx context.Context, evaluation *hydraapi.Evaluation, jobs []string, all bool) (builds hydraapi.Builds, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "LocateBuilds", begin, err)
	}(time.Now())

	return s.Service.LocateBuilds(ctx, evaluation, jobs, all)
}

func (s *metricsService) WaitForBuild(ctx context.Context, build *hydraapi.Build, buildProducts []int) (buildProductURLs []string, finished *hydraapi.Build, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "WaitForBuild", begin, err)
	}(time.Now())

	return s.Service.WaitForBuild(ctx, build, buildProducts)
}

func (s *metricsService) Run(ctx context.Context, params RunParams) (result *Result, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "Run", begin, err)
	}(time.Now())

	return s.Service.Run(ctx, params)
}
