package hydra

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/githubapi"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "hydra"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) FetchStatuses(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, page int) (statuses []*githubapi.Status, hasNextPage bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "FetchStatuses"))
	defer func() { api.FinishSpanWithError(span, err) }()

	span.SetTag("repo", repo.String())
	span.SetTag("page", page)

	return s.Service.FetchStatuses(ctx, repo, statusName, previous, page)
}

func (s *tracingService) ResolveEvaluation(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, onPending func(), page int) (evaluation *hydraapi.Evaluation, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "ResolveEvaluation"))
	defer func() { api.FinishSpanWithError(span, err) }()

	span.SetTag("repo", repo.String())

	return s.Service.ResolveEvaluation(ctx, repo, statusName, previous, onPending, page)
}

func (s *tracingService) FindEvaluationByInput(ctx context.Context, repo api.RepoSpec, project, jobset string) (evaluation *hydraapi.Evaluation, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "FindEvaluationByInput"))
	defer func() { api.FinishSpanWithError(span, err) }()

	span.SetTag("repo", repo.String())
	span.SetTag("jobset", project+":"+jobset)

	return s.Service.FindEvaluationByInput(ctx, repo, project, jobset)
}

func (s *tracingService) LocateBuilds(ctx context.Context, evaluation *hydraapi.Evaluation, jobs []string, all bool) (builds hydraapi.Builds, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "LocateBuilds"))
	defer func() { api.FinishSpanWithError(span, err) }()

	if evaluation != nil {
		span.SetTag("evaluation", evaluation.ID)
	}

	return s.Service.LocateBuilds(ctx, evaluation, jobs, all)
}

func (s *tracingService) WaitForBuild(ctx context.Context, build *hydraapi.Build, buildProducts []int) (buildProductURLs []string, finished *hydraapi.Build, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "WaitForBuild"))
	defer func() { api.FinishSpanWithError(span, err) }()

	if build != nil {
		span.SetTag("build", build.ID)
		span.SetTag("job", build.Job)
	}

	return s.Service.WaitForBuild(ctx, build, buildProducts)
}

func (s *tracingService) Run(ctx context.Context, params RunParams) (result *Result, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "Run"))
	defer func() { api.FinishSpanWithError(span, err) }()

	span.SetTag("repo", params.Repo.String())

	return s.Service.Run(ctx, params)
}
