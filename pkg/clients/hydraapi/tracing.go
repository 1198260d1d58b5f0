package hydraapi

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/rvl/hydra-build-products-action/pkg/api"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "hydraapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetEvaluation(ctx context.Context, evaluationURL string) (evaluation *Evaluation, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetEvaluation"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetEvaluation(ctx, evaluationURL)
}

func (c *tracingClient) GetBuild(ctx context.Context, buildID int) (build *Build, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetBuild"))
	defer func() { api.FinishSpanWithError(span, err) }()

	span.SetTag("build", buildID)

	return c.Client.GetBuild(ctx, buildID)
}

func (c *tracingClient) GetJobsetEvaluations(ctx context.Context, project, jobset, page string) (evaluations *JobsetEvaluations, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetJobsetEvaluations"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetJobsetEvaluations(ctx, project, jobset, page)
}

func (c *tracingClient) GetEvaluationPage(ctx context.Context, evaluationID int) (html string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetEvaluationPage"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetEvaluationPage(ctx, evaluationID)
}
