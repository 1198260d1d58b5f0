package hydraapi

import (
	"context"

	"github.com/rvl/hydra-build-products-action/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "hydraapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetEvaluation(ctx context.Context, evaluationURL string) (evaluation *Evaluation, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetEvaluation", err) }()

	return c.Client.GetEvaluation(ctx, evaluationURL)
}

func (c *loggingClient) GetBuild(ctx context.Context, buildID int) (build *Build, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetBuild", err) }()

	return c.Client.GetBuild(ctx, buildID)
}

func (c *loggingClient) GetJobsetEvaluations(ctx context.Context, project, jobset, page string) (evaluations *JobsetEvaluations, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetJobsetEvaluations", err) }()

	return c.Client.GetJobsetEvaluations(ctx, project, jobset, page)
}

func (c *loggingClient) GetEvaluationPage(ctx context.Context, evaluationID int) (html string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetEvaluationPage", err) }()

	return c.Client.GetEvaluationPage(ctx, evaluationID)
}
