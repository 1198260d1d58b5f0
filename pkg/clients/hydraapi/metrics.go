package hydraapi

import (
	"context"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/rvl/hydra-build-products-action/pkg/api"
)

// NewMetricsClient returns a new instance of a metrics Client.
func NewMetricsClient(c Client, requestCount metrics.Counter, requestLatency metrics.Histogram) Client {
	return &metricsClient{c, requestCount, requestLatency}
}

type metricsClient struct {
	Client         Client
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (c *metricsClient) GetEvaluation(ctx context.Context, evaluationURL string) (evaluation *Evaluation, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetEvaluation", begin, err)
	}(time.Now())

	return c.Client.GetEvaluation(ctx, evaluationURL)
}

func (c *metricsClient) GetBuild(ctx context.Context, buildID int) (build *Build, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetBuild", begin, err)
	}(time.Now())

	return c.Client.GetBuild(ctx, buildID)
}

func (c *metricsClient) GetJobsetEvaluations(ctx context.Context, project, jobset, page string) (evaluations *JobsetEvaluations, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetJobsetEvaluations", begin, err)
	}(time.Now())

	return c.Client.GetJobsetEvaluations(ctx, project, jobset, page)
}

func (c *metricsClient) GetEvaluationPage(ctx context.Context, evaluationID int) (html string, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetEvaluationPage", begin, err)
	}(time.Now())

	return c.Client.GetEvaluationPage(ctx, evaluationID)
}
