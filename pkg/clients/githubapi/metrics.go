package githubapi

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

func (c *metricsClient) GetCommitStatuses(ctx context.Context, repo api.RepoSpec, page int) (statuses []*Status, hasNextPage bool, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetCommitStatuses", begin, err)
	}(time.Now())

	return c.Client.GetCommitStatuses(ctx, repo, page)
}
