package githubapi

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/rvl/hydra-build-products-action/pkg/api"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "githubapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetCommitStatuses(ctx context.Context, repo api.RepoSpec, page int) (statuses []*Status, hasNextPage bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetCommitStatuses"))
	defer func() { api.FinishSpanWithError(span, err) }()

	span.SetTag("repo", repo.String())
	span.SetTag("page", page)

	return c.Client.GetCommitStatuses(ctx, repo, page)
}
