package githubapi

import (
	"context"

	"github.com/rvl/hydra-build-products-action/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "githubapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetCommitStatuses(ctx context.Context, repo api.RepoSpec, page int) (statuses []*Status, hasNextPage bool, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetCommitStatuses", err) }()

	return c.Client.GetCommitStatuses(ctx, repo, page)
}
