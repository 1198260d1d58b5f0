package hydra

import (
	"context"
	"sort"
	"strings"

	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/githubapi"
)

// FetchStatuses returns the statuses of a commit whose context starts with statusName, newest first;
// a matching previous status from the triggering event is returned without asking github
func (s *service) FetchStatuses(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, page int) (statuses []*githubapi.Status, hasNextPage bool, err error) {

	if previous != nil && strings.HasPrefix(previous.Context, statusName) {
		return []*githubapi.Status{previous}, false, nil
	}

	all, hasNextPage, err := s.githubapiClient.GetCommitStatuses(ctx, repo, page)
	if err != nil {
		return nil, false, err
	}

	statuses = make([]*githubapi.Status, 0, len(all))
	for _, status := range all {
		if strings.HasPrefix(status.Context, statusName) {
			statuses = append(statuses, status)
		}
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].UpdatedAt.After(statuses[j].UpdatedAt)
	})

	return statuses, hasNextPage, nil
}

type partitionedStatuses struct {
	successful []*githubapi.Status
	pending    []*githubapi.Status
	failed     []*githubapi.Status
}

func partitionStatuses(statuses []*githubapi.Status) (p partitionedStatuses) {
	for _, status := range statuses {
		switch {
		case status.IsSuccess():
			p.successful = append(p.successful, status)
		case status.IsPending():
			p.pending = append(p.pending, status)
		default:
			p.failed = append(p.failed, status)
		}
	}
	return
}
