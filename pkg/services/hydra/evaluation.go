package hydra

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/githubapi"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
)

// ResolveEvaluation polls the commit statuses until a successful one points at an evaluation with builds.
// Evaluations without builds are discarded, since hydra sometimes reports success for those.
func (s *service) ResolveEvaluation(ctx context.Context, repo api.RepoSpec, statusName string, previous *githubapi.Status, onPending func(), page int) (evaluation *hydraapi.Evaluation, err error) {

	attempts := 0

	for {
		statuses, hasNextPage, err := s.FetchStatuses(ctx, repo, statusName, previous, page)
		if err != nil {
			return nil, err
		}
		// the triggering status is only relevant the first time around
		previous = nil

		if len(statuses) > 0 && onPending != nil {
			onPending()
		}

		p := partitionStatuses(statuses)

		log.Info().
			Str("repo", repo.String()).
			Int("page", page).
			Msgf("Found %v eval statuses matching %v: successful=%v pending=%v failed=%v", len(statuses), statusName, len(p.successful), len(p.pending), len(p.failed))

		for _, status := range p.successful {
			evaluation, err := s.hydraapiClient.GetEvaluation(ctx, status.TargetURL)
			if err != nil {
				return nil, err
			}
			if !evaluation.IsGhost() {
				log.Info().Msgf("Eval %v is successful and has %v builds", evaluation.ID, len(evaluation.Builds))
				return evaluation, nil
			}
			log.Info().Str("targetURL", status.TargetURL).Msg("Discarding ghost eval status")
		}

		if len(statuses) == 0 && hasNextPage {
			if page == 0 {
				page = 1
			}
			page++
			log.Info().Msgf("Eval not found - trying page %v", page)
			continue
		}

		switch {
		case len(statuses) == 0:
			log.Info().Msg("Eval not found, and no more pages from GitHub - trying again from first page...")
		case len(p.successful) > 0:
			log.Info().Msg("Need a real successful eval - trying again...")
		case len(p.pending) > 0:
			log.Info().Msg("Eval is pending - trying again...")
		default:
			log.Info().Msg("Eval is currently failed - trying again...")
		}

		attempts++
		if exhausted(attempts, s.config.Polling.MaxEvaluationAttempts) {
			return nil, errors.Wrapf(ErrEvaluationNotFound, "Gave up on %v after %v attempts", repo, attempts)
		}

		log.Info().Msgf("Waiting %v for updated CI status.", s.evaluationBackoff())
		if err := s.sleeper.Sleep(ctx, s.evaluationBackoff()); err != nil {
			return nil, err
		}
		page = 0
	}
}

// FindEvaluationByInput pages through the evaluations of a jobset for one built from the commit
func (s *service) FindEvaluationByInput(ctx context.Context, repo api.RepoSpec, project, jobset string) (evaluation *hydraapi.Evaluation, err error) {

	attempts := 0
	page := ""

	for {
		evaluations, err := s.hydraapiClient.GetJobsetEvaluations(ctx, project, jobset, page)
		if err != nil {
			return nil, err
		}

		for _, e := range evaluations.Evals {
			if !e.HasInput(repo.Name, repo.Rev) {
				continue
			}
			if e.IsGhost() {
				log.Info().Msgf("Discarding ghost eval %v", e.ID)
				continue
			}
			log.Info().Msgf("Eval %v of %v:%v has input %v at %v", e.ID, project, jobset, repo.Name, repo.Rev)
			return e, nil
		}

		if evaluations.Next != "" {
			page = evaluations.Next
			continue
		}

		attempts++
		if exhausted(attempts, s.config.Polling.MaxEvaluationAttempts) {
			return nil, errors.Wrapf(ErrEvaluationNotFound, "Gave up on %v in jobset %v:%v after %v attempts", repo, project, jobset, attempts)
		}

		log.Info().Msgf("Eval not found in jobset %v:%v - waiting %v before trying again from first page...", project, jobset, s.evaluationBackoff())
		if err := s.sleeper.Sleep(ctx, s.evaluationBackoff()); err != nil {
			return nil, err
		}
		page = ""
	}
}
