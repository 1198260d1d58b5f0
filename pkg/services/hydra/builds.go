package hydra

import (
	"context"
	"sync"

	foundation "github.com/estafette/estafette-foundation"
	"github.com/rs/zerolog/log"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// LocateBuilds fetches the builds of an evaluation for the given jobs, or all of its builds
func (s *service) LocateBuilds(ctx context.Context, evaluation *hydraapi.Evaluation, jobs []string, all bool) (builds hydraapi.Builds, err error) {

	if all {
		return s.fetchAllBuilds(ctx, evaluation)
	}

	builds = hydraapi.Builds{}
	if len(jobs) == 0 {
		return builds, nil
	}

	skip := map[int]bool{}
	if s.config.Hydra.ScrapeEvaluationPage {
		skip, err = s.locateBuildsFromEvaluationPage(ctx, evaluation, jobs, builds)
		if err != nil {
			return nil, err
		}
		if len(builds) == len(jobs) {
			return builds, nil
		}
	}

	for _, buildID := range evaluation.Builds {
		if skip[buildID] {
			continue
		}

		build, err := s.hydraapiClient.GetBuild(ctx, buildID)
		if err != nil {
			return nil, err
		}

		if !foundation.StringArrayContains(jobs, build.Job) {
			continue
		}
		if _, found := builds[build.Job]; found {
			continue
		}

		log.Info().Msgf("Found job %v", build.Job)
		builds[build.Job] = build
		if len(builds) == len(jobs) {
			log.Info().Msg("All jobs found")
			break
		}
	}

	return builds, nil
}

// locateBuildsFromEvaluationPage adds builds for the jobs listed on the evaluation page and returns the ids it fetched
func (s *service) locateBuildsFromEvaluationPage(ctx context.Context, evaluation *hydraapi.Evaluation, jobs []string, builds hydraapi.Builds) (fetched map[int]bool, err error) {

	fetched = map[int]bool{}

	page, err := s.hydraapiClient.GetEvaluationPage(ctx, evaluation.ID)
	if err != nil {
		return nil, err
	}

	buildIDs, err := hydraapi.ScrapeEvaluationPage(jobs, page)
	if err != nil {
		return nil, err
	}

	for _, job := range jobs {
		buildID, ok := buildIDs[job]
		if !ok {
			log.Info().Msgf("Job %v not found on evaluation page, falling back to fetching builds", job)
			continue
		}

		build, err := s.hydraapiClient.GetBuild(ctx, buildID)
		if err != nil {
			return nil, err
		}
		if build.Job != job {
			log.Warn().Msgf("Build %v on evaluation page is for job %v instead of %v, falling back to fetching builds", buildID, build.Job, job)
			continue
		}
		fetched[buildID] = true
		builds[job] = build
	}

	return fetched, nil
}

func (s *service) fetchAllBuilds(ctx context.Context, evaluation *hydraapi.Evaluation) (builds hydraapi.Builds, err error) {

	builds = hydraapi.Builds{}
	var mutex sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(s.config.Polling.Concurrency))

	var acquireErr error
	for _, buildID := range evaluation.Builds {
		buildID := buildID
		if acquireErr = sem.Acquire(ctx, 1); acquireErr != nil {
			break
		}

		g.Go(func() error {
			defer sem.Release(1)

			build, err := s.hydraapiClient.GetBuild(ctx, buildID)
			if err != nil {
				return err
			}

			mutex.Lock()
			defer mutex.Unlock()
			builds[build.Job] = build

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}
	if acquireErr != nil {
		return nil, acquireErr
	}

	return builds, nil
}
