package hydra

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/githubapi"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
	"github.com/rvl/hydra-build-products-action/pkg/services/badge"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// RunParams holds the per-run inputs that don't come from configuration
type RunParams struct {
	Repo               api.RepoSpec
	PreviousStatus     *githubapi.Status
	PreviousEvaluation *hydraapi.Evaluation
	PreviousBuilds     hydraapi.Builds
	Downloads          []api.Download
}

// Result is everything a successful run produces
type Result struct {
	Evaluation       *hydraapi.Evaluation
	EvalURL          string
	Builds           hydraapi.Builds
	BuildURLs        []string
	BuildProductURLs []string
	Timings          *api.Timings
	Badge            string
}

// Run resolves the evaluation, locates and waits for the builds of the requested jobs and assembles the result
func (s *service) Run(ctx context.Context, params RunParams) (result *Result, err error) {

	timings := api.NewTimings(s.now())
	onPending := func() {
		timings.MarkCIStatusCreated(s.now())
	}

	evaluation, err := s.evaluation(ctx, params, onPending)
	if err != nil {
		return
	}
	timings.MarkEvaluated(s.now())

	downloads := s.downloadsWithRequiredJob(params.Downloads)
	jobs := make([]string, 0, len(downloads))
	for _, d := range downloads {
		jobs = append(jobs, d.Job)
	}

	builds, err := s.builds(ctx, params, evaluation, jobs)
	if err != nil {
		return
	}

	for _, d := range params.Downloads {
		if _, ok := builds[d.Job]; !ok {
			return nil, errors.Wrapf(ErrJobNotFound, "Job %v not found in eval %v", d.Job, evaluation.ID)
		}
	}

	// a missing required job shows up as an unfinished badge
	if len(downloads) > len(params.Downloads) {
		if _, ok := builds[s.config.Hydra.RequiredJob]; !ok {
			log.Warn().Msgf("Required job %v not found in eval %v", s.config.Hydra.RequiredJob, evaluation.ID)
			downloads = params.Downloads
		}
	}

	if len(downloads) > 0 {
		log.Info().Msg("Waiting for builds to complete...")
	}

	urls, err := s.waitForBuilds(ctx, builds, downloads)
	if err != nil {
		return
	}
	timings.MarkBuilt(s.now())

	result = &Result{
		Evaluation:       evaluation,
		EvalURL:          hydraapi.EvaluationURL(s.config.Hydra.URL, evaluation.ID),
		Builds:           builds,
		BuildURLs:        make([]string, 0, len(params.Downloads)),
		BuildProductURLs: []string{},
		Timings:          timings,
	}

	for i, d := range downloads {
		if i < len(params.Downloads) {
			result.BuildURLs = append(result.BuildURLs, hydraapi.BuildURL(s.config.Hydra.URL, builds[d.Job].ID))
		}
		result.BuildProductURLs = append(result.BuildProductURLs, urls[i]...)
	}

	if s.config.Badge.Enable {
		result.Badge = badge.Build(badge.Params{
			BaseURL:     s.config.Badge.BaseURL,
			HydraURL:    s.config.Hydra.URL,
			Project:     s.config.Hydra.Project,
			Jobset:      s.config.Hydra.Jobset,
			RequiredJob: s.config.Hydra.RequiredJob,
			EvalURL:     result.EvalURL,
		}, evaluation, builds)
	}

	return result, nil
}

func (s *service) evaluation(ctx context.Context, params RunParams, onPending func()) (evaluation *hydraapi.Evaluation, err error) {

	if !params.PreviousEvaluation.IsGhost() {
		log.Info().Msgf("Using eval %v from input", params.PreviousEvaluation.ID)
		return params.PreviousEvaluation, nil
	}

	if s.config.Hydra.ResolveBy == api.ResolveByJobset {
		return s.FindEvaluationByInput(ctx, params.Repo, s.config.Hydra.Project, s.config.Hydra.Jobset)
	}

	return s.ResolveEvaluation(ctx, params.Repo, s.config.Hydra.StatusName, params.PreviousStatus, onPending, 0)
}

func (s *service) builds(ctx context.Context, params RunParams, evaluation *hydraapi.Evaluation, jobs []string) (builds hydraapi.Builds, err error) {

	if !s.config.Badge.Enable && len(params.PreviousBuilds) > 0 {
		covered := true
		for _, job := range jobs {
			if _, ok := params.PreviousBuilds[job]; !ok {
				covered = false
				break
			}
		}
		if covered {
			log.Info().Msg("Using builds from input")
			// polling replaces snapshots, the input stays untouched
			builds = hydraapi.Builds{}
			if err = copier.CopyWithOption(&builds, params.PreviousBuilds, copier.Option{DeepCopy: true}); err != nil {
				return nil, errors.Wrap(err, "Failed copying builds from input")
			}
			return builds, nil
		}
	}

	builds, err = s.LocateBuilds(ctx, evaluation, jobs, s.config.Badge.Enable)
	if err != nil {
		return
	}

	if len(builds) == 0 && len(jobs) > 0 {
		log.Info().Msg("Didn't find any builds in evals.")
	}

	return
}

// downloadsWithRequiredJob waits for the required job as well, without asking for its build products
func (s *service) downloadsWithRequiredJob(downloads []api.Download) []api.Download {
	requiredJob := s.config.Hydra.RequiredJob
	if requiredJob == "" {
		return downloads
	}
	for _, d := range downloads {
		if d.Job == requiredJob {
			return downloads
		}
	}
	return append(append([]api.Download{}, downloads...), api.Download{Job: requiredJob, BuildProducts: []int{}})
}

// waitForBuilds polls the build of every download concurrently; finished snapshots replace the ones in builds
func (s *service) waitForBuilds(ctx context.Context, builds hydraapi.Builds, downloads []api.Download) (urls [][]string, err error) {

	urls = make([][]string, len(downloads))
	pending := make([]*hydraapi.Build, len(downloads))
	for i, d := range downloads {
		pending[i] = builds[d.Job]
	}
	var mutex sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(s.config.Polling.Concurrency))

	var acquireErr error
	for i, d := range downloads {
		i, d, build := i, d, pending[i]
		if acquireErr = sem.Acquire(ctx, 1); acquireErr != nil {
			break
		}

		g.Go(func() error {
			defer sem.Release(1)

			buildProductURLs, finished, err := s.WaitForBuild(ctx, build, d.BuildProducts)
			if err != nil {
				return err
			}

			mutex.Lock()
			defer mutex.Unlock()
			urls[i] = buildProductURLs
			builds[d.Job] = finished

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}
	if acquireErr != nil {
		return nil, acquireErr
	}

	return urls, nil
}

// Outputs renders the result as action outputs
func (r *Result) Outputs() (outputs []api.Output, err error) {
	evaluation, err := marshalOrEmpty(r.Evaluation)
	if err != nil {
		return
	}
	builds, err := marshalOrEmpty(r.Builds)
	if err != nil {
		return
	}
	timings, err := json.Marshal(r.Timings.Format())
	if err != nil {
		return
	}

	return []api.Output{
		{Name: "evalURL", Value: r.EvalURL},
		{Name: "buildURLs", Value: strings.Join(r.BuildURLs, " ")},
		{Name: "buildProducts", Value: strings.Join(r.BuildProductURLs, " ")},
		{Name: "evaluation", Value: evaluation},
		{Name: "builds", Value: builds},
		{Name: "timings", Value: string(timings)},
		{Name: "badge", Value: r.Badge},
	}, nil
}

func marshalOrEmpty(v interface{}) (string, error) {
	switch t := v.(type) {
	case *hydraapi.Evaluation:
		if t == nil {
			return "", nil
		}
	case hydraapi.Builds:
		if t == nil {
			return "", nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
