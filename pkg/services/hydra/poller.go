package hydra

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
)

// WaitForBuild re-fetches a build until it has finished, then returns the download urls of the requested build products;
// nil buildProducts selects every product of the build, a failed build has none
func (s *service) WaitForBuild(ctx context.Context, build *hydraapi.Build, buildProducts []int) (buildProductURLs []string, finished *hydraapi.Build, err error) {

	attempts := 0

	for {
		buildURL := hydraapi.BuildURL(s.config.Hydra.URL, build.ID)

		switch build.State() {
		case hydraapi.BuildStateSucceeded:
			log.Info().Msgf("%v (%v) is finished.", buildURL, build.FullJobName())
			buildProductURLs, err = s.buildProductURLs(build, buildProducts)
			if err != nil {
				return nil, build, err
			}
			return buildProductURLs, build, nil

		case hydraapi.BuildStateFailed:
			log.Warn().Msgf("Build failed: %v", hydraapi.BuildLogTailURL(s.config.Hydra.URL, build.ID))
			return []string{}, build, nil
		}

		attempts++
		if exhausted(attempts, s.config.Polling.MaxBuildAttempts) {
			return nil, build, errors.Wrapf(ErrBuildNotFinished, "%v (%v) is still %v after %v attempts", buildURL, build.FullJobName(), build.State(), attempts)
		}

		log.Info().Msgf("%v (%v) is not yet finished - retrying soon...", buildURL, build.FullJobName())
		if err := s.sleeper.Sleep(ctx, s.buildBackoff()); err != nil {
			return nil, build, err
		}

		refreshed, err := s.hydraapiClient.GetBuild(ctx, build.ID)
		if err != nil {
			return nil, build, err
		}
		build = refreshed
	}
}

func (s *service) buildProductURLs(build *hydraapi.Build, buildProducts []int) (urls []string, err error) {
	if (api.Download{BuildProducts: buildProducts}).WantsAllBuildProducts() {
		buildProducts = build.BuildProductNumbers()
	}

	urls = make([]string, 0, len(buildProducts))
	for _, n := range buildProducts {
		product, ok := build.BuildProducts[strconv.Itoa(n)]
		if !ok {
			return nil, errors.Wrapf(ErrBuildProductNotFound, "Build %v (%v) has no build product %v", build.ID, build.FullJobName(), n)
		}
		urls = append(urls, hydraapi.BuildProductDownloadURL(s.config.Hydra.URL, build.ID, n, product.Name))
	}

	return urls, nil
}
