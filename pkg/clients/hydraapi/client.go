package hydraapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/sethgrid/pester"
)

// Client is the interface for communicating with the hydra api
//
//go:generate mockgen -package=hydraapi -destination ./mock.go -source=client.go
type Client interface {
	GetEvaluation(ctx context.Context, evaluationURL string) (evaluation *Evaluation, err error)
	GetBuild(ctx context.Context, buildID int) (build *Build, err error)
	GetJobsetEvaluations(ctx context.Context, project, jobset, page string) (evaluations *JobsetEvaluations, err error)
	GetEvaluationPage(ctx context.Context, evaluationID int) (html string, err error)
}

// NewClient creates a hydraapi.Client to communicate with a hydra instance
func NewClient(config *api.HydraConfig) Client {
	httpClient := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	httpClient.MaxRetries = config.MaxRetries
	httpClient.Backoff = pester.ExponentialJitterBackoff
	httpClient.KeepLog = true
	httpClient.Timeout = time.Second * time.Duration(config.TimeoutSeconds)

	return &client{
		config:     config,
		httpClient: httpClient,
	}
}

type client struct {
	config     *api.HydraConfig
	httpClient *pester.Client
}

// GetEvaluation fetches an evaluation from the target url of a commit status; relative urls resolve against the hydra url
func (c *client) GetEvaluation(ctx context.Context, evaluationURL string) (evaluation *Evaluation, err error) {

	evaluationURL, err = api.ResolveURL(c.config.URL, evaluationURL)
	if err != nil {
		return
	}

	err = c.getJSON(ctx, evaluationURL, &evaluation)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		evaluation = &Evaluation{}
	}

	return
}

func (c *client) GetBuild(ctx context.Context, buildID int) (build *Build, err error) {

	err = c.getJSON(ctx, BuildURL(c.config.URL, buildID), &build)
	if err != nil {
		return nil, err
	}
	if build == nil {
		return nil, errors.Errorf("Build %v returned an empty response", buildID)
	}

	return
}

// GetJobsetEvaluations fetches a page of evaluations of a jobset; page is the relative next link of the previous page, or empty for the first
func (c *client) GetJobsetEvaluations(ctx context.Context, project, jobset, page string) (evaluations *JobsetEvaluations, err error) {

	evaluationsURL := fmt.Sprintf("%vjobset/%v/%v/evals%v", c.config.URL, url.PathEscape(project), url.PathEscape(jobset), page)

	err = c.getJSON(ctx, evaluationsURL, &evaluations)
	if err != nil {
		return nil, err
	}
	if evaluations == nil {
		evaluations = &JobsetEvaluations{}
	}

	return
}

// GetEvaluationPage fetches the html page of an evaluation, which lists job names next to build ids
func (c *client) GetEvaluationPage(ctx context.Context, evaluationID int) (html string, err error) {

	body, err := c.callHydra(ctx, EvaluationURL(c.config.URL, evaluationID), "text/html")
	if err != nil {
		return
	}

	return string(body), nil
}

func (c *client) getJSON(ctx context.Context, url string, v interface{}) (err error) {

	body, err := c.callHydra(ctx, url, "application/json")
	if err != nil {
		return
	}

	if err = json.Unmarshal(body, v); err != nil {
		log.Error().Err(err).
			Str("url", url).
			Str("responseBody", string(body)).
			Msg("Deserializing response for hydra api call failed")
		return errors.Wrapf(err, "Failed unmarshalling response of %v", url)
	}

	return nil
}

func (c *client) callHydra(ctx context.Context, url, accept string) (body []byte, err error) {

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		// collect additional information on setting up connections
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	request.Header.Add("Accept", accept)

	log.Debug().Str("url", url).Msgf("Hydra %v", url)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return
	}
	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	body, err = io.ReadAll(response.Body)
	if err != nil {
		return
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, errors.Wrapf(ErrUnexpectedStatusCode, "GET %v returned %v", url, response.StatusCode)
	}

	return
}
