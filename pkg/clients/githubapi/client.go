package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/sethgrid/pester"
	"golang.org/x/oauth2"
)

// Client is the interface for communicating with the github api
//
//go:generate mockgen -package=githubapi -destination ./mock.go -source=client.go
type Client interface {
	GetCommitStatuses(ctx context.Context, repo api.RepoSpec, page int) (statuses []*Status, hasNextPage bool, err error)
}

// NewClient creates a githubapi.Client to communicate with the Github api
func NewClient(config *api.GithubConfig) Client {
	var transport http.RoundTripper = &nethttp.Transport{}
	if config.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: config.Token, TokenType: "token"}),
			Base:   transport,
		}
	}

	httpClient := pester.NewExtendedClient(&http.Client{Transport: transport})
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
	config     *api.GithubConfig
	httpClient *pester.Client
}

// GetCommitStatuses returns a single page of statuses for a commit, newest first as github returns them; page 0 omits the page parameter
func (c *client) GetCommitStatuses(ctx context.Context, repo api.RepoSpec, page int) (statuses []*Status, hasNextPage bool, err error) {

	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.config.PageSize))
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	statusesURL := fmt.Sprintf("%vrepos/%v/%v/commits/%v/statuses?%v", c.config.APIBaseURL, url.PathEscape(repo.Owner), url.PathEscape(repo.Name), url.PathEscape(repo.Rev), query.Encode())

	response, body, err := c.callGithubAPI(ctx, http.MethodGet, statusesURL)
	if err != nil {
		return
	}

	if err = json.Unmarshal(body, &statuses); err != nil {
		log.Error().Err(err).
			Str("url", statusesURL).
			Str("responseBody", string(body)).
			Msg("Deserializing response for github statuses api call failed")
		return nil, false, errors.Wrapf(err, "Failed unmarshalling statuses for %v", repo)
	}

	hasNextPage = api.LinkHeaderHasRel(response.Header.Get("Link"), "next")

	return
}

func (c *client) callGithubAPI(ctx context.Context, method, url string) (response *http.Response, body []byte, err error) {

	request, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		// collect additional information on setting up connections
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	request.Header.Add("Accept", "application/vnd.github.v3+json")

	log.Debug().Str("url", url).Msgf("%v %v", method, url)

	response, err = c.httpClient.Do(request)
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
		return response, body, errors.Wrapf(ErrUnexpectedStatusCode, "%v %v returned %v: %v", method, url, response.StatusCode, string(body))
	}

	return
}
