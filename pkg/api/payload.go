package api

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/src-d/go-git.v4"
)

// PreviousStatus is the commit status that triggered a status event
type PreviousStatus struct {
	Context   string `json:"context"`
	State     string `json:"state"`
	TargetURL string `json:"target_url"`
}

// ActionContext is what the triggering github event tells about the commit to resolve
type ActionContext struct {
	Repo           RepoSpec        `json:"repo"`
	PreviousStatus *PreviousStatus `json:"previousStatus,omitempty"`
	EventName      string          `json:"eventName,omitempty"`
}

type eventPayload struct {
	Ref        string `json:"ref"`
	After      string `json:"after"`
	SHA        string `json:"sha"`
	Context    string `json:"context"`
	State      string `json:"state"`
	TargetURL  string `json:"target_url"`
	HeadCommit *struct {
		ID string `json:"id"`
	} `json:"head_commit"`
	PullRequest *struct {
		Head struct {
			SHA string `json:"sha"`
		} `json:"head"`
	} `json:"pull_request"`
	Repository *struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"repository"`
}

// ReadActionContext determines owner, name and revision from, in order of precedence,
// the REPO_OWNER, REPO_NAME and COMMIT overrides, the github event payload,
// GITHUB_REPOSITORY and GITHUB_SHA, and finally the git checkout at repositoryPath
func ReadActionContext(environmentVariables []string, repositoryPath string) (actionContext ActionContext, err error) {
	env := transformEnvironmentVariablesToMap(environmentVariables)

	actionContext.EventName = env["GITHUB_EVENT_NAME"]
	actionContext.Repo = RepoSpec{
		Owner: env["REPO_OWNER"],
		Name:  env["REPO_NAME"],
		Rev:   env["COMMIT"],
	}

	if eventPath := env["GITHUB_EVENT_PATH"]; eventPath != "" {
		payload, err := readEventPayload(eventPath)
		if err != nil {
			return actionContext, err
		}
		actionContext.applyEventPayload(payload)
	}

	if owner, name, found := strings.Cut(env["GITHUB_REPOSITORY"], "/"); found {
		actionContext.Repo.fillIn(RepoSpec{Owner: owner, Name: name})
	}
	actionContext.Repo.fillIn(RepoSpec{Rev: env["GITHUB_SHA"]})

	if actionContext.Repo.Validate() != nil && repositoryPath != "" {
		checkoutRepo, err := RepoSpecFromCheckout(repositoryPath)
		if err != nil {
			log.Warn().Err(err).Msgf("Failed reading git checkout at %v", repositoryPath)
		} else {
			actionContext.Repo.fillIn(checkoutRepo)
		}
	}

	return actionContext, nil
}

func readEventPayload(eventPath string) (payload eventPayload, err error) {
	data, err := os.ReadFile(eventPath)
	if err != nil {
		return payload, errors.Wrapf(err, "Failed reading github event payload %v", eventPath)
	}

	if err = json.Unmarshal(data, &payload); err != nil {
		return payload, errors.Wrapf(err, "Failed unmarshalling github event payload %v", eventPath)
	}

	return
}

func (c *ActionContext) applyEventPayload(payload eventPayload) {
	var fromPayload RepoSpec

	if payload.Repository != nil {
		fromPayload.Owner = payload.Repository.Owner.Login
		fromPayload.Name = payload.Repository.Name
	}

	switch c.EventName {
	case "push":
		if strings.HasPrefix(payload.Ref, "refs/tags/") && payload.HeadCommit != nil && payload.HeadCommit.ID != "" {
			fromPayload.Rev = payload.HeadCommit.ID
		} else {
			fromPayload.Rev = payload.After
		}
	case "pull_request":
		if payload.PullRequest != nil {
			fromPayload.Rev = payload.PullRequest.Head.SHA
		}
	case "status":
		fromPayload.Rev = payload.SHA
		c.PreviousStatus = &PreviousStatus{
			Context:   payload.Context,
			State:     payload.State,
			TargetURL: payload.TargetURL,
		}
	}

	c.Repo.fillIn(fromPayload)
}

func (r *RepoSpec) fillIn(other RepoSpec) {
	if r.Owner == "" {
		r.Owner = other.Owner
	}
	if r.Name == "" {
		r.Name = other.Name
	}
	if r.Rev == "" {
		r.Rev = other.Rev
	}
}

// RepoSpecFromCheckout reads the head revision and the origin remote of a local git repository
func RepoSpecFromCheckout(repositoryPath string) (repo RepoSpec, err error) {
	repository, err := git.PlainOpen(repositoryPath)
	if err != nil {
		return repo, errors.Wrapf(err, "Failed opening git repository %v", repositoryPath)
	}

	head, err := repository.Head()
	if err != nil {
		return repo, errors.Wrapf(err, "Failed reading head of git repository %v", repositoryPath)
	}
	repo.Rev = head.Hash().String()

	remote, err := repository.Remote("origin")
	if err != nil {
		// a checkout without origin still has a usable revision
		return repo, nil
	}
	if urls := remote.Config().URLs; len(urls) > 0 {
		repo.Owner, repo.Name = ParseRemoteURL(urls[0])
	}

	return repo, nil
}

// ParseRemoteURL extracts owner and name from ssh or https github remote urls
func ParseRemoteURL(remoteURL string) (owner, name string) {
	path := strings.TrimSuffix(strings.TrimSuffix(remoteURL, "/"), ".git")

	if i := strings.Index(path, "://"); i >= 0 {
		path = path[i+3:]
		if j := strings.Index(path, "/"); j >= 0 {
			path = path[j+1:]
		} else {
			return "", ""
		}
	} else if _, after, found := strings.Cut(path, ":"); found {
		// git@github.com:owner/name
		path = after
	}

	segments := strings.Split(path, "/")
	if len(segments) < 2 {
		return "", ""
	}

	return segments[len(segments)-2], segments[len(segments)-1]
}
