package badge

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
)

const (
	ColorImportant = "important"
	ColorInactive  = "inactive"
	ColorSuccess   = "success"
	ColorCritical  = "critical"
)

// Params describes what the badge is about
type Params struct {
	BaseURL     string
	HydraURL    string
	Project     string
	Jobset      string
	RequiredJob string
	EvalURL     string
}

// Summary counts builds per bucket and tells whether the evaluation as a whole is done and green
type Summary struct {
	Passed    int
	Failed    int
	Pending   int
	Finished  bool
	Success   bool
	EvalError bool
}

// Summarize buckets the builds; with a required job, finished and success only depend on that job
func Summarize(evaluation *hydraapi.Evaluation, builds hydraapi.Builds, requiredJob string) (summary Summary) {
	for _, build := range builds {
		switch {
		case !build.IsFinished():
			summary.Pending++
		case build.IsSuccessful():
			summary.Passed++
		default:
			summary.Failed++
		}
	}

	summary.EvalError = evaluation == nil || evaluation.ErrorMessage != ""

	if requiredJob != "" {
		if build, ok := builds[requiredJob]; ok {
			summary.Finished = build.IsFinished()
			summary.Success = build.IsSuccessful()
		}
		return
	}

	summary.Finished = summary.Pending == 0
	summary.Success = summary.Failed == 0

	return
}

// Color picks the badge color
func (s Summary) Color() string {
	switch {
	case s.EvalError:
		return ColorImportant
	case !s.Finished:
		return ColorInactive
	case s.Success:
		return ColorSuccess
	default:
		return ColorCritical
	}
}

// Message renders the counts, e.g. "✓ 12 ✗ 1 ⏳ 3"
func (s Summary) Message() string {
	parts := []string{}
	if s.EvalError {
		parts = append(parts, "⚠ eval error")
	}
	parts = append(parts, fmt.Sprintf("✓ %v", s.Passed))
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("✗ %v", s.Failed))
	}
	if s.Pending > 0 {
		parts = append(parts, fmt.Sprintf("⏳ %v", s.Pending))
	}
	return strings.Join(parts, " ")
}

// Label returns project:jobset, or hydra if either is unknown, with :job appended for a required job
func (p Params) Label() string {
	label := "hydra"
	if p.Project != "" && p.Jobset != "" {
		label = p.Project + ":" + p.Jobset
	}
	if p.RequiredJob != "" {
		label += ":" + p.RequiredJob
	}
	return label
}

// Build returns the shields.io url of a static badge for the evaluation
func Build(params Params, evaluation *hydraapi.Evaluation, builds hydraapi.Builds) string {
	summary := Summarize(evaluation, builds, params.RequiredJob)

	links := []string{params.EvalURL}
	if params.RequiredJob != "" {
		if build, ok := builds[params.RequiredJob]; ok {
			links = append(links, hydraapi.BuildURL(params.HydraURL, build.ID))
		}
	}

	query := EncodeQuery([]QueryParam{
		{Key: "label", Values: []string{params.Label()}},
		{Key: "message", Values: []string{summary.Message()}},
		{Key: "color", Values: []string{summary.Color()}},
		{Key: "link", Values: links},
	})

	return params.BaseURL + "?" + query
}

// QueryParam is a query string key with one or more values
type QueryParam struct {
	Key    string
	Values []string
}

// EncodeQuery keeps the order of params, repeats the key for each value and leaves out empty values
func EncodeQuery(params []QueryParam) string {
	pairs := []string{}
	for _, p := range params {
		for _, v := range p.Values {
			if v == "" {
				continue
			}
			pairs = append(pairs, p.Key+"="+encodeComponent(v))
		}
	}
	return strings.Join(pairs, "&")
}

// encodeComponent escapes spaces as %20 rather than +
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
