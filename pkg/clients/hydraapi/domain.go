package hydraapi

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrUnexpectedStatusCode is returned for any non-2xx response from hydra
	ErrUnexpectedStatusCode = errors.New("unexpected status code from hydra")
)

// BuildState is derived from the finished, buildstatus and starttime fields of a build
type BuildState string

const (
	BuildStateQueued    BuildState = "queued"
	BuildStateBuilding  BuildState = "building"
	BuildStateSucceeded BuildState = "succeeded"
	BuildStateFailed    BuildState = "failed"
)

// Evaluation represents a jobset evaluation
type Evaluation struct {
	ID               int                        `json:"id"`
	Builds           []int                      `json:"builds"`
	JobsetEvalInputs map[string]JobsetEvalInput `json:"jobsetevalinputs,omitempty"`
	HasNewBuilds     int                        `json:"hasnewbuilds"`
	ErrorMessage     string                     `json:"errormsg,omitempty"`
}

// IsGhost returns true for evaluations without builds; these show up as successful but are never usable
func (e *Evaluation) IsGhost() bool {
	return e == nil || len(e.Builds) == 0
}

// HasInput returns true if the evaluation was made with the given revision for the named input
func (e *Evaluation) HasInput(name, revision string) bool {
	if e == nil {
		return false
	}
	input, ok := e.JobsetEvalInputs[name]
	return ok && input.Revision == revision
}

// JobsetEvalInput is one of the inputs of an evaluation, usually a git repository
type JobsetEvalInput struct {
	URI      string `json:"uri"`
	Value    string `json:"value"`
	Revision string `json:"revision"`
	Type     string `json:"type"`
}

// JobsetEvaluations is a page of evaluations of a jobset, with relative links to other pages
type JobsetEvaluations struct {
	Evals []*Evaluation `json:"evals"`
	Next  string        `json:"next,omitempty"`
	First string        `json:"first,omitempty"`
	Last  string        `json:"last,omitempty"`
}

// Build is a snapshot of a single build in hydra
type Build struct {
	ID            int                     `json:"id"`
	Project       string                  `json:"project"`
	Jobset        string                  `json:"jobset"`
	Job           string                  `json:"job"`
	JobsetEvals   []int                   `json:"jobsetevals"`
	NixName       string                  `json:"nixname"`
	DrvPath       string                  `json:"drvpath"`
	BuildProducts map[string]BuildProduct `json:"buildproducts"`
	BuildStatus   *int                    `json:"buildstatus"`
	Finished      int                     `json:"finished"`
	StartTime     int64                   `json:"starttime"`
	StopTime      int64                   `json:"stoptime"`
	Timestamp     int64                   `json:"timestamp"`
}

func (b *Build) IsFinished() bool {
	return b.Finished != 0
}

// IsSuccessful returns true for finished builds with build status 0
func (b *Build) IsSuccessful() bool {
	return b.IsFinished() && b.BuildStatus != nil && *b.BuildStatus == 0
}

func (b *Build) State() BuildState {
	switch {
	case b.IsSuccessful():
		return BuildStateSucceeded
	case b.IsFinished():
		return BuildStateFailed
	case b.StartTime > 0:
		return BuildStateBuilding
	default:
		return BuildStateQueued
	}
}

// FullJobName returns project:jobset:job
func (b *Build) FullJobName() string {
	return fmt.Sprintf("%v:%v:%v", b.Project, b.Jobset, b.Job)
}

// BuildProductNumbers returns the indices of all build products in numeric order
func (b *Build) BuildProductNumbers() []int {
	numbers := make([]int, 0, len(b.BuildProducts))
	for key := range b.BuildProducts {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// BuildProduct is a file produced by a build, available for download
type BuildProduct struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	SubType     string `json:"subtype,omitempty"`
	Path        string `json:"path"`
	FileSize    int64  `json:"filesize,omitempty"`
	DefaultPath string `json:"defaultpath,omitempty"`
}

// Builds maps job names to builds
type Builds map[string]*Build

// EvaluationURL returns <hydra>/eval/<id>
func EvaluationURL(hydraURL string, evaluationID int) string {
	return fmt.Sprintf("%veval/%v", hydraURL, evaluationID)
}

// BuildURL returns <hydra>/build/<id>
func BuildURL(hydraURL string, buildID int) string {
	return fmt.Sprintf("%vbuild/%v", hydraURL, buildID)
}

// BuildProductDownloadURL returns <hydra>/build/<id>/download/<n>/<name>
func BuildProductDownloadURL(hydraURL string, buildID int, number int, name string) string {
	return fmt.Sprintf("%v/download/%v/%v", BuildURL(hydraURL, buildID), number, name)
}

// BuildLogTailURL points at the tail of the log of the first build step
func BuildLogTailURL(hydraURL string, buildID int) string {
	return fmt.Sprintf("%v/nixlog/1/tail", BuildURL(hydraURL, buildID))
}

// ParseEvaluationJSON parses an evaluation passed on from an earlier run; empty input returns nil
func ParseEvaluationJSON(data string) (evaluation *Evaluation, err error) {
	if data == "" {
		return nil, nil
	}
	if err = json.Unmarshal([]byte(data), &evaluation); err != nil {
		return nil, errors.Wrap(err, "Invalid evaluation json")
	}
	return
}

// ParseBuildsJSON parses builds passed on from an earlier run; empty input returns nil
func ParseBuildsJSON(data string) (builds Builds, err error) {
	if data == "" {
		return nil, nil
	}
	if err = json.Unmarshal([]byte(data), &builds); err != nil {
		return nil, errors.Wrap(err, "Invalid builds json")
	}
	return
}
