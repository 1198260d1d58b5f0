package api

import (
	"fmt"
	"sync"
	"time"
)

// RepoSpec identifies the commit for which evaluation and builds are resolved
type RepoSpec struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	Rev   string `json:"rev"`
}

// Validate fails on the first missing field, before any request is made
func (r RepoSpec) Validate() error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"owner", r.Owner},
		{"name", r.Name},
		{"rev", r.Rev},
	} {
		if field.value == "" {
			return fmt.Errorf("%v missing from github payload", field.name)
		}
	}

	return nil
}

func (r RepoSpec) String() string {
	return fmt.Sprintf("%v/%v@%v", r.Owner, r.Name, r.Rev)
}

// Download names a job and the build products to produce urls for; nil BuildProducts means all of them
type Download struct {
	Job           string `json:"job"`
	BuildProducts []int  `json:"buildProducts"`
}

// WantsAllBuildProducts returns true if no explicit selection of build products was made
func (d Download) WantsAllBuildProducts() bool {
	return d.BuildProducts == nil
}

// DownloadsForJobs requests the same build products for every job
func DownloadsForJobs(jobs []string, buildProducts []int) (downloads []Download) {
	downloads = make([]Download, 0, len(jobs))
	for _, job := range jobs {
		downloads = append(downloads, Download{Job: job, BuildProducts: buildProducts})
	}
	return
}

// Timings records when the milestones of a run were reached
type Timings struct {
	ActionStarted   time.Time  `json:"actionStarted"`
	CIStatusCreated *time.Time `json:"ciStatusCreated,omitempty"`
	Evaluated       *time.Time `json:"evaluated,omitempty"`
	Built           *time.Time `json:"built,omitempty"`

	ciStatusOnce sync.Once
}

// NewTimings starts the clock for a run
func NewTimings(now time.Time) *Timings {
	return &Timings{ActionStarted: now}
}

// MarkCIStatusCreated only records the first time a ci status has been observed
func (t *Timings) MarkCIStatusCreated(now time.Time) {
	t.ciStatusOnce.Do(func() {
		t.CIStatusCreated = &now
	})
}

func (t *Timings) MarkEvaluated(now time.Time) {
	t.Evaluated = &now
}

func (t *Timings) MarkBuilt(now time.Time) {
	t.Built = &now
}

// FormattedTimings is the serializable form of Timings, with seconds elapsed since the action started
type FormattedTimings struct {
	ActionStarted   string   `json:"actionStarted"`
	CIStatusCreated string   `json:"ciStatusCreated,omitempty"`
	Evaluated       string   `json:"evaluated,omitempty"`
	Built           string   `json:"built,omitempty"`
	CIStatusSeconds *float64 `json:"ciStatusSeconds,omitempty"`
	EvaluatedSecs   *float64 `json:"evaluatedSeconds,omitempty"`
	BuiltSeconds    *float64 `json:"builtSeconds,omitempty"`
}

// Format renders timestamps as RFC3339 in UTC
func (t *Timings) Format() FormattedTimings {
	formatted := FormattedTimings{
		ActionStarted: t.ActionStarted.UTC().Format(time.RFC3339),
	}

	mark := func(m *time.Time) (string, *float64) {
		if m == nil {
			return "", nil
		}
		elapsed := m.Sub(t.ActionStarted).Seconds()
		return m.UTC().Format(time.RFC3339), &elapsed
	}

	formatted.CIStatusCreated, formatted.CIStatusSeconds = mark(t.CIStatusCreated)
	formatted.Evaluated, formatted.EvaluatedSecs = mark(t.Evaluated)
	formatted.Built, formatted.BuiltSeconds = mark(t.Built)

	return formatted
}
