package api

import (
	"errors"
	"fmt"
	"strings"
)

// ResolveMode selects how the evaluation for a commit is found
type ResolveMode string

const (
	// ResolveByStatus follows the ci status the hydra github integration sets on the commit
	ResolveByStatus ResolveMode = "status"
	// ResolveByJobset scans the jobset evaluations for one with the commit as input
	ResolveByJobset ResolveMode = "jobset"
)

// ActionConfig represents the configuration for a single run of the action
type ActionConfig struct {
	Hydra   *HydraConfig   `yaml:"hydra,omitempty"`
	Github  *GithubConfig  `yaml:"github,omitempty"`
	Polling *PollingConfig `yaml:"polling,omitempty"`
	Badge   *BadgeConfig   `yaml:"badge,omitempty"`
}

func (c *ActionConfig) SetDefaults() {
	if c.Hydra == nil {
		c.Hydra = &HydraConfig{}
	}
	c.Hydra.SetDefaults()

	if c.Github == nil {
		c.Github = &GithubConfig{}
	}
	c.Github.SetDefaults()

	if c.Polling == nil {
		c.Polling = &PollingConfig{}
	}
	c.Polling.SetDefaults()

	if c.Badge == nil {
		c.Badge = &BadgeConfig{}
	}
	c.Badge.SetDefaults()
}

func (c *ActionConfig) Validate() (err error) {
	err = c.Hydra.Validate()
	if err != nil {
		return
	}

	err = c.Github.Validate()
	if err != nil {
		return
	}

	err = c.Polling.Validate()
	if err != nil {
		return
	}

	err = c.Badge.Validate()
	if err != nil {
		return
	}

	return nil
}

// ApplyInputs overrides configuration with every non-empty input
func (c *ActionConfig) ApplyInputs(inputs ActionInputs) (err error) {
	if c.Hydra == nil {
		c.Hydra = &HydraConfig{}
	}
	if c.Github == nil {
		c.Github = &GithubConfig{}
	}
	if c.Badge == nil {
		c.Badge = &BadgeConfig{}
	}

	if inputs.Hydra != "" {
		c.Hydra.URL = inputs.Hydra
	}
	if inputs.StatusName != "" {
		c.Hydra.StatusName = inputs.StatusName
	}
	if strings.TrimSpace(inputs.Jobs) != "" {
		c.Hydra.Jobs = SplitJobs(inputs.Jobs)
	}
	if inputs.BuildProducts != "" {
		c.Hydra.BuildProducts, err = ParseBuildProducts(inputs.BuildProducts)
		if err != nil {
			return
		}
	}
	if inputs.RequiredJob != "" {
		c.Hydra.RequiredJob = inputs.RequiredJob
	}
	if inputs.Project != "" {
		c.Hydra.Project = inputs.Project
	}
	if inputs.Jobset != "" {
		c.Hydra.Jobset = inputs.Jobset
	}
	if inputs.ResolveBy != "" {
		c.Hydra.ResolveBy = ResolveMode(inputs.ResolveBy)
	}
	if inputs.Evaluation != "" {
		c.Hydra.EvaluationJSON = inputs.Evaluation
	}
	if inputs.Builds != "" {
		c.Hydra.BuildsJSON = inputs.Builds
	}
	if inputs.Badge != "" {
		c.Badge.Enable = ParseFlag(inputs.Badge)
	}
	if inputs.Token != "" {
		c.Github.Token = inputs.Token
	}

	return nil
}

// HydraConfig configures the hydra instance and what to look for on it
type HydraConfig struct {
	URL                  string      `yaml:"url"`
	StatusName           string      `yaml:"statusName"`
	Jobs                 []string    `yaml:"jobs"`
	BuildProducts        []int       `yaml:"buildProducts"`
	RequiredJob          string      `yaml:"requiredJob"`
	Project              string      `yaml:"project"`
	Jobset               string      `yaml:"jobset"`
	ResolveBy            ResolveMode `yaml:"resolveBy"`
	ScrapeEvaluationPage bool        `yaml:"scrapeEvaluationPage"`
	MaxRetries           int         `yaml:"maxRetries"`
	TimeoutSeconds       int         `yaml:"timeoutSeconds"`

	EvaluationJSON string `yaml:"-"`
	BuildsJSON     string `yaml:"-"`
}

func (c *HydraConfig) SetDefaults() {
	if c.URL != "" {
		c.URL = AddTrailingSlash(c.URL)
	}
	if c.StatusName == "" {
		c.StatusName = "ci/hydra-eval"
	}
	if c.ResolveBy == "" {
		c.ResolveBy = ResolveByStatus
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
}

func (c *HydraConfig) Validate() (err error) {
	if c.URL == "" {
		return errors.New("Configuration item 'hydra.url' is required; please set it to the base url of your hydra instance")
	}

	switch c.ResolveBy {
	case ResolveByStatus:
		if c.StatusName == "" {
			return errors.New("Configuration item 'hydra.statusName' is required; please set it to the prefix of the github status set by hydra")
		}
	case ResolveByJobset:
		if c.Project == "" || c.Jobset == "" {
			return errors.New("Configuration items 'hydra.project' and 'hydra.jobset' are required when resolving by jobset")
		}
	default:
		return fmt.Errorf("Configuration item 'hydra.resolveBy' has unknown value '%v'; please set it to '%v' or '%v'", c.ResolveBy, ResolveByStatus, ResolveByJobset)
	}

	for _, n := range c.BuildProducts {
		if n <= 0 {
			return fmt.Errorf("Configuration item 'hydra.buildProducts' contains %v; build product numbers start at 1", n)
		}
	}

	return nil
}

// Downloads returns what to wait for and download for every configured job
func (c *HydraConfig) Downloads() []Download {
	return DownloadsForJobs(c.Jobs, c.BuildProducts)
}

// GithubConfig configures access to the github api
type GithubConfig struct {
	APIBaseURL     string `yaml:"apiBaseURL"`
	Token          string `yaml:"token"`
	PageSize       int    `yaml:"pageSize"`
	MaxRetries     int    `yaml:"maxRetries"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

func (c *GithubConfig) SetDefaults() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = "https://api.github.com/"
	}
	c.APIBaseURL = AddTrailingSlash(c.APIBaseURL)
	if c.PageSize <= 0 {
		c.PageSize = 100
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
}

func (c *GithubConfig) Validate() (err error) {
	if c.PageSize > 100 {
		return errors.New("Configuration item 'github.pageSize' can't be larger than 100")
	}

	return nil
}

// PollingConfig configures how long to wait between attempts; a max of 0 attempts means keep trying
type PollingConfig struct {
	EvaluationBackoffSeconds int `yaml:"evaluationBackoffSeconds"`
	BuildBackoffSeconds      int `yaml:"buildBackoffSeconds"`
	BuildJitterSeconds       int `yaml:"buildJitterSeconds"`
	MaxEvaluationAttempts    int `yaml:"maxEvaluationAttempts"`
	MaxBuildAttempts         int `yaml:"maxBuildAttempts"`
	Concurrency              int `yaml:"concurrency"`
}

func (c *PollingConfig) SetDefaults() {
	if c.EvaluationBackoffSeconds <= 0 {
		c.EvaluationBackoffSeconds = 60
	}
	if c.BuildBackoffSeconds <= 0 {
		c.BuildBackoffSeconds = 10
	}
	if c.BuildJitterSeconds < 0 {
		c.BuildJitterSeconds = 0
	}
	if c.BuildJitterSeconds == 0 {
		c.BuildJitterSeconds = 5
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 5
	}
}

func (c *PollingConfig) Validate() (err error) {
	if c.MaxEvaluationAttempts < 0 {
		return errors.New("Configuration item 'polling.maxEvaluationAttempts' can't be negative; use 0 to keep trying")
	}
	if c.MaxBuildAttempts < 0 {
		return errors.New("Configuration item 'polling.maxBuildAttempts' can't be negative; use 0 to keep trying")
	}

	return nil
}

// BadgeConfig configures the status badge url
type BadgeConfig struct {
	Enable  bool   `yaml:"enable"`
	BaseURL string `yaml:"baseURL"`
}

func (c *BadgeConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://img.shields.io/static/v1"
	}
}

func (c *BadgeConfig) Validate() (err error) {
	if c.Enable && c.BaseURL == "" {
		return errors.New("Configuration item 'badge.baseURL' is required when the badge is enabled")
	}

	return nil
}

// ActionInputs holds the raw inputs of the github action, as strings
type ActionInputs struct {
	Hydra         string
	StatusName    string
	Jobs          string
	BuildProducts string
	RequiredJob   string
	Project       string
	Jobset        string
	ResolveBy     string
	Evaluation    string
	Builds        string
	Badge         string
	Token         string `env:"github_token"`
}

// ReadActionInputs picks up INPUT_<NAME> environment variables the way the actions runner sets them
func ReadActionInputs(environmentVariables []string) (inputs ActionInputs, err error) {
	err = OverrideFromEnv(&inputs, "INPUT", environmentVariables)
	return
}
