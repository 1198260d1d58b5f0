package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeEvent(t *testing.T, payload string) string {
	eventPath := filepath.Join(t.TempDir(), "event.json")
	err := os.WriteFile(eventPath, []byte(payload), 0644)
	assert.Nil(t, err)
	return eventPath
}

func TestReadActionContext(t *testing.T) {

	t.Run("ReadsRevisionFromPushEvent", func(t *testing.T) {

		eventPath := writeEvent(t, `{"ref":"refs/heads/master","after":"a1b2","repository":{"name":"cardano-wallet","owner":{"login":"input-output-hk"}}}`)

		// act
		actionContext, err := ReadActionContext([]string{"GITHUB_EVENT_NAME=push", "GITHUB_EVENT_PATH=" + eventPath}, "")

		assert.Nil(t, err)
		assert.Equal(t, RepoSpec{Owner: "input-output-hk", Name: "cardano-wallet", Rev: "a1b2"}, actionContext.Repo)
		assert.Nil(t, actionContext.PreviousStatus)
	})

	t.Run("ReadsHeadCommitFromTagPushEvent", func(t *testing.T) {

		eventPath := writeEvent(t, `{"ref":"refs/tags/v2020-06-01","after":"0000","head_commit":{"id":"c3d4"},"repository":{"name":"cardano-wallet","owner":{"login":"input-output-hk"}}}`)

		// act
		actionContext, err := ReadActionContext([]string{"GITHUB_EVENT_NAME=push", "GITHUB_EVENT_PATH=" + eventPath}, "")

		assert.Nil(t, err)
		assert.Equal(t, "c3d4", actionContext.Repo.Rev)
	})

	t.Run("ReadsHeadShaFromPullRequestEvent", func(t *testing.T) {

		eventPath := writeEvent(t, `{"pull_request":{"head":{"sha":"e5f6"}},"repository":{"name":"cardano-wallet","owner":{"login":"input-output-hk"}}}`)

		// act
		actionContext, err := ReadActionContext([]string{"GITHUB_EVENT_NAME=pull_request", "GITHUB_EVENT_PATH=" + eventPath}, "")

		assert.Nil(t, err)
		assert.Equal(t, "e5f6", actionContext.Repo.Rev)
	})

	t.Run("ReadsPreviousStatusFromStatusEvent", func(t *testing.T) {

		eventPath := writeEvent(t, `{"sha":"a7b8","context":"ci/hydra-eval","state":"success","target_url":"https://hydra.iohk.io/eval/1234","repository":{"name":"cardano-wallet","owner":{"login":"input-output-hk"}}}`)

		// act
		actionContext, err := ReadActionContext([]string{"GITHUB_EVENT_NAME=status", "GITHUB_EVENT_PATH=" + eventPath}, "")

		assert.Nil(t, err)
		assert.Equal(t, "a7b8", actionContext.Repo.Rev)
		if assert.NotNil(t, actionContext.PreviousStatus) {
			assert.Equal(t, "ci/hydra-eval", actionContext.PreviousStatus.Context)
			assert.Equal(t, "success", actionContext.PreviousStatus.State)
			assert.Equal(t, "https://hydra.iohk.io/eval/1234", actionContext.PreviousStatus.TargetURL)
		}
	})

	t.Run("OverridesPayloadWithRepoEnvironmentVariables", func(t *testing.T) {

		eventPath := writeEvent(t, `{"after":"a1b2","repository":{"name":"cardano-wallet","owner":{"login":"input-output-hk"}}}`)

		// act
		actionContext, err := ReadActionContext([]string{"GITHUB_EVENT_NAME=push", "GITHUB_EVENT_PATH=" + eventPath, "REPO_OWNER=rvl", "REPO_NAME=fork", "COMMIT=ffff"}, "")

		assert.Nil(t, err)
		assert.Equal(t, RepoSpec{Owner: "rvl", Name: "fork", Rev: "ffff"}, actionContext.Repo)
	})

	t.Run("FallsBackToGithubRepositoryAndSha", func(t *testing.T) {

		// act
		actionContext, err := ReadActionContext([]string{"GITHUB_REPOSITORY=input-output-hk/cardano-wallet", "GITHUB_SHA=9999"}, "")

		assert.Nil(t, err)
		assert.Equal(t, RepoSpec{Owner: "input-output-hk", Name: "cardano-wallet", Rev: "9999"}, actionContext.Repo)
	})

	t.Run("ReturnsErrorIfEventFileIsMissing", func(t *testing.T) {

		// act
		_, err := ReadActionContext([]string{"GITHUB_EVENT_NAME=push", "GITHUB_EVENT_PATH=" + filepath.Join(t.TempDir(), "missing.json")}, "")

		assert.NotNil(t, err)
	})

	t.Run("LeavesRepoIncompleteWithoutAnySource", func(t *testing.T) {

		// act
		actionContext, err := ReadActionContext([]string{}, "")

		assert.Nil(t, err)
		assert.NotNil(t, actionContext.Repo.Validate())
	})
}

func TestParseRemoteURL(t *testing.T) {

	t.Run("ParsesHTTPSRemote", func(t *testing.T) {

		// act
		owner, name := ParseRemoteURL("https://github.com/input-output-hk/cardano-wallet.git")

		assert.Equal(t, "input-output-hk", owner)
		assert.Equal(t, "cardano-wallet", name)
	})

	t.Run("ParsesSSHRemote", func(t *testing.T) {

		// act
		owner, name := ParseRemoteURL("git@github.com:input-output-hk/cardano-wallet.git")

		assert.Equal(t, "input-output-hk", owner)
		assert.Equal(t, "cardano-wallet", name)
	})

	t.Run("ReturnsEmptyForHostOnly", func(t *testing.T) {

		// act
		owner, name := ParseRemoteURL("https://github.com")

		assert.Equal(t, "", owner)
		assert.Equal(t, "", name)
	})
}
