package hydraapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/stretchr/testify/assert"
)

func newTestClient(serverURL string) Client {
	config := &api.HydraConfig{URL: serverURL, MaxRetries: 1}
	config.SetDefaults()
	return NewClient(config)
}

func TestGetEvaluation(t *testing.T) {

	t.Run("FetchesEvaluationFromAbsoluteTargetURL", func(t *testing.T) {

		var accept string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept = r.Header.Get("Accept")
			assert.Equal(t, "/eval/1052793", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":1052793,"builds":[6259976,6259982,6259993],"hasnewbuilds":1,"jobsetevalinputs":{"cardano-wallet":{"uri":"https://github.com/input-output-hk/cardano-wallet","revision":"5b3e","type":"git"}}}`))
		}))
		defer server.Close()

		client := newTestClient("https://unused.example.com")

		// act
		evaluation, err := client.GetEvaluation(context.Background(), server.URL+"/eval/1052793")

		assert.Nil(t, err)
		assert.Equal(t, "application/json", accept)
		assert.Equal(t, 1052793, evaluation.ID)
		assert.Equal(t, []int{6259976, 6259982, 6259993}, evaluation.Builds)
		assert.False(t, evaluation.IsGhost())
		assert.True(t, evaluation.HasInput("cardano-wallet", "5b3e"))
	})

	t.Run("ResolvesRelativeTargetURLAgainstHydraURL", func(t *testing.T) {

		var path string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			_, _ = w.Write([]byte(`{"id":5,"builds":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		// act
		evaluation, err := client.GetEvaluation(context.Background(), "eval/5")

		assert.Nil(t, err)
		assert.Equal(t, "/eval/5", path)
		assert.True(t, evaluation.IsGhost())
	})

	t.Run("ReturnsErrorForServerError", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		// act
		_, err := client.GetEvaluation(context.Background(), "eval/5")

		assert.True(t, errors.Is(err, ErrUnexpectedStatusCode))
	})
}

func TestGetBuild(t *testing.T) {

	t.Run("FetchesBuildById", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/build/6259993", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":6259993,"project":"Cardano","jobset":"cardano-wallet","job":"cardano-wallet-linux64","finished":1,"buildstatus":0,"starttime":1590998000,"stoptime":1590999951,"buildproducts":{"1":{"name":"cardano-wallet-2020.5.6-linux64.tar.gz","type":"file","path":"/nix/store/abc-cardano-wallet/cardano-wallet-2020.5.6-linux64.tar.gz"}}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		// act
		build, err := client.GetBuild(context.Background(), 6259993)

		assert.Nil(t, err)
		assert.Equal(t, "Cardano:cardano-wallet:cardano-wallet-linux64", build.FullJobName())
		assert.Equal(t, BuildStateSucceeded, build.State())
		assert.Equal(t, []int{1}, build.BuildProductNumbers())
		assert.Equal(t, "cardano-wallet-2020.5.6-linux64.tar.gz", build.BuildProducts["1"].Name)
	})

	t.Run("ReturnsErrorForEmptyResponse", func(t *testing.T) {

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		// act
		build, err := client.GetBuild(context.Background(), 42)

		assert.Nil(t, build)
		assert.NotNil(t, err)
		assert.Equal(t, "Build 42 returned an empty response", err.Error())
	})
}

func TestGetJobsetEvaluations(t *testing.T) {

	t.Run("AppendsRelativePageLinkToEvalsPath", func(t *testing.T) {

		var requestURI string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestURI = r.URL.RequestURI()
			_, _ = w.Write([]byte(`{"evals":[{"id":2,"builds":[1]}],"next":"?page=3","first":"?page=1","last":"?page=10"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		// act
		evaluations, err := client.GetJobsetEvaluations(context.Background(), "Cardano", "cardano-wallet", "?page=2")

		assert.Nil(t, err)
		assert.Equal(t, "/jobset/Cardano/cardano-wallet/evals?page=2", requestURI)
		assert.Equal(t, 1, len(evaluations.Evals))
		assert.Equal(t, "?page=3", evaluations.Next)
	})
}

func TestGetEvaluationPage(t *testing.T) {

	t.Run("ReturnsHTMLOfEvaluationPage", func(t *testing.T) {

		var accept string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept = r.Header.Get("Accept")
			assert.Equal(t, "/eval/1052793", r.URL.Path)
			_, _ = w.Write([]byte(`<html></html>`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		// act
		html, err := client.GetEvaluationPage(context.Background(), 1052793)

		assert.Nil(t, err)
		assert.Equal(t, "text/html", accept)
		assert.Equal(t, "<html></html>", html)
	})
}
