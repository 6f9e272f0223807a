package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceSimilarity(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload similarityPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[0.8234]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	scores, err := client.SentenceSimilarity(context.Background(), "job description", []string{"resume text"})
	require.NoError(t, err)

	require.Len(t, scores, 1)
	assert.InDelta(t, 0.8234, scores[0], 1e-9)
	assert.Equal(t, "/models/"+ModelSentenceSimilarity, gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "job description", gotPayload.Inputs.SourceSentence)
	assert.Equal(t, []string{"resume text"}, gotPayload.Inputs.Sentences)
}

func TestSentenceSimilarityScoreCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[0.5, 0.6]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	_, err := client.SentenceSimilarity(context.Background(), "source", []string{"only one"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestQuestionAnswering(t *testing.T) {
	var gotPayload qaPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(`{"score":0.9713,"start":10,"end":18,"answer":"20 days"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	result, err := client.QuestionAnswering(context.Background(), "How much leave?", "the policy text")
	require.NoError(t, err)

	assert.InDelta(t, 0.9713, result.Score, 1e-9)
	assert.Equal(t, "20 days", result.Answer)
	assert.Equal(t, "How much leave?", gotPayload.Inputs.Question)
	assert.Equal(t, "the policy text", gotPayload.Inputs.Context)
}

func TestMissingAPIKey(t *testing.T) {
	client := NewClient("http://unused", "", 5*time.Second)
	assert.False(t, client.Configured())

	_, err := client.SentenceSimilarity(context.Background(), "a", []string{"b"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = client.QuestionAnswering(context.Background(), "q", "p")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"model is loading"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	_, err := client.QuestionAnswering(context.Background(), "q", "p")
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), "model is loading")
}

func TestErrorBodyWithOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	_, err := client.QuestionAnswering(context.Background(), "q", "p")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "test-key", time.Second)
	_, err := client.SentenceSimilarity(context.Background(), "a", []string{"b"})
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestDefaultBaseURL(t *testing.T) {
	client := NewClient("", "key", time.Second)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
