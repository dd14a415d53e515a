// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoBody struct {
	DOI string `json:"doi"`
}

func TestPostJSON_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "accesspaper-test", r.Header.Get("User-Agent"))

		var in echoBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"doi": in.DOI})
	}))
	defer ts.Close()

	var out echoBody
	err := PostJSON(context.Background(), ts.Client(), ts.URL, "accesspaper-test", echoBody{DOI: "10.1/x"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "10.1/x", out.DOI)
}

func TestPostJSON_NonOKIsStatusError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer ts.Close()

	var out echoBody
	err := PostJSON(context.Background(), ts.Client(), ts.URL, "", echoBody{}, &out)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Contains(t, se.Body, "upstream down")
	assert.Equal(t, "Server error: Bad Gateway", err.Error())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "failed requests are not retried")
}

func TestPostJSON_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	var out echoBody
	err := PostJSON(context.Background(), ts.Client(), ts.URL, "", echoBody{}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response")
}

func TestPostJSON_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("{}"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out echoBody
	err := PostJSON(ctx, ts.Client(), ts.URL, "", echoBody{}, &out)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatusError_UnknownCode(t *testing.T) {
	err := &StatusError{StatusCode: 599}
	assert.Equal(t, "Server error: HTTP 599", err.Error())
}
