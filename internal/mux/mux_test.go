package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMux_getHealth(t *testing.T) {
	ts := httptest.NewServer(NewMux("v1.2.3"))
	defer ts.Close()

	var resp healthResponse
	assertGet(t, ts, "/health", &resp, 200)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "v1.2.3", resp.Version)
}

func TestMux_gameNotFound(t *testing.T) {
	ts := httptest.NewServer(NewMux("test"))
	defer ts.Close()

	assertGet(t, ts, "/game/6cb3cf1d-4ba3-4f4f-9f29-8e98c7e1a9b0", nil, 404)
	assertPost(t, ts, "/game/6cb3cf1d-4ba3-4f4f-9f29-8e98c7e1a9b0/play",
		playPayload{OwnCard: "1o"}, nil, 404)
}
