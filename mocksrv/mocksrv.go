// Package mocksrv starts scripted HTTP servers for tests. Each Interaction
// states the request it expects ("GET /status") and the canned response to
// send back.
package mocksrv

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// statusUnexpected is an ad-hoc status code so that a scripting mistake is
// never confused with a real response.
const statusUnexpected = 432

type Interaction struct {
	Expect   string // e.g. "GET /status"
	MockCode int    // e.g. 200
	MockBody string // e.g. `{"status":200,"data":{"name":"Věž zkázy"}}`

	// Optional. Don't read r.Body, use the `body` argument instead.
	Assert func(t *testing.T, r *http.Request, body string)

	// Optional. If set, used instead of MockBody to build a dynamic response.
	MockBodyFunc func(t *testing.T, r *http.Request, body string) string
}

// Mock serves the interactions in order and checks at cleanup that all of
// them were consumed. Since t.Fatal must not be called from the handler's
// goroutine, failures are reported with t.Error and passed to cancel, which
// may be nil.
func Mock(t *testing.T, mock []Interaction, cancel func(error)) *httptest.Server {
	t.Helper()

	count := atomic.Int32{}
	find := func(r *http.Request) (Interaction, error) {
		n := int(count.Add(1))
		if n > len(mock) {
			return Interaction{}, fmt.Errorf("mocksrv: too many requests received, #%d: %v %v", n, r.Method, r.URL.Path)
		}
		interaction := mock[n-1]
		if got := r.Method + " " + r.URL.Path; got != interaction.Expect {
			return Interaction{}, fmt.Errorf("mocksrv: unexpected request #%d: expected '%v', got '%v'", n, interaction.Expect, got)
		}
		return interaction, nil
	}

	server := start(t, find, cancel)
	t.Cleanup(func() {
		assert.Equal(t, int32(len(mock)), count.Load(), "the number of requests made to the mock server does not match the number of interactions")
	})
	return server
}

// UnorderedMock serves whichever interaction matches the request, any number
// of times.
func UnorderedMock(t *testing.T, mock []Interaction, cancel func(error)) *httptest.Server {
	t.Helper()

	find := func(r *http.Request) (Interaction, error) {
		got := r.Method + " " + r.URL.Path
		for _, interaction := range mock {
			if interaction.Expect == got {
				return interaction, nil
			}
		}
		return Interaction{}, fmt.Errorf("mocksrv: unexpected request: %v", got)
	}

	return start(t, find, cancel)
}

func start(t *testing.T, find func(*http.Request) (Interaction, error), cancel func(error)) *httptest.Server {
	if cancel == nil {
		cancel = func(error) {}
	}

	handler := func(w http.ResponseWriter, r *http.Request) {
		interaction, err := find(r)
		if err != nil {
			w.WriteHeader(statusUnexpected)
			fmt.Fprintf(w, "%v", err)
			t.Error(err)
			cancel(err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(statusUnexpected)
			t.Errorf("mocksrv: while reading request body: %v", err)
			cancel(err)
			return
		}
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		body := string(bodyBytes)

		if interaction.Assert != nil {
			interaction.Assert(t, r, body)
		}

		t.Logf("mocksrv: received '%v %v'", r.Method, r.URL.Path)
		mockBody := interaction.MockBody
		if interaction.MockBodyFunc != nil {
			mockBody = interaction.MockBodyFunc(t, r, body)
		}
		w.WriteHeader(interaction.MockCode)
		fmt.Fprintln(w, mockBody)
	}

	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(server.Close)
	return server
}
