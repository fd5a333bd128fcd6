// Package mockapi is a canned-response REST API. It answers three GET routes
// with fixed JSON payloads shaped {status, data} and anything else with
// {status, error}. It exists to exercise clients and front-ends without a
// real backend.
package mockapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/maelvls/dungeonname/errutil"
	"github.com/maelvls/dungeonname/logutil"
	"github.com/tidwall/sjson"
)

// JavaScript's Date.toISOString format.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// Response is what every route returns. Data is set on success, Error
// otherwise.
type Response struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type API struct {
	message   string
	now       func() time.Time
	started   time.Time
	endpoints []Endpoint
}

type Option func(*API)

// WithClock replaces time.Now, e.g. to get stable timestamps in tests.
func WithClock(now func() time.Time) Option {
	return func(a *API) {
		a.now = now
	}
}

// WithMessage replaces the welcome message returned by "/".
func WithMessage(msg string) Option {
	return func(a *API) {
		a.message = msg
	}
}

func New(opts ...Option) *API {
	a := &API{
		message: "Hello from the dungeon name API!",
		now:     time.Now,
		endpoints: []Endpoint{
			{Path: "/", Method: "GET", Description: "Get welcome message"},
			{Path: "/data", Method: "GET", Description: "Get sample data"},
			{Path: "/status", Method: "GET", Description: "Get API status"},
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.started = a.now()
	return a
}

// Endpoints lists the routes the API answers.
func (a *API) Endpoints() []Endpoint {
	return slices.Clone(a.endpoints)
}

// Get answers a GET request for path. It never fails: unknown paths give a
// 404 response and internal failures a 500 response.
func (a *API) Get(path string) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			logutil.Errorf("API GET %s: %v", path, r)
			resp = errorResponse(500, "Internal server error")
		}
	}()

	data, err := a.handleGet(path)
	switch {
	case errutil.ErrIsNotFound(err):
		resp = errorResponse(404, "Endpoint not found")
	case err != nil:
		logutil.Errorf("API GET %s: %v", path, err)
		resp = errorResponse(500, "Internal server error")
	default:
		resp = Response{Status: 200, Data: json.RawMessage(data)}
	}

	logutil.Debugf("API GET %s: %d", path, resp.Status)
	return resp
}

func (a *API) handleGet(path string) (string, error) {
	switch path {
	case "/":
		return a.welcome()
	case "/data":
		return sampleData()
	case "/status":
		return a.status()
	default:
		return "", errutil.NotFound{Kind: "endpoint", Name: path}
	}
}

func (a *API) welcome() (string, error) {
	return setAll("{}",
		"message", a.message,
		"timestamp", a.now().UTC().Format(isoMillis),
	)
}

type item struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

func sampleData() (string, error) {
	items := []item{
		{ID: 1, Name: "Item 1", Value: "Value 1"},
		{ID: 2, Name: "Item 2", Value: "Value 2"},
		{ID: 3, Name: "Item 3", Value: "Value 3"},
	}
	return setAll("{}",
		"items", items,
		"count", len(items),
	)
}

func (a *API) status() (string, error) {
	return setAll("{}",
		"status", "OK",
		"uptime", a.now().Sub(a.started).Milliseconds(),
		"endpoints", a.endpoints,
	)
}

// setAll applies sjson.Set for each path/value pair in order.
func setAll(doc string, pathAndValue ...any) (string, error) {
	if len(pathAndValue)%2 != 0 {
		return "", errors.New("programmer mistake: odd number of path/value arguments")
	}
	var err error
	for i := 0; i < len(pathAndValue); i += 2 {
		path, ok := pathAndValue[i].(string)
		if !ok {
			return "", fmt.Errorf("programmer mistake: path #%d is a %T, not a string", i/2, pathAndValue[i])
		}
		doc, err = sjson.Set(doc, path, pathAndValue[i+1])
		if err != nil {
			return "", fmt.Errorf("while setting %q: %w", path, err)
		}
	}
	return doc, nil
}

func errorResponse(status int, msg string) Response {
	return Response{Status: status, Error: msg}
}
