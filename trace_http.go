package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/maelvls/dungeonname/logutil"
	"github.com/motemen/go-loghttp"
)

var (
	Transport = &loghttp.Transport{LogRequest: LogRequest, LogResponse: LogResponse, Transport: http.DefaultTransport}
)

// maxLoggedBody is how many characters of a body end up in the debug logs.
const maxLoggedBody = 100

func LogRequest(req *http.Request) {
	if !logutil.EnableDebug {
		return
	}

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			logutil.Errorf("Failed to read request body: %v", err)
			body = []byte("<error reading body>")
		}

		// Restore the body for further use.
		req.Body = io.NopCloser(bytes.NewBuffer(body))
	}
	logutil.Debugf("req:  %s %s %s%s", req.Method, req.URL, headersLine(req.Header), compactBody(string(body)))
}

func LogResponse(resp *http.Response) {
	if !logutil.EnableDebug {
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logutil.Errorf("Failed to read response body: %v", err)
		body = []byte("<error reading body>")
	}

	// Restore the body for further use.
	resp.Body = io.NopCloser(bytes.NewBuffer(body))

	logutil.Debugf("resp: %d %s%s", resp.StatusCode, headersLine(resp.Header), compactBody(string(body)))
}

// headersLine prints headers as "Key=v1,v2" pairs, sorted by key.
func headersLine(h http.Header) string {
	var s []string
	for k, v := range h {
		s = append(s, fmt.Sprintf("%s=%s", k, strings.Join(v, ",")))
	}
	sort.Strings(s)
	return strings.Join(s, " ")
}

// compactBody folds newlines and repeated spaces, and truncates long bodies.
func compactBody(body string) string {
	body = strings.Join(strings.Fields(body), " ")

	switch {
	case body == "":
		return ", no body"
	case len(body) > maxLoggedBody:
		return ", body:" + truncateRunes(body, maxLoggedBody) + "..."
	default:
		return ", body:" + body
	}
}

// truncateRunes cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
