package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/maelvls/dungeonname/cancellablereader"
	"github.com/maelvls/dungeonname/errutil"
	"github.com/maelvls/dungeonname/logutil"
	"github.com/maelvls/undent"
	"github.com/spf13/cobra"
)

type apiOptions struct {
	showResponseHeaders bool
}

func apiCmd(groupID string) *cobra.Command {
	opts := &apiOptions{}

	cmd := &cobra.Command{
		Use:   "api [path]",
		Short: "Make an HTTP GET request to a running server",
		Long: undent.Undent(`
			Make an HTTP GET request to a server started with 'dungeonname serve'
			and print the response body. Without a path, / is requested.

			The server URL is taken from --api-url or DUNGEONNAME_API_URL, and
			defaults to http://localhost:8080. The command exits with an error
			when the response status is not 2xx.
		`),
		Example: undent.Undent(`
			# Welcome message
			dungeonname api

			# A stable name
			dungeonname api '/name?id=campaign-42'

			# Include response headers
			dungeonname api /status -i

			# Trace the request and response
			dungeonname api /data --debug
		`),
		Args:          cobra.MaximumNArgs(1),
		GroupID:       groupID,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := getToolConfig(cmd)
			if err != nil {
				return err
			}

			path := "/"
			if len(args) == 1 {
				path = args[0]
			}

			cl := &http.Client{Transport: Transport}
			return runAPI(cmd.Context(), cl, conf.APIURL, path, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.showResponseHeaders)
		},
	}

	cmd.Flags().String("api-url", "", "URL of the server (default http://localhost:8080)")
	cmd.Flags().BoolVarP(&opts.showResponseHeaders, "include", "i", false, "Include HTTP response headers in output")

	return cmd
}

func runAPI(ctx context.Context, cl *http.Client, apiURL, path string, stdout, stderr io.Writer, showHeaders bool) error {
	reqURL, err := joinURL(apiURL, path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("while creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.New().String())

	resp, err := cl.Do(req)
	if err != nil {
		return fmt.Errorf("while requesting %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	// Show response headers if requested.
	if showHeaders {
		fmt.Fprintf(stderr, "%s %s\r\n", resp.Proto, resp.Status)
		for name, vals := range resp.Header {
			for _, val := range vals {
				fmt.Fprintf(stderr, "%s: %s\r\n", name, val)
			}
		}
		fmt.Fprintf(stderr, "\r\n")
	}

	body, err := cancellablereader.ReadAllWithContext(ctx, resp.Body)
	if err != nil {
		return fmt.Errorf("while reading response body: %w", err)
	}
	if _, err := stdout.Write(body); err != nil {
		return fmt.Errorf("while writing response body: %w", err)
	}
	if len(body) > 0 && body[len(body)-1] != '\n' {
		fmt.Fprintln(stdout)
	}

	// Exit with error for non-2xx status codes.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logutil.Debugf("api: %s returned %s", reqURL, resp.Status)
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return nil
}

// joinURL appends path, which may carry a query string, to the base URL.
func joinURL(base, path string) (string, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", errutil.Fixable(fmt.Errorf("invalid API URL %q: expected something like http://localhost:8080", base))
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(u.String(), "/") + path, nil
}
