package githubapi

import "net/http"

// NewWithHTTPClientForTest creates a client over httpClient. appAuth selects installation repository listing.
func NewWithHTTPClientForTest(httpClient *http.Client, appAuth bool, opts ...Option) (*Client, error) {
	return newClient(httpClient, appAuth, opts...)
}
