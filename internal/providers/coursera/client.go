package coursera

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"catalog-export/internal/domain"
	"catalog-export/internal/httpx"
)

const (
	DefaultBaseURL          = "https://www.coursera.org/api/catalogResults.v2"
	DefaultPrimaryLanguages = "en"

	// DefaultLimit is meant to return every result in one page. The API does
	// not paginate this query, so anything past the limit is dropped server-side.
	DefaultLimit = 9999

	DefaultFields   = "courseId,domainId,specializationId,courses.v1(name,description,photoUrl,courseStatus,partnerIds),partners.v1(name)"
	DefaultIncludes = "courseId,courses.v1(partnerIds)"
)

type Options struct {
	BaseURL          string
	PrimaryLanguages string
	Limit            int
	Fields           string
	Includes         string

	// Retry defaults to a single attempt.
	Retry httpx.RetryConfig
	// Timeout is per request; zero means none.
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.PrimaryLanguages == "" {
		o.PrimaryLanguages = DefaultPrimaryLanguages
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Fields == "" {
		o.Fields = DefaultFields
	}
	if o.Includes == "" {
		o.Includes = DefaultIncludes
	}
	if o.Retry.MaxAttempts <= 0 {
		o.Retry = httpx.NoRetry()
	}
	return o
}

type Client struct {
	Opts Options
	HTTP *http.Client
}

func New(opts Options) *Client {
	opts = opts.withDefaults()
	return &Client{
		Opts: opts,
		HTTP: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

// baseQuery holds the parameters shared by discovery and course queries.
func (c *Client) baseQuery() url.Values {
	q := url.Values{}
	q.Set("primaryLanguages", c.Opts.PrimaryLanguages)
	q.Set("debug", "false")
	q.Set("limit", strconv.Itoa(c.Opts.Limit))
	q.Set("q", "bySubdomain")
	return q
}

func (c *Client) buildURL(q url.Values) (string, error) {
	u, err := url.Parse(c.Opts.BaseURL)
	if err != nil {
		return "", fmt.Errorf("coursera: invalid base url: %w", err)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// SubdomainsURL is the discovery query. subdomainId=true asks the API for the
// subdomain facet listing instead of a single subdomain.
func (c *Client) SubdomainsURL() (string, error) {
	q := c.baseQuery()
	q.Set("subdomainId", "true")
	return c.buildURL(q)
}

func (c *Client) SubdomainCoursesURL(subdomainID string) (string, error) {
	q := c.baseQuery()
	q.Set("subdomainId", subdomainID)
	q.Set("fields", c.Opts.Fields)
	q.Set("includes", c.Opts.Includes)
	return c.buildURL(q)
}

// ListSubdomains returns the facet entries of the discovery query in
// response order.
func (c *Client) ListSubdomains(ctx context.Context) ([]domain.Subdomain, error) {
	const op = "list subdomains"

	u, err := c.SubdomainsURL()
	if err != nil {
		return nil, err
	}

	var resp subdomainsResponse
	if err := c.getJSON(ctx, op, u, &resp); err != nil {
		return nil, err
	}

	switch {
	case resp.Paging == nil:
		return nil, missingKey(op, u, "paging")
	case resp.Paging.Facets == nil:
		return nil, missingKey(op, u, "paging.facets")
	case resp.Paging.Facets.Subdomains == nil:
		return nil, missingKey(op, u, "paging.facets.subdomains")
	case resp.Paging.Facets.Subdomains.FacetEntries == nil:
		return nil, missingKey(op, u, "paging.facets.subdomains.facetEntries")
	}

	entries := resp.Paging.Facets.Subdomains.FacetEntries
	out := make([]domain.Subdomain, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.Subdomain{ID: string(e.ID), Name: e.Name})
	}
	return out, nil
}

// ListSubdomainCourses fetches the courses of one subdomain along with the
// partners linked from them.
func (c *Client) ListSubdomainCourses(ctx context.Context, subdomainID string) (SubdomainCourses, error) {
	op := "list courses for subdomain " + subdomainID

	u, err := c.SubdomainCoursesURL(subdomainID)
	if err != nil {
		return SubdomainCourses{}, err
	}

	var resp coursesResponse
	if err := c.getJSON(ctx, op, u, &resp); err != nil {
		return SubdomainCourses{}, err
	}

	switch {
	case resp.Linked == nil:
		return SubdomainCourses{}, missingKey(op, u, "linked")
	case resp.Linked.Courses == nil:
		return SubdomainCourses{}, missingKey(op, u, `linked["courses.v1"]`)
	case resp.Linked.Partners == nil:
		return SubdomainCourses{}, missingKey(op, u, `linked["partners.v1"]`)
	}

	return SubdomainCourses{
		Courses:  resp.Linked.Courses,
		Partners: resp.Linked.Partners,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, op, u string, out any) error {
	buildReq := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf("coursera: build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Accept-Encoding", httpx.AcceptEncoding)
		return req, nil
	}

	err := httpx.DoJSON(ctx, c.HTTP, buildReq, out, c.Opts.Retry)

	var derr *httpx.DecodeError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &derr):
		return &ParseError{Op: op, URL: u, Reason: "invalid json", Err: err}
	default:
		return &NetworkError{Op: op, URL: u, Err: err}
	}
}
