package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/utils/logutils"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// DefaultEndpoint is the GitHub GraphQL API endpoint.
const DefaultEndpoint = "https://api.github.com/graphql"

type Client struct {
	httpClient *http.Client
	endpoint   string
	gh         *githubv4.Client
}

func NewClient(token string, endpoint string) (*Client, error) {
	if token == "" {
		return nil, errors.Errorf("no GitHub token provided (do you need to configure one?)")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(context.Background(), src)
	return &Client{httpClient, endpoint, githubv4.NewEnterpriseClient(endpoint, httpClient)}, nil
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Call executes a single GraphQL request and returns the raw `data` member of
// the response envelope. The shape of the data is not validated.
//
// Any non-2xx response is reported as a TransportError. Requests are never
// retried.
func (c *Client) Call(ctx context.Context, query string, variables map[string]any) (_ json.RawMessage, reterr error) {
	log := logrus.WithFields(logrus.Fields{
		"endpoint":  c.endpoint,
		"variables": logutils.Format("%#+v", variables),
	})
	log.Debug("executing GitHub API call...")
	startTime := time.Now()
	defer func() {
		log := log.WithField("elapsed", time.Since(startTime))
		if reterr != nil {
			log.WithError(reterr).Debug("GitHub API call failed")
		} else {
			log.Debug("GitHub API call succeeded")
		}
	}()

	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request body to JSON")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to make API request")
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.WithFields(logrus.Fields{
			"status": res.StatusCode,
			"body":   string(resBody),
		}).Debug("GitHub API returned a non-success status")
		return nil, newTransportError(res)
	}

	var envelope response
	if err := json.Unmarshal(resBody, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response body")
	}
	for _, e := range envelope.Errors {
		log.WithField("message", e.Message).Debug("GitHub API reported an error")
	}
	if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
		if len(envelope.Errors) > 0 {
			return nil, errors.Errorf("GitHub API returned no data: %s", envelope.Errors[0].Message)
		}
		return nil, errors.New("GitHub API returned no data")
	}
	return envelope.Data, nil
}

// callInto executes the query and decodes the data payload into result.
func (c *Client) callInto(ctx context.Context, query string, variables map[string]any, result any) error {
	data, err := c.Call(ctx, query, variables)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, result); err != nil {
		return errors.Wrap(err, "failed to decode GitHub API data")
	}
	return nil
}

func (c *Client) query(ctx context.Context, query any, variables map[string]any) (reterr error) {
	log := logrus.WithFields(logrus.Fields{
		"variables": logutils.Format("%#+v", variables),
	})
	log.Debug("executing GitHub API query...")
	startTime := time.Now()
	defer func() {
		log := log.WithFields(logrus.Fields{
			"elapsed": time.Since(startTime),
			"result":  logutils.Format("%#+v", query),
		})
		if reterr != nil {
			log.WithError(reterr).Debug("GitHub API query failed")
		} else {
			log.Debug("GitHub API query succeeded")
		}
	}()
	return c.gh.Query(ctx, query, variables)
}
