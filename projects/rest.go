package projects

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sparkshelf/models"
)

// REST reads projects through the hosted service's PostgREST gateway.
type REST struct {
	baseURL string
	apiKey  string
	limit   int
	client  *http.Client
}

func NewREST(baseURL, apiKey string, limit int) *REST {
	return &REST{
		baseURL: baseURL,
		apiKey:  apiKey,
		limit:   limit,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// restProject mirrors a row of the gateway's JSON answer. id and cost are
// kept raw: ids may be numbers or strings, and a cost that is not a number
// is treated as absent.
type restProject struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Difficulty  *string         `json:"difficulty"`
	Cost        json.RawMessage `json:"cost"`
}

func (r restProject) model() models.Project {
	p := models.Project{
		ID:    rawID(r.ID),
		Title: r.Title,
		Cost:  rawCost(r.Cost),
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Difficulty != nil {
		p.Difficulty = *r.Difficulty
	}
	return p
}

func rawID(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func rawCost(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var f float64
	if json.Unmarshal(raw, &f) != nil {
		return nil
	}
	return &f
}

func (s *REST) tableURL(q url.Values) string {
	return s.baseURL + "/rest/v1/projects?" + q.Encode()
}

func (s *REST) get(ctx context.Context, q url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.tableURL(q), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("gateway %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return resp, nil
}

func (s *REST) GetPublishedProjects(ctx context.Context) ([]models.Project, error) {
	return s.published(ctx, s.limit)
}

// Sample returns the newest published project, or nil when there is none.
func (s *REST) Sample(ctx context.Context) (*models.Project, error) {
	list, err := s.published(ctx, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

func (s *REST) published(ctx context.Context, limit int) ([]models.Project, error) {
	q := url.Values{}
	q.Set("select", "id,title,description,difficulty,cost")
	q.Set("is_published", "eq.true")
	q.Set("order", "created_at.desc")
	q.Set("limit", strconv.Itoa(limit))

	resp, err := s.get(ctx, q)
	if err != nil {
		return nil, loadFailed("fetch published projects", err)
	}
	defer resp.Body.Close()

	var rows []restProject
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, loadFailed("decode projects", err)
	}
	list := make([]models.Project, 0, len(rows))
	for _, r := range rows {
		list = append(list, r.model())
	}
	return list, nil
}

func (s *REST) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("limit", "1")

	resp, err := s.get(ctx, q)
	if err != nil {
		return loadFailed("ping", err)
	}
	resp.Body.Close()
	return nil
}
