// Package api is the HTTP client the stores use to talk to the planner
// backend: JSON bodies, no auth, any non-2xx status is a plain failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/emplanner/planner-backend/internal/model"
	"github.com/emplanner/planner-backend/internal/store"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// ====================== Campaigns ======================

func (c *Client) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	if err := c.do(ctx, http.MethodGet, "/campaigns", nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (c *Client) CreateCampaign(ctx context.Context, campaign model.Campaign) (model.Campaign, error) {
	var created model.Campaign
	if err := c.do(ctx, http.MethodPost, "/campaigns", campaign, &created); err != nil {
		return model.Campaign{}, err
	}
	return created, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, campaign model.Campaign) (model.Campaign, error) {
	var updated model.Campaign
	if err := c.do(ctx, http.MethodPut, "/campaigns/"+campaign.ID, campaign, &updated); err != nil {
		return model.Campaign{}, err
	}
	return updated, nil
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/campaigns/"+id, nil, nil)
}

// ====================== Posts ======================

func (c *Client) ListPosts(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) CreatePost(ctx context.Context, post model.Post) (model.Post, error) {
	var created model.Post
	if err := c.do(ctx, http.MethodPost, "/posts", post, &created); err != nil {
		return model.Post{}, err
	}
	return created, nil
}

func (c *Client) UpdatePost(ctx context.Context, post model.Post) (model.Post, error) {
	var updated model.Post
	if err := c.do(ctx, http.MethodPut, "/posts/"+post.ID, post, &updated); err != nil {
		return model.Post{}, err
	}
	return updated, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil)
}

// ====================== Notes ======================

func (c *Client) ListNotes(ctx context.Context) ([]model.Note, error) {
	var notes []model.Note
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, note model.Note) (model.Note, error) {
	var created model.Note
	if err := c.do(ctx, http.MethodPost, "/notes", note, &created); err != nil {
		return model.Note{}, err
	}
	return created, nil
}

func (c *Client) PatchNote(ctx context.Context, id string, patch store.NotePatch) (model.Note, error) {
	var updated model.Note
	if err := c.do(ctx, http.MethodPatch, "/notes/"+id, patch, &updated); err != nil {
		return model.Note{}, err
	}
	return updated, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+id, nil, nil)
}

// ====================== Profiles ======================

func (c *Client) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := c.do(ctx, http.MethodGet, "/profiles", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

var (
	_ store.CampaignAPI = (*Client)(nil)
	_ store.PostAPI     = (*Client)(nil)
	_ store.NoteAPI     = (*Client)(nil)
)
