package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/emplanner/planner-backend/internal/model"
	"github.com/emplanner/planner-backend/internal/store"
)

type mockPostAPI struct {
	mu       sync.Mutex
	listFn   func() ([]model.Post, error)
	createFn func(model.Post) (model.Post, error)

	updates []model.Post
	deletes []string
}

func (m *mockPostAPI) ListPosts(ctx context.Context) ([]model.Post, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return []model.Post{}, nil
}

func (m *mockPostAPI) CreatePost(ctx context.Context, p model.Post) (model.Post, error) {
	if m.createFn != nil {
		return m.createFn(p)
	}
	p.ID = "srv-post"
	return p, nil
}

func (m *mockPostAPI) UpdatePost(ctx context.Context, p model.Post) (model.Post, error) {
	m.mu.Lock()
	m.updates = append(m.updates, p)
	m.mu.Unlock()
	return p, nil
}

func (m *mockPostAPI) DeletePost(ctx context.Context, id string) error {
	m.mu.Lock()
	m.deletes = append(m.deletes, id)
	m.mu.Unlock()
	return nil
}

func seedPosts(t *testing.T, posts []model.Post) (*store.PostStore, *mockPostAPI) {
	t.Helper()
	api := &mockPostAPI{
		listFn: func() ([]model.Post, error) { return posts, nil },
	}
	s := store.NewPostStore(api)
	s.Fetch(context.Background())
	s.Wait()
	return s, api
}

func TestByStatusPreservesCollectionOrder(t *testing.T) {
	s, _ := seedPosts(t, []model.Post{
		{ID: "p1", Status: model.PostStatusScheduled},
		{ID: "p2", Status: model.PostStatusDraft},
		{ID: "p3", Status: model.PostStatusScheduled},
		{ID: "p4", Status: model.PostStatusDraft},
		{ID: "p5", Status: model.PostStatusScheduled},
	})

	got := s.ByStatus(model.PostStatusScheduled)
	if len(got) != 3 {
		t.Fatalf("expected 3 scheduled posts, got %d", len(got))
	}
	want := []string{"p1", "p3", "p5"}
	for i, p := range got {
		if p.ID != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], p.ID)
		}
	}
}

func TestByCampaign(t *testing.T) {
	s, _ := seedPosts(t, []model.Post{
		{ID: "p1", CampaignID: "c1"},
		{ID: "p2", CampaignID: "c2"},
		{ID: "p3", CampaignID: "c1"},
		{ID: "p4"},
	})

	got := s.ByCampaign("c1")
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p3" {
		t.Errorf("unexpected result: %+v", got)
	}
	if len(s.ByCampaign("ghost")) != 0 {
		t.Error("expected no posts for unknown campaign")
	}
}

func TestDerivedQueriesAreReadOnly(t *testing.T) {
	s, _ := seedPosts(t, []model.Post{
		{ID: "p1", Status: model.PostStatusDraft, Content: "hello"},
	})

	got := s.ByStatus(model.PostStatusDraft)
	got[0].Content = "mutated"

	again := s.ByStatus(model.PostStatusDraft)
	if again[0].Content != "hello" {
		t.Error("derived query leaked a mutable reference into the store")
	}
}

func TestPostSaveRewritesPublishDateOnly(t *testing.T) {
	publish := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s, api := seedPosts(t, []model.Post{
		{ID: "p1", Content: "original", Status: model.PostStatusScheduled},
	})

	if err := s.Save("p1", store.PostPatch{PublishDate: &publish}); err != nil {
		t.Fatal(err)
	}
	s.Wait()

	p, _ := s.Get("p1")
	if p.PublishDate == nil || !p.PublishDate.Equal(publish) {
		t.Errorf("publish date not applied: %+v", p.PublishDate)
	}
	if p.Content != "original" {
		t.Errorf("unrelated field changed: %s", p.Content)
	}

	api.mu.Lock()
	defer api.mu.Unlock()
	if len(api.updates) != 1 {
		t.Fatalf("expected 1 network call, got %d", len(api.updates))
	}
	sent := api.updates[0]
	if sent.PublishDate.Format(time.RFC3339) != "2024-03-01T09:00:00Z" {
		t.Errorf("wire format mismatch: %s", sent.PublishDate.Format(time.RFC3339))
	}
}

func TestPostCreatePromotion(t *testing.T) {
	s, _ := seedPosts(t, nil)

	draftID := s.Create(model.Post{Content: "new post", Status: model.PostStatusDraft})
	if len(s.Posts()) != 1 {
		t.Fatal("optimistic insert missing")
	}
	s.Wait()

	if _, ok := s.Get(draftID); ok {
		t.Error("draft handle survived promotion")
	}
	if _, ok := s.Get("srv-post"); !ok {
		t.Error("canonical record missing after promotion")
	}
}

func TestPostEditDuringCreateStillPromotes(t *testing.T) {
	release := make(chan struct{})
	api := &mockPostAPI{
		createFn: func(p model.Post) (model.Post, error) {
			<-release
			p.ID = "srv-post"
			return p, nil
		},
	}
	s := store.NewPostStore(api)

	draftID := s.Create(model.Post{Content: "first cut", Status: model.PostStatusDraft})
	content := "final copy"
	if err := s.Save(draftID, store.PostPatch{Content: &content}); err != nil {
		t.Fatal(err)
	}
	close(release)
	s.Wait()

	if _, ok := s.Get(draftID); ok {
		t.Error("draft handle still addressable after promotion")
	}
	p, ok := s.Get("srv-post")
	if !ok {
		t.Fatalf("post never promoted to server id; collection: %+v", s.Posts())
	}
	if p.Content != "final copy" {
		t.Errorf("create confirmation overwrote the newer edit: %s", p.Content)
	}
}
