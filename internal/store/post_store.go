package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/emplanner/planner-backend/internal/errors"
	"github.com/emplanner/planner-backend/internal/model"
)

// PostStore mirrors the campaign store's shape for posts, plus two
// derived read-only queries. Same optimistic/sequence rules apply.
type PostStore struct {
	api  PostAPI
	user string

	mu         sync.Mutex
	posts      []model.Post
	selectedID string
	loading    bool
	err        string
	seq        map[string]uint64

	wg sync.WaitGroup
}

func NewPostStore(api PostAPI) *PostStore {
	return &PostStore{
		api:   api,
		user:  "current-user",
		posts: []model.Post{},
		seq:   make(map[string]uint64),
	}
}

func (s *PostStore) SetUser(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *PostStore) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		posts, err := s.api.ListPosts(ctx)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		if err != nil {
			s.err = err.Error()
			return
		}
		s.posts = posts
	}()
}

func (s *PostStore) Create(draft model.Post) string {
	now := time.Now()
	draftID := "draft-" + uuid.NewString()
	draft.ID = draftID
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.Profiles == nil {
		draft.Profiles = []model.Profile{}
	}
	if draft.Media == nil {
		draft.Media = []model.Media{}
	}

	s.mu.Lock()
	if draft.CreatedBy == "" {
		draft.CreatedBy = s.user
	}
	s.posts = append(s.posts, draft)
	seqNo := s.nextSeq(draftID)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		created, err := s.api.CreatePost(context.Background(), draft)
		s.mu.Lock()
		defer s.mu.Unlock()
		superseded := s.seq[draftID] != seqNo
		s.loading = false
		if err != nil {
			if i := s.indexOf(draftID); i >= 0 {
				s.posts = append(s.posts[:i], s.posts[i+1:]...)
			}
			if s.selectedID == draftID {
				s.selectedID = ""
			}
			delete(s.seq, draftID)
			s.err = err.Error()
			return
		}
		// Promotion happens even when a concurrent edit superseded the
		// create; the edit only owns the field values.
		if i := s.indexOf(draftID); i >= 0 {
			if superseded {
				s.posts[i].ID = created.ID
			} else {
				s.posts[i] = created
			}
		}
		if s.selectedID == draftID {
			s.selectedID = created.ID
		}
		s.seq[created.ID] = s.seq[draftID]
		delete(s.seq, draftID)
	}()

	return draftID
}

func (s *PostStore) Save(id string, patch PostPatch) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		err := appErrors.NewPostNotFound(id)
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}

	applyPostPatch(&s.posts[i], patch)
	prev := s.posts[i].UpdatedAt
	now := time.Now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	s.posts[i].UpdatedAt = now

	record := s.posts[i]
	seqNo := s.nextSeq(id)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		updated, err := s.api.UpdatePost(context.Background(), record)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.seq[id] != seqNo {
			return
		}
		s.loading = false
		if err != nil {
			s.err = err.Error()
			return
		}
		if j := s.indexOf(id); j >= 0 {
			s.posts[j] = updated
		}
	}()

	return nil
}

func (s *PostStore) Remove(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		err := appErrors.NewPostNotFound(id)
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	delete(s.seq, id)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := s.api.DeletePost(context.Background(), id)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		if err != nil {
			s.err = err.Error()
		}
	}()

	return nil
}

func (s *PostStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" || s.indexOf(id) < 0 {
		s.selectedID = ""
		return
	}
	s.selectedID = id
}

// ByCampaign returns posts referencing the campaign, in collection order.
func (s *PostStore) ByCampaign(campaignID string) []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Post{}
	for _, p := range s.posts {
		if p.CampaignID == campaignID {
			out = append(out, p)
		}
	}
	return out
}

// ByStatus returns posts with exactly that status, in collection order.
func (s *PostStore) ByStatus(status string) []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Post{}
	for _, p := range s.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

func (s *PostStore) Posts() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *PostStore) Get(id string) (model.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.posts[i], true
	}
	return model.Post{}, false
}

func (s *PostStore) Selected() (model.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return model.Post{}, false
	}
	if i := s.indexOf(s.selectedID); i >= 0 {
		return s.posts[i], true
	}
	return model.Post{}, false
}

func (s *PostStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *PostStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *PostStore) Wait() {
	s.wg.Wait()
}

func (s *PostStore) indexOf(id string) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *PostStore) nextSeq(id string) uint64 {
	s.seq[id]++
	return s.seq[id]
}

func applyPostPatch(p *model.Post, patch PostPatch) {
	if patch.CampaignID != nil {
		p.CampaignID = *patch.CampaignID
	}
	if patch.Profiles != nil {
		p.Profiles = *patch.Profiles
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Media != nil {
		p.Media = *patch.Media
	}
	if patch.PublishDate != nil {
		p.PublishDate = patch.PublishDate
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.LinkInBio != nil {
		p.LinkInBio = *patch.LinkInBio
	}
	if patch.Comments != nil {
		p.Comments = *patch.Comments
	}
}
