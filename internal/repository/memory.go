package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"toolverse/internal/catalog"
	"toolverse/internal/models"
)

// collection is an id-keyed map that remembers insertion order.
type collection[T any] struct {
	items map[string]*T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]*T)}
}

func (c *collection[T]) get(id string) (*T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) put(id string, v *T) {
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) delete(id string) {
	if _, exists := c.items[id]; !exists {
		return
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
}

// values returns the stored pointers in insertion order.
func (c *collection[T]) values() []*T {
	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// memoryDB holds every collection behind a single lock so joins see a consistent view.
// Stored values are never handed out; reads return copies.
type memoryDB struct {
	mu        sync.RWMutex
	users     *collection[models.User]
	tools     *collection[models.Tool]
	userTools *collection[models.UserTool]
	posts     *collection[models.BlogPost]
	now       func() time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *Store {
	db := &memoryDB{
		users:     newCollection[models.User](),
		tools:     newCollection[models.Tool](),
		userTools: newCollection[models.UserTool](),
		posts:     newCollection[models.BlogPost](),
		now:       time.Now,
	}
	return &Store{
		Users:     &memoryUserRepository{db: db},
		Tools:     &memoryToolRepository{db: db},
		UserTools: &memoryUserToolRepository{db: db},
		BlogPosts: &memoryBlogPostRepository{db: db},
		Seeder:    &memorySeeder{db: db},
		Backend:   "memory",
	}
}

func copyTool(t *models.Tool) *models.Tool {
	c := *t
	return &c
}

func copyPost(p *models.BlogPost) *models.BlogPost {
	c := *p
	return &c
}

func copyUser(u *models.User) *models.User {
	c := *u
	return &c
}

func copyUserTool(ut *models.UserTool) *models.UserTool {
	c := *ut
	c.Tool = nil
	return &c
}

// --- users ---

type memoryUserRepository struct {
	db *memoryDB
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(u), nil
}

func (r *memoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *memoryUserRepository) find(match func(*models.User) bool) (*models.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, u := range r.db.users.values() {
		if match(u) {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users.values() {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrConflict
		}
	}
	user.ID = newID()
	user.CreatedAt = r.db.now()
	r.db.users.put(user.ID, copyUser(user))
	return nil
}

// --- tools ---

type memoryToolRepository struct {
	db *memoryDB
}

func (r *memoryToolRepository) List(_ context.Context, filter catalog.ToolFilter) ([]*models.Tool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := catalog.QueryTools(r.db.tools.values(), filter)
	for i, t := range out {
		out[i] = copyTool(t)
	}
	return out, nil
}

func (r *memoryToolRepository) GetByID(_ context.Context, id string) (*models.Tool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	t, ok := r.db.tools.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return copyTool(t), nil
}

func (r *memoryToolRepository) GetByIDs(_ context.Context, ids []string) ([]*models.Tool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]*models.Tool, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.db.tools.get(id); ok {
			out = append(out, copyTool(t))
		}
	}
	return out, nil
}

func (r *memoryToolRepository) Create(_ context.Context, tool *models.Tool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	tool.ID = newID()
	tool.Rating = 0
	tool.Featured = false
	tool.CreatedAt = r.db.now()
	r.db.tools.put(tool.ID, copyTool(tool))
	return nil
}

// --- user tools ---

type memoryUserToolRepository struct {
	db *memoryDB
}

func (r *memoryUserToolRepository) ListByUser(_ context.Context, userID string) ([]*models.UserTool, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]*models.UserTool, 0)
	for _, link := range r.db.userTools.values() {
		if link.UserID != userID {
			continue
		}
		tool, ok := r.db.tools.get(link.ToolID)
		if !ok {
			continue
		}
		joined := copyUserTool(link)
		joined.Tool = copyTool(tool)
		out = append(out, joined)
	}
	return out, nil
}

// findLocked returns the first link for the pair. Caller holds the lock.
func (r *memoryUserToolRepository) findLocked(userID, toolID string) (*models.UserTool, bool) {
	for _, link := range r.db.userTools.values() {
		if link.UserID == userID && link.ToolID == toolID {
			return link, true
		}
	}
	return nil, false
}

func (r *memoryUserToolRepository) Add(_ context.Context, link *models.UserTool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, exists := r.findLocked(link.UserID, link.ToolID); exists {
		return ErrConflict
	}
	link.ID = newID()
	link.AddedAt = r.db.now()
	r.db.userTools.put(link.ID, copyUserTool(link))
	return nil
}

func (r *memoryUserToolRepository) Remove(_ context.Context, userID, toolID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if link, ok := r.findLocked(userID, toolID); ok {
		r.db.userTools.delete(link.ID)
	}
	return nil
}

func (r *memoryUserToolRepository) Update(_ context.Context, userID, toolID string, patch models.UserToolPatch) (*models.UserTool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	link, ok := r.findLocked(userID, toolID)
	if !ok {
		return nil, ErrNotFound
	}
	updated := copyUserTool(link)
	patch.Apply(updated)
	r.db.userTools.put(updated.ID, updated)
	return copyUserTool(updated), nil
}

// --- blog posts ---

type memoryBlogPostRepository struct {
	db *memoryDB
}

func (r *memoryBlogPostRepository) List(_ context.Context, filter catalog.BlogFilter) ([]*models.BlogPost, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := catalog.QueryPosts(r.db.posts.values(), filter)
	for i, p := range out {
		out[i] = copyPost(p)
	}
	return out, nil
}

func (r *memoryBlogPostRepository) GetByID(_ context.Context, id string) (*models.BlogPost, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.posts.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return copyPost(p), nil
}

func (r *memoryBlogPostRepository) Create(_ context.Context, post *models.BlogPost) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	post.ID = newID()
	post.Views = 0
	post.Featured = false
	post.CreatedAt = r.db.now()
	r.db.posts.put(post.ID, copyPost(post))
	return nil
}

// --- seeding ---

type memorySeeder struct {
	db *memoryDB
}

func (s *memorySeeder) SeedTools(_ context.Context, tools []*models.Tool) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, t := range tools {
		if _, exists := s.db.tools.get(t.ID); !exists {
			s.db.tools.put(t.ID, copyTool(t))
		}
	}
	return nil
}

func (s *memorySeeder) SeedBlogPosts(_ context.Context, posts []*models.BlogPost) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, p := range posts {
		if _, exists := s.db.posts.get(p.ID); !exists {
			s.db.posts.put(p.ID, copyPost(p))
		}
	}
	return nil
}

func (s *memorySeeder) SeedUsers(_ context.Context, users []*models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, u := range users {
		if _, exists := s.db.users.get(u.ID); !exists {
			s.db.users.put(u.ID, copyUser(u))
		}
	}
	return nil
}
