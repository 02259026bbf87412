package devapi

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/stream-console/internal/utils"
	"github.com/MKhiriev/stream-console/models"
)

type userRecord struct {
	user         models.User
	passwordHash string
}

// repository keeps users and streams in insertion order.
type repository struct {
	mu sync.RWMutex

	users     map[string]*userRecord
	userOrder []string

	streams     map[string]*models.Stream
	streamOrder []string

	hashKey string
	ids     *utils.UUIDGenerator
	now     func() time.Time
}

func newRepository(hashKey string) *repository {
	return &repository{
		users:   make(map[string]*userRecord),
		streams: make(map[string]*models.Stream),
		hashKey: hashKey,
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
	}
}

func (r *repository) authenticate(email, password string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec := r.findByEmail(email)
	if rec == nil || !utils.EqualHash(password, r.hashKey, rec.passwordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	return rec.user, nil
}

func (r *repository) listUsers(page, limit int) models.Page[models.User] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := pageOf(r.userOrder, page, limit)
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, r.users[id].user)
	}

	return newPage(users, page, limit, len(r.userOrder))
}

func (r *repository) getUser(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("get user %q: %w", id, ErrUserNotFound)
	}
	return rec.user, nil
}

func (r *repository) createUser(in models.UserInput) (models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if err := validateUserInput(in); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByEmail(in.Email) != nil {
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		ID:        r.ids.Generate(),
		Name:      strings.TrimSpace(in.Name),
		Email:     in.Email,
		Role:      in.Role,
		Status:    "active",
		CreatedAt: r.now().UTC(),
	}
	r.users[user.ID] = &userRecord{user: user, passwordHash: utils.HashString(in.Password, r.hashKey)}
	r.userOrder = append(r.userOrder, user.ID)

	return user, nil
}

func (r *repository) updateUser(id string, patch models.UserPatch) (models.User, error) {
	if patch.Empty() {
		return models.User{}, ErrNothingToUpdate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("update user %q: %w", id, ErrUserNotFound)
	}

	updated := rec.user
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return models.User{}, fmt.Errorf("%w: empty name", ErrInvalidData)
		}
		updated.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
		if other := r.findByEmail(email); other != nil && other.user.ID != id {
			return models.User{}, ErrEmailTaken
		}
		updated.Email = email
	}
	if patch.Role != nil {
		if !slices.Contains(models.Roles(), *patch.Role) {
			return models.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidData, *patch.Role)
		}
		updated.Role = *patch.Role
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return models.User{}, fmt.Errorf("%w: empty password", ErrInvalidData)
		}
		rec.passwordHash = utils.HashString(*patch.Password, r.hashKey)
	}

	rec.user = updated
	return updated, nil
}

func (r *repository) deleteUser(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("delete user %q: %w", id, ErrUserNotFound)
	}
	delete(r.users, id)
	r.userOrder = slices.DeleteFunc(r.userOrder, func(v string) bool { return v == id })
	return nil
}

func (r *repository) listStreams(page, limit int) models.Page[models.Stream] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := pageOf(r.streamOrder, page, limit)
	streams := make([]models.Stream, 0, len(ids))
	for _, id := range ids {
		streams = append(streams, *r.streams[id])
	}

	return newPage(streams, page, limit, len(r.streamOrder))
}

func (r *repository) getStream(id string) (models.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.streams[id]
	if !ok {
		return models.Stream{}, fmt.Errorf("get stream %q: %w", id, ErrStreamNotFound)
	}
	return *s, nil
}

func (r *repository) createStream(in models.StreamInput) (models.Stream, error) {
	if in.Status == "" {
		in.Status = models.StreamScheduled
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.StreamerID) == "" {
		return models.Stream{}, fmt.Errorf("%w: title and streamer are required", ErrInvalidData)
	}
	if !slices.Contains(models.StreamStatuses(), in.Status) {
		return models.Stream{}, fmt.Errorf("%w: unknown status %q", ErrInvalidData, in.Status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := &models.Stream{
		ID:          r.ids.Generate(),
		Title:       strings.TrimSpace(in.Title),
		StreamerID:  strings.TrimSpace(in.StreamerID),
		PlaybackURL: in.PlaybackURL,
	}
	r.setStreamStatus(s, in.Status)
	r.streams[s.ID] = s
	r.streamOrder = append(r.streamOrder, s.ID)

	return *s, nil
}

func (r *repository) updateStream(id string, patch models.StreamPatch) (models.Stream, error) {
	if patch.Empty() {
		return models.Stream{}, ErrNothingToUpdate
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return models.Stream{}, fmt.Errorf("%w: empty title", ErrInvalidData)
	}
	if patch.Status != nil && !slices.Contains(models.StreamStatuses(), *patch.Status) {
		return models.Stream{}, fmt.Errorf("%w: unknown status %q", ErrInvalidData, *patch.Status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.streams[id]
	if !ok {
		return models.Stream{}, fmt.Errorf("update stream %q: %w", id, ErrStreamNotFound)
	}

	if patch.Title != nil {
		s.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.PlaybackURL != nil {
		s.PlaybackURL = *patch.PlaybackURL
	}
	if patch.Status != nil {
		r.setStreamStatus(s, *patch.Status)
	}

	return *s, nil
}

func (r *repository) deleteStream(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.streams[id]; !ok {
		return fmt.Errorf("delete stream %q: %w", id, ErrStreamNotFound)
	}
	delete(r.streams, id)
	r.streamOrder = slices.DeleteFunc(r.streamOrder, func(v string) bool { return v == id })
	return nil
}

// setStreamStatus stamps StartedAt when a stream goes live and drops the
// viewer count once it has ended.
func (r *repository) setStreamStatus(s *models.Stream, status string) {
	if status == models.StreamLive && s.Status != models.StreamLive {
		s.StartedAt = r.now().UTC()
	}
	if status == models.StreamEnded {
		s.Viewers = 0
	}
	s.Status = status
}

// findByEmail must be called with r.mu held.
func (r *repository) findByEmail(email string) *userRecord {
	for _, rec := range r.users {
		if strings.EqualFold(rec.user.Email, email) {
			return rec
		}
	}
	return nil
}

func validateUserInput(in models.UserInput) error {
	if strings.TrimSpace(in.Name) == "" || in.Password == "" {
		return fmt.Errorf("%w: name and password are required", ErrInvalidData)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if !slices.Contains(models.Roles(), in.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidData, in.Role)
	}
	return nil
}

func pageOf(ids []string, page, limit int) []string {
	start := (page - 1) * limit
	if start >= len(ids) {
		return nil
	}
	end := min(start+limit, len(ids))
	return ids[start:end]
}

func newPage[T any](results []T, page, limit, total int) models.Page[T] {
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return models.Page[T]{
		Results:      results,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
		TotalResults: total,
	}
}
