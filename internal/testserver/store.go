package testserver

import (
	"cmp"
	"errors"
	"slices"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/cloudstore/internal/models"
)

var (
	errEmailTaken     = errors.New("email already exists")
	errUserNotFound   = errors.New("user not found")
	errRecordNotFound = errors.New("record not found")
)

type user struct {
	createdAt    time.Time
	name         string
	email        string
	passwordHash []byte
	id           int64
}

func (u *user) model() models.User {
	return models.User{
		ID:        u.id,
		Name:      u.name,
		Email:     u.email,
		CreatedAt: models.FormatTimestamp(u.createdAt),
	}
}

type record struct {
	createdAt time.Time
	updatedAt time.Time
	key       string
	value     string
	id        int64
	ownerID   int64
}

func (r *record) model() models.DataRecord {
	return models.DataRecord{
		ID:        r.id,
		Key:       r.key,
		Value:     r.value,
		CreatedAt: models.FormatTimestamp(r.createdAt),
		UpdatedAt: models.FormatTimestamp(r.updatedAt),
	}
}

// store хранит пользователей и записи в памяти
type store struct {
	users      map[int64]*user
	usersEmail map[string]int64
	records    map[int64]*record
	nextUserID int64
	nextDataID int64
	mu         sync.Mutex
}

func newStore() *store {
	return &store{
		users:      make(map[int64]*user),
		usersEmail: make(map[string]int64),
		records:    make(map[int64]*record),
	}
}

func (s *store) createUser(name, email, password string, now time.Time) (*user, error) {
	// bcrypt.MinCost: хеш настоящий, но тесты не ждут
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usersEmail[email]; ok {
		return nil, errEmailTaken
	}
	s.nextUserID++
	u := &user{
		id:           s.nextUserID,
		name:         name,
		email:        email,
		passwordHash: hash,
		createdAt:    now,
	}
	s.users[u.id] = u
	s.usersEmail[email] = u.id
	return u, nil
}

// authenticate возвращает пользователя, если пароль совпал с хешем
func (s *store) authenticate(email, password string) (*user, bool) {
	s.mu.Lock()
	id, ok := s.usersEmail[email]
	u := s.users[id]
	s.mu.Unlock()

	if !ok || u == nil {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) != nil {
		return nil, false
	}
	return u, true
}

func (s *store) userByID(id int64) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, errUserNotFound
	}
	return u, nil
}

func (s *store) deleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[id]; ok {
		delete(s.usersEmail, u.email)
		delete(s.users, id)
	}
}

// listRecords возвращает записи владельца, новые первыми
func (s *store) listRecords(ownerID int64) []models.DataRecord {
	s.mu.Lock()
	owned := make([]*record, 0)
	for _, r := range s.records {
		if r.ownerID == ownerID {
			owned = append(owned, r)
		}
	}
	s.mu.Unlock()

	slices.SortFunc(owned, func(a, b *record) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		return cmp.Compare(b.id, a.id)
	})

	out := make([]models.DataRecord, 0, len(owned))
	for _, r := range owned {
		out = append(out, r.model())
	}
	return out
}

func (s *store) getRecord(ownerID, id int64) (models.DataRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok || r.ownerID != ownerID {
		return models.DataRecord{}, errRecordNotFound
	}
	return r.model(), nil
}

func (s *store) createRecord(ownerID int64, key, value string, now time.Time) models.DataRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextDataID++
	r := &record{
		id:        s.nextDataID,
		ownerID:   ownerID,
		key:       key,
		value:     value,
		createdAt: now,
		updatedAt: now,
	}
	s.records[r.id] = r
	return r.model()
}

func (s *store) updateRecord(ownerID, id int64, value string, now time.Time) (models.DataRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok || r.ownerID != ownerID {
		return models.DataRecord{}, errRecordNotFound
	}
	r.value = value
	r.updatedAt = now
	return r.model(), nil
}

func (s *store) deleteRecord(ownerID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok || r.ownerID != ownerID {
		return errRecordNotFound
	}
	delete(s.records, id)
	return nil
}

// stats возвращает число пользователей и записей
func (s *store) stats() (users, records int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), len(s.records)
}
