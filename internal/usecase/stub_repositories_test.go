package usecase

import (
	"context"
	"strings"
	"sync"

	"xenopets/internal/domain/entity"
	"xenopets/pkg/errors"
)

// In-memory repository stubs with per-call failure injection.

type stubUserRepo struct {
	mu       sync.Mutex
	users    map[string]*entity.User
	failList bool
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *stubUserRepo) Search(ctx context.Context, query string, limit int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if strings.HasPrefix(u.Username, query) && len(out) < limit {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failList {
		return nil, errors.Internal("user store unavailable", nil)
	}
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateBalance(ctx context.Context, userID string, kind entity.CurrencyKind, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	switch kind {
	case entity.CurrencyXenocoins:
		user.Xenocoins += delta
		user.TotalXenocoins += delta
	case entity.CurrencyCash:
		user.Cash += delta
	}
	return nil
}

type stubPetRepo struct {
	mu       sync.Mutex
	pets     []*entity.Pet
	failList bool
}

func (r *stubPetRepo) Create(ctx context.Context, pet *entity.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pets = append(r.pets, pet)
	return nil
}

func (r *stubPetRepo) GetByID(ctx context.Context, id string) (*entity.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.pets {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Pet", nil)
}

func (r *stubPetRepo) Update(ctx context.Context, pet *entity.Pet) error { return nil }

func (r *stubPetRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Pet
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPetRepo) List(ctx context.Context) ([]*entity.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failList {
		return nil, errors.Internal("pet store unavailable", nil)
	}
	return append([]*entity.Pet(nil), r.pets...), nil
}

type stubInventoryRepo struct {
	mu       sync.Mutex
	items    []*entity.InventoryItem
	failList bool
}

func (r *stubInventoryRepo) Add(ctx context.Context, item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *stubInventoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.InventoryItem
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubInventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failList {
		return nil, errors.Internal("inventory store unavailable", nil)
	}
	return append([]*entity.InventoryItem(nil), r.items...), nil
}

type stubNotificationRepo struct {
	mu      sync.Mutex
	created []*entity.Notification
}

func (r *stubNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, notification)
	return nil
}

func (r *stubNotificationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.created {
		if n.UserID == userID && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(ctx context.Context, id string) error { return nil }

type stubAchievementRepo struct {
	mu           sync.Mutex
	achievements map[string]*entity.Achievement
}

func newStubAchievementRepo(achievements ...*entity.Achievement) *stubAchievementRepo {
	r := &stubAchievementRepo{achievements: make(map[string]*entity.Achievement)}
	for _, a := range achievements {
		r.achievements[a.UserID+"/"+a.ID] = a
	}
	return r
}

func (r *stubAchievementRepo) GetByID(ctx context.Context, userID, achievementID string) (*entity.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.achievements[userID+"/"+achievementID]
	if !ok {
		return nil, errors.NotFound("Achievement", nil)
	}
	return a, nil
}

func (r *stubAchievementRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Achievement
	for _, a := range r.achievements {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAchievementRepo) Update(ctx context.Context, achievement *entity.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.achievements[achievement.UserID+"/"+achievement.ID] = achievement
	return nil
}

type stubQuestRepo struct {
	mu     sync.Mutex
	quests map[string]*entity.Quest
}

func newStubQuestRepo(quests ...*entity.Quest) *stubQuestRepo {
	r := &stubQuestRepo{quests: make(map[string]*entity.Quest)}
	for _, q := range quests {
		r.quests[q.UserID+"/"+q.ID] = q
	}
	return r
}

func (r *stubQuestRepo) GetByID(ctx context.Context, userID, questID string) (*entity.Quest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quests[userID+"/"+questID]
	if !ok {
		return nil, errors.NotFound("Quest", nil)
	}
	return q, nil
}

func (r *stubQuestRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Quest, error) {
	return nil, nil
}

func (r *stubQuestRepo) Update(ctx context.Context, quest *entity.Quest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quests[quest.UserID+"/"+quest.ID] = quest
	return nil
}

type stubCollectibleRepo struct {
	mu           sync.Mutex
	collectibles map[string]*entity.Collectible
}

func newStubCollectibleRepo(collectibles ...*entity.Collectible) *stubCollectibleRepo {
	r := &stubCollectibleRepo{collectibles: make(map[string]*entity.Collectible)}
	for _, c := range collectibles {
		r.collectibles[c.UserID+"/"+c.ID] = c
	}
	return r
}

func (r *stubCollectibleRepo) GetByID(ctx context.Context, userID, collectibleID string) (*entity.Collectible, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.collectibles[userID+"/"+collectibleID]
	if !ok {
		return nil, errors.NotFound("Collectible", nil)
	}
	return c, nil
}

func (r *stubCollectibleRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Collectible, error) {
	return nil, nil
}

func (r *stubCollectibleRepo) Update(ctx context.Context, collectible *entity.Collectible) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collectibles[collectible.UserID+"/"+collectible.ID] = collectible
	return nil
}

type recordingPusher struct {
	mu       sync.Mutex
	messages map[string][][]byte
}

func newRecordingPusher() *recordingPusher {
	return &recordingPusher{messages: make(map[string][][]byte)}
}

func (p *recordingPusher) SendToUser(userID string, message []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages[userID] = append(p.messages[userID], message)
}

type recordingBroadcaster struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (b *recordingBroadcaster) Broadcast(message []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.payloads = append(b.payloads, message)
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.payloads)
}
