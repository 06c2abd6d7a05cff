package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/finzzup/portal-api/internal/core/domain"
)

// In-memory repositories shared by the service tests.

type stubClientRepo struct {
	clients map[string]*domain.Client // by ID
	seq     int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) add(c domain.Client) *domain.Client {
	if c.ID == "" {
		r.seq++
		c.ID = fmt.Sprintf("client_%d", r.seq)
	}
	stored := c
	r.clients[stored.ID] = &stored
	return &stored
}

func (r *stubClientRepo) FindActiveByInviteCode(_ context.Context, code string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.InviteCode == code && c.Active {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	if c, ok := r.clients[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == client.Email || c.InviteCode == client.InviteCode {
			return nil, domain.ErrClientExists
		}
	}
	return r.add(*client), nil
}

type stubAdminRepo struct {
	admins map[string]*domain.Admin // by email
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	if a, ok := r.admins[email]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrAccountNotFound
}

type stubCredentialRepo struct {
	creds map[string]*domain.Credential // by email
	seq   int
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{creds: make(map[string]*domain.Credential)}
}

func (r *stubCredentialRepo) Create(_ context.Context, cred *domain.Credential) (*domain.Credential, error) {
	if _, exists := r.creds[cred.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.seq++
	stored := *cred
	stored.ID = fmt.Sprintf("cred_%d", r.seq)
	r.creds[stored.Email] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubCredentialRepo) FindByEmail(_ context.Context, email string) (*domain.Credential, error) {
	if c, ok := r.creds[email]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrAccountNotFound
}

type stubRevoker struct {
	revoked map[string]time.Duration
	err     error
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if r.err != nil {
		return r.err
	}
	r.revoked[jti] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.revoked[jti]
	return ok, nil
}

type stubKPIRepo struct {
	snaps map[string]*domain.KPISnapshot // by ID
	seq   int
}

func newStubKPIRepo() *stubKPIRepo {
	return &stubKPIRepo{snaps: make(map[string]*domain.KPISnapshot)}
}

func (r *stubKPIRepo) Latest(_ context.Context, clientID string) (*domain.KPISnapshot, error) {
	var latest *domain.KPISnapshot
	for _, s := range r.snaps {
		if s.ClientID != clientID {
			continue
		}
		if latest == nil || s.UpdatedAt.After(latest.UpdatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, domain.ErrKPINotFound
	}
	clone := *latest
	return &clone, nil
}

func (r *stubKPIRepo) Upsert(_ context.Context, snap *domain.KPISnapshot) (*domain.KPISnapshot, error) {
	stored := *snap
	if stored.ID == "" {
		r.seq++
		stored.ID = fmt.Sprintf("kpi_%d", r.seq)
	}
	r.snaps[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

type stubActionRepo struct {
	items map[string]*domain.ActionItem // by ID
	seq   int
}

func newStubActionRepo() *stubActionRepo {
	return &stubActionRepo{items: make(map[string]*domain.ActionItem)}
}

func (r *stubActionRepo) ListByClient(_ context.Context, clientID string) ([]domain.ActionItem, error) {
	out := []domain.ActionItem{}
	for _, it := range r.items {
		if it.ClientID == clientID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubActionRepo) Create(_ context.Context, item *domain.ActionItem) (*domain.ActionItem, error) {
	r.seq++
	stored := *item
	stored.ID = fmt.Sprintf("action_%d", r.seq)
	r.items[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubActionRepo) FindByID(_ context.Context, id string) (*domain.ActionItem, error) {
	if it, ok := r.items[id]; ok {
		clone := *it
		return &clone, nil
	}
	return nil, domain.ErrActionNotFound
}

func (r *stubActionRepo) SetDone(_ context.Context, id string, done bool) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrActionNotFound
	}
	it.Done = done
	return nil
}

func (r *stubActionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrActionNotFound
	}
	delete(r.items, id)
	return nil
}

type stubEngagementRepo struct {
	byClient map[string]*domain.Engagement
	seq      int
}

func newStubEngagementRepo() *stubEngagementRepo {
	return &stubEngagementRepo{byClient: make(map[string]*domain.Engagement)}
}

func (r *stubEngagementRepo) FindByClient(_ context.Context, clientID string) (*domain.Engagement, error) {
	if e, ok := r.byClient[clientID]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, domain.ErrEngagementNotFound
}

func (r *stubEngagementRepo) Upsert(_ context.Context, eng *domain.Engagement) (*domain.Engagement, error) {
	stored := *eng
	if existing, ok := r.byClient[eng.ClientID]; ok {
		stored.ID = existing.ID
	} else {
		r.seq++
		stored.ID = fmt.Sprintf("eng_%d", r.seq)
	}
	r.byClient[stored.ClientID] = &stored
	clone := stored
	return &clone, nil
}
