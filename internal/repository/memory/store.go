// Package memory is the process-local Store used by the memory driver and
// by tests. It follows the same ordering rules as the Postgres store.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"skill-swap/internal/domain/exchange"
	"skill-swap/internal/domain/message"
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/rating"
	"skill-swap/internal/domain/role"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"
)

type Store struct {
	// cmd serializes WithinTx commands; mu guards the data.
	cmd sync.Mutex
	mu  sync.RWMutex

	profiles map[string]profile.Profile
	requests []exchange.Request
	messages []message.Message
	ratings  []rating.Rating
	roles    map[string]role.Role
	seq      int64
}

var _ repository.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		profiles: make(map[string]profile.Profile),
		roles:    make(map[string]role.Role),
	}
}

func (s *Store) Profiles() repository.ProfileRepository   { return profileRepo{s} }
func (s *Store) Exchanges() repository.ExchangeRepository { return exchangeRepo{s} }
func (s *Store) Messages() repository.MessageRepository   { return messageRepo{s} }
func (s *Store) Ratings() repository.RatingRepository     { return ratingRepo{s} }
func (s *Store) Roles() repository.RoleRepository         { return roleRepo{s} }

func (s *Store) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.cmd.Lock()
	defer s.cmd.Unlock()
	return fn(txStore{s})
}

// txStore is the view handed to a running command; nested WithinTx calls
// join the outer command instead of deadlocking on it.
type txStore struct {
	*Store
}

func (t txStore) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	return fn(t)
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

type profileRepo struct{ s *Store }

func (r profileRepo) Get(ctx context.Context, memberID string) (profile.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.profiles[memberID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return cloneProfile(p), nil
}

func (r profileRepo) Upsert(ctx context.Context, memberID string, p profile.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.profiles[strings.Clone(memberID)] = cloneProfile(p)
	return nil
}

func (r profileRepo) List(ctx context.Context) ([]profile.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]profile.Entry, 0, len(r.s.profiles))
	for id, p := range r.s.profiles {
		out = append(out, profile.Entry{MemberID: id, Profile: cloneProfile(p)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberID < out[j].MemberID })
	return out, nil
}

type exchangeRepo struct{ s *Store }

func (r exchangeRepo) Create(ctx context.Context, req exchange.Request) (exchange.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.requests = append(r.s.requests, cloneRequest(req))
	return cloneRequest(req), nil
}

func (r exchangeRepo) ListTo(ctx context.Context, to string) ([]exchange.Request, error) {
	return r.filter(func(req exchange.Request) bool { return req.To == to }), nil
}

func (r exchangeRepo) ListFrom(ctx context.Context, from string) ([]exchange.Request, error) {
	return r.filter(func(req exchange.Request) bool { return req.From == from }), nil
}

func (r exchangeRepo) ListDirected(ctx context.Context, from, to string) ([]exchange.Request, error) {
	return r.filter(func(req exchange.Request) bool { return req.From == from && req.To == to }), nil
}

func (r exchangeRepo) AcceptPending(ctx context.Context, from, to string, at time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for i, req := range r.s.requests {
		if req.From != from || req.To != to || !req.IsPending() {
			continue
		}
		accepted, err := req.Accept(at)
		if err != nil {
			return n, err
		}
		r.s.requests[i] = accepted
		n++
	}
	return n, nil
}

func (r exchangeRepo) Authorized(ctx context.Context, a, b string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return exchange.Authorized(r.s.requests, a, b), nil
}

func (r exchangeRepo) Partners(ctx context.Context, member string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, req := range r.s.requests {
		if !req.IsAccepted() {
			continue
		}
		pair := exchange.NewPair(req.From, req.To)
		if !pair.Has(member) {
			continue
		}
		other := pair.Other(member)
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	sort.Strings(out)
	return out, nil
}

func (r exchangeRepo) filter(keep func(exchange.Request) bool) []exchange.Request {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]exchange.Request, 0)
	for _, req := range r.s.requests {
		if keep(req) {
			out = append(out, cloneRequest(req))
		}
	}
	return out
}

type messageRepo struct{ s *Store }

func (r messageRepo) Append(ctx context.Context, m message.Message) (message.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.Seq = r.s.nextSeq()
	r.s.messages = append(r.s.messages, m)
	return m, nil
}

func (r messageRepo) Thread(ctx context.Context, a, b string) ([]message.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]message.Message, 0)
	for _, m := range r.s.messages {
		if m.Between(a, b) {
			out = append(out, m)
		}
	}
	message.SortThread(out)
	return out, nil
}

type ratingRepo struct{ s *Store }

func (r ratingRepo) Append(ctx context.Context, rt rating.Rating) (rating.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rt.Seq = r.s.nextSeq()
	r.s.ratings = append(r.s.ratings, rt)
	return rt, nil
}

func (r ratingRepo) ListFor(ctx context.Context, to string) ([]rating.Rating, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]rating.Rating, 0)
	for _, rt := range r.s.ratings {
		if rt.To == to {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r ratingRepo) Summary(ctx context.Context, to string) (rating.Summary, error) {
	list, err := r.ListFor(ctx, to)
	if err != nil {
		return rating.Summary{}, err
	}
	return rating.SummarizeRatings(list), nil
}

type roleRepo struct{ s *Store }

func (r roleRepo) Get(ctx context.Context, memberID string) (role.Role, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rl, ok := r.s.roles[memberID]
	return rl, ok, nil
}

func (r roleRepo) Set(ctx context.Context, memberID string, rl role.Role, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.roles[strings.Clone(memberID)] = rl
	return nil
}

func cloneProfile(p profile.Profile) profile.Profile {
	p.OfferedSkills = append(make([]skill.Skill, 0, len(p.OfferedSkills)), p.OfferedSkills...)
	p.WantedSkills = append(make([]skill.Skill, 0, len(p.WantedSkills)), p.WantedSkills...)
	return p
}

func cloneRequest(req exchange.Request) exchange.Request {
	if req.AcceptedAt != nil {
		at := *req.AcceptedAt
		req.AcceptedAt = &at
	}
	return req
}
