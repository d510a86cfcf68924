package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/Kotlang/accountGo/db"
)

// AccountDbMock keeps login records and user documents in memory and records
// every delete call in order, e.g. "login:<id>" then "users:<id>".
type AccountDbMock struct {
	mu     sync.Mutex
	logins map[string]bool
	users  map[string]bool
	calls  []string

	LoginErr error
	UsersErr error
}

func NewAccountDbMock(userIds ...string) *AccountDbMock {
	m := &AccountDbMock{
		logins: map[string]bool{},
		users:  map[string]bool{},
	}
	for _, id := range userIds {
		m.logins[id] = true
		m.users[id] = true
	}
	return m
}

func (m *AccountDbMock) Login() db.LoginRepositoryInterface {
	return loginRepositoryMock{m}
}

func (m *AccountDbMock) Users() db.UserRepositoryInterface {
	return userRepositoryMock{m}
}

func (m *AccountDbMock) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *AccountDbMock) HasLogin(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logins[id]
}

func (m *AccountDbMock) HasUser(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id]
}

type loginRepositoryMock struct{ m *AccountDbMock }

func (r loginRepositoryMock) DeleteById(ctx context.Context, userId string) chan error {
	ch := make(chan error, 1)
	m := r.m

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "login:"+userId)

	switch {
	case m.LoginErr != nil:
		ch <- m.LoginErr
	case !m.logins[userId]:
		ch <- fmt.Errorf("%w for user %s", db.ErrIdentityNotFound, userId)
	default:
		delete(m.logins, userId)
		ch <- nil
	}
	return ch
}

type userRepositoryMock struct{ m *AccountDbMock }

func (r userRepositoryMock) DeleteById(ctx context.Context, userId string) chan error {
	ch := make(chan error, 1)
	m := r.m

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "users:"+userId)

	if m.UsersErr != nil {
		ch <- m.UsersErr
		return ch
	}
	delete(m.users, userId)
	ch <- nil
	return ch
}
