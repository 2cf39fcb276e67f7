package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/deepencoding/yt-clone-catalog/internal/models/po"
	"github.com/deepencoding/yt-clone-catalog/internal/services"

	"github.com/go-kratos/kratos/v2/log"
)

type memUserRepo struct {
	users map[string]*po.User
}

func (m *memUserRepo) Upsert(_ context.Context, u *po.User) (*po.User, error) {
	if m.users == nil {
		m.users = make(map[string]*po.User)
	}
	if existing, ok := m.users[u.UID]; ok {
		existing.Email = u.Email
		existing.PhotoURL = u.PhotoURL
		return existing, nil
	}
	clone := *u
	clone.CreatedAt = time.Now().UTC()
	m.users[u.UID] = &clone
	return &clone, nil
}

func (m *memUserRepo) GetByUID(_ context.Context, uid string) (*po.User, error) {
	if u, ok := m.users[uid]; ok {
		return u, nil
	}
	return nil, services.ErrUserNotFound
}

func strPtr(s string) *string { return &s }

func TestRegisterUser_CreatesProfile(t *testing.T) {
	repo := &memUserRepo{}
	svc := services.NewUserService(repo, log.DefaultLogger)

	err := svc.RegisterUser(context.Background(), services.RegisterUserInput{
		UID:      "u123",
		Email:    strPtr("u123@example.com"),
		PhotoURL: strPtr("https://photos.example/u123.png"),
	})
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}

	user, err := svc.GetUser(context.Background(), "u123")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.Email == nil || *user.Email != "u123@example.com" {
		t.Fatalf("unexpected email: %v", user.Email)
	}
}

func TestRegisterUser_RedeliveryIsIdempotent(t *testing.T) {
	repo := &memUserRepo{}
	svc := services.NewUserService(repo, log.DefaultLogger)

	input := services.RegisterUserInput{UID: "u123", Email: strPtr("u123@example.com")}
	for i := 0; i < 3; i++ {
		if err := svc.RegisterUser(context.Background(), input); err != nil {
			t.Fatalf("RegisterUser attempt %d: %v", i, err)
		}
	}
	if len(repo.users) != 1 {
		t.Fatalf("redelivery created extra profiles: %d", len(repo.users))
	}
}

func TestRegisterUser_NullableFieldsStayNil(t *testing.T) {
	repo := &memUserRepo{}
	svc := services.NewUserService(repo, log.DefaultLogger)

	if err := svc.RegisterUser(context.Background(), services.RegisterUserInput{UID: "anon"}); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	user, err := svc.GetUser(context.Background(), "anon")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.Email != nil || user.PhotoURL != nil {
		t.Fatalf("nullable fields should stay nil: email=%v photo=%v", user.Email, user.PhotoURL)
	}
}

func TestRegisterUser_EmptyUIDDropped(t *testing.T) {
	repo := &memUserRepo{}
	svc := services.NewUserService(repo, log.DefaultLogger)

	if err := svc.RegisterUser(context.Background(), services.RegisterUserInput{}); err != nil {
		t.Fatalf("empty uid event must be dropped without error: %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("empty uid event created profile")
	}
}
