package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository that mirrors the store's
// behavior, including the unique constraint on username.
type fakeUserRepo struct {
	byUsername map[string]*entity.User
	nextID     uint64
	failWith   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists")
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()

	stored := *user
	r.byUsername[user.Username] = &stored

	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	found := *user

	return &found, nil
}

// fakeProductRepo is an in-memory ProductRepository.
type fakeProductRepo struct {
	byID   map[uint64]*entity.Product
	nextID uint64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[uint64]*entity.Product), nextID: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = r.nextID
	r.nextID++
	product.CreatedAt = time.Now()

	stored := *product
	r.byID[product.ID] = &stored

	return nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0, len(r.byID))
	for id := uint64(1); id < r.nextID; id++ {
		if product, ok := r.byID[id]; ok {
			found := *product
			products = append(products, &found)
		}
	}

	return products, nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uint64) (*entity.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	found := *product

	return &found, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.byID[product.ID]; !ok {
		return repository.ErrProductNotFound
	}

	stored := *product
	r.byID[product.ID] = &stored

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.byID, id)

	return nil
}

// stubHasher is a transparent PasswordHasher for service-level tests; the
// real bcrypt implementation is covered in the infra package.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService issues inspectable tokens for service-level tests.
type stubTokenService struct{}

func (stubTokenService) IssueAccessToken(identity string) (string, error) {
	return "token-for-" + identity, nil
}

func (stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	identity, ok := strings.CutPrefix(tokenString, "token-for-")
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}

	return &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: identity}}, nil
}

func (stubTokenService) AccessTokenDuration() time.Duration {
	return 600 * time.Second
}
