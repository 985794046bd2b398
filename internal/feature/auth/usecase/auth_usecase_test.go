package usecase

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"calorie_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// mockJWTGenerator is a mock implementation of the JWTGenerator interface.
type mockJWTGenerator struct {
	// GenerateTokenFunc is called when the GenerateToken method is invoked.
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

// GenerateToken is the mock implementation of the GenerateToken method.
func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

func TestAuthUsecase_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("successful signup", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if len(user.Password) == 0 || user.Password == "password123" {
					t.Errorf("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				return nil
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		if err := uc.Signup(ctx, "new@example.com", "password123"); err != nil {
			t.Fatalf("Signup() error = %v", err)
		}
	})

	t.Run("password too short", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{})

		if err := uc.Signup(ctx, "new@example.com", "short"); err == nil {
			t.Fatal("Signup() expected error for short password")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		if err := uc.Signup(ctx, "dup@example.com", "password123"); err != ErrEmailAlreadyExists {
			t.Fatalf("Signup() error = %v, want ErrEmailAlreadyExists", err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	t.Run("successful login returns token", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email, Password: string(hashed)}, nil
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		token, err := uc.Login(ctx, "user@example.com", "password123")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if token != "mock-jwt-token" {
			t.Errorf("Login() token = %q, want mock-jwt-token", token)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email, Password: string(hashed)}, nil
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		if _, err := uc.Login(ctx, "user@example.com", "wrong-password"); err != ErrInvalidCredentials {
			t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{})

		if _, err := uc.Login(ctx, "nobody@example.com", "password123"); err != ErrInvalidCredentials {
			t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("code-bootstrapped account has no password login", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 2, Email: email, Password: ""}, nil
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		if _, err := uc.Login(ctx, "otp-only@example.com", "password123"); err != ErrInvalidCredentials {
			t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}
