package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/Saby007/go-microservices-demo/internal/domain/errors"
	testhelpers "github.com/Saby007/go-microservices-demo/internal/test"
	"github.com/Saby007/go-microservices-demo/internal/usecase"
)

func TestUserCreateTrimsAndStores(t *testing.T) {
	uc := usecase.NewUserUseCase(testhelpers.NewUserRepositoryStub())

	user, err := uc.Create(context.Background(), "  John Doe ", " john.doe@company.com ", " Engineering ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "John Doe" || user.Email != "john.doe@company.com" || user.Department != "Engineering" {
		t.Fatalf("fields not trimmed: %+v", user)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned identifier")
	}
}

func TestUserCreateRejectsEmptyFields(t *testing.T) {
	uc := usecase.NewUserUseCase(testhelpers.NewUserRepositoryStub())

	if _, err := uc.Create(context.Background(), " ", "a@b.c", ""); !errors.Is(err, domainErrors.ErrEmptyName) {
		t.Fatalf("expected empty name error, got %v", err)
	}
	if _, err := uc.Create(context.Background(), "John", "  ", ""); !errors.Is(err, domainErrors.ErrEmptyEmail) {
		t.Fatalf("expected empty email error, got %v", err)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := usecase.NewUserUseCase(repo)

	if _, err := uc.Create(context.Background(), "John", "john@company.com", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Create(context.Background(), "Johnny", "john@company.com", ""); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
	if len(repo.Users) != 1 {
		t.Fatalf("expected single stored user, got %d", len(repo.Users))
	}
}

func TestUserUpdateMissingRecord(t *testing.T) {
	uc := usecase.NewUserUseCase(testhelpers.NewUserRepositoryStub())

	if _, err := uc.Update(context.Background(), 404, "John", "john@company.com", ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserDeleteAndGet(t *testing.T) {
	uc := usecase.NewUserUseCase(testhelpers.NewUserRepositoryStub())

	user, err := uc.Create(context.Background(), "Jane Smith", "jane.smith@company.com", "Marketing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.GetByEmail(context.Background(), "jane.smith@company.com")
	if err != nil || got.ID != user.ID {
		t.Fatalf("get by email failed: %v %+v", err, got)
	}

	if err := uc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Get(context.Background(), user.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := uc.Delete(context.Background(), user.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
