package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/pharmahub/pharma-backend/internal/directory"
	"github.com/pharmahub/pharma-backend/pkg/config"
	"github.com/pharmahub/pharma-backend/pkg/db/models"
	"github.com/pharmahub/pharma-backend/pkg/enums"
	pkgerrors "github.com/pharmahub/pharma-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *directory.Ephemeral) {
	t.Helper()
	dir := directory.NewEphemeral()
	svc, err := NewService(ServiceParams{
		Directory:      dir,
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, dir
}

func TestNewServiceRequiresDirectory(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatalf("expected error without directory")
	}
}

func TestSignupDefaultsAndSummaryShape(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.Signup(context.Background(), SignupRequest{
		FullName: "Amina Khan",
		Email:    "Amina@Example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if got.Message != "user registered successfully" {
		t.Fatalf("unexpected message %q", got.Message)
	}
	if got.Email != "amina@example.com" {
		t.Fatalf("expected lowercased email, got %q", got.Email)
	}
	if got.Role != enums.RoleCustomer {
		t.Fatalf("expected default role customer, got %q", got.Role)
	}
	if got.Status != enums.UserStatusActive {
		t.Fatalf("expected Active status, got %q", got.Status)
	}
	if got.Token == "" {
		t.Fatalf("expected a token")
	}
	if got.FullName != "Amina Khan" {
		t.Fatalf("expected full name echoed, got %q", got.FullName)
	}
}

func TestSignupKeepsProvidedRole(t *testing.T) {
	svc, _ := newTestService(t)

	got, err := svc.Signup(context.Background(), SignupRequest{
		Email:    "store@example.com",
		Password: "secret1",
		Role:     enums.RolePharmacy,
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if got.Role != enums.RolePharmacy {
		t.Fatalf("expected pharmacy role, got %q", got.Role)
	}
}

func TestSignupValidatesBlankFields(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []SignupRequest{
		{Email: "", Password: "secret1"},
		{Email: "a@b.com", Password: ""},
		{Email: "   ", Password: "secret1"},
		{Email: "a@b.com", Password: "   "},
	}
	for _, req := range cases {
		_, err := svc.Signup(context.Background(), req)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("request %+v: expected validation error, got %v", req, err)
		}
	}
}

func TestSignupConflictOnCaseVariantEmail(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, SignupRequest{Email: "A@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := svc.Signup(ctx, SignupRequest{Email: "a@X.com", Password: "other"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if typed.Message() != "account already exists" {
		t.Fatalf("unexpected conflict message %q", typed.Message())
	}
	if dir.Len() != 1 {
		t.Fatalf("conflicting signup must not add a record, have %d", dir.Len())
	}
}

func TestSignupThenLoginRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Signup(ctx, SignupRequest{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	// Case-variant email must still authenticate.
	logged, err := svc.Login(ctx, LoginRequest{Email: "A@B.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.Message != "login successful" {
		t.Fatalf("unexpected message %q", logged.Message)
	}
	if logged.Email != created.Email {
		t.Fatalf("expected same account, got %q vs %q", logged.Email, created.Email)
	}
	if logged.Token == created.Token {
		t.Fatalf("each call must issue a fresh token")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, SignupRequest{Email: "a@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, wrongPw := svc.Login(ctx, LoginRequest{Email: "a@b.com", Password: "wrong"})
	_, unknown := svc.Login(ctx, LoginRequest{Email: "ghost@b.com", Password: "secret1"})

	for _, err := range []error{wrongPw, unknown} {
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
		if typed.Message() != "invalid credentials" {
			t.Fatalf("unexpected message %q", typed.Message())
		}
	}
}

func TestLoginValidatesBlankFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Email: " ", Password: "x"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetStatusAfterSignup(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, SignupRequest{Email: "a@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	status, err := svc.GetStatus(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Status != enums.UserStatusActive || status.Role != enums.RoleCustomer {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestGetStatusUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetStatus(context.Background(), "unknown@x.com")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "user not found" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

type faultyDirectory struct {
	err error
}

func (f faultyDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, f.err
}

func (f faultyDirectory) Insert(ctx context.Context, user *models.User) error {
	return f.err
}

func TestStoreFaultsSurfaceAsDependencyErrors(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Directory: faultyDirectory{err: errors.New("connection refused")},
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	ctx := context.Background()

	_, signupErr := svc.Signup(ctx, SignupRequest{Email: "a@b.com", Password: "secret1"})
	_, loginErr := svc.Login(ctx, LoginRequest{Email: "a@b.com", Password: "secret1"})
	_, statusErr := svc.GetStatus(ctx, "a@b.com")

	for _, err := range []error{signupErr, loginErr, statusErr} {
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeDependency {
			t.Fatalf("expected dependency error, got %v", err)
		}
	}
}
