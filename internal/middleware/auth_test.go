package middleware

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/internal/auth"
	"github.com/munimapp/munim/internal/models"
)

type ping struct{}

// call runs the interceptor and reports the identity the wrapped
// handler observed on its context.
func call(t *testing.T, interceptor connect.UnaryInterceptorFunc, header string) (userID, email string, err error) {
	t.Helper()
	next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		userID = GetUserID(ctx)
		email = GetEmail(ctx)
		return connect.NewResponse(&ping{}), nil
	})
	req := connect.NewRequest(&ping{})
	if header != "" {
		req.Header().Set("Authorization", header)
	}
	_, err = interceptor(next)(context.Background(), req)
	return userID, email, err
}

func TestRequireAuth(t *testing.T) {
	jm := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jm.Generate(&models.User{ID: "u-1", Email: "clerk@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("valid token carries identity", func(t *testing.T) {
		userID, email, err := call(t, RequireAuth(jm), "Bearer "+token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userID != "u-1" {
			t.Errorf("user id = %q, want u-1", userID)
		}
		if email != "clerk@example.com" {
			t.Errorf("email = %q, want clerk@example.com", email)
		}
	})

	t.Run("missing token rejected", func(t *testing.T) {
		_, _, err := call(t, RequireAuth(jm), "")
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("expected CodeUnauthenticated, got %v (%v)", connect.CodeOf(err), err)
		}
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		_, _, err := call(t, RequireAuth(jm), "Token "+token)
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("expected CodeUnauthenticated, got %v (%v)", connect.CodeOf(err), err)
		}
	})
}

func TestOptionalAuth(t *testing.T) {
	jm := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jm.Generate(&models.User{ID: "u-2", Email: "viewer@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("anonymous call passes through", func(t *testing.T) {
		userID, email, err := call(t, OptionalAuth(jm), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userID != "" || email != "" {
			t.Errorf("identity = %q/%q, want empty", userID, email)
		}
	})

	t.Run("valid token attributed", func(t *testing.T) {
		userID, email, err := call(t, OptionalAuth(jm), "Bearer "+token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userID != "u-2" {
			t.Errorf("user id = %q, want u-2", userID)
		}
		if email != "viewer@example.com" {
			t.Errorf("email = %q, want viewer@example.com", email)
		}
	})

	t.Run("invalid token treated as anonymous", func(t *testing.T) {
		userID, email, err := call(t, OptionalAuth(jm), "Bearer garbage")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userID != "" || email != "" {
			t.Errorf("identity = %q/%q, want empty", userID, email)
		}
	})
}
