package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/internal/auth"
	"github.com/munimapp/munim/internal/storage/sqlite"
	"github.com/munimapp/munim/pkg/rpc"
	"github.com/munimapp/munim/pkg/rpc/rpcconnect"
)

func setupAuthTestServer(t *testing.T) rpcconnect.AuthServiceClient {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authenticator := auth.NewPasswordAuthenticator(store)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(authenticator, jwtManager, logger)

	mux := http.NewServeMux()
	path, handler := rpcconnect.NewAuthServiceHandler(svc)
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return rpcconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
}

func TestRegisterAndLogin(t *testing.T) {
	client := setupAuthTestServer(t)

	regResp, err := client.Register(context.Background(), connect.NewRequest(&rpc.RegisterRequest{
		Email:       "owner@example.com",
		DisplayName: "Owner",
		Password:    "correct horse",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if regResp.Msg.Token == "" {
		t.Error("expected a token on registration")
	}
	if regResp.Msg.User.Email != "owner@example.com" {
		t.Errorf("email: expected owner@example.com, got %s", regResp.Msg.User.Email)
	}

	loginResp, err := client.Login(context.Background(), connect.NewRequest(&rpc.LoginRequest{
		Email:    "owner@example.com",
		Password: "correct horse",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loginResp.Msg.Token == "" {
		t.Error("expected a token on login")
	}

	_, err = client.Login(context.Background(), connect.NewRequest(&rpc.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong",
	}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("wrong password: expected CodeUnauthenticated, got %v", connect.CodeOf(err))
	}
}

func TestRegisterRejections(t *testing.T) {
	client := setupAuthTestServer(t)

	if _, err := client.Register(context.Background(), connect.NewRequest(&rpc.RegisterRequest{
		Email:       "owner@example.com",
		DisplayName: "Owner",
		Password:    "short",
	})); connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("weak password: expected CodeInvalidArgument, got %v", connect.CodeOf(err))
	}

	if _, err := client.Register(context.Background(), connect.NewRequest(&rpc.RegisterRequest{
		Email:       "owner@example.com",
		DisplayName: "Owner",
		Password:    "correct horse",
	})); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := client.Register(context.Background(), connect.NewRequest(&rpc.RegisterRequest{
		Email:       "owner@example.com",
		DisplayName: "Owner Again",
		Password:    "correct horse",
	})); connect.CodeOf(err) != connect.CodeAlreadyExists {
		t.Errorf("duplicate email: expected CodeAlreadyExists, got %v", connect.CodeOf(err))
	}
}
