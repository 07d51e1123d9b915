// Package rpcconnect wires the wire messages in pkg/rpc to the Connect
// protocol: per-service handler and client constructors following the
// conventional protoconnect layout, with the package's JSON codec
// installed by default.
package rpcconnect

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/munimapp/munim/pkg/rpc"
)

// AuthServiceName is the fully-qualified name of the AuthService.
const AuthServiceName = "munim.v1.AuthService"

const (
	AuthServiceRegisterProcedure = "/munim.v1.AuthService/Register"
	AuthServiceLoginProcedure    = "/munim.v1.AuthService/Login"
)

// AuthServiceHandler is the server API for the AuthService.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[rpc.RegisterRequest]) (*connect.Response[rpc.RegisterResponse], error)
	Login(context.Context, *connect.Request[rpc.LoginRequest]) (*connect.Response[rpc.LoginResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler
// and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(rpc.Codec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(
		AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(
		AuthServiceLoginProcedure, svc.Login, opts...))
	return "/munim.v1.AuthService/", mux
}

// AuthServiceClient is a client for the AuthService.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[rpc.RegisterRequest]) (*connect.Response[rpc.RegisterResponse], error)
	Login(context.Context, *connect.Request[rpc.LoginRequest]) (*connect.Response[rpc.LoginResponse], error)
}

// NewAuthServiceClient constructs a client for the AuthService.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(rpc.Codec{})}, opts...)
	return &authServiceClient{
		register: connect.NewClient[rpc.RegisterRequest, rpc.RegisterResponse](
			httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login: connect.NewClient[rpc.LoginRequest, rpc.LoginResponse](
			httpClient, baseURL+AuthServiceLoginProcedure, opts...),
	}
}

type authServiceClient struct {
	register *connect.Client[rpc.RegisterRequest, rpc.RegisterResponse]
	login    *connect.Client[rpc.LoginRequest, rpc.LoginResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[rpc.RegisterRequest]) (*connect.Response[rpc.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[rpc.LoginRequest]) (*connect.Response[rpc.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}
