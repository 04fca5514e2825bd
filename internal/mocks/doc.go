// Package mocks provides hand-written mock implementations of the
// service interfaces for use in handler and middleware tests. Each mock
// exposes function fields to override individual methods, falling back
// to configurable default values when a field is nil:
//
//	jwtService := &mocks.MockJWTService{
//		ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//			return &auth.Claims{UserID: userID}, nil
//		},
//	}
//
// Store-level mocks live next to their tests (testify mocks in
// internal/service/progress); this package only holds the mocks shared
// across test packages.
package mocks
