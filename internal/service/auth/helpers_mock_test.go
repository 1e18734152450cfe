package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendPasswordResetFunc func(ctx context.Context, email, resetURL string) error

	calls struct {
		SendPasswordReset []struct {
			Email    string
			ResetURL string
		}
	}
	lock sync.RWMutex
}

func (mock *mailerMock) SendPasswordReset(ctx context.Context, email, resetURL string) error {
	if mock.SendPasswordResetFunc == nil {
		panic("mailerMock.SendPasswordResetFunc: method is nil but mailer.SendPasswordReset was just called")
	}
	callInfo := struct {
		Email    string
		ResetURL string
	}{Email: email, ResetURL: resetURL}
	mock.lock.Lock()
	mock.calls.SendPasswordReset = append(mock.calls.SendPasswordReset, callInfo)
	mock.lock.Unlock()
	return mock.SendPasswordResetFunc(ctx, email, resetURL)
}

func (mock *mailerMock) SendPasswordResetCalls() []struct {
	Email    string
	ResetURL string
} {
	mock.lock.RLock()
	calls := mock.calls.SendPasswordReset
	mock.lock.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Fn func(ctx context.Context) error
		}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct {
		Fn func(ctx context.Context) error
	}{Fn: fn})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

// passthroughTx runs the callback directly, without a real transaction.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)
	GenerateOpaqueTokenFunc func() (string, string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
		}
		ValidateAccessToken []struct {
			Token string
		}
		GenerateOpaqueToken []struct{}
	}
	lock sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	mock.lock.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lock.Unlock()
	return mock.GenerateAccessTokenFunc(userID)
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	mock.lock.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, struct{ Token string }{Token: token})
	mock.lock.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *jwtManagerMock) GenerateOpaqueToken() (string, string, error) {
	if mock.GenerateOpaqueTokenFunc == nil {
		panic("jwtManagerMock.GenerateOpaqueTokenFunc: method is nil but jwtManager.GenerateOpaqueToken was just called")
	}
	mock.lock.Lock()
	mock.calls.GenerateOpaqueToken = append(mock.calls.GenerateOpaqueToken, struct{}{})
	mock.lock.Unlock()
	return mock.GenerateOpaqueTokenFunc()
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lock.RUnlock()
	return calls
}
