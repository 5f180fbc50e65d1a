package usecases

import (
	"context"

	"helpdesk/internal/domain/request"
	"helpdesk/internal/domain/response"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc        func(ctx context.Context, req *request.Request) error
	UpdateFunc      func(ctx context.Context, req *request.Request) error
	DeleteFunc      func(ctx context.Context, requestID uint) error
	GetByIDFunc     func(ctx context.Context, requestID uint) (*request.Request, error)
	GetByNumberFunc func(ctx context.Context, number uint) (*request.Request, error)
	ListFunc        func(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, requestID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, requestID)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, requestID uint) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockRequestRepository) GetByNumber(ctx context.Context, number uint) (*request.Request, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockResponseRepository struct {
	SaveFunc              func(ctx context.Context, resp *response.Response) error
	UpdateFunc            func(ctx context.Context, resp *response.Response) error
	DeleteFunc            func(ctx context.Context, responseID uint) error
	DeleteByRequestIDFunc func(ctx context.Context, requestID uint) error
	GetByIDFunc           func(ctx context.Context, responseID uint) (*response.Response, error)
	GetByRequestIDFunc    func(ctx context.Context, requestID uint) ([]*response.Response, error)
	ListFunc              func(ctx context.Context) ([]*response.Response, error)
}

func (m *mockResponseRepository) Save(ctx context.Context, resp *response.Response) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, resp)
	}
	return nil
}

func (m *mockResponseRepository) Update(ctx context.Context, resp *response.Response) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, resp)
	}
	return nil
}

func (m *mockResponseRepository) Delete(ctx context.Context, responseID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, responseID)
	}
	return nil
}

func (m *mockResponseRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	if m.DeleteByRequestIDFunc != nil {
		return m.DeleteByRequestIDFunc(ctx, requestID)
	}
	return nil
}

func (m *mockResponseRepository) GetByID(ctx context.Context, responseID uint) (*response.Response, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, responseID)
	}
	return nil, nil
}

func (m *mockResponseRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*response.Response, error) {
	if m.GetByRequestIDFunc != nil {
		return m.GetByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockResponseRepository) List(ctx context.Context) ([]*response.Response, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockNotifier struct {
	NotifyReplyFunc func(ctx context.Context, recipient string, requestNumber uint, responseText string) error
	calls           int
}

func (m *mockNotifier) NotifyReply(ctx context.Context, recipient string, requestNumber uint, responseText string) error {
	m.calls++
	if m.NotifyReplyFunc != nil {
		return m.NotifyReplyFunc(ctx, recipient, requestNumber, responseText)
	}
	return nil
}

type mockTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                  {}
func (m *mockLogger) Info(msg string, args ...any)                   {}
func (m *mockLogger) Warn(msg string, args ...any)                   {}
func (m *mockLogger) Error(msg string, args ...any)                  {}
func (m *mockLogger) Fatal(msg string, args ...any)                  {}
func (m *mockLogger) With(args ...any) logger.Interface              { return m }
func (m *mockLogger) Named(name string) logger.Interface             { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
