package handler

import (
	"context"

	"github.com/memberhub/backend/internal/model"
	"github.com/memberhub/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock services and repositories shared by the handler tests
// ---------------------------------------------------------------------------

type mockMessageService struct {
	submitFunc       func(ctx context.Context, msg *model.Message) error
	listFunc         func(ctx context.Context) ([]*model.Message, error)
	replyFunc        func(ctx context.Context, id, content, adminEmail string) error
	updateStatusFunc func(ctx context.Context, id, status string) error
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockMessageService) Submit(ctx context.Context, msg *model.Message) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageService) List(ctx context.Context) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockMessageService) Reply(ctx context.Context, id, content, adminEmail string) error {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, id, content, adminEmail)
	}
	return nil
}

func (m *mockMessageService) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockMessageService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockDirectoryService struct {
	applyFunc      func(ctx context.Context, m *model.Member) error
	listFunc       func(ctx context.Context, opts model.MemberListOptions) ([]*model.Member, error)
	statsFunc      func(ctx context.Context) (model.MemberStats, error)
	approveFunc    func(ctx context.Context, id, source string) error
	rejectFunc     func(ctx context.Context, id, source string) error
	updateRoleFunc func(ctx context.Context, id, role, source string) error
	updateFunc     func(ctx context.Context, id, source string, upd model.MemberUpdate) error
	deleteFunc     func(ctx context.Context, id, source string) error
}

func (m *mockDirectoryService) Apply(ctx context.Context, mem *model.Member) error {
	if m.applyFunc != nil {
		return m.applyFunc(ctx, mem)
	}
	return nil
}

func (m *mockDirectoryService) List(ctx context.Context, opts model.MemberListOptions) ([]*model.Member, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockDirectoryService) Stats(ctx context.Context) (model.MemberStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return model.MemberStats{}, nil
}

func (m *mockDirectoryService) Approve(ctx context.Context, id, source string) error {
	if m.approveFunc != nil {
		return m.approveFunc(ctx, id, source)
	}
	return nil
}

func (m *mockDirectoryService) Reject(ctx context.Context, id, source string) error {
	if m.rejectFunc != nil {
		return m.rejectFunc(ctx, id, source)
	}
	return nil
}

func (m *mockDirectoryService) UpdateRole(ctx context.Context, id, role, source string) error {
	if m.updateRoleFunc != nil {
		return m.updateRoleFunc(ctx, id, role, source)
	}
	return nil
}

func (m *mockDirectoryService) Update(ctx context.Context, id, source string, upd model.MemberUpdate) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, source, upd)
	}
	return nil
}

func (m *mockDirectoryService) Delete(ctx context.Context, id, source string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, source)
	}
	return nil
}

type mockDeletionService struct {
	deleteMemberFunc func(ctx context.Context, callerID, targetID string) error
}

func (m *mockDeletionService) DeleteMember(ctx context.Context, callerID, targetID string) error {
	if m.deleteMemberFunc != nil {
		return m.deleteMemberFunc(ctx, callerID, targetID)
	}
	return nil
}

type mockNotificationService struct {
	listForUserFunc func(ctx context.Context, email string) ([]*model.Notification, error)
	unreadCountFunc func(ctx context.Context, email string) (int, error)
	markReadFunc    func(ctx context.Context, id string) error
	markAllReadFunc func(ctx context.Context, email string) error
}

func (m *mockNotificationService) ListForUser(ctx context.Context, email string) ([]*model.Notification, error) {
	if m.listForUserFunc != nil {
		return m.listForUserFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockNotificationService) UnreadCount(ctx context.Context, email string) (int, error) {
	if m.unreadCountFunc != nil {
		return m.unreadCountFunc(ctx, email)
	}
	return 0, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, id string) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationService) MarkAllRead(ctx context.Context, email string) error {
	if m.markAllReadFunc != nil {
		return m.markAllReadFunc(ctx, email)
	}
	return nil
}

type mockAuthService struct {
	registerFunc func(ctx context.Context, in service.RegisterInput) (*model.User, error)
	loginFunc    func(ctx context.Context, email, password string) (*model.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, in)
	}
	return &model.User{ID: "new-user"}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return &model.User{ID: "user"}, nil
}

// mockUserRepo covers the repository surface the handlers touch (FindByID for
// the admin gate, the me endpoint and notification email resolution).
type mockUserRepo struct {
	createWithIdentityFunc func(ctx context.Context, u *model.User, passwordHash string) error
	findByIDFunc           func(ctx context.Context, id string) (*model.User, error)
	findByEmailFunc        func(ctx context.Context, email string) (*model.User, error)
	listFunc               func(ctx context.Context) ([]*model.User, error)
	updateStatusFunc       func(ctx context.Context, id, status string) error
	updateRoleFunc         func(ctx context.Context, id, role string) error
	updateProfileFunc      func(ctx context.Context, id string, upd model.MemberUpdate) error
	deleteWithIdentityFunc func(ctx context.Context, id string) error
}

func (m *mockUserRepo) CreateWithIdentity(ctx context.Context, u *model.User, passwordHash string) error {
	if m.createWithIdentityFunc != nil {
		return m.createWithIdentityFunc(ctx, u, passwordHash)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id, role string) error {
	if m.updateRoleFunc != nil {
		return m.updateRoleFunc(ctx, id, role)
	}
	return nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id string, upd model.MemberUpdate) error {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, id, upd)
	}
	return nil
}

func (m *mockUserRepo) DeleteWithIdentity(ctx context.Context, id string) error {
	if m.deleteWithIdentityFunc != nil {
		return m.deleteWithIdentityFunc(ctx, id)
	}
	return nil
}
