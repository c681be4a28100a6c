package service

import (
	"context"

	"github.com/memberhub/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock repositories shared by the service tests
// ---------------------------------------------------------------------------

type mockMemberRepo struct {
	saveFunc          func(ctx context.Context, m *model.Member) error
	listFunc          func(ctx context.Context) ([]*model.Member, error)
	findByIDFunc      func(ctx context.Context, id string) (*model.Member, error)
	updateStatusFunc  func(ctx context.Context, id, status string) error
	updateRoleFunc    func(ctx context.Context, id, role string) error
	updateProfileFunc func(ctx context.Context, id string, upd model.MemberUpdate) error
	deleteFunc        func(ctx context.Context, id string) error
}

func (m *mockMemberRepo) Save(ctx context.Context, mem *model.Member) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, mem)
	}
	return nil
}

func (m *mockMemberRepo) List(ctx context.Context) ([]*model.Member, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockMemberRepo) FindByID(ctx context.Context, id string) (*model.Member, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMemberRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockMemberRepo) UpdateRole(ctx context.Context, id, role string) error {
	if m.updateRoleFunc != nil {
		return m.updateRoleFunc(ctx, id, role)
	}
	return nil
}

func (m *mockMemberRepo) UpdateProfile(ctx context.Context, id string, upd model.MemberUpdate) error {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, id, upd)
	}
	return nil
}

func (m *mockMemberRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

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

type mockIdentityRepo struct {
	findByEmailFunc func(ctx context.Context, email string) (*model.Identity, error)
}

func (m *mockIdentityRepo) FindByEmail(ctx context.Context, email string) (*model.Identity, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

type mockMessageRepo struct {
	saveFunc           func(ctx context.Context, msg *model.Message) error
	listFunc           func(ctx context.Context) ([]*model.Message, error)
	findByIDFunc       func(ctx context.Context, id string) (*model.Message, error)
	replyAndNotifyFunc func(ctx context.Context, id, reply, repliedBy string, n *model.Notification) error
	updateStatusFunc   func(ctx context.Context, id, status string) error
	deleteFunc         func(ctx context.Context, id string) error
}

func (m *mockMessageRepo) Save(ctx context.Context, msg *model.Message) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepo) List(ctx context.Context) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockMessageRepo) FindByID(ctx context.Context, id string) (*model.Message, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMessageRepo) ReplyAndNotify(ctx context.Context, id, reply, repliedBy string, n *model.Notification) error {
	if m.replyAndNotifyFunc != nil {
		return m.replyAndNotifyFunc(ctx, id, reply, repliedBy, n)
	}
	return nil
}

func (m *mockMessageRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockMessageRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockNotificationRepo struct {
	listForUserFunc func(ctx context.Context, email string) ([]*model.Notification, error)
	countUnreadFunc func(ctx context.Context, email string) (int, error)
	markReadFunc    func(ctx context.Context, id string) error
	markAllReadFunc func(ctx context.Context, email string) (int64, error)
}

func (m *mockNotificationRepo) ListForUser(ctx context.Context, email string) ([]*model.Notification, error) {
	if m.listForUserFunc != nil {
		return m.listForUserFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, email string) (int, error) {
	if m.countUnreadFunc != nil {
		return m.countUnreadFunc(ctx, email)
	}
	return 0, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id string) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, email string) (int64, error) {
	if m.markAllReadFunc != nil {
		return m.markAllReadFunc(ctx, email)
	}
	return 0, nil
}
