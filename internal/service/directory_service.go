package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/memberhub/backend/internal/model"
	"github.com/memberhub/backend/internal/repository"
)

// MemberDirectoryService reconciles the members and users collections into one
// logical member list. Every entry carries a source tag; all mutations are
// routed by (source, id), never by id alone.
type MemberDirectoryService interface {
	// Apply stores a new membership application in the members collection
	// with status pending.
	Apply(ctx context.Context, m *model.Member) error

	// List returns the union of both collections mapped into the common
	// Member shape, filtered per opts.
	List(ctx context.Context, opts model.MemberListOptions) ([]*model.Member, error)

	// Stats returns total/pending/active counts, excluding admin accounts.
	Stats(ctx context.Context) (model.MemberStats, error)

	Approve(ctx context.Context, id, source string) error
	Reject(ctx context.Context, id, source string) error
	UpdateRole(ctx context.Context, id, role, source string) error
	Update(ctx context.Context, id, source string, upd model.MemberUpdate) error
	Delete(ctx context.Context, id, source string) error
}

type memberDirectoryService struct {
	memberRepo repository.MemberRepository
	userRepo   repository.UserRepository
}

// NewMemberDirectoryService creates a MemberDirectoryService over the two
// backing repositories.
func NewMemberDirectoryService(memberRepo repository.MemberRepository, userRepo repository.UserRepository) MemberDirectoryService {
	return &memberDirectoryService{memberRepo: memberRepo, userRepo: userRepo}
}

// Apply stores a membership application. ID, status and role are
// server-assigned.
func (s *memberDirectoryService) Apply(ctx context.Context, m *model.Member) error {
	m.ID = uuid.NewString()
	m.Source = model.SourceMembers
	m.Status = model.StatusPending
	m.Role = model.RoleMember
	return s.memberRepo.Save(ctx, m)
}

// memberFromUser maps a users-collection profile into the common Member shape
// with the directory's defaulting rules.
func memberFromUser(u *model.User) *model.Member {
	return &model.Member{
		ID:        u.ID,
		Source:    model.SourceUsers,
		Name:      defaultStr(u.FullName, "N/A"),
		Email:     u.Email,
		StudentID: u.StudentID,
		Course:    u.Course,
		Year:      u.Year,
		Status:    defaultStr(u.Status, model.StatusActive),
		Role:      defaultStr(u.Role, model.RoleMember),
		CreatedAt: u.CreatedAt,
	}
}

// normalizeMember applies the same defaulting to members-collection rows.
func normalizeMember(m *model.Member) *model.Member {
	m.Name = defaultStr(m.Name, "N/A")
	m.Status = defaultStr(m.Status, model.StatusActive)
	m.Role = defaultStr(m.Role, model.RoleMember)
	return m
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// List fetches both collections in full and merges them in memory. The
// collections are bounded by organization membership, so the O(n) merge and
// filter are fine here.
func (s *memberDirectoryService) List(ctx context.Context, opts model.MemberListOptions) ([]*model.Member, error) {
	merged, err := s.merged(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(opts.Search))
	var out []*model.Member
	for _, m := range merged {
		if !opts.IncludeAdmins && m.IsAdmin() {
			continue
		}
		if search != "" && !matchesSearch(m, search) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Stats counts the merged list, always excluding admin accounts.
func (s *memberDirectoryService) Stats(ctx context.Context) (model.MemberStats, error) {
	merged, err := s.merged(ctx)
	if err != nil {
		return model.MemberStats{}, err
	}

	var stats model.MemberStats
	for _, m := range merged {
		if m.IsAdmin() {
			continue
		}
		stats.Total++
		switch m.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusActive:
			stats.Active++
		}
	}
	return stats, nil
}

func (s *memberDirectoryService) merged(ctx context.Context) ([]*model.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	merged := make([]*model.Member, 0, len(members)+len(users))
	for _, m := range members {
		merged = append(merged, normalizeMember(m))
	}
	for _, u := range users {
		merged = append(merged, memberFromUser(u))
	}
	return merged, nil
}

func matchesSearch(m *model.Member, search string) bool {
	return strings.Contains(strings.ToLower(m.Name), search) ||
		strings.Contains(strings.ToLower(m.Email), search) ||
		strings.Contains(strings.ToLower(m.StudentID), search)
}

// Approve sets status=active on the backing row.
func (s *memberDirectoryService) Approve(ctx context.Context, id, source string) error {
	if source == model.SourceUsers {
		return s.userRepo.UpdateStatus(ctx, id, model.StatusActive)
	}
	return s.memberRepo.UpdateStatus(ctx, id, model.StatusActive)
}

// Reject deletes the backing row; a rejected application simply disappears.
func (s *memberDirectoryService) Reject(ctx context.Context, id, source string) error {
	return s.Delete(ctx, id, source)
}

// UpdateRole changes the role on the backing row.
func (s *memberDirectoryService) UpdateRole(ctx context.Context, id, role, source string) error {
	if source == model.SourceUsers {
		return s.userRepo.UpdateRole(ctx, id, role)
	}
	return s.memberRepo.UpdateRole(ctx, id, role)
}

// Update overwrites the editable fields on the backing row.
func (s *memberDirectoryService) Update(ctx context.Context, id, source string, upd model.MemberUpdate) error {
	if source == model.SourceUsers {
		return s.userRepo.UpdateProfile(ctx, id, upd)
	}
	return s.memberRepo.UpdateProfile(ctx, id, upd)
}

// Delete removes the backing row. A users-source entry always has a
// credential record referencing it, so deletion there takes the account down
// whole; the credential cannot outlive the profile.
func (s *memberDirectoryService) Delete(ctx context.Context, id, source string) error {
	if source == model.SourceUsers {
		return s.userRepo.DeleteWithIdentity(ctx, id)
	}
	return s.memberRepo.Delete(ctx, id)
}
