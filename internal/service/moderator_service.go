package service

import (
	"errors"

	"gorm.io/gorm"

	"forum-admin/internal/model"
	"forum-admin/internal/pkg"
)

// ErrEmailTaken means a user already exists under the given email.
var ErrEmailTaken = errors.New("a user with that email already exists")

type UserStore interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	ListByRole(role int) ([]model.User, error)
}

type CommunityStore interface {
	FindByName(name string) (*model.Community, error)
	ListNames() ([]string, error)
}

type MemberStore interface {
	AddModerator(communityID, userID uint64) error
	IsModerator(communityID, userID uint64) (bool, error)
}

type ModeratorService struct {
	users   UserStore
	comms   CommunityStore
	members MemberStore
	hasher  *pkg.Hasher
}

func NewModeratorService(users UserStore, comms CommunityStore, members MemberStore, hasher *pkg.Hasher) *ModeratorService {
	return &ModeratorService{
		users:   users,
		comms:   comms,
		members: members,
		hasher:  hasher,
	}
}

// CreateModerator inserts a new user with the moderator role and a bcrypt
// password hash. Returns ErrEmailTaken without writing when the email is
// already registered.
func (s *ModeratorService) CreateModerator(name, email, password string) (*model.User, error) {
	_, err := s.users.FindByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     model.RoleModerator,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *ModeratorService) ListModerators() ([]model.User, error) {
	return s.users.ListByRole(model.RoleModerator)
}

func (s *ModeratorService) ListCommunityNames() ([]string, error) {
	return s.comms.ListNames()
}

func (s *ModeratorService) FindCommunity(name string) (*model.Community, error) {
	return s.comms.FindByName(name)
}

// AssignModerator adds the user to the community's moderator and member
// sets in one write. Returns added=false and no write when the user is
// already a moderator there.
func (s *ModeratorService) AssignModerator(community *model.Community, user *model.User) (added bool, err error) {
	already, err := s.members.IsModerator(community.ID, user.ID)
	if err != nil {
		return false, err
	}
	if already {
		return false, nil
	}
	if err := s.members.AddModerator(community.ID, user.ID); err != nil {
		return false, err
	}
	return true, nil
}
