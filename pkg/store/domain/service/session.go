package service

import (
	"time"

	"github.com/google/uuid"

	"storefront/pkg/store/domain/model"
)

type SessionService interface {
	// Login creates a fresh session for any submitted name and email.
	// There is no credential verification; this mirrors the storefront's
	// placeholder authentication flow.
	Login(name, email string) *model.User
	Logout()
	CurrentUser() *model.User
	// AddOrderToHistory appends the order to the logged-in user's history.
	// Without a session it is a no-op; callers check CurrentUser first.
	AddOrderToHistory(order model.Order)
}

func NewSessionService(dispatcher EventDispatcher) SessionService {
	return &sessionService{dispatcher: dispatcher}
}

type sessionService struct {
	user       *model.User
	dispatcher EventDispatcher
}

func (s *sessionService) Login(name, email string) *model.User {
	s.user = &model.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	_ = s.dispatcher.Dispatch(model.SessionStarted{UserID: s.user.ID, Email: email})
	return s.user
}

func (s *sessionService) Logout() {
	if s.user == nil {
		return
	}
	userID := s.user.ID
	s.user = nil
	_ = s.dispatcher.Dispatch(model.SessionEnded{UserID: userID})
}

func (s *sessionService) CurrentUser() *model.User {
	return s.user
}

func (s *sessionService) AddOrderToHistory(order model.Order) {
	if s.user == nil {
		return
	}
	s.user.OrderHistory = append(s.user.OrderHistory, order)
}
