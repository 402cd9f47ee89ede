package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                   func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                 func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc                func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListByOwnerFunc            func(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error)
	ListAllFunc                func(ctx context.Context) ([]*ticket.Ticket, error)
	CountByStatusFunc          func(ctx context.Context) (int64, map[string]int64, error)
	SaveCommentFunc            func(ctx context.Context, c *ticket.Comment) error
	ListCommentsByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*ticket.Ticket, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (int64, map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return 0, nil, nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockTicketRepository) ListCommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListCommentsByTicketIDFunc != nil {
		return m.ListCommentsByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
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

type mockCacheStore struct {
	GetTicketFunc         func(ctx context.Context, ticketID uint, dest any) (bool, error)
	SetTicketFunc         func(ctx context.Context, ticketID uint, value any) error
	SetTicketOnCreateFunc func(ctx context.Context, ticketID uint, value any) error
	InvalidateTicketFunc  func(ctx context.Context, ticketID uint) error
	GetAllTicketsFunc     func(ctx context.Context, dest any) (bool, error)
	SetAllTicketsFunc     func(ctx context.Context, value any) error
}

func (m *mockCacheStore) GetTicket(ctx context.Context, ticketID uint, dest any) (bool, error) {
	if m.GetTicketFunc != nil {
		return m.GetTicketFunc(ctx, ticketID, dest)
	}
	return false, nil
}

func (m *mockCacheStore) SetTicket(ctx context.Context, ticketID uint, value any) error {
	if m.SetTicketFunc != nil {
		return m.SetTicketFunc(ctx, ticketID, value)
	}
	return nil
}

func (m *mockCacheStore) SetTicketOnCreate(ctx context.Context, ticketID uint, value any) error {
	if m.SetTicketOnCreateFunc != nil {
		return m.SetTicketOnCreateFunc(ctx, ticketID, value)
	}
	return nil
}

func (m *mockCacheStore) InvalidateTicket(ctx context.Context, ticketID uint) error {
	if m.InvalidateTicketFunc != nil {
		return m.InvalidateTicketFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockCacheStore) GetAllTickets(ctx context.Context, dest any) (bool, error) {
	if m.GetAllTicketsFunc != nil {
		return m.GetAllTicketsFunc(ctx, dest)
	}
	return false, nil
}

func (m *mockCacheStore) SetAllTickets(ctx context.Context, value any) error {
	if m.SetAllTicketsFunc != nil {
		return m.SetAllTicketsFunc(ctx, value)
	}
	return nil
}

type publishedEvent struct {
	Room  string
	Event ticket.Event
}

type mockPublisher struct {
	Broadcasts []ticket.Event
	RoomEvents []publishedEvent
}

func (m *mockPublisher) PublishToAll(event ticket.Event) {
	m.Broadcasts = append(m.Broadcasts, event)
}

func (m *mockPublisher) PublishToRoom(room string, event ticket.Event) {
	m.RoomEvents = append(m.RoomEvents, publishedEvent{Room: room, Event: event})
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
