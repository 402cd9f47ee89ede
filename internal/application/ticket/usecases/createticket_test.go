package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
)

func testUser(t *testing.T, id uint, name, email string, role user.Role) *user.User {
	t.Helper()
	now := biztime.NowUTC()
	u, err := user.ReconstructUser(id, name, email, "$2a$12$hash", role, now, now)
	require.NoError(t, err)
	return u
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "create technical ticket with high priority",
			command: CreateTicketCommand{
				Title:       "System crashes on login",
				Description: "Users experiencing crashes when attempting to login",
				Category:    string(vo.CategoryTechnical),
				Priority:    string(vo.PriorityHigh),
				OwnerID:     1,
			},
		},
		{
			name: "create billing ticket with low priority",
			command: CreateTicketCommand{
				Title:       "Invoice clarification needed",
				Description: "Need clarification on last month's invoice",
				Category:    string(vo.CategoryBilling),
				Priority:    string(vo.PriorityLow),
				OwnerID:     2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var savedTicket *ticket.Ticket
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					if err := tkt.SetID(100); err != nil {
						return err
					}
					savedTicket = tkt
					return nil
				},
			}
			mockUsers := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return testUser(t, id, "Alice", "alice@example.com", user.RoleUser), nil
				},
			}
			mockCache := &mockCacheStore{}
			publisher := &mockPublisher{}

			useCase := NewCreateTicketUseCase(mockRepo, mockUsers, mockCache, publisher, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(100), result.ID)
			assert.Equal(t, vo.StatusOpen.String(), result.Status)
			assert.Equal(t, tt.command.OwnerID, result.User.ID)
			assert.NotZero(t, result.CreatedAt)

			require.NotNil(t, savedTicket)
			assert.Equal(t, tt.command.Title, savedTicket.Title())
			assert.Equal(t, tt.command.Description, savedTicket.Description())
			assert.Equal(t, vo.Category(tt.command.Category), savedTicket.Category())
			assert.Equal(t, vo.Priority(tt.command.Priority), savedTicket.Priority())

			require.Len(t, publisher.Broadcasts, 1)
			assert.Equal(t, ticket.EventTicketCreated, publisher.Broadcasts[0].Name)
			data, ok := publisher.Broadcasts[0].Data.(ticket.CreatedEventData)
			require.True(t, ok)
			assert.Equal(t, uint(100), data.ID)
		})
	}
}

func TestCreateTicketUseCase_Execute_StatusForcedToOpen(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return tkt.SetID(1)
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t, id, "Alice", "alice@example.com", user.RoleUser), nil
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, mockUsers, nil, &mockPublisher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "Valid title",
		Description: "Valid description",
		Category:    string(vo.CategorySupport),
		Priority:    string(vo.PriorityMedium),
		OwnerID:     1,
	})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusOpen.String(), result.Status)
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       CreateTicketCommand
		expectedError string
	}{
		{
			name: "empty title",
			command: CreateTicketCommand{
				Title:       "",
				Description: "Some description",
				Category:    string(vo.CategoryTechnical),
				Priority:    string(vo.PriorityMedium),
				OwnerID:     1,
			},
			expectedError: "title is required",
		},
		{
			name: "title too long",
			command: CreateTicketCommand{
				Title:       string(make([]byte, 201)),
				Description: "Some description",
				Category:    string(vo.CategoryTechnical),
				Priority:    string(vo.PriorityMedium),
				OwnerID:     1,
			},
			expectedError: "title exceeds maximum length",
		},
		{
			name: "empty description",
			command: CreateTicketCommand{
				Title:       "Valid title",
				Description: "",
				Category:    string(vo.CategoryTechnical),
				Priority:    string(vo.PriorityMedium),
				OwnerID:     1,
			},
			expectedError: "description is required",
		},
		{
			name: "description too long",
			command: CreateTicketCommand{
				Title:       "Valid title",
				Description: string(make([]byte, 5001)),
				Category:    string(vo.CategoryTechnical),
				Priority:    string(vo.PriorityMedium),
				OwnerID:     1,
			},
			expectedError: "description exceeds maximum length",
		},
		{
			name: "missing owner ID",
			command: CreateTicketCommand{
				Title:       "Valid title",
				Description: "Valid description",
				Category:    string(vo.CategoryTechnical),
				Priority:    string(vo.PriorityMedium),
				OwnerID:     0,
			},
			expectedError: "owner ID is required",
		},
		{
			name: "invalid category",
			command: CreateTicketCommand{
				Title:       "Valid title",
				Description: "Valid description",
				Category:    "invalid_category",
				Priority:    string(vo.PriorityMedium),
				OwnerID:     1,
			},
			expectedError: "invalid category",
		},
		{
			name: "invalid priority",
			command: CreateTicketCommand{
				Title:       "Valid title",
				Description: "Valid description",
				Category:    string(vo.CategoryTechnical),
				Priority:    "invalid_priority",
				OwnerID:     1,
			},
			expectedError: "invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &mockPublisher{}
			useCase := NewCreateTicketUseCase(&mockTicketRepository{}, &mockUserRepository{}, nil, publisher, &mockLogger{})

			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.expectedError)
			assert.Empty(t, publisher.Broadcasts)
		})
	}
}

func TestCreateTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return errors.New("database connection failed")
		},
	}
	publisher := &mockPublisher{}

	useCase := NewCreateTicketUseCase(mockRepo, &mockUserRepository{}, nil, publisher, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "Valid title",
		Description: "Valid description",
		Category:    string(vo.CategoryTechnical),
		Priority:    string(vo.PriorityMedium),
		OwnerID:     1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "database connection failed")
	assert.Empty(t, publisher.Broadcasts)
}

func TestCreateTicketUseCase_Execute_CacheErrorDoesNotFail(t *testing.T) {
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			return tkt.SetID(7)
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return testUser(t, id, "Alice", "alice@example.com", user.RoleUser), nil
		},
	}
	mockCache := &mockCacheStore{
		SetTicketOnCreateFunc: func(ctx context.Context, ticketID uint, value any) error {
			return errors.New("redis unavailable")
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, mockUsers, mockCache, &mockPublisher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Title:       "Valid title",
		Description: "Valid description",
		Category:    string(vo.CategoryTechnical),
		Priority:    string(vo.PriorityMedium),
		OwnerID:     1,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.ID)
}
