package impl

import (
	"context"
	"testing"

	"guardian/internal/domain/constants"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	mockRepo "guardian/internal/mocks/repository"
	mockService "guardian/internal/mocks/service"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contactServiceFixtures holds all test dependencies for contact service tests.
type contactServiceFixtures struct {
	service       usecase.ContactDirectory
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	contactRepo   *mockRepo.MockContactRepository
	txContactRepo *mockRepo.MockContactRepository
	userRepo      *mockRepo.MockUserRepository
	deviceRepo    *mockRepo.MockDeviceRepository
	push          *mockService.MockPushSender
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	fx := contactServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		contactRepo:   mockRepo.NewMockContactRepository(t),
		txContactRepo: mockRepo.NewMockContactRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		deviceRepo:    mockRepo.NewMockDeviceRepository(t),
		push:          mockService.NewMockPushSender(t),
	}
	fx.service = NewContactService(fx.txManager, fx.contactRepo, fx.userRepo, fx.deviceRepo, fx.push, newTestLogger())

	return fx
}

func TestContactService_ListContacts(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	contacts := []*entity.EmergencyContact{
		{ID: uuid.New(), UserID: userID, Priority: 0},
		{ID: uuid.New(), UserID: userID, Priority: 1},
	}

	fx.contactRepo.EXPECT().FindContactsByUser(ctx, userID).Return(contacts, nil)

	got, err := fx.service.ListContacts(ctx, userID, userID)
	require.NoError(t, err)
	assert.Equal(t, contacts, got)
}

func TestContactService_ListContacts_Empty(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.contactRepo.EXPECT().FindContactsByUser(ctx, userID).Return(nil, nil)

	got, err := fx.service.ListContacts(ctx, userID, userID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestContactService_ListContacts_OtherUser(t *testing.T) {
	fx := createTestContactService(t)

	_, err := fx.service.ListContacts(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestContactService_ListContacts_StorageFailure(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.contactRepo.EXPECT().FindContactsByUser(ctx, userID).Return(nil, errors.New("connection refused"))

	_, err := fx.service.ListContacts(ctx, userID, userID)
	assert.ErrorIs(t, err, domainerrors.ErrDirectoryUnavailable)
}

func TestContactService_ResolveRecipient(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Phone: "+15550001111"}
	dbErr := errors.New("timeout")

	tests := []struct {
		name      string
		setup     func(fx contactServiceFixtures)
		want      *entity.Recipient
		wantError error
	}{
		{
			name: "registered user with device",
			setup: func(fx contactServiceFixtures) {
				fx.userRepo.EXPECT().FindByPhone(ctx, "+15550001111").Return(user, nil)
				fx.deviceRepo.EXPECT().FindLatestActiveDevice(ctx, user.ID).
					Return(&entity.UserDevice{PushToken: "token-1", IsActive: true}, nil)
			},
			want: &entity.Recipient{UserID: user.ID, PushToken: "token-1"},
		},
		{
			name: "registered user without device",
			setup: func(fx contactServiceFixtures) {
				fx.userRepo.EXPECT().FindByPhone(ctx, "+15550001111").Return(user, nil)
				fx.deviceRepo.EXPECT().FindLatestActiveDevice(ctx, user.ID).
					Return(nil, repository.ErrDeviceNotFound)
			},
			want: &entity.Recipient{UserID: user.ID},
		},
		{
			name: "unknown number",
			setup: func(fx contactServiceFixtures) {
				fx.userRepo.EXPECT().FindByPhone(ctx, "+15550001111").Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "user lookup fails",
			setup: func(fx contactServiceFixtures) {
				fx.userRepo.EXPECT().FindByPhone(ctx, "+15550001111").Return(nil, dbErr)
			},
			wantError: domainerrors.ErrDirectoryUnavailable,
		},
		{
			name: "device lookup fails",
			setup: func(fx contactServiceFixtures) {
				fx.userRepo.EXPECT().FindByPhone(ctx, "+15550001111").Return(user, nil)
				fx.deviceRepo.EXPECT().FindLatestActiveDevice(ctx, user.ID).Return(nil, dbErr)
			},
			wantError: domainerrors.ErrDirectoryUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContactService(t)
			tt.setup(fx)

			got, err := fx.service.ResolveRecipient(ctx, "+1 (555) 000-1111")
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContactService_AddContact_AppendsPriority(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddContactInput{Name: " Ana ", Phone: "+1 555 000 2222", Relationship: "sister"}

	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewContactRepository().Return(fx.txContactRepo)
	fx.txContactRepo.EXPECT().FindContactsByUser(ctx, userID).Return([]*entity.EmergencyContact{
		{Priority: 0}, {Priority: 3},
	}, nil)
	fx.txContactRepo.EXPECT().CreateContact(ctx, mock.AnythingOfType("*entity.EmergencyContact")).Return(nil)
	fx.userRepo.EXPECT().FindByPhone(mock.Anything, "+15550002222").Return(nil, repository.ErrUserNotFound)

	contact, err := fx.service.AddContact(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, "Ana", contact.Name)
	assert.Equal(t, 4, contact.Priority)
	assert.Equal(t, userID, contact.UserID)
}

func TestContactService_AddContact_NotifiesRegisteredContact(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactUser := &entity.User{ID: uuid.New()}
	priority := 2
	input := &usecase.AddContactInput{Name: "Ben", Phone: "5550003333", Priority: &priority}

	runInTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewContactRepository().Return(fx.txContactRepo)
	fx.txContactRepo.EXPECT().CreateContact(ctx, mock.AnythingOfType("*entity.EmergencyContact")).Return(nil)
	fx.userRepo.EXPECT().FindByPhone(mock.Anything, "5550003333").Return(contactUser, nil)
	fx.deviceRepo.EXPECT().FindLatestActiveDevice(mock.Anything, contactUser.ID).
		Return(&entity.UserDevice{PushToken: "token-ben", IsActive: true}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Name: "Carla"}, nil)
	fx.push.EXPECT().
		SendPush(mock.Anything, mock.MatchedBy(func(m *service.PushMessage) bool {
			return m.Token == "token-ben" &&
				m.Title == contactAddedTitle &&
				m.Body == "Carla added you as an emergency contact in SOS Guardian. You'll receive instant alerts if they need help." &&
				m.Data["type"] == constants.PushTypeContactAdded &&
				m.Data["addedBy"] == userID.String()
		})).
		Return("", errors.New("expo down"))

	contact, err := fx.service.AddContact(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, 2, contact.Priority)
}

func TestContactService_AddContact_Validation(t *testing.T) {
	fx := createTestContactService(t)

	_, err := fx.service.AddContact(context.Background(), uuid.New(), &usecase.AddContactInput{Name: "A", Phone: "call me"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone)

	_, err = fx.service.AddContact(context.Background(), uuid.New(), &usecase.AddContactInput{Name: " ", Phone: "123"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestContactService_UpdateContact(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()
	phone := "+44 20 7946 0000"
	verified := true

	fx.contactRepo.EXPECT().FindContactByID(ctx, contactID).Return(&entity.EmergencyContact{ID: contactID, UserID: userID}, nil)
	fx.contactRepo.EXPECT().
		UpdateContact(ctx, contactID, mock.MatchedBy(func(u *repository.ContactUpdate) bool {
			return u.Phone != nil && *u.Phone == phone &&
				u.Verified != nil && *u.Verified &&
				u.Name == nil && u.Priority == nil
		})).
		Return(&entity.EmergencyContact{ID: contactID, UserID: userID, Phone: phone, Verified: true}, nil)

	contact, err := fx.service.UpdateContact(ctx, userID, contactID, &usecase.UpdateContactInput{Phone: &phone, Verified: &verified})
	require.NoError(t, err)
	assert.True(t, contact.Verified)
}

func TestContactService_UpdateContact_OtherOwner(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	contactID := uuid.New()

	fx.contactRepo.EXPECT().FindContactByID(ctx, contactID).Return(&entity.EmergencyContact{ID: contactID, UserID: uuid.New()}, nil)

	_, err := fx.service.UpdateContact(ctx, uuid.New(), contactID, &usecase.UpdateContactInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestContactService_DeleteContact(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()

	fx.contactRepo.EXPECT().FindContactByID(ctx, contactID).Return(&entity.EmergencyContact{ID: contactID, UserID: userID}, nil)
	fx.contactRepo.EXPECT().DeleteContact(ctx, contactID).Return(nil)

	require.NoError(t, fx.service.DeleteContact(ctx, userID, contactID))
}

func TestContactService_DeleteContact_NotFound(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	contactID := uuid.New()

	fx.contactRepo.EXPECT().FindContactByID(ctx, contactID).Return(nil, repository.ErrContactNotFound)

	err := fx.service.DeleteContact(ctx, uuid.New(), contactID)
	assert.ErrorIs(t, err, domainerrors.ErrContactNotFound)
}
