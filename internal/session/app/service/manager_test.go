package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/simctl/internal/session/app/service"
	"github.com/klwxsrx/simctl/internal/session/app/storage/mock"
	"github.com/klwxsrx/simctl/internal/session/domain"
	"github.com/klwxsrx/simctl/internal/session/domain/tokentest"
	"github.com/klwxsrx/simctl/internal/session/infra/memory"
	"github.com/klwxsrx/simctl/pkg/log"
	"github.com/klwxsrx/simctl/pkg/time/fake"
)

var (
	startTime = time.Unix(1_750_000_000, 0)

	customer = domain.Identity{
		ID:        7,
		Name:      "Asha",
		Email:     "asha@example.com",
		Phone:     "9000000001",
		AadhaarNo: "123412341234",
		Role:      domain.RoleUser,
	}
)

type transition struct {
	status service.Status
	reason service.Reason
}

type managerFixture struct {
	clock       *fake.Clock
	store       *memory.Store
	manager     *service.Manager
	transitions []transition
}

func newManagerFixture() *managerFixture {
	f := &managerFixture{
		clock: fake.NewClock(startTime),
		store: memory.NewStore(),
	}
	f.manager = service.NewManager(
		f.store,
		f.clock,
		log.New(log.LevelDisabled),
		service.WithListener(func(_ context.Context, state service.State, reason service.Reason) {
			f.transitions = append(f.transitions, transition{state.Status, reason})
		}),
	)

	return f
}

func (f *managerFixture) assertTimers(t *testing.T, oneShot, periodic int) {
	t.Helper()

	gotOneShot, gotPeriodic := f.clock.Timers()
	assert.Equal(t, oneShot, gotOneShot, "one-shot timers")
	assert.Equal(t, periodic, gotPeriodic, "periodic timers")
}

func TestManager_Login(t *testing.T) {
	ctx := context.Background()
	f := newManagerFixture()
	credential := tokentest.Issue(t, startTime.Add(time.Hour), domain.RoleUser)

	require.NoError(t, f.manager.Login(ctx, customer, credential))

	state := f.manager.State()
	assert.Equal(t, service.StatusAuthenticated, state.Status)
	require.NotNil(t, state.Identity)
	assert.Equal(t, customer, *state.Identity)
	assert.Equal(t, int64(3600), state.RemainingSeconds)
	f.assertTimers(t, 1, 1)

	storedCredential, err := f.store.LoadCredential()
	require.NoError(t, err)
	assert.Equal(t, credential, storedCredential)
	storedIdentity, err := f.store.LoadIdentity()
	require.NoError(t, err)
	assert.Equal(t, &customer, storedIdentity)

	assert.Equal(t, []transition{{service.StatusAuthenticated, service.ReasonLogin}}, f.transitions)
}

func TestManager_RepeatedLoginKeepsSingleTimerPair(t *testing.T) {
	ctx := context.Background()
	f := newManagerFixture()

	for i := 0; i < 5; i++ {
		credential := tokentest.Issue(t, startTime.Add(time.Duration(i+1)*time.Minute), domain.RoleUser)
		require.NoError(t, f.manager.Login(ctx, customer, credential))
		f.assertTimers(t, 1, 1)
	}

	assert.Equal(t, int64(300), f.manager.State().RemainingSeconds)
}

func TestManager_LoginRejectsUnusableCredential(t *testing.T) {
	tests := []struct {
		name        string
		credential  func(t *testing.T) domain.Credential
		expectedErr error
	}{
		{
			name:        "malformed",
			credential:  func(*testing.T) domain.Credential { return "not-a-token" },
			expectedErr: service.ErrInvalidCredential,
		},
		{
			name:        "without expiry",
			credential:  func(t *testing.T) domain.Credential { return tokentest.IssueWithoutExpiry(t) },
			expectedErr: service.ErrInvalidCredential,
		},
		{
			name: "already expired",
			credential: func(t *testing.T) domain.Credential {
				return tokentest.Issue(t, startTime.Add(-time.Second), domain.RoleUser)
			},
			expectedErr: service.ErrCredentialExpired,
		},
		{
			name: "expires right now",
			credential: func(t *testing.T) domain.Credential {
				return tokentest.Issue(t, startTime, domain.RoleUser)
			},
			expectedErr: service.ErrCredentialExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newManagerFixture()
			valid := tokentest.Issue(t, startTime.Add(time.Hour), domain.RoleUser)
			require.NoError(t, f.manager.Login(ctx, customer, valid))

			err := f.manager.Login(ctx, customer, tt.credential(t))
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, service.State{Status: service.StatusAnonymous}, f.manager.State())
			f.assertTimers(t, 0, 0)
			storedCredential, err := f.store.LoadCredential()
			require.NoError(t, err)
			assert.True(t, storedCredential.IsAbsent())
			assert.Equal(t, service.ReasonRejected, f.transitions[len(f.transitions)-1].reason)
		})
	}
}

func TestManager_ExpiresAtCredentialExpiry(t *testing.T) {
	ctx := context.Background()
	f := newManagerFixture()
	credential := tokentest.Issue(t, startTime.Add(2*time.Second), domain.RoleUser)
	require.NoError(t, f.manager.Login(ctx, customer, credential))
	assert.Equal(t, int64(2), f.manager.State().RemainingSeconds)

	f.clock.Advance(time.Second)
	state := f.manager.State()
	assert.Equal(t, service.StatusAuthenticated, state.Status)
	assert.Equal(t, int64(1), state.RemainingSeconds)

	f.clock.Advance(1100 * time.Millisecond)
	assert.Equal(t, service.State{Status: service.StatusAnonymous}, f.manager.State())
	f.assertTimers(t, 0, 0)

	storedCredential, err := f.store.LoadCredential()
	require.NoError(t, err)
	assert.True(t, storedCredential.IsAbsent())
	storedIdentity, err := f.store.LoadIdentity()
	require.NoError(t, err)
	assert.Nil(t, storedIdentity)

	assert.Equal(t, []transition{
		{service.StatusAuthenticated, service.ReasonLogin},
		{service.StatusAnonymous, service.ReasonExpired},
	}, f.transitions)
}

func TestManager_StaleExpiryTimerIsIgnoredAfterRelogin(t *testing.T) {
	ctx := context.Background()
	f := newManagerFixture()
	first := tokentest.Issue(t, startTime.Add(10*time.Second), domain.RoleUser)
	require.NoError(t, f.manager.Login(ctx, customer, first))

	f.clock.Advance(3 * time.Second)
	second := tokentest.Issue(t, startTime.Add(100*time.Second), domain.RoleUser)
	require.NoError(t, f.manager.Login(ctx, customer, second))

	f.clock.Advance(10 * time.Second)

	state := f.manager.State()
	assert.Equal(t, service.StatusAuthenticated, state.Status)
	assert.Equal(t, int64(100-13), state.RemainingSeconds)
	storedCredential, err := f.store.LoadCredential()
	require.NoError(t, err)
	assert.Equal(t, second, storedCredential)
}

func TestManager_CountdownStopsAtZeroWithoutLoggingOut(t *testing.T) {
	ctx := context.Background()
	f := newManagerFixture()
	credential := tokentest.Issue(t, startTime.Add(3*time.Second), domain.RoleUser)

	// start half a second in, countdown reaches zero before the credential expires
	f.clock.Skip(500 * time.Millisecond)
	require.NoError(t, f.manager.Login(ctx, customer, credential))
	assert.Equal(t, int64(2), f.manager.State().RemainingSeconds)

	f.clock.Advance(2 * time.Second)
	state := f.manager.State()
	assert.Equal(t, service.StatusAuthenticated, state.Status)
	assert.Equal(t, int64(0), state.RemainingSeconds)
	f.assertTimers(t, 1, 0)

	f.clock.Advance(time.Second)
	assert.Equal(t, service.StatusAnonymous, f.manager.State().Status)
}

func TestManager_LogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newManagerFixture()
	credential := tokentest.Issue(t, startTime.Add(time.Hour), domain.RoleUser)
	require.NoError(t, f.manager.Login(ctx, customer, credential))

	f.manager.Logout(ctx, service.ReasonExplicit)
	afterFirst := f.manager.State()
	f.manager.Logout(ctx, service.ReasonExplicit)

	assert.Equal(t, afterFirst, f.manager.State())
	assert.Equal(t, service.State{Status: service.StatusAnonymous}, afterFirst)
	f.assertTimers(t, 0, 0)
	assert.Equal(t, []transition{
		{service.StatusAuthenticated, service.ReasonLogin},
		{service.StatusAnonymous, service.ReasonExplicit},
	}, f.transitions)
}

func TestManager_Init(t *testing.T) {
	tests := []struct {
		name              string
		stored            func(t *testing.T) (*domain.Identity, domain.Credential)
		expectedStatus    service.Status
		expectedRemaining int64
	}{
		{
			name: "nothing stored",
			stored: func(*testing.T) (*domain.Identity, domain.Credential) {
				return nil, ""
			},
			expectedStatus: service.StatusAnonymous,
		},
		{
			name: "valid credential",
			stored: func(t *testing.T) (*domain.Identity, domain.Credential) {
				return &customer, tokentest.Issue(t, startTime.Add(90*time.Second), domain.RoleUser)
			},
			expectedStatus:    service.StatusAuthenticated,
			expectedRemaining: 90,
		},
		{
			name: "credential expired ten minutes ago",
			stored: func(t *testing.T) (*domain.Identity, domain.Credential) {
				return &customer, tokentest.Issue(t, startTime.Add(-10*time.Minute), domain.RoleUser)
			},
			expectedStatus: service.StatusAnonymous,
		},
		{
			name: "malformed credential",
			stored: func(*testing.T) (*domain.Identity, domain.Credential) {
				return &customer, "garbage"
			},
			expectedStatus: service.StatusAnonymous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newManagerFixture()
			identity, credential := tt.stored(t)
			if identity != nil {
				require.NoError(t, f.store.Persist(*identity, credential))
			}

			state := f.manager.Init(ctx)

			assert.Equal(t, tt.expectedStatus, state.Status)
			assert.Equal(t, tt.expectedRemaining, state.RemainingSeconds)
			assert.Equal(t, state, f.manager.State())

			storedCredential, err := f.store.LoadCredential()
			require.NoError(t, err)
			if tt.expectedStatus == service.StatusAuthenticated {
				assert.Equal(t, credential, storedCredential)
				f.assertTimers(t, 1, 1)
				return
			}

			assert.True(t, storedCredential.IsAbsent())
			f.assertTimers(t, 0, 0)
			assert.Empty(t, f.transitions)
		})
	}
}

func TestManager_InitTreatsStoreFailureAsAbsent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mock.NewStore(ctrl)
	clock := fake.NewClock(startTime)

	store.EXPECT().LoadCredential().Return(domain.Credential(""), errors.New("disk gone"))
	store.EXPECT().Clear().Return(nil)

	manager := service.NewManager(store, clock, log.New(log.LevelDisabled))
	state := manager.Init(ctx)

	assert.Equal(t, service.State{Status: service.StatusAnonymous}, state)
}

func TestManager_InitWithoutIdentityLogsOut(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mock.NewStore(ctrl)
	clock := fake.NewClock(startTime)

	store.EXPECT().LoadCredential().Return(tokentest.Issue(t, startTime.Add(time.Hour), domain.RoleUser), nil)
	store.EXPECT().LoadIdentity().Return(nil, nil)
	store.EXPECT().Clear().Return(nil)

	manager := service.NewManager(store, clock, log.New(log.LevelDisabled))

	assert.Equal(t, service.StatusAnonymous, manager.Init(ctx).Status)
	oneShot, periodic := clock.Timers()
	assert.Zero(t, oneShot+periodic)
}

func TestManager_LoginPersistFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mock.NewStore(ctrl)
	clock := fake.NewClock(startTime)
	credential := tokentest.Issue(t, startTime.Add(time.Hour), domain.RoleUser)
	persistErr := errors.New("read-only file system")

	store.EXPECT().Persist(customer, credential).Return(persistErr)
	store.EXPECT().Clear().Return(nil)

	manager := service.NewManager(store, clock, log.New(log.LevelDisabled))
	err := manager.Login(ctx, customer, credential)

	require.ErrorIs(t, err, persistErr)
	assert.Equal(t, service.StatusAnonymous, manager.State().Status)
	oneShot, periodic := clock.Timers()
	assert.Zero(t, oneShot+periodic)
}

func TestManager_LogoutSwallowsClearFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := mock.NewStore(ctrl)
	clock := fake.NewClock(startTime)
	credential := tokentest.Issue(t, startTime.Add(time.Hour), domain.RoleUser)

	store.EXPECT().Persist(customer, credential).Return(nil)
	store.EXPECT().Clear().Return(errors.New("locked")).Times(2)

	manager := service.NewManager(store, clock, log.New(log.LevelDisabled))
	require.NoError(t, manager.Login(ctx, customer, credential))

	assert.NotPanics(t, func() {
		manager.Logout(ctx, service.ReasonExplicit)
		manager.Logout(ctx, service.ReasonExplicit)
	})
	assert.Equal(t, service.StatusAnonymous, manager.State().Status)
}

func TestManager_CloseKeepsStoredSession(t *testing.T) {
	ctx := context.Background()
	f := newManagerFixture()
	credential := tokentest.Issue(t, startTime.Add(5*time.Second), domain.RoleUser)
	require.NoError(t, f.manager.Login(ctx, customer, credential))

	f.manager.Close()
	f.assertTimers(t, 0, 0)
	f.clock.Advance(10 * time.Second)

	storedCredential, err := f.store.LoadCredential()
	require.NoError(t, err)
	assert.Equal(t, credential, storedCredential)
}
