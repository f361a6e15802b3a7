package dispatcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mailflow/internal/core/domain"
	"mailflow/internal/core/port"
	"mailflow/internal/core/port/mocks"
)

const sender = "KK Marketing Platform <no-reply@example.com>"

var (
	fixedNow = time.Date(2025, 4, 20, 10, 47, 0, 0, time.UTC)
	dueAt    = time.Date(2025, 4, 20, 10, 15, 0, 0, time.UTC)
	notDueAt = time.Date(2025, 4, 20, 11, 1, 0, 0, time.UTC)
	spring   = &domain.Campaign{ID: 3, Name: "Spring", SubjectLine: "Hello", EmailContent: "<p>hi</p>"}
)

type deps struct {
	automations *mocks.MockAutomationRepository
	campaigns   *mocks.MockCampaignRepository
	recipients  *mocks.MockRecipientResolver
	mailer      *mocks.MockMailer
}

func newDispatcher(t *testing.T) (*Dispatcher, deps) {
	d := deps{
		automations: mocks.NewMockAutomationRepository(t),
		campaigns:   mocks.NewMockCampaignRepository(t),
		recipients:  mocks.NewMockRecipientResolver(t),
		mailer:      mocks.NewMockMailer(t),
	}
	return New(Params{
		Automations: d.automations,
		Campaigns:   d.campaigns,
		Recipients:  d.recipients,
		Mailer:      d.mailer,
		From:        sender,
		Location:    time.UTC,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:         func() time.Time { return fixedNow },
	}), d
}

func automation(id int64, schedule *time.Time, status domain.AutomationStatus) domain.Automation {
	return domain.Automation{
		ID:          id,
		Name:        "a",
		Schedule:    schedule,
		CampaignID:  spring.ID,
		AudienceIDs: []int64{1, 2},
		Status:      status,
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestTickSendsDueAutomation(t *testing.T) {
	disp, d := newDispatcher(t)
	a := automation(1, ptr(dueAt), domain.StatusRunning)

	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{a}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(spring, nil)
	d.recipients.EXPECT().Recipients(mock.Anything, a).Return([]domain.Recipient{
		{ID: 1, Email: "a@example.com"},
		{ID: 2, Email: "b@example.com"},
	}, nil)
	for _, to := range []string{"a@example.com", "b@example.com"} {
		d.mailer.EXPECT().Send(mock.Anything, domain.Email{
			From:    sender,
			To:      to,
			Subject: "Hello",
			HTML:    "<p>hi</p>",
		}).Return(nil).Once()
	}
	d.automations.EXPECT().SetStatus(mock.Anything, int64(1), domain.StatusCompleted).Return(nil).Once()

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{Candidates: 1, Due: 1, Completed: 1, Sent: 2}, rep)
}

func TestTickIgnoresAutomationsOutsideTheHour(t *testing.T) {
	disp, d := newDispatcher(t)

	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{
		automation(1, ptr(notDueAt), domain.StatusRunning),
		automation(2, ptr(dueAt.AddDate(0, 0, 1)), domain.StatusRunning),
		automation(3, nil, domain.StatusRunning),
	}, nil)

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{Candidates: 3}, rep)
}

func TestTickLeavesNonRunningAutomationsAlone(t *testing.T) {
	disp, d := newDispatcher(t)

	// the store is expected to filter, but a stale row must still be ignored
	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{
		automation(1, ptr(dueAt), domain.StatusPaused),
		automation(2, ptr(dueAt), domain.StatusCompleted),
	}, nil)

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Due)
	d.automations.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	d.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestTickSkipsMissingCampaign(t *testing.T) {
	disp, d := newDispatcher(t)
	a := automation(1, ptr(dueAt), domain.StatusRunning)

	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{a}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(nil, port.ErrNotFound)

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{Candidates: 1, Due: 1, Skipped: 1}, rep)
	d.automations.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTickSkipsEmptyAudience(t *testing.T) {
	disp, d := newDispatcher(t)
	a := automation(1, ptr(dueAt), domain.StatusRunning)

	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{a}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(spring, nil)
	d.recipients.EXPECT().Recipients(mock.Anything, a).Return([]domain.Recipient{}, nil)

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{Candidates: 1, Due: 1, Skipped: 1}, rep)
}

func TestTickSkipsWhenRecipientsFail(t *testing.T) {
	disp, d := newDispatcher(t)
	a := automation(1, ptr(dueAt), domain.StatusRunning)

	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{a}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(spring, nil)
	d.recipients.EXPECT().Recipients(mock.Anything, a).
		Return(nil, &port.StorageError{Op: "get audiences by ids", Err: assert.AnError})

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Skipped)
}

func TestTickCompletesDespiteSendFailure(t *testing.T) {
	disp, d := newDispatcher(t)
	a := automation(1, ptr(dueAt), domain.StatusRunning)

	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{a}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(spring, nil)
	d.recipients.EXPECT().Recipients(mock.Anything, a).Return([]domain.Recipient{
		{ID: 1, Email: "a@example.com"},
		{ID: 2, Email: "b@example.com"},
	}, nil)
	d.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(e domain.Email) bool { return e.To == "a@example.com" })).
		Return(&port.SendError{To: "a@example.com", Err: errors.New("mailbox unavailable")}).Once()
	d.mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(e domain.Email) bool { return e.To == "b@example.com" })).
		Return(nil).Once()
	d.automations.EXPECT().SetStatus(mock.Anything, int64(1), domain.StatusCompleted).Return(nil).Once()

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{Candidates: 1, Due: 1, Completed: 1, Sent: 1, Failed: 1}, rep)
}

func TestTickContinuesAfterFailedAutomation(t *testing.T) {
	disp, d := newDispatcher(t)
	broken := automation(1, ptr(dueAt), domain.StatusRunning)
	broken.CampaignID = 404
	ok := automation(2, ptr(dueAt), domain.StatusRunning)

	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{broken, ok}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(404)).Return(nil, port.ErrNotFound)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(spring, nil)
	d.recipients.EXPECT().Recipients(mock.Anything, ok).Return([]domain.Recipient{{ID: 1, Email: "a@example.com"}}, nil)
	d.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
	d.automations.EXPECT().SetStatus(mock.Anything, int64(2), domain.StatusCompleted).Return(nil).Once()

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{Candidates: 2, Due: 2, Completed: 1, Skipped: 1, Sent: 1}, rep)
}

func TestTickStatusUpdateFailureIsLogged(t *testing.T) {
	disp, d := newDispatcher(t)
	a := automation(1, ptr(dueAt), domain.StatusRunning)

	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{a}, nil)
	d.campaigns.EXPECT().GetByID(mock.Anything, int64(3)).Return(spring, nil)
	d.recipients.EXPECT().Recipients(mock.Anything, a).Return([]domain.Recipient{{ID: 1, Email: "a@example.com"}}, nil)
	d.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)
	d.automations.EXPECT().SetStatus(mock.Anything, int64(1), domain.StatusCompleted).Return(port.ErrNotFound)

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Completed)
	assert.Equal(t, 1, rep.Sent)
}

func TestTickListFailure(t *testing.T) {
	disp, d := newDispatcher(t)
	storeErr := &port.StorageError{Op: "list running automations", Err: errors.New("connection refused")}

	d.automations.EXPECT().ListRunning(mock.Anything).Return(nil, storeErr).Once()

	var err error
	assert.NotPanics(t, func() { _, err = disp.Tick(context.Background()) })
	assert.ErrorIs(t, err, storeErr)

	// the next tick is independent of the failed one
	d.automations.EXPECT().ListRunning(mock.Anything).Return(nil, nil).Once()
	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{}, rep)
}

func TestTickDoesNotOverlap(t *testing.T) {
	disp, d := newDispatcher(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	d.automations.EXPECT().ListRunning(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.Automation, error) {
			close(entered)
			<-release
			return nil, nil
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := disp.Tick(context.Background())
		done <- err
	}()
	<-entered

	_, err := disp.Tick(context.Background())
	assert.ErrorIs(t, err, port.ErrTickInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestTickStopsOnCancelledContext(t *testing.T) {
	disp, d := newDispatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{
		automation(1, ptr(dueAt), domain.StatusRunning),
	}, nil)

	rep, err := disp.Tick(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, rep.Due)
}

func TestTickUsesConfiguredLocation(t *testing.T) {
	disp, d := newDispatcher(t)
	// 10:15 and 10:47 UTC share an hour in UTC but fall into 15:45 and
	// 16:17 in UTC+5:30.
	disp.loc = time.FixedZone("UTC+5:30", 5*60*60+30*60)
	d.automations.EXPECT().ListRunning(mock.Anything).Return([]domain.Automation{
		automation(1, ptr(dueAt), domain.StatusRunning),
	}, nil)

	rep, err := disp.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Due)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	disp, _ := newDispatcher(t)
	assert.Error(t, disp.Start(context.Background(), "every hour please"))
	assert.NoError(t, disp.Stop(context.Background()))
}

func TestScheduledTickRecoversFromPanic(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the cron clock")
	}
	disp, d := newDispatcher(t)

	var calls atomic.Int32
	second := make(chan struct{})
	d.automations.EXPECT().ListRunning(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.Automation, error) {
			switch calls.Add(1) {
			case 1:
				panic("store exploded")
			case 2:
				close(second)
			}
			return nil, nil
		})

	require.NoError(t, disp.Start(context.Background(), "@every 1s"))
	defer func() { _ = disp.Stop(context.Background()) }()

	select {
	case <-second:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not survive a panicking tick")
	}
}
