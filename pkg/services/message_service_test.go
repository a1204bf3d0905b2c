package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybreakhq/daybreak/ent/job"
	"github.com/daybreakhq/daybreak/pkg/domain"
	"github.com/daybreakhq/daybreak/pkg/models"
)

func (f *fixture) jobKinds(t *testing.T) []string {
	t.Helper()
	rows, err := f.client.Job.Query().All(context.Background())
	require.NoError(t, err)
	kinds := make([]string, 0, len(rows))
	for _, row := range rows {
		kinds = append(kinds, row.Kind)
	}
	return kinds
}

func TestReceiveSMS(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	svc := NewMessageService(f.uow, f.store)
	msg, err := svc.ReceiveSMS(ctx, models.ReceiveSMSRequest{
		FromNumber: "+15550001111",
		ToNumber:   "+15559990000",
		Body:       "remind me to water the plants",
		Provider:   "twilio",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, msg.UserID)
	assert.Equal(t, domain.RoleUser, msg.Role)
	assert.Equal(t, "+15550001111", msg.Meta["from_number"])

	stored, err := f.store.RecentMessages(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	// The reply use case runs as a deferred job.
	jobs, err := f.client.Job.Query().Where(job.Kind(JobProcessInboundSMS)).All(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, user.ID, jobs[0].UserID)
	assert.Equal(t, msg.ID.String(), jobs[0].Payload["message_id"])
	assert.Equal(t, job.StatusPending, jobs[0].Status)
}

func TestReceiveSMSUnknownNumber(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedUser(t)

	svc := NewMessageService(f.uow, f.store)
	_, err := svc.ReceiveSMS(ctx, models.ReceiveSMSRequest{
		FromNumber: "+15558675309",
		Body:       "hello?",
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.jobKinds(t))
}

func TestCaptureBrainDump(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	svc := NewMessageService(f.uow, f.store)
	dump, err := svc.CaptureBrainDump(ctx, models.CaptureBrainDumpRequest{
		UserID: user.ID,
		Date:   "2026-08-24",
		Items:  []string{"book dentist", "", "buy stamps"},
	})
	require.NoError(t, err)
	require.Len(t, dump.Items, 2)

	// One processing job per captured item, empty strings skipped.
	assert.Equal(t, []string{JobProcessBrainDumpItem, JobProcessBrainDumpItem}, f.jobKinds(t))

	// A second capture on the same date appends to the same row.
	again, err := svc.CaptureBrainDump(ctx, models.CaptureBrainDumpRequest{
		UserID: user.ID,
		Date:   "2026-08-24",
		Items:  []string{"call mom"},
	})
	require.NoError(t, err)
	assert.Equal(t, dump.ID, again.ID)
	require.Len(t, again.Items, 3)

	stored, err := f.store.BrainDumpByDate(ctx, user.ID, "2026-08-24")
	require.NoError(t, err)
	assert.Len(t, stored.Items, 3)
}

func TestCaptureBrainDumpValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.seedUser(t)

	svc := NewMessageService(f.uow, f.store)
	_, err := svc.CaptureBrainDump(ctx, models.CaptureBrainDumpRequest{
		UserID: user.ID, Date: "2026-08-24",
	})
	assert.True(t, IsValidationError(err))

	_, err = svc.CaptureBrainDump(ctx, models.CaptureBrainDumpRequest{
		UserID: user.ID, Date: "24/08/2026", Items: []string{"x"},
	})
	assert.True(t, IsValidationError(err))
}
