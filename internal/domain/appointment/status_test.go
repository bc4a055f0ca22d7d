package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/estetica-scheduler/internal/httperr"
	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

func TestStatus_Occupies(t *testing.T) {
	for _, s := range Statuses {
		assert.Equal(t, s != StatusCancelled, s.Occupies(), s)
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("No-show")
	require.NoError(t, err)
	assert.Equal(t, StatusNoShow, st)

	_, err = ParseStatus("confirmado")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestTransitions(t *testing.T) {
	cases := []struct {
		from        Status
		canCancel   bool
		canComplete bool
		canArchive  bool
	}{
		{StatusConfirmed, true, true, false},
		{StatusRescheduled, true, true, false},
		{StatusCancelled, false, false, false},
		{StatusNoShow, false, false, false},
		{StatusCompleted, false, false, true},
	}

	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			assert.Equal(t, tc.canCancel, CanCancel(tc.from) == nil)
			assert.Equal(t, tc.canComplete, CanComplete(tc.from) == nil)
			assert.Equal(t, tc.canArchive, CanArchive(tc.from) == nil)
		})
	}
}

func TestCancelAndComplete(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(ap))
	assert.Equal(t, "Cancelado", ap.Status)
	assert.Error(t, Complete(ap))
	assert.Equal(t, "Cancelado", ap.Status)
}

func TestAppendNotes(t *testing.T) {
	assert.Equal(t, "a | b", AppendNotes("a", " b "))
	assert.Equal(t, "b", AppendNotes("  ", "b"))
	assert.Equal(t, "a", AppendNotes("a", ""))
}

func TestToRecord(t *testing.T) {
	r := ToRecord(models.Appointment{Date: "2026-10-20", StartTime: "10:00", EndTime: "10:30", Status: "Cancelado"})
	assert.True(t, r.Cancelled)
	assert.Equal(t, "10:30", r.EndTime)

	r = ToRecord(models.Appointment{Status: "No-show"})
	assert.False(t, r.Cancelled)
}
