package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForGuestQuery(t *testing.T) {
	sql, args := ListForGuestQuery(1, 5)

	assert.Contains(t, sql, "WHERE reservations.guest_id = $1")
	assert.Contains(t, sql, "GROUP BY properties.id, reservations.id ORDER BY reservations.start_date LIMIT $2")
	assert.Equal(t, []any{int64(1), 5}, args)
}

func TestListForGuestQuery_DefaultLimit(t *testing.T) {
	_, args := ListForGuestQuery(1, 0)
	assert.Equal(t, []any{int64(1), DefaultReservationLimit}, args)

	_, args = ListForGuestQuery(1, -3)
	assert.Equal(t, []any{int64(1), DefaultReservationLimit}, args)
}

func TestReservationRepository_ListForGuest(t *testing.T) {
	mock := newMock(t)
	repo := NewReservationRepository(mock)

	sql, _ := ListForGuestQuery(1, 2)
	loft := vancouverLoft()
	columns := append([]string{"id", "guest_id", "property_id", "start_date"}, propertyColumnNames...)
	columns = append(columns, "average_rating")

	first := append([]any{int64(10), int64(1), loft.ID, date(2018, 9, 11)}, propertyRow(loft)...)
	second := append([]any{int64(11), int64(1), loft.ID, date(2019, 1, 4)}, propertyRow(loft)...)

	mock.ExpectQuery(regexp.QuoteMeta(sql)).
		WithArgs(int64(1), 2).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(append(first, 3.8)...).
			AddRow(append(second, 3.8)...))

	reservations, err := repo.ListForGuest(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.Equal(t, int64(10), reservations[0].ID)
	assert.Equal(t, loft, reservations[0].Property)
	assert.Equal(t, 3.8, reservations[0].AverageRating)
	assert.False(t, reservations[1].StartDate.Before(reservations[0].StartDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_ListForGuest_Empty(t *testing.T) {
	mock := newMock(t)
	repo := NewReservationRepository(mock)

	mock.ExpectQuery(`FROM reservations`).
		WithArgs(int64(99), DefaultReservationLimit).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	reservations, err := repo.ListForGuest(context.Background(), 99, 0)
	require.NoError(t, err)
	assert.NotNil(t, reservations)
	assert.Empty(t, reservations)
}
