package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkamnoy/PVB-BookingService/internal/domain"
	"github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
	"github.com/pkamnoy/PVB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	intervals []domain.OccupiedInterval
}

func (f *fakeBookingRepo) ListOccupiedIntervals(ctx context.Context, roomID int64) ([]domain.OccupiedInterval, error) {
	return f.intervals, nil
}

type fakePropertyClient struct {
	rooms map[int64]*propertyservice.Room
}

func (f *fakePropertyClient) GetActiveRoom(ctx context.Context, roomID int64) (*propertyservice.Room, error) {
	room, ok := f.rooms[roomID]
	if !ok {
		return nil, propertyservice.ErrRoomNotFound
	}
	if !room.IsActive {
		return nil, propertyservice.ErrRoomInactive
	}
	return room, nil
}

type fakeRulesService struct {
	restrictions []domain.Restriction
}

func (f *fakeRulesService) ListRestrictions(ctx context.Context, asOf time.Time) ([]domain.Restriction, error) {
	return f.restrictions, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeRoom() *fakePropertyClient {
	return &fakePropertyClient{rooms: map[int64]*propertyservice.Room{
		101: {ID: 101, Name: "Garden Villa", BasePrice: 1000, IsActive: true},
	}}
}

func TestExecute_BlackoutAndBooking(t *testing.T) {
	repo := &fakeBookingRepo{intervals: []domain.OccupiedInterval{
		{
			BookingID: 9,
			Dates:     domain.DateRange{Start: day(2027, time.January, 5), End: day(2027, time.January, 6)},
			Status:    domain.StatusConfirmed,
		},
	}}
	rules := &fakeRulesService{restrictions: []domain.Restriction{
		{
			ID:           1,
			Dates:        domain.DateRange{Start: day(2027, time.January, 1), End: day(2027, time.January, 3)},
			AllowBooking: false,
			Reason:       "new year blackout",
			Source:       domain.SourceBlackout,
		},
	}}
	uc := NewUseCase(repo, activeRoom(), rules, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day(2027, time.January, 1),
		CheckOut: day(2027, time.January, 6),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, []types.DateString{"2027-01-01", "2027-01-02", "2027-01-05"}, resp.UnavailableDates)
	assert.Equal(t, "new year blackout", resp.Reasons["2027-01-01"])
	assert.Equal(t, domain.ReasonAlreadyBooked, resp.Reasons["2027-01-05"])
	assert.Empty(t, resp.StayViolation)
}

func TestExecute_FullyAvailable(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, activeRoom(), &fakeRulesService{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day(2027, time.March, 1),
		CheckOut: day(2027, time.March, 5),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.UnavailableDates)
	assert.Equal(t, 4, resp.Nights)
}

func TestExecute_StayViolation(t *testing.T) {
	rules := &fakeRulesService{restrictions: []domain.Restriction{
		{
			ID:           1,
			Dates:        domain.DateRange{Start: day(2027, time.July, 1), End: day(2027, time.August, 1)},
			AllowBooking: true,
			MinStay:      7,
			Source:       domain.SourceBlackout,
		},
	}}
	uc := NewUseCase(&fakeBookingRepo{}, activeRoom(), rules, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day(2027, time.July, 10),
		CheckOut: day(2027, time.July, 13),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Empty(t, resp.UnavailableDates)
	assert.Equal(t, "minimum stay is 7 nights, requested 3", resp.StayViolation)
}

func TestExecute_RoomErrors(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, activeRoom(), &fakeRulesService{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   500,
		CheckIn:  day(2027, time.March, 1),
		CheckOut: day(2027, time.March, 5),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day(2027, time.March, 5),
		CheckOut: day(2027, time.March, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
