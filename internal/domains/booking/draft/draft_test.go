package draft_test

import (
	"testing"
	"time"

	"busbooking/infras/busapi"
	busModel "busbooking/internal/domains/bus/model"
	"busbooking/internal/domains/booking/draft"
	"busbooking/internal/domains/booking/model"
	seatModel "busbooking/internal/domains/seat/model"
	"busbooking/internal/domains/seat/seatmap"
	"busbooking/shared/failure"
	"busbooking/shared/money"
	"busbooking/shared/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sess = session.New(session.Identity{UserID: 7, Name: "Asha", Email: "asha@example.com", Role: session.RoleUser})
	bus  = busModel.Bus{ID: 3, Name: "Volvo AC", Route: "Pune-Mumbai", Price: money.FromMajor(300)}
)

func seats() []seatModel.Seat {
	return []seatModel.Seat{
		{ID: 1, SeatNumber: "R01", Type: seatModel.TypeRegular, Status: seatModel.StatusAvailable, BusID: 3},
		{ID: 2, SeatNumber: "R02", Type: seatModel.TypeRegular, Status: seatModel.StatusAvailable, BusID: 3},
		{ID: 3, SeatNumber: "R03", Type: seatModel.TypeRegular, Status: seatModel.StatusAvailable, BusID: 3},
		{ID: 4, SeatNumber: "E04", Type: seatModel.TypeElderly, Status: seatModel.StatusAvailable, BusID: 3},
		{ID: 5, SeatNumber: "R05", Type: seatModel.TypeRegular, Status: seatModel.StatusBooked, BusID: 3},
	}
}

func newDraft() *draft.Draft {
	return draft.New("d-1", sess, bus, seats(), seatModel.Counts{Regular: 4, Elderly: 1, Total: 5}, "2026-11-12T08:00:00", time.Now())
}

func toggle(t *testing.T, d *draft.Draft, seatNumber string, acknowledged bool) seatmap.Outcome {
	t.Helper()

	m, err := d.SeatMap(4)
	require.NoError(t, err)

	outcome, err := d.Toggle(m, seatNumber, acknowledged)
	require.NoError(t, err)

	return outcome
}

func TestDraft_AmountFollowsSelection(t *testing.T) {
	d := newDraft()
	assert.Zero(t, d.Amount)

	steps := []struct {
		seat  string
		count int
	}{
		{seat: "R01", count: 1},
		{seat: "R02", count: 2},
		{seat: "R03", count: 3},
		{seat: "R02", count: 2},
		{seat: "R05", count: 2},
		{seat: "R01", count: 1},
	}

	for _, step := range steps {
		toggle(t, d, step.seat, false)

		assert.Len(t, d.SeatNumbers, step.count, step.seat)
		assert.Equal(t, bus.Price.Times(step.count), d.Amount, step.seat)
	}
}

func TestDraft_ThreeSeatsCostThreeTimesThePrice(t *testing.T) {
	d := newDraft()

	for _, number := range []string{"R01", "R02", "R03"} {
		toggle(t, d, number, false)
	}

	assert.Equal(t, []string{"R01", "R02", "R03"}, d.SeatNumbers)
	assert.Equal(t, money.FromMajor(900), d.Amount)
}

func TestDraft_PrioritySeatNeedsAcknowledgement(t *testing.T) {
	d := newDraft()

	outcome := toggle(t, d, "E04", false)
	assert.Equal(t, seatmap.OutcomeConfirmationRequired, outcome.Kind)
	assert.Empty(t, d.SeatNumbers)
	assert.Zero(t, d.Amount)

	outcome = toggle(t, d, "E04", true)
	assert.Equal(t, seatmap.OutcomeToggled, outcome.Kind)
	assert.Equal(t, []string{"E04"}, d.SeatNumbers)
	assert.Equal(t, bus.Price, d.Amount)

	outcome = toggle(t, d, "E04", false)
	assert.Equal(t, seatmap.OutcomeConfirmationRequired, outcome.Kind)
	assert.Equal(t, []string{"E04"}, d.SeatNumbers)

	toggle(t, d, "E04", true)
	assert.Empty(t, d.SeatNumbers)
	assert.Zero(t, d.Amount)
}

func TestDraft_Checkout(t *testing.T) {
	d := newDraft()

	err := d.Checkout()
	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
	assert.EqualError(t, err, draft.MessageNoSeats)

	toggle(t, d, "R02", false)
	toggle(t, d, "R01", false)

	require.NoError(t, d.Checkout())
	assert.Equal(t, []string{"R01"}, d.AdditionalSeats())
}

func TestDraft_Plan(t *testing.T) {
	complete := model.Passenger{SeatNumber: "R02", Name: "Ravi", Age: 34, PhoneNumber: "9800000000", Address: "Pune"}

	tests := []struct {
		name       string
		passengers []model.Passenger
		wantErr    bool
	}{
		{name: "complete", passengers: []model.Passenger{complete}},
		{name: "missing passenger", passengers: nil, wantErr: true},
		{name: "missing phone", passengers: []model.Passenger{{SeatNumber: "R02", Name: "Ravi", Age: 34, Address: "Pune"}}, wantErr: true},
		{name: "zero age", passengers: []model.Passenger{{SeatNumber: "R02", Name: "Ravi", PhoneNumber: "98", Address: "Pune"}}, wantErr: true},
		{name: "blank name", passengers: []model.Passenger{{SeatNumber: "R02", Name: "  ", Age: 3, PhoneNumber: "98", Address: "Pune"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDraft()
			toggle(t, d, "R01", false)
			toggle(t, d, "R02", false)

			requests, err := d.Plan(sess, tt.passengers)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.IsValidation(err))
				assert.EqualError(t, err, draft.MessageIncompletePassenger)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []busapi.BookingRequest{
				{
					UserID: 7, BusID: 3, BookingDate: "2026-11-12T08:00:00", SeatNumber: "R01",
					Amount: money.FromMajor(300), Status: "CONFIRMED",
					User: &busapi.Passenger{Name: "Asha"}, Bus: &busapi.BusSummary{Name: "Volvo AC", Route: "Pune-Mumbai"},
				},
				{
					UserID: 7, BusID: 3, BookingDate: "2026-11-12T08:00:00", SeatNumber: "R02",
					Amount: money.FromMajor(300), Status: "CONFIRMED",
					User: &busapi.Passenger{Name: "Ravi"}, Bus: &busapi.BusSummary{Name: "Volvo AC", Route: "Pune-Mumbai"},
				},
			}, requests)
		})
	}
}

func TestDraft_PlanSingleSeatNeedsNoPassengers(t *testing.T) {
	d := newDraft()
	toggle(t, d, "R03", false)

	requests, err := d.Plan(session.New(session.Identity{UserID: 7, Email: "asha@example.com"}), nil)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "asha@example.com", requests[0].User.Name)
}

func TestDraft_Release(t *testing.T) {
	d := newDraft()

	for _, number := range []string{"R01", "R02", "R03"} {
		toggle(t, d, number, false)
	}

	d.Release("R01")

	assert.Equal(t, []string{"R02", "R03"}, d.SeatNumbers)
	assert.Equal(t, money.FromMajor(600), d.Amount)
}
