package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"railbook/internal/korail"
	"railbook/internal/notifications"
	"railbook/internal/shared/config"
	"railbook/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingClient records invocations and returns scripted results
type fakeBookingClient struct {
	searchCalls  int
	reserveCalls int

	lastQuery      korail.SearchQuery
	lastCandidate  korail.Train
	lastPassengers int
	lastOption     korail.ReserveOption

	trains     []korail.Train
	searchErr  error
	ticket     *korail.Ticket
	reserveErr error
}

func (f *fakeBookingClient) SearchTrain(_ context.Context, q korail.SearchQuery) ([]korail.Train, error) {
	f.searchCalls++
	f.lastQuery = q
	return f.trains, f.searchErr
}

func (f *fakeBookingClient) Reserve(_ context.Context, train korail.Train, passengers int, opt korail.ReserveOption) (*korail.Ticket, error) {
	f.reserveCalls++
	f.lastCandidate = train
	f.lastPassengers = passengers
	f.lastOption = opt
	return f.ticket, f.reserveErr
}

// fakeSender records every message and returns a scripted outcome
type fakeSender struct {
	calls   []sentMessage
	outcome notifications.Outcome
}

type sentMessage struct {
	recipient string
	text      string
}

func (f *fakeSender) Send(_ context.Context, recipient, text string) notifications.Outcome {
	f.calls = append(f.calls, sentMessage{recipient: recipient, text: text})
	return f.outcome
}

func testConfig() *config.Config {
	return &config.Config{
		Korail: config.KorailConfig{
			Username:       "user",
			Password:       "pass",
			SearchTimeout:  time.Second,
			ReserveTimeout: time.Second,
		},
		Notification: config.NotificationConfig{Phone: "01012345678"},
	}
}

func testRequest() ReserveRequest {
	return ReserveRequest{
		Dep:        "서울",
		Arr:        "부산",
		Date:       "20250520",
		Time:       "090000",
		Passengers: 2,
	}
}

func ktxCandidate() korail.Train {
	return korail.Train{
		TrainType:     "100",
		TrainNo:       "123",
		DepName:       "서울",
		ArrName:       "부산",
		DepDate:       "20250520",
		DepTime:       "090000",
		ArrTime:       "113000",
		GeneralSeatCd: "11",
	}
}

func TestService_Reserve(t *testing.T) {
	t.Parallel()

	makeSvc := func(cfg *config.Config, booking *fakeBookingClient, sender *fakeSender) Service {
		return NewService(cfg, booking, sender, logger.GetDefault())
	}

	t.Run("missing provider credentials fails before any external call", func(t *testing.T) {
		cfg := testConfig()
		cfg.Korail.Username = ""
		cfg.Korail.Password = ""
		booking := &fakeBookingClient{}
		sender := &fakeSender{}

		_, err := makeSvc(cfg, booking, sender).Reserve(context.Background(), testRequest())

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, 0, booking.searchCalls)
		assert.Equal(t, 0, booking.reserveCalls)
		assert.Empty(t, sender.calls)
	})

	t.Run("missing notification recipient fails before any external call", func(t *testing.T) {
		cfg := testConfig()
		cfg.Notification.Phone = ""
		booking := &fakeBookingClient{}

		_, err := makeSvc(cfg, booking, &fakeSender{}).Reserve(context.Background(), testRequest())

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, 0, booking.searchCalls)
	})

	t.Run("rejects non-positive passenger count before any external call", func(t *testing.T) {
		for _, passengers := range []int{0, -1} {
			booking := &fakeBookingClient{}
			req := testRequest()
			req.Passengers = passengers

			_, err := makeSvc(testConfig(), booking, &fakeSender{}).Reserve(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidPassengerCount)
			assert.Equal(t, 0, booking.searchCalls)
		}
	})

	t.Run("no-results signal maps to ErrNoTrains without notification", func(t *testing.T) {
		booking := &fakeBookingClient{searchErr: korail.ErrNoResults}
		sender := &fakeSender{}

		_, err := makeSvc(testConfig(), booking, sender).Reserve(context.Background(), testRequest())

		require.ErrorIs(t, err, ErrNoTrains)
		assert.Equal(t, 0, booking.reserveCalls)
		assert.Empty(t, sender.calls)
	})

	t.Run("empty candidate list maps to ErrNoTrains without notification", func(t *testing.T) {
		booking := &fakeBookingClient{trains: nil}
		sender := &fakeSender{}

		_, err := makeSvc(testConfig(), booking, sender).Reserve(context.Background(), testRequest())

		require.ErrorIs(t, err, ErrNoTrains)
		assert.Empty(t, sender.calls)
	})

	t.Run("reserves first candidate and notifies exactly once", func(t *testing.T) {
		booking := &fakeBookingClient{
			trains: []korail.Train{ktxCandidate(), {TrainNo: "777"}},
			ticket: &korail.Ticket{
				TrainNo: "123",
				SeatNo:  "5A",
				CarNo:   "8",
				DepTime: "09:00",
				ArrTime: "11:30",
			},
		}
		sender := &fakeSender{outcome: notifications.Outcome{Success: true}}

		seat, err := makeSvc(testConfig(), booking, sender).Reserve(context.Background(), testRequest())
		require.NoError(t, err)

		assert.Equal(t, &ReservedSeat{
			TrainNo: "123",
			SeatNo:  "5A",
			CarNo:   "8",
			DepTime: "09:00",
			ArrTime: "11:30",
		}, seat)

		// search is scoped to the request, KTX only, sold-out trains excluded
		assert.Equal(t, korail.TrainKTX, booking.lastQuery.TrainType)
		assert.Equal(t, "서울", booking.lastQuery.Dep)
		assert.Equal(t, "부산", booking.lastQuery.Arr)
		assert.Equal(t, 2, booking.lastQuery.Passengers)
		assert.False(t, booking.lastQuery.IncludeNoSeats)

		// first candidate wins, general seating only, adult-count manifest
		assert.Equal(t, 1, booking.reserveCalls)
		assert.Equal(t, "123", booking.lastCandidate.TrainNo)
		assert.Equal(t, 2, booking.lastPassengers)
		assert.Equal(t, korail.GeneralOnly, booking.lastOption)

		require.Len(t, sender.calls, 1)
		assert.Equal(t, "01012345678", sender.calls[0].recipient)
		assert.Contains(t, sender.calls[0].text, "123")
		assert.Contains(t, sender.calls[0].text, "5A")
	})

	t.Run("notification failure does not fail the committed reservation", func(t *testing.T) {
		booking := &fakeBookingClient{
			trains: []korail.Train{ktxCandidate()},
			ticket: &korail.Ticket{TrainNo: "123", SeatNo: "5A", CarNo: "8", DepTime: "09:00", ArrTime: "11:30"},
		}
		sender := &fakeSender{outcome: notifications.Outcome{Success: false, Detail: "gateway down"}}

		seat, err := makeSvc(testConfig(), booking, sender).Reserve(context.Background(), testRequest())

		require.NoError(t, err)
		assert.Equal(t, "123", seat.TrainNo)
		assert.Len(t, sender.calls, 1)
	})

	t.Run("seatless ticket uses the standing placeholder in the message", func(t *testing.T) {
		booking := &fakeBookingClient{
			trains: []korail.Train{ktxCandidate()},
			ticket: &korail.Ticket{TrainNo: "123", SeatNo: "", CarNo: "8", DepTime: "09:00", ArrTime: "11:30"},
		}
		sender := &fakeSender{outcome: notifications.Outcome{Success: true}}

		_, err := makeSvc(testConfig(), booking, sender).Reserve(context.Background(), testRequest())

		require.NoError(t, err)
		require.Len(t, sender.calls, 1)
		assert.Contains(t, sender.calls[0].text, "입석")
	})

	t.Run("provider failure on reserve surfaces wrapped and skips notification", func(t *testing.T) {
		providerErr := &korail.APIError{Code: "WRR800029", Msg: "좌석이 매진되었습니다"}
		booking := &fakeBookingClient{
			trains:     []korail.Train{ktxCandidate()},
			reserveErr: providerErr,
		}
		sender := &fakeSender{}

		_, err := makeSvc(testConfig(), booking, sender).Reserve(context.Background(), testRequest())

		require.Error(t, err)
		var apiErr *korail.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.NotErrorIs(t, err, ErrNoTrains)
		assert.Empty(t, sender.calls)
	})

	t.Run("identical requests produce two distinct reservations", func(t *testing.T) {
		// at-most-once per request, no dedup key: double-booking on a repeat
		// request is expected behavior, not a bug
		booking := &fakeBookingClient{
			trains: []korail.Train{ktxCandidate()},
			ticket: &korail.Ticket{TrainNo: "123", SeatNo: "5A", CarNo: "8", DepTime: "09:00", ArrTime: "11:30"},
		}
		sender := &fakeSender{outcome: notifications.Outcome{Success: true}}
		svc := makeSvc(testConfig(), booking, sender)

		_, err := svc.Reserve(context.Background(), testRequest())
		require.NoError(t, err)
		_, err = svc.Reserve(context.Background(), testRequest())
		require.NoError(t, err)

		assert.Equal(t, 2, booking.reserveCalls)
		assert.Len(t, sender.calls, 2)
	})
}

func TestConfirmationText(t *testing.T) {
	t.Parallel()

	seat := &ReservedSeat{TrainNo: "123", SeatNo: "5A", DepTime: "090000"}
	text := confirmationText("서울", "부산", seat)

	assert.Contains(t, text, "[코레일 예매 완료]")
	assert.Contains(t, text, "서울 → 부산")
	assert.Contains(t, text, "열차 123")
	assert.Contains(t, text, "좌석 5A")
	assert.Contains(t, text, "090000 출발")
}

var _ error = (*ConfigError)(nil)

func TestConfigError_Message(t *testing.T) {
	t.Parallel()

	err := &ConfigError{Missing: "NOTIFICATION_PHONE"}
	assert.True(t, errors.As(error(err), new(*ConfigError)))
	assert.Contains(t, err.Error(), "NOTIFICATION_PHONE")
}
