package reservation

import (
	"context"
	"errors"
	"fmt"

	"railbook/internal/korail"
	"railbook/internal/notifications"
	"railbook/internal/shared/config"
	"railbook/pkg/logger"
)

// BookingClient is the narrow capability set the handler needs from the
// booking provider, so a test double can substitute for the real client
type BookingClient interface {
	SearchTrain(ctx context.Context, q korail.SearchQuery) ([]korail.Train, error)
	Reserve(ctx context.Context, train korail.Train, passengers int, opt korail.ReserveOption) (*korail.Ticket, error)
}

// Service interface defines the contract for reservation business logic
type Service interface {
	Reserve(ctx context.Context, req ReserveRequest) (*ReservedSeat, error)
}

// service implements the Service interface
type service struct {
	cfg      *config.Config
	booking  BookingClient
	notifier notifications.Sender
	logger   *logger.Logger
}

// NewService creates a new reservation service instance
func NewService(cfg *config.Config, booking BookingClient, notifier notifications.Sender, l *logger.Logger) Service {
	return &service{
		cfg:      cfg,
		booking:  booking,
		notifier: notifier,
		logger:   l,
	}
}

// Reserve searches bookable trains for the requested route and commits a
// general seat on the first candidate. The confirmation SMS is best-effort:
// the reservation is already purchased by the time it is sent, so a delivery
// failure never fails the request.
//
// No retries anywhere in this path. A reserve call is at-most-once by
// design: retrying blindly risks double-booking, and two identical requests
// deliberately produce two distinct reservations.
func (s *service) Reserve(ctx context.Context, req ReserveRequest) (*ReservedSeat, error) {
	if req.Passengers < 1 {
		return nil, ErrInvalidPassengerCount
	}
	if !s.cfg.HasKorailCredentials() {
		return nil, &ConfigError{Missing: "KORAIL_USERNAME / KORAIL_PASSWORD"}
	}
	if !s.cfg.HasNotificationRecipient() {
		return nil, &ConfigError{Missing: "NOTIFICATION_PHONE"}
	}

	s.logger.LogReservationAttempt(ctx, req.Dep, req.Arr, req.Date, req.Passengers)

	searchCtx, cancelSearch := context.WithTimeout(ctx, s.cfg.Korail.SearchTimeout)
	defer cancelSearch()

	trains, err := s.booking.SearchTrain(searchCtx, korail.SearchQuery{
		Dep:            req.Dep,
		Arr:            req.Arr,
		Date:           req.Date,
		Time:           req.Time,
		TrainType:      korail.TrainKTX,
		Passengers:     req.Passengers,
		IncludeNoSeats: false,
	})
	if errors.Is(err, korail.ErrNoResults) {
		return nil, ErrNoTrains
	}
	if err != nil {
		return nil, fmt.Errorf("train search failed: %w", err)
	}
	if len(trains) == 0 {
		return nil, ErrNoTrains
	}

	reserveCtx, cancelReserve := context.WithTimeout(ctx, s.cfg.Korail.ReserveTimeout)
	defer cancelReserve()

	ticket, err := s.booking.Reserve(reserveCtx, trains[0], req.Passengers, korail.GeneralOnly)
	if err != nil {
		return nil, fmt.Errorf("reservation failed: %w", err)
	}

	seat := &ReservedSeat{
		TrainNo: ticket.TrainNo,
		SeatNo:  ticket.SeatNo,
		CarNo:   ticket.CarNo,
		DepTime: ticket.DepTime,
		ArrTime: ticket.ArrTime,
	}
	s.logger.LogReservationConfirmed(ctx, seat.TrainNo, seat.SeatNo, seat.DepTime)

	outcome := s.notifier.Send(ctx, s.cfg.Notification.Phone, confirmationText(req.Dep, req.Arr, seat))
	if !outcome.Success {
		s.logger.LogNotificationFailed(ctx, s.cfg.Notification.Phone, outcome.Detail)
	}

	return seat, nil
}

// confirmationText formats the SMS sent after a committed reservation
func confirmationText(dep, arr string, seat *ReservedSeat) string {
	seatNo := seat.SeatNo
	if seatNo == "" {
		seatNo = "입석"
	}
	return fmt.Sprintf("[코레일 예매 완료]\n%s → %s\n열차 %s, 좌석 %s, %s 출발",
		dep, arr, seat.TrainNo, seatNo, seat.DepTime)
}
