package reservation

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// ReserveResponse is the POST /reserve response for both outcomes
type ReserveResponse struct {
	Status  string `json:"status"`
	TrainNo string `json:"train_no,omitempty"`
	SeatNo  string `json:"seat_no,omitempty"`
	CarNo   string `json:"car_no,omitempty"`
	DepTime string `json:"dep_time,omitempty"`
	ArrTime string `json:"arr_time,omitempty"`
	Message string `json:"message,omitempty"`
}

func successResponse(seat *ReservedSeat) ReserveResponse {
	return ReserveResponse{
		Status:  statusSuccess,
		TrainNo: seat.TrainNo,
		SeatNo:  seat.SeatNo,
		CarNo:   seat.CarNo,
		DepTime: seat.DepTime,
		ArrTime: seat.ArrTime,
	}
}

func failResponse(message string) ReserveResponse {
	return ReserveResponse{
		Status:  statusFail,
		Message: message,
	}
}
