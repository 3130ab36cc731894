package korail

import (
	"errors"
	"fmt"
)

// TrainType is the provider's train category code
type TrainType string

const (
	// TrainKTX covers KTX and KTX-Sancheon services
	TrainKTX TrainType = "100"
	// TrainSaemaeul covers Saemaeul and ITX-Saemaeul services
	TrainSaemaeul TrainType = "101"
	// TrainMugunghwa covers Mugunghwa services
	TrainMugunghwa TrainType = "102"
	// TrainAll matches every train category
	TrainAll TrainType = "109"
)

// ReserveOption selects which seat classes a reservation may use
type ReserveOption string

const (
	GeneralFirst ReserveOption = "GeneralFirst" // general seat, fall back to special
	GeneralOnly  ReserveOption = "GeneralOnly"  // general seat only
	SpecialFirst ReserveOption = "SpecialFirst" // special seat, fall back to general
	SpecialOnly  ReserveOption = "SpecialOnly"  // special seat only
)

// seat availability code meaning "bookable" in search results
const seatAvailable = "11"

// SearchQuery describes a one-way train search
type SearchQuery struct {
	Dep            string // departure station name, e.g. 서울
	Arr            string // arrival station name, e.g. 부산
	Date           string // 8-digit calendar date, e.g. 20250520
	Time           string // 6-digit time of day, e.g. 090000
	TrainType      TrainType
	Passengers     int
	IncludeNoSeats bool // keep sold-out trains in the results
}

// Train is a schedule candidate returned by a search, before a seat is committed
type Train struct {
	TrainType      string `json:"h_trn_clsf_cd"`
	TrainGroup     string `json:"h_trn_gp_cd"`
	TrainNo        string `json:"h_trn_no"`
	RunDate        string `json:"h_run_dt"`
	DepDate        string `json:"h_dpt_dt"`
	DepTime        string `json:"h_dpt_tm"`
	DepName        string `json:"h_dpt_rs_stn_nm"`
	DepCode        string `json:"h_dpt_rs_stn_cd"`
	ArrDate        string `json:"h_arv_dt"`
	ArrTime        string `json:"h_arv_tm"`
	ArrName        string `json:"h_arv_rs_stn_nm"`
	ArrCode        string `json:"h_arv_rs_stn_cd"`
	GeneralSeatCd  string `json:"h_gen_rsv_cd"`
	SpecialSeatCd  string `json:"h_spe_rsv_cd"`
	ReserveWaitFlg string `json:"h_rsv_wait_ps_flg"`
}

// HasGeneralSeat reports whether a general-class seat is bookable
func (t Train) HasGeneralSeat() bool {
	return t.GeneralSeatCd == seatAvailable
}

// HasSpecialSeat reports whether a special-class seat is bookable
func (t Train) HasSpecialSeat() bool {
	return t.SpecialSeatCd == seatAvailable
}

// Ticket is a committed reservation
type Ticket struct {
	ReservationNo string
	TrainNo       string
	SeatNo        string // empty on standing-room tickets
	CarNo         string
	DepName       string
	ArrName       string
	DepDate       string
	DepTime       string
	ArrTime       string
	BuyLimitDate  string
	BuyLimitTime  string
}

// ErrNoResults is returned when the provider reports no trains matching a search
var ErrNoResults = errors.New("korail: no trains found")

// ErrNeedLogin is returned when the provider rejects a call for a missing session
var ErrNeedLogin = errors.New("korail: login required")

// no-results codes the provider returns instead of an empty list
var noResultCodes = map[string]bool{
	"P100":      true,
	"WRG000000": true,
	"WRD000061": true,
	"WRT300005": true,
}

const needLoginCode = "P058"

// APIError is any other FAIL result from the provider
type APIError struct {
	Code string
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("korail: %s (%s)", e.Msg, e.Code)
}
