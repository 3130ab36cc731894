package korail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

const (
	defaultBaseURL = "https://smart.letskorail.com/classes"

	endpointLogin           = "/com.korail.mobile.login.Login"
	endpointSearch          = "/com.korail.mobile.seatMovie.ScheduleView"
	endpointReserve         = "/com.korail.mobile.certification.TicketReservation"
	endpointReservationView = "/com.korail.mobile.reservation.ReservationView"

	// constants the provider's mobile API expects on every call
	deviceType = "AD"
	appVersion = "190617001"
	appKey     = "korail1234567890"
)

// Client talks to the Korail mobile JSON API. It keeps a cookie-backed
// session and logs in lazily on the first call that needs one.
type Client struct {
	username   string
	password   string
	baseURL    string
	httpClient *http.Client

	mu       sync.Mutex
	loggedIn bool
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the provider endpoint, used by tests
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new booking-provider client
func NewClient(username, password string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		username:   username,
		password:   password,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Jar: jar},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiResult is the envelope every provider response carries
type apiResult struct {
	Result  string `json:"strResult"`
	MsgCode string `json:"h_msg_cd"`
	MsgText string `json:"h_msg_txt"`
}

func (r apiResult) err() error {
	if r.Result != "FAIL" {
		return nil
	}
	if noResultCodes[r.MsgCode] {
		return ErrNoResults
	}
	if r.MsgCode == needLoginCode {
		return ErrNeedLogin
	}
	return &APIError{Code: r.MsgCode, Msg: r.MsgText}
}

type loginResponse struct {
	apiResult
	MemberKey string `json:"Key"`
}

type searchResponse struct {
	apiResult
	TrainInfos struct {
		TrainInfo []Train `json:"trn_info"`
	} `json:"trn_infos"`
}

type reserveResponse struct {
	apiResult
	PnrNo string `json:"h_pnr_no"`
}

type reservationViewResponse struct {
	apiResult
	JourneyInfos struct {
		JourneyInfo []journeyInfo `json:"jrny_info"`
	} `json:"jrny_infos"`
}

type journeyInfo struct {
	PnrNo        string `json:"h_pnr_no"`
	TrainNo      string `json:"h_trn_no"`
	SeatNo       string `json:"h_seat_no"`
	CarNo        string `json:"h_srcar_no"`
	DepName      string `json:"h_dpt_rs_stn_nm"`
	ArrName      string `json:"h_arv_rs_stn_nm"`
	DepDate      string `json:"h_dpt_dt"`
	DepTime      string `json:"h_dpt_tm"`
	ArrTime      string `json:"h_arv_tm"`
	BuyLimitDate string `json:"h_ntisu_lmt_dt"`
	BuyLimitTime string `json:"h_ntisu_lmt_tm"`
}

// Login authenticates against the provider and establishes a session
func (c *Client) Login(ctx context.Context) error {
	params := url.Values{}
	params.Set("txtInputFlg", "2") // membership-number login
	params.Set("txtMemberNo", c.username)
	params.Set("txtPwd", c.password)

	var resp loginResponse
	if err := c.do(ctx, endpointLogin, params, &resp); err != nil {
		return err
	}
	if err := resp.err(); err != nil {
		return fmt.Errorf("korail login: %w", err)
	}

	c.mu.Lock()
	c.loggedIn = true
	c.mu.Unlock()
	return nil
}

// ensureLogin logs in once per client lifetime unless the session was dropped
func (c *Client) ensureLogin(ctx context.Context) error {
	c.mu.Lock()
	loggedIn := c.loggedIn
	c.mu.Unlock()
	if loggedIn {
		return nil
	}
	return c.Login(ctx)
}

// SearchTrain searches one-way trains for the given route, date and time.
// It returns ErrNoResults when the provider reports nothing bookable.
func (c *Client) SearchTrain(ctx context.Context, q SearchQuery) ([]Train, error) {
	if err := c.ensureLogin(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("radJobId", "1")
	params.Set("txtMenuId", "11")
	params.Set("selGoTrain", string(q.TrainType))
	params.Set("txtGoStart", q.Dep)
	params.Set("txtGoEnd", q.Arr)
	params.Set("txtGoAbrdDt", q.Date)
	params.Set("txtGoHour", q.Time)
	params.Set("txtPsgFlg_1", strconv.Itoa(q.Passengers)) // adults
	params.Set("txtPsgFlg_2", "0")                        // children
	params.Set("txtPsgFlg_3", "0")                        // seniors
	params.Set("txtSeatAttCd_2", "000")
	params.Set("txtSeatAttCd_3", "000")
	params.Set("txtSeatAttCd_4", "015")
	params.Set("txtTrnGpCd", string(q.TrainType))

	var resp searchResponse
	if err := c.do(ctx, endpointSearch, params, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}

	trains := resp.TrainInfos.TrainInfo
	if !q.IncludeNoSeats {
		bookable := trains[:0]
		for _, t := range trains {
			if t.HasGeneralSeat() || t.HasSpecialSeat() {
				bookable = append(bookable, t)
			}
		}
		trains = bookable
	}
	if len(trains) == 0 {
		return nil, ErrNoResults
	}
	return trains, nil
}

// Reserve commits a seat against a search candidate. This is a side-effecting,
// non-retryable operation: once issued, the ticket may already be purchased.
func (c *Client) Reserve(ctx context.Context, train Train, passengers int, opt ReserveOption) (*Ticket, error) {
	if err := c.ensureLogin(ctx); err != nil {
		return nil, err
	}

	seatClass, err := seatClassFor(train, opt)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("txtJobId", "1101") // personal reservation
	params.Set("txtGdNo", "")
	params.Set("txtJrnyCnt", "1")
	params.Set("txtJrnySqno1", "001")
	params.Set("txtJrnyTpCd1", "11")
	params.Set("txtDptRsStnCd1", train.DepCode)
	params.Set("txtDptDt1", train.DepDate)
	params.Set("txtDptTm1", train.DepTime)
	params.Set("txtArvRsStnCd1", train.ArrCode)
	params.Set("txtTrnNo1", train.TrainNo)
	params.Set("txtRunDt1", train.RunDate)
	params.Set("txtTrnClsfCd1", train.TrainType)
	params.Set("txtTrnGpCd1", train.TrainGroup)
	params.Set("txtPsrmClCd1", seatClass)
	params.Set("txtSeatAttCd1", "000")
	params.Set("txtSeatAttCd2", "000")
	params.Set("txtSeatAttCd3", "000")
	params.Set("txtSeatAttCd4", "015")
	params.Set("txtSeatAttCd5", "000")
	params.Set("txtStndFlg", "N")
	params.Set("txtTotPsgCnt", strconv.Itoa(passengers))
	params.Set("txtPsgTpCd1", "1") // adult fare
	params.Set("txtDiscKndCd1", "000")
	params.Set("txtCompaCnt1", strconv.Itoa(passengers))

	var resp reserveResponse
	if err := c.do(ctx, endpointReserve, params, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}

	return c.lookupReservation(ctx, resp.PnrNo)
}

// lookupReservation fetches seat details for a freshly committed reservation
func (c *Client) lookupReservation(ctx context.Context, pnrNo string) (*Ticket, error) {
	var resp reservationViewResponse
	if err := c.do(ctx, endpointReservationView, url.Values{}, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}

	for _, j := range resp.JourneyInfos.JourneyInfo {
		if j.PnrNo != pnrNo {
			continue
		}
		return &Ticket{
			ReservationNo: j.PnrNo,
			TrainNo:       j.TrainNo,
			SeatNo:        j.SeatNo,
			CarNo:         j.CarNo,
			DepName:       j.DepName,
			ArrName:       j.ArrName,
			DepDate:       j.DepDate,
			DepTime:       j.DepTime,
			ArrTime:       j.ArrTime,
			BuyLimitDate:  j.BuyLimitDate,
			BuyLimitTime:  j.BuyLimitTime,
		}, nil
	}
	return nil, fmt.Errorf("korail: reservation %s committed but not found in reservation list", pnrNo)
}

// seatClassFor resolves a reserve option against the candidate's availability
func seatClassFor(train Train, opt ReserveOption) (string, error) {
	const (
		generalClass = "1"
		specialClass = "2"
	)

	switch opt {
	case GeneralOnly:
		if !train.HasGeneralSeat() {
			return "", fmt.Errorf("korail: train %s has no general seat available", train.TrainNo)
		}
		return generalClass, nil
	case SpecialOnly:
		if !train.HasSpecialSeat() {
			return "", fmt.Errorf("korail: train %s has no special seat available", train.TrainNo)
		}
		return specialClass, nil
	case SpecialFirst:
		if train.HasSpecialSeat() {
			return specialClass, nil
		}
		if train.HasGeneralSeat() {
			return generalClass, nil
		}
	case GeneralFirst:
		fallthrough
	default:
		if train.HasGeneralSeat() {
			return generalClass, nil
		}
		if train.HasSpecialSeat() {
			return specialClass, nil
		}
	}
	return "", fmt.Errorf("korail: train %s has no seat available", train.TrainNo)
}

// do posts a form-encoded request with the common device parameters and
// decodes the JSON response
func (c *Client) do(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("Device", deviceType)
	params.Set("Version", appVersion)
	params.Set("Key", appKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return fmt.Errorf("korail: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("korail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("korail: unexpected status %d from %s", resp.StatusCode, endpoint)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("korail: decode response: %w", err)
	}
	return nil
}
