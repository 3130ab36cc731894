package reservation

// ReserveRequest is the POST /reserve body
type ReserveRequest struct {
	Dep        string `json:"dep" binding:"required" example:"서울"`
	Arr        string `json:"arr" binding:"required" example:"부산"`
	Date       string `json:"date" binding:"required,len=8,numeric" example:"20250520"`
	Time       string `json:"time" binding:"required,len=6,numeric" example:"090000"`
	Passengers int    `json:"passengers" binding:"required,min=1" example:"1"`
}
