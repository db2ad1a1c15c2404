package request_models

type GenerateItineraryRequest struct {
	From        string     `json:"from" binding:"required"`
	Destination string     `json:"destination" binding:"required"`
	Budget      FlexString `json:"budget" binding:"required"`
	Interests   FlexString `json:"interests" binding:"required"`
	Days        int        `json:"days" binding:"required,min=1"`
	People      int        `json:"people" binding:"required,min=1"`
	StartDate   string     `json:"startDate" binding:"required"`
	EndDate     string     `json:"endDate" binding:"required"`
}
