package calendar

const dateLayout = "2006-01-02"

type CreateHolidayRequest struct {
	Date string `json:"date" binding:"required"`
	Name string `json:"name" binding:"required,max=150"`
}

type HolidayResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Name    string `json:"name"`
	Weekday string `json:"weekday"`
}

type WorkingDaysResponse struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TotalDays   int    `json:"total_days"`
	WorkingDays int    `json:"working_days"`
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:      h.ID.String(),
		Date:    h.Date.Format(dateLayout),
		Name:    h.Name,
		Weekday: h.Date.Weekday().String(),
	}
}

func mapToListResponse(items []Holiday) []HolidayResponse {
	resp := make([]HolidayResponse, 0, len(items))
	for _, h := range items {
		resp = append(resp, mapToResponse(h))
	}
	return resp
}
