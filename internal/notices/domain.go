package notices

import "time"

// Notice is a public announcement shown while it is active.
type Notice struct {
	ID        int64     `json:"noticeId"`
	Summary   string    `json:"summary"`
	Details   string    `json:"details"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}
