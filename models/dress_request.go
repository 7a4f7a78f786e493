// models/dress_request.go
package models

type DressRequestStatus string

const (
	StatusPending   DressRequestStatus = "pending"
	StatusContacted DressRequestStatus = "contacted"
	StatusCompleted DressRequestStatus = "completed"
)

// Valid 只检查标签是否认识；状态之间没有流转限制
func (s DressRequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusCompleted:
		return true
	}
	return false
}

// DressRequest 由管理员跟进；除删除外只有 Status 可改
type DressRequest struct {
	ID           string             `json:"id"`
	DressID      string             `json:"dressId"`
	DressName    string             `json:"dressName"`
	CustomerName string             `json:"customerName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	EventDate    string             `json:"eventDate"`
	Preferences  string             `json:"preferences"`
	Status       DressRequestStatus `json:"status"`
	Timestamp    string             `json:"timestamp"`
}

func (r DressRequest) RecordID() string { return r.ID }

type ContactSubmission struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (s ContactSubmission) RecordID() string { return s.ID }
