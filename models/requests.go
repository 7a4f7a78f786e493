// models/requests.go
package models

// 买 / 卖 / 租 / 出租 四类请求，均由前台表单创建，创建后不可修改

type BuyRequest struct {
	ID           string `json:"id"`
	DressID      string `json:"dressId"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Timestamp    string `json:"timestamp"`
}

type SellRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Size        string   `json:"size"`
	Condition   string   `json:"condition"`
	Price       float64  `json:"price"`
	ContactName string   `json:"contactName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Photos      []string `json:"photos"` // data URL
	Timestamp   string   `json:"timestamp"`
}

type RentRequest struct {
	ID          string `json:"id"`
	Preferences string `json:"preferences"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"` // 必须晚于 StartDate
	Size        string `json:"size"`
	Occasion    string `json:"occasion"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Timestamp   string `json:"timestamp"`
}

// RentOutRequest 用户把自己的裙子挂出来出租
type RentOutRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Size        string   `json:"size"`
	Price       float64  `json:"price"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Condition   string   `json:"condition"`
	ContactName string   `json:"contactName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Photos      []string `json:"photos"`
	Timestamp   string   `json:"timestamp"`
}

func (r BuyRequest) RecordID() string     { return r.ID }
func (r SellRequest) RecordID() string    { return r.ID }
func (r RentRequest) RecordID() string    { return r.ID }
func (r RentOutRequest) RecordID() string { return r.ID }
