package forms

import (
	"dressa_storefront/models"
	"dressa_storefront/store"
	"strconv"
	"strings"
)

const (
	msgName         = "Name is required"
	msgEmail        = "Email is required"
	msgEmailInvalid = "Please enter a valid email"
	msgPhone        = "Phone number is required"
	msgPhoneInvalid = "Please enter a valid phone number"
	msgPrice        = "Price is required"
	msgPriceInvalid = "Please enter a valid price"
	msgStart        = "Start date is required"
	msgEnd          = "End date is required"
	msgEndOrder     = "End date must be after start date"
	msgPhotos       = "At least one photo is required"
)

func contactRules(nameField string) []Rule {
	return []Rule{
		Required(nameField, msgName),
		Required("email", msgEmail),
		Email("email", msgEmailInvalid),
		Required("phone", msgPhone),
		Phone("phone", msgPhoneInvalid),
	}
}

// ---- Buy ----

type BuyForm struct {
	DressID      string `json:"dressId"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

func (f BuyForm) Rules() []Rule {
	rules := []Rule{Required("dressId", "Please select a dress")}
	rules = append(rules, contactRules("customerName")...)
	return append(rules, Required("address", "Address is required"))
}

func (f BuyForm) Value(field string) string {
	switch field {
	case "dressId":
		return f.DressID
	case "customerName":
		return f.CustomerName
	case "email":
		return f.Email
	case "phone":
		return f.Phone
	case "address":
		return f.Address
	}
	return ""
}

func (f BuyForm) Count(string) int { return 0 }

func (f BuyForm) Record() models.BuyRequest {
	return models.BuyRequest{
		ID:           store.NewID("buy"),
		DressID:      f.DressID,
		CustomerName: f.CustomerName,
		Email:        f.Email,
		Phone:        f.Phone,
		Address:      f.Address,
		Timestamp:    store.Timestamp(),
	}
}

// ---- Sell ----

type SellForm struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Size        string   `json:"size"`
	Condition   string   `json:"condition"`
	Price       Input    `json:"price"`
	ContactName string   `json:"contactName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Photos      []string `json:"photos"`
}

func (f SellForm) Rules() []Rule {
	rules := []Rule{
		Required("title", "Title is required"),
		Required("description", "Description is required"),
		Required("size", "Size is required"),
		Required("condition", "Condition is required"),
		Required("price", msgPrice),
		PositiveNumber("price", msgPriceInvalid),
	}
	rules = append(rules, contactRules("contactName")...)
	return append(rules, MinCount("photos", 1, msgPhotos))
}

func (f SellForm) Value(field string) string {
	switch field {
	case "title":
		return f.Title
	case "description":
		return f.Description
	case "size":
		return f.Size
	case "condition":
		return f.Condition
	case "price":
		return f.Price.String()
	case "contactName":
		return f.ContactName
	case "email":
		return f.Email
	case "phone":
		return f.Phone
	}
	return ""
}

func (f SellForm) Count(field string) int {
	if field == "photos" {
		return len(f.Photos)
	}
	return 0
}

func (f SellForm) Record() models.SellRequest {
	return models.SellRequest{
		ID:          store.NewID("sell"),
		Title:       f.Title,
		Description: f.Description,
		Size:        f.Size,
		Condition:   f.Condition,
		Price:       f.Price.Float(),
		ContactName: f.ContactName,
		Email:       f.Email,
		Phone:       f.Phone,
		Photos:      append([]string(nil), f.Photos...),
		Timestamp:   store.Timestamp(),
	}
}

// ---- Rent ----

type RentForm struct {
	Preferences string `json:"preferences"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Size        string `json:"size"`
	Occasion    string `json:"occasion"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

func (f RentForm) Rules() []Rule {
	rules := []Rule{
		Required("preferences", "Preferences are required"),
		Required("startDate", msgStart),
		Required("endDate", msgEnd),
		DateAfter("endDate", "startDate", msgEndOrder),
		Required("size", "Size is required"),
		Required("occasion", "Occasion is required"),
	}
	return append(rules, contactRules("contactName")...)
}

func (f RentForm) Value(field string) string {
	switch field {
	case "preferences":
		return f.Preferences
	case "startDate":
		return f.StartDate
	case "endDate":
		return f.EndDate
	case "size":
		return f.Size
	case "occasion":
		return f.Occasion
	case "contactName":
		return f.ContactName
	case "email":
		return f.Email
	case "phone":
		return f.Phone
	}
	return ""
}

func (f RentForm) Count(string) int { return 0 }

func (f RentForm) Record() models.RentRequest {
	return models.RentRequest{
		ID:          store.NewID("rent"),
		Preferences: f.Preferences,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Size:        f.Size,
		Occasion:    f.Occasion,
		ContactName: f.ContactName,
		Email:       f.Email,
		Phone:       f.Phone,
		Timestamp:   store.Timestamp(),
	}
}

// ---- Rent out ----

type RentOutForm struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Size        string   `json:"size"`
	Price       Input    `json:"price"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Condition   string   `json:"condition"`
	ContactName string   `json:"contactName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Photos      []string `json:"photos"`
}

func (f RentOutForm) Rules() []Rule {
	rules := []Rule{
		Required("title", "Title is required"),
		Required("description", "Description is required"),
		Required("size", "Size is required"),
		Required("price", msgPrice),
		PositiveNumber("price", msgPriceInvalid),
		Required("startDate", msgStart),
		Required("endDate", msgEnd),
		DateAfter("endDate", "startDate", msgEndOrder),
		Required("condition", "Condition is required"),
	}
	rules = append(rules, contactRules("contactName")...)
	return append(rules, MinCount("photos", 1, msgPhotos))
}

func (f RentOutForm) Value(field string) string {
	switch field {
	case "title":
		return f.Title
	case "description":
		return f.Description
	case "size":
		return f.Size
	case "price":
		return f.Price.String()
	case "startDate":
		return f.StartDate
	case "endDate":
		return f.EndDate
	case "condition":
		return f.Condition
	case "contactName":
		return f.ContactName
	case "email":
		return f.Email
	case "phone":
		return f.Phone
	}
	return ""
}

func (f RentOutForm) Count(field string) int {
	if field == "photos" {
		return len(f.Photos)
	}
	return 0
}

func (f RentOutForm) Record() models.RentOutRequest {
	return models.RentOutRequest{
		ID:          store.NewID("rentout"),
		Title:       f.Title,
		Description: f.Description,
		Size:        f.Size,
		Price:       f.Price.Float(),
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Condition:   f.Condition,
		ContactName: f.ContactName,
		Email:       f.Email,
		Phone:       f.Phone,
		Photos:      append([]string(nil), f.Photos...),
		Timestamp:   store.Timestamp(),
	}
}

// ---- Dress request ----

type DressRequestForm struct {
	DressID      string `json:"dressId"`
	DressName    string `json:"dressName"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	EventDate    string `json:"eventDate"`
	Preferences  string `json:"preferences"`
}

func (f DressRequestForm) Rules() []Rule {
	return []Rule{
		Required("customerName", msgName),
		Required("email", msgEmail),
		Email("email", "Invalid email format"),
		Required("phone", msgPhone),
		Phone("phone", msgPhoneInvalid),
		Digits("phone", 10, "Phone number must be 10 digits"),
		Required("eventDate", "Event date is required"),
		Required("dressName", "Dress name/description is required"),
	}
}

func (f DressRequestForm) Value(field string) string {
	switch field {
	case "dressId":
		return f.DressID
	case "dressName":
		return f.DressName
	case "customerName":
		return f.CustomerName
	case "email":
		return f.Email
	case "phone":
		return f.Phone
	case "eventDate":
		return f.EventDate
	case "preferences":
		return f.Preferences
	}
	return ""
}

func (f DressRequestForm) Count(string) int { return 0 }

// Record 新请求一律 pending；没选裙子时用 DR-<毫秒> 占位
func (f DressRequestForm) Record() models.DressRequest {
	dressID := strings.TrimSpace(f.DressID)
	if dressID == "" {
		dressID = "DR-" + strconv.FormatInt(store.Now().UnixMilli(), 10)
	}
	return models.DressRequest{
		ID:           store.NewID(""),
		DressID:      dressID,
		DressName:    f.DressName,
		CustomerName: f.CustomerName,
		Email:        f.Email,
		Phone:        digitsOnly(f.Phone),
		EventDate:    f.EventDate,
		Preferences:  f.Preferences,
		Status:       models.StatusPending,
		Timestamp:    store.Timestamp(),
	}
}

// ---- Contact ----

type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (f ContactForm) Rules() []Rule {
	return []Rule{
		Required("name", msgName),
		Required("email", msgEmail),
		Email("email", "Invalid email format"),
		Required("subject", "Subject is required"),
		Required("message", "Message is required"),
	}
}

func (f ContactForm) Value(field string) string {
	switch field {
	case "name":
		return f.Name
	case "email":
		return f.Email
	case "subject":
		return f.Subject
	case "message":
		return f.Message
	}
	return ""
}

func (f ContactForm) Count(string) int { return 0 }

func (f ContactForm) Record() models.ContactSubmission {
	return models.ContactSubmission{
		ID:        store.NewID(""),
		Name:      f.Name,
		Email:     f.Email,
		Subject:   f.Subject,
		Message:   f.Message,
		Timestamp: store.Timestamp(),
	}
}

// ---- Admin: new dress ----

type DressForm struct {
	Name        string `json:"name"`
	Price       Input  `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (f DressForm) Rules() []Rule {
	return []Rule{
		Required("name", msgName),
		Required("price", msgPrice),
		PositiveNumber("price", msgPriceInvalid),
		Required("image", "Image is required"),
		Required("description", "Description is required"),
	}
}

func (f DressForm) Value(field string) string {
	switch field {
	case "name":
		return f.Name
	case "price":
		return f.Price.String()
	case "image":
		return f.Image
	case "description":
		return f.Description
	}
	return ""
}

func (f DressForm) Count(string) int { return 0 }

func (f DressForm) Record() models.Dress {
	return models.Dress{
		ID:          store.NewDressID(),
		Name:        f.Name,
		Price:       f.Price.Float(),
		Image:       f.Image,
		Description: f.Description,
	}
}
