package forms

import (
	"encoding/json"
	"regexp"
	"testing"
)

func validBuy() BuyForm {
	return BuyForm{
		DressID:      "DR-001",
		CustomerName: "Jane Doe",
		Email:        "jane@x.com",
		Phone:        "+20 100 000 0000",
		Address:      "1 Nile St",
	}
}

func validSell() SellForm {
	return SellForm{
		Title: "Silk gown", Description: "Worn once", Size: "M", Condition: "like-new",
		Price: "1500", ContactName: "Mona", Email: "mona@example.com", Phone: "(020) 123-4567",
		Photos: []string{"data:image/png;base64,AAAA"},
	}
}

func validRent() RentForm {
	return RentForm{
		Preferences: "red, long", StartDate: "2024-05-10", EndDate: "2024-05-12",
		Size: "S", Occasion: "wedding", ContactName: "Sara", Email: "sara@example.com", Phone: "0100 000 0000",
	}
}

func validRentOut() RentOutForm {
	return RentOutForm{
		Title: "Emerald dress", Description: "Fits S/M", Size: "S", Price: "300",
		StartDate: "2024-06-01", EndDate: "2024-06-30", Condition: "good",
		ContactName: "Laila", Email: "laila@example.com", Phone: "+201000000000",
		Photos: []string{"data:image/jpeg;base64,BBBB"},
	}
}

func validDressRequest() DressRequestForm {
	return DressRequestForm{
		DressName: "Blue satin", CustomerName: "Huda", Email: "huda@example.com",
		Phone: "010-000-0000", EventDate: "2024-09-01",
	}
}

func validContact() ContactForm {
	return ContactForm{Name: "Omar", Email: "omar@example.com", Subject: "Hi", Message: "Question"}
}

func validDress() DressForm {
	return DressForm{Name: "Gown", Price: "2500", Image: "https://img/x.jpg", Description: "Nice"}
}

// blanked 把 field 置空后重新解码成同类型表单
func blanked[F Form](t *testing.T, f F, field string) F {
	t.Helper()
	b, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if field == "photos" {
		m[field] = []string{}
	} else {
		m[field] = "   "
	}
	b, _ = json.Marshal(m)
	var out F
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	return out
}

func checkTotality[F Form](t *testing.T, name string, valid F) {
	t.Helper()
	if errs := Validate(valid); !errs.Valid() {
		t.Errorf("%s: valid form produced errors %v", name, errs)
	}
	for _, r := range valid.Rules() {
		if r.Kind != KindRequired && r.Kind != KindMinCount {
			continue
		}
		errs := Validate(blanked(t, valid, r.Field))
		if errs.Valid() {
			t.Errorf("%s: missing %s validated clean", name, r.Field)
			continue
		}
		if errs[r.Field] != r.Message {
			t.Errorf("%s: missing %s: error = %q, want %q", name, r.Field, errs[r.Field], r.Message)
		}
	}
}

func TestValidate_Totality(t *testing.T) {
	checkTotality(t, "buy", validBuy())
	checkTotality(t, "sell", validSell())
	checkTotality(t, "rent", validRent())
	checkTotality(t, "rent-out", validRentOut())
	checkTotality(t, "dress-request", validDressRequest())
	checkTotality(t, "contact", validContact())
	checkTotality(t, "dress", validDress())
}

func TestBuyScenario(t *testing.T) {
	f := validBuy()
	if errs := Validate(f); len(errs) != 0 {
		t.Fatalf("Validate = %v, want {}", errs)
	}
	rec := f.Record()
	if !regexp.MustCompile(`^buy-\d+-[0-9a-z]{9}$`).MatchString(rec.ID) {
		t.Errorf("ID = %q, want buy- prefix", rec.ID)
	}
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`).MatchString(rec.Timestamp) {
		t.Errorf("Timestamp = %q, want ISO-8601", rec.Timestamp)
	}
	if rec.DressID != "DR-001" || rec.CustomerName != "Jane Doe" || rec.Address != "1 Nile St" {
		t.Errorf("record = %+v", rec)
	}
}

func TestRentScenario_EndBeforeStart(t *testing.T) {
	f := validRent()
	f.StartDate, f.EndDate = "2024-05-10", "2024-05-09"
	errs := Validate(f)
	if got := errs["endDate"]; got != "End date must be after start date" {
		t.Errorf("endDate error = %q", got)
	}
	if len(errs) != 1 {
		t.Errorf("errors = %v, want only endDate", errs)
	}

	f.EndDate = "2024-05-10"
	if got := Validate(f)["endDate"]; got != "End date must be after start date" {
		t.Errorf("same-day endDate error = %q", got)
	}
}

func TestValidate_FieldShapes(t *testing.T) {
	cases := []struct {
		name  string
		form  Form
		field string
		want  string
	}{
		{"bad email", func() Form { f := validBuy(); f.Email = "jane@x"; return f }(), "email", "Please enter a valid email"},
		{"letters in phone", func() Form { f := validBuy(); f.Phone = "call me"; return f }(), "phone", "Please enter a valid phone number"},
		{"punctuation-only phone", func() Form { f := validBuy(); f.Phone = "+-()"; return f }(), "phone", "Please enter a valid phone number"},
		{"zero price", func() Form { f := validSell(); f.Price = "0"; return f }(), "price", "Please enter a valid price"},
		{"text price", func() Form { f := validSell(); f.Price = "cheap"; return f }(), "price", "Please enter a valid price"},
		{"infinite price", func() Form { f := validRentOut(); f.Price = "Inf"; return f }(), "price", "Please enter a valid price"},
		{"short phone", func() Form { f := validDressRequest(); f.Phone = "12345"; return f }(), "phone", "Phone number must be 10 digits"},
		{"contact email", func() Form { f := validContact(); f.Email = "nope"; return f }(), "email", "Invalid email format"},
		{"rent-out dates", func() Form { f := validRentOut(); f.EndDate = "2024-05-01"; return f }(), "endDate", "End date must be after start date"},
	}
	for _, tc := range cases {
		if got := Validate(tc.form)[tc.field]; got != tc.want {
			t.Errorf("%s: %s error = %q, want %q", tc.name, tc.field, got, tc.want)
		}
	}
}

func TestValidate_RequiredWinsOverShape(t *testing.T) {
	f := validBuy()
	f.Email = ""
	if got := Validate(f)["email"]; got != "Email is required" {
		t.Errorf("email error = %q, want required message", got)
	}
}

func TestErrors_Edited(t *testing.T) {
	f := validBuy()
	f.CustomerName, f.Address = "", ""
	errs := Validate(f)
	if len(errs) != 2 {
		t.Fatalf("errors = %v", errs)
	}
	f.CustomerName = "J"
	errs.Edited(f, "customerName")
	if _, ok := errs["customerName"]; ok {
		t.Error("customerName error not cleared on edit")
	}
	if _, ok := errs["address"]; !ok {
		t.Error("address error cleared by editing another field")
	}
}

func TestErrors_EditedClearsBeforeRevalidation(t *testing.T) {
	f := validBuy()
	f.Email = "bad"
	errs := Validate(f)
	f.Email = "still bad"
	errs.Edited(f, "email")
	if _, ok := errs["email"]; ok {
		t.Error("email error should stay cleared until the next submit")
	}
}

func TestErrors_EditedDatePair(t *testing.T) {
	f := validRent()
	f.EndDate = "2024-05-01"
	errs := Validate(f)
	if errs["endDate"] == "" {
		t.Fatal("expected endDate ordering error")
	}

	// 改开始日期后，这一对会重新检查
	f.StartDate = "2024-04-01"
	errs.Edited(f, "startDate")
	if _, ok := errs["endDate"]; ok {
		t.Errorf("endDate error not cleared after fixing startDate: %v", errs)
	}

	f.StartDate = "2024-06-01"
	errs.Edited(f, "startDate")
	if errs["endDate"] != "End date must be after start date" {
		t.Errorf("endDate error not raised after breaking the pair: %v", errs)
	}
}

func TestErrors_EditedEndDateStaysCleared(t *testing.T) {
	f := validRent()
	f.EndDate = "2024-05-01"
	errs := Validate(f)

	// 改结束日期本身只清错误，仍然不合法也等到下次提交再报
	f.EndDate = "2024-05-02"
	errs.Edited(f, "endDate")
	if _, ok := errs["endDate"]; ok {
		t.Errorf("endDate error came back after editing endDate: %v", errs)
	}
}

func TestDressRequest_Phone(t *testing.T) {
	f := validDressRequest()
	f.Phone = "call 0100000000 pls"
	if errs := Validate(f); errs["phone"] != "Please enter a valid phone number" {
		t.Errorf("letters in phone: errors = %v", errs)
	}

	f.Phone = "010-000-0000"
	if errs := Validate(f); !errs.Valid() {
		t.Fatalf("errors = %v", errs)
	}
	if got := f.Record().Phone; got != "0100000000" {
		t.Errorf("stored phone = %q, want digits only", got)
	}
}

func TestErrors_EditedKeepsRequiredDateError(t *testing.T) {
	f := validRent()
	f.EndDate = ""
	errs := Validate(f)
	f.StartDate = "2024-01-01"
	errs.Edited(f, "startDate")
	if errs["endDate"] != "End date is required" {
		t.Errorf("endDate = %q, want required error kept", errs["endDate"])
	}
}

func TestInput_AcceptsNumberOrString(t *testing.T) {
	var f SellForm
	if err := json.Unmarshal([]byte(`{"price": 1200}`), &f); err != nil {
		t.Fatalf("number price: %v", err)
	}
	if f.Price != "1200" || f.Price.Float() != 1200 {
		t.Errorf("Price = %q", f.Price)
	}
	if err := json.Unmarshal([]byte(`{"price": "99.5"}`), &f); err != nil {
		t.Fatalf("string price: %v", err)
	}
	if f.Price.Float() != 99.5 {
		t.Errorf("Price.Float = %v", f.Price.Float())
	}
	if err := json.Unmarshal([]byte(`{"price": true}`), &f); err == nil {
		t.Error("bool price accepted")
	}
}

func TestDressRequestRecord_Defaults(t *testing.T) {
	rec := validDressRequest().Record()
	if rec.Status != "pending" {
		t.Errorf("Status = %q, want pending", rec.Status)
	}
	if !regexp.MustCompile(`^DR-\d+$`).MatchString(rec.DressID) {
		t.Errorf("DressID = %q, want DR-<millis> placeholder", rec.DressID)
	}
	if !regexp.MustCompile(`^\d+-[0-9a-z]{9}$`).MatchString(rec.ID) {
		t.Errorf("ID = %q", rec.ID)
	}
}
