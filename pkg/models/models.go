package models

// User is the authentication principal. Exactly one seeded admin account
// exists; users are never created through the API.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Role         string `json:"role" db:"role"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// Inspection is a site-inspection record.
type Inspection struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"user_id" db:"user_id"`
	ProjectName string `json:"project_name" db:"project_name"`
	Date        string `json:"date" db:"date"`
	Location    string `json:"location" db:"location"`
	Findings    string `json:"findings" db:"findings"`
	Status      string `json:"status" db:"status"`
	Created     int64  `json:"created" db:"created"`
}

// TripReport is a business-trip report. Expenses is an integer currency
// amount, no fractional unit.
type TripReport struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"user_id" db:"user_id"`
	Destination string `json:"destination" db:"destination"`
	DateStart   string `json:"date_start" db:"date_start"`
	DateEnd     string `json:"date_end" db:"date_end"`
	Purpose     string `json:"purpose" db:"purpose"`
	Results     string `json:"results" db:"results"`
	Expenses    int64  `json:"expenses" db:"expenses"`
	Created     int64  `json:"created" db:"created"`
}

// Estimate is a price estimate issued to a client.
type Estimate struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"user_id" db:"user_id"`
	ClientName  string `json:"client_name" db:"client_name"`
	ProjectName string `json:"project_name" db:"project_name"`
	Amount      int64  `json:"amount" db:"amount"`
	Details     string `json:"details" db:"details"`
	Status      string `json:"status" db:"status"`
	Created     int64  `json:"created" db:"created"`
}

// Minute is a meeting-minutes record. Attendees is comma-separated free
// text, not a structured list.
type Minute struct {
	ID          int64  `json:"id" db:"id"`
	UserID      int64  `json:"user_id" db:"user_id"`
	Title       string `json:"title" db:"title"`
	Date        string `json:"date" db:"date"`
	Attendees   string `json:"attendees" db:"attendees"`
	Content     string `json:"content" db:"content"`
	ActionItems string `json:"action_items" db:"action_items"`
	Created     int64  `json:"created" db:"created"`
}
