package apiclient

// Wire types mirror the backend's JSON shapes.

type Patient struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	History   string `json:"history"`
	Allergies string `json:"allergies"`
}

type PatientInput struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	History   string `json:"history,omitempty"`
	Allergies string `json:"allergies,omitempty"`
}

type Doctor struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
}

type Service struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type Appointment struct {
	ID          uint   `json:"id"`
	Patient     uint   `json:"patient"`
	PatientName string `json:"patient_name"`
	Doctor      uint   `json:"doctor"`
	DoctorName  string `json:"doctor_name"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

type AppointmentInput struct {
	Patient uint   `json:"patient"`
	Doctor  uint   `json:"doctor"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes,omitempty"`
}

type AppointmentPatch struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

type AppointmentFilter struct {
	Date   string
	Doctor uint
	Status string
}

type Visit struct {
	ID            uint   `json:"id"`
	Patient       uint   `json:"patient"`
	Complaint     string `json:"complaint"`
	Findings      string `json:"findings"`
	Diagnosis     string `json:"diagnosis"`
	Prescriptions string `json:"prescriptions"`
	Vitals        string `json:"vitals"`
	Labs          string `json:"labs"`
	Procedures    string `json:"procedures"`
	FollowUpDate  string `json:"follow_up_date"`
	PaymentStatus string `json:"payment_status"`
}

type LoginResponse struct {
	ID    uint   `json:"id"`
	Role  string `json:"role"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

type AnalyticsReport struct {
	Since             string  `json:"since"`
	TotalAppointments int64   `json:"total_appointments"`
	Completed         int64   `json:"completed"`
	Cancelled         int64   `json:"cancelled"`
	Revenue           float64 `json:"revenue"`
	NewPatients       int64   `json:"new_patients"`
}

type AppointmentsByDay struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type AppointmentsReport struct {
	Since    string              `json:"since"`
	ByDay    []AppointmentsByDay `json:"by_day"`
	ByStatus map[string]int64    `json:"by_status"`
}

type InventoryReportItem struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
	LowStock     bool   `json:"low_stock"`
}

type InventoryReport struct {
	Items    []InventoryReportItem `json:"items"`
	LowStock int                   `json:"low_stock"`
}

type PatientsReport struct {
	Total       int64            `json:"total"`
	NewPatients int64            `json:"new_patients"`
	ByGender    map[string]int64 `json:"by_gender"`
	ByAge       map[string]int64 `json:"by_age"`
}
