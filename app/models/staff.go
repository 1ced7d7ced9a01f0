package models

// Staff represents an employee who can be assigned to maintenance requests.
type Staff struct {
	ID      int64       `json:"staff_id"`
	Name    string      `json:"name"`
	Contact string      `json:"contact"`
	Role    string      `json:"role"`
	Status  StaffStatus `json:"status"`
}
