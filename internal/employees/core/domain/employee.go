package domain

import "time"

type Employee struct {
	ID         string
	EmployeeNo string
	FirstName  string
	LastName   string
	Department string
	OwnerID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName, tablo ve raporlarda gösterilen ad.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
