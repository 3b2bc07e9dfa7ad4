package service

import (
	"time"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

// seedUsers are the two accounts every deployment ships with. They are not
// written to storage; the identity service merges them with the registered
// population on every lookup, so uniqueness checks and logins see both.
func seedUsers() []*domain.User {
	return []*domain.User{
		{
			ID:             "1",
			Username:       "john_user",
			Role:           domain.RoleCitizen,
			Email:          "john@example.com",
			FullName:       "John Doe",
			PhoneNumber:    "+91 9876543210",
			Village:        "Warangal Rural",
			DateRegistered: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "2",
			Username:       "official_kumar",
			Role:           domain.RoleOfficial,
			Email:          "kumar@gov.in",
			FullName:       "Kumar Reddy",
			PhoneNumber:    "+91 9876543211",
			District:       "Warangal",
			DateRegistered: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}
