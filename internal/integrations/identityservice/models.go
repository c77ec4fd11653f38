package identityservice

// KYC verification statuses as reported by IdentityService
const (
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
)

// User профиль пользователя из IdentityService
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	KYCStatus string `json:"kycStatus"`
}

// IsKYCApproved возвращает true, если пользователь прошёл верификацию
// и может совершать бронирования
func (u *User) IsKYCApproved() bool {
	return u.KYCStatus == KYCStatusApproved
}
