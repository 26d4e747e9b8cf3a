package domain

// AdminUser — администратор витрины.
type AdminUser struct {
	ID       int64
	Username string
}
