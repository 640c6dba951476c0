package entity

import "github.com/Asian-Restaurant/backend/pkg/docstore"

// User lives in the "users" collection, keyed by email. At most one user
// per email: the email is the document key.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"-"` // bcrypt hash, or a legacy SHA-256 digest
}

func (u *User) Doc() docstore.Document {
	return docstore.Document{
		"name":     u.Name,
		"email":    u.Email,
		"phone":    u.Phone,
		"password": u.Password,
	}
}

func UserFromDoc(doc docstore.Document) *User {
	return &User{
		Name:     str(doc["name"]),
		Email:    str(doc["email"]),
		Phone:    str(doc["phone"]),
		Password: str(doc["password"]),
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
