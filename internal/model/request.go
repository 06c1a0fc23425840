package model

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Age      *int   `json:"age,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateReminderRequest struct {
	Title     string `json:"title"`
	Time      string `json:"time"`
	Recurring bool   `json:"recurring"`
}

type CreateContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type AppendChatRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
