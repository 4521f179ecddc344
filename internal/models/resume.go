package models

// ResumeProfile is the content of a throwaway resume attached to an application.
type ResumeProfile struct {
	FullName  string   `json:"full_name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	JobTitle  string   `json:"job_title"`
	Company   string   `json:"company"`
	Years     int      `json:"years"`
	Field     string   `json:"field"`
	Skills    []string `json:"skills"`
	Education string   `json:"education"`
}
