package models

type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ClientID    string `json:"client_id"`
}

type ApplyResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string            `json:"id"`
	JobID        string            `json:"job_id"`
	Status       string            `json:"status"`
	Result       *EvaluationResult `json:"result,omitempty"`
	ErrorMessage *string           `json:"error_message,omitempty"`
}

type CandidateResponse struct {
	ID          string           `json:"id"`
	FullName    string           `json:"full_name"`
	Email       string           `json:"email"`
	PhoneNumber string           `json:"phone_number"`
	ResumeURL   string           `json:"resume_url"`
	Result      EvaluationResult `json:"result"`
}
