package models

// Education tiers, highest first.
const (
	EducationPhD        = "PhD"
	EducationMasters    = "Master's"
	EducationBachelors  = "Bachelor's"
	EducationDiploma    = "Diploma"
	EducationHighSchool = "High School"
	EducationOther      = "Other"
)

// CoverLetterReport is the authenticity analysis of a cover letter.
// AIProbability is -1 when the analysis failed.
type CoverLetterReport struct {
	Analysis       string   `json:"analysis"`
	Issues         []string `json:"issues"`
	AIProbability  int      `json:"ai_probability"`
	Recommendation string   `json:"recommendation"`
}

// EvaluationResult is the closed output of one resume evaluation. Every key is
// always serialized; slices are never nil.
type EvaluationResult struct {
	Score              int               `json:"score"`
	Summary            string            `json:"summary"`
	Strengths          string            `json:"strengths"`
	Weaknesses         string            `json:"weaknesses"`
	ExperienceYears    float64           `json:"experience_years"`
	EducationLevel     string            `json:"education_level"`
	SkillsMatchedPct   float64           `json:"skills_matched_pct"`
	ResumeQualityScore int               `json:"resume_quality_score"`
	Certifications     string            `json:"certifications"`
	TechnicalSkills    []string          `json:"technical_skills"`
	SoftSkills         []string          `json:"soft_skills"`
	PortfolioURL       string            `json:"portfolio_url"`
	GithubURL          string            `json:"github_url"`
	LinkedinURL        string            `json:"linkedin_url"`
	CoverLetterReport  CoverLetterReport `json:"cover_letter_report"`
}

// EvaluateRequest is the body of a synchronous evaluation.
type EvaluateRequest struct {
	ResumeFields   ResumeFields `json:"resume_fields"`
	JobDescription string       `json:"job_description"`
	CoverLetter    string       `json:"cover_letter"`
}
