package screening

// TechnicalVocabulary lists known technical terms matched on word boundaries
// against the whole resume. The spelling here is the one reported. Terms that
// collide with ordinary words ("Go", "C", "R") are left to the structured field.
var TechnicalVocabulary = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Golang", "Rust", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "MATLAB", "Perl", "Dart", "Elixir",
	"SQL", "NoSQL", "PostgreSQL", "MySQL", "SQLite", "MongoDB", "Redis", "Cassandra",
	"Elasticsearch", "DynamoDB", "Oracle", "Snowflake", "BigQuery",
	"HTML", "CSS", "Sass", "React", "Angular", "Vue", "Svelte", "Next.js", "Node.js",
	"Express", "Django", "Flask", "FastAPI", "Spring", "Spring Boot", "Rails", "Laravel",
	".NET", "ASP.NET", "GraphQL", "REST API", "gRPC", "Kafka", "RabbitMQ",
	"Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins", "Git", "GitHub Actions",
	"CI/CD", "Linux", "Bash", "AWS", "Azure", "GCP", "Google Cloud", "Heroku",
	"TensorFlow", "PyTorch", "Keras", "scikit-learn", "Pandas", "NumPy", "Spark", "Hadoop",
	"Airflow", "Tableau", "Power BI", "Excel", "Machine Learning", "Deep Learning", "NLP",
	"Computer Vision", "LLM", "Data Analysis", "Microservices",
	"Unity", "Unreal Engine", "Blender", "Maya", "ZBrush", "Substance Painter", "Houdini",
	"Photoshop", "Illustrator", "After Effects", "Premiere Pro", "Figma", "Sketch", "InDesign",
	"AutoCAD", "SolidWorks", "Jira", "Agile", "Scrum",
}

// SoftSkillVocabulary lists soft-skill phrases matched by substring against the
// lowercased resume and cover letter.
var SoftSkillVocabulary = []string{
	"communication", "teamwork", "leadership", "problem solving", "problem-solving",
	"critical thinking", "creativity", "adaptability", "time management", "collaboration",
	"attention to detail", "work ethic", "interpersonal", "conflict resolution",
	"decision making", "emotional intelligence", "negotiation", "mentoring",
	"organization", "self-motivated", "presentation", "flexibility", "empathy",
	"accountability", "initiative", "multitasking", "customer service", "public speaking",
}
