package agents

// Status is the lifecycle state of one agent in the build crew.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// ID identifies one agent in the roster.
type ID string

const (
	MarketAnalysis       ID = "marketAnalysis"
	CurriculumDesign     ID = "curriculumDesign"
	ContentCreation      ID = "contentCreation"
	LabDevelopment       ID = "labDevelopment"
	AssessmentDesign     ID = "assessmentDesign"
	MultimediaProduction ID = "multimediaProduction"
	Credentialing        ID = "credentialing"
	TutorPersona         ID = "tutorPersona"
)

// Agent is one member of the certification build crew. The crew is
// presentational: statuses narrate pipeline stages for the user, they do not
// drive execution.
type Agent struct {
	ID          ID
	Name        string
	Description string
	Status      Status
	// SubStatus is a short live activity line, only meaningful while the
	// agent is in progress.
	SubStatus string
}

// CurriculumAgents are the agents that complete together when the
// curriculum generation stage finishes.
var CurriculumAgents = []ID{
	MarketAnalysis,
	CurriculumDesign,
	ContentCreation,
	LabDevelopment,
	AssessmentDesign,
}

// Roster returns the full crew in display order, all pending.
func Roster() []Agent {
	return []Agent{
		{ID: MarketAnalysis, Name: "Market Analyst", Description: "Analyzes demand & audience.", Status: StatusPending},
		{ID: CurriculumDesign, Name: "Curriculum Architect", Description: "Designs course structure.", Status: StatusPending},
		{ID: ContentCreation, Name: "Content Creator", Description: "Writes lesson materials.", Status: StatusPending},
		{ID: LabDevelopment, Name: "Lab Developer", Description: "Builds practical exercises.", Status: StatusPending},
		{ID: AssessmentDesign, Name: "Assessment Designer", Description: "Creates quizzes & exams.", Status: StatusPending},
		{ID: MultimediaProduction, Name: "Multimedia Producer", Description: "Generates diagrams & assets.", Status: StatusPending},
		{ID: Credentialing, Name: "Credentialing Agent", Description: "Designs the final badge.", Status: StatusPending},
		{ID: TutorPersona, Name: "AI Tutor", Description: "Initializes the tutor persona.", Status: StatusPending},
	}
}
