// Package certification defines the domain model for a generated
// certification program: the curriculum, its modules, assessments, and the
// supporting value types shared by the generation pipelines.
package certification

// AudienceLevel describes the intended experience level of candidates.
type AudienceLevel string

const (
	LevelBeginner     AudienceLevel = "Beginner"
	LevelIntermediate AudienceLevel = "Intermediate"
	LevelExpert       AudienceLevel = "Expert"
)

// TutorPersona is the tone/style directive applied to all tutor-facing text
// for one certification.
type TutorPersona string

const (
	PersonaEncouragingCoach TutorPersona = "Encouraging Coach"
	PersonaFormalProfessor  TutorPersona = "Formal Professor"
	PersonaWittyExpert      TutorPersona = "Witty Expert"
)

// Personas lists all selectable tutor personas in display order.
func Personas() []TutorPersona {
	return []TutorPersona{PersonaEncouragingCoach, PersonaFormalProfessor, PersonaWittyExpert}
}

// Levels lists all selectable audience levels in display order.
func Levels() []AudienceLevel {
	return []AudienceLevel{LevelBeginner, LevelIntermediate, LevelExpert}
}

// BuildInput is what the user provides to start a certification build.
type BuildInput struct {
	Topic   string
	Details string
	Level   AudienceLevel
	Hours   int
	Persona TutorPersona
}

// LearningOutcome is a single outcome within a module.
type LearningOutcome struct {
	Outcome     string `json:"outcome"`
	Description string `json:"description"`
}

// LabExercise is the practical exercise attached to a module.
type LabExercise struct {
	Title       string `json:"title"`
	Task        string `json:"task"`
	Deliverable string `json:"deliverable"`
	TutorTip    string `json:"tutorTip"`
}

// Module is one unit of the certification curriculum. ModuleNumber values
// are 1-based, unique, and dense across a Certification's module list.
// DiagramImage is nil until asset enrichment attaches one; it is never
// partially set.
type Module struct {
	ModuleNumber     int               `json:"moduleNumber"`
	Title            string            `json:"title"`
	DurationHours    float64           `json:"durationHours"`
	Description      string            `json:"description"`
	LearningOutcomes []LearningOutcome `json:"learningOutcomes"`
	Lab              LabExercise       `json:"lab"`
	TutorTip         string            `json:"tutorTip"`
	DiagramImage     []byte            `json:"diagramImage,omitempty"`
}

// QuizQuestion is one multiple-choice question. CorrectAnswer equals exactly
// one entry in Options. Immutable after creation.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// CapstoneProject is the final assessment project.
type CapstoneProject struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	EvaluationCriteria []string `json:"evaluationCriteria"`
	TutorTip           string   `json:"tutorTip"`
}

// VideoConceptScene is one scene of the introductory video storyboard.
type VideoConceptScene struct {
	Scene       string `json:"scene"`
	Description string `json:"description"`
}

// Citation is a web source reference attached by the grounded research call.
// Both Title and URI are always non-empty; entries missing either are
// dropped during research.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Certification is the root artifact produced by the curriculum pipeline.
// Once created it is append-only: enrichment attaches diagram images to
// existing modules, but no module is added, removed, or reordered.
type Certification struct {
	Title                   string              `json:"title"`
	TargetAudience          string              `json:"targetAudience"`
	TotalDurationHours      float64             `json:"totalDurationHours"`
	Overview                string              `json:"overview"`
	Prerequisites           []string            `json:"prerequisites"`
	Modules                 []Module            `json:"modules"`
	SampleQuiz              []QuizQuestion      `json:"sampleQuiz"`
	CapstoneProject         CapstoneProject     `json:"capstoneProject"`
	IntroductoryVideoScenes []VideoConceptScene `json:"introductoryVideoConcept"`
	Citations               []Citation          `json:"citations,omitempty"`
}

// ModuleByNumber returns the module with the given 1-based number, or nil.
func (c *Certification) ModuleByNumber(n int) *Module {
	for i := range c.Modules {
		if c.Modules[i].ModuleNumber == n {
			return &c.Modules[i]
		}
	}
	return nil
}
