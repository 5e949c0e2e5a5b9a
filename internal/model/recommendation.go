package model

// RecommendationKind selects which catalog a recommendation is drawn from.
type RecommendationKind string

const (
	RecommendCourses  RecommendationKind = "courses"
	RecommendTeachers RecommendationKind = "teachers"
)

// RecommendationRequest is the payload submitted by the recommendation form.
// Interests is the raw comma-separated input.
type RecommendationRequest struct {
	Interests string `json:"interests" binding:"required,min=3,max=500"`
	Age       int    `json:"age" binding:"required,min=5,max=18"`
	Grade     string `json:"grade" binding:"required,min=1,max=50"`
}

// RecommendationProfile is the learner profile sent to the generator.
type RecommendationProfile struct {
	Interests []string `json:"interests"`
	Age       int      `json:"age"`
	Grade     string   `json:"grade"`
}

// CatalogEntry is one candidate in the catalog snapshot grounding a recommendation.
// ID links a recommended name back to its record and is not sent to the generator.
type CatalogEntry struct {
	ID         string   `json:"-"`
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Summary    string   `json:"summary,omitempty"`
}

// RecommendationResult is returned for every recommendation request,
// including failed ones. IsRelevant and Reasoning are advisory.
type RecommendationResult struct {
	Recommendations []string          `json:"recommendations"`
	IsRelevant      bool              `json:"is_relevant"`
	Reasoning       string            `json:"reasoning"`
	Matches         []RecommendedItem `json:"matches"`
}

// RecommendedItem is a recommended name resolved against the catalog.
type RecommendedItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
