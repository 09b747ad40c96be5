package types

const (
	DEFAULT_PROFILE_VALUE         = "Not set"
	DEFAULT_PROFILE_HEALTH_RATING = 5
	DEFAULT_PROFILE_SNAPSHOTS     = "[]"
)

// Profile holds the hair-care profile of a single user, one row per user.
type Profile struct {
	ID                    string `json:"id" db:"id"`
	UserID                string `json:"user_id" db:"user_id"`
	HairJourneyStage      string `json:"hair_journey_stage" db:"hair_journey_stage"`
	HairHealthRating      int    `json:"hair_health_rating" db:"hair_health_rating"`
	LifeJourneyStage      string `json:"life_journey_stage" db:"life_journey_stage"`
	Birthday              string `json:"birthday" db:"birthday"`
	Location              string `json:"location" db:"location"`
	HairType              string `json:"hair_type" db:"hair_type"`
	HairGoals             string `json:"hair_goals" db:"hair_goals"`
	HairAnalysisSnapshots string `json:"hair_analysis_snapshots" db:"hair_analysis_snapshots"`
	CreatedAt             int64  `json:"created_at" db:"created_at"`
	UpdatedAt             int64  `json:"updated_at" db:"updated_at"`
}

// DefaultProfile returns the record created the first time an owner views their profile.
func DefaultProfile(id, userID string, now int64) Profile {
	return Profile{
		ID:                    id,
		UserID:                userID,
		HairJourneyStage:      DEFAULT_PROFILE_VALUE,
		HairHealthRating:      DEFAULT_PROFILE_HEALTH_RATING,
		LifeJourneyStage:      DEFAULT_PROFILE_VALUE,
		Location:              DEFAULT_PROFILE_VALUE,
		HairType:              DEFAULT_PROFILE_VALUE,
		HairGoals:             DEFAULT_PROFILE_VALUE,
		HairAnalysisSnapshots: DEFAULT_PROFILE_SNAPSHOTS,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// AnalysisSnapshot is one element of Profile.HairAnalysisSnapshots.
type AnalysisSnapshot struct {
	Date        string  `json:"date"`
	CurlPattern string  `json:"curl_pattern"`
	HealthScore float64 `json:"health_score"`
	Image       string  `json:"image"`
}
