package domain

// Statistics is the aggregate view of the citizens table
type Statistics struct {
	TotalCitizens      int64         `json:"totalCitizens"`
	TodayRegistrations int64         `json:"todayRegistrations"`
	StateDistribution  []StateCount  `json:"stateDistribution"`
	GenderDistribution []GenderCount `json:"genderDistribution"`
}

// StateCount is one group of the state-of-origin distribution. A nil state
// groups the citizens with no recorded state.
type StateCount struct {
	StateOfOrigin *string `gorm:"column:state_of_origin" json:"state_of_origin"`
	Count         int64   `gorm:"column:count" json:"count"`
}

// GenderCount is one group of the gender distribution
type GenderCount struct {
	Gender *string `gorm:"column:gender" json:"gender"`
	Count  int64   `gorm:"column:count" json:"count"`
}
