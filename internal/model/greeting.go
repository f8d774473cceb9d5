package model

// Greeting holds everything the daily message reports for one day.
type Greeting struct {
	Today    Date `json:"today" yaml:"today"`
	Birthday Date `json:"birthday" yaml:"birthday"`

	// Age, counted naively in 365-day years.
	AgeDays       int  `json:"age_days" yaml:"age_days"`
	AgeYears      int  `json:"age_years" yaml:"age_years"`
	RemainderDays int  `json:"remainder_days" yaml:"remainder_days"`
	IsBirthday    bool `json:"is_birthday" yaml:"is_birthday"`

	// Countdowns
	NextBirthday      Date `json:"next_birthday" yaml:"next_birthday"`
	NextAge           int  `json:"next_age" yaml:"next_age"` // calendar years reached on NextBirthday
	DaysUntilBirthday int  `json:"days_until_birthday" yaml:"days_until_birthday"`
	DaysLeftInYear    int  `json:"days_left_in_year" yaml:"days_left_in_year"`
}
