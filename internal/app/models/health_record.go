package models

// BloodPressure mirrors the nested blood_pressure object the backend returns
// on health-record reads.
type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// HealthRecord is the backend's representation of one stored measurement set.
// LifestyleHabits stays the opaque serialized blob the backend produced it as.
type HealthRecord struct {
	ID              int           `json:"id"`
	UserID          int           `json:"user_id"`
	Height          float64       `json:"height"`
	Weight          float64       `json:"weight"`
	BMI             float64       `json:"bmi"`
	BloodPressure   BloodPressure `json:"blood_pressure"`
	BloodSugar      float64       `json:"blood_sugar"`
	LifestyleHabits string        `json:"lifestyle_habits,omitempty"`
	CreatedAt       string        `json:"created_at,omitempty"`
}
