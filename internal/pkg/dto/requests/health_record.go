package requests

// CreateHealthRecord is the normalized phase-1 submission payload: numeric
// fields parsed from the draft's strings plus the serialized lifestyle blob.
type CreateHealthRecord struct {
	Height                 float64 `json:"height"`
	Weight                 float64 `json:"weight"`
	BloodPressureSystolic  int     `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int     `json:"blood_pressure_diastolic"`
	BloodSugar             float64 `json:"blood_sugar"`
	LifestyleHabits        string  `json:"lifestyle_habits,omitempty"`
}

type CreatePrediction struct {
	HealthRecordID int `json:"health_record_id"`
}
