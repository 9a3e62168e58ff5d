package models

// WizardDraft is the in-progress assessment input. Numeric fields stay
// strings until submission; nothing is validated while the user is still
// moving between steps, and a draft never survives a restart.
type WizardDraft struct {
	Age                    string `json:"age"`
	Gender                 string `json:"gender"`
	Height                 string `json:"height"`
	Weight                 string `json:"weight"`
	BloodPressureSystolic  string `json:"bloodPressureSystolic"`
	BloodPressureDiastolic string `json:"bloodPressureDiastolic"`
	BloodSugar             string `json:"bloodSugar"`
	Smoking                bool   `json:"smoking"`
	Alcohol                bool   `json:"alcohol"`
	Exercise               bool   `json:"exercise"`
	FamilyHistory          bool   `json:"familyHistory"`
}

// LifestyleHabits is the serialized form of the draft's four boolean flags,
// sent to the backend as one opaque JSON string.
type LifestyleHabits struct {
	Smoking       bool `json:"smoking"`
	Alcohol       bool `json:"alcohol"`
	Exercise      bool `json:"exercise"`
	FamilyHistory bool `json:"familyHistory"`
}
