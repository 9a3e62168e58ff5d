package requests

// UpdateDraft carries a partial wizard-draft edit; only the fields present in
// the request body are merged into the draft. Deliberately no validate tags:
// the wizard accepts blank and malformed input until submission.
type UpdateDraft struct {
	Age                    *string `json:"age,omitempty"`
	Gender                 *string `json:"gender,omitempty"`
	Height                 *string `json:"height,omitempty"`
	Weight                 *string `json:"weight,omitempty"`
	BloodPressureSystolic  *string `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *string `json:"bloodPressureDiastolic,omitempty"`
	BloodSugar             *string `json:"bloodSugar,omitempty"`
	Smoking                *bool   `json:"smoking,omitempty"`
	Alcohol                *bool   `json:"alcohol,omitempty"`
	Exercise               *bool   `json:"exercise,omitempty"`
	FamilyHistory          *bool   `json:"familyHistory,omitempty"`
}
