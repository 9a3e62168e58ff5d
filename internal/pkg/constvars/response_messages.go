package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccessMessage = "successfully registered"
	LoginSuccessMessage    = "successfully login"
	LogoutSuccessMessage   = "successfully logout"

	// Profile messages
	GetProfileSuccessMessage    = "get profile successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"
	GetHistorySuccessMessage    = "get health history successfully"

	// Assessment messages
	WizardStartedMessage     = "assessment started"
	WizardUpdatedMessage     = "assessment draft updated"
	WizardSubmittedMessage   = "prediction generated successfully"
	GetRecordsSuccessMessage = "get health records successfully"
	GetRecordSuccessMessage  = "get health record successfully"

	// Prediction messages
	GetPredictionsSuccessMessage = "get predictions successfully"
	GetPredictionSuccessMessage  = "get prediction successfully"

	// Dashboard messages
	GetDashboardSuccessMessage        = "get dashboard successfully"
	GetDashboardPartialFailureMessage = "some dashboard data could not be loaded"
)
