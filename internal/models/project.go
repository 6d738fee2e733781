package models

// Project is a submitted project as stored by the project service.
type Project struct {
	// ID is the unique identifier for the project (UUID format).
	ID string

	// Title is derived from the project type and industry by the submitter.
	Title string

	Description string

	// ProjectType is the catalog id of the project type.
	ProjectType string

	// Budget is the local-currency budget. USD is not transmitted.
	Budget int64

	// Features is the list of selected feature ids.
	Features []string

	TimelineDays int

	// Requirements holds the remaining wizard choices.
	Requirements Requirements

	// CreatedBy is the token subject of the submitting client, empty when
	// auth is disabled.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the project was created.
	CreatedAt int64
}

// Requirements is the custom-requirements bag sent with a project.
type Requirements struct {
	Industry       string       `json:"industry"`
	Team           []TeamMember `json:"team"`
	AddOns         []string     `json:"add_ons"`
	Theme          string       `json:"theme"`
	Pages          []string     `json:"pages"`
	StarterPackage string       `json:"starter_package,omitempty"`
}
