package models

// Money is an amount in local currency units.
type Money = float64

// ProjectType is the kind of project being commissioned (website, web app, ...).
type ProjectType struct {
	// ID is the stable identifier referenced by selections (e.g., "website").
	ID string `json:"id" toml:"id"`

	// Name is the display name shown in the wizard.
	Name string `json:"name" toml:"name"`

	// BasePrice is the starting price before the industry multiplier.
	BasePrice Money `json:"base_price" toml:"base_price"`
}

// Industry scales the base price of a project.
type Industry struct {
	ID   string `json:"id" toml:"id"`
	Name string `json:"name" toml:"name"`

	// Multiplier is applied to ProjectType.BasePrice (e.g., 0.6 for students,
	// 1.8 for enterprise).
	Multiplier float64 `json:"multiplier" toml:"multiplier"`
}

// Feature is a flat-priced functional add-on that also extends the timeline.
type Feature struct {
	ID    string `json:"id" toml:"id"`
	Name  string `json:"name" toml:"name"`
	Price Money  `json:"price" toml:"price"`
}

// AddOn is a flat-priced service extra (hosting, branding, SEO setup).
// Unlike features, add-ons do not affect the timeline.
type AddOn struct {
	ID    string `json:"id" toml:"id"`
	Name  string `json:"name" toml:"name"`
	Price Money  `json:"price" toml:"price"`
}

// TeamRole groups the seniority levels available for one role.
type TeamRole struct {
	ID     string          `json:"id" toml:"id"`
	Name   string          `json:"name" toml:"name"`
	Levels []TeamRoleLevel `json:"levels" toml:"levels"`
}

// TeamRoleLevel is the price of one seniority level of a role.
type TeamRoleLevel struct {
	Level    string `json:"level" toml:"level"`
	Price    Money  `json:"price" toml:"price"`
	USDPrice Money  `json:"usd_price" toml:"usd_price"`
}

// TeamMember is one chosen team-role instance. Price is snapshotted when the
// member is added, so later catalog changes do not affect existing selections.
// The same role and level may appear several times.
type TeamMember struct {
	Role     string `json:"role" toml:"role"`
	Level    string `json:"level" toml:"level"`
	Price    Money  `json:"price" toml:"price"`
	USDPrice Money  `json:"usd_price" toml:"usd_price"`
}

// Theme is a visual theme. It has no price effect.
type Theme struct {
	ID   string `json:"id" toml:"id"`
	Name string `json:"name" toml:"name"`
}

// StarterPackage is a pre-configured bundle offered instead of manual
// selection. Its contents are informational; they are not merged into a
// selection.
type StarterPackage struct {
	ID           string   `json:"id" toml:"id"`
	Name         string   `json:"name" toml:"name"`
	Price        Money    `json:"price" toml:"price"`
	USDPrice     Money    `json:"usd_price" toml:"usd_price"`
	Features     []string `json:"features" toml:"features"`
	Pages        []string `json:"pages" toml:"pages"`
	TimelineDays int      `json:"timeline_days" toml:"timeline_days"`
}
