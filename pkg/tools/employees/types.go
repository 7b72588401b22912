package employees

// --- Employee Profile Structs ---

// Address is the employee's postal address.
type Address struct {
	Street  string `json:"street" jsonschema:"description=Street address line."`
	City    string `json:"city" jsonschema:"description=City name."`
	State   string `json:"state" jsonschema:"description=State or province."`
	Zipcode string `json:"zipcode" jsonschema:"description=Postal or ZIP code."`
	Country string `json:"country" jsonschema:"description=Country name or code."`
}

// Personal groups the employee's personal details.
type Personal struct {
	Name    string  `json:"name" jsonschema:"required,description=The employee's full name."`
	Email   string  `json:"email" jsonschema:"description=Work email address."`
	Phone   string  `json:"phone" jsonschema:"description=Phone number."`
	Address Address `json:"address" jsonschema:"description=Home address."`
}

// Employment groups position and reporting details.
type Employment struct {
	Department string `json:"department" jsonschema:"description=Department name."`
	Position   string `json:"position" jsonschema:"description=Job title."`
	Level      string `json:"level" jsonschema:"description=Seniority level, e.g. L5."`
	Manager    string `json:"manager" jsonschema:"description=Direct manager's name."`
	StartDate  string `json:"startDate" jsonschema:"description=Employment start date."`
}

// Project is one project assignment.
type Project struct {
	Name   string `json:"name" jsonschema:"description=Project name."`
	Role   string `json:"role" jsonschema:"description=The employee's role on the project."`
	Status string `json:"status" jsonschema:"description=Project status, e.g. Active."`
}

// Certification is a professional certification with its expiry date.
type Certification struct {
	Name       string `json:"name" jsonschema:"description=Certification name."`
	ExpiryDate string `json:"expiryDate" jsonschema:"description=Certification expiry date."`
}

// Performance holds the latest review data.
type Performance struct {
	Rating float64  `json:"rating" jsonschema:"description=Performance rating out of 5."`
	Goals  []string `json:"goals" jsonschema:"description=Current goals."`
}

// Employee is a comprehensive employee record with 30+ nested fields.
type Employee struct {
	Personal       Personal        `json:"personal" jsonschema:"required,description=Personal details."`
	Employment     Employment      `json:"employment" jsonschema:"description=Employment details."`
	Projects       []Project       `json:"projects" jsonschema:"description=Project assignments."`
	Skills         []string        `json:"skills" jsonschema:"description=Skill list."`
	Certifications []Certification `json:"certifications" jsonschema:"description=Certifications held."`
	Performance    Performance     `json:"performance" jsonschema:"description=Performance review data."`
}

// EmployeeRequest defines the arguments for the process_employee tool.
type EmployeeRequest struct {
	Employee Employee `json:"employee" jsonschema:"required,description=The employee record to process."`
}

// EmployeeProfile is the formatted employee summary returned to the caller.
type EmployeeProfile struct {
	EmployeeName      string      `json:"employee_name"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	Address           string      `json:"address,omitempty"`
	Department        string      `json:"department"`
	Position          string      `json:"position"`
	Level             string      `json:"level"`
	Manager           string      `json:"manager"`
	StartDate         string      `json:"start_date"`
	ActiveProjects    []string    `json:"active_projects"`
	ProjectCount      int         `json:"project_count"`
	Skills            []string    `json:"skills"`
	SkillCount        int         `json:"skill_count"`
	Certifications    []string    `json:"certifications"`
	PerformanceRating interface{} `json:"performance_rating"` // Numeric rating or "Not rated"
	Goals             []string    `json:"goals"`
	Summary           string      `json:"summary"`
}

// --- Person Relationship Structs ---

// Person models a person with an optional friendOf reference to another
// Person. The reference uses the same schema, so payloads describing mutual
// friendships are circular in shape (but finite in depth once serialized).
type Person struct {
	ID       string  `json:"id" jsonschema:"description=Person identifier."`
	Name     string  `json:"name" jsonschema:"required,description=The person's name."`
	Email    string  `json:"email" jsonschema:"description=Email address."`
	Age      int     `json:"age" jsonschema:"description=Age in years."`
	FriendOf *Person `json:"friendOf,omitempty" jsonschema:"description=Another person this person is friends with, using the same schema."`
}

// PersonRequest defines the arguments for the analyze_person tool.
type PersonRequest struct {
	Person Person `json:"person" jsonschema:"required,description=The person to analyze."`
}

// PersonAnalysis is the relationship summary for a person payload.
type PersonAnalysis struct {
	PersonName       string      `json:"person_name"`
	Email            string      `json:"email"`
	Age              interface{} `json:"age"` // Age in years or "Not provided"
	FriendName       string      `json:"friend_name,omitempty"`
	Relationship     string      `json:"relationship,omitempty"`
	RelationshipType string      `json:"relationship_type,omitempty"`
	Summary          string      `json:"summary"`
}

// --- Registration Structs ---

// RegistrationPerson is the Person schema used for employee registration.
// The manager field references the same schema, modeling organizational
// hierarchies as a circular schema reference.
type RegistrationPerson struct {
	Name       string              `json:"name" jsonschema:"required,description=Full name."`
	EmployeeID string              `json:"employee_id" jsonschema:"required,description=Unique employee identifier."`
	Email      string              `json:"email" jsonschema:"required,description=Work email address."`
	Phone      string              `json:"phone" jsonschema:"description=Phone number."`
	Department string              `json:"department" jsonschema:"required,description=Department name."`
	Position   string              `json:"position" jsonschema:"required,description=Job title."`
	StartDate  string              `json:"start_date" jsonschema:"description=Employment start date, defaults to today."`
	Manager    *RegistrationPerson `json:"manager,omitempty" jsonschema:"description=The direct manager, using the same schema."`
}

// RegistrationRequest defines the arguments for the register_employee tool.
type RegistrationRequest struct {
	Employee *RegistrationPerson `json:"employee" jsonschema:"required,description=The employee to register."`
}

// RegisteredEmployee summarizes the newly registered employee.
type RegisteredEmployee struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
	Position   string `json:"position"`
	StartDate  string `json:"start_date"`
}

// RegisteredManager summarizes the direct manager.
type RegisteredManager struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Position   string `json:"position"`
}

// RegistrationResult is the registration confirmation, including the full
// reporting chain walked up through the manager hierarchy.
type RegistrationResult struct {
	Status           string              `json:"status"`
	Error            string              `json:"error,omitempty"`
	Code             string              `json:"code,omitempty"`
	Details          string              `json:"details,omitempty"`
	Message          string              `json:"message,omitempty"`
	Employee         *RegisteredEmployee `json:"employee,omitempty"`
	Manager          *RegisteredManager  `json:"manager,omitempty"`
	Note             string              `json:"note,omitempty"`
	ReportingChain   string              `json:"reporting_chain,omitempty"`
	HierarchyLevels  int                 `json:"hierarchy_levels,omitempty"`
	Warning          string              `json:"warning,omitempty"`
	RegistrationDate string              `json:"registration_date,omitempty"`
}
