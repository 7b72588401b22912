package employees

import "github.com/invopop/jsonschema"

// schemaNestingDepth caps how many levels of the self-referential friendOf
// and manager fields are expanded in generated input schemas. The schema
// generator inlines nested types instead of emitting $refs, so the
// expansion has to terminate here. Three levels cover every relationship
// the analysis inspects (person, friend, friend-of-friend).
const schemaNestingDepth = 3

// JSONSchema returns a depth-limited schema for Person. The friendOf field
// references Person itself, so reflection cannot be left to expand it.
func (Person) JSONSchema() *jsonschema.Schema {
	return personSchema(schemaNestingDepth)
}

func personSchema(depth int) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set("id", &jsonschema.Schema{Type: "string", Description: "Person identifier."})
	props.Set("name", &jsonschema.Schema{Type: "string", Description: "The person's name."})
	props.Set("email", &jsonschema.Schema{Type: "string", Description: "Email address."})
	props.Set("age", &jsonschema.Schema{Type: "integer", Description: "Age in years."})

	friend := &jsonschema.Schema{
		Type:        "object",
		Description: "Another person this person is friends with, using the same schema.",
	}
	if depth > 1 {
		nested := personSchema(depth - 1)
		nested.Description = friend.Description
		friend = nested
	}
	props.Set("friendOf", friend)

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   []string{"name"},
	}
}

// JSONSchema returns a depth-limited schema for RegistrationPerson, whose
// manager field references the same type.
func (RegistrationPerson) JSONSchema() *jsonschema.Schema {
	return registrationPersonSchema(schemaNestingDepth)
}

func registrationPersonSchema(depth int) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set("name", &jsonschema.Schema{Type: "string", Description: "Full name."})
	props.Set("employee_id", &jsonschema.Schema{Type: "string", Description: "Unique employee identifier."})
	props.Set("email", &jsonschema.Schema{Type: "string", Description: "Work email address."})
	props.Set("phone", &jsonschema.Schema{Type: "string", Description: "Phone number."})
	props.Set("department", &jsonschema.Schema{Type: "string", Description: "Department name."})
	props.Set("position", &jsonschema.Schema{Type: "string", Description: "Job title."})
	props.Set("start_date", &jsonschema.Schema{Type: "string", Description: "Employment start date, defaults to today."})

	manager := &jsonschema.Schema{
		Type:        "object",
		Description: "The direct manager, using the same schema.",
	}
	if depth > 1 {
		nested := registrationPersonSchema(depth - 1)
		nested.Description = manager.Description
		manager = nested
	}
	props.Set("manager", manager)

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   []string{"name", "employee_id", "email", "department", "position"},
	}
}
