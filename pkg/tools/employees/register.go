package employees

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// maxHierarchyDepth caps the manager-chain walk so malformed payloads with
// very deep (or unreported circular) nesting can not run away.
const maxHierarchyDepth = 10

// RegisterEmployee registers an employee along with their manager chain.
// Both employee and manager use the same Person schema, so the reporting
// hierarchy is walked recursively with cycle detection on employee_id.
// Validation failures are reported as structured results, mirroring how the
// other demonstration tools surface bad input.
func RegisterEmployee(ctx context.Context, req RegistrationRequest) (RegistrationResult, error) {
	employee := req.Employee
	if employee == nil {
		return RegistrationResult{
			Status:  "error",
			Error:   "Missing employee data",
			Code:    "INVALID_REQUEST",
			Details: "Employee information is required for registration",
		}, nil
	}
	log.Println("Executing Register Employee for:", employee.Name)

	missing := missingRegistrationFields(employee)
	if len(missing) > 0 {
		return RegistrationResult{
			Status:  "error",
			Error:   "Validation failed",
			Code:    "INVALID_REQUEST",
			Details: "Required fields missing: " + strings.Join(missing, ", "),
		}, nil
	}

	startDate := employee.StartDate
	if startDate == "" {
		startDate = time.Now().Format("2006-01-02")
	}

	result := RegistrationResult{
		Status:  "success",
		Message: "Employee registered successfully",
		Employee: &RegisteredEmployee{
			Name:       employee.Name,
			EmployeeID: employee.EmployeeID,
			Department: employee.Department,
			Position:   employee.Position,
			StartDate:  startDate,
		},
	}

	// Walk the manager hierarchy building the reporting chain.
	chain := []string{fmt.Sprintf("%s (%s)", employee.Name, employee.EmployeeID)}
	visited := map[string]bool{employee.EmployeeID: true}
	levels := 1

	for current := employee.Manager; current != nil; current = current.Manager {
		if visited[current.EmployeeID] {
			result.Warning = "Circular reference detected in management chain"
			break
		}
		chain = append(chain, fmt.Sprintf("%s (%s)", current.Name, current.EmployeeID))
		visited[current.EmployeeID] = true
		levels++

		if levels > maxHierarchyDepth {
			result.Warning = fmt.Sprintf("Management hierarchy exceeds maximum depth of %d levels", maxHierarchyDepth)
			break
		}
	}

	if manager := employee.Manager; manager != nil {
		result.Manager = &RegisteredManager{
			Name:       manager.Name,
			EmployeeID: manager.EmployeeID,
			Position:   fallback(manager.Position, "Manager"),
		}
	} else {
		result.Note = "No manager assigned - this may be a top-level executive"
	}

	result.ReportingChain = strings.Join(chain, " → ")
	if levels > 1 {
		result.HierarchyLevels = levels
	}
	result.RegistrationDate = time.Now().UTC().Format(time.RFC3339)

	return result, nil
}

func missingRegistrationFields(p *RegistrationPerson) []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", p.Name},
		{"employee_id", p.EmployeeID},
		{"email", p.Email},
		{"department", p.Department},
		{"position", p.Position},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}
