// Package employees manages employee records with complex nested data
// (personal details, employment, projects, skills, certifications and
// performance), person relationships with circular friendOf references, and
// employee registration with manager reporting chains.
package employees

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// ProcessEmployee formats a comprehensive employee record into a
// user-friendly profile summary. Missing fields fall back to safe defaults
// rather than erroring.
func ProcessEmployee(ctx context.Context, req EmployeeRequest) (EmployeeProfile, error) {
	employee := req.Employee
	log.Println("Executing Process Employee for:", employee.Personal.Name)

	result := EmployeeProfile{
		EmployeeName: fallback(employee.Personal.Name, "Unknown"),
		Email:        fallback(employee.Personal.Email, "Not provided"),
		Phone:        fallback(employee.Personal.Phone, "Not provided"),
		Department:   fallback(employee.Employment.Department, "Not assigned"),
		Position:     fallback(employee.Employment.Position, "Not specified"),
		Level:        employee.Employment.Level,
		Manager:      fallback(employee.Employment.Manager, "Not assigned"),
		StartDate:    fallback(employee.Employment.StartDate, "Unknown"),
	}

	result.Address = formatAddress(employee.Personal.Address)

	result.ActiveProjects = make([]string, 0, len(employee.Projects))
	for _, p := range employee.Projects {
		if p.Status == "Active" {
			result.ActiveProjects = append(result.ActiveProjects, fmt.Sprintf("%s (%s)", fallback(p.Name, "Unnamed"), fallback(p.Role, "Member")))
		}
	}
	result.ProjectCount = len(employee.Projects)

	result.Skills = employee.Skills
	if result.Skills == nil {
		result.Skills = []string{}
	}
	result.SkillCount = len(employee.Skills)

	result.Certifications = make([]string, 0, len(employee.Certifications))
	for _, c := range employee.Certifications {
		result.Certifications = append(result.Certifications, fmt.Sprintf("%s (expires: %s)", fallback(c.Name, "Unknown"), fallback(c.ExpiryDate, "N/A")))
	}

	if employee.Performance.Rating != 0 {
		result.PerformanceRating = employee.Performance.Rating
	} else {
		result.PerformanceRating = "Not rated"
	}
	result.Goals = employee.Performance.Goals
	if result.Goals == nil {
		result.Goals = []string{}
	}

	result.Summary = fmt.Sprintf("Employee profile for %s, %s in %s", result.EmployeeName, result.Position, result.Department)

	return result, nil
}

// AnalyzePerson summarizes a person payload and classifies the friendOf
// relationship: mutual when the friend points straight back, a plain friend
// connection when the friend points elsewhere, one-way when the friend has
// no reference at all.
func AnalyzePerson(ctx context.Context, req PersonRequest) (PersonAnalysis, error) {
	person := req.Person
	log.Println("Executing Analyze Person for:", person.Name)

	result := PersonAnalysis{
		PersonName: fallback(person.Name, "Unknown"),
		Email:      fallback(person.Email, "Not provided"),
	}
	if person.Age != 0 {
		result.Age = person.Age
	} else {
		result.Age = "Not provided"
	}

	if friend := person.FriendOf; friend != nil {
		result.FriendName = fallback(friend.Name, "Unknown")
		result.Relationship = fmt.Sprintf("%s is friends with %s", result.PersonName, result.FriendName)

		switch {
		case friend.FriendOf == nil:
			result.RelationshipType = "One-way friendship"
		case friend.FriendOf.Name == result.PersonName:
			result.RelationshipType = "Mutual friends"
		default:
			result.RelationshipType = "Friend connection"
		}
	}

	result.Summary = fmt.Sprintf("Person profile for %s", result.PersonName)

	return result, nil
}

func formatAddress(a Address) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.Zipcode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
