// Package entity defines the closed set of searchable entity kinds.
package entity

// Type identifies one kind of searchable record. It is the registry key
// for strategy resolution and is immutable after startup.
type Type string

// Searchable entity kinds. The renec_* and certifier/center kinds mirror
// Mexico's national registry of competency standards (RENEC).
const (
	User          Type = "user"
	Course        Type = "course"
	Lesson        Type = "lesson"
	Standard      Type = "standard"
	Enrollment    Type = "enrollment"
	Certification Type = "certification"
	Simulation    Type = "simulation"
	Document      Type = "document"
	RenecStandard Type = "renec_standard"
	Certifier     Type = "certifier"
	Center        Type = "center"
)

// All returns every known entity type in declaration order.
func All() []Type {
	return []Type{
		User, Course, Lesson, Standard, Enrollment, Certification,
		Simulation, Document, RenecStandard, Certifier, Center,
	}
}

// IsValid checks if t is one of the known entity types.
func (t Type) IsValid() bool {
	switch t {
	case User, Course, Lesson, Standard, Enrollment, Certification,
		Simulation, Document, RenecStandard, Certifier, Center:
		return true
	}
	return false
}
