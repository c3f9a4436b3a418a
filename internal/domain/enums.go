package domain

// TopicType is the variant tag of a Topic.
type TopicType string

const (
	TopicTypeEvent           TopicType = "event"
	TopicTypeScholarship     TopicType = "scholarship"
	TopicTypeNotification    TopicType = "notification"
	TopicTypeJob             TopicType = "job"
	TopicTypeAdvertisement   TopicType = "advertisement"
	TopicTypeInternship      TopicType = "internship"
	TopicTypeRecruitment     TopicType = "recruitment"
	TopicTypeVolunteer       TopicType = "volunteer"
	TopicTypeExtracurricular TopicType = "extracurricular"
)

func (t TopicType) String() string { return string(t) }

// IsValid reports whether the type has an entry in the variant registry.
func (t TopicType) IsValid() bool {
	_, ok := variantRegistry[t]
	return ok
}

// TopicStatus is the time-derived classification of a Topic. Never stored.
type TopicStatus string

const (
	TopicStatusUpcoming   TopicStatus = "upcoming"
	TopicStatusOngoing    TopicStatus = "ongoing"
	TopicStatusEnded      TopicStatus = "ended"
	TopicStatusExpired    TopicStatus = "expired"
	TopicStatusIndefinite TopicStatus = "indefinite"
)

func (s TopicStatus) String() string { return string(s) }

func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusUpcoming, TopicStatusOngoing, TopicStatusEnded,
		TopicStatusExpired, TopicStatusIndefinite:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleStudent     UserRole = "student"
	UserRoleCoordinator UserRole = "coordinator"
	UserRoleAdmin       UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleCoordinator, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeTopic EntityType = "TOPIC"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTopic:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
