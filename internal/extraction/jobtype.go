package extraction

import "strings"

// Job type enum literals. Every stored job carries exactly one of these.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
	JobTypeRemote     = "Remote"
)

// jobTypeMap maps lower-cased external feed labels onto the closed enum.
var jobTypeMap = map[string]string{
	"full_time":  JobTypeFullTime,
	"part_time":  JobTypePartTime,
	"contract":   JobTypeContract,
	"freelance":  JobTypeContract,
	"internship": JobTypeInternship,
}

// NormalizeJobType maps an external job-type label onto one of the five enum
// literals. Unmapped values, including the empty string, normalize to
// Full-time; this is a silent default, not an error.
func NormalizeJobType(label string) string {
	if mapped, ok := jobTypeMap[strings.ToLower(strings.TrimSpace(label))]; ok {
		return mapped
	}
	return JobTypeFullTime
}

// ValidJobType reports whether v is one of the five enum literals. Used to
// validate client-supplied values on create and update.
func ValidJobType(v string) bool {
	switch v {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}
