package constants

// Membership roles inside a classroom.
const (
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

// Membership status.
const (
	MembershipActive = "active"
)

// Assignment types.
const (
	AssignmentTypeAssignment = "assignment"
	AssignmentTypeQuiz       = "quiz"
	AssignmentTypeExam       = "exam"
)

// Submission status.
const (
	SubmissionSubmitted = "submitted"
	SubmissionGraded    = "graded"
)

// Attempt status.
const (
	AttemptInProgress = "in_progress"
	AttemptSubmitted  = "submitted"
)
