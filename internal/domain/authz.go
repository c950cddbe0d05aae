package domain

// Authorization guard: pure decision functions over a session and the
// resource being acted on. The guard never mutates state; callers deny
// the operation when a check returns false.

// CanMutateJob reports whether the session may edit or delete the job.
// Only the owning employer qualifies.
func CanMutateJob(s *Session, job *Job) bool {
	return s != nil && s.IsEmployer && s.UserID == job.EmployerID
}

// CanPostJob reports whether the session may create new jobs.
func CanPostJob(s *Session) bool {
	return s != nil && s.IsEmployer
}

// CanViewEmployerDashboard reports whether the session may view the
// employer dashboard.
func CanViewEmployerDashboard(s *Session) bool {
	return s != nil && s.IsEmployer
}

// CanViewCandidateDashboard reports whether the session may view the
// candidate dashboard.
func CanViewCandidateDashboard(s *Session) bool {
	return s != nil && !s.IsEmployer
}

// CanApply reports whether the session may apply to jobs. Employers
// cannot apply.
func CanApply(s *Session) bool {
	return s != nil && !s.IsEmployer
}
