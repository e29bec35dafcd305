// Package services implements the domain service: CRUD over the four
// collections plus the rank-progression and exam-promotion rules. Services
// return explicit errors (validation, not-found, storage) where the original
// behavior was a silent no-op; callers decide how to surface them.
package services

// Services bundles every domain service for dependency wiring.
type Services struct {
	AuthService    AuthService
	StudentService StudentService
	RankService    RankService
	ExamService    ExamService
}
