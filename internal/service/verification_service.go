package service

import (
	"context"

	"github.com/blanklearn/marketplace-backend/internal/model"
)

// VerificationService is a placeholder identity check for teachers.
type VerificationService struct{}

// NewVerificationService creates a new VerificationService.
func NewVerificationService() *VerificationService {
	return &VerificationService{}
}

// VerifyTeacher reports every teacher as verified.
func (s *VerificationService) VerifyTeacher(_ context.Context, _ string) model.TeacherVerificationStatus {
	return model.TeacherVerificationStatus{IsVerified: true, Message: "Teacher verification successful."}
}
