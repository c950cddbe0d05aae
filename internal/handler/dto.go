package handler

import (
	"time"

	"github.com/msomdec/job-board/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsEmployer bool   `json:"isEmployer"`
	CreatedAt  string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		IsEmployer: u.IsEmployer,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}

// JobDTO is the JSON representation of a job posting.
type JobDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	PostedAt    string `json:"postedAt"`
	EmployerID  int64  `json:"employerId"`
}

func toJobDTO(j *domain.Job) JobDTO {
	return JobDTO{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Company:     j.Company,
		Location:    j.Location,
		PostedAt:    j.PostedAt.Format(time.RFC3339),
		EmployerID:  j.EmployerID,
	}
}

func toJobDTOs(jobs []domain.Job) []JobDTO {
	dtos := make([]JobDTO, len(jobs))
	for i := range jobs {
		dtos[i] = toJobDTO(&jobs[i])
	}
	return dtos
}

// ApplicationDTO is the JSON representation of an application.
type ApplicationDTO struct {
	ID             int64  `json:"id"`
	ResumeFilename string `json:"resumeFilename"`
	Message        string `json:"message"`
	AppliedAt      string `json:"appliedAt"`
	JobID          int64  `json:"jobId"`
	CandidateID    int64  `json:"candidateId"`
}

func toApplicationDTO(a *domain.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:             a.ID,
		ResumeFilename: a.ResumeFilename,
		Message:        a.Message,
		AppliedAt:      a.AppliedAt.Format(time.RFC3339),
		JobID:          a.JobID,
		CandidateID:    a.CandidateID,
	}
}

func toApplicationDTOs(apps []domain.Application) []ApplicationDTO {
	dtos := make([]ApplicationDTO, len(apps))
	for i := range apps {
		dtos[i] = toApplicationDTO(&apps[i])
	}
	return dtos
}
