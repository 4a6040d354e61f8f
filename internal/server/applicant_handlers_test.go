package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobhive/internal/models"
	"jobhive/internal/service"
	"jobhive/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyForm() map[string]string {
	return map[string]string{
		"full_name":     "App Licant",
		"contact_email": "applicant@example.com",
	}
}

func resumeFile() formFile {
	return formFile{field: "resume", filename: "resume.pdf", content: []byte("pdf-bytes")}
}

func TestApplyToJob(t *testing.T) {
	srv, app := newTestServer(t)
	owner, _ := createUser(t, srv, "owner@example.com")
	_, token := createUser(t, srv, "applicant@example.com")
	job := createJob(t, srv, owner.ID)

	body, contentType := multipartBody(t, applyForm(), resumeFile())
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", token)

	var applicant models.Applicant
	resp := doRequest(t, app, req, &applicant)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, job.ID, applicant.JobID)
	assert.NotEmpty(t, applicant.ResumePath)

	files := srv.files.(*storage.MemoryStore)
	_, ok := files.Get(applicant.ResumePath)
	assert.True(t, ok)
}

func TestApplyToJobTwice(t *testing.T) {
	srv, app := newTestServer(t)
	owner, _ := createUser(t, srv, "owner@example.com")
	_, token := createUser(t, srv, "applicant@example.com")
	job := createJob(t, srv, owner.ID)

	for i, wantStatus := range []int{http.StatusCreated, http.StatusConflict} {
		body, contentType := multipartBody(t, applyForm(), resumeFile())
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", token)

		resp := doRequest(t, app, req, nil)
		assert.Equal(t, wantStatus, resp.StatusCode, "attempt %d", i+1)
	}

	// The duplicate attempt must not leave a second resume behind.
	files := srv.files.(*storage.MemoryStore)
	assert.Equal(t, 1, files.Len())
}

func TestApplyMissingResume(t *testing.T) {
	srv, app := newTestServer(t)
	owner, _ := createUser(t, srv, "owner@example.com")
	_, token := createUser(t, srv, "applicant@example.com")
	job := createJob(t, srv, owner.ID)

	body, contentType := multipartBody(t, applyForm())
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/jobs/%d/apply", job.ID), body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", token)

	var errBody struct {
		Fields map[string][]string `json:"fields"`
	}
	resp := doRequest(t, app, req, &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, errBody.Fields, "resume")
}

func TestApplyToMissingJob(t *testing.T) {
	srv, app := newTestServer(t)
	_, token := createUser(t, srv, "applicant@example.com")

	body, contentType := multipartBody(t, applyForm(), resumeFile())
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/999/apply", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", token)

	resp := doRequest(t, app, req, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteApplicant(t *testing.T) {
	srv, app := newTestServer(t)
	owner, ownerToken := createUser(t, srv, "owner@example.com")
	applicantUser, _ := createUser(t, srv, "applicant@example.com")
	job := createJob(t, srv, owner.ID)

	applicant, err := srv.applicantService.Apply(context.Background(), service.ApplyInput{
		JobID:        job.ID,
		UserID:       applicantUser.ID,
		FullName:     "App Licant",
		ContactEmail: "applicant@example.com",
		Resume:       &storage.Upload{Filename: "resume.pdf", Content: []byte("pdf")},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/applicants/%d", applicant.ID), nil)
	req.Header.Set("Authorization", ownerToken)
	resp := doRequest(t, app, req, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	files := srv.files.(*storage.MemoryStore)
	assert.Equal(t, 0, files.Len())
}

// The applicant cannot withdraw through this endpoint; only the job owner
// manages their applicant list.
func TestDeleteApplicantForbiddenForApplicant(t *testing.T) {
	srv, app := newTestServer(t)
	owner, _ := createUser(t, srv, "owner@example.com")
	applicantUser, applicantToken := createUser(t, srv, "applicant@example.com")
	job := createJob(t, srv, owner.ID)

	applicant, err := srv.applicantService.Apply(context.Background(), service.ApplyInput{
		JobID:        job.ID,
		UserID:       applicantUser.ID,
		FullName:     "App Licant",
		ContactEmail: "applicant@example.com",
		Resume:       &storage.Upload{Filename: "resume.pdf", Content: []byte("pdf")},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/applicants/%d", applicant.ID), nil)
	req.Header.Set("Authorization", applicantToken)
	resp := doRequest(t, app, req, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
