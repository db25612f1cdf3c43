package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
)

type mockAttendanceService struct {
	rosterReq dto.AttendanceRosterRequest
	markReq   dto.AttendanceMarkRequest
	reportReq dto.AttendanceReportRequest
	roster    []models.AttendanceRosterEntry
	err       error
	markCalls int
}

func (m *mockAttendanceService) Roster(_ context.Context, req dto.AttendanceRosterRequest) ([]models.AttendanceRosterEntry, error) {
	m.rosterReq = req
	if m.err != nil {
		return nil, m.err
	}
	if req.ClassID == 0 || req.Date == "" {
		return nil, service.NewValidationError("class_id and date required")
	}
	return m.roster, nil
}

func (m *mockAttendanceService) Mark(_ context.Context, req dto.AttendanceMarkRequest, _ dto.Principal) (int, error) {
	m.markCalls++
	m.markReq = req
	if m.err != nil {
		return 0, m.err
	}
	return len(req.Records), nil
}

func (m *mockAttendanceService) Report(_ context.Context, req dto.AttendanceReportRequest) ([]models.AttendanceDetail, error) {
	m.reportReq = req
	return []models.AttendanceDetail{}, m.err
}

func newAttendanceApp(svc service.AttendanceService, principal *dto.Principal) *fiber.App {
	app := newTestApp(principal)
	handler.NewAttendanceHandler(svc, testLogger()).Register(app.Group("/api/attendance"))
	return app
}

func TestAttendanceHandler_RosterRequiresParams(t *testing.T) {
	app := newAttendanceApp(&mockAttendanceService{}, teacherPrincipal)

	resp := performJSON(t, app, http.MethodGet, "/api/attendance?class_id=1", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "class_id and date required", errorMessage(t, resp))
}

func TestAttendanceHandler_RosterIncludesUnmarked(t *testing.T) {
	status := models.AttendancePresent
	svc := &mockAttendanceService{roster: []models.AttendanceRosterEntry{
		{StudentID: 1, RollNumber: "S001", StudentName: "Alice", Status: &status},
		{StudentID: 2, RollNumber: "S002", StudentName: "Bob"},
	}}
	app := newAttendanceApp(svc, studentPrincipal)

	resp := performJSON(t, app, http.MethodGet, "/api/attendance?class_id=1&date=2024-03-01", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []map[string]interface{}
	decodeResponse(t, resp, &body)
	require.Len(t, body, 2)
	require.Equal(t, "present", body[0]["status"])
	require.Nil(t, body[1]["status"])
	require.Equal(t, uint(1), svc.rosterReq.ClassID)
	require.Equal(t, "2024-03-01", svc.rosterReq.Date)
}

func TestAttendanceHandler_MarkRequiresStaff(t *testing.T) {
	svc := &mockAttendanceService{}
	app := newAttendanceApp(svc, studentPrincipal)

	resp := performJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{"records": []interface{}{}})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.Zero(t, svc.markCalls)
}

func TestAttendanceHandler_MarkRejectsMalformedBody(t *testing.T) {
	app := newAttendanceApp(&mockAttendanceService{}, teacherPrincipal)

	resp := performJSON(t, app, http.MethodPost, "/api/attendance", `{"records": "nope"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "records array required", errorMessage(t, resp))
}

func TestAttendanceHandler_MarkSuccess(t *testing.T) {
	svc := &mockAttendanceService{}
	app := newAttendanceApp(svc, teacherPrincipal)

	resp := performJSON(t, app, http.MethodPost, "/api/attendance", map[string]interface{}{
		"records": []map[string]interface{}{
			{"student_id": 1, "class_id": 1, "date": "2024-03-01", "status": "present"},
			{"student_id": 2, "class_id": 1, "date": "2024-03-01", "status": "late"},
		},
	})
	requireSuccess(t, resp)
	require.Len(t, svc.markReq.Records, 2)
	require.Equal(t, "late", svc.markReq.Records[1].Status)
}

func TestAttendanceHandler_ReportFilters(t *testing.T) {
	svc := &mockAttendanceService{}
	app := newAttendanceApp(svc, adminPrincipal)

	resp := performJSON(t, app, http.MethodGet, "/api/attendance/report?student_id=2&status=absent&from=2024-03-01&to=2024-03-31", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []models.AttendanceDetail
	decodeResponse(t, resp, &body)
	require.Empty(t, body)
	require.NotNil(t, svc.reportReq.StudentID)
	require.Equal(t, uint(2), *svc.reportReq.StudentID)
	require.Nil(t, svc.reportReq.ClassID)
	require.Equal(t, "absent", svc.reportReq.Status)
	require.Equal(t, "2024-03-31", svc.reportReq.To)
}

type mockFeeService struct {
	err     error
	lastID  uint
	lastReq dto.FeeListRequest
	paid    int
}

func (m *mockFeeService) List(_ context.Context, req dto.FeeListRequest) ([]models.FeeDetail, error) {
	m.lastReq = req
	return []models.FeeDetail{}, m.err
}

func (m *mockFeeService) Create(context.Context, dto.FeeCreateRequest, dto.Principal) error {
	return m.err
}

func (m *mockFeeService) Pay(_ context.Context, id uint, _ dto.Principal) error {
	m.lastID = id
	m.paid++
	return m.err
}

func (m *mockFeeService) Delete(_ context.Context, id uint, _ dto.Principal) error {
	m.lastID = id
	return m.err
}

func TestFeeHandler_PayRequiresAdmin(t *testing.T) {
	svc := &mockFeeService{}
	app := newTestApp(teacherPrincipal)
	handler.NewFeeHandler(svc, testLogger()).Register(app.Group("/api/fees"))

	resp := performJSON(t, app, http.MethodPut, "/api/fees/5/pay", nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.Zero(t, svc.paid)
}

func TestFeeHandler_PayMissingFee(t *testing.T) {
	svc := &mockFeeService{err: fmt.Errorf("fee %w", service.ErrNotFound)}
	app := newTestApp(adminPrincipal)
	handler.NewFeeHandler(svc, testLogger()).Register(app.Group("/api/fees"))

	resp := performJSON(t, app, http.MethodPut, "/api/fees/5/pay", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, uint(5), svc.lastID)
}

func TestFeeHandler_ListStatusFilter(t *testing.T) {
	svc := &mockFeeService{}
	app := newTestApp(studentPrincipal)
	handler.NewFeeHandler(svc, testLogger()).Register(app.Group("/api/fees"))

	resp := performJSON(t, app, http.MethodGet, "/api/fees?status=overdue", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "overdue", svc.lastReq.Status)
}

func TestFeeHandler_UnexpectedErrorIsMasked(t *testing.T) {
	svc := &mockFeeService{err: errors.New("disk I/O error")}
	app := newTestApp(adminPrincipal)
	handler.NewFeeHandler(svc, testLogger()).Register(app.Group("/api/fees"))

	resp := performJSON(t, app, http.MethodGet, "/api/fees", nil)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "Internal server error", errorMessage(t, resp))
}

type mockAnnouncementService struct {
	viewer  dto.Principal
	author  dto.Principal
	payload dto.AnnouncementCreateRequest
}

func (m *mockAnnouncementService) ListFor(_ context.Context, viewer dto.Principal) ([]models.AnnouncementDetail, error) {
	m.viewer = viewer
	return []models.AnnouncementDetail{{ID: 1, Title: "Welcome", TargetRole: models.TargetAll, AuthorName: "System Administrator"}}, nil
}

func (m *mockAnnouncementService) Create(_ context.Context, payload dto.AnnouncementCreateRequest, author dto.Principal) error {
	m.payload = payload
	m.author = author
	return nil
}

func (m *mockAnnouncementService) Delete(context.Context, uint, dto.Principal) error {
	return nil
}

func TestAnnouncementHandler_ListUsesViewerRole(t *testing.T) {
	svc := &mockAnnouncementService{}
	app := newTestApp(studentPrincipal)
	handler.NewAnnouncementHandler(svc, testLogger()).Register(app.Group("/api/announcements"))

	resp := performJSON(t, app, http.MethodGet, "/api/announcements", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, models.RoleStudent, svc.viewer.Role)

	var body []models.AnnouncementDetail
	decodeResponse(t, resp, &body)
	require.Len(t, body, 1)
	require.Equal(t, "System Administrator", body[0].AuthorName)
}

func TestAnnouncementHandler_CreateUsesSessionAuthor(t *testing.T) {
	svc := &mockAnnouncementService{}
	app := newTestApp(teacherPrincipal)
	handler.NewAnnouncementHandler(svc, testLogger()).Register(app.Group("/api/announcements"))

	resp := performJSON(t, app, http.MethodPost, "/api/announcements", map[string]interface{}{
		"title": "Exam", "content": "Monday", "target_role": "student", "author_id": 99,
	})
	requireSuccess(t, resp)
	require.Equal(t, teacherPrincipal.ID, svc.author.ID)
	require.Equal(t, "student", svc.payload.TargetRole)
}
