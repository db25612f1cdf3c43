package integration_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
)

func TestLoginWithWrongPasswordLeavesNoSession(t *testing.T) {
	app, _ := setupSchoolApp(t)
	client := newClient(t, app)

	resp := client.login("admin", "wrong")
	requireStatus(t, resp, fiber.StatusUnauthorized)
	require.Nil(t, client.cookie)

	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "Invalid credentials", body["error"])

	resp = client.do(http.MethodGet, "/api/auth/me", nil)
	requireStatus(t, resp, fiber.StatusUnauthorized)

	resp = client.login("ghost", "admin123")
	requireStatus(t, resp, fiber.StatusUnauthorized)

	resp = client.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"})
	requireStatus(t, resp, fiber.StatusBadRequest)
	decodeBody(t, resp, &body)
	require.Equal(t, "Username and password required", body["error"])
}

func TestLoginMeLogout(t *testing.T) {
	app, _ := setupSchoolApp(t)
	client := newClient(t, app)

	resp := client.login("admin", "admin123")
	requireStatus(t, resp, fiber.StatusOK)

	var login dto.LoginResponse
	decodeBody(t, resp, &login)
	require.True(t, login.Success)
	require.Equal(t, models.RoleAdmin, login.User.Role)
	require.Equal(t, "System Administrator", login.User.Name)

	resp = client.do(http.MethodGet, "/api/auth/me", nil)
	requireStatus(t, resp, fiber.StatusOK)
	var me dto.Principal
	decodeBody(t, resp, &me)
	require.Equal(t, login.User, me)

	stale := client.cookie
	resp = client.do(http.MethodPost, "/api/auth/logout", nil)
	requireStatus(t, resp, fiber.StatusOK)

	client.cookie = stale
	resp = client.do(http.MethodGet, "/api/auth/me", nil)
	requireStatus(t, resp, fiber.StatusUnauthorized)
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	app, _ := setupSchoolApp(t)
	client := newClient(t, app)

	for _, path := range []string{"/api/dashboard/stats", "/api/students", "/api/fees", "/api/announcements"} {
		resp := client.do(http.MethodGet, path, nil)
		requireStatus(t, resp, fiber.StatusUnauthorized)
	}

	resp := client.do(http.MethodGet, "/api/health", nil)
	requireStatus(t, resp, fiber.StatusOK)
}

func TestStudentRoleIsGated(t *testing.T) {
	app, _ := setupSchoolApp(t)
	client := loggedIn(t, app, "alice", "student123")

	forbidden := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/api/students", map[string]string{"name": "X", "username": "x", "password": "x", "roll_number": "S100"}},
		{http.MethodPut, "/api/students/1", map[string]string{"address": "somewhere"}},
		{http.MethodDelete, "/api/students/2", nil},
		{http.MethodPost, "/api/teachers", map[string]string{"name": "T", "username": "t", "password": "t"}},
		{http.MethodPost, "/api/classes", map[string]string{"name": "Class 1-A", "grade": "1"}},
		{http.MethodPost, "/api/attendance", map[string]interface{}{"records": []interface{}{}}},
		{http.MethodPost, "/api/grades", map[string]interface{}{"student_id": 1, "subject_id": 1, "exam_type": "Quiz"}},
		{http.MethodPost, "/api/fees", map[string]interface{}{"student_id": 1, "fee_type": "Tuition", "amount": 100}},
		{http.MethodPut, "/api/fees/1/pay", nil},
		{http.MethodPost, "/api/announcements", map[string]string{"title": "Hi", "content": "there"}},
		{http.MethodPost, "/api/timetable", map[string]interface{}{"class_id": 1}},
		{http.MethodGet, "/api/activity", nil},
	}
	for _, tc := range forbidden {
		resp := client.do(tc.method, tc.path, tc.body)
		requireStatus(t, resp, fiber.StatusForbidden)
	}

	allowed := []string{
		"/api/dashboard/stats",
		"/api/students",
		"/api/students/1",
		"/api/teachers",
		"/api/classes",
		"/api/subjects",
		"/api/grades",
		"/api/fees",
		"/api/announcements",
		"/api/timetable",
		"/api/attendance/report",
	}
	for _, path := range allowed {
		resp := client.do(http.MethodGet, path, nil)
		requireStatus(t, resp, fiber.StatusOK)
	}

	admin := loggedIn(t, app, "admin", "admin123")
	resp := admin.do(http.MethodGet, "/api/students/2", nil)
	requireStatus(t, resp, fiber.StatusOK)
}

func TestAdminCreatesAndSearchesStudent(t *testing.T) {
	app, _ := setupSchoolApp(t)
	admin := loggedIn(t, app, "admin", "admin123")

	resp := admin.do(http.MethodPost, "/api/students", map[string]interface{}{
		"name":        "Eve Green",
		"username":    "eve",
		"password":    "student123",
		"roll_number": "S005",
		"class_id":    1,
	})
	requireStatus(t, resp, fiber.StatusOK)

	resp = admin.do(http.MethodGet, "/api/students?search=eve", nil)
	requireStatus(t, resp, fiber.StatusOK)
	var found []models.StudentDetail
	decodeBody(t, resp, &found)
	require.Len(t, found, 1)
	require.Equal(t, "S005", found[0].RollNumber)
	require.NotNil(t, found[0].ClassName)
	require.Equal(t, "Class 10-A", *found[0].ClassName)

	resp = admin.do(http.MethodGet, "/api/students?search=S00", nil)
	requireStatus(t, resp, fiber.StatusOK)
	decodeBody(t, resp, &found)
	require.Len(t, found, 5)
	require.Equal(t, "S001", found[0].RollNumber)

	resp = admin.do(http.MethodPost, "/api/students", map[string]interface{}{"name": "Nobody"})
	requireStatus(t, resp, fiber.StatusBadRequest)
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "missing required fields: username, password, roll_number", body["error"])

	resp = admin.do(http.MethodPost, "/api/students", map[string]interface{}{
		"name": "Eve Again", "username": "eve", "password": "x", "roll_number": "S006",
	})
	requireStatus(t, resp, fiber.StatusBadRequest)

	resp = admin.do(http.MethodGet, "/api/students?search=S006", nil)
	requireStatus(t, resp, fiber.StatusOK)
	decodeBody(t, resp, &found)
	require.Empty(t, found)

	eve := loggedIn(t, app, "eve", "student123")
	resp = eve.do(http.MethodGet, "/api/auth/me", nil)
	requireStatus(t, resp, fiber.StatusOK)
}

func TestFeeCreateThenPay(t *testing.T) {
	app, _ := setupSchoolApp(t)
	admin := loggedIn(t, app, "admin", "admin123")

	resp := admin.do(http.MethodPost, "/api/fees", map[string]interface{}{
		"student_id": 1, "fee_type": "Tuition", "amount": 500, "due_date": "2024-04-01",
	})
	requireStatus(t, resp, fiber.StatusOK)

	resp = admin.do(http.MethodGet, "/api/fees?student_id=1", nil)
	requireStatus(t, resp, fiber.StatusOK)
	var fees []models.FeeDetail
	decodeBody(t, resp, &fees)
	require.Len(t, fees, 1)
	require.Equal(t, models.FeeStatusPending, fees[0].Status)
	require.Nil(t, fees[0].PaidDate)
	feeID := fees[0].ID

	resp = admin.do(http.MethodPut, "/api/fees/"+itoa(feeID)+"/pay", nil)
	requireStatus(t, resp, fiber.StatusOK)

	resp = admin.do(http.MethodGet, "/api/fees?status=paid", nil)
	requireStatus(t, resp, fiber.StatusOK)
	decodeBody(t, resp, &fees)
	require.Len(t, fees, 1)
	require.NotNil(t, fees[0].PaidDate)
	require.Equal(t, time.Now().Format("2006-01-02"), *fees[0].PaidDate)

	resp = admin.do(http.MethodPut, "/api/fees/9999/pay", nil)
	requireStatus(t, resp, fiber.StatusNotFound)

	resp = admin.do(http.MethodPost, "/api/fees", map[string]interface{}{"student_id": 1, "fee_type": "Bus", "amount": 0})
	requireStatus(t, resp, fiber.StatusBadRequest)
}

func TestDeleteStudentCascades(t *testing.T) {
	app, db := setupSchoolApp(t)
	admin := loggedIn(t, app, "admin", "admin123")

	resp := admin.do(http.MethodPost, "/api/attendance", map[string]interface{}{
		"records": []map[string]interface{}{{"student_id": 1, "class_id": 1, "date": "2024-03-01", "status": "present"}},
	})
	requireStatus(t, resp, fiber.StatusOK)
	resp = admin.do(http.MethodPost, "/api/grades", map[string]interface{}{"student_id": 1, "subject_id": 1, "exam_type": "Midterm", "marks_obtained": 88})
	requireStatus(t, resp, fiber.StatusOK)
	resp = admin.do(http.MethodPost, "/api/fees", map[string]interface{}{"student_id": 1, "fee_type": "Tuition", "amount": 100})
	requireStatus(t, resp, fiber.StatusOK)

	resp = admin.do(http.MethodDelete, "/api/students/1", nil)
	requireStatus(t, resp, fiber.StatusOK)

	resp = admin.do(http.MethodGet, "/api/students/1", nil)
	requireStatus(t, resp, fiber.StatusNotFound)

	for _, model := range []interface{}{&models.Attendance{}, &models.Grade{}, &models.Fee{}} {
		var count int64
		require.NoError(t, db.Model(model).Where("student_id = ?", 1).Count(&count).Error)
		require.Zero(t, count)
	}
	var users int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "alice").Count(&users).Error)
	require.Zero(t, users)

	resp = admin.do(http.MethodDelete, "/api/students/1", nil)
	requireStatus(t, resp, fiber.StatusNotFound)
}

func TestAttendanceBatchIsIdempotentAndAtomic(t *testing.T) {
	app, db := setupSchoolApp(t)
	teacher := loggedIn(t, app, "smith", "teacher123")

	batch := map[string]interface{}{
		"records": []map[string]interface{}{
			{"student_id": 1, "class_id": 1, "date": "2024-03-01", "status": "present"},
			{"student_id": 2, "class_id": 1, "date": "2024-03-01", "status": "absent"},
		},
	}
	for i := 0; i < 2; i++ {
		resp := teacher.do(http.MethodPost, "/api/attendance", batch)
		requireStatus(t, resp, fiber.StatusOK)
	}

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Count(&count).Error)
	require.Equal(t, int64(2), count)

	resp := teacher.do(http.MethodPost, "/api/attendance", map[string]interface{}{
		"records": []map[string]interface{}{
			{"student_id": 1, "class_id": 1, "date": "2024-03-01", "status": "late"},
			{"student_id": 2, "class_id": 1, "date": "2024-03-01", "status": "sleeping"},
		},
	})
	requireStatus(t, resp, fiber.StatusBadRequest)

	resp = teacher.do(http.MethodGet, "/api/attendance?class_id=1&date=2024-03-01", nil)
	requireStatus(t, resp, fiber.StatusOK)
	var roster []models.AttendanceRosterEntry
	decodeBody(t, resp, &roster)
	require.Len(t, roster, 2)
	require.Equal(t, "present", *roster[0].Status)
	require.Equal(t, "absent", *roster[1].Status)

	resp = teacher.do(http.MethodGet, "/api/attendance", nil)
	requireStatus(t, resp, fiber.StatusBadRequest)
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "class_id and date required", body["error"])

	resp = teacher.do(http.MethodPost, "/api/attendance", map[string]interface{}{})
	requireStatus(t, resp, fiber.StatusBadRequest)
	decodeBody(t, resp, &body)
	require.Equal(t, "records array required", body["error"])
}

func TestAnnouncementsFollowAudience(t *testing.T) {
	app, _ := setupSchoolApp(t)
	teacher := loggedIn(t, app, "smith", "teacher123")

	resp := teacher.do(http.MethodPost, "/api/announcements", map[string]string{
		"title": "Staff meeting", "content": "<script>alert(1)</script>Room 4", "target_role": "teacher",
	})
	requireStatus(t, resp, fiber.StatusOK)

	resp = teacher.do(http.MethodGet, "/api/announcements", nil)
	requireStatus(t, resp, fiber.StatusOK)
	var items []models.AnnouncementDetail
	decodeBody(t, resp, &items)
	require.Len(t, items, 3)
	require.Equal(t, "Staff meeting", items[0].Title)
	require.Equal(t, "John Smith", items[0].AuthorName)
	require.NotContains(t, items[0].Content, "<script>")

	student := loggedIn(t, app, "bob", "student123")
	resp = student.do(http.MethodGet, "/api/announcements", nil)
	requireStatus(t, resp, fiber.StatusOK)
	decodeBody(t, resp, &items)
	require.Len(t, items, 2)
}

func TestTeacherDeleteUnassignsClasses(t *testing.T) {
	app, _ := setupSchoolApp(t)
	admin := loggedIn(t, app, "admin", "admin123")

	resp := admin.do(http.MethodDelete, "/api/teachers/2", nil)
	requireStatus(t, resp, fiber.StatusOK)

	resp = admin.do(http.MethodGet, "/api/classes/1", nil)
	requireStatus(t, resp, fiber.StatusOK)
	var class models.ClassDetail
	decodeBody(t, resp, &class)
	require.Nil(t, class.TeacherID)
	require.Nil(t, class.TeacherName)

	resp = admin.do(http.MethodDelete, "/api/teachers/1", nil)
	requireStatus(t, resp, fiber.StatusNotFound)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
