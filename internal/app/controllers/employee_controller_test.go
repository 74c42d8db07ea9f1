package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/ryalynne/hrms/internal/app/models"
	"github.com/ryalynne/hrms/internal/app/models/dto"
	"github.com/ryalynne/hrms/internal/pkg/apperrors"
	"github.com/ryalynne/hrms/internal/pkg/spreadsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEmployeeRouter(svc *mockEmployeeService) *gin.Engine {
	ctrl := NewEmployeeController(svc, zerolog.Nop())
	r := gin.New()
	r.GET("/users", ctrl.ListEmployees)
	r.GET("/users/export", ctrl.ExportEmployees)
	r.GET("/users/:id", ctrl.GetEmployee)
	r.POST("/users", ctrl.CreateEmployee)
	r.PATCH("/users/:id", ctrl.UpdateEmployee)
	r.DELETE("/users/:id", ctrl.DeleteEmployee)
	return r
}

func employeeDetail() *models.EmployeeDetail {
	return &models.EmployeeDetail{
		Employee: models.Employee{
			ID: 7, FullName: "Ada Lovelace", Email: "ada@example.com", Gender: models.GenderFemale, PositionID: 3,
		},
		JobID: 2, JobTitle: "Engineering", Position: "Junior", Salary: 30000, AnnualSalary: 360000,
	}
}

func TestListEmployees(t *testing.T) {
	svc := new(mockEmployeeService)
	svc.On("ListEmployees", mock.Anything).Return([]*models.EmployeeDetail{employeeDetail()}, nil)

	w := doRequest(newEmployeeRouter(svc), http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada Lovelace", rows[0]["full_name"])
	assert.Equal(t, "Engineering", rows[0]["Job_Title"])
	assert.Equal(t, float64(360000), rows[0]["anual_salary"])
	assert.Equal(t, float64(3), rows[0]["salary_id"])
}

func TestListEmployeesEmptyIsArray(t *testing.T) {
	svc := new(mockEmployeeService)
	svc.On("ListEmployees", mock.Anything).Return([]*models.EmployeeDetail{}, nil)

	w := doRequest(newEmployeeRouter(svc), http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetEmployee(t *testing.T) {
	svc := new(mockEmployeeService)
	svc.On("GetEmployeeByID", mock.Anything, int64(7)).Return(employeeDetail(), nil)
	svc.On("GetEmployeeByID", mock.Anything, int64(8)).Return(nil, apperrors.ErrEmployeeNotFound)
	r := newEmployeeRouter(svc)

	w := doRequest(r, http.MethodGet, "/users/7", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var got dto.EmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, dto.NewEmployeeResponse(employeeDetail()), got)

	w = doRequest(r, http.MethodGet, "/users/8", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeError(t, w).Error.Message)

	w = doRequest(r, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Error.Code)
}

func TestCreateEmployee(t *testing.T) {
	svc := new(mockEmployeeService)
	svc.On("CreateEmployee", mock.Anything, &models.Employee{
		FullName: "Ada Lovelace", Email: "ada@example.com", Gender: models.GenderFemale, PositionID: 3,
	}).Return(employeeDetail(), nil)

	w := doRequest(newEmployeeRouter(svc), http.MethodPost, "/users",
		`{"name":"Ada Lovelace","email":"ada@example.com","gender":"Female","position_id":"3"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var got dto.EmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	svc.AssertExpectations(t)
}

func TestCreateEmployeeInvalidBody(t *testing.T) {
	svc := new(mockEmployeeService)

	w := doRequest(newEmployeeRouter(svc), http.MethodPost, "/users",
		`{"name":"Ada","email":"ada@example.com","gender":"Robot","position_id":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "gender", body.Error.Field)
	svc.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}

func TestUpdateEmployee(t *testing.T) {
	svc := new(mockEmployeeService)
	svc.On("UpdateEmployee", mock.Anything, mock.MatchedBy(func(e *models.Employee) bool {
		return e.ID == 7 && e.PositionID == 4
	})).Return(nil)

	w := doRequest(newEmployeeRouter(svc), http.MethodPatch, "/users/7",
		map[string]interface{}{"name": "Ada", "email": "ada@example.com", "gender": "Female", "position_id": 4})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"User Updated"}`, w.Body.String())
}

func TestDeleteEmployee(t *testing.T) {
	svc := new(mockEmployeeService)
	svc.On("DeleteEmployee", mock.Anything, int64(7)).Return(nil)
	svc.On("DeleteEmployee", mock.Anything, int64(9)).Return(apperrors.ErrEmployeeNotFound)
	r := newEmployeeRouter(svc)

	w := doRequest(r, http.MethodDelete, "/users/7", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"User Deleted"}`, w.Body.String())

	w = doRequest(r, http.MethodDelete, "/users/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportEmployees(t *testing.T) {
	svc := new(mockEmployeeService)
	svc.On("ExportEmployees", mock.Anything).Return([]byte("xlsx-bytes"), nil)

	w := doRequest(newEmployeeRouter(svc), http.MethodGet, "/users/export", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, spreadsheet.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="employees.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}

func TestEmployeeIDsPastInt4(t *testing.T) {
	svc := new(mockEmployeeService)
	r := newEmployeeRouter(svc)

	w := doRequest(r, http.MethodGet, "/users/3000000000", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Error.Code)

	w = doRequest(r, http.MethodPost, "/users",
		`{"name":"Ada","email":"ada@example.com","gender":"Female","position_id":"3000000000"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "position_id", decodeError(t, w).Error.Field)

	svc.AssertNotCalled(t, "GetEmployeeByID", mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
}
