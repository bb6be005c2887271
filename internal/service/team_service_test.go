package service_test

import (
	"context"
	"testing"

	"tasktrack/internal/apperr"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
	"tasktrack/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_Create_AdminOnly(t *testing.T) {
	// Arrange
	teams := new(MockTeamRepository)
	svc := service.NewTeamService(teams, new(MockEmployeeRepository), false)

	// Act
	_, err := svc.Create(context.Background(), "Backend", employee(model.RoleEmployee))

	// Assert
	var ferr *apperr.ForbiddenError
	assert.ErrorAs(t, err, &ferr)
	teams.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamService_Create_ByAdmin(t *testing.T) {
	// Arrange
	teams := new(MockTeamRepository)
	admin := employee(model.RoleAdmin)
	teams.On("Create", mock.Anything, mock.AnythingOfType("*model.Team"), (*model.Employee)(nil)).Return(nil)

	svc := service.NewTeamService(teams, new(MockEmployeeRepository), false)

	// Act
	team, err := svc.Create(context.Background(), "Backend", admin)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Backend", team.Name)
	teams.AssertExpectations(t)
}

func TestTeamService_Create_AutoEnroll(t *testing.T) {
	// Arrange: при включенном auto-enroll создатель становится первым участником
	teams := new(MockTeamRepository)
	admin := employee(model.RoleAdmin)
	teams.On("Create", mock.Anything, mock.AnythingOfType("*model.Team"), admin).Return(nil)

	svc := service.NewTeamService(teams, new(MockEmployeeRepository), true)

	// Act
	_, err := svc.Create(context.Background(), "Backend", admin)

	// Assert
	assert.NoError(t, err)
	teams.AssertExpectations(t)
}

func TestTeamService_Create_EmptyName(t *testing.T) {
	// Arrange
	svc := service.NewTeamService(new(MockTeamRepository), new(MockEmployeeRepository), false)

	// Act
	_, err := svc.Create(context.Background(), "   ", employee(model.RoleAdmin))

	// Assert
	var verr *apperr.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages(), "name is required")
}

func TestTeamService_UpdateDelete_AdminOnly(t *testing.T) {
	// Arrange
	teams := new(MockTeamRepository)
	svc := service.NewTeamService(teams, new(MockEmployeeRepository), false)
	actor := employee(model.RoleEmployee)
	teamID := uuid.New()

	// Act
	_, updateErr := svc.Update(context.Background(), teamID, "Renamed", actor)
	deleteErr := svc.Delete(context.Background(), teamID, actor)

	// Assert: отказ независимо от отношения к команде
	var ferr *apperr.ForbiddenError
	assert.ErrorAs(t, updateErr, &ferr)
	assert.ErrorAs(t, deleteErr, &ferr)
	teams.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	teams.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTeamService_Update_NotFound(t *testing.T) {
	// Arrange
	teams := new(MockTeamRepository)
	missingID := uuid.New()
	teams.On("GetByID", mock.Anything, missingID).Return(nil, nil)

	svc := service.NewTeamService(teams, new(MockEmployeeRepository), false)

	// Act
	_, err := svc.Update(context.Background(), missingID, "Renamed", employee(model.RoleAdmin))

	// Assert
	assert.ErrorIs(t, err, repository.ErrTeamNotFound)
}

func TestTeamService_Members_TeamNotFound(t *testing.T) {
	// Arrange
	teams := new(MockTeamRepository)
	missingID := uuid.New()
	teams.On("GetByID", mock.Anything, missingID).Return(nil, nil)

	svc := service.NewTeamService(teams, new(MockEmployeeRepository), false)

	// Act
	_, err := svc.Members(context.Background(), missingID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTeamNotFound)
}

func TestTeamService_TeamsForEmployee_EmployeeNotFound(t *testing.T) {
	// Arrange
	employees := new(MockEmployeeRepository)
	missingID := uuid.New()
	employees.On("GetByID", mock.Anything, missingID).Return(nil, nil)

	svc := service.NewTeamService(new(MockTeamRepository), employees, false)

	// Act
	_, err := svc.TeamsForEmployee(context.Background(), missingID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}

func TestTeamService_UpdateMembers_AdminOnly(t *testing.T) {
	// Arrange
	teams := new(MockTeamRepository)
	svc := service.NewTeamService(teams, new(MockEmployeeRepository), false)

	// Act
	_, err := svc.UpdateMembers(context.Background(), uuid.New(), []uuid.UUID{uuid.New()}, service.ModeReplace, employee(model.RoleEmployee))

	// Assert
	var ferr *apperr.ForbiddenError
	assert.ErrorAs(t, err, &ferr)
	teams.AssertNotCalled(t, "ReplaceMembers", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamService_UpdateMembers_ReplaceBecomesExactSet(t *testing.T) {
	// Arrange: в команде [A, B], заменяем на [C]
	teams := new(MockTeamRepository)
	employees := new(MockEmployeeRepository)
	admin := employee(model.RoleAdmin)
	team := &model.Team{ID: uuid.New(), Name: "Backend"}
	memberC := model.Employee{ID: uuid.New(), Name: "C", Role: model.RoleEmployee}

	teams.On("GetByID", mock.Anything, team.ID).Return(team, nil)
	employees.On("GetByIDs", mock.Anything, []uuid.UUID{memberC.ID}).Return([]model.Employee{memberC}, nil)
	teams.On("ReplaceMembers", mock.Anything, team.ID, []uuid.UUID{memberC.ID}).Return(nil)
	teams.On("GetMembers", mock.Anything, team.ID).Return([]model.Employee{memberC}, nil)

	svc := service.NewTeamService(teams, employees, false)

	// Act
	members, err := svc.UpdateMembers(context.Background(), team.ID, []uuid.UUID{memberC.ID}, service.ModeReplace, admin)

	// Assert: состав стал ровно {C}
	assert.NoError(t, err)
	assert.Len(t, members, 1)
	assert.Equal(t, memberC.ID, members[0].ID)
	teams.AssertExpectations(t)
}

func TestTeamService_UpdateMembers_AdditiveSkipsExisting(t *testing.T) {
	// Arrange: в команде [A, B], добавляем [A, C], вставляется только C
	teams := new(MockTeamRepository)
	employees := new(MockEmployeeRepository)
	admin := employee(model.RoleAdmin)
	team := &model.Team{ID: uuid.New(), Name: "Backend"}
	memberA := model.Employee{ID: uuid.New(), Name: "A", Role: model.RoleEmployee}
	memberB := model.Employee{ID: uuid.New(), Name: "B", Role: model.RoleEmployee}
	memberC := model.Employee{ID: uuid.New(), Name: "C", Role: model.RoleEmployee}

	teams.On("GetByID", mock.Anything, team.ID).Return(team, nil)
	teams.On("GetMemberIDs", mock.Anything, team.ID).Return([]uuid.UUID{memberA.ID, memberB.ID}, nil)
	employees.On("GetByIDs", mock.Anything, []uuid.UUID{memberC.ID}).Return([]model.Employee{memberC}, nil)
	teams.On("AddMembers", mock.Anything, team.ID, []uuid.UUID{memberC.ID}).Return(nil)
	teams.On("GetMembers", mock.Anything, team.ID).Return([]model.Employee{memberA, memberB, memberC}, nil)

	svc := service.NewTeamService(teams, employees, false)

	// Act
	members, err := svc.UpdateMembers(context.Background(), team.ID, []uuid.UUID{memberA.ID, memberC.ID}, service.ModeAdditive, admin)

	// Assert: состав стал {A, B, C}
	assert.NoError(t, err)
	assert.Len(t, members, 3)
	teams.AssertExpectations(t)
	teams.AssertNotCalled(t, "ReplaceMembers", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamService_UpdateMembers_EmptyListReplaceClears(t *testing.T) {
	// Arrange
	teams := new(MockTeamRepository)
	admin := employee(model.RoleAdmin)
	team := &model.Team{ID: uuid.New(), Name: "Backend"}

	teams.On("GetByID", mock.Anything, team.ID).Return(team, nil)
	teams.On("ReplaceMembers", mock.Anything, team.ID, []uuid.UUID{}).Return(nil)
	teams.On("GetMembers", mock.Anything, team.ID).Return([]model.Employee{}, nil)

	svc := service.NewTeamService(teams, new(MockEmployeeRepository), false)

	// Act
	members, err := svc.UpdateMembers(context.Background(), team.ID, []uuid.UUID{}, service.ModeReplace, admin)

	// Assert: команда осталась без участников
	assert.NoError(t, err)
	assert.Empty(t, members)
	teams.AssertExpectations(t)
}

func TestTeamService_UpdateMembers_EmptyListAdditiveRejected(t *testing.T) {
	// Arrange
	teams := new(MockTeamRepository)
	admin := employee(model.RoleAdmin)
	team := &model.Team{ID: uuid.New(), Name: "Backend"}
	teams.On("GetByID", mock.Anything, team.ID).Return(team, nil)

	svc := service.NewTeamService(teams, new(MockEmployeeRepository), false)

	// Act
	_, err := svc.UpdateMembers(context.Background(), team.ID, []uuid.UUID{}, service.ModeAdditive, admin)

	// Assert
	var verr *apperr.ValidationError
	assert.ErrorAs(t, err, &verr)
	teams.AssertNotCalled(t, "AddMembers", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamService_UpdateMembers_DefaultModeIsAdditive(t *testing.T) {
	// Arrange: пустой режим трактуется как additive
	teams := new(MockTeamRepository)
	admin := employee(model.RoleAdmin)
	team := &model.Team{ID: uuid.New(), Name: "Backend"}
	teams.On("GetByID", mock.Anything, team.ID).Return(team, nil)

	svc := service.NewTeamService(teams, new(MockEmployeeRepository), false)

	// Act
	_, err := svc.UpdateMembers(context.Background(), team.ID, []uuid.UUID{}, "", admin)

	// Assert: пустой список в additive-режиме даёт ошибку валидации
	var verr *apperr.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestTeamService_UpdateMembers_UnknownMode(t *testing.T) {
	// Arrange
	svc := service.NewTeamService(new(MockTeamRepository), new(MockEmployeeRepository), false)

	// Act
	_, err := svc.UpdateMembers(context.Background(), uuid.New(), []uuid.UUID{uuid.New()}, "merge", employee(model.RoleAdmin))

	// Assert
	var verr *apperr.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages(), "mode must be additive or replace")
}

func TestTeamService_UpdateMembers_MissingEmployeeListed(t *testing.T) {
	// Arrange: один из идентификаторов не существует
	teams := new(MockTeamRepository)
	employees := new(MockEmployeeRepository)
	admin := employee(model.RoleAdmin)
	team := &model.Team{ID: uuid.New(), Name: "Backend"}
	existing := model.Employee{ID: uuid.New(), Name: "A", Role: model.RoleEmployee}
	missingID := uuid.New()

	teams.On("GetByID", mock.Anything, team.ID).Return(team, nil)
	employees.On("GetByIDs", mock.Anything, []uuid.UUID{existing.ID, missingID}).Return([]model.Employee{existing}, nil)

	svc := service.NewTeamService(teams, employees, false)

	// Act
	_, err := svc.UpdateMembers(context.Background(), team.ID, []uuid.UUID{existing.ID, missingID}, service.ModeReplace, admin)

	// Assert: отсутствующий id назван, ничего не записано
	var nferr *apperr.NotFoundError
	assert.ErrorAs(t, err, &nferr)
	assert.Contains(t, nferr.Error(), missingID.String())
	teams.AssertNotCalled(t, "ReplaceMembers", mock.Anything, mock.Anything, mock.Anything)
}
