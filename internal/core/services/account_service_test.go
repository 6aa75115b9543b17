package services_test

import (
	"context"
	"testing"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/core/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	projectRepo *MockProjectRepository
	service     portssvc.AccountService
	ctx         context.Context
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.projectRepo = new(MockProjectRepository)
	s.service = services.NewAccountService(s.accountRepo, s.projectRepo)
	s.ctx = context.Background()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateTreasuryAccount() {
	s.accountRepo.On("SaveTreasuryAccount", mock.Anything, mock.MatchedBy(func(a domain.TreasuryAccount) bool {
		return a.Title == "Main Cash" &&
			a.Kind == domain.TreasuryCash &&
			a.InitialBalance.Equal(decimal.NewFromInt(1000)) &&
			a.IsActive &&
			a.AccountID != "" &&
			a.CreatedBy == "user-1"
	})).Return(nil)

	account, err := s.service.CreateTreasuryAccount(s.ctx, dto.CreateTreasuryAccountRequest{
		Title:          "  Main Cash  ",
		Kind:           string(domain.TreasuryCash),
		InitialBalance: decimal.NewFromInt(1000),
	}, "user-1")

	s.Require().NoError(err)
	s.Equal("Main Cash", account.Title)
	s.accountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateTreasuryAccountBlankTitle() {
	_, err := s.service.CreateTreasuryAccount(s.ctx, dto.CreateTreasuryAccountRequest{Title: "   "}, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "SaveTreasuryAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestCreateCategoryAccountWithClassification() {
	s.accountRepo.On("SaveCategoryAccount", mock.Anything, mock.MatchedBy(func(a domain.CategoryAccount) bool {
		return a.Name == "Sales" &&
			a.Classification != nil &&
			*a.Classification == domain.ClassificationIncome &&
			a.IsActive
	})).Return(nil)

	account, err := s.service.CreateCategoryAccount(s.ctx, dto.CreateCategoryAccountRequest{
		Name:           "Sales",
		Classification: ptr(string(domain.ClassificationIncome)),
	}, "user-1")

	s.Require().NoError(err)
	s.NotNil(account.Classification)
	s.accountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateCategoryAccountBlankName() {
	_, err := s.service.CreateCategoryAccount(s.ctx, dto.CreateCategoryAccountRequest{Name: ""}, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestCreateProject() {
	s.projectRepo.On("SaveProject", mock.Anything, mock.MatchedBy(func(p domain.Project) bool {
		return p.Name == "Shop Renovation" && p.IsActive
	})).Return(nil)

	project, err := s.service.CreateProject(s.ctx, dto.CreateProjectRequest{Name: "Shop Renovation"}, "user-1")

	s.Require().NoError(err)
	s.NotEmpty(project.ProjectID)
	s.projectRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestCreateProjectBlankName() {
	_, err := s.service.CreateProject(s.ctx, dto.CreateProjectRequest{Name: " "}, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestDeactivateTreasuryAccountPassesThrough() {
	s.accountRepo.On("DeactivateTreasuryAccount", mock.Anything, "tre-404", "user-1").Return(apperrors.ErrNotFound)

	err := s.service.DeactivateTreasuryAccount(s.ctx, "tre-404", "user-1")

	s.ErrorIs(err, apperrors.ErrNotFound)
}
