package mocks

import (
	"context"
	"fmt"

	"github.com/devshowcase/api/internal/core/domain/auth"
	"github.com/devshowcase/api/internal/core/domain/project"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/google/uuid"
)

// UserRepository mock
type UserRepositoryMock struct {
	CreateFn            func(ctx context.Context, u *user.User) error
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmailFn        func(ctx context.Context, email string) (*user.User, error)
	GetByUsernameFn     func(ctx context.Context, username string) (*user.User, error)
	UpdateFn            func(ctx context.Context, u *user.User) error
	DeleteFn            func(ctx context.Context, id uuid.UUID) error
	ListFn              func(ctx context.Context, limit, offset int) ([]*user.User, error)
	CountFn             func(ctx context.Context) (int, error)
	CountCreatedSinceFn func(ctx context.Context, days int) (int, error)
}

func (m *UserRepositoryMock) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, user.ErrNotFound
}
func (m *UserRepositoryMock) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, user.ErrNotFound
}
func (m *UserRepositoryMock) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, user.ErrNotFound
}
func (m *UserRepositoryMock) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *UserRepositoryMock) List(ctx context.Context, limit, offset int) ([]*user.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}
	return nil, nil
}
func (m *UserRepositoryMock) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
func (m *UserRepositoryMock) CountCreatedSince(ctx context.Context, days int) (int, error) {
	if m.CountCreatedSinceFn != nil {
		return m.CountCreatedSinceFn(ctx, days)
	}
	return 0, nil
}

// ProjectRepository mock
type ProjectRepositoryMock struct {
	CreateFn              func(ctx context.Context, p *project.Project) error
	GetByIDFn             func(ctx context.Context, id uuid.UUID) (*project.Project, error)
	UpdateFn              func(ctx context.Context, p *project.Project) error
	DeleteFn              func(ctx context.Context, id uuid.UUID) error
	ListPublishedFn       func(ctx context.Context, q *project.ListQuery) ([]*project.Project, int, error)
	ListTopPublishedFn    func(ctx context.Context, limit int) ([]*project.Project, error)
	ListLatestPublishedFn func(ctx context.Context, limit int) ([]*project.Project, error)
	ListPublishedByUserFn func(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	ListByUserFn          func(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	ListAllFn             func(ctx context.Context) ([]*project.Project, error)
	CreateUpvoteFn        func(ctx context.Context, u *project.Upvote) error
	GetUpvoteFn           func(ctx context.Context, projectID, userID uuid.UUID) (*project.Upvote, error)
	DeleteUpvoteFn        func(ctx context.Context, projectID, userID uuid.UUID) error
	ListUpvotesFn         func(ctx context.Context, projectID uuid.UUID) ([]*project.Upvote, error)
	CountFn               func(ctx context.Context) (int, error)
	CountPublishedFn      func(ctx context.Context) (int, error)
	CountUpvotesFn        func(ctx context.Context) (int, error)
	PublishedTechStacksFn func(ctx context.Context) ([][]string, error)
}

func (m *ProjectRepositoryMock) Create(ctx context.Context, p *project.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *ProjectRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, project.ErrNotFound
}
func (m *ProjectRepositoryMock) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}
func (m *ProjectRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *ProjectRepositoryMock) ListPublished(ctx context.Context, q *project.ListQuery) ([]*project.Project, int, error) {
	if m.ListPublishedFn != nil {
		return m.ListPublishedFn(ctx, q)
	}
	return nil, 0, nil
}
func (m *ProjectRepositoryMock) ListTopPublished(ctx context.Context, limit int) ([]*project.Project, error) {
	if m.ListTopPublishedFn != nil {
		return m.ListTopPublishedFn(ctx, limit)
	}
	return nil, nil
}
func (m *ProjectRepositoryMock) ListLatestPublished(ctx context.Context, limit int) ([]*project.Project, error) {
	if m.ListLatestPublishedFn != nil {
		return m.ListLatestPublishedFn(ctx, limit)
	}
	return nil, nil
}
func (m *ProjectRepositoryMock) ListPublishedByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	if m.ListPublishedByUserFn != nil {
		return m.ListPublishedByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *ProjectRepositoryMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *ProjectRepositoryMock) ListAll(ctx context.Context) ([]*project.Project, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
func (m *ProjectRepositoryMock) CreateUpvote(ctx context.Context, u *project.Upvote) error {
	if m.CreateUpvoteFn != nil {
		return m.CreateUpvoteFn(ctx, u)
	}
	return nil
}
func (m *ProjectRepositoryMock) GetUpvote(ctx context.Context, projectID, userID uuid.UUID) (*project.Upvote, error) {
	if m.GetUpvoteFn != nil {
		return m.GetUpvoteFn(ctx, projectID, userID)
	}
	return nil, project.ErrUpvoteNotFound
}
func (m *ProjectRepositoryMock) DeleteUpvote(ctx context.Context, projectID, userID uuid.UUID) error {
	if m.DeleteUpvoteFn != nil {
		return m.DeleteUpvoteFn(ctx, projectID, userID)
	}
	return nil
}
func (m *ProjectRepositoryMock) ListUpvotes(ctx context.Context, projectID uuid.UUID) ([]*project.Upvote, error) {
	if m.ListUpvotesFn != nil {
		return m.ListUpvotesFn(ctx, projectID)
	}
	return nil, nil
}
func (m *ProjectRepositoryMock) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
func (m *ProjectRepositoryMock) CountPublished(ctx context.Context) (int, error) {
	if m.CountPublishedFn != nil {
		return m.CountPublishedFn(ctx)
	}
	return 0, nil
}
func (m *ProjectRepositoryMock) CountUpvotes(ctx context.Context) (int, error) {
	if m.CountUpvotesFn != nil {
		return m.CountUpvotesFn(ctx)
	}
	return 0, nil
}
func (m *ProjectRepositoryMock) PublishedTechStacks(ctx context.Context) ([][]string, error) {
	if m.PublishedTechStacksFn != nil {
		return m.PublishedTechStacksFn(ctx)
	}
	return nil, nil
}

// EmailService mock
type EmailServiceMock struct {
	SendVerificationEmailFn func(ctx context.Context, email, code, firstName string) error
	SendTwoFactorCodeFn     func(ctx context.Context, email, code, firstName string) error
}

func (m *EmailServiceMock) SendVerificationEmail(ctx context.Context, email, code, firstName string) error {
	if m.SendVerificationEmailFn != nil {
		return m.SendVerificationEmailFn(ctx, email, code, firstName)
	}
	return nil
}
func (m *EmailServiceMock) SendTwoFactorCode(ctx context.Context, email, code, firstName string) error {
	if m.SendTwoFactorCodeFn != nil {
		return m.SendTwoFactorCodeFn(ctx, email, code, firstName)
	}
	return nil
}

// TokenSigner mock
type TokenSignerMock struct {
	SignFn  func(claims *auth.Claims) (string, error)
	ParseFn func(token string) (*auth.Claims, error)
}

func (m *TokenSignerMock) Sign(claims *auth.Claims) (string, error) {
	if m.SignFn != nil {
		return m.SignFn(claims)
	}
	return "signed-token", nil
}
func (m *TokenSignerMock) Parse(token string) (*auth.Claims, error) {
	if m.ParseFn != nil {
		return m.ParseFn(token)
	}
	return nil, fmt.Errorf("invalid token")
}

// CodeGenerator mock
type CodeGeneratorMock struct {
	GenerateFn func() (string, error)
}

func (m *CodeGeneratorMock) Generate() (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn()
	}
	return "123456", nil
}

// AuthService mock for handler tests
type AuthServiceMock struct {
	RegisterFn                func(ctx context.Context, req *auth.RegisterRequest) error
	VerifyEmailFn             func(ctx context.Context, req *auth.VerifyEmailRequest) error
	LoginFn                   func(ctx context.Context, req *auth.LoginRequest) error
	Verify2FAFn               func(ctx context.Context, req *auth.Verify2FARequest) (string, error)
	ResendVerificationEmailFn func(ctx context.Context, email string) error
	Resend2FACodeFn           func(ctx context.Context, email string) error
}

func (m *AuthServiceMock) Register(ctx context.Context, req *auth.RegisterRequest) error {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, req)
	}
	return nil
}
func (m *AuthServiceMock) VerifyEmail(ctx context.Context, req *auth.VerifyEmailRequest) error {
	if m.VerifyEmailFn != nil {
		return m.VerifyEmailFn(ctx, req)
	}
	return nil
}
func (m *AuthServiceMock) Login(ctx context.Context, req *auth.LoginRequest) error {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, req)
	}
	return nil
}
func (m *AuthServiceMock) Verify2FA(ctx context.Context, req *auth.Verify2FARequest) (string, error) {
	if m.Verify2FAFn != nil {
		return m.Verify2FAFn(ctx, req)
	}
	return "signed-token", nil
}
func (m *AuthServiceMock) ResendVerificationEmail(ctx context.Context, email string) error {
	if m.ResendVerificationEmailFn != nil {
		return m.ResendVerificationEmailFn(ctx, email)
	}
	return nil
}
func (m *AuthServiceMock) Resend2FACode(ctx context.Context, email string) error {
	if m.Resend2FACodeFn != nil {
		return m.Resend2FACodeFn(ctx, email)
	}
	return nil
}

// UserService mock for handler tests
type UserServiceMock struct {
	GetUserFn          func(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateProfileFn    func(ctx context.Context, id uuid.UUID, req *user.UpdateProfileRequest) (*user.User, error)
	DeleteAccountFn    func(ctx context.Context, id uuid.UUID) error
	GetPublicProfileFn func(ctx context.Context, username string) (*user.PublicProfile, []*project.Project, error)
}

func (m *UserServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	return nil, user.ErrNotFound
}
func (m *UserServiceMock) UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateProfileRequest) (*user.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, id, req)
	}
	return nil, user.ErrNotFound
}
func (m *UserServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if m.DeleteAccountFn != nil {
		return m.DeleteAccountFn(ctx, id)
	}
	return nil
}
func (m *UserServiceMock) GetPublicProfile(ctx context.Context, username string) (*user.PublicProfile, []*project.Project, error) {
	if m.GetPublicProfileFn != nil {
		return m.GetPublicProfileFn(ctx, username)
	}
	return nil, nil, user.ErrNotFound
}

// ProjectService mock for handler tests
type ProjectServiceMock struct {
	ListPublicFn   func(ctx context.Context, q *project.ListQuery) ([]*project.Project, *project.ListMeta, error)
	GetPublicFn    func(ctx context.Context, id uuid.UUID) (*project.Project, error)
	TrendingFn     func(ctx context.Context) ([]*project.Project, error)
	LatestFn       func(ctx context.Context) ([]*project.Project, error)
	SearchFn       func(ctx context.Context, term string) ([]*project.Project, error)
	ByCategoryFn   func(ctx context.Context, category project.Category) ([]*project.Project, error)
	ListMineFn     func(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	CreateFn       func(ctx context.Context, userID uuid.UUID, req *project.CreateProjectRequest) (*project.Project, error)
	GetFn          func(ctx context.Context, id, requesterID uuid.UUID) (*project.Project, error)
	UpdateFn       func(ctx context.Context, id, userID uuid.UUID, req *project.UpdateProjectRequest) (*project.Project, error)
	DeleteFn       func(ctx context.Context, id, userID uuid.UUID) error
	PublishFn      func(ctx context.Context, id, userID uuid.UUID) (*project.Project, error)
	UnpublishFn    func(ctx context.Context, id, userID uuid.UUID) (*project.Project, error)
	UpvoteFn       func(ctx context.Context, projectID, userID uuid.UUID) error
	RemoveUpvoteFn func(ctx context.Context, projectID, userID uuid.UUID) error
	ListUpvotesFn  func(ctx context.Context, projectID uuid.UUID) ([]*project.Upvote, error)
}

func (m *ProjectServiceMock) ListPublic(ctx context.Context, q *project.ListQuery) ([]*project.Project, *project.ListMeta, error) {
	if m.ListPublicFn != nil {
		return m.ListPublicFn(ctx, q)
	}
	return nil, &project.ListMeta{}, nil
}
func (m *ProjectServiceMock) GetPublic(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	if m.GetPublicFn != nil {
		return m.GetPublicFn(ctx, id)
	}
	return nil, project.ErrNotFound
}
func (m *ProjectServiceMock) Trending(ctx context.Context) ([]*project.Project, error) {
	if m.TrendingFn != nil {
		return m.TrendingFn(ctx)
	}
	return nil, nil
}
func (m *ProjectServiceMock) Latest(ctx context.Context) ([]*project.Project, error) {
	if m.LatestFn != nil {
		return m.LatestFn(ctx)
	}
	return nil, nil
}
func (m *ProjectServiceMock) Search(ctx context.Context, term string) ([]*project.Project, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, term)
	}
	return nil, nil
}
func (m *ProjectServiceMock) ByCategory(ctx context.Context, category project.Category) ([]*project.Project, error) {
	if m.ByCategoryFn != nil {
		return m.ByCategoryFn(ctx, category)
	}
	return nil, nil
}
func (m *ProjectServiceMock) ListMine(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	if m.ListMineFn != nil {
		return m.ListMineFn(ctx, userID)
	}
	return nil, nil
}
func (m *ProjectServiceMock) Create(ctx context.Context, userID uuid.UUID, req *project.CreateProjectRequest) (*project.Project, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, req)
	}
	return &project.Project{ID: uuid.New(), UserID: userID, Name: req.Name}, nil
}
func (m *ProjectServiceMock) Get(ctx context.Context, id, requesterID uuid.UUID) (*project.Project, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id, requesterID)
	}
	return nil, project.ErrNotFound
}
func (m *ProjectServiceMock) Update(ctx context.Context, id, userID uuid.UUID, req *project.UpdateProjectRequest) (*project.Project, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, userID, req)
	}
	return nil, project.ErrNotFound
}
func (m *ProjectServiceMock) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, userID)
	}
	return nil
}
func (m *ProjectServiceMock) Publish(ctx context.Context, id, userID uuid.UUID) (*project.Project, error) {
	if m.PublishFn != nil {
		return m.PublishFn(ctx, id, userID)
	}
	return nil, project.ErrNotFound
}
func (m *ProjectServiceMock) Unpublish(ctx context.Context, id, userID uuid.UUID) (*project.Project, error) {
	if m.UnpublishFn != nil {
		return m.UnpublishFn(ctx, id, userID)
	}
	return nil, project.ErrNotFound
}
func (m *ProjectServiceMock) Upvote(ctx context.Context, projectID, userID uuid.UUID) error {
	if m.UpvoteFn != nil {
		return m.UpvoteFn(ctx, projectID, userID)
	}
	return nil
}
func (m *ProjectServiceMock) RemoveUpvote(ctx context.Context, projectID, userID uuid.UUID) error {
	if m.RemoveUpvoteFn != nil {
		return m.RemoveUpvoteFn(ctx, projectID, userID)
	}
	return nil
}
func (m *ProjectServiceMock) ListUpvotes(ctx context.Context, projectID uuid.UUID) ([]*project.Upvote, error) {
	if m.ListUpvotesFn != nil {
		return m.ListUpvotesFn(ctx, projectID)
	}
	return nil, nil
}

// AdminService mock for handler tests
type AdminServiceMock struct {
	ListUsersFn       func(ctx context.Context, limit, offset int) ([]*user.User, error)
	GetUserFn         func(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateUserRoleFn  func(ctx context.Context, id uuid.UUID, role user.UserRole) (*user.User, error)
	DeleteUserFn      func(ctx context.Context, id uuid.UUID) error
	ListProjectsFn    func(ctx context.Context) ([]*project.Project, error)
	ProjectsByUserFn  func(ctx context.Context, userID uuid.UUID) ([]*project.Project, error)
	DeleteProjectFn   func(ctx context.Context, id uuid.UUID) error
	ModerateProjectFn func(ctx context.Context, id uuid.UUID) (*project.Project, error)
	StatsFn           func(ctx context.Context) (*project.Stats, error)
	TrendingTechFn    func(ctx context.Context) ([]project.TechCount, error)
}

func (m *AdminServiceMock) ListUsers(ctx context.Context, limit, offset int) ([]*user.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx, limit, offset)
	}
	return nil, nil
}
func (m *AdminServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	return nil, user.ErrNotFound
}
func (m *AdminServiceMock) UpdateUserRole(ctx context.Context, id uuid.UUID, role user.UserRole) (*user.User, error) {
	if m.UpdateUserRoleFn != nil {
		return m.UpdateUserRoleFn(ctx, id, role)
	}
	return nil, user.ErrNotFound
}
func (m *AdminServiceMock) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, id)
	}
	return nil
}
func (m *AdminServiceMock) ListProjects(ctx context.Context) ([]*project.Project, error) {
	if m.ListProjectsFn != nil {
		return m.ListProjectsFn(ctx)
	}
	return nil, nil
}
func (m *AdminServiceMock) ProjectsByUser(ctx context.Context, userID uuid.UUID) ([]*project.Project, error) {
	if m.ProjectsByUserFn != nil {
		return m.ProjectsByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *AdminServiceMock) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if m.DeleteProjectFn != nil {
		return m.DeleteProjectFn(ctx, id)
	}
	return nil
}
func (m *AdminServiceMock) ModerateProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	if m.ModerateProjectFn != nil {
		return m.ModerateProjectFn(ctx, id)
	}
	return nil, project.ErrNotFound
}
func (m *AdminServiceMock) Stats(ctx context.Context) (*project.Stats, error) {
	if m.StatsFn != nil {
		return m.StatsFn(ctx)
	}
	return &project.Stats{}, nil
}
func (m *AdminServiceMock) TrendingTech(ctx context.Context) ([]project.TechCount, error) {
	if m.TrendingTechFn != nil {
		return m.TrendingTechFn(ctx)
	}
	return nil, nil
}
