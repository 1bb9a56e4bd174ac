package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogly/internal/config"
	"blogly/internal/models"
	"blogly/internal/repository"
)

func newUserService(userRepo *MockUserRepository, postRepo *MockPostRepository) UserService {
	return NewUserService(userRepo, postRepo, &config.Config{RecentPosts: 5})
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Пустой image_url нормализуется в NULL", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newUserService(userRepo, new(MockPostRepository))

		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.FirstName == "Ada" && u.LastName == "Lovelace" && u.ImageURL == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 1
		}).Return(nil)

		res, err := svc.CreateUser(ctx, repository.CreateUserRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			ImageURL:  "",
		})

		require.NoError(t, err)
		assert.Nil(t, res.User.ImageURL)
		assert.Equal(t, 1, res.User.ID)
		assert.Equal(t, "User Ada Lovelace added.", res.Flash)
		userRepo.AssertExpectations(t)
	})

	t.Run("Непустой image_url сохраняется", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newUserService(userRepo, new(MockPostRepository))

		userRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.ImageURL != nil && *u.ImageURL == "https://example.com/ada.png"
		})).Return(nil)

		res, err := svc.CreateUser(ctx, repository.CreateUserRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			ImageURL:  "https://example.com/ada.png",
		})

		require.NoError(t, err)
		require.NotNil(t, res.User.ImageURL)
		userRepo.AssertExpectations(t)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Пустой image_url при обновлении остаётся пустой строкой", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newUserService(userRepo, new(MockPostRepository))

		imageURL := "https://example.com/ada.png"
		existing := &models.User{ID: 1, FirstName: "Ada", LastName: "Lovelace", ImageURL: &imageURL}

		userRepo.On("GetByID", ctx, 1).Return(existing, nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
			// асимметрия с созданием: сохраняется "" а не NULL
			return u.ImageURL != nil && *u.ImageURL == ""
		})).Return(nil)

		user, err := svc.UpdateUser(ctx, repository.UpdateUserRequest{
			UserID:    1,
			FirstName: "Ada",
			LastName:  "Byron",
			ImageURL:  "",
		})

		require.NoError(t, err)
		assert.Equal(t, "Byron", user.LastName)
		require.NotNil(t, user.ImageURL)
		assert.Equal(t, "", *user.ImageURL)
		userRepo.AssertExpectations(t)
	})

	t.Run("Несуществующий пользователь - NotFoundError", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newUserService(userRepo, new(MockPostRepository))

		userRepo.On("GetByID", ctx, 42).
			Return(nil, &repository.NotFoundError{Entity: "пользователь", ID: 42})

		user, err := svc.UpdateUser(ctx, repository.UpdateUserRequest{
			UserID:    42,
			FirstName: "Ada",
			LastName:  "Lovelace",
		})

		assert.Nil(t, user)
		assert.True(t, repository.IsNotFound(err))
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Удаление делегируется репозиторию", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := newUserService(userRepo, new(MockPostRepository))

		userRepo.On("Delete", ctx, 1).Return(nil)

		err := svc.DeleteUser(ctx, 1)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}

func TestUserService_GetUserWithPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("Пользователь вместе со своими постами", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		postRepo := new(MockPostRepository)
		svc := newUserService(userRepo, postRepo)

		existing := &models.User{ID: 1, FirstName: "Ada", LastName: "Lovelace"}
		posts := []models.Post{
			{ID: 10, Title: "Hello", Content: "World", UserID: 1},
		}

		userRepo.On("GetByID", ctx, 1).Return(existing, nil)
		postRepo.On("GetByUserID", ctx, 1).Return(posts, nil)

		user, got, err := svc.GetUserWithPosts(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, existing, user)
		require.Len(t, got, 1)
		assert.Equal(t, user.ID, got[0].UserID)
	})

	t.Run("Несуществующий пользователь - NotFoundError", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		postRepo := new(MockPostRepository)
		svc := newUserService(userRepo, postRepo)

		userRepo.On("GetByID", ctx, 42).
			Return(nil, &repository.NotFoundError{Entity: "пользователь", ID: 42})

		user, posts, err := svc.GetUserWithPosts(ctx, 42)

		assert.Nil(t, user)
		assert.Nil(t, posts)
		assert.True(t, repository.IsNotFound(err))
		postRepo.AssertNotCalled(t, "GetByUserID")
	})
}
