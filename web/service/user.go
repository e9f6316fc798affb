package service

import (
	"errors"

	"tbs-api/database"
	"tbs-api/database/model"
	"tbs-api/logger"
	"tbs-api/util/crypto"
)

var (
	ErrUsernameTaken      = errors.New("Username already exists.")
	ErrInvalidCredentials = errors.New("Invalid username or password.")
	ErrUserNotFound       = errors.New("User not found.")
)

type UserService struct{}

// Register creates a new account with a bcrypt-hashed password. The
// uniqueness check and the insert run in one transaction.
func (s *UserService) Register(username string, password string) (user *model.User, err error) {
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	db := database.GetDB()
	tx := db.Begin()
	defer func() {
		if err == nil {
			tx.Commit()
		} else {
			tx.Rollback()
		}
	}()

	var count int64
	err = tx.Model(model.User{}).
		Where("username = ?", username).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		err = ErrUsernameTaken
		return nil, err
	}

	user = &model.User{
		Username: username,
		Password: hashedPassword,
	}
	if err = tx.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies login credentials. Unknown usernames and wrong
// passwords produce the same error so usernames cannot be enumerated.
func (s *UserService) CheckUser(username string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, ErrInvalidCredentials
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.First(user, id).Error
	if database.IsNotFound(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}
