package service

import (
	"os"
	"testing"

	"tbs-api/database"
	"tbs-api/database/model"

	"github.com/stretchr/testify/assert"
)

const testDB = "test.db"

func setup() {
	removeTestDB()
	database.InitDB(testDB)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	removeTestDB()
}

func removeTestDB() {
	os.Remove(testDB)
	os.Remove(testDB + "-wal")
	os.Remove(testDB + "-shm")
}

func TestRegister(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	user, err := service.Register("alice", "pw123")
	assert.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.Equal(t, "alice", user.Username)
	// only the hash is stored
	assert.NotEqual(t, "pw123", user.Password)

	// second registration with the same username fails and creates nothing
	_, err = service.Register("alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	database.GetDB().Model(model.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCheckUser(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	_, err := service.Register("alice", "pw123")
	assert.NoError(t, err)

	user, err := service.CheckUser("alice", "pw123")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// wrong password and unknown user yield the same error
	_, errWrongPass := service.CheckUser("alice", "wrong")
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)

	_, errNoUser := service.CheckUser("nobody", "pw123")
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)

	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestGetUser(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}
	created, err := service.Register("alice", "pw123")
	assert.NoError(t, err)

	user, err := service.GetUser(created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = service.GetUser(created.Id + 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
