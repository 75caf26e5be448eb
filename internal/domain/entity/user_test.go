package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BeforeSave не использует tx, поэтому достаточно nil
var mockTx *gorm.DB = nil

func TestUser_TableName(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
}

func TestUser_BeforeSave_HashesPassword(t *testing.T) {
	// Arrange
	plainPassword := "mySecretPassword123"
	user := &User{Email: "test@example.com", HashedPassword: plainPassword}

	// Act
	err := user.BeforeSave(mockTx)

	// Assert
	require.NoError(t, err, "BeforeSave не должен возвращать ошибку")
	assert.NotEqual(t, plainPassword, user.HashedPassword, "Пароль должен быть изменён после хеширования")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(plainPassword)))
}

func TestUser_BeforeSave_SkipsAlreadyHashedPassword(t *testing.T) {
	// Arrange
	hashed, err := bcrypt.GenerateFromPassword([]byte("alreadyHashed"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &User{Email: "test@example.com", HashedPassword: string(hashed)}

	// Act
	err = user.BeforeSave(mockTx)

	// Assert: двойного хеширования нет
	require.NoError(t, err)
	assert.Equal(t, string(hashed), user.HashedPassword)
}

func TestUser_BeforeSave_SkipsEmptyPassword(t *testing.T) {
	user := &User{Email: "test@example.com"}

	require.NoError(t, user.BeforeSave(mockTx))
	assert.Empty(t, user.HashedPassword, "Пустой пароль не должен хешироваться")
}

func TestUser_CheckPassword(t *testing.T) {
	user := &User{Email: "test@example.com", HashedPassword: "correct-horse"}
	require.NoError(t, user.BeforeSave(mockTx))

	assert.True(t, user.CheckPassword("correct-horse"))
	assert.False(t, user.CheckPassword("wrong"))
	assert.False(t, user.CheckPassword(""))
}
