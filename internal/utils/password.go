package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 해시 (로컬 모드 전용, 원격 모드는 백엔드가 검증)
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash 비밀번호 대조
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
