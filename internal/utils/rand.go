package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// NewSessionID 브라우저 세션 상태를 찾는 키
func NewSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand 가 실패하는 환경은 없다고 봐도 된다
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// 헷갈리는 글자(0/O, 1/I)는 뺐다
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateFamilyCode 가족 초대 코드 (로컬 모드 전용, 원격 모드는 백엔드가 발급)
func GenerateFamilyCode(length int) string {
	out := make([]byte, length)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		out[i] = codeAlphabet[n.Int64()]
	}
	return string(out)
}
