package utils

import "strings"

// AvatarLabel 이름 첫 글자로 아바타를 만든다
func AvatarLabel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	for _, r := range name {
		return string(r)
	}
	return "?"
}

// RoleLabel 가족 역할 표시명
func RoleLabel(role string) string {
	switch role {
	case "dad":
		return "아빠"
	case "mom":
		return "엄마"
	case "son":
		return "아들"
	case "daughter":
		return "딸"
	case "grandpa":
		return "할아버지"
	case "grandma":
		return "할머니"
	default:
		return "가족"
	}
}

// RoleEmoji 역할별 기본 아바타 이모지
func RoleEmoji(role string) string {
	switch role {
	case "dad":
		return "👨"
	case "mom":
		return "👩"
	case "son":
		return "👦"
	case "daughter":
		return "👧"
	case "grandpa":
		return "👴"
	case "grandma":
		return "👵"
	default:
		return "🙂"
	}
}
