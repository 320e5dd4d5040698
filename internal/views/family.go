package views

import (
	"dadam/internal/api"
	"dadam/internal/utils"
)

// 가족 화면에 보여주는 최대 인원
const familyDisplayCap = 10

// FamilyMemberCard 가족 목록 카드 한 장
type FamilyMemberCard struct {
	Name        string
	RoleLabel   string
	AvatarLabel string
	AvatarEmoji string
	IsMe        bool
}

// BuildFamilyList 가족 목록 화면 모델. 10명까지만 보여준다.
func BuildFamilyList(members []api.FamilyMember, me api.User) []FamilyMemberCard {
	if len(members) > familyDisplayCap {
		members = members[:familyDisplayCap]
	}
	cards := make([]FamilyMemberCard, 0, len(members))
	for _, m := range members {
		cards = append(cards, FamilyMemberCard{
			Name:        m.Name,
			RoleLabel:   utils.RoleLabel(m.FamilyRole),
			AvatarLabel: utils.AvatarLabel(m.Name),
			AvatarEmoji: utils.RoleEmoji(m.FamilyRole),
			IsMe:        m.ID == me.ID,
		})
	}
	return cards
}
