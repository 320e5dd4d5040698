package services

import (
	"context"
	"encoding/json"
	"errors"

	"dadam/internal/api"
)

var ErrNoInviteCode = errors.New("초대 코드를 만들지 못했어요")

// FamilyService 가족 목록과 초대 코드
type FamilyService struct {
	client *api.Client
}

var familyService *FamilyService

func GetFamilyService() *FamilyService {
	if familyService == nil {
		familyService = NewFamilyService(backendClient())
	}
	return familyService
}

func NewFamilyService(client *api.Client) *FamilyService {
	return &FamilyService{client: client}
}

// Members 가족 구성원 목록. 백엔드가 다른 가족까지 섞어 주던 시절이
// 있어서 내 familyCode 로 한 번 걸러낸다. 거르고 나서 아무도 안 남으면
// (코드가 아직 없는 계정) 받은 목록을 그대로 쓴다.
func (s *FamilyService) Members(ctx context.Context, me api.User) ([]api.FamilyMember, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/users/family", &raw); err != nil {
		return nil, classifyError(err)
	}

	members := api.DecodeFamilyMembers(raw)
	if me.FamilyCode == "" {
		return members, nil
	}

	filtered := make([]api.FamilyMember, 0, len(members))
	for _, m := range members {
		if m.FamilyCode == me.FamilyCode {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 {
		return members, nil
	}
	return filtered, nil
}

// IssueInviteCode 내 가족 초대 코드를 발급(또는 재조회)한다
func (s *FamilyService) IssueInviteCode(ctx context.Context) (string, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/users/me/family-code", nil, &raw); err != nil {
		return "", classifyError(err)
	}

	code := api.DecodeFamilyCode(raw)
	if code == "" {
		return "", ErrNoInviteCode
	}
	return code, nil
}
