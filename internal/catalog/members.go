package catalog

import (
	"strings"

	"gamedex/internal/db"

	"gorm.io/gorm"
)

// CreateMember adds a family member. Names are trimmed and must be unique;
// a duplicate returns ErrDuplicateMember.
func (s *Store) CreateMember(name string) (*db.FamilyMember, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	member := db.FamilyMember{Name: name}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return recordEvent(tx, "member_added", nil, &member.ID, EventPayload{Name: member.Name})
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateMember
		}
		return nil, err
	}
	return &member, nil
}

// ListMembers returns all family members ordered by name.
func (s *Store) ListMembers() ([]db.FamilyMember, error) {
	var members []db.FamilyMember
	if err := s.db.Order("name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetMember loads one family member by id.
func (s *Store) GetMember(id uint) (*db.FamilyMember, error) {
	var member db.FamilyMember
	if err := s.db.First(&member, id).Error; err != nil {
		return nil, notFound(err, ErrFamilyMemberNotFound)
	}
	return &member, nil
}

// DeleteMember removes a family member and every rating they submitted, in
// one transaction. A member deleted with their ratings left behind would be
// a correctness bug, so the two deletes never commit separately.
func (s *Store) DeleteMember(id uint) error {
	member, err := s.GetMember(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("family_member_id = ?", id).Delete(&db.GameRating{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db.FamilyMember{}, id).Error; err != nil {
			return err
		}
		return recordEvent(tx, "member_deleted", nil, nil, EventPayload{Name: member.Name})
	})
}
