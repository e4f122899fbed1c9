package storage

import (
	"context"
	"errors"

	"github.com/famcare/health-engine/pkg/types"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddFamily(ctx context.Context, familyID, name string) error {
	if familyID == "" {
		return ErrNoID
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO families (family_id, name)
		VALUES (@family_id, @name)
		ON CONFLICT (family_id) DO UPDATE SET name = EXCLUDED.name
	`, pgx.NamedArgs{"family_id": familyID, "name": name})

	return err
}

func (s *Storage) AddFamilyMember(ctx context.Context, member types.FamilyMember) error {
	if member.UserID == "" || member.FamilyID == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"user_id":      member.UserID,
		"family_id":    member.FamilyID,
		"name":         member.Name,
		"role":         member.Role,
		"notify_roles": member.NotifyRoles,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO family_members (user_id, family_id, name, role, notify_roles)
		VALUES (@user_id, @family_id, @name, @role, COALESCE(@notify_roles, '{}'))
		ON CONFLICT (user_id, family_id) DO UPDATE
		SET name = EXCLUDED.name, role = EXCLUDED.role, notify_roles = EXCLUDED.notify_roles
	`, args)

	return err
}

func (s *Storage) FamilyMembers(ctx context.Context, familyID string) ([]types.FamilyMember, error) {
	condition := &Condition{}
	WithFamilyID(familyID)(condition)

	rows, err := s.pool.Query(ctx, `
		SELECT user_id, family_id, COALESCE(name, ''), role, notify_roles
		FROM family_members
		WHERE `+condition.Where()+`
		ORDER BY user_id ASC
	`, condition.NamedArgs())
	if err != nil {
		return nil, err
	}

	members := make([]types.FamilyMember, 0)
	m := types.FamilyMember{}

	_, err = pgx.ForEachRow(rows, []any{&m.UserID, &m.FamilyID, &m.Name, &m.Role, &m.NotifyRoles}, func() error {
		member := m
		member.NotifyRoles = append([]string(nil), m.NotifyRoles...)
		members = append(members, member)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return members, nil
}

// FamilyForUser resolves the family a user belongs to. Users in more
// than one family get the one they joined first.
func (s *Storage) FamilyForUser(ctx context.Context, userID string) (string, error) {
	var familyID string

	err := s.pool.QueryRow(ctx, `
		SELECT family_id
		FROM family_members
		WHERE user_id = @user_id
		ORDER BY created_on ASC
		LIMIT 1
	`, pgx.NamedArgs{"user_id": userID}).Scan(&familyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNoRows
		}
		return "", err
	}

	return familyID, nil
}

// UsersInRole expands a notification tier into member ids. Tiers
// derive from membership roles: caregiver covers caregivers and
// admins, secondary_contact covers the remaining members, emergency
// covers the whole family. Members can additionally be tagged into a
// tier through notify_roles.
func (s *Storage) UsersInRole(ctx context.Context, familyID, notifyRole string) ([]string, error) {
	membership := "FALSE"

	switch notifyRole {
	case types.NotifyRoleCaregiver:
		membership = "role IN ('caregiver', 'admin')"
	case types.NotifyRoleSecondaryContact:
		membership = "role NOT IN ('caregiver', 'admin')"
	case types.NotifyRoleEmergency:
		membership = "TRUE"
	}

	rows, err := s.pool.Query(ctx, `
		SELECT user_id
		FROM family_members
		WHERE family_id = @family_id AND (`+membership+` OR @notify_role = ANY(notify_roles))
		ORDER BY user_id ASC
	`, pgx.NamedArgs{"family_id": familyID, "notify_role": notifyRole})
	if err != nil {
		return nil, err
	}

	users := make([]string, 0)
	var userID string

	_, err = pgx.ForEachRow(rows, []any{&userID}, func() error {
		users = append(users, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
